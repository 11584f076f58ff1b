package bucket

import (
	"context"
	"path"
	"sort"

	"github.com/minio/minio-go/v7"
	"github.com/paycort/paycort-admin/internal/entity"
)

// ListExports lists the archived exports, newest first.
func (b *Bucket) ListExports(ctx context.Context) ([]entity.ExportObject, error) {
	objectCh := b.Client.ListObjects(ctx, b.S3BucketName, minio.ListObjectsOptions{
		Prefix:    b.exportsPrefix(),
		Recursive: true,
	})

	all := []entity.ExportObject{}
	for o := range objectCh {
		if o.Err != nil {
			return nil, o.Err
		}
		if path.Ext(o.Key) != ".csv" {
			continue
		}
		all = append(all, entity.ExportObject{
			Name:         path.Base(o.Key),
			Url:          b.getCDNURL(o.Key),
			Size:         o.Size,
			LastModified: o.LastModified,
		})
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].LastModified.After(all[j].LastModified)
	})
	return all, nil
}
