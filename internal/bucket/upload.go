package bucket

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
)

const contentTypeCSV = "text/csv"

// UploadExport stores a CSV export under the exports folder and returns its
// public URL.
func (b *Bucket) UploadExport(ctx context.Context, fileName string, data []byte) (string, error) {
	if err := validFileName(fileName); err != nil {
		return "", err
	}
	fp := b.constructFullPath(exportsFolder, fileName)

	r := bytes.NewReader(data)
	_, err := b.Client.PutObject(ctx, b.Config.S3BucketName, fp, r,
		int64(r.Len()), minio.PutObjectOptions{
			ContentType:        contentTypeCSV,
			ContentDisposition: fmt.Sprintf(`attachment; filename="%s"`, fileName),
			CacheControl:       "no-cache",
		},
	)
	if err != nil {
		return "", fmt.Errorf("error putting object: %v", err)
	}

	return b.getCDNURL(fp), nil
}
