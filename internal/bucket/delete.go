package bucket

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/minio/minio-go/v7"
)

// DeleteExport removes an archived export.
func (b *Bucket) DeleteExport(ctx context.Context, fileName string) error {
	if err := validFileName(fileName); err != nil {
		return err
	}
	fp := b.constructFullPath(exportsFolder, fileName)
	if err := b.Client.RemoveObject(ctx, b.Config.S3BucketName, fp, minio.RemoveObjectOptions{}); err != nil {
		slog.Default().ErrorContext(ctx, "failed to delete object from s3 bucket",
			slog.String("object_key", fp),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("remove object: %w", err)
	}
	return nil
}
