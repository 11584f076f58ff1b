package bucket

import (
	"fmt"
	"path"
	"strings"
)

const exportsFolder = "exports"

func (b *Bucket) constructFullPath(folder, fileName string) string {
	return path.Clean(path.Join(b.BaseFolder, folder, fileName))
}

func (b *Bucket) exportsPrefix() string {
	return b.constructFullPath(exportsFolder, "") + "/"
}

// getCDNURL prefers the custom subdomain over the virtual-hosted bucket URL.
func (b *Bucket) getCDNURL(filePath string) string {
	if b.SubdomainEndpoint != "" {
		return fmt.Sprintf("https://%s/%s", b.SubdomainEndpoint, filePath)
	}
	return fmt.Sprintf("https://%s.%s/%s", b.S3BucketName, b.S3Endpoint, filePath)
}

// validFileName rejects names that would leave the exports folder.
func validFileName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("invalid file name %q", name)
	}
	return nil
}
