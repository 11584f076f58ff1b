package bucket

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBucket(subdomain string) *Bucket {
	return &Bucket{Config: &Config{
		S3Endpoint:        "fra1.digitaloceanspaces.com",
		S3BucketName:      "paycort",
		BaseFolder:        "admin",
		SubdomainEndpoint: subdomain,
	}}
}

func TestConstructFullPath(t *testing.T) {
	b := testBucket("")
	assert.Equal(t, "admin/exports/paycort-waitlist-2024-05-10.csv",
		b.constructFullPath(exportsFolder, "paycort-waitlist-2024-05-10.csv"))
	assert.Equal(t, "admin/exports/", b.exportsPrefix())
}

func TestGetCDNURL(t *testing.T) {
	assert.Equal(t, "https://paycort.fra1.digitaloceanspaces.com/admin/exports/a.csv",
		testBucket("").getCDNURL("admin/exports/a.csv"))
	assert.Equal(t, "https://files.paycort.com/admin/exports/a.csv",
		testBucket("files.paycort.com").getCDNURL("admin/exports/a.csv"))
}

func TestValidFileName(t *testing.T) {
	assert.NoError(t, validFileName("paycort-waitlist-2024-05-10.csv"))
	for _, bad := range []string{"", ".", "..", "../x.csv", `a\b.csv`, "a/b.csv"} {
		assert.Error(t, validFileName(bad), bad)
	}
}

func TestEnabled(t *testing.T) {
	assert.False(t, (&Config{}).Enabled())
	assert.True(t, testBucket("").Enabled())
}

// TestUploadExport talks to a real bucket configured through BUCKET_TEST_*.
func TestUploadExport(t *testing.T) {
	endpoint := os.Getenv("BUCKET_TEST_S3_ENDPOINT")
	if endpoint == "" {
		t.Skip("BUCKET_TEST_S3_ENDPOINT is not set")
	}
	b, err := New(&Config{
		S3AccessKey:       os.Getenv("BUCKET_TEST_S3_ACCESS_KEY"),
		S3SecretAccessKey: os.Getenv("BUCKET_TEST_S3_SECRET_ACCESS_KEY"),
		S3Endpoint:        endpoint,
		S3BucketName:      os.Getenv("BUCKET_TEST_S3_BUCKET_NAME"),
		S3BucketLocation:  os.Getenv("BUCKET_TEST_S3_BUCKET_LOCATION"),
		BaseFolder:        "paycort-admin-test",
	})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	name := "paycort-waitlist-test-" + time.Now().UTC().Format("20060102150405") + ".csv"
	url, err := b.UploadExport(ctx, name, []byte("First Name,Last Name,Email,Phone,Date Joined"))
	require.NoError(t, err)
	assert.Contains(t, url, name)

	list, err := b.ListExports(ctx)
	require.NoError(t, err)
	found := false
	for _, o := range list {
		found = found || o.Name == name
	}
	assert.True(t, found)

	require.NoError(t, b.DeleteExport(ctx, name))
}
