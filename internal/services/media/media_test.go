package media

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/developia-II/jewellery-storefront/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHost struct {
	failing   map[string]bool
	destroyed []string
}

func (f *fakeHost) SignUpload(folder string, now time.Time) (UploadSignature, error) {
	return UploadSignature{Folder: folder, Timestamp: now.Unix()}, nil
}

func (f *fakeHost) List(ctx context.Context, prefix string, max int) ([]Asset, error) {
	return nil, nil
}

func (f *fakeHost) Destroy(ctx context.Context, publicID string) error {
	if f.failing[publicID] {
		return errors.New("upstream refused")
	}
	f.destroyed = append(f.destroyed, publicID)
	return nil
}

func (f *fakeHost) Upload(ctx context.Context, file io.Reader, folder, publicID string) (UploadResult, error) {
	return UploadResult{}, nil
}

type fakeCleaner struct {
	byAsset map[string]int64
	fail    string
}

func (f *fakeCleaner) DeleteByAsset(ctx context.Context, publicID, url string) (int64, error) {
	if publicID == f.fail {
		return 0, errors.New("db down")
	}
	return f.byAsset[publicID], nil
}

func TestDeleteAssetsCascadesAndIsolatesFailures(t *testing.T) {
	host := &fakeHost{failing: map[string]bool{"shop/broken": true}}
	cleaner := &fakeCleaner{byAsset: map[string]int64{"shop/a": 3, "shop/b": 0, "shop/c": 2}, fail: "shop/c"}

	report := DeleteAssets(context.Background(), host, cleaner, []DeleteRequest{
		{PublicID: "shop/a", URL: "https://cdn/a.jpg"},
		{PublicID: "shop/broken", URL: "https://cdn/broken.jpg"},
		{PublicID: "shop/b", URL: "https://cdn/b.jpg"},
		{PublicID: "shop/c", URL: "https://cdn/c.jpg"},
	})

	assert.Equal(t, 3, report.Deleted)
	assert.Equal(t, int64(3), report.ProductsDeleted)
	assert.Equal(t, []string{"shop/a", "shop/b", "shop/c"}, host.destroyed)
	require.Len(t, report.Errors, 2)
	assert.Equal(t, "shop/broken", report.Errors[0].PublicID)
	assert.Equal(t, "upstream refused", report.Errors[0].Error)
	assert.Equal(t, "shop/c", report.Errors[1].PublicID)
}

func TestDeleteAssetsEmptyReportHasNoNilErrors(t *testing.T) {
	report := DeleteAssets(context.Background(), &fakeHost{}, &fakeCleaner{}, nil)
	assert.NotNil(t, report.Errors)
	assert.Zero(t, report.Deleted)
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "ring_01", Filename("jewellery/rings/ring_01"))
	assert.Equal(t, "plain", Filename("plain"))
}

func TestNewCloudinaryHostRequiresCredentials(t *testing.T) {
	_, err := NewCloudinaryHost(config.CloudinaryConfig{CloudName: "demo"})
	assert.Error(t, err)
}

func TestSignUploadIsDeterministic(t *testing.T) {
	host, err := NewCloudinaryHost(config.CloudinaryConfig{CloudName: "demo", APIKey: "key", APISecret: "secret"})
	require.NoError(t, err)

	now := time.Unix(1700000000, 0)
	a, err := host.SignUpload("jewellery", now)
	require.NoError(t, err)
	b, err := host.SignUpload("jewellery", now)
	require.NoError(t, err)

	assert.Equal(t, a.Signature, b.Signature)
	assert.NotEmpty(t, a.Signature)
	assert.Equal(t, int64(1700000000), a.Timestamp)
	assert.Equal(t, "demo", a.CloudName)
	assert.Equal(t, "key", a.APIKey)

	c, err := host.SignUpload("other", now)
	require.NoError(t, err)
	assert.NotEqual(t, a.Signature, c.Signature)
}
