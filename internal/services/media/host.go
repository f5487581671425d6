package media

import (
	"context"
	"io"
	"strings"
	"time"
)

// MaxListResults is the most assets a single listing returns.
const MaxListResults = 500

type Asset struct {
	PublicID  string    `json:"publicId"`
	URL       string    `json:"url"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Format    string    `json:"format"`
	CreatedAt time.Time `json:"createdAt"`
	Bytes     int       `json:"bytes"`
	Filename  string    `json:"filename"`
}

// UploadSignature lets a browser upload straight to the asset host without
// the file passing through this server.
type UploadSignature struct {
	Signature string `json:"signature"`
	Timestamp int64  `json:"timestamp"`
	CloudName string `json:"cloudName"`
	APIKey    string `json:"apiKey"`
	Folder    string `json:"folder"`
}

type UploadResult struct {
	URL      string `json:"url"`
	PublicID string `json:"publicId"`
}

// AssetHost is the external image host used by the admin media screens.
type AssetHost interface {
	SignUpload(folder string, now time.Time) (UploadSignature, error)
	List(ctx context.Context, prefix string, max int) ([]Asset, error)
	Destroy(ctx context.Context, publicID string) error
	Upload(ctx context.Context, file io.Reader, folder, publicID string) (UploadResult, error)
}

// Filename is the last path segment of a public id.
func Filename(publicID string) string {
	if i := strings.LastIndex(publicID, "/"); i >= 0 {
		return publicID[i+1:]
	}
	return publicID
}
