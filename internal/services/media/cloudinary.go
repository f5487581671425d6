package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/developia-II/jewellery-storefront/internal/config"
)

type CloudinaryHost struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryHost(cfg config.CloudinaryConfig) (*CloudinaryHost, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, errors.New("cloudinary credentials are not configured")
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &CloudinaryHost{cld: cld}, nil
}

func (h *CloudinaryHost) SignUpload(folder string, now time.Time) (UploadSignature, error) {
	timestamp := now.Unix()
	params := url.Values{
		"folder":    []string{folder},
		"timestamp": []string{strconv.FormatInt(timestamp, 10)},
	}
	signature, err := api.SignParameters(params, h.cld.Config.Cloud.APISecret)
	if err != nil {
		return UploadSignature{}, fmt.Errorf("sign upload: %w", err)
	}
	return UploadSignature{
		Signature: signature,
		Timestamp: timestamp,
		CloudName: h.cld.Config.Cloud.CloudName,
		APIKey:    h.cld.Config.Cloud.APIKey,
		Folder:    folder,
	}, nil
}

func (h *CloudinaryHost) List(ctx context.Context, prefix string, max int) ([]Asset, error) {
	if max <= 0 || max > MaxListResults {
		max = MaxListResults
	}
	res, err := h.cld.Admin.Assets(ctx, admin.AssetsParams{
		AssetType:    api.Image,
		DeliveryType: string(api.Upload),
		Prefix:       prefix,
		MaxResults:   max,
	})
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	if res.Error.Message != "" {
		return nil, fmt.Errorf("list assets: %s", res.Error.Message)
	}

	assets := make([]Asset, 0, len(res.Assets))
	for _, a := range res.Assets {
		assets = append(assets, Asset{
			PublicID:  a.PublicID,
			URL:       a.SecureURL,
			Width:     a.Width,
			Height:    a.Height,
			Format:    a.Format,
			CreatedAt: a.CreatedAt,
			Bytes:     a.Bytes,
			Filename:  Filename(a.PublicID),
		})
	}
	return assets, nil
}

func (h *CloudinaryHost) Destroy(ctx context.Context, publicID string) error {
	res, err := h.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("destroy %s: %w", publicID, err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("destroy %s: %s", publicID, res.Error.Message)
	}
	return nil
}

func (h *CloudinaryHost) Upload(ctx context.Context, file io.Reader, folder, publicID string) (UploadResult, error) {
	res, err := h.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:  publicID,
		Folder:    folder,
		Overwrite: api.Bool(false),
	})
	if err != nil {
		return UploadResult{}, fmt.Errorf("upload: %w", err)
	}
	if res.Error.Message != "" {
		return UploadResult{}, fmt.Errorf("upload: %s", res.Error.Message)
	}
	return UploadResult{URL: res.SecureURL, PublicID: res.PublicID}, nil
}
