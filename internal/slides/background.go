package slides

import (
	"context"
	"errors"
	"fmt"

	"worshipslides/internal/refdata"
)

// ErrBackgroundUnavailable is returned when a gallery or default background
// cannot be read. Resolution never falls back to another source.
var ErrBackgroundUnavailable = errors.New("background image unavailable")

// Background is one of Upload, Gallery or Default.
type Background interface {
	isBackground()
}

// Upload is an image supplied with the request.
type Upload struct {
	Data        []byte
	ContentType string
}

// Gallery names an entry of the background manifest.
type Gallery struct {
	ID string
}

// Default selects the configured default asset.
type Default struct{}

func (Upload) isBackground()  {}
func (Gallery) isBackground() {}
func (Default) isBackground() {}

// BackgroundChoice collects what the user supplied. Background picks the
// first present source: upload, then gallery, then default.
type BackgroundChoice struct {
	Upload    *Upload
	GalleryID string
}

func (c BackgroundChoice) Background() Background {
	switch {
	case c.Upload != nil && len(c.Upload.Data) > 0:
		return *c.Upload
	case c.GalleryID != "":
		return Gallery{ID: c.GalleryID}
	default:
		return Default{}
	}
}

type AssetSource interface {
	GetBackground(ctx context.Context, id string) (refdata.Background, error)
	ReadAsset(ctx context.Context, assetPath string) ([]byte, error)
}

// Resolver turns a Background into a data URI.
type Resolver struct {
	assets      AssetSource
	defaultPath string
}

func NewResolver(assets AssetSource, defaultPath string) *Resolver {
	return &Resolver{assets: assets, defaultPath: defaultPath}
}

func (r *Resolver) Resolve(ctx context.Context, bg Background) (string, error) {
	switch b := bg.(type) {
	case Upload:
		if len(b.Data) == 0 {
			return "", invalid("background", "uploaded background is empty")
		}
		return EncodeDataURI(b.Data, b.ContentType), nil
	case Gallery:
		entry, err := r.assets.GetBackground(ctx, b.ID)
		if errors.Is(err, refdata.ErrNotFound) {
			return "", invalid("background_id", fmt.Sprintf("unknown background %q", b.ID))
		}
		if err != nil {
			return "", fmt.Errorf("background %q: %w: %w", b.ID, ErrBackgroundUnavailable, err)
		}
		return r.readAsset(ctx, entry.Path)
	case Default, nil:
		return r.readAsset(ctx, r.defaultPath)
	default:
		return "", fmt.Errorf("unsupported background %T", bg)
	}
}

func (r *Resolver) readAsset(ctx context.Context, assetPath string) (string, error) {
	data, err := r.assets.ReadAsset(ctx, assetPath)
	if err != nil {
		return "", fmt.Errorf("asset %q: %w: %w", assetPath, ErrBackgroundUnavailable, err)
	}
	return EncodeDataURI(data, ""), nil
}
