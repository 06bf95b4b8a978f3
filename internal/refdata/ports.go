package refdata

import (
	"context"
)

// Repository gives raw access to the reference data tree. Listing methods
// return (nil, nil) when the directory does not exist; Read methods return an
// error matching fs.ErrNotExist for missing files.
type Repository interface {
	HymnFiles(ctx context.Context) ([]string, error)
	ReadHymn(ctx context.Context, name string) ([]byte, error)
	ChapterFiles(ctx context.Context, version string) ([]string, error)
	ReadChapter(ctx context.Context, version, name string) ([]byte, error)
	ReadManifest(ctx context.Context) ([]byte, error)
	ReadAsset(ctx context.Context, assetPath string) ([]byte, error)
}
