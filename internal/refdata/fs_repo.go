package refdata

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"
)

const (
	hymnsDir     = "hymns"
	biblesDir    = "bibles"
	manifestFile = "backgrounds.json"
)

// FileRepo reads reference data from a data tree and static assets from a
// separate asset tree.
type FileRepo struct {
	data   fs.FS
	assets fs.FS
}

func NewFileRepo(dataDir, assetsDir string) *FileRepo {
	return NewFSRepo(os.DirFS(dataDir), os.DirFS(assetsDir))
}

func NewFSRepo(data, assets fs.FS) *FileRepo {
	return &FileRepo{data: data, assets: assets}
}

func (r *FileRepo) HymnFiles(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.fileNames(hymnsDir)
}

func (r *FileRepo) ReadHymn(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !isPathElem(name) {
		return nil, fmt.Errorf("hymn %q: %w", name, fs.ErrNotExist)
	}
	return fs.ReadFile(r.data, path.Join(hymnsDir, name))
}

func (r *FileRepo) ChapterFiles(ctx context.Context, version string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !isPathElem(version) {
		return nil, nil
	}
	return r.fileNames(path.Join(biblesDir, version))
}

func (r *FileRepo) ReadChapter(ctx context.Context, version, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !isPathElem(version) || !isPathElem(name) {
		return nil, fmt.Errorf("chapter %s/%s: %w", version, name, fs.ErrNotExist)
	}
	return fs.ReadFile(r.data, path.Join(biblesDir, version, name))
}

func (r *FileRepo) ReadManifest(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return fs.ReadFile(r.data, manifestFile)
}

// ReadAsset reads a static asset. Leading slashes are ignored so manifest
// paths written as site URLs ("/images/x.jpg") resolve under the asset root.
func (r *FileRepo) ReadAsset(ctx context.Context, assetPath string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p := strings.TrimLeft(assetPath, "/")
	if !fs.ValidPath(p) || p == "." {
		return nil, fmt.Errorf("asset %q: %w", assetPath, fs.ErrNotExist)
	}
	return fs.ReadFile(r.assets, p)
}

func (r *FileRepo) fileNames(dir string) ([]string, error) {
	entries, err := fs.ReadDir(r.data, dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

func isPathElem(s string) bool {
	return s != "" && s != "." && s != ".." && !strings.ContainsAny(s, `/\`)
}
