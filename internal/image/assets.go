package imagepkg

import (
	"context"
	"errors"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"

	"github.com/youruser/hrcerts/internal/apperr"
	"github.com/youruser/hrcerts/internal/util"
)

const (
	TemplateWidth  = 1600
	TemplateHeight = 1200
)

type AssetConfig struct {
	// TemplatePath is read first; TemplateURL is used when the file does not
	// exist, and the download is saved to TemplatePath.
	TemplatePath string
	TemplateURL  string
	FontRegular  string
	FontBold     string
}

type assetSet struct {
	template *image.NRGBA
	fonts    *fontSet
}

// Assets loads the certificate template and fonts on first use and keeps
// them for the life of the process. A failed load is not cached.
type Assets struct {
	cfg   AssetConfig
	fetch Fetcher

	mu     sync.Mutex
	loaded *assetSet
}

func NewAssets(cfg AssetConfig, fetch Fetcher) *Assets {
	return &Assets{cfg: cfg, fetch: fetch}
}

func (a *Assets) get(ctx context.Context) (*assetSet, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.loaded != nil {
		return a.loaded, nil
	}

	tpl, err := a.loadTemplate(ctx)
	if err != nil {
		return nil, err
	}
	fonts, err := loadFontSet(a.cfg.FontRegular, a.cfg.FontBold)
	if err != nil {
		return nil, apperr.AssetUnavailable(err, "load certificate fonts")
	}

	a.loaded = &assetSet{template: tpl, fonts: fonts}
	return a.loaded, nil
}

func (a *Assets) loadTemplate(ctx context.Context) (*image.NRGBA, error) {
	var img image.Image

	if a.cfg.TemplatePath != "" {
		opened, err := imaging.Open(a.cfg.TemplatePath)
		switch {
		case err == nil:
			img = opened
		case errors.Is(err, fs.ErrNotExist):
			// fall through to the URL
		default:
			return nil, apperr.AssetUnavailable(err, "open certificate template %s", a.cfg.TemplatePath)
		}
	}

	if img == nil {
		if a.cfg.TemplateURL == "" || a.fetch == nil {
			return nil, apperr.AssetUnavailable(fs.ErrNotExist, "certificate template %q", a.cfg.TemplatePath)
		}
		body, err := a.fetch.FetchRawImage(ctx, a.cfg.TemplateURL)
		if err != nil {
			return nil, apperr.AssetUnavailable(err, "download certificate template")
		}
		downloaded, err := decodeImage(body)
		if err != nil {
			return nil, apperr.AssetUnavailable(err, "decode certificate template %s", a.cfg.TemplateURL)
		}
		a.storeTemplate(body)
		img = downloaded
	}

	b := img.Bounds()
	if b.Dx() != TemplateWidth || b.Dy() != TemplateHeight {
		return imaging.Resize(img, TemplateWidth, TemplateHeight, imaging.Lanczos), nil
	}
	return imaging.Clone(img), nil
}

// storeTemplate saves the downloaded bytes to TemplatePath so the next
// process start reads the file instead of the network. A failed write only
// means the download happens again after a restart.
func (a *Assets) storeTemplate(body []byte) {
	if a.cfg.TemplatePath == "" {
		return
	}
	if err := util.EnsureDir(filepath.Dir(a.cfg.TemplatePath)); err != nil {
		return
	}
	_ = os.WriteFile(a.cfg.TemplatePath, body, 0o644)
}
