package export

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/youruser/hrcerts/internal/apperr"
	"github.com/youruser/hrcerts/internal/hackerrank"
	imagepkg "github.com/youruser/hrcerts/internal/image"
	"github.com/youruser/hrcerts/internal/util"
)

type Fetcher interface {
	FetchRawImage(ctx context.Context, url string) ([]byte, error)
}

type Renderer interface {
	Render(ctx context.Context, cert hackerrank.Certificate, recipient string, opts imagepkg.RenderOptions) ([]byte, error)
}

type Request struct {
	Username     string
	Certificates []hackerrank.Certificate
	Quality      int
	// CertificateID restricts the export to one certificate when set.
	CertificateID string
	// Profile supplies the recipient name for generated images. Optional.
	Profile *hackerrank.Profile
}

// NoData is the soft result for an export with nothing in it.
type NoData struct {
	Message    string `json:"message"`
	ProfileURL string `json:"profile_url"`
}

type Result struct {
	Archive []byte
	Entries []string
	Omitted []Omission
	NoData  *NoData
}

type File struct {
	Name string
	Data []byte
}

type Packager struct {
	fetch       Fetcher
	render      Renderer
	concurrency int
	logger      *zap.Logger
}

// NewPackager builds a packager. concurrency caps parallel fetch/render work
// per export; zero leaves it unbounded.
func NewPackager(fetch Fetcher, render Renderer, concurrency int, logger *zap.Logger) *Packager {
	return &Packager{fetch: fetch, render: render, concurrency: concurrency, logger: logger}
}

// ValidateQuality reports an out-of-range export quality as InvalidArgument.
func ValidateQuality(q int) error {
	if q < 0 || q > 100 {
		return apperr.InvalidArgument("quality must be between 0 and 100, got %d", q)
	}
	return nil
}

func EntryName(c hackerrank.Certificate) string {
	return util.SafeFilename(c.ID+"__"+c.FileTitle()) + ".jpg"
}

func FileName(c hackerrank.Certificate) string {
	return util.SafeFilename(c.FileTitle()) + ".jpg"
}

func ArchiveName(username string, at time.Time) string {
	return util.SafeFilename(fmt.Sprintf("%s_hackerrank_certificates__%s", username, at.Format("02.01.2006"))) + ".zip"
}

// Package builds a zip with one JPEG per exportable certificate, in input
// order. Passed certificates that cannot be rendered are listed in a text
// manifest inside the archive. An export with nothing to include returns
// Result.NoData instead of an archive.
func (p *Packager) Package(ctx context.Context, req Request) (*Result, error) {
	if err := ValidateQuality(req.Quality); err != nil {
		return nil, err
	}

	items, err := Plan(req.Certificates, req.CertificateID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return &Result{NoData: &NoData{
			Message:    noDataMessage(req.Username),
			ProfileURL: hackerrank.ProfileURL(req.Username),
		}}, nil
	}

	var (
		jobs    []Item
		omitted []Omission
	)
	for _, item := range items {
		if item.Variant == Unrenderable {
			omitted = append(omitted, omissionOf(item))
			continue
		}
		jobs = append(jobs, item)
	}

	images, err := p.resolveAll(ctx, jobs, req)
	if err != nil {
		return nil, err
	}

	entries := make([]entry, 0, len(jobs)+1)
	names := make([]string, 0, len(jobs)+1)
	var newest time.Time
	for i, item := range jobs {
		modified, _ := item.Cert.CompletedTime()
		if modified.After(newest) {
			newest = modified
		}
		name := EntryName(item.Cert)
		entries = append(entries, entry{name: name, data: images[i], modified: modified})
		names = append(names, name)
	}
	if len(omitted) > 0 {
		entries = append(entries, entry{
			name:     ManifestName,
			data:     []byte(ManifestText(req.Username, omitted)),
			modified: newest,
			compress: true,
		})
		names = append(names, ManifestName)
	}

	archive, err := writeArchive(entries)
	if err != nil {
		return nil, err
	}

	p.logger.Info("certificates packaged",
		zap.String("username", req.Username),
		zap.Int("images", len(jobs)),
		zap.Int("omitted", len(omitted)),
		zap.Int("bytes", len(archive)))

	return &Result{Archive: archive, Entries: names, Omitted: omitted}, nil
}

// Single returns the JPEG of one certificate, preferring the upstream image.
func (p *Packager) Single(ctx context.Context, req Request) (*File, error) {
	if err := ValidateQuality(req.Quality); err != nil {
		return nil, err
	}
	if req.CertificateID == "" {
		return nil, apperr.InvalidArgument("certificate id cannot be empty")
	}

	items, err := Plan(req.Certificates, req.CertificateID)
	if err != nil {
		return nil, err
	}
	item := items[0]
	if item.Variant == Unrenderable {
		return nil, apperr.NotFound("certificate %q has no image available: %s", item.Cert.ID, item.Reason)
	}

	data, err := p.resolve(ctx, item, req)
	if err != nil {
		return nil, err
	}
	return &File{Name: FileName(item.Cert), Data: data}, nil
}

// resolveAll fetches or renders every job concurrently. Results are indexed
// by job position, so completion order does not affect the archive.
func (p *Packager) resolveAll(ctx context.Context, jobs []Item, req Request) ([][]byte, error) {
	out := make([][]byte, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	if p.concurrency > 0 {
		g.SetLimit(p.concurrency)
	}
	for i, item := range jobs {
		i, item := i, item
		g.Go(func() error {
			data, err := p.resolve(gctx, item, req)
			if err != nil {
				return err
			}
			out[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Packager) resolve(ctx context.Context, item Item, req Request) ([]byte, error) {
	switch item.Variant {
	case HasImage:
		data, err := p.fetch.FetchRawImage(ctx, item.Cert.Attributes.CertificateImage)
		if err != nil {
			return nil, fmt.Errorf("certificate %s: %w", item.Cert.ID, err)
		}
		return data, nil
	case NeedsGeneration:
		data, err := p.render.Render(ctx, item.Cert, hackerrank.RecipientName(req.Profile, item.Cert), imagepkg.RenderOptions{
			Quality:  req.Quality,
			Encoding: imagepkg.EncodingBinary,
			Format:   imagepkg.FormatJPEG,
		})
		if err != nil {
			return nil, fmt.Errorf("certificate %s: %w", item.Cert.ID, err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("certificate %s: variant %s has no image", item.Cert.ID, item.Variant)
}

func noDataMessage(username string) string {
	if strings.TrimSpace(username) == "" {
		return "There are no passed certificates to export."
	}
	return fmt.Sprintf("%s has no passed certificates to export yet. Check the profile on HackerRank.", username)
}
