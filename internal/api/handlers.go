package api

import (
	"mime"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/youruser/hrcerts/internal/apperr"
	"github.com/youruser/hrcerts/internal/cards"
	"github.com/youruser/hrcerts/internal/export"
	"github.com/youruser/hrcerts/internal/hackerrank"
	imagepkg "github.com/youruser/hrcerts/internal/image"
)

type Handler struct {
	gateway  hackerrank.Gateway
	render   export.Renderer
	packager *export.Packager
	quality  int
	logger   *zap.Logger
	now      func() time.Time
}

// NewHandler wires the HTTP surface. defaultQuality applies when a request
// has no quality parameter.
func NewHandler(gateway hackerrank.Gateway, render export.Renderer, packager *export.Packager, defaultQuality int, logger *zap.Logger) *Handler {
	return &Handler{
		gateway:  gateway,
		render:   render,
		packager: packager,
		quality:  defaultQuality,
		logger:   logger,
		now:      time.Now,
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) background(c *gin.Context) {
	title := strings.TrimSpace(c.Query("title"))
	if title == "" {
		h.writeError(c, apperr.InvalidArgument("title is required"))
		return
	}
	name := hackerrank.BackgroundAssetName(title)
	c.JSON(http.StatusOK, gin.H{"name": name, "url": hackerrank.BackgroundURL(name)})
}

// userPage returns the profile summary with filtered, sorted cards.
func (h *Handler) userPage(c *gin.Context) {
	data, err := cards.LoadUser(c.Request.Context(), h.gateway, c.Param("username"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards.BuildPage(data.Profile, data.Certificates, filterOptions(c)))
}

func (h *Handler) certificates(c *gin.Context) {
	username := c.Param("username")
	certs, err := h.gateway.FetchCertificates(c.Request.Context(), username)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": username, "count": len(certs), "certificates": certs})
}

// certificateImage renders a certificate locally, optionally as a resized
// preview or a base64 data URI.
func (h *Handler) certificateImage(c *gin.Context) {
	quality, err := intQuery(c, "quality", h.quality)
	if err != nil {
		h.writeError(c, err)
		return
	}
	width, err := intQuery(c, "width", 0)
	if err != nil {
		h.writeError(c, err)
		return
	}
	opts := imagepkg.RenderOptions{
		Quality:  quality,
		Encoding: imagepkg.Encoding(c.DefaultQuery("encoding", string(imagepkg.EncodingBinary))),
		Format:   imagepkg.Format(c.DefaultQuery("format", string(imagepkg.FormatJPEG))),
		Width:    width,
	}
	if err := opts.Validate(); err != nil {
		h.writeError(c, err)
		return
	}

	data, err := cards.LoadUser(c.Request.Context(), h.gateway, c.Param("username"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	items, err := export.Plan(data.Certificates, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	item := items[0]
	if item.Variant == export.Unrenderable {
		h.writeError(c, apperr.NotFound("certificate %q cannot be rendered: %s", item.Cert.ID, item.Reason))
		return
	}

	out, err := h.render.Render(c.Request.Context(), item.Cert, hackerrank.RecipientName(&data.Profile, item.Cert), opts)
	if err != nil {
		h.writeError(c, err)
		return
	}

	contentType := opts.Format.MIME()
	if opts.Encoding == imagepkg.EncodingBase64 {
		contentType = "text/plain; charset=utf-8"
	}
	c.Data(http.StatusOK, contentType, out)
}

// certificateDownload serves one JPEG, preferring the upstream image.
func (h *Handler) certificateDownload(c *gin.Context) {
	quality, err := h.exportQuality(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	username := c.Param("username")
	data, err := cards.LoadUser(c.Request.Context(), h.gateway, username)
	if err != nil {
		h.writeError(c, err)
		return
	}

	file, err := h.packager.Single(c.Request.Context(), export.Request{
		Username:      username,
		Certificates:  data.Certificates,
		Quality:       quality,
		CertificateID: c.Param("id"),
		Profile:       &data.Profile,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	attachment(c, file.Name)
	c.Data(http.StatusOK, "image/jpeg", file.Data)
}

func (h *Handler) certificateQR(c *gin.Context) {
	size, err := intQuery(c, "size", imagepkg.DefaultQRSize)
	if err != nil {
		h.writeError(c, err)
		return
	}

	certs, err := h.gateway.FetchCertificates(c.Request.Context(), c.Param("username"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	id := c.Param("id")
	idx := -1
	for i, cert := range certs {
		if strings.EqualFold(cert.ID, id) {
			idx = i
			break
		}
	}
	if idx < 0 {
		h.writeError(c, apperr.NotFound("certificate %q not found", id))
		return
	}

	png, err := imagepkg.ShareQR(certs[idx], size)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}

// download packages every exportable certificate of a user, or the one named
// by the id parameter, into a zip. A user with nothing to export gets a 200
// JSON body pointing at their public profile.
func (h *Handler) download(c *gin.Context) {
	quality, err := h.exportQuality(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	username := c.Param("username")
	data, err := cards.LoadUser(c.Request.Context(), h.gateway, username)
	if err != nil {
		h.writeError(c, err)
		return
	}

	res, err := h.packager.Package(c.Request.Context(), export.Request{
		Username:      username,
		Certificates:  data.Certificates,
		Quality:       quality,
		CertificateID: strings.TrimSpace(c.Query("id")),
		Profile:       &data.Profile,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}
	if res.NoData != nil {
		c.JSON(http.StatusOK, res.NoData)
		return
	}

	attachment(c, export.ArchiveName(username, h.now()))
	c.Data(http.StatusOK, "application/zip", res.Archive)
}

// exportQuality reads and range-checks the quality parameter before any
// upstream request is made.
func (h *Handler) exportQuality(c *gin.Context) (int, error) {
	q, err := intQuery(c, "quality", h.quality)
	if err != nil {
		return 0, err
	}
	if err := export.ValidateQuality(q); err != nil {
		return 0, err
	}
	return q, nil
}

func attachment(c *gin.Context, filename string) {
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
}

func intQuery(c *gin.Context, key string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apperr.InvalidArgument("%s must be an integer, got %q", key, raw)
	}
	return v, nil
}

// listQuery accepts both repeated and comma-separated values.
func listQuery(c *gin.Context, key string) []string {
	var out []string
	for _, raw := range c.QueryArray(key) {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func filterOptions(c *gin.Context) cards.FilterOptions {
	return cards.FilterOptions{
		Statuses:  listQuery(c, "status"),
		Types:     listQuery(c, "type"),
		Levels:    listQuery(c, "level"),
		FreeWords: c.Query("q"),
	}
}
