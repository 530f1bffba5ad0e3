package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/klauspost/compress/zip"
)

type entry struct {
	name     string
	data     []byte
	modified time.Time
	compress bool
}

// writeArchive writes entries in order. JPEG payloads are stored as-is;
// text is deflated. Fixed timestamps keep the output reproducible.
func writeArchive(entries []entry) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, e := range entries {
		method := zip.Store
		if e.compress {
			method = zip.Deflate
		}
		hdr := &zip.FileHeader{
			Name:     e.name,
			Method:   method,
			Modified: e.modified,
		}
		hdr.SetMode(0o644)

		w, err := zw.CreateHeader(hdr)
		if err != nil {
			return nil, fmt.Errorf("create zip entry %s: %w", e.name, err)
		}
		if _, err := w.Write(e.data); err != nil {
			return nil, fmt.Errorf("write zip entry %s: %w", e.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close zip: %w", err)
	}
	return buf.Bytes(), nil
}
