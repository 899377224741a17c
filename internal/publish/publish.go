package publish

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/andybalholm/brotli"

	"github.com/Vikawood123/web.resume/internal/page"
)

// BrotliExt is appended to the page path for the precompressed copy.
const BrotliExt = ".br"

// WritePage renders doc to outPath. With compress set, a brotli copy is
// written next to it (index.html.br). It returns every file written.
func WritePage(outPath string, doc *page.Document, compress bool) ([]string, error) {
	if dir := filepath.Dir(outPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("publish: create output dir: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return nil, fmt.Errorf("publish: render page: %w", err)
	}

	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("publish: write page: %w", err)
	}
	written := []string{outPath}

	if compress {
		brPath := outPath + BrotliExt
		if err := writeBrotli(brPath, buf.Bytes()); err != nil {
			return written, err
		}
		written = append(written, brPath)
	}
	return written, nil
}

func writeBrotli(path string, data []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("publish: create %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	bw := brotli.NewWriterLevel(f, brotli.BestCompression)
	if _, err := io.Copy(bw, bytes.NewReader(data)); err != nil {
		bw.Close()
		return fmt.Errorf("publish: compress: %w", err)
	}
	if err := bw.Close(); err != nil {
		return fmt.Errorf("publish: compress: %w", err)
	}
	return f.Close()
}
