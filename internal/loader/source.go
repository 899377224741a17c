package loader

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/Vikawood123/web.resume/internal/httpx"
)

// Source retrieves one named document relative to a data path prefix.
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// HTTPSource fetches {Prefix}{name} over HTTP. Prefix is a base URL that
// normally ends with a slash, e.g. "https://example.com/data/".
type HTTPSource struct {
	Prefix string
	Client *http.Client
}

func (s HTTPSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	url := s.Prefix + name
	status, body, err := httpx.Get(ctx, s.Client, url)
	if status != 0 {
		log.Printf("loader: %s status %d", name, status)
	}
	return body, err
}

// FileSource reads {Prefix}{name} from the local filesystem.
type FileSource struct {
	Prefix string
}

func (s FileSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(s.Prefix + name)
	if err != nil {
		return nil, fmt.Errorf("loader: read %s: %w", name, err)
	}
	return b, nil
}

// NewSource picks an HTTPSource for http(s) prefixes and a FileSource otherwise.
func NewSource(prefix string, client *http.Client) Source {
	p := strings.ToLower(prefix)
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return HTTPSource{Prefix: prefix, Client: client}
	}
	return FileSource{Prefix: prefix}
}
