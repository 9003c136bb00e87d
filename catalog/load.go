package catalog

import (
	"context"
	"embed"
	"fmt"
	"strings"

	"github.com/viant/afs"
	_ "github.com/viant/afs/embed"
	"github.com/viant/afs/storage"
	"gopkg.in/yaml.v3"
)

const (
	defaultFile = "catalog.yaml"
	// DefaultURL locates the catalog compiled into the binary.
	DefaultURL = "embed:///" + defaultFile
)

//go:embed catalog.yaml
var files embed.FS

type document struct {
	Tools []*Declaration `yaml:"tools"`
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	doc := &document{}
	if err := yaml.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if len(doc.Tools) == 0 {
		return nil, fmt.Errorf("catalog had no tools")
	}
	return New(doc.Tools)
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	data, err := files.ReadFile(defaultFile)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Load reads a catalog from any afs supported URL (file://, embed://, mem://, s3:// ...).
// An empty URL loads the default catalog.
func Load(ctx context.Context, URL string, options ...storage.Option) (*Catalog, error) {
	if URL == "" || URL == DefaultURL {
		return Default()
	}
	if strings.HasPrefix(URL, "embed:") {
		options = append(options, files)
	}
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %v: %w", URL, err)
	}
	ret, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog %v: %w", URL, err)
	}
	return ret, nil
}
