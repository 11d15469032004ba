// Package res loads input documents and layout overlays from local paths,
// http(s) URLs or data URLs, caching each resource by the name it was
// requested under.
package res

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gompdf/gomresume/pkg/errors"
)

// DefaultTimeout bounds a single remote fetch.
const DefaultTimeout = 30 * time.Second

// Kind classifies a loaded resource.
type Kind int

const (
	KindUnknown Kind = iota
	// KindDocument is a YAML resume document.
	KindDocument
	// KindOverlay is a TOML layout overlay.
	KindOverlay
	// KindOther is data of any other type, left to the caller to interpret.
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindOverlay:
		return "overlay"
	case KindOther:
		return "other"
	}
	return "unknown"
}

// Resource is one loaded input.
type Resource struct {
	// Source is where the data came from after resolution: a file path,
	// a URL or the data URL itself.
	Source    string
	Kind      Kind
	MediaType string
	Data      []byte
}

// String describes the resource for logs.
func (r *Resource) String() string {
	return fmt.Sprintf("%s (%s, %d bytes)", r.Source, r.Kind, len(r.Data))
}

// Loader fetches resources. It is safe for concurrent use once configured.
type Loader struct {
	// Base is a file path or URL that relative names resolve against.
	Base string

	mu    sync.RWMutex
	cache map[string]*Resource

	dirs   []string
	client *http.Client
}

// NewLoader returns a loader resolving relative names against base, which
// may be empty.
func NewLoader(base string) *Loader {
	return &Loader{
		Base:   base,
		cache:  make(map[string]*Resource),
		client: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetClient replaces the HTTP client used for remote resources.
func (l *Loader) SetClient(c *http.Client) {
	l.client = c
}

// AddSearchPath adds a directory tried, by base name, when a local file is
// missing.
func (l *Loader) AddSearchPath(dir string) {
	l.dirs = append(l.dirs, dir)
}

// IsRemote reports whether s is an http(s) URL.
func IsRemote(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Load returns the resource named by name, fetching it on first use.
func (l *Loader) Load(ctx context.Context, name string) (*Resource, error) {
	l.mu.RLock()
	r, ok := l.cache[name]
	l.mu.RUnlock()
	if ok {
		return r, nil
	}

	r, err := l.fetch(ctx, name)
	if err != nil {
		return nil, err
	}

	l.mu.Lock()
	l.cache[name] = r
	l.mu.Unlock()
	return r, nil
}

// LoadDocument loads a resume document. Overlays are rejected; untyped data
// is accepted and left to the parser.
func (l *Loader) LoadDocument(ctx context.Context, name string) (*Resource, error) {
	return l.loadKind(ctx, name, KindOverlay, "a resume document")
}

// LoadOverlay loads a TOML layout overlay. Documents are rejected.
func (l *Loader) LoadOverlay(ctx context.Context, name string) (*Resource, error) {
	return l.loadKind(ctx, name, KindDocument, "a layout overlay")
}

func (l *Loader) loadKind(ctx context.Context, name string, reject Kind, want string) (*Resource, error) {
	r, err := l.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	if r.Kind == reject {
		return nil, errors.New(errors.ErrCodeInvalidInput, "%s is not %s", name, want)
	}
	return r, nil
}

func (l *Loader) fetch(ctx context.Context, name string) (*Resource, error) {
	if strings.HasPrefix(name, "data:") {
		return decodeDataURL(name)
	}
	loc, err := l.resolve(name)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid location %q", name)
	}
	if IsRemote(loc) {
		return l.fetchRemote(ctx, loc)
	}
	return l.readLocal(loc)
}

// resolve makes name absolute against Base. Remote names and absolute paths
// are returned unchanged.
func (l *Loader) resolve(name string) (string, error) {
	switch {
	case IsRemote(name), filepath.IsAbs(name), l.Base == "":
		return name, nil
	case !IsRemote(l.Base):
		return filepath.Join(filepath.Dir(l.Base), name), nil
	}
	base, err := url.Parse(l.Base)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(name)
	if err != nil {
		return "", err
	}
	return base.ResolveReference(ref).String(), nil
}

// Media types by extension, and the kind each media type maps to.
var (
	extMediaTypes = map[string]string{
		".yaml": "application/yaml",
		".yml":  "application/yaml",
		".toml": "application/toml",
		".txt":  "text/plain",
	}
	mediaKinds = map[string]Kind{
		"application/yaml":   KindDocument,
		"application/x-yaml": KindDocument,
		"text/yaml":          KindDocument,
		"text/x-yaml":        KindDocument,
		"application/toml":   KindOverlay,
		"text/toml":          KindOverlay,
		"text/x-toml":        KindOverlay,
	}
)

func mediaTypeOf(path string) string {
	if mt, ok := extMediaTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return mt
	}
	return "application/octet-stream"
}

// kindOf classifies by media type first and falls back to the extension,
// since servers often send text/plain for YAML.
func kindOf(mediaType, path string) Kind {
	if k, ok := mediaKinds[mediaType]; ok {
		return k
	}
	if k, ok := mediaKinds[mediaTypeOf(path)]; ok {
		return k
	}
	return KindOther
}
