// Package thumbnail resolves artwork references to URIs and generates
// missing video thumbnails.
package thumbnail

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/llehouerou/reel/internal/library"
)

// Built-in placeholder resources used when no artwork can be resolved.
const (
	VideoPlaceholder = "resource://reel/video-placeholder"
	AudioPlaceholder = "resource://reel/audio-placeholder"
)

var ErrInvalidReference = errors.New("invalid artwork reference")

// FileURI converts an absolute file path to a file:// URI.
func FileURI(path string) (string, error) {
	if path == "" || !filepath.IsAbs(path) {
		return "", fmt.Errorf("%w: %q", ErrInvalidReference, path)
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String(), nil
}

// Generator produces a thumbnail image for a media file and returns its path.
type Generator interface {
	Generate(ctx context.Context, m *library.Media) (string, error)
}

// Recorder stores a generated thumbnail on the media record.
type Recorder interface {
	SetThumbnail(id int64, mrl string) error
}

type Resolver struct {
	gen      Generator
	recorder Recorder

	mu     sync.Mutex
	failed map[int64]bool // media whose generation failed, not retried
}

// NewResolver creates a resolver. gen and recorder may be nil, in which case
// no thumbnail is ever generated.
func NewResolver(gen Generator, recorder Recorder) *Resolver {
	return &Resolver{gen: gen, recorder: recorder, failed: make(map[int64]bool)}
}

// Resolve turns a stored artwork reference into a URI. References that
// already carry a scheme are returned as is. Returns "" when the reference
// cannot be resolved.
func (r *Resolver) Resolve(ref string) string {
	if strings.Contains(ref, "://") {
		return ref
	}
	uri, err := FileURI(ref)
	if err != nil {
		return ""
	}
	return uri
}

// ForMedia returns the thumbnail URI for a media record: its stored artwork,
// a freshly generated frame for videos that have none yet, or a placeholder.
// It never fails.
func (r *Resolver) ForMedia(ctx context.Context, m *library.Media) string {
	if m == nil {
		return AudioPlaceholder
	}
	placeholder := AudioPlaceholder
	if m.Type == library.Video {
		placeholder = VideoPlaceholder
	}

	if m.ArtworkMRL == "" && m.Type == library.Video && !m.ThumbnailGenerated {
		r.generate(ctx, m)
	}
	if m.ArtworkMRL == "" {
		return placeholder
	}
	if uri := r.Resolve(m.ArtworkMRL); uri != "" {
		return uri
	}
	return placeholder
}

func (r *Resolver) generate(ctx context.Context, m *library.Media) {
	if r.gen == nil || r.hasFailed(m.ID) {
		return
	}
	path, err := r.gen.Generate(ctx, m)
	if err != nil {
		log.Printf("thumbnail: generate %s: %v", m.Path, err)
		// A cancelled query says nothing about the file.
		if ctx.Err() == nil {
			r.markFailed(m.ID)
		}
		return
	}
	m.ArtworkMRL = path
	m.ThumbnailGenerated = true
	if r.recorder == nil {
		return
	}
	if err := r.recorder.SetThumbnail(m.ID, path); err != nil {
		log.Printf("thumbnail: record %d: %v", m.ID, err)
	}
}

func (r *Resolver) hasFailed(id int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failed[id]
}

func (r *Resolver) markFailed(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed[id] = true
}
