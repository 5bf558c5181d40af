// Package media handles the client side of uploaded assets: transient
// previews of files picked for upload, and URL construction for assets
// the backend already stores.
package media

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
)

// Preview is one transient local copy of a file selected for upload,
// staged so it can be shown before the upload happens.
type Preview struct {
	Filename string
	path     string
}

// Path returns the staged file's location on disk
func (p *Preview) Path() string {
	return p.path
}

// Open opens the staged file for reading
func (p *Preview) Open() (io.ReadCloser, error) {
	return os.Open(p.path)
}

func (p *Preview) release() error {
	return os.Remove(p.path)
}

// PreviewManager enforces the preview lifecycle: at most one live preview
// per form field. Staging a new file for a field releases the previous
// one, and Close releases everything.
type PreviewManager struct {
	dir string

	mu   sync.Mutex
	live map[string]*Preview
}

// NewPreviewManager stages previews under dir, or the system temp
// directory when dir is empty.
func NewPreviewManager(dir string) *PreviewManager {
	if dir == "" {
		dir = os.TempDir()
	}
	return &PreviewManager{dir: dir, live: make(map[string]*Preview)}
}

// Stage copies content into a fresh staged file for the given form field,
// releasing any preview previously staged for it.
func (m *PreviewManager) Stage(field, filename string, content io.Reader) (*Preview, error) {
	staged := filepath.Join(m.dir, "preview-"+uuid.New().String())

	f, err := os.Create(staged)
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		os.Remove(staged)
		return nil, err
	}
	if err := f.Close(); err != nil {
		os.Remove(staged)
		return nil, err
	}

	preview := &Preview{Filename: filename, path: staged}

	m.mu.Lock()
	prev := m.live[field]
	m.live[field] = preview
	m.mu.Unlock()

	if prev != nil {
		prev.release()
	}
	return preview, nil
}

// Live returns the preview currently staged for a field, or nil
func (m *PreviewManager) Live(field string) *Preview {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.live[field]
}

// Release drops the preview staged for a field, if any
func (m *PreviewManager) Release(field string) {
	m.mu.Lock()
	prev := m.live[field]
	delete(m.live, field)
	m.mu.Unlock()

	if prev != nil {
		prev.release()
	}
}

// Close releases every staged preview. Meant for form unmount/teardown.
func (m *PreviewManager) Close() {
	m.mu.Lock()
	live := m.live
	m.live = make(map[string]*Preview)
	m.mu.Unlock()

	for _, p := range live {
		p.release()
	}
}
