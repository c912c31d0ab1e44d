package chartimg

import (
	"bytes"
	"sync"

	"github.com/custodia-labs/arbeidssokere/internal/core/domain"
	"github.com/custodia-labs/arbeidssokere/internal/core/ports/driven"
)

// Ensure Renderer implements the interface.
var _ driven.Renderer = (*Renderer)(nil)

// Renderer keeps the image of the most recent ready view.
// Loading and error frames clear it.
type Renderer struct {
	mu    sync.Mutex
	opts  Options
	image []byte
}

// NewRenderer creates an image renderer.
func NewRenderer(opts Options) *Renderer {
	return &Renderer{opts: opts.withDefaults()}
}

// Replace renders the state's chart, discarding the previous image.
func (r *Renderer) Replace(state domain.ViewState) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.image = nil
	if state.Status != domain.StatusReady || state.Chart == nil {
		return nil
	}

	var buf bytes.Buffer
	if err := Render(state.Chart, r.opts, &buf); err != nil {
		return err
	}
	r.image = buf.Bytes()
	return nil
}

// Destroy drops the current image.
func (r *Renderer) Destroy() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.image = nil
}

// Image returns the current image bytes, or nil.
func (r *Renderer) Image() []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.image
}

// Format returns the configured output format.
func (r *Renderer) Format() Format {
	return r.opts.Format
}
