// Package clip puts emoji glyphs on the system clipboard.
package clip

import (
	"errors"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnsupported means no clipboard utility is available on this system.
var ErrUnsupported = errors.New("clipboard unsupported on this system")

// Copier writes text to a clipboard.
type Copier interface {
	Copy(text string) error
}

// System is the OS clipboard.
type System struct{}

func (System) Copy(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(text)
}

// Recorder keeps copied texts in memory.
type Recorder struct {
	mu     sync.Mutex
	copies []string
}

func (r *Recorder) Copy(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.copies = append(r.copies, text)
	return nil
}

// Copies returns every text copied so far.
func (r *Recorder) Copies() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.copies))
	copy(out, r.copies)
	return out
}
