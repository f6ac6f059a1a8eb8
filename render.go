package hxhead

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// CompileOption configures Compile.
type CompileOption func(*compileOptions)

type compileOptions struct {
	skipTitle bool
}

// SkipTitle leaves the title element out of the output, for templates that
// render <title> themselves (see TitleComponent).
func SkipTitle() CompileOption {
	return func(o *compileOptions) {
		o.skipTitle = true
	}
}

// Compile renders every stored element in order, one per line. Elements
// that render nothing are skipped, so no blank lines are produced. An empty
// Head compiles to "".
//
// Compile does not modify the Head. Resolvers are called afresh on every
// call.
func (h *Head) Compile(opts ...CompileOption) string {
	var co compileOptions
	for _, opt := range opts {
		opt(&co)
	}

	// Resolvers may read h, so they run after the lock is released.
	h.mu.RLock()
	els := make([]Element, 0, h.entries.Len())
	for key, el := range h.entries.All() {
		if co.skipTitle && key == KeyTitle {
			continue
		}
		els = append(els, el)
	}
	h.mu.RUnlock()

	parts := make([]string, 0, len(els))
	for _, el := range els {
		if s := el.HTML(); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

// String returns Compile().
func (h *Head) String() string {
	return h.Compile()
}

// Render implements templ.Component, writing the compiled head:
//
//	<head>
//	    @page.Head
//	</head>
func (h *Head) Render(ctx context.Context, w io.Writer) error {
	_, err := io.WriteString(w, h.Compile())
	return err
}

// Component returns a templ component writing Compile(opts...).
func (h *Head) Component(opts ...CompileOption) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, h.Compile(opts...))
		return err
	})
}

// TitleComponent returns a templ component writing only the <title>
// element, or nothing when no title is set. Pair it with
// Component(SkipTitle()) to place the title separately.
func (h *Head) TitleComponent() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h.mu.RLock()
		t, ok := h.title()
		h.mu.RUnlock()
		if !ok {
			return nil
		}
		_, err := io.WriteString(w, t.HTML())
		return err
	})
}

var _ templ.Component = (*Head)(nil)
