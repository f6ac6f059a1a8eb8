package hxhead

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/pthm/hxhead/lib/ordered"
)

// Head holds the elements of a document head, keyed by semantic identity.
//
// Elements are inserted in order. A singleton replaces any element already
// stored under its key, keeping that entry's position. Non-unique elements
// with an ID are keyed by the ID; without one they are keyed by their
// position in the insertion call, so they never collide with anything.
// Composites (Page, SocialMediaCard) are expanded into their members.
//
// A Head is safe for concurrent use; renders may run in parallel with each
// other while mutations are serialized.
type Head struct {
	mu      sync.RWMutex
	entries *ordered.Map[string, Element]
	batches [][]Element
	opts    options
}

// Option configures a Head.
type Option func(*options)

type options struct {
	logger      *zap.Logger
	contentKeys bool
}

// WithLogger sets the logger used to report replaced and evicted elements
// at debug level. The default logger discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithContentKeys keys non-unique elements that have no ID by a digest of
// their attributes instead of their position, so that inserting the same
// script or stylesheet twice keeps a single copy. Elements whose URL is a
// deferred Resolver still fall back to their position.
func WithContentKeys() Option {
	return func(o *options) {
		o.contentKeys = true
	}
}

// New creates a Head holding elements.
//
//	head := hxhead.New(
//	    hxhead.Page{Title: "Docs", Description: "Reference manual"},
//	    hxhead.Stylesheet{Href: hxhead.Literal("/static/main.css")},
//	)
//
// New panics if any element is nil.
func New(elements ...Element) *Head {
	return NewWithOptions(nil, elements...)
}

// NewWithOptions is like New with options applied before the elements are
// inserted.
func NewWithOptions(opts []Option, elements ...Element) *Head {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	h := &Head{
		entries: ordered.New[string, Element](),
		opts:    o,
	}
	h.insertAll(elements)
	return h
}

// Extend inserts more elements, applying the same rules as New against the
// elements already present. Positional keys are scoped to each call, so an
// ID-less element from one call never overwrites one from another.
//
// Extend panics if any element is nil.
func (h *Head) Extend(elements ...Element) *Head {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.insertAll(elements)
	return h
}

// insertAll records elements as a new batch and inserts them. The caller
// holds the write lock, or owns h exclusively.
func (h *Head) insertAll(elements []Element) {
	batch := len(h.batches)
	h.batches = append(h.batches, append([]Element(nil), elements...))

	for i, el := range elements {
		if el == nil {
			panic(fmt.Sprintf("hxhead: nil element at index %d", i))
		}
		if c, ok := el.(composite); ok {
			h.expand(c)
			continue
		}
		h.upsert(h.identity(batch, i, el), el)
	}
}

// identity computes the key el is stored under.
func (h *Head) identity(batch, index int, el Element) string {
	if key := el.Key(); key != "" {
		return key
	}
	if el.Unique() {
		panic(fmt.Sprintf("hxhead: singleton %T has no key", el))
	}
	if h.opts.contentKeys {
		if ck, ok := el.(contentKeyer); ok {
			if key := ck.contentKey(); key != "" {
				return key
			}
		}
	}
	return fmt.Sprintf("#%d.%d", batch, index)
}

func (h *Head) expand(c composite) {
	members := c.members()
	supplied := make(map[string]bool, len(members))
	for _, m := range members {
		supplied[m.Key()] = true
	}
	for _, key := range c.evicts() {
		if supplied[key] {
			continue
		}
		if h.entries.Delete(key) {
			h.opts.logger.Debug("element evicted",
				zap.String("key", key),
				zap.String("by", fmt.Sprintf("%T", c)))
		}
	}
	for _, m := range members {
		h.upsert(m.Key(), m)
	}
}

func (h *Head) upsert(key string, el Element) {
	if h.entries.Set(key, el) {
		h.opts.logger.Debug("element replaced",
			zap.String("key", key),
			zap.String("type", fmt.Sprintf("%T", el)))
	}
}

// Title returns the text of the title element, without tags, and whether a
// title is set.
func (h *Head) Title() (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	t, ok := h.title()
	if !ok {
		return "", false
	}
	return t.String(), true
}

func (h *Head) title() (Title, bool) {
	el, ok := h.entries.Get(KeyTitle)
	if !ok {
		return Title{}, false
	}
	t, ok := el.(Title)
	return t, ok
}

// AppendTitle appends text to the current title, e.g. a site name after a
// page name. It returns ErrMissingPrerequisite when no title is set.
func (h *Head) AppendTitle(text, separator string) error {
	return h.editTitle("append", func(t Title) Title { return t.Append(text, separator) })
}

// PrependTitle places text before the current title. It returns
// ErrMissingPrerequisite when no title is set.
func (h *Head) PrependTitle(text, separator string) error {
	return h.editTitle("prepend", func(t Title) Title { return t.Prepend(text, separator) })
}

func (h *Head) editTitle(op string, edit func(Title) Title) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	t, ok := h.title()
	if !ok {
		return fmt.Errorf("%s title: %w", op, ErrMissingPrerequisite)
	}
	// Recorded as its own batch so that Copy replays the edit.
	h.insertAll([]Element{edit(t)})
	return nil
}

// Get returns the element stored under key.
func (h *Head) Get(key string) (Element, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.entries.Get(key)
}

// Keys returns the identity keys in render order.
func (h *Head) Keys() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.entries.Keys()
}

// Elements returns the stored elements in render order.
func (h *Head) Elements() []Element {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.entries.Values()
}

// Len returns the number of stored elements.
func (h *Head) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.entries.Len()
}

// Copy returns an independent Head rebuilt by replaying every insertion made
// into h, with the same options. Changes to the copy never affect h.
func (h *Head) Copy() *Head {
	h.mu.RLock()
	defer h.mu.RUnlock()
	c := &Head{
		entries: ordered.New[string, Element](),
		opts:    h.opts,
	}
	for _, batch := range h.batches {
		c.insertAll(batch)
	}
	return c
}
