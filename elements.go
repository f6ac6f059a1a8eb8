package hxhead

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Keys of the singleton elements. A Head holds at most one element per key.
const (
	KeyCharset               = "charset"
	KeyTitle                 = "title"
	KeyBase                  = "base"
	KeyDescription           = "description"
	KeyKeywords              = "keywords"
	KeySubject               = "subject"
	KeyRating                = "rating"
	KeyRobots                = "robots"
	KeyViewport              = "viewport"
	KeyContentSecurityPolicy = "content_security_policy"
	KeyApplicationName       = "application_name"
	KeyThemeColor            = "theme_color"
	KeyReferrerPolicy        = "referrer_policy"
	KeyFormatDetection       = "format_detection"
	KeyGoogle                = "google"
	KeyVerification          = "verification"
	KeyOpenGraphWebsite      = "open_graph_website"
	KeyTwitterCard           = "twitter_card"
	KeyGeoPosition           = "geo_position"
	KeyFavicon               = "favicon"
)

// Defaults applied when the corresponding element is left empty.
const (
	DefaultCharset               = "utf-8"
	DefaultViewport              = "width=device-width, initial-scale=1"
	DefaultContentSecurityPolicy = "default-src 'self'"
)

// Element is one renderable unit of a document head.
//
// Key returns the element's semantic identity, or "" when it has none.
// Unique reports whether the element is a singleton: singletons always have
// a key and a Head keeps only the last one inserted per key. Non-unique
// elements (Meta, Link, Script, Stylesheet) are keyed by their ID when one
// is given and by position otherwise.
//
// HTML renders the element. It returns "" when the element has nothing to
// emit, which a Head uses to drop it from the output.
//
// The set of elements is closed: only types in this package implement
// Element.
type Element interface {
	Key() string
	Unique() bool
	HTML() string

	element()
}

// singleton is embedded by elements that occupy a fixed key.
type singleton struct{}

func (singleton) Unique() bool { return true }
func (singleton) element()     {}

// Charset renders <meta charset>. The empty value renders DefaultCharset.
type Charset string

func (Charset) Key() string  { return KeyCharset }
func (Charset) Unique() bool { return true }
func (Charset) element()     {}

func (c Charset) HTML() string {
	if c == "" {
		return charsetTag(DefaultCharset)
	}
	return charsetTag(string(c))
}

// Affix is a piece of text joined to a title with a separator.
type Affix struct {
	Text      string
	Separator string
}

// Title renders the <title> element.
//
// Prepends are written before the text as "text+separator" in order,
// appends after it as "separator+text" in order:
//
//	Title{Text: "Docs", Appends: []Affix{{"Acme", " | "}}} // Docs | Acme
type Title struct {
	singleton

	Text     string
	Prepends []Affix
	Appends  []Affix
}

func (Title) Key() string { return KeyTitle }

// String returns the full title text without tags.
func (t Title) String() string {
	var sb strings.Builder
	for _, a := range t.Prepends {
		sb.WriteString(a.Text)
		sb.WriteString(a.Separator)
	}
	sb.WriteString(t.Text)
	for _, a := range t.Appends {
		sb.WriteString(a.Separator)
		sb.WriteString(a.Text)
	}
	return sb.String()
}

func (t Title) HTML() string { return titleTag(t.String()) }

// Append returns a copy of t with text appended after the existing appends.
func (t Title) Append(text, separator string) Title {
	appends := make([]Affix, 0, len(t.Appends)+1)
	appends = append(appends, t.Appends...)
	t.Appends = append(appends, Affix{Text: text, Separator: separator})
	t.Prepends = append([]Affix(nil), t.Prepends...)
	return t
}

// Prepend returns a copy of t with text placed before the existing prepends.
func (t Title) Prepend(text, separator string) Title {
	prepends := make([]Affix, 0, len(t.Prepends)+1)
	prepends = append(prepends, Affix{Text: text, Separator: separator})
	t.Prepends = append(prepends, t.Prepends...)
	t.Appends = append([]Affix(nil), t.Appends...)
	return t
}

// Base renders <base href>.
type Base struct {
	singleton

	Href Resolver
}

func (Base) Key() string    { return KeyBase }
func (b Base) HTML() string { return baseTag(resolve(b.Href)) }

// namedMeta declares a singleton string element rendered as
// <meta name=... content=...>.
type namedMeta interface {
	~string
}

func renderNamed[T namedMeta](name string, v T) string {
	return metaName(name, string(v))
}

// Description renders <meta name="description">.
type Description string

func (Description) Key() string    { return KeyDescription }
func (Description) Unique() bool   { return true }
func (Description) element()       {}
func (d Description) HTML() string { return renderNamed("description", d) }

// Subject renders <meta name="subject">.
type Subject string

func (Subject) Key() string    { return KeySubject }
func (Subject) Unique() bool   { return true }
func (Subject) element()       {}
func (s Subject) HTML() string { return renderNamed("subject", s) }

// Rating renders <meta name="rating">.
type Rating string

func (Rating) Key() string    { return KeyRating }
func (Rating) Unique() bool   { return true }
func (Rating) element()       {}
func (r Rating) HTML() string { return renderNamed("rating", r) }

// Robots renders <meta name="robots">, e.g. Robots("noindex, nofollow").
type Robots string

func (Robots) Key() string    { return KeyRobots }
func (Robots) Unique() bool   { return true }
func (Robots) element()       {}
func (r Robots) HTML() string { return renderNamed("robots", r) }

// Viewport renders <meta name="viewport">. The empty value renders
// DefaultViewport.
type Viewport string

func (Viewport) Key() string  { return KeyViewport }
func (Viewport) Unique() bool { return true }
func (Viewport) element()     {}

func (v Viewport) HTML() string {
	if v == "" {
		v = DefaultViewport
	}
	return renderNamed("viewport", v)
}

// ApplicationName renders <meta name="application-name">.
type ApplicationName string

func (ApplicationName) Key() string    { return KeyApplicationName }
func (ApplicationName) Unique() bool   { return true }
func (ApplicationName) element()       {}
func (a ApplicationName) HTML() string { return renderNamed("application-name", a) }

// ThemeColor renders <meta name="theme-color">.
type ThemeColor string

func (ThemeColor) Key() string    { return KeyThemeColor }
func (ThemeColor) Unique() bool   { return true }
func (ThemeColor) element()       {}
func (c ThemeColor) HTML() string { return renderNamed("theme-color", c) }

// ContentSecurityPolicy renders
// <meta http-equiv="Content-Security-Policy">. The empty value renders
// DefaultContentSecurityPolicy.
type ContentSecurityPolicy string

func (ContentSecurityPolicy) Key() string  { return KeyContentSecurityPolicy }
func (ContentSecurityPolicy) Unique() bool { return true }
func (ContentSecurityPolicy) element()     {}

func (c ContentSecurityPolicy) HTML() string {
	if c == "" {
		c = DefaultContentSecurityPolicy
	}
	return metaTag(MetaAttrs{HTTPEquiv: "Content-Security-Policy", Content: string(c)})
}

// Meta is an arbitrary meta tag. Build one with NewMeta, which enforces that
// exactly one of name, http-equiv and property is set.
type Meta struct {
	attrs MetaAttrs
}

// NewMeta validates attrs and returns the meta element.
// It returns ErrInvalidAttributeCombination when none, or more than one, of
// Name, HTTPEquiv and Property is set.
func NewMeta(attrs MetaAttrs) (Meta, error) {
	if attrs.discriminators() != 1 {
		return Meta{}, fmt.Errorf("meta %+v: %w", attrs, ErrInvalidAttributeCombination)
	}
	return Meta{attrs: attrs}, nil
}

// MustMeta is like NewMeta but panics on invalid attributes.
func MustMeta(attrs MetaAttrs) Meta {
	m, err := NewMeta(attrs)
	if err != nil {
		panic(err)
	}
	return m
}

// MetaName returns <meta name=... content=...>.
func MetaName(name, content string) Meta {
	return MustMeta(MetaAttrs{Name: name, Content: content})
}

// MetaProperty returns <meta property=... content=...>.
func MetaProperty(property, content string) Meta {
	return MustMeta(MetaAttrs{Property: property, Content: content})
}

// MetaHTTPEquiv returns <meta http-equiv=... content=...>.
func MetaHTTPEquiv(httpEquiv, content string) Meta {
	return MustMeta(MetaAttrs{HTTPEquiv: httpEquiv, Content: content})
}

// Attrs returns the meta tag's attributes.
func (m Meta) Attrs() MetaAttrs { return m.attrs }

func (m Meta) Key() string { return m.attrs.ID }
func (Meta) Unique() bool  { return false }
func (Meta) element()      {}

// HTML renders nothing for a Meta that did not come from NewMeta, such as
// the zero value.
func (m Meta) HTML() string {
	if m.attrs.discriminators() != 1 {
		return ""
	}
	return metaTag(m.attrs)
}

func (m Meta) contentKey() string {
	a := m.attrs
	return digestKey("meta", a.Name, a.HTTPEquiv, a.Property, a.Content)
}

// Link is an arbitrary link tag.
type Link struct {
	Rel      string
	Href     Resolver
	Sizes    string
	Type     string
	Hreflang string
	ID       string
}

func (l Link) Key() string { return l.ID }
func (Link) Unique() bool  { return false }
func (Link) element()      {}

func (l Link) HTML() string {
	return linkTag(linkAttrs{
		rel:      l.Rel,
		sizes:    l.Sizes,
		typ:      l.Type,
		href:     resolve(l.Href),
		hreflang: l.Hreflang,
		id:       l.ID,
	})
}

func (l Link) contentKey() string {
	href, ok := literalValue(l.Href)
	if !ok {
		return ""
	}
	return digestKey("link", l.Rel, href, l.Sizes, l.Type, l.Hreflang)
}

// Stylesheet is a <link rel="stylesheet">.
type Stylesheet struct {
	Href Resolver
	ID   string
}

func (s Stylesheet) Key() string { return s.ID }
func (Stylesheet) Unique() bool  { return false }
func (Stylesheet) element()      {}

func (s Stylesheet) HTML() string {
	return linkTag(linkAttrs{rel: "stylesheet", href: resolve(s.Href), id: s.ID})
}

func (s Stylesheet) contentKey() string {
	href, ok := literalValue(s.Href)
	if !ok {
		return ""
	}
	return digestKey("stylesheet", href)
}

// Script is a <script src> tag. Async renders as async="true"; Defer and
// NoModule render as bare attributes.
type Script struct {
	Src            Resolver
	Type           string
	Async          bool
	Defer          bool
	CrossOrigin    string
	Integrity      string
	NoModule       bool
	ReferrerPolicy string
	ID             string
}

func (s Script) Key() string { return s.ID }
func (Script) Unique() bool  { return false }
func (Script) element()      {}

func (s Script) HTML() string {
	return scriptTag(scriptAttrs{
		src:            resolve(s.Src),
		typ:            s.Type,
		async:          s.Async,
		deferred:       s.Defer,
		crossOrigin:    s.CrossOrigin,
		integrity:      s.Integrity,
		noModule:       s.NoModule,
		referrerPolicy: s.ReferrerPolicy,
		id:             s.ID,
	})
}

func (s Script) contentKey() string {
	src, ok := literalValue(s.Src)
	if !ok {
		return ""
	}
	return digestKey("script", src)
}

// contentKeyer is implemented by non-unique elements that can derive an
// identity from their attributes. An empty key means the element holds a
// deferred value and has no stable identity before render.
type contentKeyer interface {
	contentKey() string
}

// digestKey derives a stable key from a tag kind and its attribute values.
func digestKey(kind string, values ...string) string {
	h := sha256.New()
	for _, v := range values {
		h.Write([]byte(v))
		h.Write([]byte{0})
	}
	return kind + "-" + hex.EncodeToString(h.Sum(nil)[:8])
}
