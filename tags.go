package hxhead

import "strings"

// Tag formatting.
//
// Every function here writes exactly one tag. Attributes with an empty value
// are omitted and the remaining ones are written in a fixed order per tag.
// Values are written verbatim: they are trusted markup, not escaped.

// tagWriter accumulates a single tag.
type tagWriter struct {
	sb strings.Builder
}

func openTag(name string) *tagWriter {
	w := &tagWriter{}
	w.sb.WriteByte('<')
	w.sb.WriteString(name)
	return w
}

// attr writes name="value" unless value is empty.
func (w *tagWriter) attr(name, value string) *tagWriter {
	if value == "" {
		return w
	}
	w.sb.WriteByte(' ')
	w.sb.WriteString(name)
	w.sb.WriteString(`="`)
	w.sb.WriteString(value)
	w.sb.WriteByte('"')
	return w
}

// flag writes a bare attribute when on is true.
func (w *tagWriter) flag(name string, on bool) *tagWriter {
	if on {
		w.sb.WriteByte(' ')
		w.sb.WriteString(name)
	}
	return w
}

func (w *tagWriter) close() string {
	w.sb.WriteByte('>')
	return w.sb.String()
}

// MetaAttrs are the attributes of a meta tag. Exactly one of Name, HTTPEquiv
// and Property must be set.
type MetaAttrs struct {
	Name      string
	HTTPEquiv string
	Property  string
	Content   string
	ID        string
}

// discriminators counts how many of name, http-equiv and property are set.
func (a MetaAttrs) discriminators() int {
	n := 0
	for _, v := range []string{a.Name, a.HTTPEquiv, a.Property} {
		if v != "" {
			n++
		}
	}
	return n
}

func metaTag(a MetaAttrs) string {
	return openTag("meta").
		attr("name", a.Name).
		attr("http-equiv", a.HTTPEquiv).
		attr("property", a.Property).
		attr("content", a.Content).
		attr("id", a.ID).
		close()
}

func metaName(name, content string) string {
	return metaTag(MetaAttrs{Name: name, Content: content})
}

func metaProperty(property, content string) string {
	return metaTag(MetaAttrs{Property: property, Content: content})
}

func charsetTag(charset string) string {
	return openTag("meta").attr("charset", charset).close()
}

// linkAttrs are the attributes of a link tag with href already resolved.
type linkAttrs struct {
	rel      string
	sizes    string
	typ      string
	href     string
	hreflang string
	id       string
}

func linkTag(a linkAttrs) string {
	return openTag("link").
		attr("rel", a.rel).
		attr("sizes", a.sizes).
		attr("type", a.typ).
		attr("href", a.href).
		attr("hreflang", a.hreflang).
		attr("id", a.id).
		close()
}

// scriptAttrs are the attributes of a script tag with src already resolved.
type scriptAttrs struct {
	src            string
	typ            string
	async          bool
	deferred       bool
	crossOrigin    string
	integrity      string
	noModule       bool
	referrerPolicy string
	id             string
}

func scriptTag(a scriptAttrs) string {
	w := openTag("script").attr("src", a.src).attr("type", a.typ)
	if a.async {
		w.attr("async", "true")
	}
	return w.flag("defer", a.deferred).
		attr("crossorigin", a.crossOrigin).
		attr("integrity", a.integrity).
		flag("nomodule", a.noModule).
		attr("referrerpolicy", a.referrerPolicy).
		attr("id", a.id).
		close() + "</script>"
}

func baseTag(href string) string {
	return openTag("base").attr("href", href).close()
}

func titleTag(text string) string {
	return "<title>" + text + "</title>"
}

// joinLines joins the non-empty parts with newlines.
func joinLines(parts ...string) string {
	var sb strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(p)
	}
	return sb.String()
}
