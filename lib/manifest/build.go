package manifest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pthm/hxhead"
)

// builders maps each kind to the function reading its fields.
var builders = map[string]func(*fields) hxhead.Element{
	"charset":                 func(f *fields) hxhead.Element { return hxhead.Charset(f.str("value")) },
	"description":             func(f *fields) hxhead.Element { return hxhead.Description(f.str("value")) },
	"subject":                 func(f *fields) hxhead.Element { return hxhead.Subject(f.str("value")) },
	"rating":                  func(f *fields) hxhead.Element { return hxhead.Rating(f.str("value")) },
	"robots":                  func(f *fields) hxhead.Element { return hxhead.Robots(f.str("value")) },
	"viewport":                func(f *fields) hxhead.Element { return hxhead.Viewport(f.str("value")) },
	"application_name":        func(f *fields) hxhead.Element { return hxhead.ApplicationName(f.str("value")) },
	"theme_color":             func(f *fields) hxhead.Element { return hxhead.ThemeColor(f.str("value")) },
	"content_security_policy": func(f *fields) hxhead.Element { return hxhead.ContentSecurityPolicy(f.str("value")) },
	"keywords":                func(f *fields) hxhead.Element { return f.keywords("value") },
	"title":                   buildTitle,
	"base":                    func(f *fields) hxhead.Element { return hxhead.Base{Href: f.href("href")} },
	"meta":                    buildMeta,
	"link":                    buildLink,
	"stylesheet": func(f *fields) hxhead.Element {
		return hxhead.Stylesheet{Href: f.href("href"), ID: f.str("id")}
	},
	"script":             buildScript,
	"google":             buildGoogle,
	"verification":       buildVerification,
	"geo_position":       buildGeoPosition,
	"format_detection":   buildFormatDetection,
	"referrer_policy":    buildReferrerPolicy,
	"open_graph_website": buildOpenGraph,
	"twitter_card":       buildTwitterCard,
	"favicon":            buildFavicon,
	"page":               buildPage,
	"social_media_card":  buildSocialMediaCard,
}

// Kinds returns the recognized element kinds, sorted.
func Kinds() []string {
	kinds := make([]string, 0, len(builders))
	for k := range builders {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

func build(e Entry) (hxhead.Element, error) {
	kind := e.Kind()
	b, ok := builders[kind]
	if !ok {
		return nil, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
	}
	f := &fields{entry: e, used: map[string]bool{"kind": true}}
	el := b(f)
	if err := f.done(); err != nil {
		return nil, err
	}
	return el, nil
}

func buildTitle(f *fields) hxhead.Element {
	return hxhead.Title{
		Text:     f.str("text"),
		Prepends: f.affixes("prepends"),
		Appends:  f.affixes("appends"),
	}
}

func buildMeta(f *fields) hxhead.Element {
	m, err := hxhead.NewMeta(hxhead.MetaAttrs{
		Name:      f.str("name"),
		HTTPEquiv: f.str("http_equiv"),
		Property:  f.str("property"),
		Content:   f.str("content"),
		ID:        f.str("id"),
	})
	if err != nil {
		f.fail(err)
	}
	return m
}

func buildLink(f *fields) hxhead.Element {
	return hxhead.Link{
		Rel:      f.str("rel"),
		Href:     f.href("href"),
		Sizes:    f.str("sizes"),
		Type:     f.str("type"),
		Hreflang: f.str("hreflang"),
		ID:       f.str("id"),
	}
}

func buildScript(f *fields) hxhead.Element {
	return hxhead.Script{
		Src:            f.href("src"),
		Type:           f.str("type"),
		Async:          f.boolean("async"),
		Defer:          f.boolean("defer"),
		CrossOrigin:    f.str("crossorigin"),
		Integrity:      f.str("integrity"),
		NoModule:       f.boolean("nomodule"),
		ReferrerPolicy: f.str("referrerpolicy"),
		ID:             f.str("id"),
	}
}

func buildGoogle(f *fields) hxhead.Element {
	return hxhead.Google{
		Googlebot:            f.str("googlebot"),
		Index:                f.toggle("index"),
		Follow:               f.toggle("follow"),
		NoSitelinksSearchBox: f.boolean("no_sitelinks_search_box"),
		NoTranslate:          f.boolean("no_translate"),
	}
}

func buildVerification(f *fields) hxhead.Element {
	return hxhead.Verification{
		Google:    f.str("google"),
		Yandex:    f.str("yandex"),
		Bing:      f.str("bing"),
		Alexa:     f.str("alexa"),
		Pinterest: f.str("pinterest"),
		Norton:    f.str("norton"),
	}
}

func buildGeoPosition(f *fields) hxhead.Element {
	return hxhead.GeoPosition{
		ICBM:      f.str("icbm"),
		Position:  f.str("position"),
		Region:    f.str("region"),
		Placename: f.str("placename"),
	}
}

func buildFormatDetection(f *fields) hxhead.Element {
	return hxhead.FormatDetection{
		NoTelephone: f.boolean("no_telephone"),
		NoDate:      f.boolean("no_date"),
		NoAddress:   f.boolean("no_address"),
		NoEmail:     f.boolean("no_email"),
		NoURL:       f.boolean("no_url"),
	}
}

func buildReferrerPolicy(f *fields) hxhead.Element {
	return hxhead.ReferrerPolicy{Policy: f.str("policy"), Fallback: f.str("fallback")}
}

func buildOpenGraph(f *fields) hxhead.Element {
	return hxhead.OpenGraphWebsite{
		Locale:      f.str("locale"),
		SiteName:    f.str("site_name"),
		Title:       f.str("title"),
		Description: f.str("description"),
		Image:       f.href("image"),
		ImageAlt:    f.str("image_alt"),
		URL:         f.href("url"),
	}
}

func buildTwitterCard(f *fields) hxhead.Element {
	return hxhead.TwitterCard{
		Card:        f.str("card"),
		Site:        f.str("site"),
		Creator:     f.str("creator"),
		Title:       f.str("title"),
		Description: f.str("description"),
		Image:       f.href("image"),
		ImageAlt:    f.str("image_alt"),
		URL:         f.href("url"),
	}
}

// buildFavicon reads one field per favicon slot, named after the slot. An
// optional prefix is joined to every href.
func buildFavicon(f *fields) hxhead.Element {
	prefix, hasPrefix := f.optional("prefix")
	var fav hxhead.Favicon
	for _, slot := range hxhead.FaviconSlots {
		v, ok := f.optional(slot.Name)
		if !ok {
			continue
		}
		if hasPrefix {
			fav.SetHref(slot.Name, hxhead.Prefixed(prefix, v))
		} else {
			fav.SetHref(slot.Name, hxhead.Literal(v))
		}
	}
	return fav
}

func buildPage(f *fields) hxhead.Element {
	return hxhead.Page{
		Title:       f.str("title"),
		Description: f.str("description"),
		Keywords:    f.keywords("keywords"),
		Subject:     f.str("subject"),
		Rating:      f.str("rating"),
		Charset:     f.str("charset"),
		Viewport:    f.str("viewport"),
	}
}

func buildSocialMediaCard(f *fields) hxhead.Element {
	return hxhead.SocialMediaCard{
		Card:        f.str("card"),
		Title:       f.str("title"),
		Description: f.str("description"),
		URL:         f.href("url"),
		Image:       f.href("image"),
		ImageAlt:    f.str("image_alt"),
		Site:        f.str("site"),
		Creator:     f.str("creator"),
		SiteName:    f.str("site_name"),
		Locale:      f.str("locale"),
	}
}

// fields reads typed values out of an entry. The first failure is kept and
// reported by done, together with any field no builder asked for.
type fields struct {
	entry Entry
	used  map[string]bool
	err   error
}

func (f *fields) fail(err error) {
	if f.err == nil {
		f.err = err
	}
}

func (f *fields) lookup(name string) (any, bool) {
	f.used[name] = true
	v, ok := f.entry[name]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// optional returns a string field and whether it was present.
func (f *fields) optional(name string) (string, bool) {
	v, ok := f.lookup(name)
	if !ok {
		return "", false
	}
	switch v := v.(type) {
	case string:
		return v, true
	case bool:
		f.fail(fmt.Errorf("field %q: want string, got bool: %w", name, ErrInvalidEntry))
		return "", false
	case Entry, map[string]any, []any:
		f.fail(fmt.Errorf("field %q: want string, got %T: %w", name, v, ErrInvalidEntry))
		return "", false
	default:
		// Numbers, e.g. "content: 30".
		return fmt.Sprint(v), true
	}
}

func (f *fields) str(name string) string {
	s, _ := f.optional(name)
	return s
}

func (f *fields) href(name string) hxhead.Resolver {
	s, ok := f.optional(name)
	if !ok || s == "" {
		return nil
	}
	return hxhead.Literal(s)
}

func (f *fields) boolean(name string) bool {
	v, ok := f.lookup(name)
	if !ok {
		return false
	}
	b, ok := v.(bool)
	if !ok {
		f.fail(fmt.Errorf("field %q: want bool, got %T: %w", name, v, ErrInvalidEntry))
	}
	return b
}

// toggle maps an absent field to Unset, true to On and false to Off.
func (f *fields) toggle(name string) hxhead.Toggle {
	if _, ok := f.lookup(name); !ok {
		return hxhead.Unset
	}
	if f.boolean(name) {
		return hxhead.On
	}
	return hxhead.Off
}

// keywords accepts either a list or a comma-separated string.
func (f *fields) keywords(name string) hxhead.Keywords {
	v, ok := f.lookup(name)
	if !ok {
		return nil
	}
	switch v := v.(type) {
	case string:
		return hxhead.ParseKeywords(v)
	case []string:
		return hxhead.Keywords(v)
	case []any:
		out := make(hxhead.Keywords, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				f.fail(fmt.Errorf("field %q: want list of strings, got %T item: %w", name, item, ErrInvalidEntry))
				return nil
			}
			out = append(out, s)
		}
		return out
	default:
		f.fail(fmt.Errorf("field %q: want string or list, got %T: %w", name, v, ErrInvalidEntry))
		return nil
	}
}

// affixes reads a list of {text, separator} maps.
func (f *fields) affixes(name string) []hxhead.Affix {
	v, ok := f.lookup(name)
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		f.fail(fmt.Errorf("field %q: want list, got %T: %w", name, v, ErrInvalidEntry))
		return nil
	}
	out := make([]hxhead.Affix, 0, len(items))
	for i, item := range items {
		m, ok := asEntry(item)
		if !ok {
			f.fail(fmt.Errorf("field %q[%d]: want map, got %T: %w", name, i, item, ErrInvalidEntry))
			return nil
		}
		sub := &fields{entry: m, used: map[string]bool{}}
		a := hxhead.Affix{Text: sub.str("text"), Separator: sub.str("separator")}
		if err := sub.done(); err != nil {
			f.fail(fmt.Errorf("field %q[%d]: %w", name, i, err))
			return nil
		}
		out = append(out, a)
	}
	return out
}

// asEntry accepts nested maps as yaml.v3 (Entry) and msgpack
// (map[string]any) decode them.
func asEntry(v any) (Entry, bool) {
	switch m := v.(type) {
	case Entry:
		return m, true
	case map[string]any:
		return Entry(m), true
	}
	return nil, false
}

// done reports the first read failure, or else the unknown fields.
func (f *fields) done() error {
	if f.err != nil {
		return f.err
	}
	var unknown []string
	for k := range f.entry {
		if !f.used[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unknown fields %s: %w", strings.Join(unknown, ", "), ErrInvalidEntry)
	}
	return nil
}
