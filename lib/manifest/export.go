package manifest

import (
	"fmt"

	"github.com/pthm/hxhead"
)

// FromElements describes els as a manifest. Empty fields are left out.
//
// It returns ErrNotSerializable when an element holds a deferred Resolver,
// since its value is only known at render time.
func FromElements(els ...hxhead.Element) (*Manifest, error) {
	m := &Manifest{Elements: make([]Entry, 0, len(els))}
	for i, el := range els {
		e, err := entryOf(el)
		if err != nil {
			return nil, fmt.Errorf("element %d (%T): %w", i, el, err)
		}
		m.Elements = append(m.Elements, e)
	}
	return m, nil
}

func entryOf(el hxhead.Element) (Entry, error) {
	e := newEntry()
	switch v := el.(type) {
	case hxhead.Charset:
		e.set("kind", "charset").set("value", string(v))
	case hxhead.Description:
		e.set("kind", "description").set("value", string(v))
	case hxhead.Subject:
		e.set("kind", "subject").set("value", string(v))
	case hxhead.Rating:
		e.set("kind", "rating").set("value", string(v))
	case hxhead.Robots:
		e.set("kind", "robots").set("value", string(v))
	case hxhead.Viewport:
		e.set("kind", "viewport").set("value", string(v))
	case hxhead.ApplicationName:
		e.set("kind", "application_name").set("value", string(v))
	case hxhead.ThemeColor:
		e.set("kind", "theme_color").set("value", string(v))
	case hxhead.ContentSecurityPolicy:
		e.set("kind", "content_security_policy").set("value", string(v))
	case hxhead.Keywords:
		e.set("kind", "keywords").list("value", v.Normalized())
	case hxhead.Title:
		e.set("kind", "title").set("text", v.Text).
			affixes("prepends", v.Prepends).
			affixes("appends", v.Appends)
	case hxhead.Base:
		e.set("kind", "base").href("href", v.Href)
	case hxhead.Meta:
		a := v.Attrs()
		e.set("kind", "meta").
			set("name", a.Name).
			set("http_equiv", a.HTTPEquiv).
			set("property", a.Property).
			set("content", a.Content).
			set("id", a.ID)
	case hxhead.Link:
		e.set("kind", "link").
			set("rel", v.Rel).
			href("href", v.Href).
			set("sizes", v.Sizes).
			set("type", v.Type).
			set("hreflang", v.Hreflang).
			set("id", v.ID)
	case hxhead.Stylesheet:
		e.set("kind", "stylesheet").href("href", v.Href).set("id", v.ID)
	case hxhead.Script:
		e.set("kind", "script").
			href("src", v.Src).
			set("type", v.Type).
			flag("async", v.Async).
			flag("defer", v.Defer).
			set("crossorigin", v.CrossOrigin).
			set("integrity", v.Integrity).
			flag("nomodule", v.NoModule).
			set("referrerpolicy", v.ReferrerPolicy).
			set("id", v.ID)
	case hxhead.Google:
		e.set("kind", "google").
			set("googlebot", v.Googlebot).
			toggle("index", v.Index).
			toggle("follow", v.Follow).
			flag("no_sitelinks_search_box", v.NoSitelinksSearchBox).
			flag("no_translate", v.NoTranslate)
	case hxhead.Verification:
		e.set("kind", "verification").
			set("google", v.Google).
			set("yandex", v.Yandex).
			set("bing", v.Bing).
			set("alexa", v.Alexa).
			set("pinterest", v.Pinterest).
			set("norton", v.Norton)
	case hxhead.GeoPosition:
		e.set("kind", "geo_position").
			set("icbm", v.ICBM).
			set("position", v.Position).
			set("region", v.Region).
			set("placename", v.Placename)
	case hxhead.FormatDetection:
		e.set("kind", "format_detection").
			flag("no_telephone", v.NoTelephone).
			flag("no_date", v.NoDate).
			flag("no_address", v.NoAddress).
			flag("no_email", v.NoEmail).
			flag("no_url", v.NoURL)
	case hxhead.ReferrerPolicy:
		e.set("kind", "referrer_policy").set("policy", v.Policy).set("fallback", v.Fallback)
	case hxhead.OpenGraphWebsite:
		e.set("kind", "open_graph_website").
			set("locale", v.Locale).
			set("site_name", v.SiteName).
			set("title", v.Title).
			set("description", v.Description).
			href("image", v.Image).
			set("image_alt", v.ImageAlt).
			href("url", v.URL)
	case hxhead.TwitterCard:
		e.set("kind", "twitter_card").
			set("card", v.Card).
			set("site", v.Site).
			set("creator", v.Creator).
			set("title", v.Title).
			set("description", v.Description).
			href("image", v.Image).
			set("image_alt", v.ImageAlt).
			href("url", v.URL)
	case hxhead.Favicon:
		e.set("kind", "favicon")
		for _, slot := range hxhead.FaviconSlots {
			e.href(slot.Name, v.Href(slot.Name))
		}
	case hxhead.Page:
		e.set("kind", "page").
			set("title", v.Title).
			set("description", v.Description).
			list("keywords", v.Keywords.Normalized()).
			set("subject", v.Subject).
			set("rating", v.Rating).
			set("charset", v.Charset).
			set("viewport", v.Viewport)
	case hxhead.SocialMediaCard:
		e.set("kind", "social_media_card").
			set("card", v.Card).
			set("title", v.Title).
			set("description", v.Description).
			href("url", v.URL).
			href("image", v.Image).
			set("image_alt", v.ImageAlt).
			set("site", v.Site).
			set("creator", v.Creator).
			set("site_name", v.SiteName).
			set("locale", v.Locale)
	default:
		return nil, fmt.Errorf("unsupported element type %T: %w", el, ErrNotSerializable)
	}
	if e.err != nil {
		return nil, e.err
	}
	return e.Entry, nil
}

// entryWriter fills an Entry, skipping zero values.
type entryWriter struct {
	Entry
	err error
}

func newEntry() *entryWriter {
	return &entryWriter{Entry: Entry{}}
}

func (w *entryWriter) set(name, value string) *entryWriter {
	if value != "" {
		w.Entry[name] = value
	}
	return w
}

func (w *entryWriter) flag(name string, on bool) *entryWriter {
	if on {
		w.Entry[name] = true
	}
	return w
}

func (w *entryWriter) toggle(name string, t hxhead.Toggle) *entryWriter {
	switch t {
	case hxhead.On:
		w.Entry[name] = true
	case hxhead.Off:
		w.Entry[name] = false
	}
	return w
}

func (w *entryWriter) list(name string, values []string) *entryWriter {
	if len(values) > 0 {
		w.Entry[name] = values
	}
	return w
}

func (w *entryWriter) href(name string, r hxhead.Resolver) *entryWriter {
	switch v := r.(type) {
	case nil:
	case hxhead.Literal:
		w.set(name, string(v))
	default:
		if w.err == nil {
			w.err = fmt.Errorf("field %q holds %T: %w", name, r, ErrNotSerializable)
		}
	}
	return w
}

func (w *entryWriter) affixes(name string, affixes []hxhead.Affix) *entryWriter {
	if len(affixes) == 0 {
		return w
	}
	items := make([]any, len(affixes))
	for i, a := range affixes {
		items[i] = map[string]any{"text": a.Text, "separator": a.Separator}
	}
	w.Entry[name] = items
	return w
}
