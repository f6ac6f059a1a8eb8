package hxhead

// FaviconSlot describes one icon of a favicon set.
type FaviconSlot struct {
	// Name identifies the slot in manifests, e.g. "png_icon_32".
	Name string
	// Field is the name of the matching Favicon struct field.
	Field string
	Rel   string
	Sizes string
	Type  string
	// Filename is the file a favicon generator conventionally writes for
	// this slot.
	Filename string
}

// FaviconSlots lists every slot in render order.
var FaviconSlots = []FaviconSlot{
	{"ico_icon", "ICOIcon", "icon", "16x16 32x32", "image/x-icon", "favicon.ico"},
	{"png_icon_16", "PNGIcon16", "icon", "16x16", "image/png", "favicon-16x16.png"},
	{"png_icon_32", "PNGIcon32", "icon", "32x32", "image/png", "favicon-32x32.png"},
	{"png_icon_64", "PNGIcon64", "icon", "64x64", "image/png", "favicon-64x64.png"},
	{"png_icon_96", "PNGIcon96", "icon", "96x96", "image/png", "favicon-96x96.png"},
	{"png_icon_180", "PNGIcon180", "icon", "180x180", "image/png", "favicon-180x180.png"},
	{"png_icon_196", "PNGIcon196", "icon", "196x196", "image/png", "favicon-196x196.png"},
	{"png_apple_touch_icon_57", "AppleTouchIcon57", "apple-touch-icon", "57x57", "image/png", "apple-touch-icon-57x57.png"},
	{"png_apple_touch_icon_60", "AppleTouchIcon60", "apple-touch-icon", "60x60", "image/png", "apple-touch-icon-60x60.png"},
	{"png_apple_touch_icon_72", "AppleTouchIcon72", "apple-touch-icon", "72x72", "image/png", "apple-touch-icon-72x72.png"},
	{"png_apple_touch_icon_76", "AppleTouchIcon76", "apple-touch-icon", "76x76", "image/png", "apple-touch-icon-76x76.png"},
	{"png_apple_touch_icon_114", "AppleTouchIcon114", "apple-touch-icon", "114x114", "image/png", "apple-touch-icon-114x114.png"},
	{"png_apple_touch_icon_120", "AppleTouchIcon120", "apple-touch-icon", "120x120", "image/png", "apple-touch-icon-120x120.png"},
	{"png_apple_touch_icon_144", "AppleTouchIcon144", "apple-touch-icon", "144x144", "image/png", "apple-touch-icon-144x144.png"},
	{"png_apple_touch_icon_152", "AppleTouchIcon152", "apple-touch-icon", "152x152", "image/png", "apple-touch-icon-152x152.png"},
	{"png_apple_touch_icon_167", "AppleTouchIcon167", "apple-touch-icon", "167x167", "image/png", "apple-touch-icon-167x167.png"},
	{"png_apple_touch_icon_180", "AppleTouchIcon180", "apple-touch-icon", "180x180", "image/png", "apple-touch-icon-180x180.png"},
	// Windows tiles carry no sizes or type attributes.
	{"png_mstile_70", "MSTile70", "msapplication-square70x70logo", "", "", "mstile-70x70.png"},
	{"png_mstile_270", "MSTile270", "msapplication-square270x270logo", "", "", "mstile-270x270.png"},
	{"png_mstile_310x150", "MSTile310x150", "msapplication-wide310x150logo", "", "", "mstile-310x150.png"},
	{"png_mstile_310", "MSTile310", "msapplication-square310x310logo", "", "", "mstile-310x310.png"},
}

// Favicon renders a favicon set: one link tag per slot that has an href,
// in FaviconSlots order. Slots left nil are skipped; no default icons are
// added.
type Favicon struct {
	singleton

	ICOIcon           Resolver
	PNGIcon16         Resolver
	PNGIcon32         Resolver
	PNGIcon64         Resolver
	PNGIcon96         Resolver
	PNGIcon180        Resolver
	PNGIcon196        Resolver
	AppleTouchIcon57  Resolver
	AppleTouchIcon60  Resolver
	AppleTouchIcon72  Resolver
	AppleTouchIcon76  Resolver
	AppleTouchIcon114 Resolver
	AppleTouchIcon120 Resolver
	AppleTouchIcon144 Resolver
	AppleTouchIcon152 Resolver
	AppleTouchIcon167 Resolver
	AppleTouchIcon180 Resolver
	MSTile70          Resolver
	MSTile270         Resolver
	MSTile310x150     Resolver
	MSTile310         Resolver
}

func (Favicon) Key() string { return KeyFavicon }

// hrefs returns pointers to the slot fields, aligned with FaviconSlots.
func (f *Favicon) hrefs() []*Resolver {
	return []*Resolver{
		&f.ICOIcon,
		&f.PNGIcon16,
		&f.PNGIcon32,
		&f.PNGIcon64,
		&f.PNGIcon96,
		&f.PNGIcon180,
		&f.PNGIcon196,
		&f.AppleTouchIcon57,
		&f.AppleTouchIcon60,
		&f.AppleTouchIcon72,
		&f.AppleTouchIcon76,
		&f.AppleTouchIcon114,
		&f.AppleTouchIcon120,
		&f.AppleTouchIcon144,
		&f.AppleTouchIcon152,
		&f.AppleTouchIcon167,
		&f.AppleTouchIcon180,
		&f.MSTile70,
		&f.MSTile270,
		&f.MSTile310x150,
		&f.MSTile310,
	}
}

// Href returns the href of the named slot, or nil when the slot is empty or
// unknown.
func (f Favicon) Href(slot string) Resolver {
	for i, r := range f.hrefs() {
		if FaviconSlots[i].Name == slot {
			return *r
		}
	}
	return nil
}

// SetHref sets the href of the named slot. It reports false for an unknown
// slot name.
func (f *Favicon) SetHref(slot string, href Resolver) bool {
	for i, r := range f.hrefs() {
		if FaviconSlots[i].Name == slot {
			*r = href
			return true
		}
	}
	return false
}

func (f Favicon) HTML() string {
	links := make([]string, 0, len(FaviconSlots))
	for i, r := range f.hrefs() {
		if *r == nil {
			continue
		}
		href := (*r).Resolve()
		if href == "" {
			continue
		}
		slot := FaviconSlots[i]
		links = append(links, linkTag(linkAttrs{
			rel:   slot.Rel,
			sizes: slot.Sizes,
			typ:   slot.Type,
			href:  href,
		}))
	}
	return joinLines(links...)
}
