package hxhead

import "strings"

// Presets bundle several tags behind one semantic element. Each renders its
// present fields as newline-separated tags in a fixed order, and renders ""
// when no field is present.

// Keywords renders <meta name="keywords"> with the keywords joined by ", ".
// Surrounding whitespace is trimmed from each keyword and empty keywords are
// dropped; with no keywords left the element renders "".
type Keywords []string

// ParseKeywords splits a comma-separated keyword list.
//
//	ParseKeywords(" a, b ,c") // Keywords{"a", "b", "c"}
func ParseKeywords(s string) Keywords {
	var out Keywords
	for _, k := range strings.Split(s, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

func (Keywords) Key() string  { return KeyKeywords }
func (Keywords) Unique() bool { return true }
func (Keywords) element()     {}

// Normalized returns the trimmed, non-empty keywords.
func (k Keywords) Normalized() []string {
	out := make([]string, 0, len(k))
	for _, kw := range k {
		if kw = strings.TrimSpace(kw); kw != "" {
			out = append(out, kw)
		}
	}
	return out
}

func (k Keywords) HTML() string {
	kws := k.Normalized()
	if len(kws) == 0 {
		return ""
	}
	return metaName("keywords", strings.Join(kws, ", "))
}

// Toggle is a tri-state switch for optional directives.
type Toggle uint8

const (
	// Unset omits the directive.
	Unset Toggle = iota
	// On emits the positive directive.
	On
	// Off emits the negated directive.
	Off
)

// directive renders t as word, "no"+word, or "".
func (t Toggle) directive(word string) string {
	switch t {
	case On:
		return word
	case Off:
		return "no" + word
	default:
		return ""
	}
}

// Google renders Google-specific crawler directives.
//
// Googlebot is used verbatim when set. Otherwise the googlebot directive is
// assembled from Index and Follow, e.g. "noindex, follow". With every field
// left at its zero value Google renders "".
type Google struct {
	singleton

	Googlebot            string
	Index                Toggle
	Follow               Toggle
	NoSitelinksSearchBox bool
	NoTranslate          bool
}

func (Google) Key() string { return KeyGoogle }

// GooglebotContent returns the content of the googlebot meta tag.
func (g Google) GooglebotContent() string {
	if g.Googlebot != "" {
		return g.Googlebot
	}
	var parts []string
	if d := g.Index.directive("index"); d != "" {
		parts = append(parts, d)
	}
	if d := g.Follow.directive("follow"); d != "" {
		parts = append(parts, d)
	}
	return strings.Join(parts, ", ")
}

func (g Google) HTML() string {
	var googlebot, sitelinks, translate string
	if c := g.GooglebotContent(); c != "" {
		googlebot = metaName("googlebot", c)
	}
	if g.NoSitelinksSearchBox {
		sitelinks = metaName("google", "nositelinkssearchbox")
	}
	if g.NoTranslate {
		translate = metaName("google", "notranslate")
	}
	return joinLines(googlebot, sitelinks, translate)
}

// Verification renders site ownership verification codes.
type Verification struct {
	singleton

	Google    string
	Yandex    string
	Bing      string
	Alexa     string
	Pinterest string
	Norton    string
}

func (Verification) Key() string { return KeyVerification }

func (v Verification) HTML() string {
	return joinLines(
		optionalName("google-site-verification", v.Google),
		optionalName("yandex-verification", v.Yandex),
		optionalName("msvalidate.01", v.Bing),
		optionalName("alexaVerifyID", v.Alexa),
		optionalName("p:domain_verify", v.Pinterest),
		optionalName("norton-safeweb-site-verification", v.Norton),
	)
}

// GeoPosition renders geographic location tags.
type GeoPosition struct {
	singleton

	// ICBM is "latitude, longitude".
	ICBM string
	// Position is "latitude;longitude".
	Position  string
	Region    string
	Placename string
}

func (GeoPosition) Key() string { return KeyGeoPosition }

func (g GeoPosition) HTML() string {
	return joinLines(
		optionalName("ICBM", g.ICBM),
		optionalName("geo.position", g.Position),
		optionalName("geo.region", g.Region),
		optionalName("geo.placename", g.Placename),
	)
}

// FormatDetection disables automatic format detection on mobile browsers.
// Each true field adds an "x=no" token; with none set it renders "".
type FormatDetection struct {
	singleton

	NoTelephone bool
	NoDate      bool
	NoAddress   bool
	NoEmail     bool
	NoURL       bool
}

func (FormatDetection) Key() string { return KeyFormatDetection }

func (f FormatDetection) HTML() string {
	var tokens []string
	for _, d := range []struct {
		off  bool
		name string
	}{
		{f.NoTelephone, "telephone"},
		{f.NoDate, "date"},
		{f.NoAddress, "address"},
		{f.NoEmail, "email"},
		{f.NoURL, "url"},
	} {
		if d.off {
			tokens = append(tokens, d.name+"=no")
		}
	}
	if len(tokens) == 0 {
		return ""
	}
	return metaName("format-detection", strings.Join(tokens, ","))
}

// ReferrerPolicy renders <meta name="referrer">. Fallback, for browsers
// that do not know Policy, is written first: "fallback, policy".
type ReferrerPolicy struct {
	singleton

	Policy   string
	Fallback string
}

func (ReferrerPolicy) Key() string { return KeyReferrerPolicy }

func (r ReferrerPolicy) HTML() string {
	content := r.Policy
	if r.Fallback != "" {
		content = joinNonEmpty(", ", r.Fallback, r.Policy)
	}
	if content == "" {
		return ""
	}
	return metaName("referrer", content)
}

// OpenGraphWebsite renders Open Graph tags for og:type "website".
//
// Tags are written in the order type, locale, site_name, title, description,
// image, image:alt, url. Locale defaults to DefaultLocale.
type OpenGraphWebsite struct {
	singleton

	Locale      string
	SiteName    string
	Title       string
	Description string
	Image       Resolver
	ImageAlt    string
	URL         Resolver
}

// DefaultLocale is the og:locale used when none is given.
const DefaultLocale = "en_US"

func (OpenGraphWebsite) Key() string { return KeyOpenGraphWebsite }

func (o OpenGraphWebsite) HTML() string {
	locale := o.Locale
	if locale == "" {
		locale = DefaultLocale
	}
	return joinLines(
		metaProperty("og:type", "website"),
		metaProperty("og:locale", locale),
		optionalProperty("og:site_name", o.SiteName),
		optionalProperty("og:title", o.Title),
		optionalProperty("og:description", o.Description),
		optionalProperty("og:image", resolve(o.Image)),
		optionalProperty("og:image:alt", o.ImageAlt),
		optionalProperty("og:url", resolve(o.URL)),
	)
}

// Twitter card types.
const (
	CardSummary           = "summary"
	CardSummaryLargeImage = "summary_large_image"
)

// TwitterCard renders twitter:* tags in the order card, site, creator,
// title, description, image, image:alt, url. Card defaults to CardSummary.
type TwitterCard struct {
	singleton

	Card        string
	Site        string
	Creator     string
	Title       string
	Description string
	Image       Resolver
	ImageAlt    string
	URL         Resolver
}

func (TwitterCard) Key() string { return KeyTwitterCard }

func (c TwitterCard) HTML() string {
	card := c.Card
	if card == "" {
		card = CardSummary
	}
	return joinLines(
		metaName("twitter:card", card),
		optionalName("twitter:site", c.Site),
		optionalName("twitter:creator", c.Creator),
		optionalName("twitter:title", c.Title),
		optionalName("twitter:description", c.Description),
		optionalName("twitter:image", resolve(c.Image)),
		optionalName("twitter:image:alt", c.ImageAlt),
		optionalName("twitter:url", resolve(c.URL)),
	)
}

func optionalName(name, content string) string {
	if content == "" {
		return ""
	}
	return metaName(name, content)
}

func optionalProperty(property, content string) string {
	if content == "" {
		return ""
	}
	return metaProperty(property, content)
}

func joinNonEmpty(sep string, parts ...string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
