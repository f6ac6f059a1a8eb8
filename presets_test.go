package hxhead

import (
	"strings"
	"testing"
)

func TestPresetsEmpty(t *testing.T) {
	tests := []struct {
		name string
		el   Element
	}{
		{"google", Google{}},
		{"verification", Verification{}},
		{"geo position", GeoPosition{}},
		{"format detection", FormatDetection{}},
		{"referrer policy", ReferrerPolicy{}},
		{"favicon", Favicon{}},
		{"keywords nil", Keywords(nil)},
		{"keywords blank", Keywords{" ", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.el.HTML(); got != "" {
				t.Errorf("HTML() = %q, want empty", got)
			}
		})
	}
}

func TestPresetsHTML(t *testing.T) {
	tests := []struct {
		name string
		el   Element
		want []string
	}{
		{
			"keywords parsed",
			ParseKeywords(" a, b ,c"),
			[]string{`<meta name="keywords" content="a, b, c">`},
		},
		{
			"google explicit googlebot",
			Google{Googlebot: "nosnippet", Index: On},
			[]string{`<meta name="googlebot" content="nosnippet">`},
		},
		{
			"google toggles",
			Google{Index: Off, Follow: On, NoSitelinksSearchBox: true, NoTranslate: true},
			[]string{
				`<meta name="googlebot" content="noindex, follow">`,
				`<meta name="google" content="nositelinkssearchbox">`,
				`<meta name="google" content="notranslate">`,
			},
		},
		{
			"google translate only",
			Google{NoTranslate: true},
			[]string{`<meta name="google" content="notranslate">`},
		},
		{
			"verification",
			Verification{Google: "g1", Bing: "b1", Norton: "n1"},
			[]string{
				`<meta name="google-site-verification" content="g1">`,
				`<meta name="msvalidate.01" content="b1">`,
				`<meta name="norton-safeweb-site-verification" content="n1">`,
			},
		},
		{
			"verification all",
			Verification{Google: "g", Yandex: "y", Bing: "b", Alexa: "a", Pinterest: "p", Norton: "n"},
			[]string{
				`<meta name="google-site-verification" content="g">`,
				`<meta name="yandex-verification" content="y">`,
				`<meta name="msvalidate.01" content="b">`,
				`<meta name="alexaVerifyID" content="a">`,
				`<meta name="p:domain_verify" content="p">`,
				`<meta name="norton-safeweb-site-verification" content="n">`,
			},
		},
		{
			"geo position",
			GeoPosition{ICBM: "50.1, 8.6", Position: "50.1;8.6", Region: "DE-HE", Placename: "Frankfurt"},
			[]string{
				`<meta name="ICBM" content="50.1, 8.6">`,
				`<meta name="geo.position" content="50.1;8.6">`,
				`<meta name="geo.region" content="DE-HE">`,
				`<meta name="geo.placename" content="Frankfurt">`,
			},
		},
		{
			"format detection",
			FormatDetection{NoTelephone: true, NoEmail: true},
			[]string{`<meta name="format-detection" content="telephone=no,email=no">`},
		},
		{
			"referrer policy",
			ReferrerPolicy{Policy: "strict-origin-when-cross-origin"},
			[]string{`<meta name="referrer" content="strict-origin-when-cross-origin">`},
		},
		{
			"referrer policy with fallback",
			ReferrerPolicy{Policy: "strict-origin-when-cross-origin", Fallback: "origin"},
			[]string{`<meta name="referrer" content="origin, strict-origin-when-cross-origin">`},
		},
		{
			"open graph defaults",
			OpenGraphWebsite{},
			[]string{
				`<meta property="og:type" content="website">`,
				`<meta property="og:locale" content="en_US">`,
			},
		},
		{
			"open graph",
			OpenGraphWebsite{
				Locale:   "de_DE",
				SiteName: "Acme",
				Title:    "Docs",
				Image:    Literal("/card.png"),
				ImageAlt: "Card",
				URL:      Literal("https://acme.test/docs"),
			},
			[]string{
				`<meta property="og:type" content="website">`,
				`<meta property="og:locale" content="de_DE">`,
				`<meta property="og:site_name" content="Acme">`,
				`<meta property="og:title" content="Docs">`,
				`<meta property="og:image" content="/card.png">`,
				`<meta property="og:image:alt" content="Card">`,
				`<meta property="og:url" content="https://acme.test/docs">`,
			},
		},
		{
			"twitter defaults",
			TwitterCard{},
			[]string{`<meta name="twitter:card" content="summary">`},
		},
		{
			"twitter",
			TwitterCard{Card: CardSummaryLargeImage, Site: "@acme", Creator: "@jane", Description: "d"},
			[]string{
				`<meta name="twitter:card" content="summary_large_image">`,
				`<meta name="twitter:site" content="@acme">`,
				`<meta name="twitter:creator" content="@jane">`,
				`<meta name="twitter:description" content="d">`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := strings.Join(tt.want, "\n")
			if got := tt.el.HTML(); got != want {
				t.Errorf("HTML() =\n%s\nwant\n%s", got, want)
			}
		})
	}
}

func TestGooglebotContent(t *testing.T) {
	tests := []struct {
		name string
		g    Google
		want string
	}{
		{"unset", Google{}, ""},
		{"index", Google{Index: On}, "index"},
		{"nofollow", Google{Follow: Off}, "nofollow"},
		{"both", Google{Index: On, Follow: Off}, "index, nofollow"},
		{"explicit wins", Google{Googlebot: "none", Index: On, Follow: On}, "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.g.GooglebotContent(); got != tt.want {
				t.Errorf("GooglebotContent() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseKeywords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{" a, b ,c", []string{"a", "b", "c"}},
		{"go,, templ ,", []string{"go", "templ"}},
		{"", nil},
		{" , ", nil},
	}

	for _, tt := range tests {
		got := ParseKeywords(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("ParseKeywords(%q) = %q, want %q", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ParseKeywords(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestKeywordsNormalizesLiteral(t *testing.T) {
	kw := Keywords{"  go ", "", "html"}
	if got, want := kw.HTML(), `<meta name="keywords" content="go, html">`; got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
}
