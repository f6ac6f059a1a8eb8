package hxhead

import (
	"strings"
	"testing"
)

func TestElementHTML(t *testing.T) {
	tests := []struct {
		name string
		el   Element
		want string
	}{
		{"charset", Charset("utf-8"), `<meta charset="utf-8">`},
		{"charset default", Charset(""), `<meta charset="utf-8">`},
		{"title", Title{Text: "Docs"}, `<title>Docs</title>`},
		{"base", Base{Href: Literal("/app/")}, `<base href="/app/">`},
		{"description", Description("About us"), `<meta name="description" content="About us">`},
		{"subject", Subject("Go"), `<meta name="subject" content="Go">`},
		{"rating", Rating("general"), `<meta name="rating" content="general">`},
		{"robots", Robots("noindex, nofollow"), `<meta name="robots" content="noindex, nofollow">`},
		{"viewport default", Viewport(""), `<meta name="viewport" content="width=device-width, initial-scale=1">`},
		{"viewport", Viewport("width=1024"), `<meta name="viewport" content="width=1024">`},
		{"application name", ApplicationName("Acme"), `<meta name="application-name" content="Acme">`},
		{"theme color", ThemeColor("#fff"), `<meta name="theme-color" content="#fff">`},
		{"csp default", ContentSecurityPolicy(""), `<meta http-equiv="Content-Security-Policy" content="default-src 'self'">`},
		{"meta name", MetaName("author", "Jane"), `<meta name="author" content="Jane">`},
		{"meta property", MetaProperty("og:title", "T"), `<meta property="og:title" content="T">`},
		{"meta http-equiv", MetaHTTPEquiv("refresh", "30"), `<meta http-equiv="refresh" content="30">`},
		{"meta with id", MustMeta(MetaAttrs{Name: "author", Content: "J", ID: "a"}), `<meta name="author" content="J" id="a">`},
		{
			"link",
			Link{Rel: "alternate", Href: Literal("/de"), Hreflang: "de", ID: "alt-de"},
			`<link rel="alternate" href="/de" hreflang="de" id="alt-de">`,
		},
		{
			"link with sizes and type",
			Link{Rel: "icon", Href: Literal("/i.png"), Sizes: "16x16", Type: "image/png"},
			`<link rel="icon" sizes="16x16" type="image/png" href="/i.png">`,
		},
		{"stylesheet", Stylesheet{Href: Literal("/main.css")}, `<link rel="stylesheet" href="/main.css">`},
		{"script", Script{Src: Literal("/app.js")}, `<script src="/app.js"></script>`},
		{
			"script with flags",
			Script{Src: Literal("/app.js"), Type: "module", Async: true, Defer: true, ID: "app"},
			`<script src="/app.js" type="module" async="true" defer id="app"></script>`,
		},
		{
			"script all attributes",
			Script{
				Src:            Literal("/legacy.js"),
				CrossOrigin:    "anonymous",
				Integrity:      "sha384-abc",
				NoModule:       true,
				ReferrerPolicy: "no-referrer",
			},
			`<script src="/legacy.js" crossorigin="anonymous" integrity="sha384-abc" nomodule referrerpolicy="no-referrer"></script>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.el.HTML(); got != tt.want {
				t.Errorf("HTML() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestElementIdentity(t *testing.T) {
	tests := []struct {
		name   string
		el     Element
		key    string
		unique bool
	}{
		{"title", Title{Text: "x"}, KeyTitle, true},
		{"charset", Charset(""), KeyCharset, true},
		{"csp", ContentSecurityPolicy(""), KeyContentSecurityPolicy, true},
		{"favicon", Favicon{}, KeyFavicon, true},
		{"google", Google{}, KeyGoogle, true},
		{"keywords", Keywords(nil), KeyKeywords, true},
		{"open graph", OpenGraphWebsite{}, KeyOpenGraphWebsite, true},
		{"twitter", TwitterCard{}, KeyTwitterCard, true},
		{"meta without id", MetaName("a", "b"), "", false},
		{"meta with id", MustMeta(MetaAttrs{Name: "a", ID: "m"}), "m", false},
		{"link with id", Link{Rel: "x", ID: "l"}, "l", false},
		{"script without id", Script{Src: Literal("/a.js")}, "", false},
		{"stylesheet with id", Stylesheet{ID: "css"}, "css", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.el.Key(); got != tt.key {
				t.Errorf("Key() = %q, want %q", got, tt.key)
			}
			if got := tt.el.Unique(); got != tt.unique {
				t.Errorf("Unique() = %v, want %v", got, tt.unique)
			}
		})
	}
}

func TestTitleAffixes(t *testing.T) {
	title := Title{Text: "Docs"}.
		Append("Acme", " | ").
		Append("EN", " / ").
		Prepend("Draft", ": ").
		Prepend("!", " ")

	if got, want := title.String(), "! Draft: Docs | Acme / EN"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := title.HTML(), "<title>! Draft: Docs | Acme / EN</title>"; got != want {
		t.Errorf("HTML() = %q, want %q", got, want)
	}
}

func TestTitleAffixesCopy(t *testing.T) {
	base := Title{Text: "Docs"}.Append("Acme", " | ")
	a := base.Append("A", " - ")
	b := base.Append("B", " - ")

	if got := base.String(); got != "Docs | Acme" {
		t.Errorf("base changed: %q", got)
	}
	if got := a.String(); got != "Docs | Acme - A" {
		t.Errorf("a = %q", got)
	}
	if got := b.String(); got != "Docs | Acme - B" {
		t.Errorf("b = %q", got)
	}
}

func TestResolverEmptyOmitsAttribute(t *testing.T) {
	tests := []struct {
		name string
		el   Element
		want string
	}{
		{"nil href", Stylesheet{}, `<link rel="stylesheet">`},
		{"empty literal", Script{Src: Literal("")}, `<script></script>`},
		{"empty resolved", Base{Href: ResolverFunc(func() string { return "" })}, `<base>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.el.HTML(); got != tt.want {
				t.Errorf("HTML() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrefixed(t *testing.T) {
	tests := []struct {
		prefix, path, want string
	}{
		{"/static/", "/favicon.ico", "/static/favicon.ico"},
		{"/static", "favicon.ico", "/static/favicon.ico"},
		{"", "favicon.ico", "/favicon.ico"},
		{"https://cdn.example.com//", "img/a.png", "https://cdn.example.com/img/a.png"},
	}

	for _, tt := range tests {
		if got := Prefixed(tt.prefix, tt.path).Resolve(); got != tt.want {
			t.Errorf("Prefixed(%q, %q) = %q, want %q", tt.prefix, tt.path, got, tt.want)
		}
	}
}

func TestDigestKey(t *testing.T) {
	a := Script{Src: Literal("/a.js")}.contentKey()
	b := Script{Src: Literal("/b.js")}.contentKey()

	if !strings.HasPrefix(a, "script-") {
		t.Errorf("content key %q should carry the tag kind", a)
	}
	if a == b {
		t.Error("distinct sources should produce distinct keys")
	}
	if a != (Script{Src: Literal("/a.js"), Async: true}).contentKey() {
		t.Error("script content key should only depend on the source")
	}
	if k := (Script{Src: ResolverFunc(func() string { return "/a.js" })}).contentKey(); k != "" {
		t.Errorf("deferred source should have no content key, got %q", k)
	}
	if digestKey("link", "a", "bc") == digestKey("link", "ab", "c") {
		t.Error("value boundaries should be part of the digest")
	}
}
