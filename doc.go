// Package hxhead composes the contents of an HTML <head> from typed elements
// and renders them to markup.
//
// # Elements
//
// Every tag or group of tags is an Element. There are three kinds:
//
//   - Singletons such as Title, Charset, Description, Favicon,
//     OpenGraphWebsite or TwitterCard. Each occupies a fixed key
//     (KeyTitle, KeyFavicon, ...); inserting another element with the same
//     key replaces the first one in place.
//   - Non-unique tags: Meta, Link, Script and Stylesheet. Give them an ID to
//     make them replaceable; without one each insertion is kept.
//   - Composites: Page and SocialMediaCard expand into several singletons
//     when inserted.
//
// Presets bundle related tags behind one element and render nothing at all
// when none of their fields are set:
//
//	hxhead.Google{NoTranslate: true}
//	hxhead.Verification{Google: "abc123"}
//	hxhead.Favicon{PNGIcon32: hxhead.Literal("/favicon-32x32.png")}
//
// # Building a Head
//
//	head := hxhead.New(
//	    hxhead.Page{Title: "Docs", Description: "Reference manual"},
//	    hxhead.SocialMediaCard{Title: "Docs", Image: hxhead.Literal("/card.png")},
//	    hxhead.Stylesheet{Href: hxhead.Literal("/static/main.css"), ID: "main"},
//	)
//	head.Extend(hxhead.Robots("noindex"))
//	_ = head.AppendTitle("Acme", " | ")
//
// Order is stable: elements render in the order their keys were first
// inserted, and a replacement keeps the original slot.
//
// # Rendering
//
// Compile returns the markup, one tag per line. A Head is also a
// templ.Component:
//
//	<head>
//	    @head.TitleComponent()
//	    @head.Component(hxhead.SkipTitle())
//	</head>
//
// Values are written as given. They are trusted markup and are not escaped.
//
// # Deferred values
//
// URL fields take a Resolver. Literal covers fixed strings; ResolverFunc
// wraps anything computed at render time, such as a router's reverse lookup.
// Resolvers are called on every render and never during insertion.
//
// # Errors
//
// NewMeta rejects a meta tag that sets none, or several, of name,
// http-equiv and property with ErrInvalidAttributeCombination. AppendTitle
// and PrependTitle return ErrMissingPrerequisite when no title is set.
// Passing a nil Element panics.
package hxhead
