package hxhead

import "strings"

// Resolver produces a value whose final text is only known at render time,
// such as a URL built by a router.
//
// Elements holding a Resolver call Resolve while rendering, once per
// occurrence per render. Results are never cached, so a resolver may return
// a fresh value on every render:
//
//	hxhead.Stylesheet{Href: hxhead.ResolverFunc(func() string {
//	    return assets.URL("main.css")
//	})}
//
// Resolvers used by a Head rendered from several goroutines must be safe for
// concurrent use. Compile calls them without holding the Head's lock, so a
// resolver may read the Head it is rendered from.
type Resolver interface {
	Resolve() string
}

// Literal is a Resolver for a value known up front.
type Literal string

// Resolve returns the literal itself.
func (l Literal) Resolve() string { return string(l) }

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func() string

// Resolve calls f.
func (f ResolverFunc) Resolve() string { return f() }

// Prefixed joins prefix and path with exactly one slash between them.
//
//	Prefixed("/static/", "/favicon.ico") // "/static/favicon.ico"
//	Prefixed("", "favicon.ico")          // "/favicon.ico"
func Prefixed(prefix, path string) Literal {
	return Literal(strings.TrimRight(prefix, "/") + "/" + strings.TrimLeft(path, "/"))
}

// resolve returns the resolved value of r, or "" when r is nil.
func resolve(r Resolver) string {
	if r == nil {
		return ""
	}
	return r.Resolve()
}

// literalValue reports the text of r when it is known without resolving.
func literalValue(r Resolver) (string, bool) {
	switch v := r.(type) {
	case nil:
		return "", true
	case Literal:
		return string(v), true
	default:
		return "", false
	}
}
