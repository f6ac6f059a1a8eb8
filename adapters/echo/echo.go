// Package hxheadecho provides Echo framework integration for hxhead.
//
// Install a base head once and extend it per request:
//
//	e := echo.New()
//	base := hxhead.New(
//	    hxhead.Charset(""),
//	    hxhead.Stylesheet{Href: hxheadecho.Reverse(e, "static", "main.css"), ID: "main"},
//	)
//	e.Use(hxheadecho.Middleware(base))
//
//	func handler(c echo.Context) error {
//	    head := hxheadecho.FromContext(c)
//	    head.Extend(hxhead.Page{Title: "Docs"})
//	    return hxheadecho.Render(c, layout(head))
//	}
package hxheadecho

import (
	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/pthm/hxhead"
)

// DefaultContextKey is the echo.Context key the middleware stores the head
// under.
const DefaultContextKey = "hxhead"

// Option configures Middleware and FromContext.
type Option func(*options)

type options struct {
	key string
}

// WithContextKey sets the echo.Context key. Pass the same option to
// FromContext.
func WithContextKey(key string) Option {
	return func(o *options) {
		o.key = key
	}
}

func newOptions(opts []Option) *options {
	o := &options{key: DefaultContextKey}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Middleware gives every request its own copy of base, so handlers can
// extend the head without affecting other requests.
//
//	e.Use(hxheadecho.Middleware(base))
func Middleware(base *hxhead.Head, opts ...Option) echo.MiddlewareFunc {
	o := newOptions(opts)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(o.key, base.Copy())
			return next(c)
		}
	}
}

// FromContext returns the request's head, or nil when Middleware is not
// installed.
func FromContext(c echo.Context, opts ...Option) *hxhead.Head {
	h, _ := c.Get(newOptions(opts).key).(*hxhead.Head)
	return h
}

// Reverse resolves to the URL of the named route. The lookup runs at render
// time, so routes may be registered after the element is built.
//
//	hxhead.Link{Rel: "canonical", Href: hxheadecho.Reverse(e, "post", id)}
func Reverse(e *echo.Echo, name string, params ...any) hxhead.Resolver {
	return hxhead.ResolverFunc(func() string {
		return e.Reverse(name, params...)
	})
}

// Render writes a templ component to the Echo response.
//
//	func handler(c echo.Context) error {
//	    return hxheadecho.Render(c, myTemplate())
//	}
func Render(c echo.Context, component templ.Component) error {
	c.Response().Header().Set("Content-Type", "text/html; charset=utf-8")
	return component.Render(c.Request().Context(), c.Response())
}
