package hxhead

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
)

// TestResult holds rendered head markup parsed for assertions.
//
// Use it in tests of layouts and handlers that build a Head:
//
//	result, err := hxhead.TestCompile(page.Head)
//	if got, _ := result.Meta("description"); got != "Reference manual" {
//	    t.Fatalf("description = %q", got)
//	}
type TestResult struct {
	HTML string
	Doc  *goquery.Document
}

// TestCompile compiles h and parses the output.
func TestCompile(h *Head, opts ...CompileOption) (*TestResult, error) {
	return parseResult(h.Compile(opts...))
}

// TestRender renders a templ component, such as a Head or the result of
// Head.Component, and parses the output.
func TestRender(c templ.Component) (*TestResult, error) {
	return TestRenderWithContext(context.Background(), c)
}

// TestRenderWithContext is TestRender with a caller supplied context.
func TestRenderWithContext(ctx context.Context, c templ.Component) (*TestResult, error) {
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		return nil, err
	}
	return parseResult(buf.String())
}

func parseResult(html string) (*TestResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><head>" + html + "</head></html>"))
	if err != nil {
		return nil, fmt.Errorf("parse head: %w", err)
	}
	return &TestResult{HTML: html, Doc: doc}, nil
}

// HTMLContains checks if the markup contains the substring.
func (r *TestResult) HTMLContains(substr string) bool {
	return strings.Contains(r.HTML, substr)
}

// HTMLContainsAll checks if the markup contains all substrings.
func (r *TestResult) HTMLContainsAll(substrs ...string) bool {
	for _, s := range substrs {
		if !strings.Contains(r.HTML, s) {
			return false
		}
	}
	return true
}

// Lines returns the rendered tags, one per element line.
func (r *TestResult) Lines() []string {
	if r.HTML == "" {
		return nil
	}
	return strings.Split(r.HTML, "\n")
}

// Title returns the text of the <title> element and whether there is one.
func (r *TestResult) Title() (string, bool) {
	s := r.Doc.Find("head > title")
	if s.Length() == 0 {
		return "", false
	}
	return s.First().Text(), true
}

// Meta returns the content of the first <meta name=...>.
func (r *TestResult) Meta(name string) (string, bool) {
	return r.attr(fmt.Sprintf(`meta[name=%q]`, name), "content")
}

// Property returns the content of the first <meta property=...>.
func (r *TestResult) Property(property string) (string, bool) {
	return r.attr(fmt.Sprintf(`meta[property=%q]`, property), "content")
}

// HTTPEquiv returns the content of the first <meta http-equiv=...>.
func (r *TestResult) HTTPEquiv(value string) (string, bool) {
	return r.attr(fmt.Sprintf(`meta[http-equiv=%q]`, value), "content")
}

// Links returns the hrefs of every <link rel=...>, in order.
func (r *TestResult) Links(rel string) []string {
	return r.attrs(fmt.Sprintf(`link[rel=%q]`, rel), "href")
}

// Scripts returns the src of every <script>, in order.
func (r *TestResult) Scripts() []string {
	return r.attrs("script", "src")
}

// Count returns the number of elements matching a CSS selector.
func (r *TestResult) Count(selector string) int {
	return r.Doc.Find(selector).Length()
}

func (r *TestResult) attr(selector, name string) (string, bool) {
	s := r.Doc.Find(selector)
	if s.Length() == 0 {
		return "", false
	}
	return s.First().Attr(name)
}

func (r *TestResult) attrs(selector, name string) []string {
	var out []string
	r.Doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
		if v, ok := s.Attr(name); ok {
			out = append(out, v)
		}
	})
	return out
}
