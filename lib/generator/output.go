package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"github.com/pthm/hxhead"
	"github.com/pthm/hxhead/lib/manifest"
)

type output struct {
	name string
	data []byte
}

func (g *Generator) render(matches []Match, fav hxhead.Favicon) ([]output, error) {
	code, err := RenderGo(g.opts.Package, g.opts.VarName, matches)
	if err != nil {
		return nil, err
	}

	m, err := manifest.FromElements(fav)
	if err != nil {
		return nil, err
	}
	var yml bytes.Buffer
	if err := m.Encode(&yml); err != nil {
		return nil, err
	}

	return []output{
		{GoFile, code},
		{HTMLFile, []byte(fav.HTML() + "\n")},
		{ManifestFile, yml.Bytes()},
	}, nil
}

// RenderGo renders a gofmt'd Go file declaring varName as the favicon for
// matches.
func RenderGo(pkg, varName string, matches []Match) ([]byte, error) {
	tmpl, err := template.New("favicon").Parse(goTemplate)
	if err != nil {
		return nil, err
	}

	data := struct {
		Package string
		VarName string
		Matches []Match
	}{
		Package: pkg,
		VarName: varName,
		Matches: matches,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format source: %w", err)
	}
	return formatted, nil
}

const goTemplate = `// Code generated by hxhead favicons. DO NOT EDIT.

package {{.Package}}

import "github.com/pthm/hxhead"

// {{.VarName}} links the generated favicon set.
var {{.VarName}} = hxhead.Favicon{
{{- range .Matches}}
	{{.Slot.Field}}: hxhead.Literal({{printf "%q" .Href}}),
{{- end}}
}
`
