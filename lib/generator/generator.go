// Package generator turns a directory of favicon files into head markup.
//
// Files are matched by their conventional names (hxhead.FaviconSlots), so
// the output of most favicon tools can be dropped in unchanged. For every
// run three files are produced next to the icons, or in OutputDir:
//
//	favicon_hxhead.go   a Go variable holding the hxhead.Favicon
//	favicon.html        the rendered link tags
//	favicon.yaml        a manifest with a single favicon entry
package generator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/pthm/hxhead"
)

// Names of the generated files.
const (
	GoFile       = "favicon_hxhead.go"
	HTMLFile     = "favicon.html"
	ManifestFile = "favicon.yaml"
)

// ErrNoIcons is returned when the scanned directory holds no known favicon
// file.
var ErrNoIcons = errors.New("generator: no favicon files found")

// Options configures the generator.
type Options struct {
	// Dir is the directory holding the icon files.
	Dir string
	// HrefPrefix is joined to every file name to form its href,
	// e.g. "/static/icons". Defaults to "/".
	HrefPrefix string
	// Package is the package clause of the generated Go file. Defaults to
	// the base name of the output directory.
	Package string
	// VarName is the generated variable. Defaults to "Favicon".
	VarName string
	// OutputDir receives the generated files. Defaults to Dir.
	OutputDir string
	// DryRun logs what would be written without touching the filesystem.
	DryRun bool
	Logger *zap.Logger
}

// Generator generates favicon markup.
type Generator struct {
	opts Options
	log  *zap.Logger
}

// Match is a file found for a favicon slot.
type Match struct {
	Slot hxhead.FaviconSlot
	Path string
	Href string
}

// New creates a new generator.
func New(opts Options) *Generator {
	if opts.OutputDir == "" {
		opts.OutputDir = opts.Dir
	}
	if opts.VarName == "" {
		opts.VarName = "Favicon"
	}
	if opts.Package == "" {
		opts.Package = packageName(opts.OutputDir)
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{opts: opts, log: log}
}

// Scan lists the icons in Dir, in slot order. File names are matched
// case-insensitively; subdirectories are ignored.
func (g *Generator) Scan() ([]Match, error) {
	entries, err := os.ReadDir(g.opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", g.opts.Dir, err)
	}

	files := make(map[string]string, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		files[strings.ToLower(entry.Name())] = entry.Name()
	}

	var matches []Match
	for _, slot := range hxhead.FaviconSlots {
		name, ok := files[slot.Filename]
		if !ok {
			continue
		}
		matches = append(matches, Match{
			Slot: slot,
			Path: filepath.Join(g.opts.Dir, name),
			Href: hxhead.Prefixed(g.opts.HrefPrefix, name).Resolve(),
		})
		g.log.Debug("found icon", zap.String("slot", slot.Name), zap.String("file", name))
	}
	return matches, nil
}

// Favicon builds the favicon element for matches.
func Favicon(matches []Match) hxhead.Favicon {
	var f hxhead.Favicon
	for _, m := range matches {
		f.SetHref(m.Slot.Name, hxhead.Literal(m.Href))
	}
	return f
}

// Generate scans Dir and writes the generated files. It returns the favicon
// that was found.
func (g *Generator) Generate() (hxhead.Favicon, error) {
	matches, err := g.Scan()
	if err != nil {
		return hxhead.Favicon{}, err
	}
	if len(matches) == 0 {
		return hxhead.Favicon{}, fmt.Errorf("%s: %w", g.opts.Dir, ErrNoIcons)
	}
	fav := Favicon(matches)

	outputs, err := g.render(matches, fav)
	if err != nil {
		return hxhead.Favicon{}, err
	}
	for _, out := range outputs {
		if err := g.write(out.name, out.data); err != nil {
			return hxhead.Favicon{}, err
		}
	}
	return fav, nil
}

// Clean removes generated files from OutputDir.
func (g *Generator) Clean() error {
	for _, name := range []string{GoFile, HTMLFile, ManifestFile} {
		path := filepath.Join(g.opts.OutputDir, name)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			continue
		}
		g.log.Info("removing", zap.String("file", path))
		if g.opts.DryRun {
			continue
		}
		if err := os.Remove(path); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) write(name string, data []byte) error {
	path := filepath.Join(g.opts.OutputDir, name)
	g.log.Info("generating", zap.String("file", path), zap.Bool("dry_run", g.opts.DryRun))
	if g.opts.DryRun {
		return nil
	}
	if err := os.MkdirAll(g.opts.OutputDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// packageName derives a Go package name from a directory.
func packageName(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "assets"
	}
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return -1
		}
	}, filepath.Base(abs))
	if name == "" || (name[0] >= '0' && name[0] <= '9') {
		return "assets"
	}
	return name
}
