// Package gen renders the scarp wrapper sources from embedded templates.
//
// Each numeric kind is rendered from the template of its category into a
// source file and a test file. The column converters for every kind are
// rendered into one aggregated file, and the forwarded text surface of String
// is rendered from the exported functions of the strings package.
package gen

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"go/format"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Sentinel errors.
var (
	ErrStale         = errors.New("generated files are stale")
	ErrUnknownTarget = errors.New("unknown target")
)

// Target selects a group of generated files.
type Target string

// Targets accepted on the command line.
const (
	TargetAll       Target = "all"
	TargetConvert   Target = "convert"
	TargetPrimitive Target = "primitive"
	TargetString    Target = "string"
)

// ParseTarget returns the Target named s.
func ParseTarget(s string) (Target, error) {
	switch t := Target(strings.ToLower(s)); t {
	case TargetAll, TargetConvert, TargetPrimitive, TargetString:
		return t, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTarget, s)
}

// Kind describes one wrapper type and the category template it is rendered
// from.
type Kind struct {
	Name     string
	Category string
	Bits     int
	// Family selects the column converter helpers in convert.go.tmpl.
	Family string
}

// Type is the lowercased kind name. It spells the underlying Go type, or for
// Decimal the package that declares it.
func (k Kind) Type() string { return strings.ToLower(k.Name) }

// Kinds lists the numeric kinds in render order.
var Kinds = []Kind{
	{Name: "Uint32", Category: "unsigned", Bits: 32, Family: "Integer"},
	{Name: "Uint64", Category: "unsigned", Bits: 64, Family: "Integer"},
	{Name: "Int32", Category: "signed", Bits: 32, Family: "Integer"},
	{Name: "Int64", Category: "signed", Bits: 64, Family: "Integer"},
	{Name: "Decimal", Category: "decimal", Family: "Decimal"},
	{Name: "Float64", Category: "float", Bits: 64, Family: "Float"},
	{Name: "Float32", Category: "float", Bits: 32, Family: "Float"},
}

var stringKind = Kind{Name: "String", Family: "String"}

// File is one rendered output file.
type File struct {
	Name    string
	Content []byte
}

// Generator renders files for one target package.
type Generator struct {
	pkg        string
	importPath string
	source     string
	logger     *slog.Logger
	tmpl       *template.Template
}

// Option configures a Generator.
type Option func(*Generator)

// WithPackage sets the package clause of rendered files. Defaults to "scarp".
func WithPackage(name string) Option {
	return func(g *Generator) {
		g.pkg = name
	}
}

// WithImportPath sets the import path rendered test files use for the
// package. Defaults to "github.com/ryancerium/scarp".
func WithImportPath(path string) Option {
	return func(g *Generator) {
		g.importPath = path
	}
}

// WithSource sets the package whose functions are forwarded onto String.
// Defaults to "strings".
func WithSource(path string) Option {
	return func(g *Generator) {
		g.source = path
	}
}

// WithLogger sets the logger for per-file diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = l
	}
}

// New parses the embedded templates and returns a Generator.
func New(opts ...Option) (*Generator, error) {
	g := &Generator{
		pkg:        "scarp",
		importPath: "github.com/ryancerium/scarp",
		source:     "strings",
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}

	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	g.tmpl = tmpl
	return g, nil
}

type kindData struct {
	Package string
	Import  string
	Name    string
	Type    string
	Bits    int
}

type convertData struct {
	Package string
	Kinds   []Kind
}

type surfaceData struct {
	Package string
	Imports []string
	Members []Member
}

// Render renders the files selected by targets. No targets, or TargetAll,
// selects everything. Files are returned in a fixed order.
func (g *Generator) Render(targets ...Target) ([]File, error) {
	want := selected(targets)

	var files []File
	if want[TargetPrimitive] {
		for _, k := range Kinds {
			data := kindData{Package: g.pkg, Import: g.importPath, Name: k.Name, Type: k.Type(), Bits: k.Bits}
			for _, suffix := range []string{".go", "_test.go"} {
				f, err := g.render(k.Type()+suffix, k.Category+suffix+".tmpl", data)
				if err != nil {
					return nil, err
				}
				files = append(files, f)
			}
		}
	}

	if want[TargetConvert] {
		data := convertData{Package: g.pkg, Kinds: append(slices.Clone(Kinds), stringKind)}
		f, err := g.render("convert_generated.go", "convert.go.tmpl", data)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	if want[TargetString] {
		data, err := g.surface()
		if err != nil {
			return nil, err
		}
		f, err := g.render("string_generated.go", "string.go.tmpl", data)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	return files, nil
}

func selected(targets []Target) map[Target]bool {
	want := make(map[Target]bool, 3)
	if len(targets) == 0 || slices.Contains(targets, TargetAll) {
		targets = []Target{TargetPrimitive, TargetConvert, TargetString}
	}
	for _, t := range targets {
		want[t] = true
	}
	return want
}

func (g *Generator) render(name, tmpl string, data any) (File, error) {
	var buf bytes.Buffer
	if err := g.tmpl.ExecuteTemplate(&buf, tmpl, data); err != nil {
		return File{}, fmt.Errorf("render %s: %w", name, err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return File{}, fmt.Errorf("format %s: %w", name, err)
	}

	g.logger.Debug("rendered",
		slog.String("file", name),
		slog.String("template", tmpl),
		slog.Int("bytes", len(src)),
	)
	return File{Name: name, Content: src}, nil
}

func (g *Generator) surface() (surfaceData, error) {
	pkg, err := loadSource(g.source)
	if err != nil {
		return surfaceData{}, err
	}

	members, skipped := forwardable(pkg)
	for _, s := range skipped {
		g.logger.Debug("not forwarded", slog.String("func", s.name), slog.String("reason", s.reason))
	}

	imports := []string{g.source}
	for _, m := range members {
		for _, path := range m.imports {
			if !slices.Contains(imports, path) {
				imports = append(imports, path)
			}
		}
	}
	slices.Sort(imports)

	return surfaceData{Package: g.pkg, Imports: imports, Members: members}, nil
}

// Write writes files into dir.
func Write(dir string, files []File) error {
	for _, f := range files {
		path := filepath.Join(dir, f.Name)
		if err := os.WriteFile(path, f.Content, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	return nil
}

// Check compares files against the copies in dir and returns an error
// wrapping ErrStale that names every file that is missing or differs.
func Check(dir string, files []File) error {
	var stale []string
	for _, f := range files {
		got, err := os.ReadFile(filepath.Join(dir, f.Name))
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("read %s: %w", f.Name, err)
			}
			stale = append(stale, f.Name)
			continue
		}
		if !bytes.Equal(got, f.Content) {
			stale = append(stale, f.Name)
		}
	}
	if len(stale) > 0 {
		return fmt.Errorf("%w: %s", ErrStale, strings.Join(stale, ", "))
	}
	return nil
}
