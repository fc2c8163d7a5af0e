package gen

import (
	"fmt"
	"go/format"
	"go/token"
	"sort"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"

	"github.com/funvibe/lablist/pkg/labl"
)

// Import paths referenced by generated code.
const (
	lablImportPath = "github.com/funvibe/lablist/pkg/labl"
	uuidImportPath = "github.com/google/uuid"
)

// Names of the generated files.
const (
	LabelsFile  = "labels.go"
	RecordsFile = "records.go"
)

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the file name within the output directory.
	Filename string

	// Content is the full, gofmt-formatted Go source.
	Content string
}

// Generator renders Go source from a validated configuration.
type Generator struct {
	cfg  *Config
	insp *Inspector
}

// NewGenerator creates a Generator for a validated config.
func NewGenerator(cfg *Config) *Generator {
	return &Generator{cfg: cfg, insp: NewInspector(cfg.Imports)}
}

// Filenames returns the files Generate will produce, without generating.
func (g *Generator) Filenames() []string {
	names := []string{LabelsFile}
	if len(g.cfg.Records) > 0 {
		names = append(names, RecordsFile)
	}
	return names
}

// Generate produces all output files for the configuration. Payload type
// expressions are resolved first, so a bad declaration fails here rather
// than in the emitted code.
func (g *Generator) Generate() ([]GeneratedFile, error) {
	refs := make(map[string]*TypeRef, len(g.cfg.Labels))
	for _, l := range g.cfg.Labels {
		ref, err := g.insp.CheckType(l.Type)
		if err != nil {
			return nil, fmt.Errorf("label %s: %w", l.Name, err)
		}
		refs[l.Name] = ref
	}

	labelsFile, err := g.generateLabels(refs)
	if err != nil {
		return nil, err
	}
	files := []GeneratedFile{labelsFile}

	if len(g.cfg.Records) > 0 {
		recordsFile, err := g.generateRecords(refs)
		if err != nil {
			return nil, err
		}
		files = append(files, recordsFile)
	}
	return files, nil
}

type labelsFileContext struct {
	Package string
	Imports []string
	Labels  []labelContext
}

type labelContext struct {
	Name    string
	Type    string
	Display string
	UIDVar  string
	UID     string
}

func (g *Generator) generateLabels(refs map[string]*TypeRef) (GeneratedFile, error) {
	ctx := labelsFileContext{Package: g.cfg.Package}

	imports := map[string]bool{lablImportPath: true, uuidImportPath: true}
	for _, l := range g.cfg.Labels {
		for _, imp := range refs[l.Name].Imports {
			imports[imp] = true
		}
		display := l.Display
		if display == "" {
			display = l.Name
		}
		ctx.Labels = append(ctx.Labels, labelContext{
			Name:    l.Name,
			Type:    l.Type,
			Display: display,
			UIDVar:  "uid" + l.Name,
			UID:     labl.UID(g.cfg.Package, l.Name).String(),
		})
	}
	ctx.Imports = sortedImports(imports)

	content, err := render("labels", labelsFileTemplate, ctx)
	if err != nil {
		return GeneratedFile{}, err
	}
	return GeneratedFile{Filename: LabelsFile, Content: content}, nil
}

type recordsFileContext struct {
	Package string
	Imports []string
	Records []recordContext
}

type recordContext struct {
	Name      string
	FieldList string
	ChainType string
	Params    string
	Ctor      string
	Fields    []fieldContext
}

type fieldContext struct {
	Name string
	Type string
	Path string
}

func (g *Generator) generateRecords(refs map[string]*TypeRef) (GeneratedFile, error) {
	ctx := recordsFileContext{Package: g.cfg.Package}

	imports := map[string]bool{lablImportPath: true}
	for _, r := range g.cfg.Records {
		rc := recordContext{
			Name:      r.Name,
			FieldList: strings.Join(r.Fields, ", "),
		}

		// The first field is the head of the chain, so the chain type
		// and the constructor expression are built tail-first.
		chain := "labl.Nil"
		ctor := "labl.Nil{}"
		var params []string
		for i := len(r.Fields) - 1; i >= 0; i-- {
			l := g.cfg.label(r.Fields[i])
			chain = fmt.Sprintf("labl.Cons[labl.Labeled[%s, %s], %s]", l.Name, l.Type, chain)
			ctor = fmt.Sprintf("labl.Prepend[%s](%s, %s)", l.Name, ctor, paramName(l.Name))
		}
		for i, f := range r.Fields {
			l := g.cfg.label(f)
			for _, imp := range refs[f].Imports {
				imports[imp] = true
			}
			params = append(params, paramName(l.Name)+" "+l.Type)
			rc.Fields = append(rc.Fields, fieldContext{
				Name: l.Name,
				Type: l.Type,
				Path: "r.chain" + strings.Repeat(".Tail", i) + ".Head.Value",
			})
		}
		rc.ChainType = chain
		rc.Ctor = ctor
		rc.Params = strings.Join(params, ", ")
		ctx.Records = append(ctx.Records, rc)
	}
	ctx.Imports = sortedImports(imports)

	content, err := render("records", recordsFileTemplate, ctx)
	if err != nil {
		return GeneratedFile{}, err
	}
	return GeneratedFile{Filename: RecordsFile, Content: content}, nil
}

// paramName derives a constructor parameter name from a label name,
// steering clear of Go keywords ("Type" would otherwise become "type").
func paramName(label string) string {
	r, size := utf8.DecodeRuneInString(label)
	name := string(unicode.ToLower(r)) + label[size:]
	if token.IsKeyword(name) {
		name += "Val"
	}
	return name
}

func sortedImports(set map[string]bool) []string {
	imports := make([]string, 0, len(set))
	for imp := range set {
		imports = append(imports, imp)
	}
	sort.Strings(imports)
	return imports
}

// render executes a template and gofmt-formats the result.
func render(name, tmplText string, data any) (string, error) {
	tmpl, err := template.New(name).Parse(tmplText)
	if err != nil {
		return "", fmt.Errorf("parsing %s template: %w", name, err)
	}
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering %s: %w", name, err)
	}
	src, err := format.Source([]byte(buf.String()))
	if err != nil {
		return "", fmt.Errorf("formatting generated %s: %w", name, err)
	}
	return string(src), nil
}

const labelsFileTemplate = `// Code generated by labelgen. DO NOT EDIT.

package {{.Package}}

import (
{{- range .Imports}}
	"{{.}}"
{{- end}}
)
{{range .Labels}}
// {{.Name}} labels a slot of type {{.Type}}.
type {{.Name}} struct{ labl.Marker[{{.Type}}] }

// LabelName returns the display name of {{.Name}}.
func ({{.Name}}) LabelName() string { return {{printf "%q" .Display}} }

// LabelUID returns the declaration identifier of {{.Name}}.
func ({{.Name}}) LabelUID() uuid.UUID { return {{.UIDVar}} }

var {{.UIDVar}} = uuid.MustParse("{{.UID}}")
{{end}}`

const recordsFileTemplate = `// Code generated by labelgen. DO NOT EDIT.

package {{.Package}}

import (
{{- range .Imports}}
	"{{.}}"
{{- end}}
)
{{range $r := .Records}}
// {{$r.Name}}Chain is the underlying labl chain of {{$r.Name}}.
type {{$r.Name}}Chain = {{$r.ChainType}}

// {{$r.Name}} is a labeled list with fields {{$r.FieldList}}, in that
// order.
type {{$r.Name}} struct {
	chain {{$r.Name}}Chain
}

// New{{$r.Name}} builds a {{$r.Name}} with fields in declaration order.
func New{{$r.Name}}({{$r.Params}}) {{$r.Name}} {
	return {{$r.Name}}{chain: {{$r.Ctor}}}
}

// Chain returns the underlying chain, for generic code over labl.List.
func (r {{$r.Name}}) Chain() {{$r.Name}}Chain { return r.chain }

// String renders the record fields in declaration order.
func (r {{$r.Name}}) String() string { return labl.Format(r.chain) }
{{range $f := $r.Fields}}
// {{$f.Name}} returns the value stored under the {{$f.Name}} label.
func (r {{$r.Name}}) {{$f.Name}}() {{$f.Type}} { return {{$f.Path}} }

// Set{{$f.Name}} replaces the value stored under the {{$f.Name}} label.
func (r *{{$r.Name}}) Set{{$f.Name}}(v {{$f.Type}}) { {{$f.Path}} = v }

// {{$f.Name}}Ref returns a mutable reference to the {{$f.Name}} slot.
func (r *{{$r.Name}}) {{$f.Name}}Ref() *{{$f.Type}} { return &{{$f.Path}} }
{{end}}{{end}}`
