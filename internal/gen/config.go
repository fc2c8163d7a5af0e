// Package gen implements the labelgen code generator.
//
// It turns a labels.yaml declaration file into Go source: one zero-size
// marker type per label, bound to a payload type and a unique identifier,
// and one type per declared record wrapping a labl chain with compile-time
// typed accessors. Misuse of a label — an unknown field, a duplicate, a
// payload type that does not resolve — is rejected here, before the
// generated code ever reaches the compiler.
//
// The gen package handles:
//   - Parsing and validating labels.yaml configuration
//   - Resolving payload type expressions via go/packages
//   - Rendering Go source (labels.go, records.go)
//   - Skipping regeneration when the configuration is unchanged
package gen

import (
	"fmt"
	"go/token"
	"os"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level labels.yaml configuration.
type Config struct {
	// Package is the Go package name for the generated files.
	Package string `yaml:"package"`

	// Output is the directory generated files are written to, relative
	// to the configuration file. Defaults to the package name.
	Output string `yaml:"output,omitempty"`

	// Imports lists Go packages that payload type expressions may
	// reference by their last path element (e.g. "time" for
	// time.Duration, "github.com/google/uuid" for uuid.UUID).
	Imports []string `yaml:"imports,omitempty"`

	// Labels declares the label set.
	Labels []LabelDecl `yaml:"labels"`

	// Records declares named chain shapes over the labels.
	Records []RecordDecl `yaml:"records,omitempty"`
}

// LabelDecl declares one label: a marker type bound to a payload type.
type LabelDecl struct {
	// Name is the Go type name of the label (e.g. "Count"). Must be
	// exported, since accessors are derived from it.
	Name string `yaml:"name"`

	// Type is the Go payload type expression (e.g. "int", "[]string",
	// "time.Duration").
	Type string `yaml:"type"`

	// Display overrides the label's display name used in formatting.
	// Defaults to Name.
	Display string `yaml:"display,omitempty"`
}

// RecordDecl declares a named chain shape over previously declared labels.
type RecordDecl struct {
	// Name is the Go type name of the record (e.g. "Session").
	Name string `yaml:"name"`

	// Fields lists the record's labels, head first. The order is
	// preserved by construction, iteration and display.
	Fields []string `yaml:"fields"`
}

// Load reads and validates a labels.yaml file. The raw bytes are
// returned alongside the config so callers can key the generation cache
// on them.
func Load(path string) (*Config, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, nil, err
	}
	return cfg, data, nil
}

// Parse parses and validates labels.yaml contents.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing labels.yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// reservedMethods are method names every generated record already has.
var reservedMethods = map[string]bool{
	"Chain":  true,
	"String": true,
}

// Validate checks the configuration for errors that would otherwise
// surface as confusing compile errors in generated code.
func (c *Config) Validate() error {
	if c.Package == "" {
		return fmt.Errorf("config: package is required")
	}
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("config: package %q is not a valid Go identifier", c.Package)
	}
	if len(c.Labels) == 0 {
		return fmt.Errorf("config: at least one label is required")
	}

	// Every generated top-level identifier, for collision detection:
	// label types, record types, chain aliases, constructors.
	topLevel := make(map[string]string)
	declare := func(ident, what string) error {
		if prev, ok := topLevel[ident]; ok {
			return fmt.Errorf("config: %s collides with %s (both generate %q)", what, prev, ident)
		}
		topLevel[ident] = what
		return nil
	}

	labels := make(map[string]bool)
	for i, l := range c.Labels {
		if l.Name == "" {
			return fmt.Errorf("config: label %d: name is required", i)
		}
		if !isExportedIdent(l.Name) {
			return fmt.Errorf("config: label %q must be an exported Go identifier", l.Name)
		}
		if l.Type == "" {
			return fmt.Errorf("config: label %q: type is required", l.Name)
		}
		if labels[l.Name] {
			return fmt.Errorf("config: duplicate label %q", l.Name)
		}
		labels[l.Name] = true
		if err := declare(l.Name, "label "+l.Name); err != nil {
			return err
		}
	}

	records := make(map[string]bool)
	for i, r := range c.Records {
		if r.Name == "" {
			return fmt.Errorf("config: record %d: name is required", i)
		}
		if !isExportedIdent(r.Name) {
			return fmt.Errorf("config: record %q must be an exported Go identifier", r.Name)
		}
		if records[r.Name] {
			return fmt.Errorf("config: duplicate record %q", r.Name)
		}
		records[r.Name] = true
		for _, ident := range []string{r.Name, r.Name + "Chain", "New" + r.Name} {
			if err := declare(ident, "record "+r.Name); err != nil {
				return err
			}
		}
		if len(r.Fields) == 0 {
			return fmt.Errorf("config: record %q has no fields", r.Name)
		}
		if err := validateFields(r, labels); err != nil {
			return err
		}
	}
	return nil
}

// validateFields checks one record's field list: every field must be a
// declared label, occur once, and produce non-colliding accessor names.
func validateFields(r RecordDecl, labels map[string]bool) error {
	seen := make(map[string]bool)
	methods := make(map[string]string)
	for _, f := range r.Fields {
		if !labels[f] {
			return fmt.Errorf("config: record %q: field %q is not a declared label", r.Name, f)
		}
		if seen[f] {
			return fmt.Errorf("config: record %q: duplicate field %q", r.Name, f)
		}
		seen[f] = true
		for _, m := range []string{f, "Set" + f, f + "Ref"} {
			if reservedMethods[m] {
				return fmt.Errorf("config: record %q: field %q generates reserved method %q", r.Name, f, m)
			}
			if prev, ok := methods[m]; ok {
				return fmt.Errorf("config: record %q: fields %q and %q generate the same method %q", r.Name, prev, f, m)
			}
			methods[m] = f
		}
	}
	return nil
}

// label returns the declaration for a validated field name.
func (c *Config) label(name string) LabelDecl {
	for _, l := range c.Labels {
		if l.Name == name {
			return l
		}
	}
	// Unreachable after Validate.
	panic(fmt.Sprintf("gen: unknown label %q", name))
}

func isExportedIdent(s string) bool {
	if !token.IsIdentifier(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
