package gen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/types"
	"path"
	"sort"

	"golang.org/x/tools/go/packages"
)

// TypeRef is a resolved payload type expression: the expression itself
// plus the import paths the generated code needs to name it.
type TypeRef struct {
	// Expr is the Go type expression as written in labels.yaml.
	Expr string

	// Imports are the packages the expression references.
	Imports []string
}

// builtinTypes are predeclared Go types usable without imports.
var builtinTypes = map[string]bool{
	"any": true, "bool": true, "byte": true, "complex64": true,
	"complex128": true, "error": true, "float32": true, "float64": true,
	"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
	"rune": true, "string": true, "uint": true, "uint8": true,
	"uint16": true, "uint32": true, "uint64": true, "uintptr": true,
}

// Inspector resolves payload type expressions. Qualified names
// (pkg.Type) are checked against the real package via go/packages, so a
// typo fails generation instead of producing uncompilable output.
type Inspector struct {
	// imports maps qualifiers (last path element) to full import paths.
	imports map[string]string

	// loaded caches packages by import path. A nil entry records a
	// package that failed to load.
	loaded map[string]*types.Package
}

// NewInspector creates an Inspector for the config's import list.
func NewInspector(imports []string) *Inspector {
	m := make(map[string]string, len(imports))
	for _, imp := range imports {
		m[path.Base(imp)] = imp
	}
	return &Inspector{
		imports: m,
		loaded:  make(map[string]*types.Package),
	}
}

// CheckType parses and resolves one payload type expression.
func (in *Inspector) CheckType(expr string) (*TypeRef, error) {
	node, err := parser.ParseExpr(expr)
	if err != nil {
		return nil, fmt.Errorf("type %q: %w", expr, err)
	}
	ref := &TypeRef{Expr: expr}
	need := make(map[string]bool)
	if err := in.check(node, need); err != nil {
		return nil, fmt.Errorf("type %q: %w", expr, err)
	}
	for imp := range need {
		ref.Imports = append(ref.Imports, imp)
	}
	sort.Strings(ref.Imports)
	return ref, nil
}

func (in *Inspector) check(node ast.Expr, need map[string]bool) error {
	switch t := node.(type) {
	case *ast.Ident:
		if !builtinTypes[t.Name] {
			return fmt.Errorf("unknown type %q (qualify it and add the package to imports)", t.Name)
		}
		return nil
	case *ast.SelectorExpr:
		qual, ok := t.X.(*ast.Ident)
		if !ok {
			return fmt.Errorf("unsupported qualifier in %s", types.ExprString(node))
		}
		impPath, ok := in.imports[qual.Name]
		if !ok {
			return fmt.Errorf("package %q is not listed in imports", qual.Name)
		}
		if err := in.checkQualified(impPath, t.Sel.Name); err != nil {
			return err
		}
		need[impPath] = true
		return nil
	case *ast.StarExpr:
		return in.check(t.X, need)
	case *ast.ArrayType:
		return in.check(t.Elt, need)
	case *ast.MapType:
		if err := in.check(t.Key, need); err != nil {
			return err
		}
		return in.check(t.Value, need)
	case *ast.ChanType:
		return in.check(t.Value, need)
	case *ast.InterfaceType:
		if len(t.Methods.List) != 0 {
			return fmt.Errorf("inline interface types are not supported; declare a named type")
		}
		return nil
	default:
		return fmt.Errorf("unsupported type expression %s", types.ExprString(node))
	}
}

// checkQualified resolves pkg.Name against the loaded package scope.
func (in *Inspector) checkQualified(impPath, name string) error {
	pkg, err := in.load(impPath)
	if err != nil {
		return err
	}
	obj := pkg.Scope().Lookup(name)
	if obj == nil {
		return fmt.Errorf("package %s has no %s", impPath, name)
	}
	if _, ok := obj.(*types.TypeName); !ok {
		return fmt.Errorf("%s.%s is not a type", impPath, name)
	}
	return nil
}

func (in *Inspector) load(impPath string) (*types.Package, error) {
	if pkg, ok := in.loaded[impPath]; ok {
		if pkg == nil {
			return nil, fmt.Errorf("package %s previously failed to load", impPath)
		}
		return pkg, nil
	}
	cfg := &packages.Config{Mode: packages.NeedName | packages.NeedTypes}
	pkgs, err := packages.Load(cfg, impPath)
	if err != nil {
		in.loaded[impPath] = nil
		return nil, fmt.Errorf("loading package %s: %w", impPath, err)
	}
	if len(pkgs) != 1 || len(pkgs[0].Errors) > 0 {
		in.loaded[impPath] = nil
		return nil, fmt.Errorf("loading package %s: package did not resolve cleanly", impPath)
	}
	in.loaded[impPath] = pkgs[0].Types
	return pkgs[0].Types, nil
}
