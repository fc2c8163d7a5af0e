package gen

import (
	"strings"
	"testing"
)

func TestCheckTypeBuiltins(t *testing.T) {
	in := NewInspector(nil)
	tests := []string{
		"int",
		"string",
		"bool",
		"any",
		"[]byte",
		"[4]float64",
		"map[string]int",
		"*bool",
		"chan int",
		"interface{}",
	}
	for _, expr := range tests {
		t.Run(expr, func(t *testing.T) {
			ref, err := in.CheckType(expr)
			if err != nil {
				t.Fatalf("CheckType(%q) error: %v", expr, err)
			}
			if ref.Expr != expr {
				t.Errorf("Expr = %q; want %q", ref.Expr, expr)
			}
			if len(ref.Imports) != 0 {
				t.Errorf("Imports = %v; want none for a builtin expression", ref.Imports)
			}
		})
	}
}

func TestCheckTypeErrors(t *testing.T) {
	in := NewInspector(nil)
	tests := []struct {
		name    string
		expr    string
		wantErr string
	}{
		{"unknown bare type", "NoSuchType", "unknown type"},
		{"unlisted package", "time.Duration", "not listed in imports"},
		{"func type", "func(int)", "unsupported type expression"},
		{"non-empty interface", "interface{ M() }", "not supported"},
		{"struct type", "struct{}", "unsupported type expression"},
		{"not a type expression", "1 +", "type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := in.CheckType(tt.expr)
			if err == nil {
				t.Fatalf("CheckType(%q) succeeded; want error containing %q", tt.expr, tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q; want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestCheckTypeQualified(t *testing.T) {
	if testing.Short() {
		t.Skip("loading packages spawns the go tool")
	}
	in := NewInspector([]string{"time"})

	ref, err := in.CheckType("time.Duration")
	if err != nil {
		t.Fatalf("CheckType(time.Duration) error: %v", err)
	}
	if len(ref.Imports) != 1 || ref.Imports[0] != "time" {
		t.Errorf("Imports = %v; want [time]", ref.Imports)
	}

	ref, err = in.CheckType("map[string]*time.Time")
	if err != nil {
		t.Fatalf("CheckType(map[string]*time.Time) error: %v", err)
	}
	if len(ref.Imports) != 1 || ref.Imports[0] != "time" {
		t.Errorf("Imports = %v; want [time]", ref.Imports)
	}

	if _, err := in.CheckType("time.NoSuchType"); err == nil || !strings.Contains(err.Error(), "has no") {
		t.Errorf("CheckType(time.NoSuchType) error = %v; want missing-type error", err)
	}
	if _, err := in.CheckType("time.Now"); err == nil || !strings.Contains(err.Error(), "not a type") {
		t.Errorf("CheckType(time.Now) error = %v; want not-a-type error", err)
	}
}
