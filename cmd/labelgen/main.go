// Command labelgen generates Go label and record types from a labels.yaml
// declaration file. It is intended to run via go:generate:
//
//	//go:generate labelgen -config labels.yaml
//
// Generation fails when a declaration is invalid (duplicate labels,
// unknown record fields, unresolvable payload types), so every misuse is
// caught before the generated code is compiled.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/funvibe/lablist/internal/gen"
)

func main() {
	configPath := flag.String("config", "labels.yaml", "path to the label declaration file")
	outDir := flag.String("out", "", "output directory (overrides the config's output)")
	force := flag.Bool("force", false, "regenerate even when the configuration is unchanged")
	verbose := flag.Bool("v", false, "verbose output")
	flag.Parse()

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "labelgen: unexpected argument %q\n", flag.Arg(0))
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*configPath, *outDir, *force, *verbose); err != nil {
		fail(err)
	}
}

func run(configPath, outDir string, force, verbose bool) error {
	cfg, data, err := gen.Load(configPath)
	if err != nil {
		return err
	}

	if outDir == "" {
		outDir = cfg.Output
		if outDir == "" {
			outDir = cfg.Package
		}
		outDir = filepath.Join(filepath.Dir(configPath), outDir)
	}

	g := gen.NewGenerator(cfg)
	cache := gen.NewCache(outDir)
	if !force && cache.UpToDate(data, g.Filenames()) {
		if verbose {
			fmt.Fprintf(os.Stderr, "labelgen: %s is up to date\n", outDir)
		}
		return nil
	}

	files, err := g.Generate()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", outDir, err)
	}
	for _, f := range files {
		path := filepath.Join(outDir, f.Filename)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "labelgen: wrote %s\n", path)
		}
	}
	if err := cache.Write(data); err != nil {
		return fmt.Errorf("writing stamp: %w", err)
	}
	return nil
}

// fail prints the error (red when stderr is a terminal) and exits.
func fail(err error) {
	msg := fmt.Sprintf("labelgen: error: %v", err)
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		msg = "\x1b[31m" + msg + "\x1b[0m"
	}
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}
