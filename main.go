// Command minic compiles a single source file through the scanner,
// parser, and code generator, writing the six output artifacts spec
// §6 names under an output directory.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/lookbusy1344/minic/compiler"
	"github.com/lookbusy1344/minic/config"
	"github.com/lookbusy1344/minic/inspector"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a TOML configuration file")
		outDir     = flag.String("outdir", "", "output directory (overrides config)")
		tui        = flag.Bool("tui", false, "launch the interactive inspector after compiling")
		verbose    = flag.Bool("verbose", false, "log each compilation stage")
	)
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: minic [flags] <source-file>")
		os.Exit(2)
	}
	srcPath := flag.Arg(0)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}
	if *outDir != "" {
		cfg.Output.Directory = *outDir
	}

	src, err := os.ReadFile(srcPath)
	if err != nil {
		log.Fatalf("reading %s: %v", srcPath, err)
	}

	if *verbose {
		log.Printf("scanning and parsing %s", srcPath)
	}
	result := compiler.Compile(src)

	if err := os.MkdirAll(cfg.Output.Directory, 0o755); err != nil {
		log.Fatalf("creating output directory: %v", err)
	}

	artifacts := map[string]string{
		"tokens.txt":         result.RenderTokens(),
		"lexical_errors.txt": result.RenderLexicalErrors(),
		"parse_tree.txt":     result.RenderParseTree(),
		"syntax_errors.txt":  result.RenderSyntaxErrors(),
		"semantic_error.txt": result.RenderSemanticErrors(),
		"output.txt":         result.RenderOutput(),
	}
	for name, content := range artifacts {
		path := filepath.Join(cfg.Output.Directory, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			log.Fatalf("writing %s: %v", path, err)
		}
		if *verbose {
			log.Printf("wrote %s", path)
		}
	}

	if len(result.LexicalErrs) > 0 {
		log.Printf("%d lexical error(s)", len(result.LexicalErrs))
	}
	if len(result.SyntaxErrs) > 0 {
		log.Printf("%d syntax error(s)", len(result.SyntaxErrs))
	}
	if len(result.SemanticErrs) > 0 {
		log.Printf("%d semantic error(s); output.txt not generated", len(result.SemanticErrs))
	}

	if *tui || cfg.Inspector.Enabled {
		if err := inspector.Run(result, cfg); err != nil {
			log.Fatalf("inspector: %v", err)
		}
	}
}
