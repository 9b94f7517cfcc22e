// qbgen generates guarded query builders from entity metadata files.
//
// Usage:
//
//	qbgen -schema entities.qb [-out builders_gen.go] [-pkg builders]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/guardql/guardql/qbgen"
)

const version = "0.1.0"

func main() {
	schemaFile := flag.String("schema", "", "Path to entity metadata file (required)")
	outFile := flag.String("out", "", "Output Go file (default: stdout)")
	pkg := flag.String("pkg", "builders", "Package name for generated code")
	guardImport := flag.String("guard", "github.com/guardql/guardql/guard", "Import path of the guard runtime package")
	acronyms := flag.Bool("acronyms", true, "Apply Go naming conventions for acronyms (ID, URL, etc.)")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Parse()

	if *showVersion {
		fmt.Printf("qbgen %s\n", version)
		os.Exit(0)
	}

	if *schemaFile == "" {
		fmt.Fprintln(os.Stderr, "error: -schema flag is required")
		flag.Usage()
		os.Exit(1)
	}

	entities, err := qbgen.ParseSchemaFile(*schemaFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	var w *os.File
	if *outFile != "" {
		w, err = os.Create(*outFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error creating output: %v\n", err)
			os.Exit(1)
		}
		defer func() { _ = w.Close() }()
	} else {
		w = os.Stdout
	}

	cfg := qbgen.RenderConfig{
		PackageName: *pkg,
		GuardImport: *guardImport,
		UseAcronyms: *acronyms,
	}
	if err := qbgen.Render(w, entities, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error rendering: %v\n", err)
		os.Exit(1)
	}
}
