// fixgen generates Go source from one or more FIX dictionary XML
// files: a field type per <field>, a record type per header, trailer,
// component, and message, plus a debug JSON dump of the parsed
// dictionary tree.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/arthurlm/fixgen/codegen"
)

const version = "0.1.0"

var (
	outputFlag  = flag.String("output", ".", "Output directory for generated files")
	packageFlag = flag.String("package", "fix44", "Package name written into generated files")
	formatFlag  = flag.Bool("gofmt", true, "Run gofmt over generated source before writing it")
	helpFlag    = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()
	paths := flag.Args()

	if *helpFlag || len(paths) == 0 {
		printUsage()
		if len(paths) == 0 {
			os.Exit(1)
		}
		os.Exit(0)
	}

	cfg := codegen.Config{
		Paths:            paths,
		Package:          *packageFlag,
		EnableFormatting: *formatFlag,
	}

	log.Printf("Generating %d dictionary(ies) into %s", len(paths), *outputFlag)

	if err := cfg.Build(*outputFlag); err != nil {
		log.Fatalf("Failed to generate code: %v", err)
	}

	printSummary(paths, *outputFlag)
}

func printSummary(paths []string, outDir string) {
	width := detectTerminalWidth()
	rule := strings.Repeat("-", min(width, 72))

	fmt.Println(rule)
	fmt.Printf("fixgen v%s generated %d dictionar", version, len(paths))
	if len(paths) == 1 {
		fmt.Println("y:")
	} else {
		fmt.Println("ies:")
	}
	for _, p := range paths {
		fmt.Printf("  %s\n", p)
	}
	fmt.Printf("into %s\n", outDir)
	fmt.Println(rule)

	log.Printf("Generated %s", outDir)
}

func detectTerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	if c := os.Getenv("COLUMNS"); c != "" {
		if n, err := strconv.Atoi(c); err == nil && n > 0 {
			return n
		}
	}
	return 80
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `fixgen v%s - Generate Go code from FIX dictionary XML files

Usage: fixgen [flags] dictionary.xml [dictionary.xml ...]

Flags:
`, version)
	flag.PrintDefaults()
}
