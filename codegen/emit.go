package codegen

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"

	"github.com/arthurlm/fixgen/dictionary"
)

// Config drives a code generation run over one or more dictionary XML
// files (§5, §6.3).
type Config struct {
	// Paths lists the dictionary XML files to generate from. Each
	// produces its own <stem>_fields.go, <stem>_messages.go, and
	// <stem>.parsed.json in the output directory.
	Paths []string

	// Package names the package declaration written into every
	// generated file.
	Package string

	// EnableFormatting runs the generated source through the gofmt -s
	// command before writing it out. A formatting failure is reported on
	// stderr and the
	// unformatted source is written instead — codegen never fails a
	// build over cosmetics.
	EnableFormatting bool
}

// Build runs one dictionary through parse → codegen → write per entry
// in c.Paths, concurrently, and reports the first failure (§5). Each
// dictionary is independent of every other: there is no shared state
// to serialize around, so one goroutine per file is the natural shape.
func (c Config) Build(outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("codegen: cannot create output directory %q: %w", outDir, err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(c.Paths))

	for _, path := range c.Paths {
		wg.Add(1)
		go func(path string) {
			defer wg.Done()
			if err := c.buildOne(path, outDir); err != nil {
				errs <- fmt.Errorf("%s: %w", path, err)
			}
		}(path)
	}

	wg.Wait()
	close(errs)

	var first error
	for err := range errs {
		if first == nil {
			first = err
		}
	}
	return first
}

func (c Config) buildOne(path, outDir string) error {
	spec, err := dictionary.Parse(path)
	if err != nil {
		return err
	}

	stem := stemOf(path)
	fd, err := BuildFileData(spec, c.Package, stem)
	if err != nil {
		return fmt.Errorf("codegen: %w", err)
	}

	fieldsSrc, err := renderFields(fd)
	if err != nil {
		return fmt.Errorf("codegen: rendering %s_fields.go: %w", stem, err)
	}
	if err := c.writeFile(filepath.Join(outDir, stem+"_fields.go"), fieldsSrc); err != nil {
		return err
	}

	messagesSrc, err := renderMessages(fd)
	if err != nil {
		return fmt.Errorf("codegen: rendering %s_messages.go: %w", stem, err)
	}
	if err := c.writeFile(filepath.Join(outDir, stem+"_messages.go"), messagesSrc); err != nil {
		return err
	}

	debugJSON, err := spec.DebugJSON()
	if err != nil {
		return fmt.Errorf("codegen: rendering %s.parsed.json: %w", stem, err)
	}
	if err := os.WriteFile(filepath.Join(outDir, stem+".parsed.json"), debugJSON, 0o644); err != nil {
		return fmt.Errorf("codegen: writing %s.parsed.json: %w", stem, err)
	}

	return nil
}

func (c Config) writeFile(path string, src []byte) error {
	if c.EnableFormatting {
		if formatted, err := formatCode(src); err != nil {
			fmt.Fprintf(os.Stderr, "fixgen: %s: gofmt: %v (writing unformatted source)\n", path, err)
		} else {
			src = formatted
		}
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("codegen: writing %s: %w", path, err)
	}
	return nil
}

// formatCode runs gofmt -s on the generated source.
func formatCode(code []byte) ([]byte, error) {
	cmd := exec.Command("gofmt", "-s")
	cmd.Stdin = bytes.NewReader(code)

	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("gofmt failed: %w", err)
	}
	return output, nil
}

// renderFields executes the field-definitions template over fd.
func renderFields(fd *FileData) ([]byte, error) {
	var buf bytes.Buffer
	if err := fieldsTemplate.Execute(&buf, fd); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// renderMessages executes the record and group templates over fd,
// producing one file with the header, trailer, every component, every
// message, and every repeating-group union.
func renderMessages(fd *FileData) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by fixgen from %s. DO NOT EDIT.\n\npackage %s\n\nimport (\n\t\"github.com/arthurlm/fixgen/fix\"\n)\n", fd.Stem, fd.Package)

	if fd.Header != nil {
		if err := recordTemplate.Execute(&buf, fd.Header); err != nil {
			return nil, err
		}
	}
	if fd.Trailer != nil {
		if err := recordTemplate.Execute(&buf, fd.Trailer); err != nil {
			return nil, err
		}
	}
	for i := range fd.Components {
		if err := recordTemplate.Execute(&buf, &fd.Components[i]); err != nil {
			return nil, err
		}
	}
	for i := range fd.Messages {
		if err := recordTemplate.Execute(&buf, &fd.Messages[i]); err != nil {
			return nil, err
		}
	}
	for i := range fd.Groups {
		if err := groupTemplate.Execute(&buf, &fd.Groups[i]); err != nil {
			return nil, err
		}
	}

	return buf.Bytes(), nil
}

// stemOf derives a dictionary's file stem (its base name without
// extension, lowercased) for naming generated output files.
func stemOf(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return strings.ToLower(base)
}
