// Package main provides the CLI entrypoint for remap.
//
// remap applies a YAML rename table to the top-level keys of a YAML
// document:
//
//	remap -table renames.yaml -in doc.yaml -out renamed.yaml
//
// With -in/-out omitted the document is read from stdin and written to
// stdout. Validation warnings (identity renames, duplicate targets) go to
// stderr; validation errors abort the run.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"mapkit/internal/rename"
)

func main() {
	tablePath := flag.String("table", "", "path to the YAML rename table (required)")
	inPath := flag.String("in", "", "input YAML document (default: stdin)")
	outPath := flag.String("out", "", "output path (default: stdout)")
	flag.Parse()

	if *tablePath == "" {
		fmt.Fprintln(os.Stderr, "remap: -table is required")
		flag.Usage()
		os.Exit(2)
	}

	table, err := rename.LoadFile(*tablePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "remap:", err)
		os.Exit(1)
	}

	diags := rename.Validate(table)
	for _, w := range diags.Warnings {
		fmt.Fprintln(os.Stderr, "remap:", w)
	}

	if diags.HasErrors() {
		for _, e := range diags.Errors {
			fmt.Fprintln(os.Stderr, "remap:", e)
		}
		os.Exit(1)
	}

	doc, err := readDocument(*inPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "remap:", err)
		os.Exit(1)
	}

	out, err := rename.Apply(table, doc)
	if err != nil {
		fmt.Fprintln(os.Stderr, "remap:", err)
		os.Exit(1)
	}

	if err := writeDocument(*outPath, out); err != nil {
		fmt.Fprintln(os.Stderr, "remap:", err)
		os.Exit(1)
	}
}

func readDocument(path string) (map[string]any, error) {
	var (
		data []byte
		err  error
	)

	if path == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document YAML: %w", err)
	}

	return doc, nil
}

func writeDocument(path string, doc map[string]any) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", path, err)
	}

	return nil
}
