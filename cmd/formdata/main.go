// Command formdata exposes the flat/nested conversion pipeline for shell use:
// flatten and unflatten JSON values, list a schema's flat key space, and run
// the full coerce/validate parse over url-encoded form data.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	formdata "github.com/Abyrd9/zod-form-data"
	"github.com/Abyrd9/zod-form-data/yamlschema"
	"github.com/Abyrd9/zod-form-data/zapdiag"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "flatten":
		flattenCmd(os.Args[2:])
	case "unflatten":
		unflattenCmd(os.Args[2:])
	case "paths":
		pathsCmd(os.Args[2:])
	case "parse":
		parseCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `formdata CLI

Usage:
  formdata flatten -schema schema.yaml [-in value.json] [-v]
  formdata unflatten [-in flat.json] [-root path]
  formdata paths -schema schema.yaml
  formdata parse -schema schema.yaml [-in form.txt] [-v]

flatten reads a nested JSON value and prints the dotted-path flat map.
unflatten reads a flat map and prints the nested value.
paths prints every flat schema path with its placeholder segments.
parse reads url-encoded form data and prints the parsed tree or the
coercion/validation errors.`)
}

func flattenCmd(args []string) {
	fs := flag.NewFlagSet("flatten", flag.ExitOnError)
	var schemaPath, in string
	var verbose bool
	fs.StringVar(&schemaPath, "schema", "", "YAML schema file")
	fs.StringVar(&in, "in", "", "JSON value file (default stdin)")
	fs.BoolVar(&verbose, "v", false, "enable verbose diagnostics")
	_ = fs.Parse(args)
	if schemaPath == "" {
		fs.Usage()
		os.Exit(2)
	}

	node := loadSchema(schemaPath)
	var value any
	readJSON(in, &value)

	flat := formdata.Flatten(node, value, formdata.FlattenOpt{Diag: diag(verbose)})
	writeJSON(map[string]any(flat))
}

func unflattenCmd(args []string) {
	fs := flag.NewFlagSet("unflatten", flag.ExitOnError)
	var in, root string
	fs.StringVar(&in, "in", "", "flat map JSON file (default stdin)")
	fs.StringVar(&root, "root", "", "only rebuild the subtree under this path")
	_ = fs.Parse(args)

	var flat formdata.FlatMap
	readJSON(in, &flat)

	if root != "" {
		writeJSON(formdata.UnflattenAt(flat, root))
		return
	}
	writeJSON(formdata.Unflatten(flat))
}

func pathsCmd(args []string) {
	fs := flag.NewFlagSet("paths", flag.ExitOnError)
	var schemaPath string
	fs.StringVar(&schemaPath, "schema", "", "YAML schema file")
	_ = fs.Parse(args)
	if schemaPath == "" {
		fs.Usage()
		os.Exit(2)
	}

	node := loadSchema(schemaPath)
	flat := formdata.FlattenSchema(node)
	for _, p := range flat.Paths() {
		entry, _ := flat.Lookup(p)
		if entry.Optional {
			fmt.Printf("%s\t(optional)\n", p)
			continue
		}
		fmt.Println(p)
	}
}

func parseCmd(args []string) {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	var schemaPath, in string
	var verbose bool
	fs.StringVar(&schemaPath, "schema", "", "YAML schema file")
	fs.StringVar(&in, "in", "", "url-encoded form data file (default stdin)")
	fs.BoolVar(&verbose, "v", false, "enable verbose diagnostics")
	_ = fs.Parse(args)
	if schemaPath == "" {
		fs.Usage()
		os.Exit(2)
	}

	node := loadSchema(schemaPath)
	raw := readAll(in)
	q, err := url.ParseQuery(string(raw))
	if err != nil {
		fatalf("parsing form data: %v", err)
	}

	tree, failure := formdata.ParseForm(context.Background(), node, formdata.ValuesFromURL(q),
		formdata.ParseOpt{Diag: diag(verbose)})
	if failure != nil {
		writeJSON(map[string]any{
			"errors":        failure.Errors(),
			"formMessage":   failure.FormMessage,
			"globalMessage": failure.GlobalMessage,
		})
		os.Exit(1)
	}
	writeJSON(tree)
}

func loadSchema(path string) formdata.Node {
	data, err := os.ReadFile(path)
	if err != nil {
		fatalf("reading schema: %v", err)
	}
	node, err := yamlschema.Load(data)
	if err != nil {
		fatalf("%v", err)
	}
	return node
}

func diag(verbose bool) formdata.Diagnostics {
	if !verbose {
		return formdata.NopDiagnostics()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		fatalf("logger: %v", err)
	}
	return zapdiag.New(logger)
}

func readAll(in string) []byte {
	if in == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fatalf("reading stdin: %v", err)
		}
		return data
	}
	data, err := os.ReadFile(in)
	if err != nil {
		fatalf("reading input: %v", err)
	}
	return data
}

func readJSON(in string, dst any) {
	if err := json.Unmarshal(readAll(in), dst); err != nil {
		fatalf("parsing input JSON: %v", err)
	}
}

func writeJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fatalf("encoding output: %v", err)
	}
	fmt.Println(string(out))
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "formdata: "+format+"\n", args...)
	os.Exit(1)
}
