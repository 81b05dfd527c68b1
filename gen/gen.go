package main

// go run ./gen --catalog catalog --out opcodes.generated.go

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

type mnemonic struct {
	Name     string // as written in the catalog
	Var      string // opcode variable
	Func     string // instruction constructor
	Variants int
	File     string
}

type options struct {
	catalog string
	out     string
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := pflag.NewFlagSet("gen", pflag.ContinueOnError)
	fs.StringVar(&o.catalog, "catalog", "catalog", "directory holding the *.yaml opcode catalog")
	fs.StringVar(&o.out, "out", "", "output file (stdout if empty)")
	err := fs.Parse(args)
	return o, err
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(2)
	}

	ms, err := readCatalog(opts.catalog)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	src, err := render(ms)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	if opts.out == "" {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(opts.out, src, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func readCatalog(dir string) ([]mnemonic, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	seen := make(map[string]string)
	var ms []mnemonic
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		var doc map[string][]yaml.Node
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		for name, variants := range doc {
			name = strings.ToLower(name)
			if prev, dup := seen[name]; dup {
				return nil, fmt.Errorf("%s: %s already defined in %s", file, name, prev)
			}
			seen[name] = file
			ms = append(ms, mnemonic{
				Name:     name,
				Var:      strings.ToUpper(name),
				Func:     strings.ToUpper(name[:1]) + name[1:],
				Variants: len(variants),
				File:     filepath.Base(file),
			})
		}
	}
	sort.Slice(ms, func(i, j int) bool { return ms[i].Name < ms[j].Name })
	return ms, nil
}

func render(ms []mnemonic) ([]byte, error) {
	var b bytes.Buffer
	t := template.Must(template.New("opcodes").Parse(opcodesTemplate))
	if err := t.Execute(&b, ms); err != nil {
		return nil, err
	}
	return format.Source(b.Bytes())
}

const opcodesTemplate = `// Code generated by gen; DO NOT EDIT.

package x86

// Opcodes of the built-in catalog.
var (
{{- range . }}
	{{ .Var }} = defaultCatalog.mustOpcode("{{ .Name }}") // {{ .Variants }} variant(s), {{ .File }}
{{- end }}
)
{{ range . }}
// {{ .Func }} creates a {{ .Name }} instruction.
func {{ .Func }}(args ...Arg) *Instruction { return {{ .Var }}.CreateInstruction(args...) }
{{ end }}`
