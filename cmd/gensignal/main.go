// Command gensignal writes signal_gen.go: the arity-specific Signal0..Signal4
// and VoidSignal0..VoidSignal4 families, rendered from tmpl.go and gofmt'd
// via go/format. Run it from the module root as `go run ./cmd/gensignal`
// whenever an arity needs to change; it always rewrites the full set, 0
// through maxArity.
//
// Modeled on delaneyj-signalparty/cmd/codegen: a small flag-driven generate
// step plus a templates helper package, adapted from that generator's
// hand-rolled strings.Builder loops to text/template + go/format.Source.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"path/filepath"
	"text/template"
)

const maxArity = 4

func main() {
	out := flag.String("out", "signal_gen.go", "output file, relative to the module root")
	flag.Parse()

	contents, err := render(maxArity)
	if err != nil {
		log.Fatalf("gensignal: %v", err)
	}

	path := *out
	if !filepath.IsAbs(path) {
		path = filepath.Join(".", path)
	}
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		log.Fatalf("gensignal: writing %s: %v", path, err)
	}
	fmt.Printf("gensignal: wrote %s (arities 0..%d)\n", path, maxArity)
}

// arity carries the per-N template data: its type parameter list, its
// argument-name/type pairs for func signatures, and the plain argument list
// for call sites.
type arity struct {
	N int

	// TypeParams is "A, B, C" for N=3, empty for N=0.
	TypeParams string
	// TypeParamsAny is "A, B, C any" (or "" for N=0), the constraint clause
	// used when declaring a generic type/func.
	TypeParamsAny string
	// ArgDecls is "a A, b B, c C" for a value-signal Invoke-style signature.
	ArgDecls string
	// ArgNames is "a, b, c", the call-site argument list.
	ArgNames string
	// SlotSig is "A, B, C" as it appears inside a `func(...) R` type
	// assertion — identical to TypeParams, kept distinct for template clarity.
	SlotSig string

	// DeclBrackets is "[A, B any]", or "" for N=0 — a generic declaration's
	// type-parameter clause with its own brackets, omitted entirely rather
	// than rendered empty (Go rejects a bare "[]" on a non-generic type).
	DeclBrackets string
	// UseBrackets is "[A, B]", or "" for N=0 — a generic type's
	// instantiation/reference clause.
	UseBrackets string
}

func arities(max int) []arity {
	names := []string{"A", "B", "C", "D"}
	argNames := []string{"a", "b", "c", "d"}

	out := make([]arity, 0, max+1)
	for n := 0; n <= max; n++ {
		var typeParams, argDecls, slotArgNames string
		for i := 0; i < n; i++ {
			if i > 0 {
				typeParams += ", "
				argDecls += ", "
				slotArgNames += ", "
			}
			typeParams += names[i]
			argDecls += argNames[i] + " " + names[i]
			slotArgNames += argNames[i]
		}
		typeParamsAny := ""
		if n > 0 {
			typeParamsAny = typeParams + " any"
		}
		declBrackets, useBrackets := "", ""
		if n > 0 {
			declBrackets = "[" + typeParamsAny + "]"
			useBrackets = "[" + typeParams + "]"
		}
		out = append(out, arity{
			N:             n,
			TypeParams:    typeParams,
			TypeParamsAny: typeParamsAny,
			ArgDecls:      argDecls,
			ArgNames:      slotArgNames,
			SlotSig:       typeParams,
			DeclBrackets:  declBrackets,
			UseBrackets:   useBrackets,
		})
	}
	return out
}

func render(max int) ([]byte, error) {
	tmpl, err := template.New("signal_gen").Parse(signalTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, arities(max)); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gofmt: %w (generated source follows)\n%s", err, buf.String())
	}
	return formatted, nil
}
