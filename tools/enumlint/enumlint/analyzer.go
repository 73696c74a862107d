// SPDX-License-Identifier: MPL-2.0

// Package enumlint implements a go/analysis analyzer that checks the
// bounded-enumeration convention used with pkg/enumrange.
//
// A type is a bounded enumeration when it is a named integer type with a
// value-receiver method Bounds() (first, count T). For every such type the
// analyzer reports:
//   - bounds-not-constant: Bounds does not return two constants
//   - bounds-inverted: first is greater than count
//   - enum-gap: an integer in [first, count) has no named constant
//   - enum-outside-bounds: a constant of the type lies outside [first, count]
//   - missing-display: the type has no String() string method
//
// A //enumlint:ignore directive in the type's doc or line comment skips the
// type. Known findings can be accepted through a -baseline TOML file.
package enumlint

import (
	"go/ast"
	"go/types"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Diagnostic categories, reported in the "category" field of -json output.
const (
	CategoryBoundsNotConstant = "bounds-not-constant"
	CategoryBoundsInverted    = "bounds-inverted"
	CategoryEnumGap           = "enum-gap"
	CategoryOutsideBounds     = "enum-outside-bounds"
	CategoryMissingDisplay    = "missing-display"
)

const ignoreDirective = "//enumlint:ignore"

var baselinePath string

// Analyzer is the enumlint pass. Use it with singlechecker, multichecker or
// go vet -vettool.
var Analyzer = &analysis.Analyzer{
	Name:     "enumlint",
	Doc:      "checks bounded enumerations for constant bounds, gaps, stray constants and a display hook",
	URL:      "https://github.com/hostkit/hostkit/tools/enumlint",
	Run:      run,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

func init() {
	Analyzer.Flags.StringVar(&baselinePath, "baseline", "",
		"path to baseline TOML file (suppress known findings, report only new ones)")
}

// Categories lists every diagnostic category in report order.
func Categories() []string {
	return []string{
		CategoryBoundsNotConstant,
		CategoryBoundsInverted,
		CategoryEnumGap,
		CategoryOutsideBounds,
		CategoryMissingDisplay,
	}
}

// IsCategory reports whether name is a known diagnostic category.
func IsCategory(name string) bool {
	for _, c := range Categories() {
		if c == name {
			return true
		}
	}
	return false
}

// declIndex maps type objects to the syntax the checks need.
type declIndex struct {
	ignored map[*types.TypeName]bool
	bounds  map[*types.TypeName]*ast.FuncDecl
}

func run(pass *analysis.Pass) (any, error) {
	bl, err := LoadBaseline(baselinePath)
	if err != nil {
		return nil, err
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	idx := indexDecls(pass, insp)
	r := reporter{pass: pass, baseline: bl}

	scope := pass.Pkg.Scope()
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() || idx.ignored[tn] {
			continue
		}
		named, ok := boundedType(tn)
		if !ok {
			continue
		}
		checkEnum(r, named, idx.bounds[tn])
	}
	return nil, nil
}

func indexDecls(pass *analysis.Pass, insp *inspector.Inspector) declIndex {
	idx := declIndex{
		ignored: make(map[*types.TypeName]bool),
		bounds:  make(map[*types.TypeName]*ast.FuncDecl),
	}

	filter := []ast.Node{(*ast.GenDecl)(nil), (*ast.FuncDecl)(nil)}
	insp.Preorder(filter, func(n ast.Node) {
		switch d := n.(type) {
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				tn, ok := pass.TypesInfo.Defs[ts.Name].(*types.TypeName)
				if !ok {
					continue
				}
				docs := []*ast.CommentGroup{ts.Doc, ts.Comment}
				if !d.Lparen.IsValid() {
					docs = append(docs, d.Doc)
				}
				if hasIgnoreDirective(docs...) {
					idx.ignored[tn] = true
				}
			}
		case *ast.FuncDecl:
			if d.Recv == nil || len(d.Recv.List) != 1 || d.Name.Name != "Bounds" {
				return
			}
			named, ok := pass.TypesInfo.TypeOf(d.Recv.List[0].Type).(*types.Named)
			if !ok {
				return
			}
			idx.bounds[named.Obj()] = d
		}
	})
	return idx
}

func hasIgnoreDirective(groups ...*ast.CommentGroup) bool {
	for _, g := range groups {
		if g == nil {
			continue
		}
		for _, c := range g.List {
			if strings.HasPrefix(c.Text, ignoreDirective) {
				return true
			}
		}
	}
	return false
}
