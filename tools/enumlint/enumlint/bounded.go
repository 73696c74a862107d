// SPDX-License-Identifier: MPL-2.0

package enumlint

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/types"
	"strconv"
)

// maxGapSpan caps the range walked by the gap check. Wider ranges are
// bitmask-like types where holes are expected.
const maxGapSpan = 1 << 12

// boundedType reports whether tn is a bounded enumeration: a non-generic
// named integer type whose value method set has Bounds() (T, T).
func boundedType(tn *types.TypeName) (*types.Named, bool) {
	named, ok := tn.Type().(*types.Named)
	if !ok || named.TypeParams().Len() > 0 {
		return nil, false
	}
	basic, ok := named.Underlying().(*types.Basic)
	if !ok || basic.Info()&types.IsInteger == 0 {
		return nil, false
	}

	sel := types.NewMethodSet(named).Lookup(tn.Pkg(), "Bounds")
	if sel == nil {
		return nil, false
	}
	sig, ok := sel.Type().(*types.Signature)
	if !ok || sig.Params().Len() != 0 || sig.Results().Len() != 2 {
		return nil, false
	}
	for i := range 2 {
		if !types.Identical(sig.Results().At(i).Type(), named) {
			return nil, false
		}
	}
	return named, true
}

func checkEnum(r reporter, named *types.Named, bounds *ast.FuncDecl) {
	tn := named.Obj()
	typeName := qualifiedName(tn)

	if !hasDisplay(named) {
		r.report(tn.Pos(), CategoryMissingDisplay,
			StableFindingID(CategoryMissingDisplay, typeName),
			fmt.Sprintf("type %s has no String() string method", typeName))
	}

	first, count, ok := boundsValues(r.pass.TypesInfo, bounds)
	if !ok {
		pos := tn.Pos()
		if bounds != nil {
			pos = bounds.Name.Pos()
		}
		r.report(pos, CategoryBoundsNotConstant,
			StableFindingID(CategoryBoundsNotConstant, typeName),
			fmt.Sprintf("type %s: Bounds must return constants of the enumeration type", typeName))
		return
	}
	if first > count {
		r.report(bounds.Name.Pos(), CategoryBoundsInverted,
			StableFindingID(CategoryBoundsInverted, typeName),
			fmt.Sprintf("type %s: Bounds first %d is greater than count %d", typeName, first, count))
		return
	}

	consts := enumConstants(named)

	named64 := make(map[int64]bool, len(consts))
	for _, c := range consts {
		named64[c.value] = true
		if c.value < first || c.value > count {
			r.report(c.obj.Pos(), CategoryOutsideBounds,
				StableFindingID(CategoryOutsideBounds, typeName, c.obj.Name()),
				fmt.Sprintf("constant %s = %d of type %s lies outside [%d, %d]",
					qualifiedName(c.obj), c.value, typeName, first, count))
		}
	}

	if count-first > maxGapSpan {
		return
	}
	for v := first; v < count; v++ {
		if named64[v] {
			continue
		}
		r.report(tn.Pos(), CategoryEnumGap,
			StableFindingID(CategoryEnumGap, typeName, strconv.FormatInt(v, 10)),
			fmt.Sprintf("type %s: value %d in [%d, %d) has no named constant", typeName, v, first, count))
	}
}

// boundsValues extracts the constant results of a Bounds body of the form
// `return first, count`.
func boundsValues(info *types.Info, decl *ast.FuncDecl) (first, count int64, ok bool) {
	if decl == nil || decl.Body == nil || len(decl.Body.List) != 1 {
		return 0, 0, false
	}
	ret, isRet := decl.Body.List[0].(*ast.ReturnStmt)
	if !isRet || len(ret.Results) != 2 {
		return 0, 0, false
	}

	var vals [2]int64
	for i, expr := range ret.Results {
		tv, found := info.Types[expr]
		if !found || tv.Value == nil {
			return 0, 0, false
		}
		v, exact := int64Value(tv.Value)
		if !exact {
			return 0, 0, false
		}
		vals[i] = v
	}
	return vals[0], vals[1], true
}

type enumConst struct {
	obj   *types.Const
	value int64
}

// enumConstants returns the package-level constants of type named.
func enumConstants(named *types.Named) []enumConst {
	scope := named.Obj().Pkg().Scope()
	var out []enumConst
	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok || !types.Identical(c.Type(), named) {
			continue
		}
		v, exact := int64Value(c.Val())
		if !exact {
			continue
		}
		out = append(out, enumConst{obj: c, value: v})
	}
	return out
}

func int64Value(v constant.Value) (int64, bool) {
	v = constant.ToInt(v)
	if v.Kind() != constant.Int {
		return 0, false
	}
	return constant.Int64Val(v)
}

// hasDisplay reports whether named has a value method String() string.
func hasDisplay(named *types.Named) bool {
	sel := types.NewMethodSet(named).Lookup(named.Obj().Pkg(), "String")
	if sel == nil {
		return false
	}
	sig, ok := sel.Type().(*types.Signature)
	if !ok || sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return false
	}
	res, ok := sig.Results().At(0).Type().(*types.Basic)
	return ok && res.Kind() == types.String
}

func qualifiedName(obj types.Object) string {
	return obj.Pkg().Name() + "." + obj.Name()
}
