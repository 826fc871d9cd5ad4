package gen

import (
	"errors"
	"fmt"
	"go/importer"
	"go/token"
	"go/types"
	"strconv"
	"strings"
)

// skipList names functions that String implements by hand or that are
// deprecated.
var skipList = map[string]string{
	"Clone":   "hand-written",
	"Compare": "hand-written",
	"Title":   "deprecated",
}

// mapping rewrites one native type into its String[Tag] spelling. arg
// converts a wrapper argument named %s to the native type and wrap converts a
// native expression %s to the wrapper type. An empty arg means the type may
// only appear as a result.
type mapping struct {
	typ     string
	arg     string
	wrap    string
	imports []string
}

// translations is keyed by types.TypeString with package-name qualifiers.
var translations = map[string]mapping{
	"string":           {typ: "String[Tag]", arg: "%s.value", wrap: "String[Tag]{value: %s}"},
	"[]string":         {typ: "[]String[Tag]", wrap: "wrapStrings[Tag](%s)"},
	"iter.Seq[string]": {typ: "iter.Seq[String[Tag]]", wrap: "wrapSeq[Tag](%s)", imports: []string{"iter"}},
}

// Param is one forwarded parameter.
type Param struct {
	Name string
	Type string
	Arg  string
}

// Result is one forwarded result.
type Result struct {
	Type string
	Wrap string
}

// Member describes one function forwarded as a method on String. The first
// parameter of the native function becomes the receiver.
type Member struct {
	Source   string
	Name     string
	Params   []Param
	Results  []Result
	Variadic bool

	imports []string
}

// ParamList renders the parameter list without parentheses.
func (m Member) ParamList() string {
	parts := make([]string, len(m.Params))
	for i, p := range m.Params {
		typ := p.Type
		if m.Variadic && i == len(m.Params)-1 {
			typ = "..." + strings.TrimPrefix(typ, "[]")
		}
		parts[i] = p.Name + " " + typ
	}
	return strings.Join(parts, ", ")
}

// ResultList renders the result list, parenthesised when there is more than
// one result.
func (m Member) ResultList() string {
	spelled := make([]string, len(m.Results))
	for i, r := range m.Results {
		spelled[i] = r.Type
	}
	if len(spelled) == 1 {
		return spelled[0]
	}
	return "(" + strings.Join(spelled, ", ") + ")"
}

// Single reports whether the member has exactly one result.
func (m Member) Single() bool { return len(m.Results) == 1 }

// Call renders the call of the native function.
func (m Member) Call() string {
	args := []string{"v.value"}
	for _, p := range m.Params {
		args = append(args, p.Arg)
	}
	return m.Source + "." + m.Name + "(" + strings.Join(args, ", ") + ")"
}

// Temps renders the names the results are assigned to when there is more
// than one.
func (m Member) Temps() string {
	names := make([]string, len(m.Results))
	for i := range m.Results {
		names[i] = "r" + strconv.Itoa(i)
	}
	return strings.Join(names, ", ")
}

// Return renders the returned expressions.
func (m Member) Return() string {
	if m.Single() {
		return fmt.Sprintf(m.Results[0].Wrap, m.Call())
	}
	exprs := make([]string, len(m.Results))
	for i, r := range m.Results {
		exprs[i] = fmt.Sprintf(r.Wrap, "r"+strconv.Itoa(i))
	}
	return strings.Join(exprs, ", ")
}

type skip struct {
	name   string
	reason string
}

func loadSource(path string) (*types.Package, error) {
	pkg, err := importer.ForCompiler(token.NewFileSet(), "source", nil).Import(path)
	if err != nil {
		return nil, fmt.Errorf("import %s: %w", path, err)
	}
	return pkg, nil
}

// forwardable walks the exported functions of pkg in name order and returns
// those that can be forwarded onto String, plus the reason each other
// function was left out.
func forwardable(pkg *types.Package) ([]Member, []skip) {
	var (
		members []Member
		skipped []skip
	)
	scope := pkg.Scope()
	for _, name := range scope.Names() {
		fn, ok := scope.Lookup(name).(*types.Func)
		if !ok || !fn.Exported() {
			continue
		}
		if reason, ok := skipList[name]; ok {
			skipped = append(skipped, skip{name: name, reason: reason})
			continue
		}
		m, err := newMember(pkg.Name(), fn)
		if err != nil {
			skipped = append(skipped, skip{name: name, reason: err.Error()})
			continue
		}
		members = append(members, m)
	}
	return members, skipped
}

func newMember(source string, fn *types.Func) (Member, error) {
	sig, ok := fn.Type().(*types.Signature)
	if !ok {
		return Member{}, errors.New("not a function")
	}
	if sig.TypeParams().Len() > 0 {
		return Member{}, errors.New("generic")
	}
	params := sig.Params()
	if params.Len() == 0 || !types.Identical(params.At(0).Type(), types.Typ[types.String]) {
		return Member{}, errors.New("first parameter is not a string")
	}
	if sig.Results().Len() == 0 {
		return Member{}, errors.New("no results")
	}

	qualifier := func(p *types.Package) string { return p.Name() }
	m := Member{Source: source, Name: fn.Name(), Variadic: sig.Variadic()}

	for i := 1; i < params.Len(); i++ {
		p := params.At(i)
		t := p.Type()
		if m.Variadic && i == params.Len()-1 {
			// ...T is only forwarded when T passes through unchanged.
			slice, _ := t.(*types.Slice)
			if slice == nil || !plain(slice.Elem()) {
				return Member{}, fmt.Errorf("variadic %s", types.TypeString(t, qualifier))
			}
		}
		mp, ok := translate(t, qualifier)
		if !ok || mp.arg == "" {
			return Member{}, fmt.Errorf("parameter type %s", types.TypeString(t, qualifier))
		}

		name := p.Name()
		if name == "" || name == "_" || name == "v" {
			name = "arg" + strconv.Itoa(i)
		}
		arg := fmt.Sprintf(mp.arg, name)
		if m.Variadic && i == params.Len()-1 {
			arg += "..."
		}
		m.Params = append(m.Params, Param{Name: name, Type: mp.typ, Arg: arg})
		m.imports = append(m.imports, mp.imports...)
	}

	results := sig.Results()
	for i := range results.Len() {
		t := results.At(i).Type()
		mp, ok := translate(t, qualifier)
		if !ok {
			return Member{}, fmt.Errorf("result type %s", types.TypeString(t, qualifier))
		}
		m.Results = append(m.Results, Result{Type: mp.typ, Wrap: mp.wrap})
		m.imports = append(m.imports, mp.imports...)
	}

	return m, nil
}

func translate(t types.Type, qualifier types.Qualifier) (mapping, bool) {
	spelled := types.TypeString(t, qualifier)
	if mp, ok := translations[spelled]; ok {
		return mp, true
	}
	if plain(t) {
		return mapping{typ: spelled, arg: "%s", wrap: "%s"}, true
	}
	return mapping{}, false
}

// plain reports whether t passes through unchanged: it is built only from
// non-string basic types, slices and function signatures.
func plain(t types.Type) bool {
	switch t := t.(type) {
	case *types.Basic:
		return t.Info()&types.IsString == 0 && t.Kind() != types.UnsafePointer
	case *types.Slice:
		return plain(t.Elem())
	case *types.Signature:
		if t.TypeParams().Len() > 0 {
			return false
		}
		for _, tuple := range []*types.Tuple{t.Params(), t.Results()} {
			for i := range tuple.Len() {
				if !plain(tuple.At(i).Type()) {
					return false
				}
			}
		}
		return true
	default:
		return false
	}
}
