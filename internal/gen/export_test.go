package gen

import "go/types"

var LoadSource = loadSource

// Forwardable returns the members forwarded from pkg and the reason keyed by
// name for every function left out.
func Forwardable(pkg *types.Package) ([]Member, map[string]string) {
	members, skipped := forwardable(pkg)
	reasons := make(map[string]string, len(skipped))
	for _, s := range skipped {
		reasons[s.name] = s.reason
	}
	return members, reasons
}

func MemberImports(m Member) []string { return m.imports }
