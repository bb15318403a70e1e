package decline

import (
	"fmt"

	"github.com/alonsodomin/decline/internal/fuzzy"
)

// LintWarning flags two declared option names that are suspiciously close
// to each other — not a conflict (the driver already reports that as
// Ambiguous at parse time), but a construction-time hint that one of them
// is probably a typo.
type LintWarning struct {
	A, B     string
	Distance int
}

func (w LintWarning) String() string {
	return fmt.Sprintf("option names %q and %q differ by only %d character(s)", w.A, w.B, w.Distance)
}

// Lint walks o's declared option names and reports pairs within edit
// distance 1 of each other. It never inspects argument metavars or
// subcommand names; those aren't typed on the command line character by
// character the way option names are.
func Lint[A any](o Opts[A]) []LintWarning {
	names := collectNames(o.n)
	matcher := fuzzy.NewMatcher(1)

	var warnings []LintWarning
	for i, name := range names {
		for _, m := range matcher.FindMatches(name, names[i+1:]) {
			warnings = append(warnings, LintWarning{A: name, B: m.Value, Distance: m.Distance})
		}
	}
	return warnings
}

func collectNames(n node) []string {
	switch v := n.(type) {
	case *regularLeaf:
		return namesToStrings(v.names)
	case *flagLeaf:
		return namesToStrings(v.names)
	case *argumentLeaf:
		return nil
	case pureNode:
		return nil
	case *appNode:
		return append(collectNames(v.left), collectNames(v.right)...)
	case *orElseNode:
		return append(collectNames(v.left), collectNames(v.right)...)
	case *validateNode:
		return collectNames(v.inner)
	case *subcommandNode:
		return collectNames(v.action)
	default:
		return nil
	}
}

func namesToStrings(names []Name) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = n.String()
	}
	return out
}
