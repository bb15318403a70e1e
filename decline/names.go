package decline

import (
	"strings"

	"github.com/alonsodomin/decline/internal/intern"
)

// Name is an option name: either a long name, matched as --name, or a
// short name, matched as a character inside a -abc cluster. Exactly one
// of the two is set.
type Name struct {
	long  string
	short rune
}

// Long builds a long option name.
func Long(name string) Name {
	if name == "" {
		panic("decline: long option name must not be empty")
	}
	return Name{long: intern.Intern(name)}
}

// Short builds a short option name from a single character.
func Short(r rune) Name {
	return Name{short: r}
}

// IsLong reports whether n is a long name.
func (n Name) IsLong() bool { return n.long != "" }

// String renders n the way it appears on the command line: --name or -n.
func (n Name) String() string {
	if n.IsLong() {
		return "--" + n.long
	}
	return "-" + string(n.short)
}

// probe is the name the scanner is currently trying to match against a
// leaf's declared names — a long name or a short character, never both.
type probe struct {
	long    string
	short   rune
	isLong  bool
}

func longProbe(name string) probe  { return probe{long: name, isLong: true} }
func shortProbe(r rune) probe      { return probe{short: r} }

func matchesAny(names []Name, p probe) bool {
	for _, n := range names {
		if p.isLong {
			if n.IsLong() && n.long == p.long {
				return true
			}
		} else if !n.IsLong() && n.short == p.short {
			return true
		}
	}
	return false
}

// renderNames renders a list of names as one group: a single name renders
// bare, multiple names render as "(a or b)". Leaf requirements do not use
// it; they name only the leaf's first declared name.
func renderNames(names []Name) string {
	if len(names) == 1 {
		return names[0].String()
	}
	rendered := make([]string, len(names))
	for i, n := range names {
		rendered[i] = n.String()
	}
	return "(" + strings.Join(rendered, " or ") + ")"
}
