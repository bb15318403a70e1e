package decline

// Acc is the accumulator tree fromOpts builds from an Opts[A] description.
// It mirrors Opts's shape exactly; every parse step returns a new Acc with
// untouched subtrees shared, never mutated in place. The driver (driver.go)
// drives a parse entirely through these four operations, never touching the
// internal node interface directly.
type Acc[A any] struct{ n node }

// FromOpts reinterprets an Opts[A] description as its own zero-state
// accumulator. A leaf with nothing collected yet already satisfies node, so
// this is a type change only, not a tree walk.
func FromOpts[A any](o Opts[A]) Acc[A] { return Acc[A]{n: o.n} }

// OptionKind classifies the outcome of ParseOption: Unmatched | MatchFlag |
// MatchOption | Ambiguous (§4.3's OptionResult).
type OptionKind int

const (
	Unmatched OptionKind = iota
	MatchFlag
	MatchOption
	Ambiguous
)

// OptionOutcome is OptionResult from §4.3, typed at the Acc[A] boundary:
// Next carries a MatchFlag's successor accumulator, WithValue builds a
// MatchOption's successor from the value token.
type OptionOutcome[A any] struct {
	Kind      OptionKind
	Next      Acc[A]
	WithValue func(value string) Acc[A]
}

// ParseOption tries to match a probed option name against a, returning the
// new accumulator to continue with (never mutating a itself).
func (a Acc[A]) ParseOption(p probe) OptionOutcome[A] {
	res := a.n.parseOption(p)
	switch res.kind {
	case optMatchFlag:
		return OptionOutcome[A]{Kind: MatchFlag, Next: Acc[A]{n: res.next}}
	case optMatchOption:
		withValue := res.withValue
		return OptionOutcome[A]{Kind: MatchOption, WithValue: func(v string) Acc[A] {
			return Acc[A]{n: withValue(v)}
		}}
	case optAmbiguous:
		return OptionOutcome[A]{Kind: Ambiguous}
	default:
		return OptionOutcome[A]{Kind: Unmatched}
	}
}

// ParseArg offers a positional token to a, returning the new accumulator and
// whether anything in the tree consumed it.
func (a Acc[A]) ParseArg(tok string) (Acc[A], bool) {
	n2, ok := a.n.parseArg(tok)
	if !ok {
		return Acc[A]{}, false
	}
	return Acc[A]{n: n2}, true
}

// ParseSub offers a bare token as a subcommand name, returning the
// subcommand's own accumulator (which now owns every remaining token) and
// whether anything in the tree recognized the name.
func (a Acc[A]) ParseSub(name string) (Acc[A], bool) {
	n2, ok := a.n.parseSub(name)
	if !ok {
		return Acc[A]{}, false
	}
	return Acc[A]{n: n2}, true
}

// Result forces the accumulator's current Result, unboxing it back to A.
// Forcing never consumes a token; it is a pure function of the tree.
func (a Acc[A]) Result() Result[A] { return unboxResult[A](a.n.result()) }
