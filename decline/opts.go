package decline

import "math"

// RegularOpt describes a value-carrying option: --name v, --name=v, -n v or
// -nv. The core engine never coerces the collected string; type-coerced
// readers live in the front-end combinator layer (out of scope here).
type RegularOpt struct {
	Names   []Name
	Metavar string
	Help    string
}

// Regular builds a RegularOpt from one or more names.
func Regular(metavar, help string, names ...Name) RegularOpt {
	if len(names) == 0 {
		panic("decline: Regular requires at least one name")
	}
	return RegularOpt{Names: names, Metavar: metavar, Help: help}
}

// FlagOpt describes a presence-only option: --name or -n, no value.
type FlagOpt struct {
	Names []Name
	Help  string
}

// Flag builds a FlagOpt from one or more names.
func Flag(help string, names ...Name) FlagOpt {
	if len(names) == 0 {
		panic("decline: Flag requires at least one name")
	}
	return FlagOpt{Names: names, Help: help}
}

// ArgumentOpt describes a positional argument.
type ArgumentOpt struct {
	Metavar string
}

// Argument builds an ArgumentOpt.
func Argument(metavar string) ArgumentOpt { return ArgumentOpt{Metavar: metavar} }

// Opts is the applicative/alternative tree a caller builds to describe a
// command's options. It is a pure, immutable value: constructing one never
// consumes input. Internally it shares its representation with Acc's
// zero-state node (§9's "existentially quantify interior types, tagged
// variants with boxed children" strategy), so FromOpts is a zero-cost
// reinterpretation rather than a tree walk.
type Opts[A any] struct{ n node }

// PureOpts builds Pure(a): always succeeds with a, matches nothing.
func PureOpts[A any](a A) Opts[A] {
	return Opts[A]{n: pureNode{r: Success[any](a)}}
}

// App builds the independent product App(f, a): both sides must parse,
// their results combined by applying the left's function to the right's
// value.
func App[X, A any](f Opts[func(X) A], a Opts[X]) Opts[A] {
	return Opts[A]{n: &appNode{
		left:  f.n,
		right: a.n,
		combine: func(fn, av any) any {
			return fn.(func(X) A)(av.(X))
		},
	}}
}

// OrElseOpts builds the alternative OrElse(l, r): the first branch that
// matches anything wins; if neither matches, their requirements merge.
func OrElseOpts[A any](l, r Opts[A]) Opts[A] {
	return Opts[A]{n: &orElseNode{left: l.n, right: r.n}}
}

// ValidateOpts builds Validate(a, f): a's parsed value passes through f at
// finalization, after all tokens are consumed.
func ValidateOpts[A, B any](a Opts[A], f func(A) Result[B]) Opts[B] {
	return Opts[B]{n: &validateNode{
		inner: a.n,
		f: func(v any) Result[any] {
			return boxResult(f(v.(A)))
		},
	}}
}

// SubcommandOpts builds Subcommand(name, help, opts): a bare token matching
// name hands off every remaining token to opts.
func SubcommandOpts[A any](name, help string, opts Opts[A]) Opts[A] {
	return Opts[A]{n: &subcommandNode{name: name, help: help, action: opts.n}}
}

// SingleRegular expects exactly one occurrence of o, returning the last
// value supplied if it was given more than once.
func SingleRegular(o RegularOpt) Opts[string] {
	leaf := &regularLeaf{names: o.Names}
	return Opts[string]{n: &validateNode{inner: leaf, f: func(v any) Result[any] {
		values := v.([]string)
		return Success[any](values[len(values)-1])
	}}}
}

// RepeatedRegular expects one or more occurrences of o, returned as a
// non-empty list in input order.
func RepeatedRegular(o RegularOpt) Opts[[]string] {
	return Opts[[]string]{n: &regularLeaf{names: o.Names}}
}

// SingleFlag expects the flag to be present; the result is true whenever the
// flag was present at all, regardless of how many times (§8).
func SingleFlag(o FlagOpt) Opts[bool] {
	leaf := &flagLeaf{names: o.Names}
	return Opts[bool]{n: &validateNode{inner: leaf, f: func(any) Result[any] {
		return Success[any](true)
	}}}
}

// RepeatedFlag returns the number of times the flag was supplied.
func RepeatedFlag(o FlagOpt) Opts[int] {
	return Opts[int]{n: &flagLeaf{names: o.Names}}
}

// SingleArgument expects exactly one positional token, returning the first
// one supplied and rejecting further positionals at that slot (§9).
func SingleArgument(o ArgumentOpt) Opts[string] {
	leaf := &argumentLeaf{metavar: o.Metavar, limit: 1}
	return Opts[string]{n: &validateNode{inner: leaf, f: func(v any) Result[any] {
		return Success[any](v.([]string)[0])
	}}}
}

// RepeatedArgument expects one or more positional tokens at this slot,
// returned as a non-empty list in input order.
func RepeatedArgument(o ArgumentOpt) Opts[[]string] {
	return Opts[[]string]{n: &argumentLeaf{metavar: o.Metavar, limit: math.MaxInt}}
}
