package decline

import "strings"

// Requirement describes what a user could supply to satisfy an unmet
// branch of a parse: some flags (each already rendered as a name or a
// "(a or b)" group), some subcommand names, and whether a bare positional
// argument would also do.
type Requirement struct {
	Flags    []string
	Commands []string
	Argument bool
}

// mergeRequirement combines two requirements componentwise: flags and
// commands concatenate (order preserved), argument ORs. Used only by
// OrElseResult and its internal twin orElseAny, which fold two alternative branches' first requirement
// into the single composite one a user sees.
func mergeRequirement(a, b Requirement) Requirement {
	return Requirement{
		Flags:    append(append([]string{}, a.Flags...), b.Flags...),
		Commands: append(append([]string{}, a.Commands...), b.Commands...),
		Argument: a.Argument || b.Argument,
	}
}

// render turns a single Requirement into the literal message §4.4 specifies:
// "Missing expected flag --x, or command (a or b), or argument"
func (r Requirement) render() string {
	var pieces []string
	for _, f := range r.Flags {
		pieces = append(pieces, "flag "+f)
	}
	if len(r.Commands) > 0 {
		pieces = append(pieces, "command ("+strings.Join(r.Commands, " or ")+")")
	}
	if r.Argument {
		pieces = append(pieces, "argument")
	}
	return "Missing expected " + strings.Join(pieces, ", or ")
}

func renderRequirements(reqs []Requirement) []string {
	out := make([]string, len(reqs))
	for i, r := range reqs {
		out[i] = r.render()
	}
	return out
}

type resultTag int

const (
	tagReturn resultTag = iota
	tagMissing
	tagFail
)

// Result is the parser's three-valued outcome: a parsed value, one or more
// unmet requirements, or one or more hard-error messages.
type Result[A any] struct {
	tag      resultTag
	value    A
	missing  []Requirement
	messages []string
}

// Success builds a Return(a).
func Success[A any](a A) Result[A] {
	return Result[A]{tag: tagReturn, value: a}
}

// MissingResult builds a Missing(reqs). It is the general form of
// MissingFlag/MissingCommand/MissingArgument: callers outside this package
// reach for those three instead.
func MissingResult[A any](reqs ...Requirement) Result[A] {
	return Result[A]{tag: tagMissing, missing: reqs}
}

// Fail builds a Fail(msgs).
func Fail[A any](msgs ...string) Result[A] {
	return Result[A]{tag: tagFail, messages: msgs}
}

// MissingFlag builds the Missing singleton for an unmet Regular/Flag leaf,
// naming the leaf's first declared name.
func MissingFlag[A any](names []Name) Result[A] {
	return MissingResult[A](Requirement{Flags: []string{names[0].String()}})
}

// MissingCommand builds the Missing singleton for an unconsumed Subcommand.
func MissingCommand[A any](name string) Result[A] {
	return MissingResult[A](Requirement{Commands: []string{name}})
}

// MissingArgument builds the Missing singleton for an unfilled Argument leaf.
func MissingArgument[A any]() Result[A] {
	return MissingResult[A](Requirement{Argument: true})
}

// Empty is the alternative's identity element: Missing with no requirement.
func Empty[A any]() Result[A] {
	return MissingResult[A]()
}

// IsReturn, IsMissing and IsFail let callers and tests inspect a Result's
// shape without reaching into its private fields.
func (r Result[A]) IsReturn() bool  { return r.tag == tagReturn }
func (r Result[A]) IsMissing() bool { return r.tag == tagMissing }
func (r Result[A]) IsFail() bool    { return r.tag == tagFail }

// Value returns the Return value and true, or the zero value and false.
func (r Result[A]) Value() (A, bool) {
	return r.value, r.tag == tagReturn
}

// Messages returns the Fail messages, or nil if r is not a Fail.
func (r Result[A]) Messages() []string {
	if r.tag != tagFail {
		return nil
	}
	return r.messages
}

// Requirements returns the Missing requirements, or nil if r is not Missing.
func (r Result[A]) Requirements() []Requirement {
	if r.tag != tagMissing {
		return nil
	}
	return r.missing
}

func boxResult[A any](r Result[A]) Result[any] {
	switch r.tag {
	case tagReturn:
		return Success[any](r.value)
	case tagMissing:
		return MissingResult[any](r.missing...)
	default:
		return Fail[any](r.messages...)
	}
}

func unboxResult[A any](r Result[any]) Result[A] {
	switch r.tag {
	case tagReturn:
		return Success[A](r.value.(A))
	case tagMissing:
		return MissingResult[A](r.missing...)
	default:
		return Fail[A](r.messages...)
	}
}

// apAny implements the applicative product's merge table (§4.1) on the
// boxed any-valued Results the accumulator tree works with internally.
// combine applies the erased function value to the erased argument value.
func apAny(ff, fa Result[any], combine func(f, a any) any) Result[any] {
	switch ff.tag {
	case tagReturn:
		switch fa.tag {
		case tagReturn:
			return Success[any](combine(ff.value, fa.value))
		case tagMissing:
			return MissingResult[any](fa.missing...)
		default:
			return Fail[any](fa.messages...)
		}
	case tagMissing:
		switch fa.tag {
		case tagReturn:
			return MissingResult[any](ff.missing...)
		case tagMissing:
			return MissingResult[any](append(append([]Requirement{}, ff.missing...), fa.missing...)...)
		default:
			return Fail[any](append(renderRequirements(ff.missing), fa.messages...)...)
		}
	default: // ff is Fail
		switch fa.tag {
		case tagReturn:
			return Fail[any](ff.messages...)
		case tagMissing:
			return Fail[any](append(append([]string{}, ff.messages...), renderRequirements(fa.missing)...)...)
		default:
			return Fail[any](append(ff.messages, fa.messages...)...)
		}
	}
}

// Ap is the applicative product ap(ff, fa) from §4.1, typed at the
// boundary: X is the argument type, A is ff's result type once applied.
func Ap[X, A any](ff Result[func(X) A], fa Result[X]) Result[A] {
	boxed := apAny(boxResult(ff), boxResult(fa), func(f, a any) any {
		return f.(func(X) A)(a.(X))
	})
	return unboxResult[A](boxed)
}

func andThenAny(r Result[any], f func(any) Result[any]) Result[any] {
	if r.tag == tagReturn {
		return f(r.value)
	}
	return r
}

// AndThen sequences a Result through f when r is a Return, propagating
// Missing/Fail unchanged otherwise.
func AndThen[A, B any](r Result[A], f func(A) Result[B]) Result[B] {
	boxed := andThenAny(boxResult(r), func(v any) Result[any] {
		return boxResult(f(v.(A)))
	})
	return unboxResult[B](boxed)
}

// OrElseResult is the alternative choice orElse(x, y) from §4.1: a branch
// that matched anything wins; if neither matched, the two branches'
// requirements merge into one composite Requirement.
func OrElseResult[A any](x, y Result[A]) Result[A] {
	if x.tag != tagMissing {
		return x
	}
	if y.tag != tagMissing {
		return y
	}
	// Empty (missing with no requirement) is orElse's identity: skip the
	// merge and return the other side unchanged rather than indexing a
	// requirement that doesn't exist.
	if len(x.missing) == 0 {
		return y
	}
	if len(y.missing) == 0 {
		return x
	}
	merged := mergeRequirement(x.missing[0], y.missing[0])
	return MissingResult[A](merged)
}
