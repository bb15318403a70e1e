package decline

import "strings"

// Command pairs a name and header with the Opts description it parses.
// It is the only value the front-end combinator layer and the help
// renderer need to hand to this engine.
type Command[A any] struct {
	Name   string
	Header string
	Opts   Opts[A]
}

// NewCommand builds a Command.
func NewCommand[A any](name, header string, opts Opts[A]) Command[A] {
	return Command[A]{Name: name, Header: header, Opts: opts}
}

// Help is produced on any parse failure: a Missing result renders each
// requirement's message, a Fail result carries its messages verbatim.
// Rendering the Help text itself (usage lines, flag tables) is left to an
// external formatter; this engine only supplies the command and the
// ordered error strings.
type Help struct {
	Command string
	Header  string
	Errors  []string
}

func (h *Help) Error() string {
	return h.Command + ": " + strings.Join(h.Errors, "; ")
}

// Parse walks args against cmd's Opts description, returning the parsed
// value or a Help describing what went wrong. It never panics and always
// terminates: cost is O(len(args) * depth(Opts)).
func Parse[A any](cmd Command[A], args []string) (A, *Help) {
	final, errMsg := drive(FromOpts(cmd.Opts), args)
	if errMsg != nil {
		return *new(A), &Help{Command: cmd.Name, Header: cmd.Header, Errors: []string{*errMsg}}
	}

	result := final.Result()
	switch {
	case result.IsReturn():
		v, _ := result.Value()
		return v, nil
	case result.IsFail():
		return *new(A), &Help{Command: cmd.Name, Header: cmd.Header, Errors: result.Messages()}
	default:
		return *new(A), &Help{Command: cmd.Name, Header: cmd.Header, Errors: renderRequirements(result.Requirements())}
	}
}

// drive performs the left-to-right token scan of §4.4 entirely through
// acc's four operations. A hard failure returns immediately with a single
// message; the accumulator is never re-entered after an unexpected token,
// per §7's policy. Missing requirements never short-circuit here — they are
// discovered only once, at finalization, by Parse.
func drive[A any](acc Acc[A], args []string) (Acc[A], *string) {
	positionalOnly := false
	i := 0
	for i < len(args) {
		tok := args[i]

		if !positionalOnly && tok == "--" {
			positionalOnly = true
			i++
			continue
		}

		if !positionalOnly && strings.HasPrefix(tok, "--") && len(tok) > 2 {
			next, errMsg := applyLong(acc, tok[2:], args, &i)
			if errMsg != nil {
				return acc, errMsg
			}
			acc = next
			continue
		}

		if !positionalOnly && strings.HasPrefix(tok, "-") && tok != "-" && tok != "--" {
			next, consumedNext, errMsg := applyShortCluster(acc, tok[1:], args, i)
			if errMsg != nil {
				return acc, errMsg
			}
			acc = next
			i++
			if consumedNext {
				i++
			}
			continue
		}

		if !positionalOnly {
			if sub, ok := acc.ParseSub(tok); ok {
				acc = sub
				i++
				continue
			}
		}
		if arg, ok := acc.ParseArg(tok); ok {
			acc = arg
			i++
			continue
		}
		return acc, errPtr("Unexpected argument: " + tok)
	}
	return acc, nil
}

// applyLong handles --name, --name=value and advances *i past whatever
// tokens the match consumed (one or two).
func applyLong[A any](acc Acc[A], rest string, args []string, i *int) (Acc[A], *string) {
	name, inline, hasInline := splitLong(rest)
	res := acc.ParseOption(longProbe(name))

	switch res.Kind {
	case Unmatched:
		return acc, errPtr("Unexpected option: --" + name)
	case Ambiguous:
		return acc, errPtr("Ambiguous option: --" + name)
	case MatchFlag:
		if hasInline {
			return acc, errPtr("Got unexpected value for flag: --" + name)
		}
		*i++
		return res.Next, nil
	case MatchOption:
		if hasInline {
			*i++
			return res.WithValue(inline), nil
		}
		if *i+1 >= len(args) {
			return acc, errPtr("Missing value for option: --" + name)
		}
		value := args[*i+1]
		*i += 2
		return res.WithValue(value), nil
	default:
		return acc, errPtr("Unexpected option: --" + name)
	}
}

// applyShortCluster processes -XYZ character by character per §4.4's
// short-cluster rule. It returns whether it additionally consumed args[i+1]
// as a MatchOption's value.
func applyShortCluster[A any](acc Acc[A], cluster string, args []string, i int) (Acc[A], bool, *string) {
	for {
		if cluster == "" {
			return acc, false, nil
		}
		head := rune(cluster[0])
		tail := cluster[1:]
		res := acc.ParseOption(shortProbe(head))

		switch res.Kind {
		case Unmatched:
			return acc, false, errPtr("Unexpected option: -" + cluster)
		case Ambiguous:
			return acc, false, errPtr("Ambiguous option: -" + cluster)
		case MatchFlag:
			acc = res.Next
			cluster = tail
		case MatchOption:
			if tail != "" {
				return res.WithValue(tail), false, nil
			}
			if i+1 >= len(args) {
				return acc, false, errPtr("Missing value for option: -" + string(head))
			}
			return res.WithValue(args[i+1]), true, nil
		default:
			return acc, false, errPtr("Unexpected option: -" + cluster)
		}
	}
}

func splitLong(s string) (name, value string, hasValue bool) {
	if idx := strings.IndexByte(s, '='); idx >= 0 {
		return s[:idx], s[idx+1:], true
	}
	return s, "", false
}

func errPtr(s string) *string { return &s }
