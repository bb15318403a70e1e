//nolint:testpackage // using package name 'decline' to access unexported fields for testing
package decline

import "testing"

// pair is a test-only helper for combining two Opts via App; the
// front-end combinator layer that would normally provide tupling is out
// of scope for this engine.
type pair struct {
	First  any
	Second any
}

func mapOpts[A, B any](o Opts[A], f func(A) B) Opts[B] {
	return ValidateOpts(o, func(a A) Result[B] { return Success(f(a)) })
}

func tupled[A, B any](a Opts[A], b Opts[B]) Opts[pair] {
	withFirst := mapOpts(a, func(av A) func(B) pair {
		return func(bv B) pair { return pair{First: av, Second: bv} }
	})
	return App(withFirst, b)
}

func fileOpt() Opts[string] {
	return SingleRegular(Regular("FILE", "input file", Long("file"), Short('f')))
}

func allFlag() Opts[bool] {
	return SingleFlag(Flag("process everything", Long("all"), Short('a')))
}

func pathArg() Opts[string] {
	return SingleArgument(Argument("path"))
}

func mustParse[A any](t *testing.T, o Opts[A], args []string) A {
	t.Helper()
	v, help := Parse(NewCommand("cmd", "", o), args)
	if help != nil {
		t.Fatalf("Parse(%v) returned unexpected Help: %v", args, help.Errors)
	}
	return v
}

func mustFail[A any](t *testing.T, o Opts[A], args []string) *Help {
	t.Helper()
	_, help := Parse(NewCommand("cmd", "", o), args)
	if help == nil {
		t.Fatalf("Parse(%v) unexpectedly succeeded", args)
	}
	return help
}

func TestScenarioLongWithEquals(t *testing.T) {
	got := mustParse(t, fileOpt(), []string{"--file=foo.txt"})
	if got != "foo.txt" {
		t.Errorf("got %q, want foo.txt", got)
	}
}

func TestScenarioShortWithNextToken(t *testing.T) {
	got := mustParse(t, fileOpt(), []string{"-f", "foo.txt"})
	if got != "foo.txt" {
		t.Errorf("got %q, want foo.txt", got)
	}
}

func TestScenarioShortWithAttachedValue(t *testing.T) {
	got := mustParse(t, fileOpt(), []string{"-ffoo.txt"})
	if got != "foo.txt" {
		t.Errorf("got %q, want foo.txt", got)
	}
}

func TestScenarioShortClusterThenValue(t *testing.T) {
	got := mustParse(t, tupled(allFlag(), fileOpt()), []string{"-af", "foo.txt"})
	if got.First != true || got.Second != "foo.txt" {
		t.Errorf("got %+v, want {true foo.txt}", got)
	}
}

func TestScenarioFlagRejectsInlineValue(t *testing.T) {
	help := mustFail(t, allFlag(), []string{"--all=true"})
	want := "Got unexpected value for flag: --all"
	if len(help.Errors) != 1 || help.Errors[0] != want {
		t.Errorf("errors = %v, want [%q]", help.Errors, want)
	}
}

func TestScenarioDoubleDashSwitchesPositional(t *testing.T) {
	got := mustParse(t, pathArg(), []string{"--", "-x"})
	if got != "-x" {
		t.Errorf("got %q, want -x", got)
	}
}

func TestScenarioSubcommandOrElse(t *testing.T) {
	// OrElse requires both branches to share a result type, so each
	// subcommand's Opts is mapped into the common type first — exactly how
	// the front-end combinator layer would join sibling subcommands.
	psVariant := mapOpts(allFlag(), func(b bool) any { return b })
	buildVariant := mapOpts(pathArg(), func(s string) any { return s })
	opts := OrElseOpts(
		SubcommandOpts("ps", "", psVariant),
		SubcommandOpts("build", "", buildVariant),
	)
	got := mustParse(t, opts, []string{"ps", "-a"})
	if got != true {
		t.Errorf("got %v, want true", got)
	}
}

func TestScenarioMissingCombinesAcrossApp(t *testing.T) {
	help := mustFail(t, tupled(fileOpt(), pathArg()), []string{})
	want := []string{"Missing expected flag --file", "Missing expected argument"}
	if len(help.Errors) != len(want) {
		t.Fatalf("errors = %v, want %v", help.Errors, want)
	}
	for i := range want {
		if help.Errors[i] != want[i] {
			t.Errorf("errors[%d] = %q, want %q", i, help.Errors[i], want[i])
		}
	}
}

func TestScenarioUnexpectedOption(t *testing.T) {
	help := mustFail(t, allFlag(), []string{"--unknown"})
	want := "Unexpected option: --unknown"
	if len(help.Errors) != 1 || help.Errors[0] != want {
		t.Errorf("errors = %v, want [%q]", help.Errors, want)
	}
}

func TestScenarioSingleArgumentRejectsSecondPositional(t *testing.T) {
	help := mustFail(t, pathArg(), []string{"a", "b"})
	want := "Unexpected argument: b"
	if len(help.Errors) != 1 || help.Errors[0] != want {
		t.Errorf("errors = %v, want [%q]", help.Errors, want)
	}
}

func TestPureOnEmptyArgsReturnsValue(t *testing.T) {
	got := mustParse(t, PureOpts(42), []string{})
	if got != 42 {
		t.Errorf("got %d, want 42", got)
	}
}

func TestApplicativeIdentity(t *testing.T) {
	identity := func(s string) string { return s }
	withIdentity := App(PureOpts(identity), fileOpt())

	want := mustParse(t, fileOpt(), []string{"--file=x"})
	got := mustParse(t, withIdentity, []string{"--file=x"})
	if got != want {
		t.Errorf("App(Pure(id), o) = %q, want %q", got, want)
	}
}

func TestAmbiguousOptionName(t *testing.T) {
	a := SingleFlag(Flag("", Long("x")))
	b := SingleFlag(Flag("", Long("x")))
	help := mustFail(t, tupled(a, b), []string{"--x"})
	want := "Ambiguous option: --x"
	if len(help.Errors) != 1 || help.Errors[0] != want {
		t.Errorf("errors = %v, want [%q]", help.Errors, want)
	}
}

func TestRepeatedRegularPreservesOrder(t *testing.T) {
	opt := RepeatedRegular(Regular("TAG", "", Long("tag")))
	got := mustParse(t, opt, []string{"--tag=a", "--tag=b", "--tag=c"})
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSingleRegularReturnsLastOccurrence(t *testing.T) {
	got := mustParse(t, fileOpt(), []string{"--file=a", "--file=b"})
	if got != "b" {
		t.Errorf("got %q, want b (last occurrence)", got)
	}
}

func TestMissingValueForLongOption(t *testing.T) {
	help := mustFail(t, fileOpt(), []string{"--file"})
	want := "Missing value for option: --file"
	if len(help.Errors) != 1 || help.Errors[0] != want {
		t.Errorf("errors = %v, want [%q]", help.Errors, want)
	}
}

func TestMissingValueForShortOption(t *testing.T) {
	help := mustFail(t, fileOpt(), []string{"-f"})
	want := "Missing value for option: -f"
	if len(help.Errors) != 1 || help.Errors[0] != want {
		t.Errorf("errors = %v, want [%q]", help.Errors, want)
	}
}
