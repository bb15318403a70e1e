//nolint:testpackage // using package name 'decline' to access unexported fields for testing
package decline

import "testing"

func TestLintFlagsNearDuplicateNames(t *testing.T) {
	opts := tupled(
		SingleFlag(Flag("", Long("verbose"))),
		SingleFlag(Flag("", Long("verbos"))),
	)
	warnings := Lint(opts)
	if len(warnings) != 1 {
		t.Fatalf("Lint() = %v, want exactly 1 warning for --verbose/--verbos", warnings)
	}
	if warnings[0].Distance != 1 {
		t.Errorf("warning distance = %d, want 1", warnings[0].Distance)
	}
}

func TestLintIgnoresUnrelatedNames(t *testing.T) {
	opts := tupled(
		SingleFlag(Flag("", Long("all"))),
		SingleRegular(Regular("FILE", "", Long("file"))),
	)
	if warnings := Lint(opts); len(warnings) != 0 {
		t.Errorf("Lint() = %v, want no warnings", warnings)
	}
}

func TestLintIgnoresArgumentMetavars(t *testing.T) {
	opts := tupled(SingleArgument(Argument("PATH")), SingleArgument(Argument("PAT")))
	if warnings := Lint(opts); len(warnings) != 0 {
		t.Errorf("Lint() = %v, want arguments to be excluded from linting", warnings)
	}
}
