// Package samples holds the suites bundled with the tinytest binary: the
// introductory "Dummy test" suite and self-checks of the runner built on
// tinytest itself.
package samples

import (
	"bytes"
	"strings"

	"github.com/suse/tinytest/lib"
)

func greater(x, y int) bool { return x > y }

func greaterTest(t *lib.T) { t.Assert(greater(1337, 42)) }

// stopsAtFirstFailure runs a nested suite whose second test must never run.
func stopsAtFirstFailure(t *lib.T) {
	var out bytes.Buffer
	secondRan := false
	result := lib.NewRunner(&out, lib.RunnerOptions{}).RunSuite("nested",
		func(t *lib.T) { t.AssertExpr(false, "first") },
		func(t *lib.T) { secondRan = true },
	)

	t.Assert(!secondRan)
	t.Assert(result.Ran == 1 && result.Skipped() == 1)
	t.Assert(strings.Count(out.String(), "FAIL:") == 1)
	t.Assert(!strings.Contains(out.String(), "PASSED!"))
}

func reportsFirstAssertion(t *lib.T) {
	var out bytes.Buffer
	result := lib.NewRunner(&out, lib.RunnerOptions{}).RunSuite("nested", func(t *lib.T) {
		t.AssertExpr(false, "one")
		t.AssertExpr(false, "two")
	})

	t.Assert(result.Failure != nil)
	t.Assert(result.Failure.Expr == "one")
	t.Assert(strings.HasSuffix(out.String(), ": one\n"))
}

func truncatesMessage(t *lib.T) {
	var out bytes.Buffer
	result := lib.NewRunner(&out, lib.RunnerOptions{BufferSize: 8}).RunSuite("nested", func(t *lib.T) {
		t.AssertExpr(false, "a long expression")
	})

	t.Assert(result.Failure != nil)
	t.Assert(len(result.Failure.Message) == 7)
}

func passesEmptySuite(t *lib.T) {
	var out bytes.Buffer
	result := lib.NewRunner(&out, lib.RunnerOptions{}).RunSuite("empty")

	t.Assert(result.Passed)
	t.Assert(out.String() == "Testing empty: PASSED!\n")
}

// Suites returns the bundled suites in the order they are run.
func Suites() []lib.Suite {
	return []lib.Suite{
		{Name: "Dummy test", Tests: []lib.TestFunc{greaterTest}},
		{Name: "Runner", Tests: []lib.TestFunc{
			stopsAtFirstFailure,
			reportsFirstAssertion,
			truncatesMessage,
			passesEmptySuite,
		}},
	}
}
