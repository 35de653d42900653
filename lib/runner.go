package lib

import (
	"fmt"
	"io"

	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("tinytest")

// Embedders see only the report unless they install a logging backend.
func init() {
	logging.SetLevel(logging.WARNING, "tinytest")
}

// RunnerOptions represents options passed to the Runner.
type RunnerOptions struct {
	// BufferSize caps the error message of a failing test, terminator
	// included. Values below 1 select DefaultBufferSize.
	BufferSize int
	Colorize   bool
}

// Suite is an ordered list of tests reported under one name.
type Suite struct {
	Name  string
	Tests []TestFunc
}

// Runner runs suites of tests and displays their results.
type Runner struct {
	stdout io.Writer

	options RunnerOptions
}

// NewRunner constructs a new Runner.
func NewRunner(stdout io.Writer, options RunnerOptions) *Runner {
	if options.BufferSize < 1 {
		options.BufferSize = DefaultBufferSize
	}
	return &Runner{
		stdout:  stdout,
		options: options,
	}
}

// RunSuite runs tests in order and stops at the first one that fails; the
// tests after it are never called. It prints a header, then either the
// failure message or PASSED!.
func (r *Runner) RunSuite(name string, tests ...TestFunc) SuiteResult {
	result := SuiteResult{
		Name:  name,
		Total: len(tests),
	}
	t := newT(r.options.BufferSize)

	fmt.Fprintf(r.stdout, "Testing %s: ", name)
	log.Debugf("suite %q: %d tests", name, len(tests))
	for i := 0; i < len(tests) && !t.Failed(); i++ {
		log.Debugf("suite %q: running %s (%d/%d)", name, testName(tests[i]), i+1, len(tests))
		tests[i](t)
		result.Ran++
		if t.Failed() {
			r.printFailure(t.Message())
		}
	}

	if t.Failed() {
		result.Failure = t.Failure()
		if skipped := result.Skipped(); skipped > 0 {
			log.Debugf("suite %q: stopped, %d tests not run", name, skipped)
		}
		return result
	}
	result.Passed = true
	r.printPassed()
	return result
}

// Run runs every suite, each with its own pass flag and message, and
// returns an error if any of them failed.
func (r *Runner) Run(suites ...Suite) error {
	failed := 0
	for _, suite := range suites {
		if result := r.RunSuite(suite.Name, suite.Tests...); !result.Passed {
			failed++
		}
	}
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d suites failed", failed, len(suites))
}

func (r *Runner) printFailure(message string) {
	marker := "FAIL:"
	if r.options.Colorize {
		marker = RedBold("%s", marker)
	}
	fmt.Fprintf(r.stdout, "\n\t%s %s\n", marker, message)
}

func (r *Runner) printPassed() {
	marker := "PASSED!"
	if r.options.Colorize {
		marker = GreenBold("%s", marker)
	}
	fmt.Fprintf(r.stdout, "%s\n", marker)
}
