package lib

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
	"unicode/utf8"
)

// DefaultBufferSize is the capacity of the error message recorded for a
// failing test, terminator included.
const DefaultBufferSize = 128

// TestFunc is a single test unit. It runs its assertions against t.
type TestFunc func(t *T)

// Failure describes the first assertion that failed during a suite run.
type Failure struct {
	Test    string
	File    string
	Line    int
	Expr    string
	Message string
}

// T carries the pass flag and the error message shared by the tests of a
// suite run. Once an assertion fails, every later assertion is a no-op.
type T struct {
	capacity int
	pass     bool
	failure  *Failure
}

func newT(capacity int) *T {
	if capacity < 1 {
		capacity = DefaultBufferSize
	}
	return &T{
		capacity: capacity,
		pass:     true,
	}
}

// Assert fails the test when cond is false. The report names the enclosing
// function, the line of the call and the literal text of the argument as
// written in the caller's source file.
func (t *T) Assert(cond bool) {
	if !t.pass || cond {
		return
	}
	t.record("")
}

// AssertExpr is Assert with the expression text given by the caller, for
// code whose source is not available at run time.
func (t *T) AssertExpr(cond bool, expr string) {
	if !t.pass || cond {
		return
	}
	if expr == "" {
		expr = "false"
	}
	t.record(expr)
}

// Failed reports whether an assertion has failed.
func (t *T) Failed() bool {
	return !t.pass
}

// Message returns the recorded error message, or "" while passing.
func (t *T) Message() string {
	if t.failure == nil {
		return ""
	}
	return t.failure.Message
}

// Failure returns a copy of the recorded failure, or nil while passing.
func (t *T) Failure() *Failure {
	if t.failure == nil {
		return nil
	}
	f := *t.failure
	return &f
}

// record must be called directly from Assert or AssertExpr.
func (t *T) record(expr string) {
	t.pass = false

	var pcs [1]uintptr
	failure := &Failure{Test: "unknown", Expr: expr}
	// Skip runtime.Callers, record and the Assert method.
	if runtime.Callers(3, pcs[:]) > 0 {
		frame, _ := runtime.CallersFrames(pcs[:]).Next()
		failure.Test = funcIdentifier(frame.Function)
		failure.File = frame.File
		failure.Line = frame.Line
	}
	if failure.Expr == "" {
		text, ok := assertedExpr(failure.File, failure.Line)
		if !ok {
			text = "false"
		}
		failure.Expr = text
	}
	failure.Message = truncate(
		fmt.Sprintf("%s: l%d: %s", failure.Test, failure.Line, failure.Expr),
		t.capacity-1)
	t.failure = failure
}

// funcIdentifier strips the import path and package name from a fully
// qualified function name, e.g. "example.com/pkg.bad_test" -> "bad_test".
func funcIdentifier(qualified string) string {
	name := qualified
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		return "unknown"
	}
	return name
}

// testName returns the identifier of a test unit for log output.
func testName(fn TestFunc) string {
	f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if f == nil {
		return "unknown"
	}
	return funcIdentifier(f.Name())
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
// A run of stray continuation bytes is cut at n.
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	for back := 0; back < utf8.UTFMax && back <= n; back++ {
		if utf8.RuneStart(s[n-back]) {
			return s[:n-back]
		}
	}
	return s[:n]
}
