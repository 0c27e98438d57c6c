package testing

import (
	"fmt"
	"os"
	"testing"
)

// T is the subset of testing.T the fakes in this package report to.
type T interface {
	Helper()
	Log(args ...any)
	Logf(format string, args ...any)
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
}

// ExampleT stands in for *testing.T in runnable examples, which get none.
// Failures panic so that a broken example never prints expected output.
type ExampleT struct {
	testing.T

	cleanups []func()
}

// NewT returns an ExampleT. Call Cleanups when the example returns.
func NewT() *ExampleT {
	return &ExampleT{T: testing.T{}, cleanups: nil}
}

var (
	_ T          = &ExampleT{} //nolint:exhaustruct
	_ testing.TB = &ExampleT{} //nolint:exhaustruct
)

func abort(kind string, args ...any) {
	panic(kind + ": " + fmt.Sprint(args...))
}

func (t *ExampleT) Helper()            {}
func (t *ExampleT) Name() string       { return "ExampleT" }
func (t *ExampleT) Attr(_, _ string)   {}
func (t *ExampleT) Setenv(_, _ string) {}
func (t *ExampleT) Chdir(_ string)     {}
func (t *ExampleT) Failed() bool       { return false }
func (t *ExampleT) Skipped() bool      { return false }
func (t *ExampleT) Error(_ ...any)     {}

func (t *ExampleT) Fail()             { abort("fail") }
func (t *ExampleT) FailNow()          { abort("fail now") }
func (t *ExampleT) Fatal(args ...any) { abort("fatal", args...) }
func (t *ExampleT) Skip(args ...any)  { abort("skip", args...) }
func (t *ExampleT) SkipNow()          { abort("skip now") }

func (t *ExampleT) Fatalf(format string, args ...any) { abort("fatal", fmt.Sprintf(format, args...)) }
func (t *ExampleT) Errorf(format string, args ...any) { abort("error", fmt.Sprintf(format, args...)) }
func (t *ExampleT) Skipf(format string, args ...any)  { abort("skip", fmt.Sprintf(format, args...)) }

// Log writes to stderr so that logs never mix with example output.
func (t *ExampleT) Log(args ...any) {
	_, _ = fmt.Fprintln(os.Stderr, args...)
}

// Logf writes to stderr so that logs never mix with example output.
func (t *ExampleT) Logf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format, args...)
}

// Cleanup registers f to be run by Cleanups.
func (t *ExampleT) Cleanup(f func()) {
	t.cleanups = append(t.cleanups, f)
}

// Cleanups runs the registered functions in reverse order.
func (t *ExampleT) Cleanups() {
	for i := len(t.cleanups) - 1; i >= 0; i-- {
		t.cleanups[i]()
	}

	t.cleanups = nil
}
