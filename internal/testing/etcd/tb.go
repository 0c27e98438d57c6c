package etcd

import (
	"fmt"
	"os"
	"sync"

	"go.etcd.io/etcd/client/pkg/v3/testutil"
)

// discardTB is the test handle of a LazyCluster. The cluster outlives any
// single test, so it cannot report to one: logs are dropped and fatal
// failures panic.
type discardTB struct {
	name string

	mu       sync.Mutex
	failed   bool
	cleanups []func()
}

var _ testutil.TB = (*discardTB)(nil)

func newDiscardTB(name string) *discardTB {
	return &discardTB{name: name, mu: sync.Mutex{}, failed: false, cleanups: nil}
}

func (t *discardTB) Name() string { return t.name }
func (t *discardTB) Helper()      {}
func (t *discardTB) Log(...any)   {}
func (t *discardTB) Skip(...any)  {}

func (t *discardTB) Logf(string, ...any) {}

func (t *discardTB) Error(...any)          { t.Fail() }
func (t *discardTB) Errorf(string, ...any) { t.Fail() }

func (t *discardTB) Fail() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.failed = true
}

func (t *discardTB) Failed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.failed
}

func (t *discardTB) FailNow() {
	t.Fail()
	panic(t.name + ": FailNow called")
}

func (t *discardTB) Fatal(args ...any) {
	t.Fail()
	panic(t.name + ": " + fmt.Sprint(args...))
}

func (t *discardTB) Fatalf(format string, args ...any) {
	t.Fail()
	panic(t.name + ": " + fmt.Sprintf(format, args...))
}

func (t *discardTB) Cleanup(f func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cleanups = append(t.cleanups, f)
}

// TempDir creates a directory removed by the cluster's Terminate.
func (t *discardTB) TempDir() string {
	dir, err := os.MkdirTemp("", t.name)
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() { _ = os.RemoveAll(dir) })

	return dir
}

func (t *discardTB) runCleanups() {
	t.mu.Lock()
	cleanups := t.cleanups
	t.cleanups = nil
	t.mu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}

// SilentTB wraps a testutil.TB and drops its logs. etcd's BeforeTest logs
// through the handle it is given, which would pollute example output.
type SilentTB struct {
	testutil.TB
}

var _ testutil.TB = &SilentTB{} //nolint:exhaustruct

// NewSilentTB wraps tb.
func NewSilentTB(tb testutil.TB) *SilentTB {
	return &SilentTB{TB: tb}
}

func (s *SilentTB) Log(...any)          {}
func (s *SilentTB) Logf(string, ...any) {}
