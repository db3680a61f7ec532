package cfg

import (
	"io"
	"sync"
)

// InfoReportFunc writes the status of a running operation to w.
type InfoReportFunc func(w io.Writer)

var (
	sigMu        sync.Mutex
	sigReporters = make(map[int]InfoReportFunc)
	sigNextID    int
)

// RegisterSigInfoReporter adds fn to the reporters called on SIGINFO (or
// SIGUSR1). The returned function removes it.
func RegisterSigInfoReporter(fn InfoReportFunc) (unregister func()) {
	if fn == nil {
		return func() {}
	}
	sigMu.Lock()
	defer sigMu.Unlock()
	id := sigNextID
	sigNextID++
	sigReporters[id] = fn
	return func() {
		sigMu.Lock()
		delete(sigReporters, id)
		sigMu.Unlock()
	}
}

// SigInfo runs all registered reporters.
func SigInfo(w io.Writer) {
	if w == nil {
		return
	}
	sigMu.Lock()
	defer sigMu.Unlock()
	for _, fn := range sigReporters {
		fn(w)
	}
}
