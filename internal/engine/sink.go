package engine

import (
	"fmt"
	"os"
)

// FaultSink receives solver panics recovered at the dispatch boundary.
// Implementations must not panic or block; they are called mid-resolution.
type FaultSink interface {
	SolverFault(solverName, question string, recovered any)
}

// stderrSink is the default sink. A broken rule module stays visible
// without interrupting whoever asked the question.
type stderrSink struct{}

func (stderrSink) SolverFault(solverName, question string, recovered any) {
	fmt.Fprintf(os.Stderr, "warning: solver %s failed on %q: %v\n", solverName, question, recovered)
}
