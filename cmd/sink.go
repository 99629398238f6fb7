package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/kaisuddinahmed/mymath/internal/store"
)

// storeFaultSink records recovered solver panics as SolverFaultEvents in
// addition to the stderr warning, so broken rules show up in `mymath stats`
// long after the terminal scrollback is gone.
type storeFaultSink struct {
	repo store.EventRepo
}

func (s storeFaultSink) SolverFault(solverName, question string, recovered any) {
	fmt.Fprintf(os.Stderr, "warning: solver %s failed on %q: %v\n", solverName, question, recovered)
	err := s.repo.AppendSolverFault(context.Background(), store.SolverFaultEventData{
		SolverName: solverName,
		Question:   question,
		PanicText:  fmt.Sprint(recovered),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: record solver fault:", err)
	}
}
