package internal

import (
	"fmt"
	"os"

	"github.com/logrusorgru/aurora"

	"github.com/sixfold-origami/concave-hull/dbg"
)

// Opt-in trace of the refinement loop, for chasing down hulls that come
// out with a surprising shape. Enabled by setting CONCAVE_HULL_TRACE to
// anything non-empty. Edges are labeled with memoized readable names so a
// split's children can be followed through later iterations.

var traceEnabled = os.Getenv("CONCAVE_HULL_TRACE") != ""

var (
	greenTrace = aurora.Green
	cyanTrace  = aurora.Cyan
	redTrace   = aurora.Red
)

func traceEdge[T Float](verdict string, color func(interface{}) aurora.Value, e Edge[T]) {
	if !traceEnabled {
		return
	}
	fmt.Fprintf(os.Stderr, "%-8s %s %d→%d (len² %v)\n",
		color(verdict).String(), dbg.EdgeName(e.I, e.J), e.I, e.J, e.NormSquared())
}
