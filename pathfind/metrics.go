package pathfind

import "time"

// Metrics summarizes a run for display: the number of moves in the solution
// path (0 when no path exists) and the wall-clock time the run has consumed.
type Metrics struct {
	PathLength     int     `json:"path_length"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
}

// Elapsed returns the wall-clock span between the run's creation and its
// terminal transition, or the span so far for a run still in progress.
func (e *Engine) Elapsed() time.Duration {
	if e.finishedAt.IsZero() {
		return time.Since(e.startedAt)
	}
	return e.finishedAt.Sub(e.startedAt)
}

// Snapshot captures the run's metrics. Purely observational: it never
// mutates search state.
func Snapshot(e *Engine) Metrics {
	length := 0
	if path, err := e.Path(); err == nil {
		length = len(path) - 1
	}
	return Metrics{
		PathLength:     length,
		ElapsedSeconds: e.Elapsed().Seconds(),
	}
}
