package area

import "log"

// ProgressRecord describes one outer refinement pass.
type ProgressRecord struct {
	Steps           int `json:"steps"`            // pass granularity (5..1)
	Neighbours      int `json:"neighbours"`       // last neighbour value evaluated in the pass
	StartNeighbours int `json:"start_neighbours"` // start of the next, finer scan
	StopNeighbours  int `json:"stop_neighbours"`  // lower scan boundary found so far
	DesiredAreas    int `json:"desired_areas"`    // distinct non-noise regions in the last clustering
}

// ProgressObserver receives one record per refinement pass so slow
// searches stay diagnosable. Implementations must not retain the record.
type ProgressObserver interface {
	ObservePass(rec ProgressRecord)
}

type logObserver struct{}

// NewLogObserver returns the default observer, logging one line per pass.
func NewLogObserver() ProgressObserver {
	return logObserver{}
}

func (logObserver) ObservePass(rec ProgressRecord) {
	log.Printf("[AreaRefiner] Current Steps : %d | Neighbours : %d | Start Neighbours : %d | Stop Neighbours : %d | Unique Desired Area : %d",
		rec.Steps, rec.Neighbours, rec.StartNeighbours, rec.StopNeighbours, rec.DesiredAreas)
}

// ObserverFunc adapts a function to the ProgressObserver interface.
type ObserverFunc func(rec ProgressRecord)

// ObservePass calls the wrapped function.
func (f ObserverFunc) ObservePass(rec ProgressRecord) { f(rec) }
