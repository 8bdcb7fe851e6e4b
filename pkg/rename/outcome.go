package rename

// Result is what happened to one file.
type Result int

const (
	Renamed Result = iota
	Skipped
	Failed
)

// String returns the string representation of the result
func (r Result) String() string {
	switch r {
	case Renamed:
		return "renamed"
	case Skipped:
		return "skipped"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome describes the handling of one source file. Err is set only for
// Failed outcomes.
type Outcome struct {
	Source      string
	Destination string
	Result      Result
	Err         error
}

// Summary counts outcomes over a run.
type Summary struct {
	Renamed int
	Skipped int
	Failed  int
}

// Add counts o.
func (s *Summary) Add(o Outcome) {
	switch o.Result {
	case Renamed:
		s.Renamed++
	case Skipped:
		s.Skipped++
	case Failed:
		s.Failed++
	}
}

// Total is the number of files looked at.
func (s Summary) Total() int {
	return s.Renamed + s.Skipped + s.Failed
}
