package pipeline

// State tracks where a run is in the generate-review-refine flow.
type State int

const (
	StateInit State = iota
	StateGenerating
	StateReviewing
	StateAccepted
	StateRefining
	StateDone
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateGenerating:
		return "generating"
	case StateReviewing:
		return "reviewing"
	case StateAccepted:
		return "accepted"
	case StateRefining:
		return "refining"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}
