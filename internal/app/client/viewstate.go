package client

// Phase is the lifecycle tag of a screen's data. A single tag plus one error
// slot keeps illegal combinations (loading and error at once) unrepresentable.
type Phase int

const (
	// PhaseLoading: first fetch in flight, nothing to show yet.
	PhaseLoading Phase = iota
	// PhaseRefreshing: re-fetch in flight, previous data still on display.
	PhaseRefreshing
	// PhaseReady: last fetch succeeded.
	PhaseReady
	// PhaseFailed: last fetch failed. Data may still hold the previous
	// successful result (stale but displayable); HasData tells them apart.
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseRefreshing:
		return "refreshing"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// ViewState is the tri-state a screen consumes.
type ViewState[T any] struct {
	Phase   Phase
	Data    T
	HasData bool
	Err     error
}

func (s ViewState[T]) Loading() bool { return s.Phase == PhaseLoading }

func (s ViewState[T]) Refreshing() bool { return s.Phase == PhaseRefreshing }

func (s ViewState[T]) Failed() bool { return s.Phase == PhaseFailed }

func (s ViewState[T]) Ready() bool { return s.Phase == PhaseReady }
