package domain

// QuoteState represents the stage of a quote attempt
type QuoteState string

const (
	QuoteStateIdle          QuoteState = "IDLE"
	QuoteStateValidating    QuoteState = "VALIDATING"
	QuoteStateFetchingVenue QuoteState = "FETCHING_VENUE"
	QuoteStateComputing     QuoteState = "COMPUTING"
	QuoteStateDone          QuoteState = "DONE"
	QuoteStateFailed        QuoteState = "FAILED"
)

// IsValid checks if the quote state is valid
func (s QuoteState) IsValid() bool {
	switch s {
	case QuoteStateIdle,
		QuoteStateValidating,
		QuoteStateFetchingVenue,
		QuoteStateComputing,
		QuoteStateDone,
		QuoteStateFailed:
		return true
	default:
		return false
	}
}

// IsTerminal checks if the quote state is terminal
func (s QuoteState) IsTerminal() bool {
	return s == QuoteStateDone || s == QuoteStateFailed
}

// CanTransitionTo checks if a state transition is valid. Any non-terminal
// state may fail; the happy path advances one stage at a time.
func (s QuoteState) CanTransitionTo(newState QuoteState) bool {
	switch s {
	case QuoteStateIdle:
		return newState == QuoteStateValidating || newState == QuoteStateFailed
	case QuoteStateValidating:
		return newState == QuoteStateFetchingVenue || newState == QuoteStateFailed
	case QuoteStateFetchingVenue:
		return newState == QuoteStateComputing || newState == QuoteStateFailed
	case QuoteStateComputing:
		return newState == QuoteStateDone || newState == QuoteStateFailed
	case QuoteStateDone, QuoteStateFailed:
		return false // Terminal states
	default:
		return false
	}
}
