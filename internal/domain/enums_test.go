package domain

import "testing"

func TestQuoteStateTransitions(t *testing.T) {
	happyPath := []QuoteState{
		QuoteStateIdle,
		QuoteStateValidating,
		QuoteStateFetchingVenue,
		QuoteStateComputing,
		QuoteStateDone,
	}
	for i := 0; i < len(happyPath)-1; i++ {
		if !happyPath[i].CanTransitionTo(happyPath[i+1]) {
			t.Fatalf("expected %s -> %s to be allowed", happyPath[i], happyPath[i+1])
		}
	}

	// Every non-terminal state can fail.
	for _, s := range []QuoteState{QuoteStateIdle, QuoteStateValidating, QuoteStateFetchingVenue, QuoteStateComputing} {
		if !s.CanTransitionTo(QuoteStateFailed) {
			t.Fatalf("expected %s -> FAILED to be allowed", s)
		}
	}

	// Terminal states go nowhere.
	for _, s := range []QuoteState{QuoteStateDone, QuoteStateFailed} {
		if s.CanTransitionTo(QuoteStateValidating) {
			t.Fatalf("expected %s to be terminal", s)
		}
		if !s.IsTerminal() {
			t.Fatalf("expected %s to report terminal", s)
		}
	}

	// No skipping stages.
	if QuoteStateIdle.CanTransitionTo(QuoteStateComputing) {
		t.Fatal("IDLE must not jump straight to COMPUTING")
	}

	if QuoteState("BOGUS").IsValid() {
		t.Fatal("unknown state must not be valid")
	}
}

func TestDistanceTierContains(t *testing.T) {
	tier := DistanceTier{Min: 500, Max: 1000}
	if tier.Contains(499) {
		t.Fatal("below Min must not match")
	}
	if !tier.Contains(500) {
		t.Fatal("Min is inclusive")
	}
	if !tier.Contains(999) {
		t.Fatal("999 is inside the band")
	}
	if tier.Contains(1000) {
		t.Fatal("Max is exclusive")
	}

	sentinel := DistanceTier{Min: 1000, Max: 0}
	if !sentinel.Contains(5000) {
		t.Fatal("sentinel tier has no upper bound")
	}
	if sentinel.Deliverable() {
		t.Fatal("sentinel tier must not be deliverable")
	}
}
