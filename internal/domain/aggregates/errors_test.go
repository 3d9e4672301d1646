package aggregates

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCodeHelpers(t *testing.T) {
	base := NewError(CodePastDate, "Planner.AssignIdea", "Cannot assign ideas to past days", nil)
	wrapped := fmt.Errorf("service: %w", base)

	if !IsCode(wrapped, CodePastDate) {
		t.Fatalf("expected past_date code through wrapping")
	}
	if CodeOf(wrapped) != CodePastDate {
		t.Fatalf("CodeOf: got=%s", CodeOf(wrapped))
	}
	if got := MessageOf(wrapped); got != "Cannot assign ideas to past days" {
		t.Fatalf("MessageOf: got=%q", got)
	}
	if got := base.Error(); got != "Planner.AssignIdea: Cannot assign ideas to past days (past_date)" {
		t.Fatalf("Error(): got=%q", got)
	}
}

func TestWrapAndPlainErrors(t *testing.T) {
	if Wrap(CodeInternal, "op", nil) != nil {
		t.Fatalf("Wrap(nil) should be nil")
	}
	plain := errors.New("boom")
	if CodeOf(plain) != "" || IsCode(plain, CodeInternal) {
		t.Fatalf("plain errors carry no code")
	}
	if MessageOf(plain) != "boom" {
		t.Fatalf("MessageOf(plain): got=%q", MessageOf(plain))
	}
	w := Wrap(CodeConflict, "op", plain)
	if !errors.Is(w, plain) {
		t.Fatalf("Wrap should keep the cause")
	}
}

func TestWeeklyPlanContract(t *testing.T) {
	if !WeeklyPlanAggregateContract.RequiresAggregateOwnedTx() {
		t.Fatalf("weekly plan writes must own their transaction")
	}
}
