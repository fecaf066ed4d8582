package dialogue

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"lifemind-be/pkg/dialogue/intent"
)

func testEngine() *Engine {
	return NewEngineWithClock(func() time.Time {
		return time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)
	})
}

func TestRespondCompleteReminderAsksForConfirmation(t *testing.T) {
	e := testEngine()

	res := e.Respond("remind me to buy groceries tomorrow at 3pm", Context{})

	if res.Ready != nil {
		t.Fatal("no action should be emitted before confirmation")
	}
	if !res.Next.AwaitingApproval {
		t.Error("expected transition to awaiting approval")
	}
	if res.Next.PendingAction == nil || res.Next.PendingAction.Type != intent.Reminder {
		t.Fatalf("PendingAction = %+v, want reminder", res.Next.PendingAction)
	}
	if len(res.Next.PendingAction.MissingFields) != 0 {
		t.Errorf("MissingFields = %v, want empty", res.Next.PendingAction.MissingFields)
	}
	if !strings.Contains(res.Reply, "Should I add this reminder?") {
		t.Errorf("reply %q should ask for confirmation", res.Reply)
	}
}

func TestRespondSlotFillingFlow(t *testing.T) {
	e := testEngine()

	// Turn 1: reminder with no time or date.
	res := e.Respond("set a reminder to water plants", Context{})
	if res.Next.AwaitingApproval {
		t.Fatal("should not await approval with missing fields")
	}
	pa := res.Next.PendingAction
	if pa == nil || pa.Type != intent.Reminder {
		t.Fatalf("PendingAction = %+v, want reminder", pa)
	}
	if len(pa.MissingFields) != 2 || pa.MissingFields[0] != "time" || pa.MissingFields[1] != "date" {
		t.Fatalf("MissingFields = %v, want [time date]", pa.MissingFields)
	}
	if !strings.Contains(res.Reply, "What time?") || !strings.Contains(res.Reply, "When?") {
		t.Errorf("reply %q should list both missing fields", res.Reply)
	}

	// Turn 2: follow-up supplies both fields.
	res = e.Respond("tomorrow at 5pm", res.Next)
	if !res.Next.AwaitingApproval {
		t.Fatal("expected transition to awaiting approval")
	}
	pa = res.Next.PendingAction
	if len(pa.MissingFields) != 0 {
		t.Fatalf("MissingFields = %v, want empty", pa.MissingFields)
	}
	if pa.Slots.Text != "water plants" {
		t.Errorf("Text = %q, want %q (merge must not clobber text)", pa.Slots.Text, "water plants")
	}
	if pa.Slots.Time != "17:00" {
		t.Errorf("Time = %q, want 17:00", pa.Slots.Time)
	}
	if pa.Slots.Date != "tomorrow" {
		t.Errorf("Date = %q, want literal phrase before resolution", pa.Slots.Date)
	}
	if !strings.Contains(res.Reply, "Should I add this reminder?") {
		t.Errorf("reply %q should ask for confirmation", res.Reply)
	}

	// Turn 3: confirmation emits the action with the date resolved.
	res = e.Respond("yes", res.Next)
	if res.Ready == nil {
		t.Fatal("expected a ready action on confirmation")
	}
	if res.Ready.Type != intent.Reminder {
		t.Errorf("Ready.Type = %s, want reminder", res.Ready.Type)
	}
	if res.Ready.Slots.Text != "water plants" {
		t.Errorf("Ready.Text = %q, want %q", res.Ready.Slots.Text, "water plants")
	}
	if res.Ready.Slots.Date != "2025-03-15" {
		t.Errorf("Ready.Date = %q, want resolved tomorrow", res.Ready.Slots.Date)
	}
	if res.Ready.Slots.Time != "17:00" {
		t.Errorf("Ready.Time = %q, want 17:00", res.Ready.Slots.Time)
	}
	if res.Next.AwaitingApproval || res.Next.PendingAction != nil {
		t.Error("context should return to idle after confirmation")
	}
}

func TestRespondPriorityFlow(t *testing.T) {
	e := testEngine()

	res := e.Respond("add priority to finish report urgent", Context{})

	pa := res.Next.PendingAction
	if pa == nil || pa.Type != intent.Priority {
		t.Fatalf("PendingAction = %+v, want priority", pa)
	}
	if pa.Slots.Priority != "high" {
		t.Errorf("Priority = %q, want high", pa.Slots.Priority)
	}
	if !res.Next.AwaitingApproval {
		t.Error("expected awaiting approval")
	}
	if !strings.Contains(res.Reply, "high priority") {
		t.Errorf("reply %q should restate the priority level", res.Reply)
	}
}

func TestRespondNegativeCancels(t *testing.T) {
	e := testEngine()

	res := e.Respond("remind me to buy groceries tomorrow at 3pm", Context{})
	res = e.Respond("no, cancel", res.Next)

	if res.Ready != nil {
		t.Error("cancellation must not emit an action")
	}
	if res.Next.AwaitingApproval || res.Next.PendingAction != nil {
		t.Error("context should return to idle after cancellation")
	}
	if !strings.Contains(res.Reply, "cancelled") {
		t.Errorf("reply %q should acknowledge cancellation", res.Reply)
	}
}

func TestRespondNeutralFallsThroughToFreshClassification(t *testing.T) {
	e := testEngine()

	res := e.Respond("remind me to buy groceries tomorrow at 3pm", Context{})
	res = e.Respond("meh", res.Next)

	if res.Ready != nil {
		t.Error("neutral reply must not emit an action")
	}
	if res.Next.PendingAction != nil {
		t.Error("prior pending action should be discarded")
	}
	if !strings.Contains(res.Reply, "meh") {
		t.Errorf("reply %q should be the generic clarifying answer", res.Reply)
	}
}

func TestRespondNeutralWithNewCommandSupersedesPending(t *testing.T) {
	e := testEngine()

	res := e.Respond("remind me to buy groceries tomorrow at 3pm", Context{})
	res = e.Respond("add priority to finish report urgent", res.Next)

	pa := res.Next.PendingAction
	if pa == nil || pa.Type != intent.Priority {
		t.Fatalf("PendingAction = %+v, want the superseding priority", pa)
	}
	if !res.Next.AwaitingApproval {
		t.Error("expected awaiting approval for the new action")
	}
}

func TestRespondGeneralReply(t *testing.T) {
	e := testEngine()

	res := e.Respond("hello there", Context{})

	if res.Next.PendingAction != nil || res.Next.AwaitingApproval {
		t.Error("general intent should not create a pending action")
	}
	if res.Reply == "" {
		t.Error("reply must never be empty")
	}
}

func TestRespondHistoryCapped(t *testing.T) {
	e := testEngine()

	ctx := Context{}
	for i := 0; i < 20; i++ {
		res := e.Respond("hello there", ctx)
		ctx = res.Next
		if len(ctx.History) > 10 {
			t.Fatalf("history length %d exceeds cap", len(ctx.History))
		}
	}
	if len(ctx.History) != 10 {
		t.Errorf("history length = %d, want 10", len(ctx.History))
	}
	if !strings.HasPrefix(ctx.History[8], "User: ") || !strings.HasPrefix(ctx.History[9], "Assistant: ") {
		t.Errorf("history tail should be the latest turn, got %v", ctx.History[8:])
	}
}

// awaitingApproval == true must always imply a pending action with an
// empty missing-field list.
func TestRespondApprovalInvariant(t *testing.T) {
	e := testEngine()

	utterances := []string{
		"set a reminder to water plants",
		"tomorrow at 5pm",
		"meh",
		"add priority to clean desk",
		"high",
		"yes",
		"hello",
	}

	ctx := Context{}
	for _, u := range utterances {
		res := e.Respond(u, ctx)
		if res.Reply == "" {
			t.Fatalf("empty reply for %q", u)
		}
		if res.Next.AwaitingApproval {
			if res.Next.PendingAction == nil {
				t.Fatalf("awaiting approval without pending action after %q", u)
			}
			if len(res.Next.PendingAction.MissingFields) != 0 {
				t.Fatalf("awaiting approval with missing fields %v after %q",
					res.Next.PendingAction.MissingFields, u)
			}
		}
		ctx = res.Next
	}
}

// The context must survive a JSON round trip so callers can persist it
// across a network boundary between turns.
func TestContextJSONRoundTrip(t *testing.T) {
	e := testEngine()

	res := e.Respond("set a reminder to water plants", Context{})

	raw, err := json.Marshal(res.Next)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var restored Context
	if err := json.Unmarshal(raw, &restored); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	res2 := e.Respond("tomorrow at 5pm", restored)
	if !res2.Next.AwaitingApproval {
		t.Error("round-tripped context should continue the slot-filling flow")
	}
	if res2.Next.PendingAction.Slots.Text != "water plants" {
		t.Errorf("Text = %q, want preserved through round trip", res2.Next.PendingAction.Slots.Text)
	}
}
