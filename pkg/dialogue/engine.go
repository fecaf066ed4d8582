// Package dialogue implements the multi-turn intent classification and
// slot-filling engine behind the voice assistant: keyword intent
// detection, field extraction, missing-field follow-ups and the
// confirmation state machine. The engine is pure computation over
// strings and dates; it performs no I/O and holds no state between
// calls.
package dialogue

import (
	"fmt"
	"strings"
	"time"

	"lifemind-be/pkg/dialogue/extract"
	"lifemind-be/pkg/dialogue/intent"
	"lifemind-be/pkg/dialogue/sentiment"
)

// maxHistoryEntries caps the conversation history at 5 turns
// (one user line plus one assistant line per turn).
const maxHistoryEntries = 10

// Engine turns utterances into replies and state transitions. Safe for
// concurrent use: each call works only on its arguments.
type Engine struct {
	now func() time.Time
}

func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// NewEngineWithClock fixes the engine's notion of "now" for tests.
func NewEngineWithClock(now func() time.Time) *Engine {
	return &Engine{now: now}
}

// Respond processes one conversational turn. It always produces a
// non-empty reply: unmatched input degrades to defaults or to a generic
// clarifying answer, never to an error.
func (e *Engine) Respond(utterance string, ctx Context) Result {
	now := e.now()
	next := ctx

	var reply string
	var ready *ReadyAction

	switch {
	case ctx.AwaitingApproval && ctx.PendingAction != nil:
		switch sentiment.Classify(utterance) {
		case sentiment.Affirmative:
			ready = e.emit(ctx.PendingAction, now)
			reply = "Great! I'll add that for you right away. Is there anything else you need help with?"
			next.AwaitingApproval = false
			next.PendingAction = nil
		case sentiment.Negative:
			reply = "No problem! I've cancelled that. What else can I help you with?"
			next.AwaitingApproval = false
			next.PendingAction = nil
		default:
			// An ambiguous reply during confirmation supersedes the
			// pending action and is treated as a new request.
			next.AwaitingApproval = false
			next.PendingAction = nil
			reply = e.classifyFresh(utterance, &next, now)
		}

	case ctx.PendingAction != nil && len(ctx.PendingAction.MissingFields) > 0:
		reply = e.fillMissingFields(utterance, &next)

	default:
		reply = e.classifyFresh(utterance, &next, now)
	}

	next.History = appendHistory(next.History, utterance, reply)
	return Result{Reply: reply, Next: next, Ready: ready}
}

// classifyFresh handles an utterance with no outstanding question: it is
// classified from scratch and either queued for confirmation, queued for
// follow-up questions, or answered generically.
func (e *Engine) classifyFresh(utterance string, next *Context, now time.Time) string {
	c := intent.Classify(utterance, now)

	if c.Intent == intent.General {
		next.AwaitingApproval = false
		next.PendingAction = nil
		return fmt.Sprintf("I heard you say: %q. I can help you set reminders, add priorities, create tasks, or schedule meetings. What would you like me to do?", c.Slots.Text)
	}

	pending := &PendingAction{
		Type:          c.Intent,
		Slots:         c.Slots,
		MissingFields: c.MissingFields,
	}
	next.PendingAction = pending

	if len(c.MissingFields) > 0 {
		next.AwaitingApproval = false
		return promptForMissing(pending)
	}

	next.AwaitingApproval = true
	return askConfirmation(pending)
}

// fillMissingFields treats the utterance as the answer to the previous
// follow-up question. Extraction runs on the new utterance only and the
// result is merged onto the pending slots as a field-level overwrite.
func (e *Engine) fillMissingFields(utterance string, next *Context) string {
	pending := *next.PendingAction

	var remaining []string
	for _, field := range pending.MissingFields {
		switch field {
		case intent.FieldTime:
			if t, ok := extract.Time(utterance); ok {
				pending.Slots.Time = t
				continue
			}
		case intent.FieldDate:
			if d, ok := extract.DatePhrase(utterance); ok {
				pending.Slots.Date = d
				continue
			}
		case intent.FieldPriority:
			if p, ok := extract.PriorityLevel(utterance); ok {
				pending.Slots.Priority = p
				continue
			}
		}
		remaining = append(remaining, field)
	}
	pending.MissingFields = remaining
	next.PendingAction = &pending

	if len(remaining) > 0 {
		next.AwaitingApproval = false
		return promptForMissing(&pending)
	}

	next.AwaitingApproval = true
	return restateCompleted(&pending)
}

// emit resolves any literal date phrase ("tomorrow") to a concrete
// calendar date at the last possible moment, so earlier prompts could
// echo the user's own wording.
func (e *Engine) emit(pending *PendingAction, now time.Time) *ReadyAction {
	slots := pending.Slots
	if slots.Date != "" && !extract.IsISODate(slots.Date) {
		slots.Date = extract.ResolveDate(slots.Date, now)
	}
	return &ReadyAction{Type: pending.Type, Slots: slots}
}

func promptForMissing(pending *PendingAction) string {
	missing := pending.MissingFields

	switch pending.Type {
	case intent.Reminder:
		var b strings.Builder
		fmt.Fprintf(&b, "I understand you want to set a reminder: %q\n\nI need a few more details:", pending.Slots.Text)
		if hasField(missing, intent.FieldTime) {
			b.WriteString("\n• What time? (e.g., \"3 PM\", \"15:00\")")
		}
		if hasField(missing, intent.FieldDate) {
			b.WriteString("\n• When? (e.g., \"tomorrow\", \"next week\", \"January 15th\")")
		}
		return b.String()

	case intent.Meeting:
		var b strings.Builder
		fmt.Fprintf(&b, "I understand you want to schedule: %q\n\nI need a few more details:", pending.Slots.Text)
		if hasField(missing, intent.FieldTime) {
			b.WriteString("\n• What time?")
		}
		if hasField(missing, intent.FieldDate) {
			b.WriteString("\n• When?")
		}
		return b.String()

	case intent.Priority:
		return fmt.Sprintf("I understand you want to add a priority: %q\n\nWhat priority level? (high, medium, or low)", pending.Slots.Text)

	default:
		return fmt.Sprintf("I understand: %q\n\nCould you give me the missing details (%s)?", pending.Slots.Text, strings.Join(missing, ", "))
	}
}

func askConfirmation(pending *PendingAction) string {
	s := pending.Slots
	switch pending.Type {
	case intent.Reminder:
		return fmt.Sprintf("I'll set a reminder: %q on %s at %s\n\nShould I add this reminder?", s.Text, s.Date, s.Time)
	case intent.Meeting:
		return fmt.Sprintf("I'll schedule: %q on %s at %s\n\nShould I add this meeting?", s.Text, s.Date, s.Time)
	case intent.Priority:
		return fmt.Sprintf("I'll add a priority: %q with %s priority\n\nShould I add this priority?", s.Text, s.Priority)
	default: // task
		return fmt.Sprintf("I understand you want to add a task: %q\n\nShould I add this task?", s.Text)
	}
}

func restateCompleted(pending *PendingAction) string {
	s := pending.Slots
	var b strings.Builder
	fmt.Fprintf(&b, "Perfect! I have: %q", s.Text)
	if s.Date != "" {
		fmt.Fprintf(&b, " on %s", s.Date)
	}
	if s.Time != "" {
		fmt.Fprintf(&b, " at %s", s.Time)
	}
	if s.Priority != "" {
		fmt.Fprintf(&b, " with %s priority", s.Priority)
	}
	fmt.Fprintf(&b, "\n\nShould I add this %s?", pending.Type)
	return b.String()
}

func appendHistory(history []string, utterance, reply string) []string {
	history = append(history, "User: "+utterance, "Assistant: "+reply)
	if len(history) > maxHistoryEntries {
		history = history[len(history)-maxHistoryEntries:]
	}
	// Copy so the returned context does not alias the caller's slice.
	out := make([]string, len(history))
	copy(out, history)
	return out
}

func hasField(fields []string, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}
