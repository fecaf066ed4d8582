package dialogue

import "lifemind-be/pkg/dialogue/intent"

// PendingAction is the unit of conversational memory: the action being
// assembled across turns, which fields were defaulted rather than
// user-supplied, and what kind of item it will become once confirmed.
type PendingAction struct {
	Type          intent.Intent `json:"type"`
	Slots         intent.Slots  `json:"data"`
	MissingFields []string      `json:"missing_fields,omitempty"`
}

// Context is the full per-conversation state. It is a plain serializable
// value: the engine never stores it, the caller threads it through every
// turn and persists it between turns.
//
// Invariant: AwaitingApproval implies PendingAction is present with an
// empty MissingFields list.
type Context struct {
	AwaitingApproval bool           `json:"awaiting_approval"`
	PendingAction    *PendingAction `json:"pending_action,omitempty"`
	History          []string       `json:"conversation_history,omitempty"`
}

// ReadyAction is a confirmed action handed to the caller for persistence.
// Reminder and meeting actions carry Date and Time; priority actions
// carry Priority; every action carries Text.
type ReadyAction struct {
	Type  intent.Intent `json:"type"`
	Slots intent.Slots  `json:"data"`
}

// Result is the outcome of one conversational turn. Ready is nil unless
// the user just confirmed the pending action.
type Result struct {
	Reply string
	Next  Context
	Ready *ReadyAction
}
