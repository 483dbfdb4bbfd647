package model

import (
	"encoding/json"
	"fmt"
)

// ChecklistItemState is the day-scoped completion state of an item.
// Pending is the only non-terminal state; Done and IgnoredToday revert to
// Pending only via a reset.
type ChecklistItemState string

const (
	StatePending      ChecklistItemState = "Pending"
	StateDone         ChecklistItemState = "Done"
	StateIgnoredToday ChecklistItemState = "IgnoredToday"
)

// stateWire is the tagged-object wire form, e.g. {"type":"Done"}.
type stateWire struct {
	Type string `json:"type"`
}

// MarshalJSON encodes the state as a discriminated object.
func (s ChecklistItemState) MarshalJSON() ([]byte, error) {
	return json.Marshal(stateWire{Type: string(s)})
}

// UnmarshalJSON decodes the discriminated object form, ignoring unknown
// sibling fields.
func (s *ChecklistItemState) UnmarshalJSON(data []byte) error {
	var w stateWire
	if err := json.Unmarshal(data, &w); err != nil {
		return fmt.Errorf("decoding item state: %w", err)
	}
	switch ChecklistItemState(w.Type) {
	case StatePending, StateDone, StateIgnoredToday:
		*s = ChecklistItemState(w.Type)
		return nil
	default:
		return fmt.Errorf("unknown item state %q", w.Type)
	}
}
