package command

import "github.com/pyanpyan/routinely/internal/model"

// ResetDailyState reverts every item of a checklist to Pending. It is
// unconditional: there is nothing to validate and it cannot fail.
type ResetDailyState struct{}

// Execute returns the checklist with all items reset.
func (ResetDailyState) Execute(checklist model.Checklist) model.Checklist {
	return checklist.ResetAllItems()
}
