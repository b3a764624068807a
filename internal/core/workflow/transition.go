// Package workflow holds the two pure decision components behind the
// submission review flow: the status transition engine and the blocked-date
// resolver. Neither performs I/O; callers fetch the inputs and persist the
// outcomes.
package workflow

import (
	"fmt"

	"github.com/timecove/timesheet-backend/internal/core/domain"
)

// Action identifies a status-changing review action.
type Action string

const (
	ActionManagerApprove            Action = "MANAGER_APPROVE"
	ActionManagerReject             Action = "MANAGER_REJECT"
	ActionAdminPay                  Action = "ADMIN_PAY"
	ActionAdminReject               Action = "ADMIN_REJECT"
	ActionAdminRequestClarification Action = "ADMIN_REQUEST_CLARIFICATION"
)

// TransitionResult reports whether a requested transition is legal. The engine
// never mutates state; the caller performs the persistence update, guarded by a
// conditional write on the expected current status.
type TransitionResult struct {
	Valid     bool
	NewStatus domain.SubmissionStatus
	Err       string
}

// transitionRule describes one row of the transition table.
type transitionRule struct {
	actor    domain.UserRole
	from     domain.SubmissionStatus
	to       domain.SubmissionStatus
	verb     string // used in rejection messages, e.g. "process payment"
	needsMsg bool   // reject/clarify actions require a caller-supplied reason
}

var transitionTable = map[Action]transitionRule{
	ActionManagerApprove: {
		actor: domain.RoleManager,
		from:  domain.StatusSubmitted,
		to:    domain.StatusManagerApproved,
		verb:  "approve",
	},
	ActionManagerReject: {
		actor:    domain.RoleManager,
		from:     domain.StatusSubmitted,
		to:       domain.StatusManagerRejected,
		verb:     "reject",
		needsMsg: true,
	},
	ActionAdminPay: {
		actor: domain.RoleAdmin,
		from:  domain.StatusManagerApproved,
		to:    domain.StatusAdminPaid,
		verb:  "process payment",
	},
	ActionAdminReject: {
		actor:    domain.RoleAdmin,
		from:     domain.StatusManagerApproved,
		to:       domain.StatusAdminRejected,
		verb:     "reject payment",
		needsMsg: true,
	},
	ActionAdminRequestClarification: {
		actor:    domain.RoleAdmin,
		from:     domain.StatusManagerApproved,
		to:       domain.StatusNeedsClarification,
		verb:     "request clarification",
		needsMsg: true,
	},
}

// Validate checks whether action may be applied to a submission currently in
// the given status, carrying an optional reason/comment message. Invalid
// results carry a human-readable error naming the required precondition state.
func Validate(current domain.SubmissionStatus, action Action, message string) TransitionResult {
	rule, ok := transitionTable[action]
	if !ok {
		return TransitionResult{Err: fmt.Sprintf("unknown action %s", action)}
	}
	if rule.needsMsg && message == "" {
		return TransitionResult{Err: fmt.Sprintf("a reason is required to %s", rule.verb)}
	}
	if current != rule.from {
		return TransitionResult{Err: fmt.Sprintf("submission must be %s status to %s", rule.from, rule.verb)}
	}
	return TransitionResult{Valid: true, NewStatus: rule.to}
}

// ActorFor returns the role allowed to perform the action. Unknown actions
// return an empty role.
func ActorFor(action Action) domain.UserRole {
	return transitionTable[action].actor
}

// ManagerApprove validates the SUBMITTED -> MANAGER_APPROVED transition.
// The comment is optional.
func ManagerApprove(current domain.SubmissionStatus) TransitionResult {
	return Validate(current, ActionManagerApprove, "")
}

// ManagerReject validates the SUBMITTED -> MANAGER_REJECTED transition.
// A non-empty reason is required.
func ManagerReject(current domain.SubmissionStatus, reason string) TransitionResult {
	return Validate(current, ActionManagerReject, reason)
}

// AdminPay validates the MANAGER_APPROVED -> ADMIN_PAID transition.
func AdminPay(current domain.SubmissionStatus) TransitionResult {
	return Validate(current, ActionAdminPay, "")
}

// AdminReject validates the MANAGER_APPROVED -> ADMIN_REJECTED transition.
// A non-empty reason is required.
func AdminReject(current domain.SubmissionStatus, reason string) TransitionResult {
	return Validate(current, ActionAdminReject, reason)
}

// AdminRequestClarification validates the MANAGER_APPROVED ->
// NEEDS_CLARIFICATION transition. A non-empty message is required.
func AdminRequestClarification(current domain.SubmissionStatus, message string) TransitionResult {
	return Validate(current, ActionAdminRequestClarification, message)
}

// editableStatuses are the states in which the owning employee may still edit
// or delete a submission.
var editableStatuses = map[domain.SubmissionStatus]bool{
	domain.StatusSubmitted:       true,
	domain.StatusManagerRejected: true,
	domain.StatusAdminRejected:   true,
}

// IsEmployeeEditable reports whether the owning employee may edit a submission
// in the given status.
func IsEmployeeEditable(status domain.SubmissionStatus) bool {
	return editableStatuses[status]
}

// StatusAfterEdit returns the status a submission takes after a successful
// employee edit: a rejected submission resets to SUBMITTED (implicit
// resubmission), everything else keeps its status. The second return value is
// false when the status is not editable at all.
func StatusAfterEdit(current domain.SubmissionStatus) (domain.SubmissionStatus, bool) {
	if !editableStatuses[current] {
		return current, false
	}
	if current == domain.StatusManagerRejected || current == domain.StatusAdminRejected {
		return domain.StatusSubmitted, true
	}
	return current, true
}
