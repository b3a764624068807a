package workflow_test

import (
	"testing"

	"github.com/timecove/timesheet-backend/internal/core/domain"
	"github.com/timecove/timesheet-backend/internal/core/workflow"
	"github.com/stretchr/testify/assert"
)

var allStatuses = []domain.SubmissionStatus{
	domain.StatusSubmitted,
	domain.StatusManagerApproved,
	domain.StatusManagerRejected,
	domain.StatusAdminPaid,
	domain.StatusAdminRejected,
	domain.StatusNeedsClarification,
}

func TestManagerApprove(t *testing.T) {
	for _, status := range allStatuses {
		result := workflow.ManagerApprove(status)
		if status == domain.StatusSubmitted {
			assert.True(t, result.Valid)
			assert.Equal(t, domain.StatusManagerApproved, result.NewStatus)
			assert.Empty(t, result.Err)
		} else {
			assert.False(t, result.Valid, "approve should be invalid from %s", status)
			assert.Equal(t, "submission must be SUBMITTED status to approve", result.Err)
		}
	}
}

func TestManagerReject(t *testing.T) {
	for _, status := range allStatuses {
		result := workflow.ManagerReject(status, "hours do not match the project log")
		if status == domain.StatusSubmitted {
			assert.True(t, result.Valid)
			assert.Equal(t, domain.StatusManagerRejected, result.NewStatus)
		} else {
			assert.False(t, result.Valid, "reject should be invalid from %s", status)
		}
	}
}

func TestManagerRejectRequiresReason(t *testing.T) {
	result := workflow.ManagerReject(domain.StatusSubmitted, "")
	assert.False(t, result.Valid)
	assert.Equal(t, "a reason is required to reject", result.Err)
}

func TestAdminPay(t *testing.T) {
	for _, status := range allStatuses {
		result := workflow.AdminPay(status)
		if status == domain.StatusManagerApproved {
			assert.True(t, result.Valid)
			assert.Equal(t, domain.StatusAdminPaid, result.NewStatus)
		} else {
			assert.False(t, result.Valid, "pay should be invalid from %s", status)
			assert.Equal(t, "submission must be MANAGER_APPROVED status to process payment", result.Err)
		}
	}
}

func TestAdminReject(t *testing.T) {
	for _, status := range allStatuses {
		result := workflow.AdminReject(status, "missing client sign-off")
		if status == domain.StatusManagerApproved {
			assert.True(t, result.Valid)
			assert.Equal(t, domain.StatusAdminRejected, result.NewStatus)
		} else {
			assert.False(t, result.Valid, "admin reject should be invalid from %s", status)
		}
	}
}

func TestAdminRequestClarification(t *testing.T) {
	for _, status := range allStatuses {
		result := workflow.AdminRequestClarification(status, "please split out the on-call hours")
		if status == domain.StatusManagerApproved {
			assert.True(t, result.Valid)
			assert.Equal(t, domain.StatusNeedsClarification, result.NewStatus)
		} else {
			assert.False(t, result.Valid, "clarify should be invalid from %s", status)
		}
	}
}

func TestAdminActionsRequireMessage(t *testing.T) {
	reject := workflow.AdminReject(domain.StatusManagerApproved, "")
	assert.False(t, reject.Valid)
	assert.Equal(t, "a reason is required to reject payment", reject.Err)

	clarify := workflow.AdminRequestClarification(domain.StatusManagerApproved, "")
	assert.False(t, clarify.Valid)
	assert.Equal(t, "a reason is required to request clarification", clarify.Err)
}

func TestValidateUnknownAction(t *testing.T) {
	result := workflow.Validate(domain.StatusSubmitted, workflow.Action("EMPLOYEE_APPROVE"), "")
	assert.False(t, result.Valid)
	assert.NotEmpty(t, result.Err)
}

func TestActorFor(t *testing.T) {
	assert.Equal(t, domain.RoleManager, workflow.ActorFor(workflow.ActionManagerApprove))
	assert.Equal(t, domain.RoleManager, workflow.ActorFor(workflow.ActionManagerReject))
	assert.Equal(t, domain.RoleAdmin, workflow.ActorFor(workflow.ActionAdminPay))
	assert.Equal(t, domain.RoleAdmin, workflow.ActorFor(workflow.ActionAdminReject))
	assert.Equal(t, domain.RoleAdmin, workflow.ActorFor(workflow.ActionAdminRequestClarification))
}

func TestIsEmployeeEditable(t *testing.T) {
	editable := map[domain.SubmissionStatus]bool{
		domain.StatusSubmitted:       true,
		domain.StatusManagerRejected: true,
		domain.StatusAdminRejected:   true,
	}
	for _, status := range allStatuses {
		assert.Equal(t, editable[status], workflow.IsEmployeeEditable(status), "editability of %s", status)
	}
}

func TestStatusAfterEdit(t *testing.T) {
	tests := []struct {
		current    domain.SubmissionStatus
		wantStatus domain.SubmissionStatus
		wantOK     bool
	}{
		{domain.StatusSubmitted, domain.StatusSubmitted, true},
		{domain.StatusManagerRejected, domain.StatusSubmitted, true},
		{domain.StatusAdminRejected, domain.StatusSubmitted, true},
		{domain.StatusManagerApproved, domain.StatusManagerApproved, false},
		{domain.StatusAdminPaid, domain.StatusAdminPaid, false},
		{domain.StatusNeedsClarification, domain.StatusNeedsClarification, false},
	}
	for _, tc := range tests {
		got, ok := workflow.StatusAfterEdit(tc.current)
		assert.Equal(t, tc.wantOK, ok, "editable from %s", tc.current)
		assert.Equal(t, tc.wantStatus, got, "status after edit from %s", tc.current)
	}
}
