package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/timecove/timesheet-backend/internal/apperrors"
	"github.com/timecove/timesheet-backend/internal/core/domain"
	portsrepo "github.com/timecove/timesheet-backend/internal/core/ports/repositories"
	portssvc "github.com/timecove/timesheet-backend/internal/core/ports/services"
	"github.com/timecove/timesheet-backend/internal/core/workflow"
	"github.com/timecove/timesheet-backend/internal/dto"
	"github.com/timecove/timesheet-backend/internal/utils/pagination"
)

type submissionService struct {
	BaseService
	submissionRepo portsrepo.SubmissionRepositoryFacade
	employeeSvc    portssvc.EmployeeSvcFacade
	blockedDateSvc portssvc.BlockedDateSvc
	invoiceSvc     portssvc.InvoiceIssuerSvc
}

// NewSubmissionService creates a new submission service instance.
func NewSubmissionService(
	submissionRepo portsrepo.SubmissionRepositoryFacade,
	employeeSvc portssvc.EmployeeSvcFacade,
	blockedDateSvc portssvc.BlockedDateSvc,
	invoiceSvc portssvc.InvoiceIssuerSvc,
) portssvc.SubmissionSvcFacade {
	return &submissionService{
		submissionRepo: submissionRepo,
		employeeSvc:    employeeSvc,
		blockedDateSvc: blockedDateSvc,
		invoiceSvc:     invoiceSvc,
	}
}

var _ portssvc.SubmissionSvcFacade = (*submissionService)(nil)

func (s *submissionService) GetSubmissionByID(ctx context.Context, submissionID string, requestingUserID string, role domain.UserRole) (*domain.Submission, error) {
	sub, err := s.submissionRepo.FindSubmissionByID(ctx, submissionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find submission", "submission_id", submissionID)
		}
		return nil, err
	}

	if !canViewSubmission(sub, requestingUserID, role) {
		return nil, apperrors.ErrForbidden
	}
	return sub, nil
}

// canViewSubmission: the owner, the assigned manager and admins may see a
// submission; everyone else gets ErrForbidden rather than ErrNotFound so the
// caller knows the ID was valid but out of reach.
func canViewSubmission(sub *domain.Submission, userID string, role domain.UserRole) bool {
	if role == domain.RoleAdmin {
		return true
	}
	if sub.EmployeeID == userID {
		return true
	}
	if role == domain.RoleManager && sub.ManagerID != nil && *sub.ManagerID == userID {
		return true
	}
	return false
}

func (s *submissionService) ListOwnSubmissions(ctx context.Context, employeeID string, limit int, pageToken string) ([]domain.Submission, string, error) {
	if limit <= 0 {
		limit = 20
	}

	var afterDate string
	var afterCreatedAt time.Time
	if pageToken != "" {
		var err error
		afterDate, afterCreatedAt, err = pagination.DecodeToken(pageToken)
		if err != nil {
			return nil, "", apperrors.NewValidationError("invalid page token")
		}
	}

	// Fetch one extra row to learn whether another page exists.
	subs, err := s.submissionRepo.ListSubmissionsByEmployee(ctx, employeeID, limit+1, afterDate, afterCreatedAt)
	if err != nil {
		s.LogError(ctx, err, "Failed to list submissions for employee", "employee_id", employeeID)
		return nil, "", fmt.Errorf("failed to list submissions: %w", err)
	}
	if subs == nil {
		return []domain.Submission{}, "", nil
	}

	var nextToken string
	if len(subs) > limit {
		subs = subs[:limit]
		last := subs[len(subs)-1]
		nextToken = pagination.EncodeToken(last.SubmissionDate, last.CreatedAt)
	}
	return subs, nextToken, nil
}

func (s *submissionService) ListTeamSubmissions(ctx context.Context, managerID string, limit, offset int) ([]domain.Submission, error) {
	subs, err := s.submissionRepo.ListSubmissionsByManager(ctx, managerID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list submissions for manager", "manager_id", managerID)
		return nil, fmt.Errorf("failed to list team submissions: %w", err)
	}
	if subs == nil {
		return []domain.Submission{}, nil
	}
	return subs, nil
}

func (s *submissionService) ListMonthSubmissions(ctx context.Context, month string) ([]domain.Submission, error) {
	subs, err := s.submissionRepo.ListSubmissionsByMonth(ctx, month)
	if err != nil {
		s.LogError(ctx, err, "Failed to list submissions for month", "month", month)
		return nil, fmt.Errorf("failed to list month submissions: %w", err)
	}
	if subs == nil {
		return []domain.Submission{}, nil
	}
	return subs, nil
}

func (s *submissionService) CreateSubmission(ctx context.Context, employeeID string, req dto.CreateSubmissionRequest) (*domain.Submission, error) {
	date, ok := workflow.NormalizeDate(req.SubmissionDate)
	if !ok {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid submission date: %s", req.SubmissionDate))
	}
	if err := validateHours(req.HoursSubmitted, req.OvertimeHours, req.OvertimeDesc); err != nil {
		return nil, err
	}

	month := date[:7]
	if _, err := s.submissionRepo.FindSubmissionByEmployeeAndMonth(ctx, employeeID, month); err == nil {
		return nil, fmt.Errorf("%w: a submission already exists for %s", apperrors.ErrDuplicate, month)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	employeeCtx, err := s.employeeSvc.GetContext(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	if check := s.blockedDateSvc.CheckSubmissionDate(ctx, employeeCtx, date); check.HasBlockedDates {
		return nil, apperrors.NewBlockedDatesError(check.BlockedDates)
	}

	// Snapshot the manager at creation time so later team reassignments don't
	// reroute in-flight reviews.
	var managerID *string
	if profile, err := s.employeeSvc.GetProfile(ctx, employeeID); err == nil {
		managerID = profile.ManagerUserID
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	now := time.Now()
	sub := domain.Submission{
		SubmissionID:   uuid.NewString(),
		EmployeeID:     employeeID,
		ManagerID:      managerID,
		SubmissionDate: date,
		HoursSubmitted: req.HoursSubmitted,
		OvertimeHours:  req.OvertimeHours,
		Description:    req.Description,
		OvertimeDesc:   req.OvertimeDesc,
		Status:         domain.StatusSubmitted,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     employeeID,
			LastUpdatedAt: now,
			LastUpdatedBy: employeeID,
		},
	}

	if err := s.submissionRepo.SaveSubmission(ctx, sub); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save submission", "employee_id", employeeID)
		}
		return nil, err
	}

	s.LogInfo(ctx, "Submission created", "submission_id", sub.SubmissionID, "employee_id", employeeID, "month", month)
	return &sub, nil
}

func (s *submissionService) UpdateSubmission(ctx context.Context, submissionID string, employeeID string, req dto.UpdateSubmissionRequest) (*domain.Submission, error) {
	sub, err := s.submissionRepo.FindSubmissionByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if sub.EmployeeID != employeeID {
		return nil, apperrors.ErrForbidden
	}

	newStatus, editable := workflow.StatusAfterEdit(sub.Status)
	if !editable {
		return nil, apperrors.NewValidationError(fmt.Sprintf("submission in %s status can no longer be edited", sub.Status))
	}

	if req.SubmissionDate != nil {
		date, ok := workflow.NormalizeDate(*req.SubmissionDate)
		if !ok {
			return nil, apperrors.NewValidationError(fmt.Sprintf("invalid submission date: %s", *req.SubmissionDate))
		}
		// Moving to a different month re-triggers the one-per-month check.
		if date[:7] != sub.Month() {
			if _, err := s.submissionRepo.FindSubmissionByEmployeeAndMonth(ctx, employeeID, date[:7]); err == nil {
				return nil, fmt.Errorf("%w: a submission already exists for %s", apperrors.ErrDuplicate, date[:7])
			} else if !errors.Is(err, apperrors.ErrNotFound) {
				return nil, err
			}
		}
		sub.SubmissionDate = date
	}
	if req.HoursSubmitted != nil {
		sub.HoursSubmitted = *req.HoursSubmitted
	}
	if req.OvertimeHours != nil {
		sub.OvertimeHours = *req.OvertimeHours
	}
	if req.Description != nil {
		sub.Description = *req.Description
	}
	if req.OvertimeDesc != nil {
		sub.OvertimeDesc = *req.OvertimeDesc
	}
	if err := validateHours(sub.HoursSubmitted, sub.OvertimeHours, sub.OvertimeDesc); err != nil {
		return nil, err
	}

	employeeCtx, err := s.employeeSvc.GetContext(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if check := s.blockedDateSvc.CheckSubmissionDate(ctx, employeeCtx, sub.SubmissionDate); check.HasBlockedDates {
		return nil, apperrors.NewBlockedDatesError(check.BlockedDates)
	}

	// An edit to a rejected submission is an implicit resubmission.
	sub.Status = newStatus
	sub.LastUpdatedAt = time.Now()
	sub.LastUpdatedBy = employeeID

	if err := s.submissionRepo.UpdateSubmission(ctx, *sub); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to update submission", "submission_id", submissionID)
		}
		return nil, err
	}

	s.LogInfo(ctx, "Submission updated", "submission_id", submissionID, "status", string(sub.Status))
	return sub, nil
}

func (s *submissionService) DeleteSubmission(ctx context.Context, submissionID string, employeeID string) error {
	sub, err := s.submissionRepo.FindSubmissionByID(ctx, submissionID)
	if err != nil {
		return err
	}
	if sub.EmployeeID != employeeID {
		return apperrors.ErrForbidden
	}
	if !workflow.IsEmployeeEditable(sub.Status) {
		return apperrors.NewValidationError(fmt.Sprintf("submission in %s status can no longer be deleted", sub.Status))
	}

	if err := s.submissionRepo.DeleteSubmission(ctx, submissionID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete submission", "submission_id", submissionID)
		}
		return err
	}

	s.LogInfo(ctx, "Submission deleted", "submission_id", submissionID)
	return nil
}

func (s *submissionService) ManagerApprove(ctx context.Context, submissionID string, managerID string, comment string) (*domain.Submission, error) {
	return s.applyManagerAction(ctx, submissionID, managerID, workflow.ActionManagerApprove, comment)
}

func (s *submissionService) ManagerReject(ctx context.Context, submissionID string, managerID string, reason string) (*domain.Submission, error) {
	return s.applyManagerAction(ctx, submissionID, managerID, workflow.ActionManagerReject, reason)
}

func (s *submissionService) applyManagerAction(ctx context.Context, submissionID, managerID string, action workflow.Action, message string) (*domain.Submission, error) {
	sub, err := s.submissionRepo.FindSubmissionByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}
	if sub.ManagerID == nil || *sub.ManagerID != managerID {
		return nil, apperrors.ErrForbidden
	}

	result := workflow.Validate(sub.Status, action, message)
	if !result.Valid {
		return nil, apperrors.NewValidationError(result.Err)
	}

	update := domain.StatusTransitionUpdate{
		SubmissionID:   submissionID,
		ExpectedStatus: sub.Status,
		NewStatus:      result.NewStatus,
		ActedBy:        managerID,
		ActedAt:        time.Now(),
	}
	if message != "" {
		update.ManagerComment = &message
	}

	return s.applyTransition(ctx, sub, update)
}

func (s *submissionService) AdminProcessPayment(ctx context.Context, submissionID string, adminID string, reference string) (*domain.Submission, error) {
	sub, err := s.submissionRepo.FindSubmissionByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	result := workflow.AdminPay(sub.Status)
	if !result.Valid {
		return nil, apperrors.NewValidationError(result.Err)
	}

	invoice, err := s.invoiceSvc.BuildForSubmission(ctx, *sub, adminID)
	if err != nil {
		s.LogError(ctx, err, "Failed to build invoice for submission", "submission_id", submissionID)
		return nil, err
	}

	update := domain.StatusTransitionUpdate{
		SubmissionID:   submissionID,
		ExpectedStatus: sub.Status,
		NewStatus:      result.NewStatus,
		ActedBy:        adminID,
		ActedAt:        time.Now(),
		InvoiceID:      &invoice.InvoiceID,
	}
	if reference != "" {
		update.AdminComment = &reference
	}

	// Invoice insert and status write share one transaction: a stale status
	// rolls both back, so a lost race persists nothing.
	if err := s.submissionRepo.SaveInvoiceAndMarkPaid(ctx, *invoice, update); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.LogWarn(ctx, "Payment raced with another transition, nothing was written",
				"submission_id", submissionID)
		} else {
			s.LogError(ctx, err, "Failed to process payment", "submission_id", submissionID)
		}
		return nil, err
	}

	s.LogInfo(ctx, "Payment processed", "submission_id", submissionID, "invoice_id", invoice.InvoiceID)
	return materializeTransition(sub, update), nil
}

func (s *submissionService) AdminReject(ctx context.Context, submissionID string, adminID string, reason string) (*domain.Submission, error) {
	return s.applyAdminAction(ctx, submissionID, adminID, workflow.ActionAdminReject, reason)
}

func (s *submissionService) AdminRequestClarification(ctx context.Context, submissionID string, adminID string, message string) (*domain.Submission, error) {
	return s.applyAdminAction(ctx, submissionID, adminID, workflow.ActionAdminRequestClarification, message)
}

func (s *submissionService) applyAdminAction(ctx context.Context, submissionID, adminID string, action workflow.Action, message string) (*domain.Submission, error) {
	sub, err := s.submissionRepo.FindSubmissionByID(ctx, submissionID)
	if err != nil {
		return nil, err
	}

	result := workflow.Validate(sub.Status, action, message)
	if !result.Valid {
		return nil, apperrors.NewValidationError(result.Err)
	}

	update := domain.StatusTransitionUpdate{
		SubmissionID:   submissionID,
		ExpectedStatus: sub.Status,
		NewStatus:      result.NewStatus,
		ActedBy:        adminID,
		ActedAt:        time.Now(),
	}
	if message != "" {
		update.AdminComment = &message
	}

	return s.applyTransition(ctx, sub, update)
}

// applyTransition performs the conditional status write and returns the
// submission with the transition applied.
func (s *submissionService) applyTransition(ctx context.Context, sub *domain.Submission, update domain.StatusTransitionUpdate) (*domain.Submission, error) {
	if err := s.submissionRepo.UpdateSubmissionStatus(ctx, update); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) {
			s.LogError(ctx, err, "Failed to apply status transition", "submission_id", update.SubmissionID)
		}
		return nil, err
	}

	s.LogInfo(ctx, "Submission status changed", "submission_id", sub.SubmissionID, "status", string(update.NewStatus))
	return materializeTransition(sub, update), nil
}

// materializeTransition mirrors a persisted status update onto the in-memory
// submission so handlers can respond without a re-read.
func materializeTransition(sub *domain.Submission, update domain.StatusTransitionUpdate) *domain.Submission {
	sub.Status = update.NewStatus
	sub.ActedBy = &update.ActedBy
	sub.ActedAt = &update.ActedAt
	if update.ManagerComment != nil {
		sub.ManagerComment = *update.ManagerComment
	}
	if update.AdminComment != nil {
		sub.AdminComment = *update.AdminComment
	}
	if update.InvoiceID != nil {
		sub.InvoiceID = update.InvoiceID
	}
	sub.LastUpdatedAt = update.ActedAt
	sub.LastUpdatedBy = update.ActedBy
	return sub
}

// validateHours enforces the hour constraints shared by create and update:
// positive regular hours, non-negative overtime, and an overtime description
// whenever overtime hours are claimed. A stray description without overtime
// hours is harmless and passes through.
func validateHours(hours, overtime decimal.Decimal, overtimeDesc string) error {
	if !hours.IsPositive() {
		return apperrors.NewValidationError("hours submitted must be greater than zero")
	}
	if overtime.IsNegative() {
		return apperrors.NewValidationError("overtime hours must not be negative")
	}
	if overtime.IsPositive() && overtimeDesc == "" {
		return apperrors.NewValidationError("an overtime description is required when overtime hours are submitted")
	}
	return nil
}
