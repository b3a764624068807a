package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/timecove/timesheet-backend/internal/apperrors"
	"github.com/timecove/timesheet-backend/internal/core/domain"
	portsrepo "github.com/timecove/timesheet-backend/internal/core/ports/repositories"
	portssvc "github.com/timecove/timesheet-backend/internal/core/ports/services"
	"github.com/timecove/timesheet-backend/internal/utils/billing"
)

type invoiceService struct {
	BaseService
	invoiceRepo         portsrepo.InvoiceRepositoryFacade
	employeeRepo        portsrepo.EmployeeRepositoryFacade
	defaultCurrencyCode string
}

// NewInvoiceService creates a new invoice service instance.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryFacade, employeeRepo portsrepo.EmployeeRepositoryFacade, defaultCurrencyCode string) portssvc.InvoiceSvcFacade {
	return &invoiceService{
		invoiceRepo:         invoiceRepo,
		employeeRepo:        employeeRepo,
		defaultCurrencyCode: defaultCurrencyCode,
	}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string, requestingUserID string, role domain.UserRole) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find invoice", "invoice_id", invoiceID)
		}
		return nil, err
	}

	if role != domain.RoleAdmin && invoice.EmployeeID != requestingUserID {
		return nil, apperrors.ErrForbidden
	}
	return invoice, nil
}

func (s *invoiceService) ListInvoices(ctx context.Context, requestingUserID string, role domain.UserRole, limit, offset int) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	var err error
	if role == domain.RoleAdmin {
		invoices, err = s.invoiceRepo.ListInvoices(ctx, limit, offset)
	} else {
		invoices, err = s.invoiceRepo.ListInvoicesByEmployee(ctx, requestingUserID, limit, offset)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to list invoices")
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	if invoices == nil {
		return []domain.Invoice{}, nil
	}
	return invoices, nil
}

// BuildForSubmission prices a submission off the employee's hourly rate and
// constructs the invoice. Overtime is billed at the standard multiplier. The
// submission repository persists the invoice inside the payment transaction.
func (s *invoiceService) BuildForSubmission(ctx context.Context, submission domain.Submission, adminID string) (*domain.Invoice, error) {
	profile, err := s.employeeRepo.FindProfileByUserID(ctx, submission.EmployeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("employee %s has no profile, cannot price the submission", submission.EmployeeID))
		}
		return nil, err
	}

	amounts := billing.CalculateInvoiceAmounts(submission.HoursSubmitted, submission.OvertimeHours, profile.HourlyRate)

	currency := profile.CurrencyCode
	if currency == "" {
		currency = s.defaultCurrencyCode
	}

	month := submission.Month()
	number, err := s.nextInvoiceNumber(ctx, month)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	invoice := domain.Invoice{
		InvoiceID:      uuid.NewString(),
		SubmissionID:   submission.SubmissionID,
		EmployeeID:     submission.EmployeeID,
		InvoiceNumber:  number,
		RegularAmount:  amounts.Regular,
		OvertimeAmount: amounts.Overtime,
		TotalAmount:    amounts.Total,
		CurrencyCode:   currency,
		IssuedAt:       now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     adminID,
			LastUpdatedAt: now,
			LastUpdatedBy: adminID,
		},
	}

	s.LogInfo(ctx, "Invoice built", "invoice_id", invoice.InvoiceID, "invoice_number", invoice.InvoiceNumber)
	return &invoice, nil
}

// nextInvoiceNumber builds the sequential per-month invoice number, e.g.
// INV-2025-07-0042.
func (s *invoiceService) nextInvoiceNumber(ctx context.Context, month string) (string, error) {
	count, err := s.invoiceRepo.CountInvoicesForMonth(ctx, month)
	if err != nil {
		return "", fmt.Errorf("failed to determine next invoice number: %w", err)
	}
	return fmt.Sprintf("INV-%s-%04d", month, count+1), nil
}
