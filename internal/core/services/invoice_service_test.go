package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/timecove/timesheet-backend/internal/apperrors"
	"github.com/timecove/timesheet-backend/internal/core/domain"
	portssvc "github.com/timecove/timesheet-backend/internal/core/ports/services"
	"github.com/timecove/timesheet-backend/internal/core/services"
)

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	var invoice *domain.Invoice
	if args.Get(0) != nil {
		invoice = args.Get(0).(*domain.Invoice)
	}
	return invoice, args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoicesByEmployee(ctx context.Context, employeeID string, limit int, offset int) ([]domain.Invoice, error) {
	args := m.Called(ctx, employeeID, limit, offset)
	var invoices []domain.Invoice
	if args.Get(0) != nil {
		invoices = args.Get(0).([]domain.Invoice)
	}
	return invoices, args.Error(1)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, limit int, offset int) ([]domain.Invoice, error) {
	args := m.Called(ctx, limit, offset)
	var invoices []domain.Invoice
	if args.Get(0) != nil {
		invoices = args.Get(0).([]domain.Invoice)
	}
	return invoices, args.Error(1)
}

func (m *MockInvoiceRepository) CountInvoicesForMonth(ctx context.Context, month string) (int, error) {
	args := m.Called(ctx, month)
	return args.Int(0), args.Error(1)
}

func (m *MockInvoiceRepository) SaveInvoiceInTx(ctx context.Context, tx pgx.Tx, invoice domain.Invoice) error {
	args := m.Called(ctx, tx, invoice)
	return args.Error(0)
}

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindProfileByUserID(ctx context.Context, userID string) (*domain.EmployeeProfile, error) {
	args := m.Called(ctx, userID)
	var profile *domain.EmployeeProfile
	if args.Get(0) != nil {
		profile = args.Get(0).(*domain.EmployeeProfile)
	}
	return profile, args.Error(1)
}

func (m *MockEmployeeRepository) FindProfilesByManager(ctx context.Context, managerUserID string) ([]domain.EmployeeProfile, error) {
	args := m.Called(ctx, managerUserID)
	var profiles []domain.EmployeeProfile
	if args.Get(0) != nil {
		profiles = args.Get(0).([]domain.EmployeeProfile)
	}
	return profiles, args.Error(1)
}

func (m *MockEmployeeRepository) SaveProfile(ctx context.Context, profile domain.EmployeeProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockEmployeeRepository) UpdateProfile(ctx context.Context, profile domain.EmployeeProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

// --- Test Suite ---
type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo  *MockInvoiceRepository
	mockEmployeeRepo *MockEmployeeRepository
	service          portssvc.InvoiceSvcFacade
	employeeID       string
	adminID          string
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.service = services.NewInvoiceService(suite.mockInvoiceRepo, suite.mockEmployeeRepo, "USD")
	suite.employeeID = uuid.NewString()
	suite.adminID = uuid.NewString()
}

func (suite *InvoiceServiceTestSuite) approvedSubmission() domain.Submission {
	return domain.Submission{
		SubmissionID:   uuid.NewString(),
		EmployeeID:     suite.employeeID,
		SubmissionDate: "2025-07-15",
		HoursSubmitted: decimal.NewFromInt(160),
		OvertimeHours:  decimal.NewFromInt(10),
		Status:         domain.StatusManagerApproved,
	}
}

// --- BuildForSubmission Tests ---

func (suite *InvoiceServiceTestSuite) TestBuildForSubmission_Success() {
	ctx := context.Background()
	sub := suite.approvedSubmission()
	profile := &domain.EmployeeProfile{
		UserID:       suite.employeeID,
		HourlyRate:   decimal.NewFromInt(50),
		CurrencyCode: "EUR",
	}

	suite.mockEmployeeRepo.On("FindProfileByUserID", ctx, suite.employeeID).
		Return(profile, nil).Once()
	suite.mockInvoiceRepo.On("CountInvoicesForMonth", ctx, "2025-07").
		Return(41, nil).Once()

	invoice, err := suite.service.BuildForSubmission(ctx, sub, suite.adminID)

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	// 160h * 50 = 8000 regular, 10h * 50 * 1.5 = 750 overtime
	suite.Equal(sub.SubmissionID, invoice.SubmissionID)
	suite.Equal("INV-2025-07-0042", invoice.InvoiceNumber)
	suite.True(invoice.RegularAmount.Equal(decimal.NewFromInt(8000)))
	suite.True(invoice.OvertimeAmount.Equal(decimal.NewFromInt(750)))
	suite.True(invoice.TotalAmount.Equal(decimal.NewFromInt(8750)))
	suite.Equal("EUR", invoice.CurrencyCode)
	suite.Equal(suite.adminID, invoice.CreatedBy)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestBuildForSubmission_FallsBackToDefaultCurrency() {
	ctx := context.Background()
	sub := suite.approvedSubmission()
	profile := &domain.EmployeeProfile{
		UserID:     suite.employeeID,
		HourlyRate: decimal.NewFromInt(50),
	}

	suite.mockEmployeeRepo.On("FindProfileByUserID", ctx, suite.employeeID).
		Return(profile, nil).Once()
	suite.mockInvoiceRepo.On("CountInvoicesForMonth", ctx, "2025-07").
		Return(0, nil).Once()

	invoice, err := suite.service.BuildForSubmission(ctx, sub, suite.adminID)

	suite.Require().NoError(err)
	suite.Equal("USD", invoice.CurrencyCode)
	suite.Equal("INV-2025-07-0001", invoice.InvoiceNumber)
}

func (suite *InvoiceServiceTestSuite) TestBuildForSubmission_NoProfile() {
	ctx := context.Background()
	sub := suite.approvedSubmission()

	suite.mockEmployeeRepo.On("FindProfileByUserID", ctx, suite.employeeID).
		Return(nil, apperrors.ErrNotFound).Once()

	invoice, err := suite.service.BuildForSubmission(ctx, sub, suite.adminID)

	suite.Require().Error(err)
	suite.Nil(invoice)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "CountInvoicesForMonth", mock.Anything, mock.Anything)
}

// --- Read Scoping Tests ---

func (suite *InvoiceServiceTestSuite) TestGetInvoiceByID_EmployeeCannotSeeOthers() {
	ctx := context.Background()
	invoice := &domain.Invoice{InvoiceID: uuid.NewString(), EmployeeID: suite.employeeID}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoice.InvoiceID).
		Return(invoice, nil).Once()

	got, err := suite.service.GetInvoiceByID(ctx, invoice.InvoiceID, uuid.NewString(), domain.RoleEmployee)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_AdminSeesAll() {
	ctx := context.Background()

	suite.mockInvoiceRepo.On("ListInvoices", ctx, 20, 0).
		Return([]domain.Invoice{{InvoiceID: uuid.NewString()}}, nil).Once()

	invoices, err := suite.service.ListInvoices(ctx, suite.adminID, domain.RoleAdmin, 20, 0)

	suite.Require().NoError(err)
	suite.Len(invoices, 1)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "ListInvoicesByEmployee", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_EmployeeScopedToOwn() {
	ctx := context.Background()

	suite.mockInvoiceRepo.On("ListInvoicesByEmployee", ctx, suite.employeeID, 20, 0).
		Return(nil, nil).Once()

	invoices, err := suite.service.ListInvoices(ctx, suite.employeeID, domain.RoleEmployee, 20, 0)

	suite.Require().NoError(err)
	suite.NotNil(invoices)
	suite.Empty(invoices)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
