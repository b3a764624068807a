package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/timecove/timesheet-backend/internal/apperrors"
	"github.com/timecove/timesheet-backend/internal/core/domain"
	portssvc "github.com/timecove/timesheet-backend/internal/core/ports/services"
	"github.com/timecove/timesheet-backend/internal/core/services"
	"github.com/timecove/timesheet-backend/internal/core/workflow"
	"github.com/timecove/timesheet-backend/internal/dto"
	"github.com/timecove/timesheet-backend/internal/utils/pagination"
)

// --- Mock SubmissionRepository ---
type MockSubmissionRepository struct {
	mock.Mock
}

func (m *MockSubmissionRepository) FindSubmissionByID(ctx context.Context, submissionID string) (*domain.Submission, error) {
	args := m.Called(ctx, submissionID)
	var sub *domain.Submission
	if args.Get(0) != nil {
		sub = args.Get(0).(*domain.Submission)
	}
	return sub, args.Error(1)
}

func (m *MockSubmissionRepository) FindSubmissionByEmployeeAndMonth(ctx context.Context, employeeID string, month string) (*domain.Submission, error) {
	args := m.Called(ctx, employeeID, month)
	var sub *domain.Submission
	if args.Get(0) != nil {
		sub = args.Get(0).(*domain.Submission)
	}
	return sub, args.Error(1)
}

func (m *MockSubmissionRepository) ListSubmissionsByEmployee(ctx context.Context, employeeID string, limit int, afterDate string, afterCreatedAt time.Time) ([]domain.Submission, error) {
	args := m.Called(ctx, employeeID, limit, afterDate, afterCreatedAt)
	var subs []domain.Submission
	if args.Get(0) != nil {
		subs = args.Get(0).([]domain.Submission)
	}
	return subs, args.Error(1)
}

func (m *MockSubmissionRepository) ListSubmissionsByManager(ctx context.Context, managerID string, limit int, offset int) ([]domain.Submission, error) {
	args := m.Called(ctx, managerID, limit, offset)
	var subs []domain.Submission
	if args.Get(0) != nil {
		subs = args.Get(0).([]domain.Submission)
	}
	return subs, args.Error(1)
}

func (m *MockSubmissionRepository) ListSubmissionsByMonth(ctx context.Context, month string) ([]domain.Submission, error) {
	args := m.Called(ctx, month)
	var subs []domain.Submission
	if args.Get(0) != nil {
		subs = args.Get(0).([]domain.Submission)
	}
	return subs, args.Error(1)
}

func (m *MockSubmissionRepository) SaveSubmission(ctx context.Context, submission domain.Submission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockSubmissionRepository) UpdateSubmission(ctx context.Context, submission domain.Submission) error {
	args := m.Called(ctx, submission)
	return args.Error(0)
}

func (m *MockSubmissionRepository) SaveInvoiceAndMarkPaid(ctx context.Context, invoice domain.Invoice, transition domain.StatusTransitionUpdate) error {
	args := m.Called(ctx, invoice, transition)
	return args.Error(0)
}

func (m *MockSubmissionRepository) UpdateSubmissionStatus(ctx context.Context, transition domain.StatusTransitionUpdate) error {
	args := m.Called(ctx, transition)
	return args.Error(0)
}

func (m *MockSubmissionRepository) DeleteSubmission(ctx context.Context, submissionID string) error {
	args := m.Called(ctx, submissionID)
	return args.Error(0)
}

// --- Mock EmployeeService ---
type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) GetProfile(ctx context.Context, userID string) (*domain.EmployeeProfile, error) {
	args := m.Called(ctx, userID)
	var profile *domain.EmployeeProfile
	if args.Get(0) != nil {
		profile = args.Get(0).(*domain.EmployeeProfile)
	}
	return profile, args.Error(1)
}

func (m *MockEmployeeService) GetContext(ctx context.Context, userID string) (domain.EmployeeContext, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.EmployeeContext), args.Error(1)
}

func (m *MockEmployeeService) ListTeam(ctx context.Context, managerUserID string) ([]domain.EmployeeProfile, error) {
	args := m.Called(ctx, managerUserID)
	var team []domain.EmployeeProfile
	if args.Get(0) != nil {
		team = args.Get(0).([]domain.EmployeeProfile)
	}
	return team, args.Error(1)
}

func (m *MockEmployeeService) UpsertProfile(ctx context.Context, userID string, req dto.UpsertEmployeeProfileRequest, requestingUserID string) (*domain.EmployeeProfile, error) {
	args := m.Called(ctx, userID, req, requestingUserID)
	var profile *domain.EmployeeProfile
	if args.Get(0) != nil {
		profile = args.Get(0).(*domain.EmployeeProfile)
	}
	return profile, args.Error(1)
}

// --- Mock BlockedDateService ---
type MockBlockedDateService struct {
	mock.Mock
}

func (m *MockBlockedDateService) BlockedDatesInRange(ctx context.Context, employeeCtx domain.EmployeeContext, from, to string) ([]workflow.BlockedDate, error) {
	args := m.Called(ctx, employeeCtx, from, to)
	var blocked []workflow.BlockedDate
	if args.Get(0) != nil {
		blocked = args.Get(0).([]workflow.BlockedDate)
	}
	return blocked, args.Error(1)
}

func (m *MockBlockedDateService) CheckSubmissionDate(ctx context.Context, employeeCtx domain.EmployeeContext, date string) workflow.DateCheckResult {
	args := m.Called(ctx, employeeCtx, date)
	return args.Get(0).(workflow.DateCheckResult)
}

// --- Mock InvoiceIssuerService ---
type MockInvoiceIssuerService struct {
	mock.Mock
}

func (m *MockInvoiceIssuerService) BuildForSubmission(ctx context.Context, submission domain.Submission, adminID string) (*domain.Invoice, error) {
	args := m.Called(ctx, submission, adminID)
	var invoice *domain.Invoice
	if args.Get(0) != nil {
		invoice = args.Get(0).(*domain.Invoice)
	}
	return invoice, args.Error(1)
}

// --- Test Suite ---
type SubmissionServiceTestSuite struct {
	suite.Suite
	mockSubmissionRepo *MockSubmissionRepository
	mockEmployeeSvc    *MockEmployeeService
	mockBlockedDateSvc *MockBlockedDateService
	mockInvoiceSvc     *MockInvoiceIssuerService
	service            portssvc.SubmissionSvcFacade

	employeeID string
	managerID  string
	adminID    string
}

func (suite *SubmissionServiceTestSuite) SetupTest() {
	suite.mockSubmissionRepo = new(MockSubmissionRepository)
	suite.mockEmployeeSvc = new(MockEmployeeService)
	suite.mockBlockedDateSvc = new(MockBlockedDateService)
	suite.mockInvoiceSvc = new(MockInvoiceIssuerService)
	suite.service = services.NewSubmissionService(
		suite.mockSubmissionRepo,
		suite.mockEmployeeSvc,
		suite.mockBlockedDateSvc,
		suite.mockInvoiceSvc,
	)
	suite.employeeID = uuid.NewString()
	suite.managerID = uuid.NewString()
	suite.adminID = uuid.NewString()
}

func (suite *SubmissionServiceTestSuite) validCreateRequest() dto.CreateSubmissionRequest {
	return dto.CreateSubmissionRequest{
		SubmissionDate: "2025-03-15",
		HoursSubmitted: decimal.NewFromInt(160),
		Description:    "March work",
	}
}

func (suite *SubmissionServiceTestSuite) existingSubmission(status domain.SubmissionStatus) *domain.Submission {
	return &domain.Submission{
		SubmissionID:   uuid.NewString(),
		EmployeeID:     suite.employeeID,
		ManagerID:      &suite.managerID,
		SubmissionDate: "2025-03-15",
		HoursSubmitted: decimal.NewFromInt(160),
		Description:    "March work",
		Status:         status,
	}
}

// --- CreateSubmission Tests ---

func (suite *SubmissionServiceTestSuite) TestCreateSubmission_Success() {
	ctx := context.Background()
	req := suite.validCreateRequest()

	suite.mockSubmissionRepo.On("FindSubmissionByEmployeeAndMonth", ctx, suite.employeeID, "2025-03").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEmployeeSvc.On("GetContext", ctx, suite.employeeID).
		Return(domain.EmployeeContext{ProjectID: "proj-1"}, nil).Once()
	suite.mockBlockedDateSvc.On("CheckSubmissionDate", ctx, mock.Anything, "2025-03-15").
		Return(workflow.DateCheckResult{}).Once()
	suite.mockEmployeeSvc.On("GetProfile", ctx, suite.employeeID).
		Return(&domain.EmployeeProfile{UserID: suite.employeeID, ManagerUserID: &suite.managerID}, nil).Once()
	suite.mockSubmissionRepo.On("SaveSubmission", ctx, mock.MatchedBy(func(sub domain.Submission) bool {
		return sub.EmployeeID == suite.employeeID &&
			sub.Status == domain.StatusSubmitted &&
			sub.SubmissionDate == "2025-03-15" &&
			sub.ManagerID != nil && *sub.ManagerID == suite.managerID
	})).Return(nil).Once()

	sub, err := suite.service.CreateSubmission(ctx, suite.employeeID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(sub)
	suite.Equal(domain.StatusSubmitted, sub.Status)
	suite.NotEmpty(sub.SubmissionID)
	suite.mockSubmissionRepo.AssertExpectations(suite.T())
}

func (suite *SubmissionServiceTestSuite) TestCreateSubmission_TruncatesDateToCalendarDay() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	req.SubmissionDate = "2025-03-15T10:30:00Z"

	suite.mockSubmissionRepo.On("FindSubmissionByEmployeeAndMonth", ctx, suite.employeeID, "2025-03").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEmployeeSvc.On("GetContext", ctx, suite.employeeID).
		Return(domain.EmployeeContext{}, nil).Once()
	suite.mockBlockedDateSvc.On("CheckSubmissionDate", ctx, mock.Anything, "2025-03-15").
		Return(workflow.DateCheckResult{}).Once()
	suite.mockEmployeeSvc.On("GetProfile", ctx, suite.employeeID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSubmissionRepo.On("SaveSubmission", ctx, mock.MatchedBy(func(sub domain.Submission) bool {
		return sub.SubmissionDate == "2025-03-15" && sub.ManagerID == nil
	})).Return(nil).Once()

	sub, err := suite.service.CreateSubmission(ctx, suite.employeeID, req)

	suite.Require().NoError(err)
	suite.Equal("2025-03-15", sub.SubmissionDate)
	suite.mockSubmissionRepo.AssertExpectations(suite.T())
}

func (suite *SubmissionServiceTestSuite) TestCreateSubmission_InvalidDate() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	req.SubmissionDate = "not-a-date"

	sub, err := suite.service.CreateSubmission(ctx, suite.employeeID, req)

	suite.Require().Error(err)
	suite.Nil(sub)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SubmissionServiceTestSuite) TestCreateSubmission_MonthAlreadySubmitted() {
	ctx := context.Background()
	req := suite.validCreateRequest()

	suite.mockSubmissionRepo.On("FindSubmissionByEmployeeAndMonth", ctx, suite.employeeID, "2025-03").
		Return(suite.existingSubmission(domain.StatusSubmitted), nil).Once()

	sub, err := suite.service.CreateSubmission(ctx, suite.employeeID, req)

	suite.Require().Error(err)
	suite.Nil(sub)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockSubmissionRepo.AssertExpectations(suite.T())
}

func (suite *SubmissionServiceTestSuite) TestCreateSubmission_BlockedDate() {
	ctx := context.Background()
	req := suite.validCreateRequest()

	suite.mockSubmissionRepo.On("FindSubmissionByEmployeeAndMonth", ctx, suite.employeeID, "2025-03").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEmployeeSvc.On("GetContext", ctx, suite.employeeID).
		Return(domain.EmployeeContext{}, nil).Once()
	suite.mockBlockedDateSvc.On("CheckSubmissionDate", ctx, mock.Anything, "2025-03-15").
		Return(workflow.DateCheckResult{HasBlockedDates: true, BlockedDates: []string{"2025-03-15"}}).Once()

	sub, err := suite.service.CreateSubmission(ctx, suite.employeeID, req)

	suite.Require().Error(err)
	suite.Nil(sub)

	var blockedErr *apperrors.BlockedDatesError
	suite.Require().ErrorAs(err, &blockedErr)
	suite.Equal([]string{"2025-03-15"}, blockedErr.Dates)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSubmissionRepo.AssertNotCalled(suite.T(), "SaveSubmission", mock.Anything, mock.Anything)
}

func (suite *SubmissionServiceTestSuite) TestCreateSubmission_OvertimeWithoutDescription() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	req.OvertimeHours = decimal.NewFromInt(10)

	sub, err := suite.service.CreateSubmission(ctx, suite.employeeID, req)

	suite.Require().Error(err)
	suite.Nil(sub)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SubmissionServiceTestSuite) TestCreateSubmission_StrayOvertimeDescriptionAccepted() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	req.OvertimeDesc = "extra release work"

	suite.mockSubmissionRepo.On("FindSubmissionByEmployeeAndMonth", ctx, suite.employeeID, "2025-03").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockEmployeeSvc.On("GetContext", ctx, suite.employeeID).
		Return(domain.EmployeeContext{}, nil).Once()
	suite.mockBlockedDateSvc.On("CheckSubmissionDate", ctx, mock.Anything, "2025-03-15").
		Return(workflow.DateCheckResult{}).Once()
	suite.mockEmployeeSvc.On("GetProfile", ctx, suite.employeeID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockSubmissionRepo.On("SaveSubmission", ctx, mock.Anything).Return(nil).Once()

	sub, err := suite.service.CreateSubmission(ctx, suite.employeeID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(sub)
	suite.True(sub.OvertimeHours.IsZero())
	suite.mockSubmissionRepo.AssertExpectations(suite.T())
}

// --- UpdateSubmission Tests ---

func (suite *SubmissionServiceTestSuite) TestUpdateSubmission_RejectedResubmits() {
	ctx := context.Background()
	existing := suite.existingSubmission(domain.StatusManagerRejected)
	newHours := decimal.NewFromInt(150)

	suite.mockSubmissionRepo.On("FindSubmissionByID", ctx, existing.SubmissionID).
		Return(existing, nil).Once()
	suite.mockEmployeeSvc.On("GetContext", ctx, suite.employeeID).
		Return(domain.EmployeeContext{}, nil).Once()
	suite.mockBlockedDateSvc.On("CheckSubmissionDate", ctx, mock.Anything, existing.SubmissionDate).
		Return(workflow.DateCheckResult{}).Once()
	suite.mockSubmissionRepo.On("UpdateSubmission", ctx, mock.MatchedBy(func(sub domain.Submission) bool {
		return sub.Status == domain.StatusSubmitted && sub.HoursSubmitted.Equal(newHours)
	})).Return(nil).Once()

	sub, err := suite.service.UpdateSubmission(ctx, existing.SubmissionID, suite.employeeID, dto.UpdateSubmissionRequest{
		HoursSubmitted: &newHours,
	})

	suite.Require().NoError(err)
	suite.Equal(domain.StatusSubmitted, sub.Status)
	suite.mockSubmissionRepo.AssertExpectations(suite.T())
}

func (suite *SubmissionServiceTestSuite) TestUpdateSubmission_NotEditableOnceApproved() {
	ctx := context.Background()
	existing := suite.existingSubmission(domain.StatusManagerApproved)

	suite.mockSubmissionRepo.On("FindSubmissionByID", ctx, existing.SubmissionID).
		Return(existing, nil).Once()

	newDesc := "late edit"
	sub, err := suite.service.UpdateSubmission(ctx, existing.SubmissionID, suite.employeeID, dto.UpdateSubmissionRequest{
		Description: &newDesc,
	})

	suite.Require().Error(err)
	suite.Nil(sub)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSubmissionRepo.AssertNotCalled(suite.T(), "UpdateSubmission", mock.Anything, mock.Anything)
}

func (suite *SubmissionServiceTestSuite) TestUpdateSubmission_NotOwner() {
	ctx := context.Background()
	existing := suite.existingSubmission(domain.StatusSubmitted)
	otherEmployee := uuid.NewString()

	suite.mockSubmissionRepo.On("FindSubmissionByID", ctx, existing.SubmissionID).
		Return(existing, nil).Once()

	sub, err := suite.service.UpdateSubmission(ctx, existing.SubmissionID, otherEmployee, dto.UpdateSubmissionRequest{})

	suite.Require().Error(err)
	suite.Nil(sub)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *SubmissionServiceTestSuite) TestUpdateSubmission_MonthMoveChecksUniqueness() {
	ctx := context.Background()
	existing := suite.existingSubmission(domain.StatusSubmitted)
	newDate := "2025-04-10"

	suite.mockSubmissionRepo.On("FindSubmissionByID", ctx, existing.SubmissionID).
		Return(existing, nil).Once()
	suite.mockSubmissionRepo.On("FindSubmissionByEmployeeAndMonth", ctx, suite.employeeID, "2025-04").
		Return(suite.existingSubmission(domain.StatusSubmitted), nil).Once()

	sub, err := suite.service.UpdateSubmission(ctx, existing.SubmissionID, suite.employeeID, dto.UpdateSubmissionRequest{
		SubmissionDate: &newDate,
	})

	suite.Require().Error(err)
	suite.Nil(sub)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockSubmissionRepo.AssertExpectations(suite.T())
}

// --- DeleteSubmission Tests ---

func (suite *SubmissionServiceTestSuite) TestDeleteSubmission_Success() {
	ctx := context.Background()
	existing := suite.existingSubmission(domain.StatusAdminRejected)

	suite.mockSubmissionRepo.On("FindSubmissionByID", ctx, existing.SubmissionID).
		Return(existing, nil).Once()
	suite.mockSubmissionRepo.On("DeleteSubmission", ctx, existing.SubmissionID).
		Return(nil).Once()

	err := suite.service.DeleteSubmission(ctx, existing.SubmissionID, suite.employeeID)

	suite.Require().NoError(err)
	suite.mockSubmissionRepo.AssertExpectations(suite.T())
}

func (suite *SubmissionServiceTestSuite) TestDeleteSubmission_PaidIsImmutable() {
	ctx := context.Background()
	existing := suite.existingSubmission(domain.StatusAdminPaid)

	suite.mockSubmissionRepo.On("FindSubmissionByID", ctx, existing.SubmissionID).
		Return(existing, nil).Once()

	err := suite.service.DeleteSubmission(ctx, existing.SubmissionID, suite.employeeID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSubmissionRepo.AssertNotCalled(suite.T(), "DeleteSubmission", mock.Anything, mock.Anything)
}

// --- Manager Review Tests ---

func (suite *SubmissionServiceTestSuite) TestManagerApprove_Success() {
	ctx := context.Background()
	existing := suite.existingSubmission(domain.StatusSubmitted)

	suite.mockSubmissionRepo.On("FindSubmissionByID", ctx, existing.SubmissionID).
		Return(existing, nil).Once()
	suite.mockSubmissionRepo.On("UpdateSubmissionStatus", ctx, mock.MatchedBy(func(u domain.StatusTransitionUpdate) bool {
		return u.SubmissionID == existing.SubmissionID &&
			u.ExpectedStatus == domain.StatusSubmitted &&
			u.NewStatus == domain.StatusManagerApproved &&
			u.ActedBy == suite.managerID
	})).Return(nil).Once()

	sub, err := suite.service.ManagerApprove(ctx, existing.SubmissionID, suite.managerID, "")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusManagerApproved, sub.Status)
	suite.Require().NotNil(sub.ActedBy)
	suite.Equal(suite.managerID, *sub.ActedBy)
	suite.mockSubmissionRepo.AssertExpectations(suite.T())
}

func (suite *SubmissionServiceTestSuite) TestManagerApprove_NotAssignedManager() {
	ctx := context.Background()
	existing := suite.existingSubmission(domain.StatusSubmitted)
	otherManager := uuid.NewString()

	suite.mockSubmissionRepo.On("FindSubmissionByID", ctx, existing.SubmissionID).
		Return(existing, nil).Once()

	sub, err := suite.service.ManagerApprove(ctx, existing.SubmissionID, otherManager, "")

	suite.Require().Error(err)
	suite.Nil(sub)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockSubmissionRepo.AssertNotCalled(suite.T(), "UpdateSubmissionStatus", mock.Anything, mock.Anything)
}

func (suite *SubmissionServiceTestSuite) TestManagerReject_RequiresReason() {
	ctx := context.Background()
	existing := suite.existingSubmission(domain.StatusSubmitted)

	suite.mockSubmissionRepo.On("FindSubmissionByID", ctx, existing.SubmissionID).
		Return(existing, nil).Once()

	sub, err := suite.service.ManagerReject(ctx, existing.SubmissionID, suite.managerID, "")

	suite.Require().Error(err)
	suite.Nil(sub)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SubmissionServiceTestSuite) TestManagerReject_Success() {
	ctx := context.Background()
	existing := suite.existingSubmission(domain.StatusSubmitted)
	reason := "hours do not match the project log"

	suite.mockSubmissionRepo.On("FindSubmissionByID", ctx, existing.SubmissionID).
		Return(existing, nil).Once()
	suite.mockSubmissionRepo.On("UpdateSubmissionStatus", ctx, mock.MatchedBy(func(u domain.StatusTransitionUpdate) bool {
		return u.NewStatus == domain.StatusManagerRejected &&
			u.ManagerComment != nil && *u.ManagerComment == reason
	})).Return(nil).Once()

	sub, err := suite.service.ManagerReject(ctx, existing.SubmissionID, suite.managerID, reason)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusManagerRejected, sub.Status)
	suite.Equal(reason, sub.ManagerComment)
	suite.mockSubmissionRepo.AssertExpectations(suite.T())
}

func (suite *SubmissionServiceTestSuite) TestManagerApprove_StaleStatusConflict() {
	ctx := context.Background()
	existing := suite.existingSubmission(domain.StatusSubmitted)

	suite.mockSubmissionRepo.On("FindSubmissionByID", ctx, existing.SubmissionID).
		Return(existing, nil).Once()
	suite.mockSubmissionRepo.On("UpdateSubmissionStatus", ctx, mock.Anything).
		Return(apperrors.ErrConflict).Once()

	sub, err := suite.service.ManagerApprove(ctx, existing.SubmissionID, suite.managerID, "")

	suite.Require().Error(err)
	suite.Nil(sub)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

// --- Admin Review Tests ---

func (suite *SubmissionServiceTestSuite) TestAdminProcessPayment_Success() {
	ctx := context.Background()
	existing := suite.existingSubmission(domain.StatusManagerApproved)
	invoice := &domain.Invoice{InvoiceID: uuid.NewString(), SubmissionID: existing.SubmissionID}

	suite.mockSubmissionRepo.On("FindSubmissionByID", ctx, existing.SubmissionID).
		Return(existing, nil).Once()
	suite.mockInvoiceSvc.On("BuildForSubmission", ctx, *existing, suite.adminID).
		Return(invoice, nil).Once()
	suite.mockSubmissionRepo.On("SaveInvoiceAndMarkPaid", ctx, *invoice, mock.MatchedBy(func(u domain.StatusTransitionUpdate) bool {
		return u.NewStatus == domain.StatusAdminPaid &&
			u.InvoiceID != nil && *u.InvoiceID == invoice.InvoiceID
	})).Return(nil).Once()

	sub, err := suite.service.AdminProcessPayment(ctx, existing.SubmissionID, suite.adminID, "")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusAdminPaid, sub.Status)
	suite.Require().NotNil(sub.InvoiceID)
	suite.Equal(invoice.InvoiceID, *sub.InvoiceID)
	suite.mockInvoiceSvc.AssertExpectations(suite.T())
	suite.mockSubmissionRepo.AssertExpectations(suite.T())
}

func (suite *SubmissionServiceTestSuite) TestAdminProcessPayment_WrongStatus() {
	ctx := context.Background()
	existing := suite.existingSubmission(domain.StatusSubmitted)

	suite.mockSubmissionRepo.On("FindSubmissionByID", ctx, existing.SubmissionID).
		Return(existing, nil).Once()

	sub, err := suite.service.AdminProcessPayment(ctx, existing.SubmissionID, suite.adminID, "")

	suite.Require().Error(err)
	suite.Nil(sub)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceSvc.AssertNotCalled(suite.T(), "BuildForSubmission", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SubmissionServiceTestSuite) TestAdminProcessPayment_InvoiceFailureBlocksTransition() {
	ctx := context.Background()
	existing := suite.existingSubmission(domain.StatusManagerApproved)
	expectedErr := assert.AnError

	suite.mockSubmissionRepo.On("FindSubmissionByID", ctx, existing.SubmissionID).
		Return(existing, nil).Once()
	suite.mockInvoiceSvc.On("BuildForSubmission", ctx, *existing, suite.adminID).
		Return(nil, expectedErr).Once()

	sub, err := suite.service.AdminProcessPayment(ctx, existing.SubmissionID, suite.adminID, "")

	suite.Require().Error(err)
	suite.Nil(sub)
	suite.mockSubmissionRepo.AssertNotCalled(suite.T(), "SaveInvoiceAndMarkPaid", mock.Anything, mock.Anything, mock.Anything)
}

// A stale status fails the single transactional write, so the invoice is
// rolled back with it and no separate status update ever runs.
func (suite *SubmissionServiceTestSuite) TestAdminProcessPayment_RaceRollsBackInvoice() {
	ctx := context.Background()
	existing := suite.existingSubmission(domain.StatusManagerApproved)
	invoice := &domain.Invoice{InvoiceID: uuid.NewString(), SubmissionID: existing.SubmissionID}

	suite.mockSubmissionRepo.On("FindSubmissionByID", ctx, existing.SubmissionID).
		Return(existing, nil).Once()
	suite.mockInvoiceSvc.On("BuildForSubmission", ctx, *existing, suite.adminID).
		Return(invoice, nil).Once()
	suite.mockSubmissionRepo.On("SaveInvoiceAndMarkPaid", ctx, *invoice, mock.Anything).
		Return(apperrors.ErrConflict).Once()

	sub, err := suite.service.AdminProcessPayment(ctx, existing.SubmissionID, suite.adminID, "")

	suite.Require().Error(err)
	suite.Nil(sub)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockSubmissionRepo.AssertNotCalled(suite.T(), "UpdateSubmissionStatus", mock.Anything, mock.Anything)
}

func (suite *SubmissionServiceTestSuite) TestAdminRequestClarification_Success() {
	ctx := context.Background()
	existing := suite.existingSubmission(domain.StatusManagerApproved)
	message := "please attach the signed timesheet"

	suite.mockSubmissionRepo.On("FindSubmissionByID", ctx, existing.SubmissionID).
		Return(existing, nil).Once()
	suite.mockSubmissionRepo.On("UpdateSubmissionStatus", ctx, mock.MatchedBy(func(u domain.StatusTransitionUpdate) bool {
		return u.NewStatus == domain.StatusNeedsClarification &&
			u.AdminComment != nil && *u.AdminComment == message
	})).Return(nil).Once()

	sub, err := suite.service.AdminRequestClarification(ctx, existing.SubmissionID, suite.adminID, message)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusNeedsClarification, sub.Status)
	suite.Equal(message, sub.AdminComment)
	suite.mockSubmissionRepo.AssertExpectations(suite.T())
}

func (suite *SubmissionServiceTestSuite) TestAdminReject_RequiresReason() {
	ctx := context.Background()
	existing := suite.existingSubmission(domain.StatusManagerApproved)

	suite.mockSubmissionRepo.On("FindSubmissionByID", ctx, existing.SubmissionID).
		Return(existing, nil).Once()

	sub, err := suite.service.AdminReject(ctx, existing.SubmissionID, suite.adminID, "")

	suite.Require().Error(err)
	suite.Nil(sub)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

// --- ListOwnSubmissions Tests ---

func (suite *SubmissionServiceTestSuite) TestListOwnSubmissions_EmitsNextPageToken() {
	ctx := context.Background()
	page := []domain.Submission{
		*suite.existingSubmission(domain.StatusSubmitted),
		*suite.existingSubmission(domain.StatusAdminPaid),
		*suite.existingSubmission(domain.StatusSubmitted),
	}
	page[1].SubmissionDate = "2025-02-15"
	page[1].CreatedAt = time.Date(2025, 2, 15, 9, 0, 0, 0, time.UTC)

	// limit 2 requests 3 rows; getting all 3 back means another page exists.
	suite.mockSubmissionRepo.On("ListSubmissionsByEmployee", ctx, suite.employeeID, 3, "", time.Time{}).
		Return(page, nil).Once()

	subs, nextToken, err := suite.service.ListOwnSubmissions(ctx, suite.employeeID, 2, "")

	suite.Require().NoError(err)
	suite.Len(subs, 2)
	suite.NotEmpty(nextToken)

	date, createdAt, decodeErr := pagination.DecodeToken(nextToken)
	suite.Require().NoError(decodeErr)
	suite.Equal("2025-02-15", date)
	suite.True(createdAt.Equal(page[1].CreatedAt))
}

func (suite *SubmissionServiceTestSuite) TestListOwnSubmissions_LastPageHasNoToken() {
	ctx := context.Background()

	suite.mockSubmissionRepo.On("ListSubmissionsByEmployee", ctx, suite.employeeID, 21, "", time.Time{}).
		Return([]domain.Submission{*suite.existingSubmission(domain.StatusSubmitted)}, nil).Once()

	subs, nextToken, err := suite.service.ListOwnSubmissions(ctx, suite.employeeID, 20, "")

	suite.Require().NoError(err)
	suite.Len(subs, 1)
	suite.Empty(nextToken)
}

func (suite *SubmissionServiceTestSuite) TestListOwnSubmissions_BadTokenRejected() {
	ctx := context.Background()

	subs, nextToken, err := suite.service.ListOwnSubmissions(ctx, suite.employeeID, 20, "not-a-token")

	suite.Require().Error(err)
	suite.Nil(subs)
	suite.Empty(nextToken)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSubmissionRepo.AssertNotCalled(suite.T(), "ListSubmissionsByEmployee",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// --- GetSubmissionByID Tests ---

func (suite *SubmissionServiceTestSuite) TestGetSubmissionByID_OwnerCanView() {
	ctx := context.Background()
	existing := suite.existingSubmission(domain.StatusSubmitted)

	suite.mockSubmissionRepo.On("FindSubmissionByID", ctx, existing.SubmissionID).
		Return(existing, nil).Once()

	sub, err := suite.service.GetSubmissionByID(ctx, existing.SubmissionID, suite.employeeID, domain.RoleEmployee)

	suite.Require().NoError(err)
	suite.Equal(existing, sub)
}

func (suite *SubmissionServiceTestSuite) TestGetSubmissionByID_StrangerForbidden() {
	ctx := context.Background()
	existing := suite.existingSubmission(domain.StatusSubmitted)

	suite.mockSubmissionRepo.On("FindSubmissionByID", ctx, existing.SubmissionID).
		Return(existing, nil).Once()

	sub, err := suite.service.GetSubmissionByID(ctx, existing.SubmissionID, uuid.NewString(), domain.RoleEmployee)

	suite.Require().Error(err)
	suite.Nil(sub)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *SubmissionServiceTestSuite) TestGetSubmissionByID_AdminCanViewAny() {
	ctx := context.Background()
	existing := suite.existingSubmission(domain.StatusSubmitted)

	suite.mockSubmissionRepo.On("FindSubmissionByID", ctx, existing.SubmissionID).
		Return(existing, nil).Once()

	sub, err := suite.service.GetSubmissionByID(ctx, existing.SubmissionID, suite.adminID, domain.RoleAdmin)

	suite.Require().NoError(err)
	suite.Equal(existing, sub)
}

func TestSubmissionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SubmissionServiceTestSuite))
}
