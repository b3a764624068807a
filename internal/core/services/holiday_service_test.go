package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/timecove/timesheet-backend/internal/apperrors"
	"github.com/timecove/timesheet-backend/internal/core/domain"
	portssvc "github.com/timecove/timesheet-backend/internal/core/ports/services"
	"github.com/timecove/timesheet-backend/internal/core/services"
	"github.com/timecove/timesheet-backend/internal/dto"
)

// --- Mock HolidayRepository ---
type MockHolidayRepository struct {
	mock.Mock
}

func (m *MockHolidayRepository) FindHolidayByID(ctx context.Context, holidayID string) (*domain.Holiday, error) {
	args := m.Called(ctx, holidayID)
	var holiday *domain.Holiday
	if args.Get(0) != nil {
		holiday = args.Get(0).(*domain.Holiday)
	}
	return holiday, args.Error(1)
}

func (m *MockHolidayRepository) ListHolidays(ctx context.Context) ([]domain.Holiday, error) {
	args := m.Called(ctx)
	var holidays []domain.Holiday
	if args.Get(0) != nil {
		holidays = args.Get(0).([]domain.Holiday)
	}
	return holidays, args.Error(1)
}

func (m *MockHolidayRepository) SaveHoliday(ctx context.Context, holiday domain.Holiday) error {
	args := m.Called(ctx, holiday)
	return args.Error(0)
}

func (m *MockHolidayRepository) UpdateHoliday(ctx context.Context, holiday domain.Holiday) error {
	args := m.Called(ctx, holiday)
	return args.Error(0)
}

func (m *MockHolidayRepository) DeleteHoliday(ctx context.Context, holidayID string) error {
	args := m.Called(ctx, holidayID)
	return args.Error(0)
}

// --- Test Suite ---
type HolidayServiceTestSuite struct {
	suite.Suite
	mockHolidayRepo *MockHolidayRepository
	service         portssvc.HolidaySvcFacade
	adminID         string
}

func (suite *HolidayServiceTestSuite) SetupTest() {
	suite.mockHolidayRepo = new(MockHolidayRepository)
	suite.service = services.NewHolidayService(suite.mockHolidayRepo)
	suite.adminID = uuid.NewString()
}

// --- CreateHoliday Tests ---

func (suite *HolidayServiceTestSuite) TestCreateHoliday_OmittedFlagsDefaultToUnrestricted() {
	ctx := context.Background()
	req := dto.CreateHolidayRequest{
		Name:  "Christmas",
		Type:  "HOLIDAY",
		Dates: []string{"2025-12-25"},
	}

	suite.mockHolidayRepo.On("SaveHoliday", ctx, mock.MatchedBy(func(h domain.Holiday) bool {
		return h.AppliesToAllProjects && h.AppliesToAllEmployeeTypes && h.AppliesToAllLocations &&
			h.IsActive && h.IsPaid
	})).Return(nil).Once()

	holiday, err := suite.service.CreateHoliday(ctx, req, suite.adminID)

	suite.Require().NoError(err)
	suite.Require().NotNil(holiday)
	suite.True(holiday.AppliesToAllProjects)
	suite.True(holiday.AppliesToAllEmployeeTypes)
	suite.True(holiday.AppliesToAllLocations)
	suite.mockHolidayRepo.AssertExpectations(suite.T())
}

func (suite *HolidayServiceTestSuite) TestCreateHoliday_ExplicitRestriction() {
	ctx := context.Background()
	restricted := false
	req := dto.CreateHolidayRequest{
		Name:                 "Plant shutdown",
		Type:                 "SPECIAL_TIME_OFF",
		Dates:                []string{"2025-07-04"},
		AppliesToAllProjects: &restricted,
		ProjectIDs:           []string{"proj-1"},
	}

	suite.mockHolidayRepo.On("SaveHoliday", ctx, mock.MatchedBy(func(h domain.Holiday) bool {
		return !h.AppliesToAllProjects && len(h.ProjectIDs) == 1 && h.AppliesToAllEmployeeTypes
	})).Return(nil).Once()

	holiday, err := suite.service.CreateHoliday(ctx, req, suite.adminID)

	suite.Require().NoError(err)
	suite.False(holiday.AppliesToAllProjects)
	suite.mockHolidayRepo.AssertExpectations(suite.T())
}

func (suite *HolidayServiceTestSuite) TestCreateHoliday_NormalizesDates() {
	ctx := context.Background()
	req := dto.CreateHolidayRequest{
		Name:  "New Year",
		Type:  "HOLIDAY",
		Dates: []string{"2026-01-01T00:00:00Z"},
	}

	suite.mockHolidayRepo.On("SaveHoliday", ctx, mock.MatchedBy(func(h domain.Holiday) bool {
		return len(h.Dates) == 1 && h.Dates[0] == "2026-01-01"
	})).Return(nil).Once()

	holiday, err := suite.service.CreateHoliday(ctx, req, suite.adminID)

	suite.Require().NoError(err)
	suite.Equal([]string{"2026-01-01"}, holiday.Dates)
}

func (suite *HolidayServiceTestSuite) TestCreateHoliday_InvalidDate() {
	ctx := context.Background()
	req := dto.CreateHolidayRequest{
		Name:  "Broken",
		Type:  "HOLIDAY",
		Dates: []string{"25-12-2025"},
	}

	holiday, err := suite.service.CreateHoliday(ctx, req, suite.adminID)

	suite.Require().Error(err)
	suite.Nil(holiday)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockHolidayRepo.AssertNotCalled(suite.T(), "SaveHoliday", mock.Anything, mock.Anything)
}

// --- UpdateHoliday Tests ---

func (suite *HolidayServiceTestSuite) TestUpdateHoliday_PartialUpdate() {
	ctx := context.Background()
	existing := &domain.Holiday{
		HolidayID:                 uuid.NewString(),
		Name:                      "Old name",
		Type:                      domain.HolidayTypeHoliday,
		Dates:                     []string{"2025-12-25"},
		IsActive:                  true,
		IsPaid:                    true,
		AppliesToAllProjects:      true,
		AppliesToAllEmployeeTypes: true,
		AppliesToAllLocations:     true,
	}
	newName := "New name"
	inactive := false

	suite.mockHolidayRepo.On("FindHolidayByID", ctx, existing.HolidayID).
		Return(existing, nil).Once()
	suite.mockHolidayRepo.On("UpdateHoliday", ctx, mock.MatchedBy(func(h domain.Holiday) bool {
		return h.Name == newName && !h.IsActive && h.Dates[0] == "2025-12-25"
	})).Return(nil).Once()

	holiday, err := suite.service.UpdateHoliday(ctx, existing.HolidayID, dto.UpdateHolidayRequest{
		Name:     &newName,
		IsActive: &inactive,
	}, suite.adminID)

	suite.Require().NoError(err)
	suite.Equal(newName, holiday.Name)
	suite.False(holiday.IsActive)
	suite.mockHolidayRepo.AssertExpectations(suite.T())
}

// --- Blocked-Date Resolver Tests ---

func (suite *HolidayServiceTestSuite) blockedChristmasRule() domain.Holiday {
	return domain.Holiday{
		HolidayID:                 uuid.NewString(),
		Name:                      "Christmas",
		Type:                      domain.HolidayTypeHoliday,
		Dates:                     []string{"2025-12-25"},
		IsActive:                  true,
		IsPaid:                    true,
		AppliesToAllProjects:      true,
		AppliesToAllEmployeeTypes: true,
		AppliesToAllLocations:     true,
	}
}

func (suite *HolidayServiceTestSuite) TestCheckSubmissionDate_Blocked() {
	ctx := context.Background()

	suite.mockHolidayRepo.On("ListHolidays", ctx).
		Return([]domain.Holiday{suite.blockedChristmasRule()}, nil).Once()

	result := suite.service.CheckSubmissionDate(ctx, domain.EmployeeContext{}, "2025-12-25")

	suite.True(result.HasBlockedDates)
	suite.Equal([]string{"2025-12-25"}, result.BlockedDates)
}

func (suite *HolidayServiceTestSuite) TestCheckSubmissionDate_FailsOpenOnRepoError() {
	ctx := context.Background()

	suite.mockHolidayRepo.On("ListHolidays", ctx).
		Return(nil, assert.AnError).Once()

	result := suite.service.CheckSubmissionDate(ctx, domain.EmployeeContext{}, "2025-12-25")

	suite.False(result.HasBlockedDates)
	suite.Empty(result.BlockedDates)
}

func (suite *HolidayServiceTestSuite) TestBlockedDatesInRange_FailsOpenOnRepoError() {
	ctx := context.Background()

	suite.mockHolidayRepo.On("ListHolidays", ctx).
		Return(nil, assert.AnError).Once()

	blocked, err := suite.service.BlockedDatesInRange(ctx, domain.EmployeeContext{}, "2025-12-01", "2025-12-31")

	suite.Require().NoError(err)
	suite.Empty(blocked)
}

func (suite *HolidayServiceTestSuite) TestBlockedDatesInRange_ResolvesInRange() {
	ctx := context.Background()

	suite.mockHolidayRepo.On("ListHolidays", ctx).
		Return([]domain.Holiday{suite.blockedChristmasRule()}, nil).Once()

	blocked, err := suite.service.BlockedDatesInRange(ctx, domain.EmployeeContext{}, "2025-12-01", "2025-12-31")

	suite.Require().NoError(err)
	suite.Require().Len(blocked, 1)
	suite.Equal("2025-12-25", blocked[0].Date)
	suite.Equal("Christmas", blocked[0].Name)
}

func TestHolidayServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HolidayServiceTestSuite))
}
