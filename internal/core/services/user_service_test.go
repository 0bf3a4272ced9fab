package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/betok3jr-art/k3_finance_app/internal/apperrors"
	"github.com/betok3jr-art/k3_finance_app/internal/core/domain"
	portssvc "github.com/betok3jr-art/k3_finance_app/internal/core/ports/services"
	"github.com/betok3jr-art/k3_finance_app/internal/core/services"
	"github.com/betok3jr-art/k3_finance_app/internal/dto"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockRepo *MockUserRecordRepository
	service  portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockUserRecordRepository)
	suite.service = services.NewUserService(suite.mockRepo)
}

func (suite *UserServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()

	suite.mockRepo.On("Create", ctx, "ana", mock.MatchedBy(func(record domain.UserRecord) bool {
		return record.Profile.Name == "ana" &&
			record.Profile.PIN == "1234" &&
			record.Profile.Theme == domain.ThemeLight &&
			record.Profile.HasOnboarded &&
			record.Entries != nil && len(record.Entries) == 0
	})).Return(nil).Once()

	profile, err := suite.service.Register(ctx, dto.RegisterRequest{Name: "ana", PIN: "1234"})

	suite.Require().NoError(err)
	suite.Require().NotNil(profile)
	suite.Equal("ana", profile.Name)
	suite.Equal(domain.ThemeLight, profile.Theme)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_NameTaken() {
	ctx := context.Background()

	suite.mockRepo.On("Create", ctx, "ana", mock.AnythingOfType("domain.UserRecord")).Return(apperrors.ErrDuplicate).Once()

	profile, err := suite.service.Register(ctx, dto.RegisterRequest{Name: "ana", PIN: "1234"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(profile)
}

func (suite *UserServiceTestSuite) TestLogin_Success() {
	ctx := context.Background()
	record := &domain.UserRecord{
		Profile: domain.UserProfile{Name: "ana", PIN: "1234", Theme: domain.ThemeDark},
	}
	suite.mockRepo.On("Load", ctx, "ana").Return(record, nil).Once()

	profile, err := suite.service.Login(ctx, dto.LoginRequest{Name: "ana", PIN: "1234"})

	suite.Require().NoError(err)
	suite.Equal(domain.ThemeDark, profile.Theme)
}

func (suite *UserServiceTestSuite) TestLogin_WrongPIN() {
	ctx := context.Background()
	record := &domain.UserRecord{
		Profile: domain.UserProfile{Name: "ana", PIN: "1234"},
	}
	suite.mockRepo.On("Load", ctx, "ana").Return(record, nil).Once()

	profile, err := suite.service.Login(ctx, dto.LoginRequest{Name: "ana", PIN: "9999"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(profile)
}

func (suite *UserServiceTestSuite) TestLogin_UnknownNameLooksLikeWrongPIN() {
	ctx := context.Background()
	suite.mockRepo.On("Load", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	profile, err := suite.service.Login(ctx, dto.LoginRequest{Name: "ghost", PIN: "1234"})

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.Nil(profile)
}

func (suite *UserServiceTestSuite) TestToggleTheme() {
	ctx := context.Background()
	record := &domain.UserRecord{
		Profile: domain.UserProfile{Name: "ana", PIN: "1234", Theme: domain.ThemeLight},
	}
	suite.mockRepo.On("Load", ctx, "ana").Return(record, nil).Once()
	suite.mockRepo.On("Save", ctx, "ana", mock.MatchedBy(func(saved domain.UserRecord) bool {
		return saved.Profile.Theme == domain.ThemeDark
	})).Return(nil).Once()

	theme, err := suite.service.ToggleTheme(ctx, "ana")

	suite.Require().NoError(err)
	suite.Equal(domain.ThemeDark, theme)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetProfile() {
	ctx := context.Background()
	record := &domain.UserRecord{
		Profile: domain.UserProfile{Name: "ana", PIN: "1234", HasOnboarded: true},
	}
	suite.mockRepo.On("Load", ctx, "ana").Return(record, nil).Once()

	profile, err := suite.service.GetProfile(ctx, "ana")

	suite.Require().NoError(err)
	suite.True(profile.HasOnboarded)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
