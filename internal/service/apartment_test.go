package service_test

import (
	"testing"

	"rental-marketplace-backend/internal/database/models"
	apperrors "rental-marketplace-backend/internal/errors"
	"rental-marketplace-backend/internal/mocks"
	"rental-marketplace-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ApartmentServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockApartmentRepo *mocks.MockApartmentRepositoryInterface
	apartmentService  *service.ApartmentService
	validator         *validator.Validate
}

func (suite *ApartmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockApartmentRepo = mocks.NewMockApartmentRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.apartmentService = service.NewApartmentService(suite.mockApartmentRepo, suite.validator)
}

func (suite *ApartmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ApartmentServiceTestSuite) TestCreate_Success() {
	suite.mockApartmentRepo.EXPECT().
		Create(&models.Apartment{ID: 3, Address: "1 Sea Rd", City: "Haifa", Country: "Israel", Size: 40}).
		Return(nil)

	resp, err := suite.apartmentService.Create(&service.CreateApartmentRequest{
		ID: 3, Address: "1 Sea Rd", City: "Haifa", Country: "Israel", Size: 40,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), resp.ID)
	assert.Equal(suite.T(), "Haifa", resp.City)
}

func (suite *ApartmentServiceTestSuite) TestCreate_NonPositiveSize() {
	resp, err := suite.apartmentService.Create(&service.CreateApartmentRequest{
		ID: 3, Address: "1 Sea Rd", City: "Haifa", Country: "Israel", Size: 0,
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ApartmentServiceTestSuite) TestCreate_MissingLocation() {
	resp, err := suite.apartmentService.Create(&service.CreateApartmentRequest{
		ID: 3, Address: "1 Sea Rd", City: "", Country: "Israel", Size: 40,
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ApartmentServiceTestSuite) TestCreate_DuplicateLocation() {
	// Same (address, city, country) triple or reused id both surface as conflicts
	suite.mockApartmentRepo.EXPECT().Create(gomock.Any()).Return(apperrors.ErrApartmentExists)

	resp, err := suite.apartmentService.Create(&service.CreateApartmentRequest{
		ID: 3, Address: "1 Sea Rd", City: "Haifa", Country: "Israel", Size: 40,
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

func (suite *ApartmentServiceTestSuite) TestGetByID_Success() {
	suite.mockApartmentRepo.EXPECT().GetByID(int64(3)).
		Return(&models.Apartment{ID: 3, Address: "1 Sea Rd", City: "Haifa", Country: "Israel", Size: 40}, nil)

	resp, err := suite.apartmentService.GetByID(3)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 40, resp.Size)
}

func (suite *ApartmentServiceTestSuite) TestGetByID_NotFound() {
	suite.mockApartmentRepo.EXPECT().GetByID(int64(3)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.apartmentService.GetByID(3)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrApartmentNotFound)
}

func (suite *ApartmentServiceTestSuite) TestDelete_Success() {
	suite.mockApartmentRepo.EXPECT().Delete(int64(3)).Return(int64(1), nil)

	err := suite.apartmentService.Delete(3)

	assert.NoError(suite.T(), err)
}

func (suite *ApartmentServiceTestSuite) TestDelete_NotFound() {
	suite.mockApartmentRepo.EXPECT().Delete(int64(3)).Return(int64(0), nil)

	err := suite.apartmentService.Delete(3)

	assert.ErrorIs(suite.T(), err, apperrors.ErrApartmentNotFound)
}

func TestApartmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ApartmentServiceTestSuite))
}
