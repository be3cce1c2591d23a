package service_test

import (
	"errors"
	"testing"

	"rental-marketplace-backend/internal/mocks"
	"rental-marketplace-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RatingServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockAnalyticsRepo *mocks.MockAnalyticsRepositoryInterface
	ratingService     *service.RatingService
}

func (suite *RatingServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAnalyticsRepo = mocks.NewMockAnalyticsRepositoryInterface(suite.ctrl)
	suite.ratingService = service.NewRatingService(suite.mockAnalyticsRepo)
}

func (suite *RatingServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RatingServiceTestSuite) TestApartmentRating_Success() {
	suite.mockAnalyticsRepo.EXPECT().ApartmentRating(int64(3)).Return(7.5, nil)

	rating, err := suite.ratingService.ApartmentRating(3)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 7.5, rating)
}

func (suite *RatingServiceTestSuite) TestApartmentRating_InvalidIDRatesZero() {
	// No repo call; invalid ids are indistinguishable from unreviewed ones
	rating, err := suite.ratingService.ApartmentRating(0)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0.0, rating)
}

func (suite *RatingServiceTestSuite) TestApartmentRating_RepoError() {
	suite.mockAnalyticsRepo.EXPECT().ApartmentRating(int64(3)).Return(0.0, errors.New("db failed"))

	rating, err := suite.ratingService.ApartmentRating(3)

	assert.Error(suite.T(), err)
	assert.Equal(suite.T(), 0.0, rating)
	assert.Contains(suite.T(), err.Error(), "failed to compute apartment rating")
}

func (suite *RatingServiceTestSuite) TestOwnerRating_Success() {
	suite.mockAnalyticsRepo.EXPECT().OwnerRating(int64(7)).Return(6.25, nil)

	rating, err := suite.ratingService.OwnerRating(7)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 6.25, rating)
}

func (suite *RatingServiceTestSuite) TestOwnerRating_InvalidIDRatesZero() {
	rating, err := suite.ratingService.OwnerRating(-4)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0.0, rating)
}

func TestRatingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RatingServiceTestSuite))
}
