package service_test

import (
	"errors"
	"testing"

	"rental-marketplace-backend/internal/database/models"
	"rental-marketplace-backend/internal/mocks"
	"rental-marketplace-backend/internal/repository"
	"rental-marketplace-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RecommendationServiceTestSuite struct {
	suite.Suite
	ctrl                  *gomock.Controller
	mockAnalyticsRepo     *mocks.MockAnalyticsRepositoryInterface
	recommendationService *service.RecommendationService
}

func (suite *RecommendationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAnalyticsRepo = mocks.NewMockAnalyticsRepositoryInterface(suite.ctrl)
	suite.recommendationService = service.NewRecommendationService(suite.mockAnalyticsRepo)
}

func (suite *RecommendationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RecommendationServiceTestSuite) TestRecommend_Success() {
	scores := []repository.ApartmentScore{
		{
			Apartment: models.Apartment{ID: 4, Address: "2 Sea Rd", City: "Haifa", Country: "Israel", Size: 60},
			Score:     8.4,
		},
		{
			Apartment: models.Apartment{ID: 9, Address: "5 Hill St", City: "Paris", Country: "France", Size: 35},
			Score:     3.2,
		},
	}
	suite.mockAnalyticsRepo.EXPECT().Recommendations(int64(1)).Return(scores, nil)

	resp, err := suite.recommendationService.Recommend(1)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), int64(4), resp[0].Apartment.ID)
	assert.Equal(suite.T(), 8.4, resp[0].Score)
}

func (suite *RecommendationServiceTestSuite) TestRecommend_NoPeersYieldsEmpty() {
	suite.mockAnalyticsRepo.EXPECT().Recommendations(int64(1)).Return(nil, nil)

	resp, err := suite.recommendationService.Recommend(1)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Empty(suite.T(), resp)
}

func (suite *RecommendationServiceTestSuite) TestRecommend_InvalidIDYieldsEmpty() {
	resp, err := suite.recommendationService.Recommend(0)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Empty(suite.T(), resp)
}

func (suite *RecommendationServiceTestSuite) TestRecommend_RepoError() {
	suite.mockAnalyticsRepo.EXPECT().Recommendations(int64(1)).Return(nil, errors.New("db failed"))

	resp, err := suite.recommendationService.Recommend(1)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "failed to compute recommendations")
}

func TestRecommendationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RecommendationServiceTestSuite))
}
