package handlers_test

import (
	"net/http"
	"testing"

	"rental-marketplace-backend/internal/api/handlers"
	apperrors "rental-marketplace-backend/internal/errors"
	"rental-marketplace-backend/internal/mocks"
	"rental-marketplace-backend/internal/service"
	"rental-marketplace-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ApartmentHandlerTestSuite defines the test suite for ApartmentHandler
type ApartmentHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockApartmentSv *mocks.MockApartmentServiceInterface
	mockOwnerSv     *mocks.MockOwnerServiceInterface
	mockRatingSv    *mocks.MockRatingServiceInterface
	handler         *handlers.ApartmentHandler
	httpSuite       *testutils.HTTPTestSuite
}

func (suite *ApartmentHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockApartmentSv = mocks.NewMockApartmentServiceInterface(suite.ctrl)
	suite.mockOwnerSv = mocks.NewMockOwnerServiceInterface(suite.ctrl)
	suite.mockRatingSv = mocks.NewMockRatingServiceInterface(suite.ctrl)
	suite.handler = handlers.NewApartmentHandler(suite.mockApartmentSv, suite.mockOwnerSv, suite.mockRatingSv)

	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.POST("/apartments", suite.handler.CreateApartment)
	suite.httpSuite.Router.GET("/apartments/:id", suite.handler.GetApartment)
	suite.httpSuite.Router.DELETE("/apartments/:id", suite.handler.DeleteApartment)
	suite.httpSuite.Router.GET("/apartments/:id/owner", suite.handler.GetApartmentOwner)
	suite.httpSuite.Router.GET("/apartments/:id/rating", suite.handler.GetApartmentRating)
}

func (suite *ApartmentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ApartmentHandlerTestSuite) TestCreateApartment_Success() {
	req := &service.CreateApartmentRequest{ID: 4, Address: "12 Sea Road", City: "Haifa", Country: "Israel", Size: 80}
	suite.mockApartmentSv.EXPECT().
		Create(req).
		Return(&service.ApartmentResponse{ID: 4, Address: "12 Sea Road", City: "Haifa", Country: "Israel", Size: 80}, nil)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/apartments", gin.H{
		"id":      4,
		"address": "12 Sea Road",
		"city":    "Haifa",
		"country": "Israel",
		"size":    80,
	})

	var got service.ApartmentResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusCreated, &got)
	assert.Equal(suite.T(), int64(4), got.ID)
	assert.Equal(suite.T(), "Haifa", got.City)
}

func (suite *ApartmentHandlerTestSuite) TestCreateApartment_DuplicateLocation() {
	suite.mockApartmentSv.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrApartmentExists)

	w := suite.httpSuite.MakeRequest(http.MethodPost, "/apartments", gin.H{
		"id":      4,
		"address": "12 Sea Road",
		"city":    "Haifa",
		"country": "Israel",
		"size":    80,
	})

	testutils.AssertErrorResponse(suite.T(), w, http.StatusConflict, "already exists")
}

func (suite *ApartmentHandlerTestSuite) TestGetApartment_Success() {
	suite.mockApartmentSv.EXPECT().
		GetByID(int64(4)).
		Return(&service.ApartmentResponse{ID: 4, Address: "12 Sea Road", City: "Haifa", Country: "Israel", Size: 80}, nil)

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/apartments/4", nil)

	var got service.ApartmentResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), 80, got.Size)
}

func (suite *ApartmentHandlerTestSuite) TestGetApartment_NotFound() {
	suite.mockApartmentSv.EXPECT().GetByID(int64(4)).Return(nil, apperrors.ErrApartmentNotFound)

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/apartments/4", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "apartment not found")
}

func (suite *ApartmentHandlerTestSuite) TestGetApartment_MalformedID() {
	w := suite.httpSuite.MakeRequest(http.MethodGet, "/apartments/abc", nil)

	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "invalid apartment ID")
}

func (suite *ApartmentHandlerTestSuite) TestDeleteApartment_Success() {
	suite.mockApartmentSv.EXPECT().Delete(int64(4)).Return(nil)

	w := suite.httpSuite.MakeRequest(http.MethodDelete, "/apartments/4", nil)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ApartmentHandlerTestSuite) TestGetApartmentOwner_Success() {
	suite.mockOwnerSv.EXPECT().GetApartmentOwner(int64(4)).Return(&service.OwnerResponse{ID: 7, Name: "Alice"}, nil)

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/apartments/4/owner", nil)

	var got service.OwnerResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &got)
	assert.Equal(suite.T(), int64(7), got.ID)
}

func (suite *ApartmentHandlerTestSuite) TestGetApartmentOwner_Unowned() {
	suite.mockOwnerSv.EXPECT().GetApartmentOwner(int64(4)).Return(nil, apperrors.ErrOwnershipNotFound)

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/apartments/4/owner", nil)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ApartmentHandlerTestSuite) TestGetApartmentRating_Success() {
	suite.mockRatingSv.EXPECT().ApartmentRating(int64(4)).Return(7.5, nil)

	w := suite.httpSuite.MakeRequest(http.MethodGet, "/apartments/4/rating", nil)

	var got map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), w, &got)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Equal(suite.T(), 7.5, got["rating"])
}

func TestApartmentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ApartmentHandlerTestSuite))
}
