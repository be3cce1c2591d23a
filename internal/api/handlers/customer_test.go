package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rental-marketplace-backend/internal/api/handlers"
	"rental-marketplace-backend/internal/database/models"
	apperrors "rental-marketplace-backend/internal/errors"
	"rental-marketplace-backend/internal/mocks"
	"rental-marketplace-backend/internal/repository"
	"rental-marketplace-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// CustomerHandlerTestSuite defines the test suite for CustomerHandler
type CustomerHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockCustomerSv  *mocks.MockCustomerServiceInterface
	mockRecommendSv *mocks.MockRecommendationServiceInterface
	handler         *handlers.CustomerHandler
	router          *gin.Engine
}

func (suite *CustomerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCustomerSv = mocks.NewMockCustomerServiceInterface(suite.ctrl)
	suite.mockRecommendSv = mocks.NewMockRecommendationServiceInterface(suite.ctrl)
	suite.handler = handlers.NewCustomerHandler(suite.mockCustomerSv, suite.mockRecommendSv)

	suite.router = gin.New()
	suite.router.POST("/customers", suite.handler.CreateCustomer)
	suite.router.GET("/customers/:id", suite.handler.GetCustomer)
	suite.router.DELETE("/customers/:id", suite.handler.DeleteCustomer)
	suite.router.GET("/customers/:id/recommendations", suite.handler.GetRecommendations)
}

func (suite *CustomerHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CustomerHandlerTestSuite) TestCreateCustomer_Success() {
	suite.mockCustomerSv.EXPECT().
		Create(&service.CreateCustomerRequest{ID: 3, Name: "Dana"}).
		Return(&service.CustomerResponse{ID: 3, Name: "Dana"}, nil)

	jsonBytes, _ := json.Marshal(gin.H{"id": 3, "name": "Dana"})
	req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewBuffer(jsonBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *CustomerHandlerTestSuite) TestCreateCustomer_Conflict() {
	suite.mockCustomerSv.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrCustomerExists)

	jsonBytes, _ := json.Marshal(gin.H{"id": 3, "name": "Dana"})
	req := httptest.NewRequest(http.MethodPost, "/customers", bytes.NewBuffer(jsonBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *CustomerHandlerTestSuite) TestGetCustomer_NotFound() {
	suite.mockCustomerSv.EXPECT().GetByID(int64(3)).Return(nil, apperrors.ErrCustomerNotFound)

	req := httptest.NewRequest(http.MethodGet, "/customers/3", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *CustomerHandlerTestSuite) TestDeleteCustomer_Success() {
	suite.mockCustomerSv.EXPECT().Delete(int64(3)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/customers/3", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *CustomerHandlerTestSuite) TestGetRecommendations_Success() {
	scores := []repository.ApartmentScore{
		{Apartment: models.Apartment{ID: 2, Address: "2 Test Street", City: "Haifa", Country: "Israel", Size: 50}, Score: 10},
		{Apartment: models.Apartment{ID: 3, Address: "3 Test Street", City: "Haifa", Country: "Israel", Size: 50}, Score: 4},
	}
	suite.mockRecommendSv.EXPECT().Recommend(int64(1)).Return(scores, nil)

	req := httptest.NewRequest(http.MethodGet, "/customers/1/recommendations", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got []repository.ApartmentScore
	err := json.Unmarshal(w.Body.Bytes(), &got)
	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), got, 2)
	assert.Equal(suite.T(), int64(2), got[0].Apartment.ID)
}

func (suite *CustomerHandlerTestSuite) TestGetRecommendations_MalformedID() {
	req := httptest.NewRequest(http.MethodGet, "/customers/abc/recommendations", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "invalid customer ID")
}

func TestCustomerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerHandlerTestSuite))
}
