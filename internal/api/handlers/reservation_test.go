package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rental-marketplace-backend/internal/api/handlers"
	apperrors "rental-marketplace-backend/internal/errors"
	"rental-marketplace-backend/internal/mocks"
	"rental-marketplace-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ReservationHandlerTestSuite defines the test suite for ReservationHandler
type ReservationHandlerTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockBookingSv *mocks.MockBookingServiceInterface
	handler       *handlers.ReservationHandler
	router        *gin.Engine
}

func (suite *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockBookingSv = mocks.NewMockBookingServiceInterface(suite.ctrl)
	suite.handler = handlers.NewReservationHandler(suite.mockBookingSv)

	suite.router = gin.New()
	suite.router.POST("/reservations", suite.handler.CreateReservation)
	suite.router.DELETE("/reservations/:customerId/:apartmentId/:startDate", suite.handler.CancelReservation)
}

func (suite *ReservationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ReservationHandlerTestSuite) postReservation(body interface{}) *httptest.ResponseRecorder {
	jsonBytes, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/reservations", bytes.NewBuffer(jsonBytes))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ReservationHandlerTestSuite) TestCreateReservation_Success() {
	suite.mockBookingSv.EXPECT().
		CreateReservation(&service.CreateReservationRequest{
			CustomerID:  1,
			ApartmentID: 2,
			StartDate:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			EndDate:     time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
			TotalPrice:  700,
		}).
		Return(nil)

	w := suite.postReservation(gin.H{
		"customer_id":  1,
		"apartment_id": 2,
		"start_date":   "2025-01-01",
		"end_date":     "2025-01-08",
		"total_price":  700,
	})

	assert.Equal(suite.T(), http.StatusCreated, w.Code)
}

func (suite *ReservationHandlerTestSuite) TestCreateReservation_SlotOccupied() {
	suite.mockBookingSv.EXPECT().CreateReservation(gomock.Any()).Return(apperrors.ErrApartmentUnavailable)

	w := suite.postReservation(gin.H{
		"customer_id":  1,
		"apartment_id": 2,
		"start_date":   "2025-01-03",
		"end_date":     "2025-01-05",
		"total_price":  200,
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "not available")
}

func (suite *ReservationHandlerTestSuite) TestCreateReservation_MalformedDate() {
	w := suite.postReservation(gin.H{
		"customer_id":  1,
		"apartment_id": 2,
		"start_date":   "January 1st",
		"end_date":     "2025-01-08",
		"total_price":  700,
	})

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "invalid start_date")
}

func (suite *ReservationHandlerTestSuite) TestCreateReservation_UnknownApartment() {
	suite.mockBookingSv.EXPECT().CreateReservation(gomock.Any()).Return(apperrors.ErrApartmentNotFound)

	w := suite.postReservation(gin.H{
		"customer_id":  1,
		"apartment_id": 999,
		"start_date":   "2025-01-01",
		"end_date":     "2025-01-08",
		"total_price":  700,
	})

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ReservationHandlerTestSuite) TestCancelReservation_Success() {
	suite.mockBookingSv.EXPECT().
		CancelReservation(int64(1), int64(2), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)).
		Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/reservations/1/2/2025-01-01", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ReservationHandlerTestSuite) TestCancelReservation_NotFound() {
	suite.mockBookingSv.EXPECT().
		CancelReservation(int64(1), int64(2), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)).
		Return(apperrors.ErrReservationNotFound)

	req := httptest.NewRequest(http.MethodDelete, "/reservations/1/2/2025-01-01", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
}

func (suite *ReservationHandlerTestSuite) TestCancelReservation_MalformedDate() {
	req := httptest.NewRequest(http.MethodDelete, "/reservations/1/2/not-a-date", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func TestReservationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}
