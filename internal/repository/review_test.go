package repository

import (
	"testing"

	"rental-marketplace-backend/internal/database/models"
	apperrors "rental-marketplace-backend/internal/errors"
	"rental-marketplace-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// ReviewRepositoryTestSuite tests the ReviewRepository
type ReviewRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ReviewRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ReviewRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewReviewRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ReviewRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest seeds a customer with a completed stay of apartment 1 ending 2025-01-08
func (suite *ReviewRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	db := suite.baseTestSuite.DB
	suite.NoError(db.Create(suite.factories.Customer.Create(1)).Error)
	suite.NoError(db.Create(suite.factories.Apartment.Create(1)).Error)
	suite.NoError(db.Create(suite.factories.Reservation.Create(1, 1, "2025-01-01", "2025-01-08", 700)).Error)
}

// TearDownTest runs after each test
func (suite *ReviewRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateIfStayCompleted tests reviewing after the stay ended
func (suite *ReviewRepositoryTestSuite) TestCreateIfStayCompleted() {
	rows, err := suite.repo.CreateIfStayCompleted(suite.factories.Review.Create(1, 1, "2025-02-01", 8))

	suite.NoError(err)
	suite.Equal(int64(1), rows)

	var review models.Review
	suite.NoError(suite.baseTestSuite.DB.First(&review, "customer_id = ? AND apartment_id = ?", 1, 1).Error)
	suite.Equal(8, review.Rating)
}

// TestCreateIfStayCompletedOnEndDate tests the end-date boundary: a review
// dated exactly on the reservation's end date qualifies
func (suite *ReviewRepositoryTestSuite) TestCreateIfStayCompletedOnEndDate() {
	rows, err := suite.repo.CreateIfStayCompleted(suite.factories.Review.Create(1, 1, "2025-01-08", 8))

	suite.NoError(err)
	suite.Equal(int64(1), rows)
}

// TestCreateIfStayCompletedBeforeEnd tests that a mid-stay review inserts nothing
func (suite *ReviewRepositoryTestSuite) TestCreateIfStayCompletedBeforeEnd() {
	rows, err := suite.repo.CreateIfStayCompleted(suite.factories.Review.Create(1, 1, "2025-01-05", 8))

	suite.NoError(err)
	suite.Equal(int64(0), rows)
}

// TestCreateIfStayCompletedNoReservation tests reviewing an apartment never stayed in
func (suite *ReviewRepositoryTestSuite) TestCreateIfStayCompletedNoReservation() {
	suite.NoError(suite.baseTestSuite.DB.Create(suite.factories.Apartment.Create(2)).Error)

	rows, err := suite.repo.CreateIfStayCompleted(suite.factories.Review.Create(1, 2, "2025-02-01", 8))

	suite.NoError(err)
	suite.Equal(int64(0), rows)
}

// TestCreateIfStayCompletedDuplicate tests that the second review of the pair conflicts
func (suite *ReviewRepositoryTestSuite) TestCreateIfStayCompletedDuplicate() {
	rows, err := suite.repo.CreateIfStayCompleted(suite.factories.Review.Create(1, 1, "2025-02-01", 8))
	suite.NoError(err)
	suite.Equal(int64(1), rows)

	_, err = suite.repo.CreateIfStayCompleted(suite.factories.Review.Create(1, 1, "2025-03-01", 5))

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrReviewExists)
}

// TestUpdateIfDateAdvanced tests overwriting a review with a later date
func (suite *ReviewRepositoryTestSuite) TestUpdateIfDateAdvanced() {
	rows, err := suite.repo.CreateIfStayCompleted(suite.factories.Review.Create(1, 1, "2025-02-01", 8))
	suite.NoError(err)
	suite.Equal(int64(1), rows)

	updated, err := suite.repo.UpdateIfDateAdvanced(1, 1, testutils.Date("2025-03-01"), 4, "changed my mind")
	suite.NoError(err)
	suite.Equal(int64(1), updated)

	var review models.Review
	suite.NoError(suite.baseTestSuite.DB.First(&review, "customer_id = ? AND apartment_id = ?", 1, 1).Error)
	suite.Equal(4, review.Rating)
	suite.Equal("changed my mind", review.Text)
}

// TestUpdateIfDateAdvancedSameDate tests the non-strict boundary: updating
// with the review's current date succeeds
func (suite *ReviewRepositoryTestSuite) TestUpdateIfDateAdvancedSameDate() {
	rows, err := suite.repo.CreateIfStayCompleted(suite.factories.Review.Create(1, 1, "2025-02-01", 8))
	suite.NoError(err)
	suite.Equal(int64(1), rows)

	updated, err := suite.repo.UpdateIfDateAdvanced(1, 1, testutils.Date("2025-02-01"), 6, "same day edit")
	suite.NoError(err)
	suite.Equal(int64(1), updated)
}

// TestUpdateIfDateAdvancedEarlierDate tests that a back-dated update matches nothing
func (suite *ReviewRepositoryTestSuite) TestUpdateIfDateAdvancedEarlierDate() {
	rows, err := suite.repo.CreateIfStayCompleted(suite.factories.Review.Create(1, 1, "2025-02-01", 8))
	suite.NoError(err)
	suite.Equal(int64(1), rows)

	updated, err := suite.repo.UpdateIfDateAdvanced(1, 1, testutils.Date("2025-01-15"), 6, "too early")
	suite.NoError(err)
	suite.Equal(int64(0), updated)

	// The original review is untouched
	var review models.Review
	suite.NoError(suite.baseTestSuite.DB.First(&review, "customer_id = ? AND apartment_id = ?", 1, 1).Error)
	suite.Equal(8, review.Rating)
}

// TestUpdateIfDateAdvancedMissingReview tests updating a review that never existed
func (suite *ReviewRepositoryTestSuite) TestUpdateIfDateAdvancedMissingReview() {
	updated, err := suite.repo.UpdateIfDateAdvanced(1, 1, testutils.Date("2025-03-01"), 6, "nothing there")

	suite.NoError(err)
	suite.Equal(int64(0), updated)
}

// Run the test suite
func TestReviewRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ReviewRepositoryTestSuite))
}
