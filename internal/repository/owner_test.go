package repository

import (
	"errors"
	"testing"

	"rental-marketplace-backend/internal/database/models"
	apperrors "rental-marketplace-backend/internal/errors"
	"rental-marketplace-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OwnerRepositoryTestSuite tests the OwnerRepository and OwnershipRepository
type OwnerRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	ownerRepo     *OwnerRepository
	ownershipRepo *OwnershipRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *OwnerRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.ownerRepo = NewOwnerRepository(suite.baseTestSuite.DB)
	suite.ownershipRepo = NewOwnershipRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *OwnerRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OwnerRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OwnerRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating an owner
func (suite *OwnerRepositoryTestSuite) TestCreate() {
	err := suite.ownerRepo.Create(suite.factories.Owner.Create(1))
	suite.NoError(err)

	owner, err := suite.ownerRepo.GetByID(1)
	suite.NoError(err)
	suite.Equal(int64(1), owner.ID)
}

// TestCreateDuplicateID tests creating two owners with the same id
func (suite *OwnerRepositoryTestSuite) TestCreateDuplicateID() {
	suite.NoError(suite.ownerRepo.Create(suite.factories.Owner.Create(1)))

	err := suite.ownerRepo.Create(suite.factories.Owner.WithName(1, "Someone Else"))

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrOwnerExists)
}

// TestGetByIDNotFound tests fetching a missing owner
func (suite *OwnerRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.ownerRepo.GetByID(42)

	suite.Error(err)
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

// TestDelete tests deleting an owner
func (suite *OwnerRepositoryTestSuite) TestDelete() {
	suite.NoError(suite.ownerRepo.Create(suite.factories.Owner.Create(1)))

	rows, err := suite.ownerRepo.Delete(1)
	suite.NoError(err)
	suite.Equal(int64(1), rows)

	_, err = suite.ownerRepo.GetByID(1)
	suite.Error(err)
}

// TestDeleteNoMatch tests deleting a missing owner
func (suite *OwnerRepositoryTestSuite) TestDeleteNoMatch() {
	rows, err := suite.ownerRepo.Delete(42)

	suite.NoError(err)
	suite.Equal(int64(0), rows)
}

// TestDeleteCascadesOwnerships tests that deleting an owner frees their apartments
func (suite *OwnerRepositoryTestSuite) TestDeleteCascadesOwnerships() {
	suite.NoError(suite.ownerRepo.Create(suite.factories.Owner.Create(1)))
	suite.NoError(suite.baseTestSuite.DB.Create(suite.factories.Apartment.Create(1)).Error)
	suite.NoError(suite.ownershipRepo.Claim(1, 1))

	rows, err := suite.ownerRepo.Delete(1)
	suite.NoError(err)
	suite.Equal(int64(1), rows)

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.Ownership{}).Count(&count).Error)
	suite.Equal(int64(0), count)
}

// TestClaim tests claiming an apartment
func (suite *OwnerRepositoryTestSuite) TestClaim() {
	suite.NoError(suite.ownerRepo.Create(suite.factories.Owner.Create(1)))
	suite.NoError(suite.baseTestSuite.DB.Create(suite.factories.Apartment.Create(1)).Error)

	err := suite.ownershipRepo.Claim(1, 1)
	suite.NoError(err)

	owner, err := suite.ownerRepo.GetByApartmentID(1)
	suite.NoError(err)
	suite.Equal(int64(1), owner.ID)
}

// TestClaimAlreadyOwned tests that a second claim conflicts even from a different owner
func (suite *OwnerRepositoryTestSuite) TestClaimAlreadyOwned() {
	suite.NoError(suite.ownerRepo.Create(suite.factories.Owner.Create(1)))
	suite.NoError(suite.ownerRepo.Create(suite.factories.Owner.Create(2)))
	suite.NoError(suite.baseTestSuite.DB.Create(suite.factories.Apartment.Create(1)).Error)
	suite.NoError(suite.ownershipRepo.Claim(1, 1))

	err := suite.ownershipRepo.Claim(2, 1)

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrOwnershipExists)
}

// TestClaimUnknownOwner tests claiming with an owner that does not exist
func (suite *OwnerRepositoryTestSuite) TestClaimUnknownOwner() {
	suite.NoError(suite.baseTestSuite.DB.Create(suite.factories.Apartment.Create(1)).Error)

	err := suite.ownershipRepo.Claim(42, 1)

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrOwnerNotFound)
}

// TestClaimUnknownApartment tests claiming an apartment that does not exist
func (suite *OwnerRepositoryTestSuite) TestClaimUnknownApartment() {
	suite.NoError(suite.ownerRepo.Create(suite.factories.Owner.Create(1)))

	err := suite.ownershipRepo.Claim(1, 42)

	suite.Error(err)
	suite.ErrorIs(err, apperrors.ErrApartmentNotFound)
}

// TestDrop tests dropping an ownership link
func (suite *OwnerRepositoryTestSuite) TestDrop() {
	suite.NoError(suite.ownerRepo.Create(suite.factories.Owner.Create(1)))
	suite.NoError(suite.baseTestSuite.DB.Create(suite.factories.Apartment.Create(1)).Error)
	suite.NoError(suite.ownershipRepo.Claim(1, 1))

	rows, err := suite.ownershipRepo.Drop(1, 1)
	suite.NoError(err)
	suite.Equal(int64(1), rows)

	// The apartment is claimable again
	suite.NoError(suite.ownershipRepo.Claim(1, 1))
}

// TestDropWrongOwner tests that dropping requires the exact (owner, apartment) pair
func (suite *OwnerRepositoryTestSuite) TestDropWrongOwner() {
	suite.NoError(suite.ownerRepo.Create(suite.factories.Owner.Create(1)))
	suite.NoError(suite.ownerRepo.Create(suite.factories.Owner.Create(2)))
	suite.NoError(suite.baseTestSuite.DB.Create(suite.factories.Apartment.Create(1)).Error)
	suite.NoError(suite.ownershipRepo.Claim(1, 1))

	rows, err := suite.ownershipRepo.Drop(2, 1)

	suite.NoError(err)
	suite.Equal(int64(0), rows)
}

// TestGetByApartmentIDUnowned tests fetching the owner of an unclaimed apartment
func (suite *OwnerRepositoryTestSuite) TestGetByApartmentIDUnowned() {
	suite.NoError(suite.baseTestSuite.DB.Create(suite.factories.Apartment.Create(1)).Error)

	_, err := suite.ownerRepo.GetByApartmentID(1)

	suite.Error(err)
	suite.True(errors.Is(err, gorm.ErrRecordNotFound))
}

// TestGetApartments tests listing an owner's apartments in id order
func (suite *OwnerRepositoryTestSuite) TestGetApartments() {
	suite.NoError(suite.ownerRepo.Create(suite.factories.Owner.Create(1)))
	suite.NoError(suite.baseTestSuite.DB.Create(suite.factories.Apartment.Create(3)).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.factories.Apartment.Create(1)).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.factories.Apartment.Create(2)).Error)
	suite.NoError(suite.ownershipRepo.Claim(1, 3))
	suite.NoError(suite.ownershipRepo.Claim(1, 1))

	apartments, err := suite.ownerRepo.GetApartments(1)

	suite.NoError(err)
	suite.Len(apartments, 2)
	suite.Equal(int64(1), apartments[0].ID)
	suite.Equal(int64(3), apartments[1].ID)
}

// TestGetApartmentsEmpty tests listing apartments for an owner without any
func (suite *OwnerRepositoryTestSuite) TestGetApartmentsEmpty() {
	suite.NoError(suite.ownerRepo.Create(suite.factories.Owner.Create(1)))

	apartments, err := suite.ownerRepo.GetApartments(1)

	suite.NoError(err)
	suite.Empty(apartments)
}

// Run the test suite
func TestOwnerRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OwnerRepositoryTestSuite))
}
