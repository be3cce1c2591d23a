package repository

import (
	"rental-marketplace-backend/internal/database/models"

	"gorm.io/gorm"
)

// OwnerReservationCount is one row of the reservations-per-owner report.
// Rows are keyed by owner id; two owners sharing a name stay separate.
type OwnerReservationCount struct {
	OwnerID      int64  `json:"owner_id"`
	Name         string `json:"name"`
	Reservations int64  `json:"reservations"`
}

// MonthlyProfit is the marketplace profit attributed to one calendar month.
type MonthlyProfit struct {
	Month  int     `json:"month"`
	Profit float64 `json:"profit"`
}

// ApartmentScore pairs an apartment with its personalized recommendation score.
type ApartmentScore struct {
	Apartment models.Apartment `json:"apartment"`
	Score     float64          `json:"score"`
}

// AnalyticsRepository computes the derived read-only views. Every query runs
// against current table state; nothing here is cached or materialized.
type AnalyticsRepository struct {
	db *gorm.DB
}

// Ensure AnalyticsRepository implements AnalyticsRepositoryInterface
var _ AnalyticsRepositoryInterface = (*AnalyticsRepository)(nil)

// NewAnalyticsRepository creates a new analytics repository
func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// ApartmentRating returns the arithmetic mean of the apartment's review
// ratings, or 0 when the apartment has no reviews (or does not exist).
func (r *AnalyticsRepository) ApartmentRating(apartmentID int64) (float64, error) {
	var rating float64
	err := r.db.Raw(`
		SELECT COALESCE(AVG(rating), 0)
		FROM reviews
		WHERE apartment_id = ?`, apartmentID).Scan(&rating).Error
	return rating, err
}

// OwnerRating returns the mean of per-apartment mean ratings over the owner's
// apartments that have at least one review. Unreviewed apartments do not
// contribute, and an owner with no reviewed apartments rates 0.
func (r *AnalyticsRepository) OwnerRating(ownerID int64) (float64, error) {
	var rating float64
	err := r.db.Raw(`
		SELECT COALESCE(AVG(apartment_rating), 0)
		FROM (
			SELECT AVG(reviews.rating) AS apartment_rating
			FROM ownerships
			JOIN reviews ON reviews.apartment_id = ownerships.apartment_id
			WHERE ownerships.owner_id = ?
			GROUP BY reviews.apartment_id
		) rated`, ownerID).Scan(&rating).Error
	return rating, err
}

// TopCustomer returns the customer with the most reservations, lowest id on
// ties. A customer with no reservations still participates with count 0.
func (r *AnalyticsRepository) TopCustomer() (*models.Customer, error) {
	var customer models.Customer
	tx := r.db.Raw(`
		SELECT customers.id, customers.name
		FROM customers
		LEFT JOIN reservations ON reservations.customer_id = customers.id
		GROUP BY customers.id, customers.name
		ORDER BY COUNT(reservations.customer_id) DESC, customers.id ASC
		LIMIT 1`).Scan(&customer)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &customer, nil
}

// ReservationsPerOwner reports, for every owner, the total number of
// reservations across all apartments they own. Owners without apartments or
// whose apartments have no reservations report 0.
func (r *AnalyticsRepository) ReservationsPerOwner() ([]OwnerReservationCount, error) {
	var counts []OwnerReservationCount
	err := r.db.Raw(`
		SELECT owners.id AS owner_id, owners.name, COUNT(reservations.apartment_id) AS reservations
		FROM owners
		LEFT JOIN ownerships ON ownerships.owner_id = owners.id
		LEFT JOIN reservations ON reservations.apartment_id = ownerships.apartment_id
		GROUP BY owners.id, owners.name
		ORDER BY owners.id ASC`).Scan(&counts).Error
	return counts, err
}

// AllLocationOwners returns the owners whose apartments collectively cover
// every distinct (city, country) pair present among all apartments.
func (r *AnalyticsRepository) AllLocationOwners() ([]models.Owner, error) {
	var owners []models.Owner
	err := r.db.Raw(`
		SELECT owners.id, owners.name
		FROM owners
		JOIN ownerships ON ownerships.owner_id = owners.id
		JOIN apartments ON apartments.id = ownerships.apartment_id
		GROUP BY owners.id, owners.name
		HAVING COUNT(DISTINCT (apartments.city, apartments.country)) =
			(SELECT COUNT(DISTINCT (city, country)) FROM apartments)
		ORDER BY owners.id ASC`).Scan(&owners).Error
	return owners, err
}

// BestValueForMoney returns the apartment maximizing average rating divided by
// average nightly cost, lowest id on ties. Apartments missing either side of
// the ratio compete with value 0, so any apartment can win in a sparse store.
func (r *AnalyticsRepository) BestValueForMoney() (*models.Apartment, error) {
	var apartment models.Apartment
	tx := r.db.Raw(`
		SELECT apartments.*
		FROM apartments
		LEFT JOIN (
			SELECT cost.apartment_id, rated.avg_rating / cost.avg_night AS value_for_money
			FROM (
				SELECT apartment_id, AVG(total_price / (end_date - start_date)) AS avg_night
				FROM reservations
				GROUP BY apartment_id
			) cost
			JOIN (
				SELECT apartment_id, AVG(rating) AS avg_rating
				FROM reviews
				GROUP BY apartment_id
			) rated USING (apartment_id)
		) vfm ON vfm.apartment_id = apartments.id
		ORDER BY COALESCE(vfm.value_for_money, 0) DESC, apartments.id ASC
		LIMIT 1`).Scan(&apartment)
	if tx.Error != nil {
		return nil, tx.Error
	}
	if tx.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &apartment, nil
}

// ProfitPerMonth reports, for each of the twelve months of the year, the
// marketplace's margin share of total_price over reservations ending in that
// month. All twelve months are always present, in order, with 0 when empty.
func (r *AnalyticsRepository) ProfitPerMonth(year int, margin float64) ([]MonthlyProfit, error) {
	var profits []MonthlyProfit
	err := r.db.Raw(`
		SELECT months.month, ? * COALESCE(SUM(reservations.total_price), 0) AS profit
		FROM generate_series(1, 12) AS months(month)
		LEFT JOIN reservations
			ON EXTRACT(MONTH FROM reservations.end_date) = months.month
			AND EXTRACT(YEAR FROM reservations.end_date) = ?
		GROUP BY months.month
		ORDER BY months.month ASC`, margin, year).Scan(&profits).Error
	return profits, err
}

type recommendationRow struct {
	ID      int64
	Address string
	City    string
	Country string
	Size    int
	Score   float64
}

// Recommendations scores every apartment the customer has not reviewed from
// peer reviews recalibrated by the pairwise rating ratio. For an ordered pair
// (peer, customer) the ratio is the mean of customer_rating / peer_rating over
// commonly reviewed apartments; each peer review of a candidate apartment
// contributes clamp(peer_rating * ratio, 1, 10), and the score is the mean of
// those contributions. Apartments with no qualifying peer reviews are omitted.
func (r *AnalyticsRepository) Recommendations(customerID int64) ([]ApartmentScore, error) {
	var rows []recommendationRow
	err := r.db.Raw(`
		WITH rating_ratio AS (
			SELECT peer.customer_id AS from_customer,
			       target.customer_id AS to_customer,
			       AVG(target.rating::float / peer.rating::float) AS ratio
			FROM reviews peer
			JOIN reviews target
				ON peer.apartment_id = target.apartment_id
				AND peer.customer_id <> target.customer_id
			GROUP BY peer.customer_id, target.customer_id
		)
		SELECT apartments.id, apartments.address, apartments.city, apartments.country,
		       apartments.size, scored.score
		FROM apartments
		JOIN (
			SELECT peer_reviews.apartment_id,
			       AVG(CASE
			           WHEN peer_reviews.rating * rating_ratio.ratio > 10 THEN 10.0
			           WHEN peer_reviews.rating * rating_ratio.ratio < 1 THEN 1.0
			           ELSE peer_reviews.rating * rating_ratio.ratio
			       END) AS score
			FROM reviews peer_reviews
			JOIN rating_ratio
				ON rating_ratio.from_customer = peer_reviews.customer_id
				AND rating_ratio.to_customer = ?
			WHERE peer_reviews.apartment_id NOT IN (
				SELECT apartment_id FROM reviews WHERE customer_id = ?
			)
			GROUP BY peer_reviews.apartment_id
		) scored ON scored.apartment_id = apartments.id`,
		customerID, customerID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	scores := make([]ApartmentScore, len(rows))
	for i, row := range rows {
		scores[i] = ApartmentScore{
			Apartment: models.Apartment{
				ID:      row.ID,
				Address: row.Address,
				City:    row.City,
				Country: row.Country,
				Size:    row.Size,
			},
			Score: row.Score,
		}
	}
	return scores, nil
}
