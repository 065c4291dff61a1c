package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/app/repositories"
	"github.com/campushub/portal/internal/pkg/apperrors"
)

const (
	// lowStockThreshold flags medicines with fewer units left.
	lowStockThreshold = 5
	// nearExpiryDays is how far ahead the expiry warning looks, inclusive.
	nearExpiryDays = 30
)

// expiryLayouts are tried in order when parsing Expiry_Date. The first is
// what the API writes; the rest tolerate hand-edited table files.
var expiryLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"02-01-2006",
}

// StockAlerts is the derived view over the medicine table: three
// classifications recomputed from scratch on every call.
type StockAlerts struct {
	Expired    []models.Medicine `json:"expired"`
	NearExpiry []models.Medicine `json:"nearExpiry"`
	LowStock   []models.Medicine `json:"lowStock"`
}

// parseExpiry returns the expiry date of a medicine, or false when the value
// does not parse under any accepted layout.
func parseExpiry(value string) (time.Time, bool) {
	for _, layout := range expiryLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(value)); err == nil {
			return dateOnly(t), true
		}
	}
	return time.Time{}, false
}

// dateOnly strips the time-of-day and zone so expiry comparisons work on
// calendar days.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ClassifyStock computes the expired, near-expiry and low-stock sets as of
// today. A row whose expiry date fails to parse is treated as not expired
// and not near expiry; a row whose stock count fails to parse is not flagged
// low. That tolerance is policy, not an error path: the row itself stays in
// the table untouched.
func ClassifyStock(meds []models.Medicine, today time.Time) StockAlerts {
	today = dateOnly(today)
	warningThreshold := today.AddDate(0, 0, nearExpiryDays)

	var alerts StockAlerts
	for _, m := range meds {
		if exp, ok := parseExpiry(m.ExpiryDate); ok {
			switch {
			case exp.Before(today):
				alerts.Expired = append(alerts.Expired, m)
			case !exp.After(warningThreshold):
				alerts.NearExpiry = append(alerts.NearExpiry, m)
			}
		}

		if count, err := strconv.Atoi(strings.TrimSpace(m.StockCount)); err == nil && count < lowStockThreshold {
			alerts.LowStock = append(alerts.LowStock, m)
		}
	}
	return alerts
}

// MedicineService handles the clinic stock table and its derived alert view.
type MedicineService struct {
	medicineRepo *repositories.MedicineRepository
	now          func() time.Time
}

// NewMedicineService creates a new medicine service instance
func NewMedicineService(medicineRepo *repositories.MedicineRepository) *MedicineService {
	return &MedicineService{
		medicineRepo: medicineRepo,
		now:          time.Now,
	}
}

// List returns the stock, optionally narrowed by a case-insensitive name
// substring and an exact category. Visible to every role.
func (s *MedicineService) List(query, category string) ([]models.Medicine, error) {
	meds, err := s.medicineRepo.List()
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" && category == "" {
		return meds, nil
	}

	filtered := make([]models.Medicine, 0, len(meds))
	for _, m := range meds {
		if query != "" && !strings.Contains(strings.ToLower(m.Name), query) {
			continue
		}
		if category != "" && m.Category != category {
			continue
		}
		filtered = append(filtered, m)
	}
	return filtered, nil
}

// Upsert adds a medicine or replaces the full row of an existing name.
func (s *MedicineService) Upsert(name, category string, stockCount int, manufactureDate, expiryDate string) (*models.Medicine, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.NewValidationError("medicine name is required")
	}
	if stockCount < 0 {
		return nil, apperrors.NewValidationError("stock count must not be negative")
	}

	med := models.Medicine{
		Name:            name,
		Category:        category,
		StockCount:      strconv.Itoa(stockCount),
		ManufactureDate: manufactureDate,
		ExpiryDate:      expiryDate,
	}
	if err := s.medicineRepo.Upsert(med); err != nil {
		return nil, err
	}
	return &med, nil
}

// Delete removes a medicine from stock by name.
func (s *MedicineService) Delete(name string) error {
	return s.medicineRepo.DeleteByName(name)
}

// Alerts returns the current expired/near-expiry/low-stock view.
func (s *MedicineService) Alerts() (StockAlerts, error) {
	meds, err := s.medicineRepo.List()
	if err != nil {
		return StockAlerts{}, err
	}
	return ClassifyStock(meds, s.now()), nil
}
