package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/portal/internal/app/models"
)

func TestClassifyStock(t *testing.T) {
	today := time.Date(2026, 8, 29, 15, 30, 0, 0, time.UTC)

	testCases := []struct {
		name           string
		medicine       models.Medicine
		wantExpired    bool
		wantNearExpiry bool
		wantLowStock   bool
	}{
		{
			name:        "expired yesterday",
			medicine:    models.Medicine{Name: "Aspirin", StockCount: "10", ExpiryDate: "2026-08-28"},
			wantExpired: true,
		},
		{
			name:           "expires today is near expiry, not expired",
			medicine:       models.Medicine{Name: "Ibuprofen", StockCount: "10", ExpiryDate: "2026-08-29"},
			wantNearExpiry: true,
		},
		{
			name:           "expires exactly 30 days out",
			medicine:       models.Medicine{Name: "Cetirizine", StockCount: "10", ExpiryDate: "2026-09-28"},
			wantNearExpiry: true,
		},
		{
			name:     "expires 31 days out is fine",
			medicine: models.Medicine{Name: "Paracetamol", StockCount: "10", ExpiryDate: "2026-09-29"},
		},
		{
			name:     "unparseable expiry is never flagged",
			medicine: models.Medicine{Name: "Mystery", StockCount: "10", ExpiryDate: "soon"},
		},
		{
			name:         "stock below threshold",
			medicine:     models.Medicine{Name: "Bandage", StockCount: "4", ExpiryDate: "2027-01-01"},
			wantLowStock: true,
		},
		{
			name:     "stock at threshold is fine",
			medicine: models.Medicine{Name: "Gauze", StockCount: "5", ExpiryDate: "2027-01-01"},
		},
		{
			name:     "unparseable stock is never flagged",
			medicine: models.Medicine{Name: "Ointment", StockCount: "plenty", ExpiryDate: "2027-01-01"},
		},
		{
			name:           "expiry and stock flags are independent",
			medicine:       models.Medicine{Name: "Insulin", StockCount: "2", ExpiryDate: "2026-09-10"},
			wantNearExpiry: true,
			wantLowStock:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			alerts := ClassifyStock([]models.Medicine{tc.medicine}, today)

			assert.Equal(t, tc.wantExpired, len(alerts.Expired) == 1, "expired")
			assert.Equal(t, tc.wantNearExpiry, len(alerts.NearExpiry) == 1, "near expiry")
			assert.Equal(t, tc.wantLowStock, len(alerts.LowStock) == 1, "low stock")
		})
	}
}

func TestClassifyStock_AlternateDateLayouts(t *testing.T) {
	today := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	meds := []models.Medicine{
		{Name: "RFC", StockCount: "10", ExpiryDate: "2026-08-01T00:00:00Z"},
		{Name: "DayFirst", StockCount: "10", ExpiryDate: "01-08-2026"},
	}

	alerts := ClassifyStock(meds, today)
	assert.Len(t, alerts.Expired, 2)
}

func TestMedicineService_ListFilters(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewMedicineService(repos.Medicines)

	_, err := svc.Upsert("Paracetamol", "Painkiller", 20, "2026-01-01", "2027-01-01")
	require.NoError(t, err)
	_, err = svc.Upsert("Cetirizine", "Allergy", 15, "2026-01-01", "2027-01-01")
	require.NoError(t, err)

	all, err := svc.List("", "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byName, err := svc.List("para", "")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, "Paracetamol", byName[0].Name)

	byCategory, err := svc.List("", "Allergy")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "Cetirizine", byCategory[0].Name)

	none, err := svc.List("para", "Allergy")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMedicineService_UpsertReplacesExistingRow(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewMedicineService(repos.Medicines)

	_, err := svc.Upsert("Paracetamol", "Painkiller", 20, "2026-01-01", "2027-01-01")
	require.NoError(t, err)
	_, err = svc.Upsert("Paracetamol", "Painkiller", 8, "2026-02-01", "2027-02-01")
	require.NoError(t, err)

	all, err := svc.List("", "")
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "8", all[0].StockCount)
	assert.Equal(t, "2027-02-01", all[0].ExpiryDate)
}

func TestMedicineService_UpsertValidation(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewMedicineService(repos.Medicines)

	_, err := svc.Upsert("  ", "Painkiller", 5, "", "")
	assert.Error(t, err)

	_, err = svc.Upsert("Aspirin", "Painkiller", -1, "", "")
	assert.Error(t, err)
}

func TestMedicineService_DeleteMissing(t *testing.T) {
	repos := newTestRepos(t)
	svc := NewMedicineService(repos.Medicines)

	assert.Error(t, svc.Delete("NoSuchMedicine"))
}
