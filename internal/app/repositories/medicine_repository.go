package repositories

import (
	"fmt"
	"strconv"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/pkg/apperrors"
	"github.com/campushub/portal/internal/pkg/logger"
	"github.com/campushub/portal/internal/store"
)

// MedicineRepository handles rows of the clinic stock table. Medicine_Name
// is the de-facto primary key: updates and deletes address rows by name and
// touch every row carrying it (there should be at most one).
type MedicineRepository struct {
	store *store.Store
}

// NewMedicineRepository creates a new MedicineRepository
func NewMedicineRepository(st *store.Store) *MedicineRepository {
	return &MedicineRepository{store: st}
}

func medicineFromRow(row store.Row) models.Medicine {
	return models.Medicine{
		Name:            row[store.ColMedicineName],
		Category:        row[store.ColCategory],
		StockCount:      row[store.ColStockCount],
		ManufactureDate: row[store.ColManufactureDate],
		ExpiryDate:      row[store.ColExpiryDate],
	}
}

func medicineToRow(m models.Medicine) store.Row {
	return store.Row{
		store.ColMedicineName:    m.Name,
		store.ColCategory:        m.Category,
		store.ColStockCount:      m.StockCount,
		store.ColManufactureDate: m.ManufactureDate,
		store.ColExpiryDate:      m.ExpiryDate,
	}
}

// List returns every medicine in table order.
func (r *MedicineRepository) List() ([]models.Medicine, error) {
	rows, err := r.store.Load(store.TableMedicines)
	if err != nil {
		return nil, fmt.Errorf("error loading medicines: %w", err)
	}

	meds := make([]models.Medicine, 0, len(rows))
	for _, row := range rows {
		meds = append(meds, medicineFromRow(row))
	}
	return meds, nil
}

// Upsert replaces the full row for an existing name or appends a new one.
func (r *MedicineRepository) Upsert(m models.Medicine) error {
	rows, err := r.store.Load(store.TableMedicines)
	if err != nil {
		return fmt.Errorf("error loading medicines: %w", err)
	}

	matched := false
	for _, row := range rows {
		if row[store.ColMedicineName] == m.Name {
			row[store.ColCategory] = m.Category
			row[store.ColStockCount] = m.StockCount
			row[store.ColManufactureDate] = m.ManufactureDate
			row[store.ColExpiryDate] = m.ExpiryDate
			matched = true
		}
	}
	if !matched {
		rows = append(rows, medicineToRow(m))
	}

	if err := r.store.Save(store.TableMedicines, rows); err != nil {
		return fmt.Errorf("error saving medicines: %w", err)
	}
	return nil
}

// DeleteByName removes every row with the given name.
func (r *MedicineRepository) DeleteByName(name string) error {
	rows, err := r.store.Load(store.TableMedicines)
	if err != nil {
		return fmt.Errorf("error loading medicines: %w", err)
	}

	kept := rows[:0]
	removed := 0
	for _, row := range rows {
		if row[store.ColMedicineName] == name {
			removed++
			continue
		}
		kept = append(kept, row)
	}
	if removed == 0 {
		return apperrors.NewResourceNotFoundError(fmt.Sprintf("medicine %q not found", name))
	}

	if err := r.store.Save(store.TableMedicines, kept); err != nil {
		return fmt.Errorf("error deleting medicine: %w", err)
	}

	logger.Info().Str("medicine", name).Int("rows", removed).Msg("Medicine removed from stock")
	return nil
}

// Decrement reduces the named medicine's stock by one and rewrites the
// table. It refuses without touching anything when the name is absent or the
// current stock is zero (or not a number): fulfilled requests must never
// bring stock below zero.
func (r *MedicineRepository) Decrement(name string) error {
	rows, err := r.store.Load(store.TableMedicines)
	if err != nil {
		return fmt.Errorf("error loading medicines: %w", err)
	}

	var matches []store.Row
	for _, row := range rows {
		if row[store.ColMedicineName] == name {
			matches = append(matches, row)
		}
	}
	if len(matches) == 0 {
		return apperrors.ErrMedicineNotFound
	}

	current, err := strconv.Atoi(matches[0][store.ColStockCount])
	if err != nil || current <= 0 {
		return apperrors.ErrOutOfStock
	}

	next := strconv.Itoa(current - 1)
	for _, row := range matches {
		row[store.ColStockCount] = next
	}

	if err := r.store.Save(store.TableMedicines, rows); err != nil {
		return fmt.Errorf("error updating stock: %w", err)
	}
	return nil
}
