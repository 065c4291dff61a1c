package repositories

import (
	"fmt"
	"strconv"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/pkg/apperrors"
	"github.com/campushub/portal/internal/store"
)

// MedicineRequestRepository handles rows of the medicine request table.
type MedicineRequestRepository struct {
	store *store.Store
}

// NewMedicineRequestRepository creates a new MedicineRequestRepository
func NewMedicineRequestRepository(st *store.Store) *MedicineRequestRepository {
	return &MedicineRequestRepository{store: st}
}

func medicineRequestFromRow(row store.Row) models.MedicineRequest {
	id, _ := strconv.Atoi(row[store.ColID])
	return models.MedicineRequest{
		ID:           id,
		User:         row[store.ColUser],
		MedicineType: row[store.ColMedicineType],
		Details:      row[store.ColDetails],
		Status:       row[store.ColStatus],
		WardenNote:   row[store.ColWardenNote],
		Timestamp:    row[store.ColTimestamp],
	}
}

func medicineRequestToRow(m models.MedicineRequest) store.Row {
	return store.Row{
		store.ColID:           strconv.Itoa(m.ID),
		store.ColUser:         m.User,
		store.ColMedicineType: m.MedicineType,
		store.ColDetails:      m.Details,
		store.ColStatus:       m.Status,
		store.ColWardenNote:   m.WardenNote,
		store.ColTimestamp:    m.Timestamp,
	}
}

// Create inserts a medicine request with ID = row count + 1.
func (r *MedicineRequestRepository) Create(m *models.MedicineRequest) error {
	rows, err := r.store.Load(store.TableMedicineRequests)
	if err != nil {
		return fmt.Errorf("error loading medicine requests: %w", err)
	}

	m.ID = len(rows) + 1
	if err := r.store.Save(store.TableMedicineRequests, append(rows, medicineRequestToRow(*m))); err != nil {
		return fmt.Errorf("error creating medicine request: %w", err)
	}
	return nil
}

// List returns every medicine request in table order.
func (r *MedicineRequestRepository) List() ([]models.MedicineRequest, error) {
	rows, err := r.store.Load(store.TableMedicineRequests)
	if err != nil {
		return nil, fmt.Errorf("error loading medicine requests: %w", err)
	}

	reqs := make([]models.MedicineRequest, 0, len(rows))
	for _, row := range rows {
		reqs = append(reqs, medicineRequestFromRow(row))
	}
	return reqs, nil
}

// GetByID returns the first request whose ID matches.
func (r *MedicineRequestRepository) GetByID(id int) (*models.MedicineRequest, error) {
	rows, err := r.store.Load(store.TableMedicineRequests)
	if err != nil {
		return nil, fmt.Errorf("error loading medicine requests: %w", err)
	}

	for _, row := range rows {
		if store.MatchID(row, id) {
			req := medicineRequestFromRow(row)
			return &req, nil
		}
	}
	return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("medicine request %d not found", id))
}

// SetStatus updates Status (and Warden_Note when note is non-empty) on every
// row whose ID matches.
func (r *MedicineRequestRepository) SetStatus(id int, status, note string) error {
	rows, err := r.store.Load(store.TableMedicineRequests)
	if err != nil {
		return fmt.Errorf("error loading medicine requests: %w", err)
	}

	matched := false
	for _, row := range rows {
		if store.MatchID(row, id) {
			row[store.ColStatus] = status
			if note != "" {
				row[store.ColWardenNote] = note
			}
			matched = true
		}
	}
	if !matched {
		return apperrors.NewResourceNotFoundError(fmt.Sprintf("medicine request %d not found", id))
	}

	if err := r.store.Save(store.TableMedicineRequests, rows); err != nil {
		return fmt.Errorf("error updating medicine request: %w", err)
	}
	return nil
}
