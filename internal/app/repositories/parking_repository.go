package repositories

import (
	"fmt"
	"strconv"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/pkg/apperrors"
	"github.com/campushub/portal/internal/store"
)

// ParkingRepository handles rows of the parking table.
type ParkingRepository struct {
	store *store.Store
}

// NewParkingRepository creates a new ParkingRepository
func NewParkingRepository(st *store.Store) *ParkingRepository {
	return &ParkingRepository{store: st}
}

func parkingFromRow(row store.Row) models.ParkingRequest {
	id, _ := strconv.Atoi(row[store.ColID])
	return models.ParkingRequest{
		ID:        id,
		User:      row[store.ColUser],
		VehicleNo: row[store.ColVehicleNo],
		Slot:      row[store.ColSlot],
		Status:    row[store.ColStatus],
		Timestamp: row[store.ColTimestamp],
	}
}

func parkingToRow(p models.ParkingRequest) store.Row {
	return store.Row{
		store.ColID:        strconv.Itoa(p.ID),
		store.ColUser:      p.User,
		store.ColVehicleNo: p.VehicleNo,
		store.ColSlot:      p.Slot,
		store.ColStatus:    p.Status,
		store.ColTimestamp: p.Timestamp,
	}
}

// Create inserts a parking request with ID = row count + 1.
func (r *ParkingRepository) Create(p *models.ParkingRequest) error {
	rows, err := r.store.Load(store.TableParking)
	if err != nil {
		return fmt.Errorf("error loading parking requests: %w", err)
	}

	p.ID = len(rows) + 1
	if err := r.store.Save(store.TableParking, append(rows, parkingToRow(*p))); err != nil {
		return fmt.Errorf("error creating parking request: %w", err)
	}
	return nil
}

// List returns every parking request in table order.
func (r *ParkingRepository) List() ([]models.ParkingRequest, error) {
	rows, err := r.store.Load(store.TableParking)
	if err != nil {
		return nil, fmt.Errorf("error loading parking requests: %w", err)
	}

	reqs := make([]models.ParkingRequest, 0, len(rows))
	for _, row := range rows {
		reqs = append(reqs, parkingFromRow(row))
	}
	return reqs, nil
}

// Resolve writes the decision onto every row whose ID matches. Slot and
// Status land in the same rewrite; an empty slot leaves the stored label
// untouched (rejections carry no slot).
func (r *ParkingRepository) Resolve(id int, slot, status string) error {
	rows, err := r.store.Load(store.TableParking)
	if err != nil {
		return fmt.Errorf("error loading parking requests: %w", err)
	}

	matched := false
	for _, row := range rows {
		if store.MatchID(row, id) {
			if slot != "" {
				row[store.ColSlot] = slot
			}
			row[store.ColStatus] = status
			matched = true
		}
	}
	if !matched {
		return apperrors.NewResourceNotFoundError(fmt.Sprintf("parking request %d not found", id))
	}

	if err := r.store.Save(store.TableParking, rows); err != nil {
		return fmt.Errorf("error updating parking request: %w", err)
	}
	return nil
}
