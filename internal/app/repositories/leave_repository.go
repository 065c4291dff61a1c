package repositories

import (
	"fmt"
	"strconv"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/pkg/apperrors"
	"github.com/campushub/portal/internal/store"
)

// LeaveRepository handles rows of the leave application table.
type LeaveRepository struct {
	store *store.Store
}

// NewLeaveRepository creates a new LeaveRepository
func NewLeaveRepository(st *store.Store) *LeaveRepository {
	return &LeaveRepository{store: st}
}

func leaveFromRow(row store.Row) models.LeaveRequest {
	id, _ := strconv.Atoi(row[store.ColID])
	return models.LeaveRequest{
		ID:        id,
		User:      row[store.ColUser],
		Reason:    row[store.ColReason],
		FromDate:  row[store.ColFromDate],
		ToDate:    row[store.ColToDate],
		Status:    row[store.ColStatus],
		Timestamp: row[store.ColTimestamp],
	}
}

func leaveToRow(l models.LeaveRequest) store.Row {
	return store.Row{
		store.ColID:        strconv.Itoa(l.ID),
		store.ColUser:      l.User,
		store.ColReason:    l.Reason,
		store.ColFromDate:  l.FromDate,
		store.ColToDate:    l.ToDate,
		store.ColStatus:    l.Status,
		store.ColTimestamp: l.Timestamp,
	}
}

// Create inserts a leave application with ID = row count + 1.
func (r *LeaveRepository) Create(l *models.LeaveRequest) error {
	rows, err := r.store.Load(store.TableLeave)
	if err != nil {
		return fmt.Errorf("error loading leave applications: %w", err)
	}

	l.ID = len(rows) + 1
	if err := r.store.Save(store.TableLeave, append(rows, leaveToRow(*l))); err != nil {
		return fmt.Errorf("error creating leave application: %w", err)
	}
	return nil
}

// List returns every leave application in table order.
func (r *LeaveRepository) List() ([]models.LeaveRequest, error) {
	rows, err := r.store.Load(store.TableLeave)
	if err != nil {
		return nil, fmt.Errorf("error loading leave applications: %w", err)
	}

	leaves := make([]models.LeaveRequest, 0, len(rows))
	for _, row := range rows {
		leaves = append(leaves, leaveFromRow(row))
	}
	return leaves, nil
}

// ListByUser returns the applications owned by one student.
func (r *LeaveRepository) ListByUser(username string) ([]models.LeaveRequest, error) {
	all, err := r.List()
	if err != nil {
		return nil, err
	}

	own := make([]models.LeaveRequest, 0, len(all))
	for _, l := range all {
		if l.User == username {
			own = append(own, l)
		}
	}
	return own, nil
}

// SetStatus updates Status on every row whose ID matches.
func (r *LeaveRepository) SetStatus(id int, status string) error {
	rows, err := r.store.Load(store.TableLeave)
	if err != nil {
		return fmt.Errorf("error loading leave applications: %w", err)
	}

	matched := false
	for _, row := range rows {
		if store.MatchID(row, id) {
			row[store.ColStatus] = status
			matched = true
		}
	}
	if !matched {
		return apperrors.NewResourceNotFoundError(fmt.Sprintf("leave application %d not found", id))
	}

	if err := r.store.Save(store.TableLeave, rows); err != nil {
		return fmt.Errorf("error updating leave application: %w", err)
	}
	return nil
}
