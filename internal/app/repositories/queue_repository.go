package repositories

import (
	"fmt"
	"strconv"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/pkg/apperrors"
	"github.com/campushub/portal/internal/store"
)

// QueueRepository handles rows of the queue ticket table.
type QueueRepository struct {
	store *store.Store
}

// NewQueueRepository creates a new QueueRepository
func NewQueueRepository(st *store.Store) *QueueRepository {
	return &QueueRepository{store: st}
}

func queueFromRow(row store.Row) models.QueueTicket {
	id, _ := strconv.Atoi(row[store.ColID])
	return models.QueueTicket{
		ID:        id,
		User:      row[store.ColUser],
		Location:  row[store.ColLocation],
		Token:     row[store.ColToken],
		Status:    row[store.ColStatus],
		Timestamp: row[store.ColTimestamp],
	}
}

func queueToRow(q models.QueueTicket) store.Row {
	return store.Row{
		store.ColID:        strconv.Itoa(q.ID),
		store.ColUser:      q.User,
		store.ColLocation:  q.Location,
		store.ColToken:     q.Token,
		store.ColStatus:    q.Status,
		store.ColTimestamp: q.Timestamp,
	}
}

// Count returns the number of ticket rows; the token serial derives from it.
func (r *QueueRepository) Count() (int, error) {
	rows, err := r.store.Load(store.TableQueue)
	if err != nil {
		return 0, fmt.Errorf("error loading queue: %w", err)
	}
	return len(rows), nil
}

// Create inserts a ticket with ID = row count + 1.
func (r *QueueRepository) Create(q *models.QueueTicket) error {
	rows, err := r.store.Load(store.TableQueue)
	if err != nil {
		return fmt.Errorf("error loading queue: %w", err)
	}

	q.ID = len(rows) + 1
	if err := r.store.Save(store.TableQueue, append(rows, queueToRow(*q))); err != nil {
		return fmt.Errorf("error creating queue ticket: %w", err)
	}
	return nil
}

// List returns every ticket in table order.
func (r *QueueRepository) List() ([]models.QueueTicket, error) {
	rows, err := r.store.Load(store.TableQueue)
	if err != nil {
		return nil, fmt.Errorf("error loading queue: %w", err)
	}

	tickets := make([]models.QueueTicket, 0, len(rows))
	for _, row := range rows {
		tickets = append(tickets, queueFromRow(row))
	}
	return tickets, nil
}

// SetStatus updates Status on every row whose ID matches.
func (r *QueueRepository) SetStatus(id int, status string) error {
	rows, err := r.store.Load(store.TableQueue)
	if err != nil {
		return fmt.Errorf("error loading queue: %w", err)
	}

	matched := false
	for _, row := range rows {
		if store.MatchID(row, id) {
			row[store.ColStatus] = status
			matched = true
		}
	}
	if !matched {
		return apperrors.NewResourceNotFoundError(fmt.Sprintf("queue ticket %d not found", id))
	}

	if err := r.store.Save(store.TableQueue, rows); err != nil {
		return fmt.Errorf("error updating queue ticket: %w", err)
	}
	return nil
}
