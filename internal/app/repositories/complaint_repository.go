package repositories

import (
	"fmt"
	"strconv"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/pkg/apperrors"
	"github.com/campushub/portal/internal/store"
)

// ComplaintRepository handles rows of the hostel complaints table.
type ComplaintRepository struct {
	store *store.Store
}

// NewComplaintRepository creates a new ComplaintRepository
func NewComplaintRepository(st *store.Store) *ComplaintRepository {
	return &ComplaintRepository{store: st}
}

func complaintFromRow(row store.Row) models.Complaint {
	id, _ := strconv.Atoi(row[store.ColID])
	return models.Complaint{
		ID:           id,
		Institution:  row[store.ColInstitution],
		User:         row[store.ColUser],
		Target:       row[store.ColTarget],
		Category:     row[store.ColCategory],
		Description:  row[store.ColDescription],
		Status:       row[store.ColStatus],
		AdminMessage: row[store.ColAdminMessage],
		Timestamp:    row[store.ColTimestamp],
	}
}

func complaintToRow(c models.Complaint) store.Row {
	return store.Row{
		store.ColID:           strconv.Itoa(c.ID),
		store.ColInstitution:  c.Institution,
		store.ColUser:         c.User,
		store.ColTarget:       c.Target,
		store.ColCategory:     c.Category,
		store.ColDescription:  c.Description,
		store.ColStatus:       c.Status,
		store.ColAdminMessage: c.AdminMessage,
		store.ColTimestamp:    c.Timestamp,
	}
}

// Create inserts a complaint with ID = row count + 1.
func (r *ComplaintRepository) Create(c *models.Complaint) error {
	rows, err := r.store.Load(store.TableComplaints)
	if err != nil {
		return fmt.Errorf("error loading complaints: %w", err)
	}

	c.ID = len(rows) + 1
	if err := r.store.Save(store.TableComplaints, append(rows, complaintToRow(*c))); err != nil {
		return fmt.Errorf("error creating complaint: %w", err)
	}
	return nil
}

// List returns every complaint in table order.
func (r *ComplaintRepository) List() ([]models.Complaint, error) {
	rows, err := r.store.Load(store.TableComplaints)
	if err != nil {
		return nil, fmt.Errorf("error loading complaints: %w", err)
	}

	complaints := make([]models.Complaint, 0, len(rows))
	for _, row := range rows {
		complaints = append(complaints, complaintFromRow(row))
	}
	return complaints, nil
}

// Resolve sets Status and Admin_Message on every row whose ID matches, in
// one rewrite. Only the two status columns change; the rest of each row is
// written back untouched.
func (r *ComplaintRepository) Resolve(id int, status, adminMessage string) error {
	rows, err := r.store.Load(store.TableComplaints)
	if err != nil {
		return fmt.Errorf("error loading complaints: %w", err)
	}

	matched := false
	for _, row := range rows {
		if store.MatchID(row, id) {
			row[store.ColStatus] = status
			row[store.ColAdminMessage] = adminMessage
			matched = true
		}
	}
	if !matched {
		return apperrors.NewResourceNotFoundError(fmt.Sprintf("complaint %d not found", id))
	}

	if err := r.store.Save(store.TableComplaints, rows); err != nil {
		return fmt.Errorf("error resolving complaint: %w", err)
	}
	return nil
}
