package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/app/repositories"
	"github.com/campushub/portal/internal/pkg/apperrors"
)

// queueTokenBase offsets the token serial so the first ticket of a fresh
// table reads LOC-101 rather than LOC-1.
const queueTokenBase = 101

// QueueService handles service-desk queue tokens.
type QueueService struct {
	queueRepo *repositories.QueueRepository
	now       func() time.Time
}

// NewQueueService creates a new queue service instance
func NewQueueService(queueRepo *repositories.QueueRepository) *QueueService {
	return &QueueService{
		queueRepo: queueRepo,
		now:       time.Now,
	}
}

// makeToken derives the display token from the location and the pre-insert
// row count: the location's first three letters upper-cased, then the serial.
func makeToken(location string, count int) string {
	prefix := []rune(strings.ToUpper(location))
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return fmt.Sprintf("%s-%d", string(prefix), count+queueTokenBase)
}

// Create pulls a token at the given location for the session's student.
func (s *QueueService) Create(session models.Session, location string) (*models.QueueTicket, error) {
	if strings.TrimSpace(location) == "" {
		return nil, apperrors.NewValidationError("location is required")
	}

	count, err := s.queueRepo.Count()
	if err != nil {
		return nil, err
	}

	ticket := &models.QueueTicket{
		User:      session.Username,
		Location:  location,
		Token:     makeToken(location, count),
		Status:    models.QueueStatusInQueue,
		Timestamp: s.now().Format(models.TimestampLayout),
	}

	if err := s.queueRepo.Create(ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// List returns the tickets visible to the session: a student's own rows, or
// all rows for a warden.
func (s *QueueService) List(session models.Session) ([]models.QueueTicket, error) {
	all, err := s.queueRepo.List()
	if err != nil {
		return nil, err
	}
	if session.Role == models.RoleWarden {
		return all, nil
	}

	own := make([]models.QueueTicket, 0, len(all))
	for _, ticket := range all {
		if ticket.User == session.Username {
			own = append(own, ticket)
		}
	}
	return own, nil
}

// Resolve applies In Queue -> {Finished, Cancelled}.
func (s *QueueService) Resolve(session models.Session, id int, status string) error {
	if status != models.QueueStatusFinished && status != models.QueueStatusCancelled {
		return apperrors.ErrInvalidTransition
	}
	return s.queueRepo.SetStatus(id, status)
}
