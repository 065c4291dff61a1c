package services

import (
	"time"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/app/repositories"
	"github.com/campushub/portal/internal/pkg/apperrors"
)

// LeaveService handles leave applications, the warden decision workflow and
// student-initiated cancellation.
type LeaveService struct {
	leaveRepo *repositories.LeaveRepository
	now       func() time.Time
}

// NewLeaveService creates a new leave service instance
func NewLeaveService(leaveRepo *repositories.LeaveRepository) *LeaveService {
	return &LeaveService{
		leaveRepo: leaveRepo,
		now:       time.Now,
	}
}

// Create files a leave application for the session's student.
func (s *LeaveService) Create(session models.Session, reason, fromDate, toDate string) (*models.LeaveRequest, error) {
	if reason == "" {
		return nil, apperrors.NewValidationError("reason is required")
	}
	if fromDate == "" || toDate == "" {
		return nil, apperrors.NewValidationError("from and to dates are required")
	}

	leave := &models.LeaveRequest{
		User:      session.Username,
		Reason:    reason,
		FromDate:  fromDate,
		ToDate:    toDate,
		Status:    models.LeaveStatusPending,
		Timestamp: s.now().Format(models.TimestampLayout),
	}

	if err := s.leaveRepo.Create(leave); err != nil {
		return nil, err
	}
	return leave, nil
}

// List returns the applications visible to the session: a student's own
// rows, or all rows for a warden.
func (s *LeaveService) List(session models.Session) ([]models.LeaveRequest, error) {
	if session.Role == models.RoleWarden {
		return s.leaveRepo.List()
	}
	return s.leaveRepo.ListByUser(session.Username)
}

// Resolve applies Pending -> {Approved, Denied} by a warden.
func (s *LeaveService) Resolve(session models.Session, id int, status string) error {
	if status != models.LeaveStatusApproved && status != models.LeaveStatusDenied {
		return apperrors.ErrInvalidTransition
	}
	return s.leaveRepo.SetStatus(id, status)
}

// Cancel applies the student-only cancellation. The target ID must be inside
// the caller's own visible row set; an ID outside it is refused as invalid
// with no state change, even when that ID exists for another student. Once
// cancelled no further transition is defined.
func (s *LeaveService) Cancel(session models.Session, id int) error {
	own, err := s.leaveRepo.ListByUser(session.Username)
	if err != nil {
		return err
	}

	owned := false
	for _, leave := range own {
		if leave.ID == id {
			owned = true
			break
		}
	}
	if !owned {
		return apperrors.NewResourceNotFoundError("invalid leave ID")
	}

	return s.leaveRepo.SetStatus(id, models.LeaveStatusCancelled)
}
