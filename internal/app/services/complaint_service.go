package services

import (
	"strings"
	"time"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/app/repositories"
	"github.com/campushub/portal/internal/pkg/apperrors"
)

// ComplaintService handles hostel complaints and their resolution workflow.
type ComplaintService struct {
	complaintRepo *repositories.ComplaintRepository
	now           func() time.Time
}

// NewComplaintService creates a new complaint service instance
func NewComplaintService(complaintRepo *repositories.ComplaintRepository) *ComplaintService {
	return &ComplaintService{
		complaintRepo: complaintRepo,
		now:           time.Now,
	}
}

// Create files a new complaint for the session's student. Status starts
// Pending with the waiting admin message.
func (s *ComplaintService) Create(session models.Session, target, category, description string) (*models.Complaint, error) {
	switch target {
	case models.TargetWarden, models.TargetPrincipal, models.TargetBoth:
	default:
		return nil, apperrors.NewValidationError("target must be Warden, Principal or Both")
	}
	if strings.TrimSpace(description) == "" {
		return nil, apperrors.NewValidationError("description is required")
	}

	complaint := &models.Complaint{
		Institution:  session.Institution,
		User:         session.Username,
		Target:       target,
		Category:     category,
		Description:  description,
		Status:       models.ComplaintStatusPending,
		AdminMessage: models.AdminMessageWaiting,
		Timestamp:    s.now().Format(models.TimestampLayout),
	}

	if err := s.complaintRepo.Create(complaint); err != nil {
		return nil, err
	}
	return complaint, nil
}

// List returns the complaints visible to the session. Students see their own
// rows, principals see their institution's complaints targeted at Principal
// or Both, wardens see everything.
func (s *ComplaintService) List(session models.Session) ([]models.Complaint, error) {
	all, err := s.complaintRepo.List()
	if err != nil {
		return nil, err
	}

	switch session.Role {
	case models.RoleWarden:
		return all, nil
	case models.RolePrincipal:
		visible := make([]models.Complaint, 0, len(all))
		for _, c := range all {
			if c.Institution == session.Institution &&
				(c.Target == models.TargetPrincipal || c.Target == models.TargetBoth) {
				visible = append(visible, c)
			}
		}
		return visible, nil
	default:
		visible := make([]models.Complaint, 0, len(all))
		for _, c := range all {
			if c.User == session.Username {
				visible = append(visible, c)
			}
		}
		return visible, nil
	}
}

// Resolve applies Pending -> {Resolved, Rejected}. The resolver's role is
// stamped into the admin message alongside the response text, in the same
// row update as the status.
func (s *ComplaintService) Resolve(session models.Session, id int, status, message string) error {
	if session.Role != models.RoleWarden && session.Role != models.RolePrincipal {
		return apperrors.ErrPermissionDenied
	}
	if status != models.ComplaintStatusResolved && status != models.ComplaintStatusRejected {
		return apperrors.ErrInvalidTransition
	}

	adminMessage := strings.ToUpper(string(session.Role)) + ": " + message
	return s.complaintRepo.Resolve(id, status, adminMessage)
}
