package services

import (
	"strings"
	"time"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/app/repositories"
	"github.com/campushub/portal/internal/pkg/apperrors"
)

// ParkingService handles parking slot requests.
type ParkingService struct {
	parkingRepo *repositories.ParkingRepository
	now         func() time.Time
}

// NewParkingService creates a new parking service instance
func NewParkingService(parkingRepo *repositories.ParkingRepository) *ParkingService {
	return &ParkingService{
		parkingRepo: parkingRepo,
		now:         time.Now,
	}
}

// Create files a slot request for the session's student. The slot label
// stays "Awaiting Approval" until a warden assigns one.
func (s *ParkingService) Create(session models.Session, vehicleNo string) (*models.ParkingRequest, error) {
	if strings.TrimSpace(vehicleNo) == "" {
		return nil, apperrors.NewValidationError("vehicle number is required")
	}

	request := &models.ParkingRequest{
		User:      session.Username,
		VehicleNo: vehicleNo,
		Slot:      models.ParkingSlotAwaiting,
		Status:    models.ParkingStatusPending,
		Timestamp: s.now().Format(models.TimestampLayout),
	}

	if err := s.parkingRepo.Create(request); err != nil {
		return nil, err
	}
	return request, nil
}

// List returns the requests visible to the session: a student's own rows,
// or all rows for a warden.
func (s *ParkingService) List(session models.Session) ([]models.ParkingRequest, error) {
	all, err := s.parkingRepo.List()
	if err != nil {
		return nil, err
	}
	if session.Role == models.RoleWarden {
		return all, nil
	}

	own := make([]models.ParkingRequest, 0, len(all))
	for _, req := range all {
		if req.User == session.Username {
			own = append(own, req)
		}
	}
	return own, nil
}

// Resolve applies Pending -> {Request Accepted, Rejected}. Acceptance
// requires a slot label; it lands in the same row update as the status.
func (s *ParkingService) Resolve(session models.Session, id int, slot, status string) error {
	if status != models.ParkingStatusAccepted && status != models.ParkingStatusRejected {
		return apperrors.ErrInvalidTransition
	}
	if status == models.ParkingStatusAccepted && strings.TrimSpace(slot) == "" {
		return apperrors.NewValidationError("an accepted request needs a slot label")
	}

	return s.parkingRepo.Resolve(id, slot, status)
}
