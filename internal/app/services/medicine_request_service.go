package services

import (
	"time"

	"github.com/campushub/portal/internal/app/models"
	"github.com/campushub/portal/internal/app/repositories"
	"github.com/campushub/portal/internal/pkg/apperrors"
	"github.com/campushub/portal/internal/pkg/logger"
)

// MedicineRequestService handles student medicine requests and their
// fulfillment against the clinic stock.
type MedicineRequestService struct {
	requestRepo  *repositories.MedicineRequestRepository
	medicineRepo *repositories.MedicineRepository
	now          func() time.Time
}

// NewMedicineRequestService creates a new medicine request service instance
func NewMedicineRequestService(requestRepo *repositories.MedicineRequestRepository, medicineRepo *repositories.MedicineRepository) *MedicineRequestService {
	return &MedicineRequestService{
		requestRepo:  requestRepo,
		medicineRepo: medicineRepo,
		now:          time.Now,
	}
}

// Create files a new request for the session's student.
func (s *MedicineRequestService) Create(session models.Session, medicineType, details string) (*models.MedicineRequest, error) {
	if medicineType == "" {
		return nil, apperrors.NewValidationError("medicine type is required")
	}

	request := &models.MedicineRequest{
		User:         session.Username,
		MedicineType: medicineType,
		Details:      details,
		Status:       models.MedicineRequestStatusPending,
		WardenNote:   models.WardenNoteDefault,
		Timestamp:    s.now().Format(models.TimestampLayout),
	}

	if err := s.requestRepo.Create(request); err != nil {
		return nil, err
	}
	return request, nil
}

// List returns the requests visible to the session: a student's own rows,
// or all rows for a warden.
func (s *MedicineRequestService) List(session models.Session) ([]models.MedicineRequest, error) {
	all, err := s.requestRepo.List()
	if err != nil {
		return nil, err
	}
	if session.Role == models.RoleWarden {
		return all, nil
	}

	own := make([]models.MedicineRequest, 0, len(all))
	for _, req := range all {
		if req.User == session.Username {
			own = append(own, req)
		}
	}
	return own, nil
}

// Resolve applies Pending -> {Medicine Ready, Unavailable}. Fulfillment
// first decrements the requested medicine's stock; a missing medicine or a
// zero stock refuses the whole transition and the request keeps its current
// status. The stock write and the status write are two sequential table
// rewrites with no transaction spanning them.
func (s *MedicineRequestService) Resolve(session models.Session, id int, status, note string) error {
	if status != models.MedicineRequestStatusReady && status != models.MedicineRequestStatusUnavailable {
		return apperrors.ErrInvalidTransition
	}

	if status == models.MedicineRequestStatusReady {
		request, err := s.requestRepo.GetByID(id)
		if err != nil {
			return err
		}
		if err := s.medicineRepo.Decrement(request.MedicineType); err != nil {
			return err
		}
		logger.Info().
			Str("medicine", request.MedicineType).
			Int("request", id).
			Msg("Stock decreased by 1 for fulfilled request")
	}

	return s.requestRepo.SetStatus(id, status, note)
}
