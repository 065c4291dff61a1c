package repositories

import (
	"github.com/campushub/portal/internal/store"
)

// Repositories bundles all table repositories for dependency injection.
type Repositories struct {
	Users            *UserRepository
	Complaints       *ComplaintRepository
	Medicines        *MedicineRepository
	MedicineRequests *MedicineRequestRepository
	Parking          *ParkingRepository
	Queue            *QueueRepository
	Leave            *LeaveRepository
}

// NewRepositories creates all repositories over one record store.
func NewRepositories(st *store.Store) *Repositories {
	return &Repositories{
		Users:            NewUserRepository(st),
		Complaints:       NewComplaintRepository(st),
		Medicines:        NewMedicineRepository(st),
		MedicineRequests: NewMedicineRequestRepository(st),
		Parking:          NewParkingRepository(st),
		Queue:            NewQueueRepository(st),
		Leave:            NewLeaveRepository(st),
	}
}
