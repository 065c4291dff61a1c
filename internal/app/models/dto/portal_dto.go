package dto

// CreateComplaintRequest files a new hostel complaint.
type CreateComplaintRequest struct {
	Target      string `json:"target" binding:"required"`
	Category    string `json:"category" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// ResolveComplaintRequest carries a principal's or warden's decision.
type ResolveComplaintRequest struct {
	Status  string `json:"status" binding:"required"`
	Message string `json:"message"`
}

// UpsertMedicineRequest adds or fully replaces a stock row by name.
type UpsertMedicineRequest struct {
	Name            string `json:"medicineName" binding:"required"`
	Category        string `json:"category"`
	StockCount      int    `json:"stockCount" binding:"min=0"`
	ManufactureDate string `json:"manufactureDate"`
	ExpiryDate      string `json:"expiryDate"`
}

// CreateMedicineRequestRequest files a student medicine request.
type CreateMedicineRequestRequest struct {
	MedicineType string `json:"medicineType" binding:"required"`
	Details      string `json:"details"`
}

// ResolveMedicineRequestRequest carries the warden's decision. Note is
// optional and replaces the warden note when present.
type ResolveMedicineRequestRequest struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

// CreateParkingRequest files a parking slot request.
type CreateParkingRequest struct {
	VehicleNo string `json:"vehicleNo" binding:"required"`
}

// ResolveParkingRequest carries the warden's decision; Slot is required for
// acceptance.
type ResolveParkingRequest struct {
	Status string `json:"status" binding:"required"`
	Slot   string `json:"slot"`
}

// CreateQueueRequest pulls a token at a service location.
type CreateQueueRequest struct {
	Location string `json:"location" binding:"required"`
}

// ResolveQueueRequest closes out a ticket.
type ResolveQueueRequest struct {
	Status string `json:"status" binding:"required"`
}

// CreateLeaveRequest files a leave application.
type CreateLeaveRequest struct {
	Reason   string `json:"reason" binding:"required"`
	FromDate string `json:"fromDate" binding:"required"`
	ToDate   string `json:"toDate" binding:"required"`
}

// ResolveLeaveRequest carries the warden's decision.
type ResolveLeaveRequest struct {
	Status string `json:"status" binding:"required"`
}
