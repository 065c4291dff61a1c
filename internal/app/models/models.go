package models

// Role identifies the kind of actor behind a session.
type Role string

const (
	RoleStudent   Role = "Student"
	RoleWarden    Role = "Warden"
	RolePrincipal Role = "Principal"
)

// ValidRole reports whether r is one of the known portal roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleStudent, RoleWarden, RolePrincipal:
		return true
	}
	return false
}

// Session is the request-scoped identity of the current actor. It is built
// from the JWT claims by the auth middleware and passed into every service
// call; there is no process-wide session state.
type Session struct {
	Institution string `json:"institution"`
	Username    string `json:"username"`
	Role        Role   `json:"role"`
}

// TimestampLayout is the creation-timestamp format written into every
// transactional table. Timestamps are set once and never updated.
const TimestampLayout = "2006-01-02 15:04:05"

// Complaint targets
const (
	TargetWarden    = "Warden"
	TargetPrincipal = "Principal"
	TargetBoth      = "Both"
)

// Complaint statuses: Pending -> {Resolved, Rejected}, terminal.
const (
	ComplaintStatusPending  = "Pending"
	ComplaintStatusResolved = "Resolved"
	ComplaintStatusRejected = "Rejected"
)

// AdminMessageWaiting is the Admin_Message value a fresh complaint carries
// until a principal or warden responds.
const AdminMessageWaiting = "Waiting..."

// Medicine request statuses: Pending -> {Medicine Ready, Unavailable}, terminal.
const (
	MedicineRequestStatusPending     = "Pending"
	MedicineRequestStatusReady       = "Medicine Ready"
	MedicineRequestStatusUnavailable = "Unavailable"
)

// WardenNoteDefault is the Warden_Note value a fresh medicine request carries.
const WardenNoteDefault = "No updates yet"

// Parking statuses: Pending -> {Request Accepted, Rejected}, terminal.
const (
	ParkingStatusPending  = "Pending"
	ParkingStatusAccepted = "Request Accepted"
	ParkingStatusRejected = "Rejected"
)

// ParkingSlotAwaiting is the Slot value before a warden assigns one.
const ParkingSlotAwaiting = "Awaiting Approval"

// Queue statuses: In Queue -> {Finished, Cancelled}, terminal.
const (
	QueueStatusInQueue   = "In Queue"
	QueueStatusFinished  = "Finished"
	QueueStatusCancelled = "Cancelled"
)

// Leave statuses: Pending -> {Approved, Denied} by warden, or
// "Cancelled by Student" by the owning student. Cancellation is terminal.
const (
	LeaveStatusPending   = "Pending"
	LeaveStatusApproved  = "Approved"
	LeaveStatusDenied    = "Denied"
	LeaveStatusCancelled = "Cancelled by Student"
)

// User is one row of the users table. Login matches all four fields exactly;
// registration appends without any uniqueness check.
type User struct {
	Institution string `json:"institution"`
	Username    string `json:"username"`
	Password    string `json:"-"`
	Role        Role   `json:"role"`
}

// Complaint is one row of the hostel complaints table.
type Complaint struct {
	ID           int    `json:"id"`
	Institution  string `json:"institution"`
	User         string `json:"user"`
	Target       string `json:"target"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	Status       string `json:"status"`
	AdminMessage string `json:"adminMessage"`
	Timestamp    string `json:"timestamp"`
}

// Medicine is one row of the clinic stock table. Medicine_Name is the
// de-facto primary key. StockCount and the dates stay raw strings so that
// rows with unparseable values survive load/save untouched; derived views
// parse them leniently.
type Medicine struct {
	Name            string `json:"medicineName"`
	Category        string `json:"category"`
	StockCount      string `json:"stockCount"`
	ManufactureDate string `json:"manufactureDate"`
	ExpiryDate      string `json:"expiryDate"`
}

// MedicineRequest is one row of the medicine request table.
type MedicineRequest struct {
	ID           int    `json:"id"`
	User         string `json:"user"`
	MedicineType string `json:"medicineType"`
	Details      string `json:"details"`
	Status       string `json:"status"`
	WardenNote   string `json:"wardenNote"`
	Timestamp    string `json:"timestamp"`
}

// ParkingRequest is one row of the parking table.
type ParkingRequest struct {
	ID        int    `json:"id"`
	User      string `json:"user"`
	VehicleNo string `json:"vehicleNo"`
	Slot      string `json:"slot"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// QueueTicket is one row of the queue table.
type QueueTicket struct {
	ID        int    `json:"id"`
	User      string `json:"user"`
	Location  string `json:"location"`
	Token     string `json:"token"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// LeaveRequest is one row of the leave table.
type LeaveRequest struct {
	ID        int    `json:"id"`
	User      string `json:"user"`
	Reason    string `json:"reason"`
	FromDate  string `json:"fromDate"`
	ToDate    string `json:"toDate"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}
