package store

// Table names. These are the stable keys callers use; the File column names
// come from the portal's historical on-disk layout and must not change, or
// existing deployments would silently start from empty tables.
const (
	TableUsers            = "users"
	TableComplaints       = "hostel"
	TableMedicines        = "meds"
	TableMedicineRequests = "med_req"
	TableParking          = "parking"
	TableQueue            = "queue"
	TableLeave            = "leave"
)

// Column names shared by the typed row views in the repositories.
const (
	ColID          = "ID"
	ColInstitution = "Institution"
	ColUser        = "User"
	ColStatus      = "Status"
	ColTimestamp   = "Timestamp"

	ColUsername = "Username"
	ColPassword = "Password"
	ColRole     = "Role"

	ColTarget       = "Target"
	ColCategory     = "Category"
	ColDescription  = "Description"
	ColAdminMessage = "Admin_Message"

	ColMedicineName    = "Medicine_Name"
	ColStockCount      = "Stock_Count"
	ColManufactureDate = "Manufacture_Date"
	ColExpiryDate      = "Expiry_Date"

	ColMedicineType = "Medicine_Type"
	ColDetails      = "Details"
	ColWardenNote   = "Warden_Note"

	ColVehicleNo = "Vehicle_No"
	ColSlot      = "Slot"

	ColLocation = "Location"
	ColToken    = "Token"

	ColReason   = "Reason"
	ColFromDate = "From_Date"
	ColToDate   = "To_Date"
)

// DefaultTables returns the seven portal tables with their backing files and
// exact column headers.
func DefaultTables() []Table {
	return []Table{
		{
			Name:   TableUsers,
			File:   "users_db.csv",
			Header: []string{ColInstitution, ColUsername, ColPassword, ColRole},
		},
		{
			Name: TableComplaints,
			File: "hostel_data.csv",
			Header: []string{
				ColID, ColInstitution, ColUser, ColTarget, ColCategory,
				ColDescription, ColStatus, ColAdminMessage, ColTimestamp,
			},
		},
		{
			Name: TableMedicines,
			File: "medicines.csv",
			Header: []string{
				ColMedicineName, ColCategory, ColStockCount,
				ColManufactureDate, ColExpiryDate,
			},
		},
		{
			Name: TableMedicineRequests,
			File: "medicine_requests.csv",
			Header: []string{
				ColID, ColUser, ColMedicineType, ColDetails, ColStatus,
				ColWardenNote, ColTimestamp,
			},
		},
		{
			Name:   TableParking,
			File:   "parking_data.csv",
			Header: []string{ColID, ColUser, ColVehicleNo, ColSlot, ColStatus, ColTimestamp},
		},
		{
			Name:   TableQueue,
			File:   "queue_data.csv",
			Header: []string{ColID, ColUser, ColLocation, ColToken, ColStatus, ColTimestamp},
		},
		{
			Name:   TableLeave,
			File:   "leave_data.csv",
			Header: []string{ColID, ColUser, ColReason, ColFromDate, ColToDate, ColStatus, ColTimestamp},
		},
	}
}
