package models

import "gorm.io/datatypes"

const (
	ComplaintStatusPending    = "Pending"
	ComplaintStatusInProgress = "In Progress"
	ComplaintStatusResolved   = "Resolved"
)

var ComplaintCategories = []string{"Hostel", "Mess", "Transport", "Academics", "Others"}

type Complaint struct {
	BaseModel

	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`

	Status        string `json:"status"`
	AdminResponse string `json:"adminResponse"`

	// AccountID is the posting student. It is stripped from every public
	// rendition of the complaint, see services.AnonymizeComplaint.
	AccountID uint `json:"studentId"`

	Agrees    datatypes.JSONSlice[uint] `json:"agrees"`
	Disagrees datatypes.JSONSlice[uint] `json:"disagrees"`

	Comments []ComplaintComment `json:"comments" gorm:"foreignKey:ComplaintID"`
}

type ComplaintComment struct {
	BaseModel

	Text        string `json:"text"`
	ComplaintID uint   `json:"complaintId"`
	AccountID   uint   `json:"userId"`
}
