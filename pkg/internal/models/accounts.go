package models

const (
	RoleStudent    = "student"
	RoleManagement = "management"
)

// Account is shared between students and management staff. Exactly one of
// RollNumber and Email is populated, matching the role.
type Account struct {
	BaseModel

	Name     string `json:"name"`
	Password string `json:"-"`
	Role     string `json:"role"`

	RollNumber *string `json:"rollNumber,omitempty" gorm:"uniqueIndex"`
	Email      *string `json:"email,omitempty" gorm:"uniqueIndex"`

	Department string `json:"department"`
	Year       int    `json:"year,omitempty"`
	Section    string `json:"section,omitempty"`
}
