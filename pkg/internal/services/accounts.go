package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rcee-dev/campusvoice/pkg/internal/database"
	"github.com/rcee-dev/campusvoice/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// Default management account, created at first startup.
const (
	ManagementEmail    = "management@rcee.ac.in"
	ManagementPassword = "1234"
)

// ErrInvalidCredentials deliberately covers both unknown identifier and wrong
// password so callers cannot probe which roll numbers are registered.
var ErrInvalidCredentials = errors.New("invalid credentials")

func GetAccountWithID(id uint) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		return account, fmt.Errorf("unable to get account by id: %v", err)
	}
	return account, nil
}

func RegisterStudent(account models.Account) (models.Account, error) {
	rollNumber := strings.ToUpper(*account.RollNumber)
	account.RollNumber = &rollNumber
	account.Role = models.RoleStudent

	var count int64
	if err := database.C.Model(&models.Account{}).
		Where("roll_number = ?", rollNumber).
		Count(&count).Error; err != nil {
		return account, err
	} else if count > 0 {
		return account, fmt.Errorf("student with roll number %s already exists", rollNumber)
	}

	if err := database.C.Create(&account).Error; err != nil {
		return account, err
	}

	return account, nil
}

// Authenticate looks an account up by the identifier matching the claimed role
// and compares the stored credential. The comparison is a plain equality check
// on purpose, kept compatible with the existing account records.
func Authenticate(identifier, password, userType string) (models.Account, error) {
	var account models.Account
	var err error
	switch userType {
	case models.RoleStudent:
		err = database.C.Where("roll_number = ? AND role = ?", strings.ToUpper(identifier), models.RoleStudent).
			First(&account).Error
	case models.RoleManagement:
		err = database.C.Where("email = ? AND role = ?", strings.ToLower(identifier), models.RoleManagement).
			First(&account).Error
	default:
		return account, ErrInvalidCredentials
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account, ErrInvalidCredentials
		}
		return account, err
	}
	if account.Password != password {
		return account, ErrInvalidCredentials
	}

	return account, nil
}

// SeedManagementAccount is a find-or-create executed once during startup. Two
// simultaneous cold starts can race it; the unique index on email keeps the
// outcome at a single record.
func SeedManagementAccount() error {
	var account models.Account
	err := database.C.Where("email = ?", ManagementEmail).First(&account).Error
	if err == nil {
		log.Info().Msg("Management account already exists.")
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	account = models.Account{
		Name:       "Management",
		Email:      lo.ToPtr(ManagementEmail),
		Password:   ManagementPassword,
		Role:       models.RoleManagement,
		Department: "Management",
	}
	if err := database.C.Create(&account).Error; err != nil {
		return err
	}

	log.Info().Str("email", ManagementEmail).Msg("Default management account created.")
	return nil
}

// RenderAccount serializes an account into the role-shaped user payload:
// students expose rollNumber, year and section, management exposes email.
func RenderAccount(account models.Account) map[string]any {
	out := map[string]any{
		"id":         account.ID,
		"name":       account.Name,
		"department": account.Department,
		"role":       account.Role,
	}

	switch account.Role {
	case models.RoleStudent:
		out["rollNumber"] = lo.FromPtr(account.RollNumber)
		out["year"] = account.Year
		out["section"] = account.Section
	case models.RoleManagement:
		out["email"] = lo.FromPtr(account.Email)
	}

	return out
}
