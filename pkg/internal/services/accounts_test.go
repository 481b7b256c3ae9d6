package services

import (
	"testing"

	"github.com/rcee-dev/campusvoice/pkg/internal/database"
	"github.com/rcee-dev/campusvoice/pkg/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterStudent(t *testing.T) {
	openTestDatabase(t)

	account := createTestStudent(t, "r001")
	assert.Equal(t, models.RoleStudent, account.Role)
	assert.Equal(t, "R001", *account.RollNumber)
	assert.Nil(t, account.Email)

	_, err := RegisterStudent(account)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestAuthenticate(t *testing.T) {
	openTestDatabase(t)
	createTestStudent(t, "R001")

	account, err := Authenticate("r001", "abcd", models.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, "R001", *account.RollNumber)

	// Wrong password and unknown identifier are indistinguishable.
	_, err = Authenticate("R001", "wrong", models.RoleStudent)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = Authenticate("R999", "abcd", models.RoleStudent)
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// A student identifier cannot log in under the management role.
	_, err = Authenticate("R001", "abcd", models.RoleManagement)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSeedManagementAccount(t *testing.T) {
	openTestDatabase(t)

	require.NoError(t, SeedManagementAccount())
	require.NoError(t, SeedManagementAccount())

	var count int64
	require.NoError(t, database.C.Model(&models.Account{}).
		Where("role = ?", models.RoleManagement).
		Count(&count).Error)
	assert.EqualValues(t, 1, count)

	account, err := Authenticate(ManagementEmail, ManagementPassword, models.RoleManagement)
	require.NoError(t, err)
	assert.Equal(t, models.RoleManagement, account.Role)
}

func TestRenderAccount(t *testing.T) {
	openTestDatabase(t)

	student := createTestStudent(t, "R001")
	out := RenderAccount(student)
	assert.Equal(t, "R001", out["rollNumber"])
	assert.Equal(t, 3, out["year"])
	assert.NotContains(t, out, "email")

	require.NoError(t, SeedManagementAccount())
	management, err := Authenticate(ManagementEmail, ManagementPassword, models.RoleManagement)
	require.NoError(t, err)
	out = RenderAccount(management)
	assert.Equal(t, ManagementEmail, out["email"])
	assert.NotContains(t, out, "rollNumber")
	assert.NotContains(t, out, "year")
}
