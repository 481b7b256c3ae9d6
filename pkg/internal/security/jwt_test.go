package security

import (
	"testing"

	"github.com/rcee-dev/campusvoice/pkg/internal/models"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	viper.Set("security.jwt_secret", "unit-test-secret")

	account := models.Account{
		BaseModel:  models.BaseModel{ID: 42},
		Name:       "Test Student",
		Role:       models.RoleStudent,
		RollNumber: lo.ToPtr("R001"),
	}

	token, err := IssueToken(account)
	require.NoError(t, err)

	claims, err := ReadToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, models.RoleStudent, claims.Role)
	assert.Equal(t, "R001", claims.RollNumber)
	assert.Empty(t, claims.Email)
}

func TestReadTokenRejectsBadSignature(t *testing.T) {
	viper.Set("security.jwt_secret", "unit-test-secret")

	token, err := IssueToken(models.Account{BaseModel: models.BaseModel{ID: 1}, Role: models.RoleStudent})
	require.NoError(t, err)

	viper.Set("security.jwt_secret", "another-secret")
	_, err = ReadToken(token)
	assert.Error(t, err)

	viper.Set("security.jwt_secret", "unit-test-secret")
	_, err = ReadToken("not-a-token")
	assert.Error(t, err)
}
