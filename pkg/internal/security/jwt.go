package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rcee-dev/campusvoice/pkg/internal/models"
	"github.com/spf13/viper"
)

const TokenValidDuration = 7 * 24 * time.Hour

// Claims is the decoded payload of a bearer token. It carries everything the
// request pipeline needs so the gate never touches the database.
type Claims struct {
	UserID     uint   `json:"userId"`
	Role       string `json:"role"`
	RollNumber string `json:"rollNumber,omitempty"`
	Email      string `json:"email,omitempty"`

	jwt.RegisteredClaims
}

func IssueToken(account models.Account) (string, error) {
	claims := Claims{
		UserID: account.ID,
		Role:   account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenValidDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	if account.RollNumber != nil {
		claims.RollNumber = *account.RollNumber
	}
	if account.Email != nil {
		claims.Email = *account.Email
	}

	tk := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tk.SignedString([]byte(viper.GetString("security.jwt_secret")))
}

func ReadToken(raw string) (Claims, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(tk *jwt.Token) (any, error) {
		return []byte(viper.GetString("security.jwt_secret")), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	return claims, err
}
