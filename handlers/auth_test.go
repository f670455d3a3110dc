package handlers

import (
	"database/sql"
	"testing"
	"time"

	"github.com/pquerna/otp/totp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValiderCodeTOTP(t *testing.T) {
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "Gestion Bailleurs",
		AccountName: "marie@example.com",
	})
	require.NoError(t, err)

	code, err := totp.GenerateCode(key.Secret(), time.Now())
	require.NoError(t, err)

	secret := sql.NullString{String: key.Secret(), Valid: true}
	assert.True(t, validerCodeTOTP(secret, code))
	assert.False(t, validerCodeTOTP(secret, "12345"))
	assert.False(t, validerCodeTOTP(secret, "abcdef"))
}

func TestValiderCodeTOTPSecretAbsent(t *testing.T) {
	// Un compte 2FA dont le secret manque en base refuse tout code au lieu de
	// laisser passer la connexion
	assert.False(t, validerCodeTOTP(sql.NullString{}, "123456"))
	assert.False(t, validerCodeTOTP(sql.NullString{String: "", Valid: true}, "123456"))
}
