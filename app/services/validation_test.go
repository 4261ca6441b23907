package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/taskdesk/taskdesk/app/errors"
)

/*
Registration Validation Test Cases:

1. TestValidateRegistration_Valid
2. TestValidateRegistration_LoginFormat - rejects spaces and symbols
3. TestValidateRegistration_PasswordStrength - needs upper, lower, digit
4. TestValidateRegistration_Lengths - min/max on both fields
*/

func TestValidateRegistration_Valid(t *testing.T) {
	err := ValidateRegistration(RegisterRequest{Login: "alice_1", Password: "Passw0rd"})
	assert.Nil(t, err)
}

func TestValidateRegistration_LoginFormat(t *testing.T) {
	for _, login := range []string{"has space", "dash-ed", "semi;colon", "dot.ted"} {
		err := ValidateRegistration(RegisterRequest{Login: login, Password: "Passw0rd"})
		require.NotNil(t, err, "login=%q", login)
		assert.Equal(t, appErrors.ErrCodeInvalidInput, err.Code)
	}
}

func TestValidateRegistration_PasswordStrength(t *testing.T) {
	for _, password := range []string{"alllower1", "ALLUPPER1", "NoNumbers"} {
		err := ValidateRegistration(RegisterRequest{Login: "alice", Password: password})
		require.NotNil(t, err, "password=%q", password)
		assert.Equal(t, appErrors.ErrCodeInvalidInput, err.Code)
	}
}

func TestValidateRegistration_Lengths(t *testing.T) {
	err := ValidateRegistration(RegisterRequest{Login: "ab", Password: "Passw0rd"})
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "at least 3")

	err = ValidateRegistration(RegisterRequest{Login: "alice", Password: "Pw1"})
	require.NotNil(t, err)
	assert.Contains(t, err.Message, "at least 6")
}
