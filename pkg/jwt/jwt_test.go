package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/trictux/trictux-api/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testUserID = "00000000-0000-0000-0000-000000000001"
	testEmail  = "owner@trictux.test"
	testIssuer = "trictux-test"
)

func TestJWT_GenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testEmail, "company", testIssuer, 60)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := pkgjwt.Parse(testSecret, tok)
	require.NoError(t, err)
	assert.Equal(t, testUserID, claims.UserID)
	assert.Equal(t, testEmail, claims.Email)
	assert.Equal(t, "company", claims.Role)
	assert.Equal(t, testIssuer, claims.Issuer)
}

func TestJWT_TokenExpirado_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testEmail, "owner", testIssuer, -1)
	require.NoError(t, err)

	_, err = pkgjwt.Parse(testSecret, tok)
	assert.Error(t, err, "token expirado debe retornar error")
}

func TestJWT_SecretIncorrecto_RetornaError(t *testing.T) {
	tok, err := pkgjwt.Generate(testSecret, testUserID, testEmail, "owner", testIssuer, 60)
	require.NoError(t, err)

	_, err = pkgjwt.Parse("otro-secret-completamente-distinto", tok)
	assert.Error(t, err)
}

func TestJWT_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", testUserID, testEmail, "owner", testIssuer, 60)
	assert.ErrorIs(t, err, pkgjwt.ErrEmptySecret)

	_, err = pkgjwt.Parse("", "x.y.z")
	assert.ErrorIs(t, err, pkgjwt.ErrEmptySecret)
}
