package lib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("64f0c1e2a1b2c3d4e5f60718")
	require.NoError(t, err)

	claims, err := VerifyJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "64f0c1e2a1b2c3d4e5f60718", claims["userId"])
}

func TestVerifyJWTRejectsGarbage(t *testing.T) {
	_, err := VerifyJWT("not.a.token")
	require.Error(t, err)
}

func TestVerifyJWTRejectsTamperedToken(t *testing.T) {
	token, err := GenerateJWT("64f0c1e2a1b2c3d4e5f60718")
	require.NoError(t, err)

	_, err = VerifyJWT(token + "x")
	require.Error(t, err)
}
