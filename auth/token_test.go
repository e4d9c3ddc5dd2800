package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify(t *testing.T) {
	token, err := IssueToken("s3cret", "admin-1", "shop@dimavelo.ma")
	require.NoError(t, err)

	adminID, err := VerifyToken("s3cret", token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", adminID)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := IssueToken("s3cret", "admin-1", "shop@dimavelo.ma")
	require.NoError(t, err)

	_, err = VerifyToken("other", token)
	assert.Error(t, err)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	_, err := VerifyToken("s3cret", "not-a-token")
	assert.Error(t, err)
}
