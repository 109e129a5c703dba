package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueAndParseToken(t *testing.T) {
	token, err := IssueToken("secret", 12, false, time.Hour)
	require.NoError(t, err)

	userID, isStaff, err := ParseAuthHeader("Bearer "+token, "secret")
	require.NoError(t, err)
	require.EqualValues(t, 12, userID)
	require.False(t, isStaff)
}

func TestParseAuthHeader_BareToken(t *testing.T) {
	token, err := IssueToken("secret", 3, true, time.Hour)
	require.NoError(t, err)

	// Header without the Bearer prefix is accepted too.
	userID, isStaff, err := ParseAuthHeader(token, "secret")
	require.NoError(t, err)
	require.EqualValues(t, 3, userID)
	require.True(t, isStaff)
}

func TestParseAuthHeader_WrongSecret(t *testing.T) {
	token, err := IssueToken("secret", 12, false, time.Hour)
	require.NoError(t, err)

	_, _, err = ParseAuthHeader("Bearer "+token, "other-secret")
	require.Error(t, err)
}

func TestParseAuthHeader_Expired(t *testing.T) {
	token, err := IssueToken("secret", 12, false, -time.Minute)
	require.NoError(t, err)

	_, _, err = ParseAuthHeader("Bearer "+token, "secret")
	require.Error(t, err)
}

func TestParseAuthHeader_Missing(t *testing.T) {
	_, _, err := ParseAuthHeader("", "secret")
	require.Error(t, err)

	_, _, err = ParseAuthHeader("Bearer ", "secret")
	require.Error(t, err)
}
