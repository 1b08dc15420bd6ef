package password

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	digest, err := Hash("hunter22")
	require.NoError(t, err)
	require.NotEqual(t, "hunter22", digest)

	require.True(t, Verify("hunter22", digest))
	require.False(t, Verify("hunter23", digest))
}

func TestVerifyMalformedDigest(t *testing.T) {
	require.False(t, Verify("anything", "not-a-bcrypt-digest"))
	require.False(t, Verify("anything", ""))
}

func TestHashIsSalted(t *testing.T) {
	a, err := Hash("same-password")
	require.NoError(t, err)
	b, err := Hash("same-password")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
