//go:build unit

package password_test

import (
	"testing"

	"groomer-crm/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher(t *testing.T) {
	h := password.NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("correct horse")
	require.NoError(t, err)

	assert.NoError(t, password.ComparePassword(hash, "correct horse"))
	assert.ErrorIs(t, password.ComparePassword(hash, "wrong horse"), password.ErrComparisonFailed)
	assert.ErrorIs(t, password.ComparePassword("", "x"), password.ErrInvalidPassword)

	_, err = h.Hash("")
	assert.ErrorIs(t, err, password.ErrInvalidPassword)
}
