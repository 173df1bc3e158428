package utils_test

import (
	"testing"

	"planetarium-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := utils.HashPassword("s3cret-password")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-password", hash)

	assert.True(t, utils.CheckPassword(hash, "s3cret-password"))
	assert.False(t, utils.CheckPassword(hash, "wrong-password"))
}
