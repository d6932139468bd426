package service_test

import (
	"testing"

	"github.com/VeerKakar17/calendar-todo-list/internal/todo/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	hasher := service.NewPasswordHasher(bcrypt.MinCost)

	digest, err := hasher.Hash("s3cret-password")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-password", digest)

	assert.True(t, hasher.Verify("s3cret-password", digest))
	assert.False(t, hasher.Verify("wrong-password", digest))
}

func TestPasswordHasher_FreshSaltPerHash(t *testing.T) {
	hasher := service.NewPasswordHasher(bcrypt.MinCost)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	// The salt is embedded in the digest, so two hashes of the same
	// password must differ.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("same-password", first))
	assert.True(t, hasher.Verify("same-password", second))
}

func TestPasswordHasher_MalformedDigest(t *testing.T) {
	hasher := service.NewPasswordHasher(bcrypt.MinCost)

	tests := []struct {
		name   string
		digest string
	}{
		{name: "empty", digest: ""},
		{name: "not a bcrypt digest", digest: "plainly-not-a-digest"},
		{name: "truncated digest", digest: "$2a$10$abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, hasher.Verify("anything", tt.digest))
		})
	}
}

func TestNewPasswordHasher_ClampsCost(t *testing.T) {
	tests := []struct {
		name string
		cost int
	}{
		{name: "below minimum", cost: -1},
		{name: "above maximum", cost: bcrypt.MaxCost + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := service.NewPasswordHasher(tt.cost)

			digest, err := hasher.Hash("password")
			require.NoError(t, err)
			assert.True(t, hasher.Verify("password", digest))
		})
	}
}
