package kernel_test

import (
	"testing"

	"littlelemon/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const greekSaladID = "550e8400-e29b-41d4-a716-446655440000"

func TestNewUUID(t *testing.T) {
	a, b := kernel.NewUUID(), kernel.NewUUID()

	require.NoError(t, a.Validate())
	assert.Regexp(t, `^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`, a.String())
	assert.False(t, a.IsEqual(b))
}

func TestUUIDFromString(t *testing.T) {
	accepted := []string{
		greekSaladID,
		"{" + greekSaladID + "}",
		"urn:uuid:" + greekSaladID,
		"550e8400e29b41d4a716446655440000",
		"550E8400-E29B-41D4-A716-446655440000",
	}
	for _, input := range accepted {
		t.Run("accepts "+input, func(t *testing.T) {
			id, err := kernel.UUIDFromString(input)

			require.NoError(t, err)
			assert.Equal(t, greekSaladID, id.String())
		})
	}

	rejected := []string{
		"",
		"menu-item-1",
		"550e8400-e29b-41d4-a716",
		greekSaladID + "-extra",
		"550e8400-e29b-41d4-a716-44665544000g",
	}
	for _, input := range rejected {
		t.Run("rejects "+input, func(t *testing.T) {
			_, err := kernel.UUIDFromString(input)

			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid UUID format")
		})
	}
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round trips through the column form", func(t *testing.T) {
		original := kernel.MustUUIDFromString(greekSaladID)
		raw := original.Bytes()

		id, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, original.IsEqual(id))
	})

	t.Run("rejects a short slice", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x55, 0x0e})

		assert.ErrorContains(t, err, "invalid UUID format")
	})

	t.Run("rejects the nil uuid", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes(make([]byte, 16))

		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUID_Validate(t *testing.T) {
	var zero kernel.UUID
	assert.ErrorIs(t, zero.Validate(), kernel.ErrUUIDIsNotConstructed)

	nilID, err := kernel.UUIDFromString(uuid.Nil.String())
	require.NoError(t, err)
	assert.ErrorIs(t, nilID.Validate(), kernel.ErrUUIDIsNotConstructed)

	assert.NoError(t, kernel.NewUUID().Validate())
}

func TestUUID_IsEqual(t *testing.T) {
	a := kernel.MustUUIDFromString(greekSaladID)
	b := kernel.MustUUIDFromString("{" + greekSaladID + "}")
	var zero1, zero2 kernel.UUID

	assert.True(t, a.IsEqual(b))
	assert.True(t, b.IsEqual(a))
	assert.False(t, a.IsEqual(kernel.NewUUID()))
	assert.True(t, zero1.IsEqual(zero2))
	assert.False(t, zero1.IsEqual(a))
}

func TestUUID_Bytes(t *testing.T) {
	id := kernel.NewUUID()

	raw := id.Bytes()
	assert.Equal(t, id.String(), raw.String())

	for i := range raw {
		raw[i] = 0xFF
	}
	assert.NotEqual(t, uuid.UUID(raw).String(), id.String())
	assert.NoError(t, id.Validate())
}

func TestMustUUIDFromString(t *testing.T) {
	assert.Equal(t, greekSaladID, kernel.MustUUIDFromString(greekSaladID).String())
	assert.Panics(t, func() { kernel.MustUUIDFromString("menu-item") })
}
