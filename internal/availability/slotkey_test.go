package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeSlotKey(t *testing.T) {
	key := EncodeSlotKey("2026-01-05", 3)
	assert.Equal(t, "2026-01-05-3", key)

	slot, err := DecodeSlotKey(key)
	require.NoError(t, err)
	assert.Equal(t, "2026-01-05", slot.Date)
	assert.Equal(t, int32(3), slot.Index)
	assert.Equal(t, key, slot.String())
}

func TestDecodeSlotKeyMalformed(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"no separator", "20260105"},
		{"missing index", "2026-01-05-"},
		{"bad date", "2026-13-40-3"},
		{"not a date at all", "hello-3"},
		{"index not a number", "2026-01-05-abc"},
		{"negative index spills into date", "2026-01-0-5"},
		{"index too large", "2026-01-05-39"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeSlotKey(tt.key)
			require.ErrorIs(t, err, ErrMalformedKey)
		})
	}
}

func TestDecodeSlotKeyIndexBounds(t *testing.T) {
	slot, err := DecodeSlotKey("2026-01-05-0")
	require.NoError(t, err)
	assert.Equal(t, int32(0), slot.Index)

	slot, err = DecodeSlotKey("2026-01-05-38")
	require.NoError(t, err)
	assert.Equal(t, int32(38), slot.Index)
}

func TestTimeSlotLabels(t *testing.T) {
	labels := TimeSlotLabels()
	require.Len(t, labels, SlotCount)

	assert.Equal(t, "4.30AM - 5.00AM", labels[0])
	assert.Equal(t, "5.00AM - 5.30AM", labels[1])
	assert.Equal(t, "11.30PM - 12.00AM", labels[SlotCount-1])

	// callers must not be able to mutate the shared list
	labels[0] = "mutated"
	assert.Equal(t, "4.30AM - 5.00AM", TimeSlotLabels()[0])
}
