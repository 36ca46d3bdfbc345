package metadata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot_CopiesAccumulator(t *testing.T) {
	acc := map[Key]any{
		KeyFlashMode:       FlashModeOff,
		KeySensorTimestamp: int64(42),
	}
	snap := NewSnapshot(acc)

	// Later writes to the accumulator must not leak into the snapshot.
	acc[KeyFlashMode] = FlashModeTorch

	v, ok := snap.Get(KeyFlashMode)
	assert.True(t, ok)
	assert.Equal(t, FlashModeOff, v)
	assert.Equal(t, int64(42), snap.Timestamp())
}

func TestSnapshot_KeysSortedAndEqual(t *testing.T) {
	a := NewSnapshot(map[Key]any{
		KeySensorTimestamp: int64(1),
		KeyControlAEMode:   AEModeOn,
		KeyFlashMode:       FlashModeOff,
	})
	b := NewSnapshot(map[Key]any{
		KeyFlashMode:       FlashModeOff,
		KeyControlAEMode:   AEModeOn,
		KeySensorTimestamp: int64(1),
	})

	assert.Equal(t, []Key{KeyControlAEMode, KeyFlashMode, KeySensorTimestamp}, a.Keys())
	assert.Equal(t, 3, a.Len())
	assert.True(t, a.Equal(b))

	c := NewSnapshot(map[Key]any{KeyFlashMode: FlashModeTorch})
	assert.False(t, a.Equal(c))
}

func TestSnapshot_AbsentKey(t *testing.T) {
	snap := NewSnapshot(nil)

	_, ok := snap.Get(KeyControlAWBState)
	assert.False(t, ok)
	assert.Zero(t, snap.Timestamp())
}
