package mscfb

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderMarshalBinary(t *testing.T) {
	b, err := NewHeader(110, 13959, 13848, 1).MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, HEADER_FIELDS_LEN)
	assert.Equal(t, HEADER_LEN, len(b)+NUM_MSAT_ENTRIES_IN_HEADER*4)

	u16 := func(off int) uint16 { return binary.LittleEndian.Uint16(b[off:]) }
	i32 := func(off int) int32 { return int32(binary.LittleEndian.Uint32(b[off:])) }

	assert.Equal(t, MAGIC_NUMBER, b[:8])
	assert.Equal(t, make([]byte, 16), b[8:24])
	assert.Equal(t, uint16(0x3e), u16(24))
	assert.Equal(t, uint16(3), u16(26))
	assert.Equal(t, uint16(0xfffe), u16(28))
	assert.Equal(t, uint16(9), u16(30))
	assert.Equal(t, uint16(6), u16(32))
	assert.Equal(t, make([]byte, 10), b[34:44])
	assert.Equal(t, int32(110), i32(44))
	assert.Equal(t, int32(13959), i32(48))
	assert.Equal(t, int32(0), i32(52))
	assert.Equal(t, int32(4096), i32(56))
	assert.Equal(t, END_OF_CHAIN, i32(60))
	assert.Equal(t, int32(0), i32(64))
	assert.Equal(t, int32(13848), i32(68))
	assert.Equal(t, int32(1), i32(72))
}

func TestHeaderWithoutMsat(t *testing.T) {
	b, err := NewHeader(1, 9, END_OF_CHAIN, 0).MarshalBinary()
	require.NoError(t, err)

	assert.Equal(t, []byte{0xfe, 0xff, 0xff, 0xff}, b[68:72])
	assert.Equal(t, []byte{0, 0, 0, 0}, b[72:76])
}
