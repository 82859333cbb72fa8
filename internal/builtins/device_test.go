package builtins

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputDeviceReadsLSBFirst(t *testing.T) {
	// 0x05 = 0b00000101: bits come out least-significant first.
	d := NewInputDevice(bytes.NewReader([]byte{0x05}))
	want := []byte{1, 0, 1, 0, 0, 0, 0, 0}
	for i, w := range want {
		bit, ok := d.Read()
		require.True(t, ok, "bit %d", i)
		assert.Equal(t, w, bit, "bit %d", i)
	}
	_, ok := d.Read()
	assert.False(t, ok, "stream should be exhausted")
}

func TestInputDeviceCrossesByteBoundary(t *testing.T) {
	d := NewInputDevice(bytes.NewReader([]byte{0x01, 0x01}))
	var bits []byte
	for i := 0; i < 16; i++ {
		bit, ok := d.Read()
		require.True(t, ok)
		bits = append(bits, bit)
	}
	assert.Equal(t, byte(1), bits[0])
	assert.Equal(t, byte(1), bits[8])
	for i, b := range bits {
		if i != 0 && i != 8 {
			assert.Equal(t, byte(0), b, "bit %d", i)
		}
	}
}

func TestOutputDeviceFlushesCompleteBytesLSBFirst(t *testing.T) {
	var buf bytes.Buffer
	d := NewOutputDevice(&buf)
	// Write 0b00000101 = 0x05, LSB first: 1,0,1,0,0,0,0,0.
	bits := []int64{1, 0, 1, 0, 0, 0, 0, 0}
	for _, b := range bits {
		require.NoError(t, d.Write(b))
	}
	require.NoError(t, d.Flush())
	assert.Equal(t, []byte{0x05}, buf.Bytes())
}

func TestOutputDeviceNeverFlushesPartialTrailingByte(t *testing.T) {
	var buf bytes.Buffer
	d := NewOutputDevice(&buf)
	require.NoError(t, d.Write(1))
	require.NoError(t, d.Write(1))
	require.NoError(t, d.Flush())
	assert.Equal(t, 0, buf.Len())
}

func TestDeviceRoundTripsThroughAString(t *testing.T) {
	in := NewInputDevice(strings.NewReader("hi"))
	var buf bytes.Buffer
	out := NewOutputDevice(&buf)
	for {
		bit, ok := in.Read()
		if !ok {
			break
		}
		require.NoError(t, out.Write(int64(bit)))
	}
	require.NoError(t, out.Flush())
	assert.Equal(t, "hi", buf.String())
}
