package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#ff0000")
	require.NoError(t, err)
	assert.Equal(t, Color{1, 0, 0, 1}, c)

	c, err = ParseHex("00ff0080")
	require.NoError(t, err)
	assert.Equal(t, float32(1), c[1])
	assert.InDelta(t, 128.0/255, c[3], 1e-6)

	for _, bad := range []string{"", "#fff", "#gg0000", "#1234567"} {
		_, err := ParseHex(bad)
		assert.Error(t, err, bad)
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, s := range []string{"#000000ff", "#14191fff", "#ffffff80"} {
		c, err := ParseHex(s)
		require.NoError(t, err)
		assert.Equal(t, s, c.Hex())
	}
}

func TestUnmarshalText(t *testing.T) {
	var c Color
	require.NoError(t, c.UnmarshalText([]byte("#0000ff")))
	assert.Equal(t, Color{0, 0, 1, 1}, c)
	assert.Error(t, c.UnmarshalText([]byte("blue")))
}
