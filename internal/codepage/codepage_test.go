package codepage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestLookup(t *testing.T) {
	enc, err := Lookup("")
	require.NoError(t, err)
	assert.Equal(t, charmap.Windows1251, enc)

	enc, err = Lookup("cp1251")
	require.NoError(t, err)
	assert.Equal(t, charmap.Windows1251, enc)

	_, err = Lookup("no-such-encoding")
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	text := `<Day id="1" name="понедельник" wd="2">`

	raw, err := Encode(text, charmap.Windows1251)
	require.NoError(t, err)
	assert.Len(t, raw, len([]rune(text)))

	back, err := Decode(raw, charmap.Windows1251)
	require.NoError(t, err)
	assert.Equal(t, text, string(back))
}

func TestEncode_Unrepresentable(t *testing.T) {
	_, err := Encode("日本", charmap.Windows1251)
	assert.Error(t, err)
}

func TestNilEncodingIsUTF8(t *testing.T) {
	out, err := Decode([]byte("среда"), nil)
	require.NoError(t, err)
	assert.Equal(t, "среда", string(out))

	raw, err := Encode("среда", nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("среда"), raw)
}
