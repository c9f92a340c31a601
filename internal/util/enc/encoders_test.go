package enc

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func Test_Lookup(t *testing.T) {
	for name, expected := range map[string]string{
		"base32":    "Base32",
		"BASE32HEX": "Base32Hex",
		" base85 ":  "Base85",
		"t":         "Base32",
		"H":         "Base32Hex",
		"w":         "Base85",
	} {
		e, err := Lookup(name)
		require.NoErrorf(t, err, "could not find encoder %q", name)
		require.Equal(t, expected, e.Name())
	}

	_, err := Lookup("base91")
	require.Error(t, err)
	require.Equal(t, ErrUnknownEncoder, errors.Cause(err))
}

func Test_EncodersRoundTrip(t *testing.T) {
	for _, e := range Encoders() {
		for _, data := range encoderTests {
			encoded := e.Encode(data)
			require.LessOrEqual(t, float64(len(encoded)), e.Ratio()*float64(len(data))+8, "%v", e)
			decoded, err := e.Decode(encoded)
			require.NoError(t, err)
			require.Equal(t, string(data), string(decoded), "%v", e)
		}
	}
}
