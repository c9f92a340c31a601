package enc

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_CodecsDoNotAllocate(t *testing.T) {
	src := append([]byte{0, 0, 0, 0}, encoderTest...)
	src = append(src, 1, 2)

	b32 := make([]byte, Base32EncodedLen(len(src), false))
	b32n, err := Base32Encode(b32, src, false, Base32Std)
	require.NoError(t, err)

	b85 := make([]byte, Base85EncodedLen(len(src)))
	b85n, err := Base85Encode(b85, src)
	require.NoError(t, err)

	out := make([]byte, Base85DecodedLen(b85n))

	for name, f := range map[string]func(){
		"Base32Encode": func() { _, _ = Base32Encode(b32, src, false, Base32Std) },
		"Base32Decode": func() { _, _ = Base32Decode(out, b32[:b32n], Base32Std) },
		"Base85Encode": func() { _, _ = Base85Encode(b85, src) },
		"Base85Decode": func() { _, _ = Base85Decode(out, b85[:b85n]) },
	} {
		require.Zerof(t, testing.AllocsPerRun(100, f), "%v allocates", name)
	}
}
