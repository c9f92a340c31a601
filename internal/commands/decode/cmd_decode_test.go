package decode

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/bokysan/textcodec/internal/args"
	"github.com/bokysan/textcodec/internal/util/enc"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func Test_DecodeCommand(t *testing.T) {
	dir, err := ioutil.TempDir("", "textcodec")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "in.txt")
	out := filepath.Join(dir, "out.bin")

	for _, tc := range []struct {
		encoding string
		encoded  string
	}{
		{"base32", "MZXW6YTBOI======\n"},
		{"base32", "MZXW6\nYTBOI\n=====\n=\n"},
		{"base32", "MZXW6YTBOI\n"},
		{"base32hex", "CPNMUOJ1E8======"},
		{"base85", "AoDTs\n@<)\n"},
	} {
		require.NoError(t, ioutil.WriteFile(in, []byte(tc.encoded), 0644))

		cmd := NewCommand()
		cmd.Codec = args.Codec{Encoding: tc.encoding, Input: in, Output: out}
		require.NoErrorf(t, cmd.Execute(nil), "could not decode %q", tc.encoded)

		data, err := ioutil.ReadFile(out)
		require.NoError(t, err)
		require.Equal(t, "foobar", string(data))
	}
}

func Test_StripSpace(t *testing.T) {
	require.Equal(t, "MZXW6YTBOI", string(StripSpace([]byte(" MZXW6\tYTBOI\r\n\v\f"))))
	require.Equal(t, "MZXW6\u00a0YTBOI\u0085", string(StripSpace([]byte("MZXW6\u00a0YTBOI\u0085\n"))))
	require.Equal(t, "MZ\xffXW", string(StripSpace([]byte("MZ\xff XW"))))
	require.Empty(t, StripSpace([]byte(" \n")))
}

func Test_DecodeCommandRejectsUnicodeSpace(t *testing.T) {
	dir, err := ioutil.TempDir("", "textcodec")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "in.txt")
	require.NoError(t, ioutil.WriteFile(in, []byte("MZXW6YTB\u00a0OI====\n"), 0644))

	cmd := NewCommand()
	cmd.Codec = args.Codec{Encoding: "base32", Input: in, Output: filepath.Join(dir, "out.bin")}
	err = cmd.Execute(nil)
	require.Error(t, err)
	require.Equal(t, enc.ErrInvalidCharacter, errors.Cause(err))
}

func Test_DecodeCommandInvalidInput(t *testing.T) {
	dir, err := ioutil.TempDir("", "textcodec")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "in.txt")
	require.NoError(t, ioutil.WriteFile(in, []byte("MY=====\n"), 0644))

	cmd := NewCommand()
	cmd.Codec = args.Codec{Encoding: "base32", Input: in, Output: filepath.Join(dir, "out.bin")}
	err = cmd.Execute(nil)
	require.Error(t, err)
	require.Equal(t, enc.ErrInvalidLength, errors.Cause(err))
}
