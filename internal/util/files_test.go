package util

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_ReadWriteFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "textcodec")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	file := filepath.Join(dir, "data.txt")
	require.NoError(t, WriteOutput(file, []byte("MZXW6YTBOI======")))

	data, err := ReadInput(file)
	require.NoError(t, err)
	require.Equal(t, "MZXW6YTBOI======", string(data))

	_, err = ReadInput(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
}
