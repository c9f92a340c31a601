package flags

import (
	"os"
	"strings"
	"testing"

	"github.com/bokysan/textcodec/internal/args"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type encodeOptions struct {
	args.Codec `yaml:",inline"`
	Wrap       int `yaml:"wrap" long:"wrap" default:"0"`
}

type decodeOptions struct {
	args.Codec `yaml:",inline"`
}

type listOptions struct {
	Encodings []string `yaml:"encodings" long:"encoding" choice:"base32" choice:"base85"`
}

func newParser(t *testing.T) (*flags.Parser, *encodeOptions, *decodeOptions) {
	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag)

	encode := &encodeOptions{}
	_, err := parser.AddCommand("encode", "Encode", "Encode data", encode)
	require.NoErrorf(t, err, "Could not add encode command")

	decode := &decodeOptions{}
	_, err = parser.AddCommand("decode", "Decode", "Decode data", decode)
	require.NoErrorf(t, err, "Could not add decode command")

	return parser, encode, decode
}

func Test_EmptyParse(t *testing.T) {
	file := "testdata/empty.yml"

	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	yamlParser := NewYamlParser(parser)
	err := yamlParser.ParseFile(file)

	require.NoErrorf(t, err, "Parsing not successful: %v", file)
}

func Test_EncodeParse(t *testing.T) {
	file := "testdata/encode.yml"

	parser, encode, _ := newParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	_, err = parser.ParseArgs([]string{"encode"})
	require.NoError(t, err)

	require.Equal(t, "base32hex", encode.Encoding, "Invalid reading of string value")
	require.Equal(t, true, encode.NoPadding, "Invalid reading of boolean value")
	require.Equal(t, 76, encode.Wrap, "Invalid reading of integer value")
	require.Equal(t, "out.txt", encode.Output, "Invalid reading of string value")
	require.Equal(t, "-", encode.Input, "Tag default should be kept")
}

func Test_CommandLineOverridesFile(t *testing.T) {
	file := "testdata/encode.yml"

	parser, encode, _ := newParser(t)
	require.NoError(t, NewYamlParser(parser).ParseFile(file))

	_, err := parser.ParseArgs([]string{"encode", "--encoding", "base85", "--wrap", "10"})
	require.NoError(t, err)

	require.Equal(t, "base85", encode.Encoding)
	require.Equal(t, 10, encode.Wrap)
	require.Equal(t, true, encode.NoPadding)
	require.Equal(t, "out.txt", encode.Output)
}

// The file may be named by an option which is itself handled while the command line is parsed.
func Test_ParseFromCallbackOption(t *testing.T) {
	parser, encode, _ := newParser(t)

	var general struct {
		Config args.CallbackOption `short:"c" long:"config"`
	}
	general.Config = NewYamlParser(parser).ParseFile
	_, err := parser.AddGroup("General", "General options", &general)
	require.NoError(t, err)

	_, err = parser.ParseArgs([]string{"-c", "testdata/encode.yml", "encode"})
	require.NoError(t, err)

	require.Equal(t, "base32hex", encode.Encoding)
	require.Equal(t, true, encode.NoPadding)
	require.Equal(t, 76, encode.Wrap)
	require.Equal(t, "out.txt", encode.Output)
}

func Test_MultipleSegmentsParse(t *testing.T) {
	file := "testdata/multiple.yml"

	parser, encode, decode := newParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	_, err = parser.ParseArgs([]string{"encode"})
	require.NoError(t, err)

	require.Equal(t, "base85", encode.Encoding)
	require.Equal(t, "base32", decode.Encoding)
	require.Equal(t, "in.txt", decode.Input)
}

func Test_ListParse(t *testing.T) {
	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag)
	list := &listOptions{}
	_, err := parser.AddCommand("selftest", "Selftest", "Selftest", list)
	require.NoError(t, err)

	err = NewYamlParser(parser).Parse(strings.NewReader("selftest:\n  encodings: [base32, base85]\n"))
	require.NoError(t, err)

	_, err = parser.ParseArgs([]string{"selftest"})
	require.NoError(t, err)
	require.Equal(t, []string{"base32", "base85"}, list.Encodings)
}

func Test_UnknownKeyParse(t *testing.T) {
	file := "testdata/invalid_unknown_key.yml"

	parser, encode, _ := newParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	_, err = parser.ParseArgs([]string{"encode"})
	require.NoError(t, err)
	require.Equal(t, "base85", encode.Encoding)
}

func Test_StrictUnknownKeyParse(t *testing.T) {
	file := "testdata/invalid_unknown_key.yml"

	parser, _, _ := newParser(t)
	yamlParser := NewYamlParser(parser)
	yamlParser.Strict = true
	err := yamlParser.ParseFile(file)
	require.Errorf(t, err, "Parsing not successful, expected error but did not get one: %v", file)

	flagsErr, ok := errors.Cause(err).(*flags.Error)
	require.True(t, ok)
	require.Equal(t, flags.ErrUnknownFlag, flagsErr.Type)
}

func Test_InvalidValues(t *testing.T) {
	for _, config := range []string{
		"encode:\n  encoding: base64\n",
		"encode:\n  wrap: many\n",
		"encode:\n  encoding: [base32, base85]\n",
		"encode:\n  output:\n",
		"encode: base85\n",
	} {
		parser, _, _ := newParser(t)
		err := NewYamlParser(parser).Parse(strings.NewReader(config))
		require.Errorf(t, err, "expected an error for %q", config)
	}
}

func Test_InvalidNoCommand(t *testing.T) {
	file := "testdata/invalid_no_command.yml"

	parser, _, _ := newParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.Errorf(t, err, "Parsing not successful, expected error but did not get one: %v", file)
}

func Test_InvalidSyntax(t *testing.T) {
	file := "testdata/invalid_syntax.yml"

	parser, _, _ := newParser(t)
	err := NewYamlParser(parser).ParseFile(file)
	require.Errorf(t, err, "Parsing not successful, expected error but did not get one: %v", file)
}

func Test_MissingFile(t *testing.T) {
	parser, _, _ := newParser(t)
	err := NewYamlParser(parser).ParseFile("testdata/does_not_exist.yml")
	require.Error(t, err)
	require.True(t, os.IsNotExist(errors.Cause(err)))
}
