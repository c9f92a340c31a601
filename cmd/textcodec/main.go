package main

import (
	"fmt"
	"os"
	"path"

	"github.com/bokysan/textcodec/internal/args"
	"github.com/bokysan/textcodec/internal/commands/decode"
	"github.com/bokysan/textcodec/internal/commands/encode"
	"github.com/bokysan/textcodec/internal/commands/selftest"
	"github.com/bokysan/textcodec/internal/commands/version"
	tcFlags "github.com/bokysan/textcodec/internal/flags"
	"github.com/bokysan/textcodec/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// TextCodec is the main executable
type TextCodec struct {
	parser *flags.Parser
}

// NewTextCodec will create a new instance of TextCodec and initialize the parser
func NewTextCodec() *TextCodec {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	tc := &TextCodec{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	tc.setupGeneral()
	tc.setupVersion()
	tc.setupEncode()
	tc.setupDecode()
	tc.setupSelftest()

	return tc
}

// setupGeneral will configure general options. The configuration file is read as soon as the
// option is seen, and its values become defaults for the commands' options.
func (tc *TextCodec) setupGeneral() {
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := tcFlags.NewYamlParser(tc.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}

	if _, err := tc.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupVersion adds the `version` command
func (tc *TextCodec) setupVersion() {
	cmd := &version.Command{}
	_, err := tc.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and the supported encodings and exit",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (tc *TextCodec) setupEncode() {
	cmd := encode.NewCommand()
	_, err := tc.parser.AddCommand(
		"encode",
		"Encode binary data",
		"Read binary data from a file or stdin and write its base32 or base85 encoding",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (tc *TextCodec) setupDecode() {
	cmd := decode.NewCommand()
	_, err := tc.parser.AddCommand(
		"decode",
		"Decode text",
		"Read base32 or base85 text from a file or stdin and write the decoded binary data",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupSelftest adds the `selftest` command
func (tc *TextCodec) setupSelftest() {
	cmd := selftest.NewCommand()
	_, err := tc.parser.AddCommand(
		"selftest",
		"Verify the encoders",
		"Round-trip test patterns and random payloads through the encoders and report every mismatch",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// main starts textcodec and reads the configuration file
func main() {

	textCodec := NewTextCodec()
	_, err := textCodec.parser.Parse()
	util.MustErrorNilOrExit(err)

}
