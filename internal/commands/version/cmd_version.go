package version

import (
	"os"

	"github.com/bokysan/textcodec/internal/util/enc"
	"github.com/bokysan/textcodec/internal/version"
	"github.com/k0kubun/go-ansi"
)

const (
	Bold           = "\x1b[1m"
	Reset          = "\x1b[0m"
	LightGray      = "\x1b[37m"
	DarkGray       = "\x1b[90m"
	White          = "\x1b[97m"
	BackgroundBlue = "\x1b[44m"
)

// Command prints the build details and the list of supported encodings.
type Command struct {
}

func (i *Command) String() string {
	return "Version details"
}

//goland:noinspection GoUnhandledErrorResult
func (i *Command) Execute(args []string) error {
	PrintVersion()
	if version.GitTag != "" {
		ansi.Printf(DarkGray+" Git tag     "+White+"%+v"+Reset+"\n", version.GitTag)
	}
	if version.GitBranch != "" {
		ansi.Printf(DarkGray+" Git branch  "+White+"%+v"+Reset+"\n", version.GitBranch)
	}
	if version.GitState != "" {
		ansi.Printf(DarkGray+" Git state   "+White+"%+v"+Reset+"\n", version.GitState)
	}
	if version.GoVersion != "" {
		ansi.Printf(DarkGray+" Go version  "+White+"%+v"+Reset+"\n", version.GoVersion)
	}
	for _, e := range enc.Encoders() {
		ansi.Printf(DarkGray+" Encoding    "+White+"%v"+DarkGray+" (%.2f chars/byte)"+Reset+"\n", e, e.Ratio())
	}
	os.Exit(0)
	return nil
}

//goland:noinspection GoUnhandledErrorResult
func PrintVersion() {
	ansi.Printf(Bold+BackgroundBlue+
		LightGray+" TEXTCODEC - base32 / base85 codec "+White+"%s"+LightGray+" "+Reset+"\n"+
		DarkGray+" Built on    "+White+"%+v\n"+
		DarkGray+" Git version "+White+"%+v"+Reset+"\n",
		version.AppVersion(), version.BuildDate, version.GitCommit)
}
