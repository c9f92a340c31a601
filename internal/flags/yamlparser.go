package flags

import (
	"fmt"
	"io"
	"os"
	"path"
	"reflect"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// YamlParser is an argument parser for flags package but takes a YAML file instead of a standard INI.
// Every top-level key names a command (e.g. `encode:`) and the keys below it name the command's
// options, either by their yaml tag or by their long name.
//
// Values from the file become option defaults. They are applied by flags.Parser at the end of
// ParseArgs, so anything given on the command line or in the environment still wins.
type YamlParser struct {
	// Strict rejects keys which do not map to any option of the command.
	Strict bool
	parser *flags.Parser
}

// NewYamlParser creates a new yaml parser for a given flags.Parser.
func NewYamlParser(p *flags.Parser) *YamlParser {
	return &YamlParser{
		parser: p,
	}
}

// ParseFile parses options from an yaml formatted file. The returned errors
// can be of the type flags.Error.
func (y *YamlParser) ParseFile(filename string) error {
	body, err := os.Open(filename)
	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := body.Close(); err != nil {
			log.Errorf("Could not close %s: %v", filename, err)
		}
	}()

	log.Debugf("Reading configuration from %v", filename)

	// Let the decoder know where the file is so that it may reference files in subdirs
	return y.Parse(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// Parse reads YAML segments from config one after another. Multiple segments may be placed in
// the same stream, separated by triple dashes (`---`). Later segments override earlier ones.
func (y *YamlParser) Parse(config io.Reader, opts ...yaml.DecodeOption) error {
	decoder := yaml.NewDecoder(config, opts...)

	for i := 1; ; i++ {
		obj := make(map[string]interface{})
		err := decoder.Decode(&obj)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode element at position %v", i)
		}

		if err = y.parseSegment(obj); err != nil {
			return errors.Wrapf(err, "Could not apply element at position %v", i)
		}
	}
}

// parseSegment matches every key of the segment to a command of the parser and sets the
// defaults of its options.
func (y *YamlParser) parseSegment(obj map[string]interface{}) error {
	for name, val := range obj {
		command := y.parser.Find(name)
		if command == nil {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrUnknownCommand,
				Message: fmt.Sprintf("could not find option command '%s'", name),
			})
		}

		if val == nil {
			continue
		}
		conv, err := yaml.Marshal(val)
		if err != nil {
			return errors.WithStack(err)
		}
		values := make(map[string]interface{})
		if err := yaml.Unmarshal(conv, &values); err != nil {
			return errors.Wrapf(err, "options for '%s' must be a mapping", name)
		}

		for key, value := range values {
			option := findOption(command, key)
			if option == nil {
				if y.Strict {
					return errors.WithStack(&flags.Error{
						Type:    flags.ErrUnknownFlag,
						Message: fmt.Sprintf("unknown option '%s' for command '%s'", key, name),
					})
				}
				log.Warnf("Ignoring unknown option '%s' for command '%s'", key, name)
				continue
			}

			if err := setDefault(option, value); err != nil {
				return errors.Wrapf(err, "invalid option '%s' for command '%s'", key, name)
			}
		}
	}
	return nil
}

// findOption looks up an option of the command by its yaml key, falling back to its long name.
func findOption(command *flags.Command, key string) *flags.Option {
	for _, option := range command.Options() {
		tag := strings.Split(option.Field().Tag.Get("yaml"), ",")[0]
		if tag == key {
			return option
		}
	}
	return command.FindOptionByLongName(key)
}

// setDefault stores value as the default of option. The value is first decoded into the option's
// own type, as flags.Parser ignores conversion errors when it applies defaults.
func setDefault(option *flags.Option, value interface{}) error {
	if value == nil {
		return errors.New("missing value")
	}

	kind := option.Field().Type.Kind()
	if kind == reflect.Func {
		return errors.New("option cannot be set from a file")
	}
	if _, ok := value.([]interface{}); kind == reflect.Slice && !ok {
		value = []interface{}{value}
	}

	conv, err := yaml.Marshal(value)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := yaml.Unmarshal(conv, reflect.New(option.Field().Type).Interface()); err != nil {
		return errors.WithStack(err)
	}

	var defaults []string
	if list, ok := value.([]interface{}); ok {
		if kind != reflect.Slice {
			return errors.Errorf("expected a single value, got a list")
		}
		for _, v := range list {
			defaults = append(defaults, fmt.Sprint(v))
		}
	} else {
		defaults = []string{fmt.Sprint(value)}
	}

	if len(option.Choices) > 0 {
		for _, d := range defaults {
			if !isChoice(option.Choices, d) {
				return errors.WithStack(&flags.Error{
					Type: flags.ErrInvalidChoice,
					Message: fmt.Sprintf("invalid value '%s'. Allowed values are: %s",
						d, strings.Join(option.Choices, ", ")),
				})
			}
		}
	}

	option.Default = defaults
	return nil
}

func isChoice(choices []string, value string) bool {
	for _, c := range choices {
		if c == value {
			return true
		}
	}
	return false
}
