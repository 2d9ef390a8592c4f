package main

import (
	"fmt"
	"github.com/bokysan/basecodec/internal/args"
	"github.com/bokysan/basecodec/internal/commands/decode"
	"github.com/bokysan/basecodec/internal/commands/encode"
	"github.com/bokysan/basecodec/internal/commands/interactive"
	"github.com/bokysan/basecodec/internal/commands/serve"
	"github.com/bokysan/basecodec/internal/commands/version"
	bcFlags "github.com/bokysan/basecodec/internal/flags"
	"github.com/bokysan/basecodec/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// BaseCodec is the main executable
type BaseCodec struct {
	parser      *flags.Parser
	interactive *interactive.Command
}

// NewBaseCodec will create a new instance of BaseCodec and initialize the parser
func NewBaseCodec(name string) *BaseCodec {
	bc := &BaseCodec{
		parser:      flags.NewNamedParser(name, flags.HelpFlag|flags.PrintErrors),
		interactive: &interactive.Command{},
	}
	bc.parser.SubcommandsOptional = true

	bc.setupGeneral()
	bc.setupVersion()
	bc.setupEncode()
	bc.setupDecode()
	bc.setupInteractive()
	bc.setupServe()

	return bc
}

// setupGeneral will configure general options
func (bc *BaseCodec) setupGeneral() {
	if _, err := bc.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupVersion adds the `version` command
func (bc *BaseCodec) setupVersion() {
	_, err := bc.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		&version.Command{},
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (bc *BaseCodec) setupEncode() {
	_, err := bc.parser.AddCommand(
		"encode",
		"Encode files",
		"Encode files with the selected algorithm. Results are written to the output directory as <name>.<algorithm>",
		&encode.Command{},
	)
	util.MustErrorNilOrExit(err)
}

// setupDecode adds the `decode` command
func (bc *BaseCodec) setupDecode() {
	_, err := bc.parser.AddCommand(
		"decode",
		"Decode files",
		"Decode files. The algorithm is taken from the file extension, which is removed from the output name",
		&decode.Command{},
	)
	util.MustErrorNilOrExit(err)
}

// setupInteractive adds the `interactive` command, which also runs when no command is given
func (bc *BaseCodec) setupInteractive() {
	_, err := bc.parser.AddCommand(
		"interactive",
		"Interactive mode",
		"Ask for the operation, the file and the algorithm",
		bc.interactive,
	)
	util.MustErrorNilOrExit(err)
}

// setupServe adds the `serve` command
func (bc *BaseCodec) setupServe() {
	_, err := bc.parser.AddCommand(
		"serve",
		"Run the HTTP server",
		"Run a HTTP server encoding and decoding request bodies",
		&serve.Command{},
	)
	util.MustErrorNilOrExit(err)
}

// Run parses the arguments and executes the selected command or the interactive mode if no command
// was given.
func (bc *BaseCodec) Run(arguments []string) error {
	if _, err := bc.parser.ParseArgs(arguments); err != nil {
		return err
	}
	if bc.parser.Active == nil {
		return bc.interactive.Execute(nil)
	}
	return nil
}

// main starts basecodec and reads the configuration file
func main() {
	baseCodec := NewBaseCodec(path.Base(os.Args[0]))
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := bcFlags.NewYamlParser(baseCodec.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}

	util.MustErrorNilOrExit(baseCodec.Run(os.Args[1:]))
}
