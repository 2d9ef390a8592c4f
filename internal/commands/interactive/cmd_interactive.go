package interactive

import (
	"fmt"
	"github.com/bokysan/basecodec/internal/commands"
	"github.com/bokysan/basecodec/internal/transcode"
	"github.com/bokysan/basecodec/internal/util/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"strings"
)

const (
	modeEncode = "Encode"
	modeDecode = "Decode"
)

var descriptions = map[enc.Algorithm]string{
	enc.Base16: "Data, hashing, memory addresses",
	enc.Base32: "Tokens (e.g., two-factor authentication)",
	enc.Base58: "Cryptocurrencies, e.g., Bitcoin",
	enc.Base62: "Links, URLs, unique identifier generation",
	enc.Base64: "Standard encoding (email, API, images)",
	enc.Base85: "PDF, PostScript, data compression",
}

// Command walks the user through encoding or decoding a single file.
type Command struct {
	OutputDir string `yaml:"output-dir" short:"o" long:"output-dir" env:"BASECODEC_OUTPUT_DIR" description:"Directory receiving the result" default:"output"`

	Prompter Prompter  `yaml:"-" no-flag:"true"`
	Out      io.Writer `yaml:"-" no-flag:"true"`
}

func (c *Command) String() string {
	return "Interactive mode"
}

// Menu returns the numbered algorithm list, e.g. "1. Base16 - Data, hashing, memory addresses".
func Menu() []string {
	items := make([]string, 0, len(enc.Algorithms()))
	for _, a := range enc.Algorithms() {
		items = append(items, fmt.Sprintf("%c. %v - %v", a.Encoder().Code(), a, descriptions[a]))
	}
	return items
}

// validateFile accepts paths of existing regular files.
func validateFile(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("Please enter a file path")
	}
	info, err := os.Stat(path)
	if err != nil {
		return errors.Errorf("File %v does not exist", path)
	}
	if info.IsDir() {
		return errors.Errorf("%v is a directory", path)
	}
	return nil
}

func (c *Command) prompter() Prompter {
	if c.Prompter == nil {
		return TerminalPrompter{}
	}
	return c.Prompter
}

func (c *Command) chooseAlgorithm(p Prompter) (enc.Algorithm, error) {
	choice, err := p.Select("Choose the encoding", Menu())
	if err != nil {
		return 0, err
	}
	return enc.AlgorithmFromChoice(choice + 1)
}

func (c *Command) Execute(args []string) error {
	if err := commands.Prepare(); err != nil {
		return err
	}
	p := c.prompter()

	mode, err := p.Select("Encode / Decode", []string{modeEncode, modeDecode})
	if err != nil {
		return err
	}

	path, err := p.Input("Enter the file path", validateFile)
	if err != nil {
		return err
	}
	job := transcode.Job{
		Input:     strings.TrimSpace(path),
		OutputDir: c.OutputDir,
	}

	var result *transcode.Result
	if mode == 0 {
		if job.Algorithm, err = c.chooseAlgorithm(p); err != nil {
			return err
		}
		result, err = transcode.EncodeFile(job)
	} else {
		if _, err := transcode.AlgorithmFromName(job.Input); err != nil {
			log.Debugf("Asking for the algorithm: %v", err)
			if job.Algorithm, err = c.chooseAlgorithm(p); err != nil {
				return err
			}
		}
		result, err = transcode.DecodeFile(job)
	}
	if err != nil {
		return err
	}

	verb := "Encoded"
	if mode != 0 {
		verb = "Decoded"
	}
	commands.PrintResults(commands.Output(c.Out), verb, []*transcode.Result{result})
	return nil
}
