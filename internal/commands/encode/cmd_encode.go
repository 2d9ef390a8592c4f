package encode

import (
	"github.com/bokysan/basecodec/internal/commands"
	"github.com/bokysan/basecodec/internal/transcode"
	"io"
)

// Command encodes files with the selected algorithms. Every file is encoded once per algorithm.
type Command struct {
	Algorithms Algorithms `yaml:"algorithm"  short:"a" long:"algorithm"  env:"BASECODEC_ALGORITHM"  description:"Encoding to use: base16, base32, base58, base62, base64 or base85. Repeat or separate with commas for more." required:"true"`
	OutputDir  string     `yaml:"output-dir" short:"o" long:"output-dir" env:"BASECODEC_OUTPUT_DIR" description:"Directory receiving the encoded files" default:"output"`
	Args       struct {
		Files []string `positional-arg-name:"FILE" required:"1"`
	} `yaml:"-" positional-args:"true"`

	Out io.Writer `yaml:"-" no-flag:"true"`
}

func (c *Command) String() string {
	return "Encode files"
}

func (c *Command) Execute(args []string) error {
	if err := commands.Prepare(); err != nil {
		return err
	}

	jobs := make([]transcode.Job, 0, len(c.Args.Files)*len(c.Algorithms))
	for _, f := range c.Args.Files {
		for _, alg := range c.Algorithms {
			jobs = append(jobs, transcode.Job{
				Input:     f,
				OutputDir: c.OutputDir,
				Algorithm: alg,
			})
		}
	}

	if err := transcode.CheckOutputs(jobs, transcode.EncodedPath); err != nil {
		return err
	}

	results, err := transcode.Batch(jobs, transcode.EncodeFile)
	commands.PrintResults(commands.Output(c.Out), "Encoded", results)
	return err
}
