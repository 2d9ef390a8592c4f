package decode

import (
	"github.com/bokysan/basecodec/internal/commands"
	"github.com/bokysan/basecodec/internal/transcode"
	"github.com/bokysan/basecodec/internal/util/enc"
	"io"
)

// Command decodes files. The algorithm is taken from the file extension unless set explicitly.
type Command struct {
	Algorithm enc.Algorithm `yaml:"algorithm" short:"a" long:"algorithm"  env:"BASECODEC_ALGORITHM"  description:"Encoding to use instead of the one named by the file extension"`
	OutputDir string        `yaml:"output-dir" short:"o" long:"output-dir" env:"BASECODEC_OUTPUT_DIR" description:"Directory receiving the decoded files" default:"output"`
	Length    *int          `yaml:"length"           long:"length"                                description:"Exact length of the decoded data. Base85 decoding pads the last block with zeros without it."`
	Args      struct {
		Files []string `positional-arg-name:"FILE" required:"1"`
	} `yaml:"-" positional-args:"true"`

	Out io.Writer `yaml:"-" no-flag:"true"`
}

func (c *Command) String() string {
	return "Decode files"
}

func (c *Command) Execute(args []string) error {
	if err := commands.Prepare(); err != nil {
		return err
	}

	jobs := make([]transcode.Job, 0, len(c.Args.Files))
	for _, f := range c.Args.Files {
		jobs = append(jobs, transcode.Job{
			Input:     f,
			OutputDir: c.OutputDir,
			Algorithm: c.Algorithm,
			Length:    c.Length,
		})
	}

	if err := transcode.CheckOutputs(jobs, transcode.DecodedPath); err != nil {
		return err
	}

	results, err := transcode.Batch(jobs, transcode.DecodeFile)
	commands.PrintResults(commands.Output(c.Out), "Decoded", results)
	return err
}
