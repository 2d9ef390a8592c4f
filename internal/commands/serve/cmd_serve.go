package serve

import (
	"github.com/bokysan/basecodec/internal/commands"
	"github.com/bokysan/basecodec/internal/server"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"os"
	"os/signal"
	"syscall"
)

// Command runs the HTTP front-end until interrupted.
type Command struct {
	Address string `yaml:"address" short:"a" long:"address"  env:"BASECODEC_ADDRESS"  description:"Address to listen on, e.g. '127.0.0.1:8080'" default:"127.0.0.1:8080"`
	MaxBody int64  `yaml:"max-body"           long:"max-body" env:"BASECODEC_MAX_BODY" description:"Largest accepted request body, in bytes" default:"33554432"`

	srv *server.HttpServer
}

func (s *Command) String() string {
	return "HTTP server"
}

// Startup starts the server and returns once it is listening.
func (s *Command) Startup() error {
	s.srv = server.NewHttpServer(s.Address, s.MaxBody)
	return s.srv.Startup()
}

func (s *Command) Shutdown() error {
	if s.srv == nil {
		return nil
	}
	log.Infof("Graceful server shutdown...")
	if err := s.srv.Shutdown(); err != nil {
		return errors.Wrapf(err, "Could not shutdown %v", s.srv)
	}
	return nil
}

// Run serves requests until a signal arrives on the interrupted channel.
func (s *Command) Run(interrupted <-chan os.Signal) error {
	if err := s.Startup(); err != nil {
		return err
	}

	sig := <-interrupted
	log.Debugf("Received %v", sig)
	return s.Shutdown()
}

func (s *Command) Execute(args []string) error {
	if err := commands.Prepare(); err != nil {
		return err
	}

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(interrupted)

	return s.Run(interrupted)
}
