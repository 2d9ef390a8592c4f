package server

import (
	"github.com/bokysan/basecodec/internal/args"
	"github.com/bokysan/basecodec/internal/logging"
	"github.com/go-chi/chi/middleware"
	"net"
	"net/http"
	"strings"
)

type NextHandlerFunc func(next http.Handler) http.Handler

// GetRequestLogger returns the access log middleware matching the configured log format.
func GetRequestLogger(address *net.TCPAddr) NextHandlerFunc {
	if args.General.LogFormat == "json" {
		return middleware.RequestLogger(&logging.JSONLogFormatter{
			ServerAddress: address,
		})
	}

	color := strings.TrimSpace(strings.ToLower(args.General.LogColor))
	return middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  &logging.ChiLogWriter{},
		NoColor: color != "yes" && color != "true" && color != "1",
	})
}
