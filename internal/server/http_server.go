package server

import (
	"context"
	"fmt"
	"github.com/bokysan/basecodec/internal/util/addr"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"net"
	"net/http"
	"time"
)

// DefaultMaxBody is the largest accepted request body, in bytes.
const DefaultMaxBody = 32 << 20

// HttpServer exposes the codecs over HTTP.
type HttpServer struct {
	Address string
	MaxBody int64

	server   *http.Server
	listener net.Listener
}

func NewHttpServer(address string, maxBody int64) *HttpServer {
	if maxBody <= 0 {
		maxBody = DefaultMaxBody
	}
	return &HttpServer{
		Address: address,
		MaxBody: maxBody,
	}
}

func (hs *HttpServer) String() string {
	if hs.listener != nil {
		return fmt.Sprintf("http://%v", hs.listener.Addr())
	}
	return fmt.Sprintf("http://%v", hs.Address)
}

// Addr returns the address the server is listening on or nil if the server is not running.
func (hs *HttpServer) Addr() net.Addr {
	if hs.listener == nil {
		return nil
	}
	return hs.listener.Addr()
}

// Router builds the request handler with all the routes and middleware.
func (hs *HttpServer) Router(address *net.TCPAddr) http.Handler {
	router := chi.NewRouter()
	router.Use(
		middleware.RequestID, // Set Request Id on all requests
		middleware.RealIP,    // Extract actual IP if running behind reverse proxy
		GetRequestLogger(address),
		middleware.RedirectSlashes, // Redirect slashes to no slash URLs
		middleware.Recoverer,       // Recover from panics without crashing the server
	)

	router.Get("/algorithms", hs.listAlgorithms)
	router.Post("/encode/{algorithm}", hs.encode)
	router.Post("/decode/{algorithm}", hs.decode)

	return router
}

// Startup starts listening and serves the requests in the background.
func (hs *HttpServer) Startup() error {
	address, err := addr.ResolveHostAddress(hs.Address)
	if err != nil {
		return errors.WithStack(err)
	}

	ln, err := net.ListenTCP("tcp", address)
	if err != nil {
		return errors.Wrapf(err, "Could not listen on %v", address)
	}
	hs.listener = ln

	hs.server = &http.Server{
		Addr:              address.String(),
		Handler:           hs.Router(ln.Addr().(*net.TCPAddr)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("Starting HTTP server at %v", hs)
		if err := hs.server.Serve(ln); err != http.ErrServerClosed {
			err = errors.WithStack(err)
			log.WithError(err).Errorf("Could not start the server %v", err)
		}
	}()

	return nil
}

func (hs *HttpServer) Shutdown() error {
	if hs.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer func() {
		cancel()
	}()
	return hs.server.Shutdown(ctx)
}
