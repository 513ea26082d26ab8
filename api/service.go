package api

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/navicore/regexgen/builder"
	"github.com/navicore/regexgen/store"
	"github.com/navicore/regexgen/util"
)

const (
	// api routes
	TokenizeURL         = "/tokenize"
	TokenizeWordURL     = "/tokenize/word"
	SelectionsURL       = "/selections"
	SelectionPreviewURL = "/selections/preview"
	PatternsURL         = "/patterns"
)

var (
	// api errors
	ErrInvalidParams = errors.New("invalid params")
	ErrInvalidIndex  = errors.New("invalid index")
	ErrNoWordAt      = errors.New("no word at the requested position")
	ErrEmptyPreview  = errors.New("no selections to preview")
	ErrNoTestResult  = errors.New("pattern cannot be tested")
)

type Service struct {
	config  util.Config
	builder *builder.Builder
	server  *http.Server
	router  http.Handler

	// The builder is single-threaded by contract and gin is not;
	// every handler takes mu around builder access.
	mu sync.Mutex
}

// Returns new service instance with provided config and store.
// The builder seeds its pattern list from the store here, degrading to an
// empty list when the store cannot be read.
func NewService(config util.Config, s store.Store, generateID builder.IDGenerator) (*Service, error) {
	b := builder.New(context.Background(), s, generateID)

	service := &Service{
		config:  config,
		builder: b,
	}

	server := &http.Server{
		Addr: config.HTTPServerAddress,
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// caps time to read the full request (incl. body).
	server.ReadTimeout = 10 * time.Second
	// caps time you'll spend writing the response (no "forever hanging" clients)
	server.WriteTimeout = 15 * time.Second
	// how long to keep idle keep-alive connections open.
	server.IdleTimeout = 60 * time.Second

	service.setupRouter(server)

	service.server = server

	return service, nil
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}
