// Package keystone is the demo REST server of the transport-operation API
// standard: it wires the schema registry, the normalizer and the flat-file
// stores behind the configurable endpoint surface.
package keystone

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/aethongr/keystone-api-standard/config"
	"github.com/aethongr/keystone-api-standard/schema"
	"github.com/aethongr/keystone-api-standard/storage"
)

// Server is the demo API server. It owns one registry and one store per
// top-level entity; all handler state is read through them.
type Server struct {
	cfg config.AppConfig
	log zerolog.Logger
	reg *schema.Registry

	vehicles      *storage.VehicleStore
	drivers       *storage.DriverStore
	organizations *storage.OrganizationStore
	operations    *storage.TransportOperationStore
	ecmrs         *storage.EcmrStore

	http *http.Server
}

// NewServer opens the stores under the configured data directory and builds
// the router.
func NewServer(cfg config.AppConfig, log zerolog.Logger) (*Server, error) {
	s := &Server{cfg: cfg, log: log, reg: schema.NewRegistry()}

	var err error
	dir := cfg.Storage.DataDir
	if s.vehicles, err = storage.OpenVehicleStore(dir, log); err != nil {
		return nil, err
	}
	if s.drivers, err = storage.OpenDriverStore(dir, log); err != nil {
		return nil, err
	}
	if s.organizations, err = storage.OpenOrganizationStore(dir, log); err != nil {
		return nil, err
	}
	if s.operations, err = storage.OpenTransportOperationStore(dir, log); err != nil {
		return nil, err
	}
	if s.ecmrs, err = storage.OpenEcmrStore(dir, log); err != nil {
		return nil, err
	}

	s.http = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s, nil
}

// Handler exposes the router; used by tests.
func (s *Server) Handler() http.Handler { return s.http.Handler }

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	s.log.Info().Str("addr", s.http.Addr).Msg("server listening")
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("shutting down")
	return s.http.Shutdown(ctx)
}
