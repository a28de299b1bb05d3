// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"net"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/miam-miam/internal/config"
	"github.com/MKhiriev/miam-miam/internal/handler"
	"github.com/MKhiriev/miam-miam/internal/logger"
	"github.com/MKhiriev/miam-miam/internal/workers"
)

type server struct {
	httpServer *httpServer
	workers    *workers.Workers
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, bg *workers.Workers, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}
	if bg == nil {
		bg = workers.NewWorkers()
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		workers:    bg,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	l, err := s.httpServer.listen()
	if err != nil {
		s.logger.Err(err).Str("func", "server.RunServer").Msg("error opening listener")
		return
	}

	if err = s.run(ctx, l); err != nil {
		s.logger.Err(err).Str("func", "server.RunServer").Msg("error running server")
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}

// run serves on l and starts the workers. It returns once ctx is done or
// the listener fails, after the HTTP server and all workers have stopped.
func (s *server) run(ctx context.Context, l net.Listener) error {
	if s.httpServer == nil {
		return errors.New("no servers to run")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workersDone := make(chan struct{})
	go func() {
		s.workers.Run(ctx)
		close(workersDone)
	}()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.serve(l)
	}()

	var err error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received, shutting down")
		s.Shutdown()
		err = <-serveErr
	case err = <-serveErr:
		cancel()
	}

	<-workersDone
	s.logger.Info().Msg("server shut down gracefully")

	return err
}
