package runner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const defaultShutdownTimeout = 10 * time.Second

var (
	ErrServicePanic    = errors.New("runner: service panicked")
	ErrServiceFailed   = errors.New("runner: service failed to start")
	ErrShutdownTimeout = errors.New("runner: shutdown timeout exceeded")
)

// Service is anything with a non-blocking Start and a blocking Stop.
type Service interface {
	Start(ctx context.Context) error
	Stop() error
	Name() string
}

type Runner struct {
	services        []Service
	shutdownTimeout time.Duration
	signals         []os.Signal
	logger          zerolog.Logger
}

type Option func(*Runner)

func New(opts ...Option) *Runner {
	runner := &Runner{
		services:        make([]Service, 0),
		shutdownTimeout: defaultShutdownTimeout,
		signals:         []os.Signal{os.Interrupt, syscall.SIGTERM},
		logger:          log.Logger,
	}

	for _, opt := range opts {
		opt(runner)
	}

	return runner
}

func WithService(svc Service) Option {
	return func(r *Runner) {
		r.services = append(r.services, svc)
	}
}

func WithShutdownTimeout(d time.Duration) Option {
	return func(r *Runner) {
		r.shutdownTimeout = d
	}
}

// WithSignals replaces the signals that trigger shutdown. No signals means
// only ctx cancellation does.
func WithSignals(signals ...os.Signal) Option {
	return func(r *Runner) {
		r.signals = signals
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// Run starts the services in order, waits for ctx or a signal, then stops
// them in reverse order. A start failure stops what already started and is
// returned.
func (r *Runner) Run(ctx context.Context) error {
	if len(r.signals) > 0 {
		var stop context.CancelFunc

		ctx, stop = signal.NotifyContext(ctx, r.signals...)
		defer stop()
	}

	started := make([]Service, 0, len(r.services))

	for _, svc := range r.services {
		r.logger.Info().Str("service_name", svc.Name()).Msg("Starting service")

		if err := startService(ctx, svc); err != nil {
			r.logger.Error().Err(err).Str("service_name", svc.Name()).Msg("Service failed to start")

			return errors.Join(err, r.shutdown(started))
		}

		started = append(started, svc)
	}

	r.logger.Info().
		Int("pid", os.Getpid()).
		Int("services", len(started)).
		Msg("All services started, waiting for shutdown signal")

	<-ctx.Done()
	r.logger.Warn().Msg("Shutdown signal received")

	if err := r.shutdown(started); err != nil {
		return err
	}

	r.logger.Info().Msg("Graceful shutdown completed")

	return nil
}

func startService(ctx context.Context, svc Service) (err error) { //nolint:nonamedreturns
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %s: %v", ErrServicePanic, svc.Name(), rec)
		}
	}()

	if err := svc.Start(ctx); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrServiceFailed, svc.Name(), err)
	}

	return nil
}

func (r *Runner) shutdown(services []Service) error {
	if len(services) == 0 {
		return nil
	}

	done := make(chan error, 1)

	go func() {
		done <- r.stopAll(services)
	}()

	select {
	case err := <-done:
		return err
	case <-time.After(r.shutdownTimeout):
		r.logger.Error().
			Dur("timeout", r.shutdownTimeout).
			Msg("Shutdown timeout exceeded, some services may not have stopped cleanly")

		return ErrShutdownTimeout
	}
}

func (r *Runner) stopAll(services []Service) error {
	var errs []error

	for _, svc := range slices.Backward(services) {
		r.logger.Info().Str("service_name", svc.Name()).Msg("Stopping service")

		if err := svc.Stop(); err != nil {
			r.logger.Error().Err(err).Str("service_name", svc.Name()).Msg("Service failed to stop")

			errs = append(errs, fmt.Errorf("%s: %w", svc.Name(), err))
		}
	}

	return errors.Join(errs...)
}
