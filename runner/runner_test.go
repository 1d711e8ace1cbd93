package runner_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/andyle182810/apicheck/runner"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

var (
	errStart = errors.New("start error")
	errStop  = errors.New("stop error")
)

// journal records start/stop order across services.
type journal struct {
	mu      sync.Mutex
	entries []string
}

func (j *journal) add(entry string) {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.entries = append(j.entries, entry)
}

func (j *journal) list() []string {
	j.mu.Lock()
	defer j.mu.Unlock()

	return append([]string(nil), j.entries...)
}

type mockService struct {
	name         string
	journal      *journal
	startErr     error
	stopErr      error
	stopDelay    time.Duration
	panicOnStart bool
	stopped      atomic.Bool
}

func newMockService(name string, j *journal) *mockService {
	return &mockService{
		name:         name,
		journal:      j,
		startErr:     nil,
		stopErr:      nil,
		stopDelay:    0,
		panicOnStart: false,
		stopped:      atomic.Bool{},
	}
}

func (m *mockService) Start(_ context.Context) error {
	if m.panicOnStart {
		panic("mock panic on start")
	}

	if m.startErr != nil {
		return m.startErr
	}

	m.journal.add("start " + m.name)

	return nil
}

func (m *mockService) Stop() error {
	if m.stopDelay > 0 {
		time.Sleep(m.stopDelay)
	}

	m.journal.add("stop " + m.name)
	m.stopped.Store(true)

	return m.stopErr
}

func (m *mockService) Name() string {
	return m.name
}

func newRunner(opts ...runner.Option) *runner.Runner {
	base := []runner.Option{runner.WithSignals(), runner.WithLogger(zerolog.Nop())}

	return runner.New(append(base, opts...)...)
}

func TestRun_StartsInOrderAndStopsInReverse(t *testing.T) {
	t.Parallel()

	j := &journal{} //nolint:exhaustruct
	first := newMockService("first", j)
	second := newMockService("second", j)

	ctx, cancel := context.WithCancel(t.Context())
	r := newRunner(runner.WithService(first), runner.WithService(second))

	done := make(chan error, 1)

	go func() { done <- r.Run(ctx) }()

	require.Eventually(t, func() bool { return len(j.list()) == 2 }, time.Second, 5*time.Millisecond)
	cancel()

	require.NoError(t, <-done)
	require.Equal(t, []string{"start first", "start second", "stop second", "stop first"}, j.list())
}

func TestRun_StartFailureStopsStartedServices(t *testing.T) {
	t.Parallel()

	j := &journal{} //nolint:exhaustruct
	ok := newMockService("ok", j)
	broken := newMockService("broken", j)
	broken.startErr = errStart
	never := newMockService("never", j)

	err := newRunner(
		runner.WithService(ok),
		runner.WithService(broken),
		runner.WithService(never),
	).Run(t.Context())

	require.ErrorIs(t, err, runner.ErrServiceFailed)
	require.ErrorIs(t, err, errStart)
	require.True(t, ok.stopped.Load())
	require.False(t, never.stopped.Load())
	require.Equal(t, []string{"start ok", "stop ok"}, j.list())
}

func TestRun_PanicIsReported(t *testing.T) {
	t.Parallel()

	svc := newMockService("panicky", &journal{}) //nolint:exhaustruct
	svc.panicOnStart = true

	err := newRunner(runner.WithService(svc)).Run(t.Context())

	require.ErrorIs(t, err, runner.ErrServicePanic)
}

func TestRun_StopErrorsAreReturned(t *testing.T) {
	t.Parallel()

	svc := newMockService("leaky", &journal{}) //nolint:exhaustruct
	svc.stopErr = errStop

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := newRunner(runner.WithService(svc)).Run(ctx)

	require.ErrorIs(t, err, errStop)
}

func TestRun_ShutdownTimeout(t *testing.T) {
	t.Parallel()

	svc := newMockService("slow", &journal{}) //nolint:exhaustruct
	svc.stopDelay = 200 * time.Millisecond

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := newRunner(
		runner.WithService(svc),
		runner.WithShutdownTimeout(20*time.Millisecond),
	).Run(ctx)

	require.ErrorIs(t, err, runner.ErrShutdownTimeout)
}

func TestRun_NoServices(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	require.NoError(t, newRunner().Run(ctx))
}
