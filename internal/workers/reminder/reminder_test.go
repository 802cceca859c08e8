package reminder

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/counterparty_portal/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSweeper struct {
	calls atomic.Int32
	err   error
}

func (f *fakeSweeper) Sweep(context.Context) (*domain.ReminderReport, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return &domain.ReminderReport{
		DocumentsScanned: 2,
		Sent:             map[domain.NotificationKind]int{domain.NotifyDocumentExpiring: 1},
	}, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNew_RequiresSweeper(t *testing.T) {
	_, err := New(nil)
	require.Error(t, err)
}

func TestRunOnce(t *testing.T) {
	sweeper := &fakeSweeper{}
	w, err := New(sweeper, WithLogger(quietLogger()))
	require.NoError(t, err)

	report, err := w.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.Total())
	assert.EqualValues(t, 1, sweeper.calls.Load())
}

func TestRunOnce_WrapsError(t *testing.T) {
	boom := errors.New("db down")
	w, err := New(&fakeSweeper{err: boom}, WithLogger(quietLogger()))
	require.NoError(t, err)

	_, err = w.RunOnce(context.Background())

	assert.ErrorIs(t, err, boom)
}

func TestStart_SweepsUntilCancelled(t *testing.T) {
	sweeper := &fakeSweeper{}
	w, err := New(sweeper, WithInterval(5*time.Millisecond), WithLogger(quietLogger()))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	require.Eventually(t, func() bool { return sweeper.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestWithInterval_IgnoresNonPositive(t *testing.T) {
	w, err := New(&fakeSweeper{}, WithInterval(0))
	require.NoError(t, err)

	assert.Equal(t, defaultInterval, w.interval)
}
