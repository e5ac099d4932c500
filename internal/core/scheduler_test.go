package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshScheduler_Disabled(t *testing.T) {
	src := &stubSource{bodies: []string{hubCSV}}
	svc := NewService(src, Options{})

	done := make(chan struct{})
	go func() {
		svc.StartRefreshScheduler(context.Background(), 0)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler with zero interval should return after the initial load")
	}
	assert.Equal(t, int32(1), src.calls.Load())
	assert.Equal(t, StatusSuccess, svc.Status())
}

func TestRefreshScheduler_RefreshesUntilCancelled(t *testing.T) {
	src := &stubSource{bodies: []string{hubCSV}}
	svc := NewService(src, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.StartRefreshScheduler(ctx, 10*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return src.calls.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop after cancel")
	}
	assert.Equal(t, StatusSuccess, svc.Status())
}

func TestRefreshScheduler_InitialFailureThenRecovery(t *testing.T) {
	src := &stubSource{
		bodies: []string{"", hubCSV},
		errs:   []error{errors.New("no such host"), nil},
	}
	svc := NewService(src, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.StartRefreshScheduler(ctx, 10*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return svc.Status() == StatusSuccess }, 2*time.Second, 5*time.Millisecond)
	cancel()
	<-done
}
