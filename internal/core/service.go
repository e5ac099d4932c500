package core

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/JonMunkholm/resourcehub/internal/csv"
	"github.com/JonMunkholm/resourcehub/internal/logging"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// DefaultLoadTimeout bounds one fetch+decode when Options.LoadTimeout is 0.
const DefaultLoadTimeout = 30 * time.Second

// ErrNotLoaded is returned by callers that need a dataset before the first
// load has succeeded.
var ErrNotLoaded = errors.New("dataset not loaded yet")

// Source fetches the raw CSV export.
type Source interface {
	Fetch(ctx context.Context) ([]byte, error)
}

// Invalidator is implemented by sources that cache bodies.
type Invalidator interface {
	Invalidate()
}

// Options configures a Service.
type Options struct {
	Decode      csv.DecodeOptions
	LoadTimeout time.Duration
	Observer    LoadObserver
}

// Flight keys. Resetting loads and background refreshes never share a
// flight, so a user reload cannot be answered by a refresh's result.
const (
	flightReset   = "reset"
	flightRefresh = "refresh"
)

// Service owns the dataset and its load status. Readers take the current
// Snapshot; loads publish a replacement. Concurrent loads of the same kind
// share one fetch, and loads of different kinds run one after the other.
type Service struct {
	source Source
	opts   Options

	current atomic.Pointer[Snapshot]
	flight  singleflight.Group
	loadMu  sync.Mutex
}

// NewService creates a Service in the loading state. Nothing is fetched
// until Load or Refresh is called.
func NewService(source Source, opts Options) *Service {
	if opts.LoadTimeout <= 0 {
		opts.LoadTimeout = DefaultLoadTimeout
	}
	s := &Service{source: source, opts: opts}
	s.current.Store(&Snapshot{Status: StatusLoading, Facets: DeriveFacets(nil, FacetFields)})
	return s
}

// Snapshot returns the current published snapshot. Never nil.
func (s *Service) Snapshot() *Snapshot {
	return s.current.Load()
}

// Status is shorthand for Snapshot().Status.
func (s *Service) Status() Status {
	return s.Snapshot().Status
}

// Load resets the service to loading, fetches and decodes the source, and
// publishes the result. The returned error is the fetch failure, if any.
func (s *Service) Load(ctx context.Context) (*Snapshot, error) {
	return s.do(ctx, true, false)
}

// Reload drops any cached body before loading.
func (s *Service) Reload(ctx context.Context) (*Snapshot, error) {
	return s.do(ctx, true, true)
}

// Refresh re-fetches in the background, bypassing the body cache: the
// current snapshot stays visible until the new one is ready, and a failed
// refresh after a successful load keeps the old dataset.
func (s *Service) Refresh(ctx context.Context) (*Snapshot, error) {
	return s.do(ctx, false, true)
}

func (s *Service) do(ctx context.Context, reset, invalidate bool) (*Snapshot, error) {
	key := flightRefresh
	if reset {
		key = flightReset
	}
	ch := s.flight.DoChan(key, func() (any, error) {
		s.loadMu.Lock()
		defer s.loadMu.Unlock()

		if invalidate {
			if inv, ok := s.source.(Invalidator); ok {
				inv.Invalidate()
			}
		}
		// The flight outlives any single caller.
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.opts.LoadTimeout)
		defer cancel()
		return s.load(loadCtx, reset)
	})

	select {
	case res := <-ch:
		snap, _ := res.Val.(*Snapshot)
		return snap, res.Err
	case <-ctx.Done():
		return s.Snapshot(), ctx.Err()
	}
}

func (s *Service) load(ctx context.Context, reset bool) (*Snapshot, error) {
	loadID := uuid.New().String()
	ctx = logging.ContextWithLoadID(ctx, loadID)
	logger := logging.FromContext(ctx)

	prev := s.Snapshot()
	if reset {
		s.current.Store(&Snapshot{Status: StatusLoading, LoadID: loadID, Facets: DeriveFacets(nil, FacetFields)})
	}

	start := time.Now()
	logger.Info("dataset load started", "reset", reset)

	snap, err := s.fetchAndDecode(ctx, loadID)
	snap.Duration = time.Since(start)

	if err != nil {
		logger.Error("dataset load failed",
			"error", err,
			"duration_ms", snap.Duration.Milliseconds(),
		)
		if !reset && prev.Status == StatusSuccess {
			logger.Warn("keeping previous dataset after failed refresh", "previous_load_id", prev.LoadID)
			s.observe(snap)
			return prev, err
		}
	} else {
		if len(snap.Missing) > 0 && snap.Total() > 0 {
			logger.Warn("dataset is missing expected columns", "columns", snap.Missing)
		}
		if snap.Skipped > 0 || snap.Filled > 0 {
			logger.Warn("dataset decoded with short rows",
				"skipped", snap.Skipped,
				"filled", snap.Filled,
				"policy", s.opts.Decode.ShortRows.String(),
			)
		}
		logger.Info("dataset load completed",
			"snapshot", snap,
			"bytes", snap.Bytes,
			"duration_ms", snap.Duration.Milliseconds(),
		)
	}

	s.current.Store(snap)
	s.observe(snap)
	return snap, err
}

func (s *Service) fetchAndDecode(ctx context.Context, loadID string) (*Snapshot, error) {
	body, err := s.source.Fetch(ctx)
	if err != nil {
		err = fmt.Errorf("fetch resources: %w", err)
		return &Snapshot{
			Status: StatusError,
			LoadID: loadID,
			Facets: DeriveFacets(nil, FacetFields),
			Err:    err,
		}, err
	}

	res, err := csv.DecodeReader(bytes.NewReader(body), s.opts.Decode)
	if err != nil {
		err = fmt.Errorf("decode resources: %w", err)
		return &Snapshot{
			Status: StatusError,
			LoadID: loadID,
			Facets: DeriveFacets(nil, FacetFields),
			Err:    err,
		}, err
	}

	return &Snapshot{
		Status:   StatusSuccess,
		Records:  res.Records,
		Facets:   DeriveFacets(res.Records, FacetFields),
		LoadID:   loadID,
		LoadedAt: time.Now(),
		Bytes:    res.Bytes,
		Skipped:  res.Skipped,
		Filled:   res.Filled,
		Missing:  MissingColumns(res.Headers),
	}, nil
}

func (s *Service) observe(snap *Snapshot) {
	if s.opts.Observer == nil {
		return
	}
	s.opts.Observer.ObserveLoad(LoadReport{
		LoadID:   snap.LoadID,
		Status:   snap.Status,
		Records:  snap.Total(),
		Skipped:  snap.Skipped,
		Filled:   snap.Filled,
		Bytes:    snap.Bytes,
		Duration: snap.Duration,
		Err:      snap.Err,
	})
}

// Search derives the view for query and sel from the current snapshot.
// Outside the success state the view carries no records.
func (s *Service) Search(query string, sel Selection) View {
	snap := s.Snapshot()
	if sel == nil {
		sel = Selection{}
	}
	v := View{
		Status:    snap.Status,
		LoadID:    snap.LoadID,
		Query:     query,
		Selection: sel,
		Facets:    snap.Facets.Ordered(FacetFields),
		Total:     snap.Total(),
	}
	if snap.Status == StatusSuccess {
		v.Visible = Filter(snap.Records, query, sel)
	}
	return v
}

// Facets returns the facet options of the current snapshot, in display
// order. It fails with ErrNotLoaded until a load has succeeded.
func (s *Service) Facets() ([]Facet, error) {
	snap := s.Snapshot()
	if snap.Status != StatusSuccess {
		if snap.Err != nil {
			return nil, snap.Err
		}
		return nil, ErrNotLoaded
	}
	return snap.Facets.Ordered(FacetFields), nil
}

// LogValue implements slog.LogValuer.
func (s *Snapshot) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("status", s.Status.String()),
		slog.String("load_id", s.LoadID),
		slog.Int("records", s.Total()),
	)
}
