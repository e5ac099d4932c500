package core

import (
	"fmt"
	"time"

	"github.com/JonMunkholm/resourcehub/internal/csv"
)

// Status is the load state of the dataset.
//
//	loading -> success
//	loading -> error
//
// success and error are terminal until a reload puts the service back into
// loading.
type Status int

const (
	StatusLoading Status = iota
	StatusSuccess
	StatusError
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Snapshot is one published load result. Snapshots are immutable; a reload
// publishes a new one.
type Snapshot struct {
	Status   Status
	Records  []csv.Record
	Facets   FacetOptions
	LoadID   string
	LoadedAt time.Time
	Duration time.Duration
	Bytes    int64
	Skipped  int
	Filled   int
	Missing  []string // expected columns absent from the header
	Err      error
}

// Total is the number of records in the dataset.
func (s *Snapshot) Total() int {
	return len(s.Records)
}

// LoadReport summarises one finished load for observers.
type LoadReport struct {
	LoadID   string
	Status   Status
	Records  int
	Skipped  int
	Filled   int
	Bytes    int64
	Duration time.Duration
	Err      error
}

// LoadObserver is notified after every finished load.
type LoadObserver interface {
	ObserveLoad(LoadReport)
}

// View is the derived state for one query/selection pair.
type View struct {
	Status    Status
	LoadID    string
	Query     string
	Selection Selection
	Facets    []Facet
	Visible   []csv.Record
	Total     int
}

// Cards projects the visible records for display.
func (v View) Cards() []Card {
	return CardsFor(v.Visible)
}
