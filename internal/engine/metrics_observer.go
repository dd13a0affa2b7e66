package engine

import (
	"fmt"
	"io"

	"github.com/VictoriaMetrics/metrics"

	"github.com/leengari/plantdb/internal/domain/errors"
)

// MetricsObserver counts store events in a private metrics set
type MetricsObserver struct {
	set *metrics.Set
}

// NewMetricsObserver creates an observer with an empty metrics set
func NewMetricsObserver() *MetricsObserver {
	return &MetricsObserver{set: metrics.NewSet()}
}

// OnEvent implements the Observer interface
func (mo *MetricsObserver) OnEvent(event Event) {
	switch event.Type {
	case EventTableCreated, EventTableRecreated:
		mo.set.GetOrCreateCounter(fmt.Sprintf(`plantdb_tables_created_total{table=%q}`, event.Table)).Inc()
	case EventRecordInserted:
		mo.set.GetOrCreateCounter(fmt.Sprintf(`plantdb_records_inserted_total{table=%q}`, event.Table)).Inc()
	case EventTableDisplayed:
		mo.set.GetOrCreateCounter(fmt.Sprintf(`plantdb_tables_displayed_total{table=%q}`, event.Table)).Inc()
	case EventOperationFailed:
		mo.set.GetOrCreateCounter(fmt.Sprintf(`plantdb_operations_failed_total{kind=%q}`, errors.KindOf(event.Err))).Inc()
	}
}

// Count returns the current value of the named counter, or 0 if it was never incremented
func (mo *MetricsObserver) Count(name string) uint64 {
	return mo.set.GetOrCreateCounter(name).Get()
}

// WritePrometheus writes all counters in Prometheus text format
func (mo *MetricsObserver) WritePrometheus(w io.Writer) {
	mo.set.WritePrometheus(w)
}
