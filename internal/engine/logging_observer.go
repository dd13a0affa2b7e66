package engine

import "log/slog"

// LoggingObserver is a simple observer that logs all events using structured logging
type LoggingObserver struct {
	logger *slog.Logger
}

// NewLoggingObserver creates a new logging observer
func NewLoggingObserver() *LoggingObserver {
	return &LoggingObserver{
		logger: slog.Default(),
	}
}

// NewLoggingObserverWith creates a logging observer bound to the given logger
func NewLoggingObserverWith(logger *slog.Logger) *LoggingObserver {
	return &LoggingObserver{logger: logger}
}

// OnEvent implements the Observer interface.
// Failed operations are logged at warn level, everything else at debug.
func (lo *LoggingObserver) OnEvent(event Event) {
	if event.Type == EventOperationFailed {
		lo.logger.Warn("store_operation",
			"event", event.Type,
			"op_id", event.OpID,
			"table", event.Table,
			"data", event.Data,
			"error", event.Err,
		)
		return
	}

	lo.logger.Debug("store_operation",
		"event", event.Type,
		"op_id", event.OpID,
		"table", event.Table,
		"timestamp", event.Timestamp,
		"data", event.Data,
	)
}
