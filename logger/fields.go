package logger

import (
	"context"

	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across paw.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Workflow identities
	FieldMachineARN   = "machine_arn"
	FieldMachineName  = "machine_name"
	FieldExecutionARN = "execution_arn"
	FieldExecution    = "execution"
	FieldBatchID      = "batch_id"

	// Operations
	FieldAction    = "action"
	FieldOperation = "operation"
	FieldErrorCode = "error_code"
	FieldError     = "error"

	// Counts and positions
	FieldCount    = "count"
	FieldPage     = "page"
	FieldPosition = "position"
	FieldTotal    = "total"

	// Time window
	FieldWindowStart = "window_start"
	FieldWindowEnd   = "window_end"

	FieldDurationMS = "duration_ms"
)

type contextKey string

const batchIDKey contextKey = "logger_batch_id"

// WithBatchID adds a retry batch ID to the context for logging
func WithBatchID(ctx context.Context, batchID string) context.Context {
	return context.WithValue(ctx, batchIDKey, batchID)
}

// FieldsFromContext extracts logging fields from context.
// Returns key-value pairs suitable for use with Infow/Errorw/etc.
func FieldsFromContext(ctx context.Context) []interface{} {
	var fields []interface{}
	if batchID, ok := ctx.Value(batchIDKey).(string); ok && batchID != "" {
		fields = append(fields, FieldBatchID, batchID)
	}
	return fields
}

// LoggerFromContext returns a logger carrying the fields stored in ctx.
func LoggerFromContext(ctx context.Context, base *zap.SugaredLogger) *zap.SugaredLogger {
	if base == nil {
		base = Logger
	}
	fields := FieldsFromContext(ctx)
	if len(fields) == 0 {
		return base
	}
	return base.With(fields...)
}

// ComponentLogger returns a named logger for a specific component.
// This is the preferred way to get a logger for dependency injection.
//
// Example:
//
//	type Client struct {
//	    logger *zap.SugaredLogger
//	}
//
//	func NewClient() *Client {
//	    return &Client{logger: logger.ComponentLogger("sfn")}
//	}
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}
