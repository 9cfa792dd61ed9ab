package telemetry

import (
	"errors"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelgorm"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DBTracingConfig holds GORM tracing options
type DBTracingConfig struct {
	Enabled         bool
	LogFullSQL      bool // include bound values in db.statement
	SlowQueryThresh time.Duration
	DBName          string
	TracerProvider  trace.TracerProvider // nil uses the global provider
}

// RegisterDBTracing installs the otelgorm plugin plus callbacks that tag
// slow and failed statements on the otelgorm span before it ends.
func RegisterDBTracing(db *gorm.DB, cfg DBTracingConfig, logger *zap.Logger) error {
	if !cfg.Enabled {
		return nil
	}

	opts := []otelgorm.Option{otelgorm.WithDBName(cfg.DBName)}
	if !cfg.LogFullSQL {
		opts = append(opts, otelgorm.WithoutQueryVariables())
	}
	if cfg.TracerProvider != nil {
		opts = append(opts, otelgorm.WithTracerProvider(cfg.TracerProvider))
	}
	if err := db.Use(otelgorm.NewPlugin(opts...)); err != nil {
		return err
	}

	thresh := cfg.SlowQueryThresh
	if thresh <= 0 {
		thresh = 200 * time.Millisecond
	}
	annotate := func(tx *gorm.DB) { annotateStatementSpan(tx, thresh) }

	cb := db.Callback()
	registrations := []error{
		cb.Create().Before("gorm:create").Register("retailbill:start_create", markStart),
		cb.Query().Before("gorm:query").Register("retailbill:start_query", markStart),
		cb.Update().Before("gorm:update").Register("retailbill:start_update", markStart),
		cb.Delete().Before("gorm:delete").Register("retailbill:start_delete", markStart),
		cb.Row().Before("gorm:row").Register("retailbill:start_row", markStart),
		cb.Raw().Before("gorm:raw").Register("retailbill:start_raw", markStart),
		cb.Create().After("gorm:create").Before("otel:after:create").Register("retailbill:annotate_create", annotate),
		cb.Query().After("gorm:query").Before("otel:after:select").Register("retailbill:annotate_query", annotate),
		cb.Update().After("gorm:update").Before("otel:after:update").Register("retailbill:annotate_update", annotate),
		cb.Delete().After("gorm:delete").Before("otel:after:delete").Register("retailbill:annotate_delete", annotate),
		cb.Row().After("gorm:row").Before("otel:after:row").Register("retailbill:annotate_row", annotate),
		cb.Raw().After("gorm:raw").Before("otel:after:raw").Register("retailbill:annotate_raw", annotate),
	}
	if err := errors.Join(registrations...); err != nil {
		return err
	}

	logger.Info("Database tracing enabled",
		zap.Bool("log_full_sql", cfg.LogFullSQL),
		zap.Duration("slow_query_threshold", thresh),
	)
	return nil
}

const statementStartKey = "retailbill:statement_start"

func markStart(tx *gorm.DB) {
	tx.InstanceSet(statementStartKey, time.Now())
}

func annotateStatementSpan(tx *gorm.DB, thresh time.Duration) {
	ctx := tx.Statement.Context
	if ctx == nil {
		return
	}
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	if tx.Statement.Table != "" {
		span.SetAttributes(attribute.String("db.sql.table", tx.Statement.Table))
	}
	span.SetAttributes(attribute.Int64("db.rows_affected", tx.Statement.RowsAffected))

	if tx.Error != nil && !errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		span.RecordError(tx.Error)
		span.SetStatus(codes.Error, tx.Error.Error())
	}

	v, ok := tx.InstanceGet(statementStartKey)
	if !ok {
		return
	}
	if start, ok := v.(time.Time); ok {
		if elapsed := time.Since(start); elapsed > thresh {
			span.SetAttributes(
				attribute.Bool("db.slow_query", true),
				attribute.Int64("db.query_duration_ms", elapsed.Milliseconds()),
			)
		}
	}
}
