package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/SscSPs/backoffice_app/internal/platform/cache"
)

// BaseService provides common functionality for all services
type BaseService struct {
	reportCache cache.ReportCache
	now         func() time.Time
}

func newBaseService(reportCache cache.ReportCache) BaseService {
	if reportCache == nil {
		reportCache = cache.NewNoopCache()
	}
	return BaseService{reportCache: reportCache, now: time.Now}
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// Now returns the current time in UTC.
func (s *BaseService) Now() time.Time {
	if s.now == nil {
		return time.Now().UTC()
	}
	return s.now().UTC()
}

// InvalidateReports drops cached reports after a write. Failures are logged, never returned:
// the write itself already succeeded.
func (s *BaseService) InvalidateReports(ctx context.Context) {
	if s.reportCache == nil {
		return
	}
	if err := s.reportCache.Invalidate(ctx); err != nil {
		s.LogError(ctx, err, "Failed to invalidate report cache")
	}
}
