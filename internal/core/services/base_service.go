package services

import (
	"context"
	"log/slog"

	"github.com/jumuiya-app/jumuiya_backend/internal/apperrors"
	"github.com/jumuiya-app/jumuiya_backend/internal/core/domain"
	portssvc "github.com/jumuiya-app/jumuiya_backend/internal/core/ports/services"
	"github.com/jumuiya-app/jumuiya_backend/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Privilege portssvc.PrivilegeSvcFacade
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

// AuthorizeUser checks that the user holds the privilege. A missing privilege
// gate denies: authorization never defaults open.
func (s *BaseService) AuthorizeUser(ctx context.Context, userID string, privilege domain.Privilege) error {
	if s.Privilege == nil {
		s.LogError(ctx, apperrors.ErrForbidden, "no privilege gate configured, denying",
			slog.String("user_id", userID),
			slog.String("privilege", string(privilege)))
		return apperrors.ErrForbidden
	}
	return s.Privilege.Authorize(ctx, userID, privilege)
}
