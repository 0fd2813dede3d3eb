package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"go.opentelemetry.io/otel/trace"
)

// LoggingInterceptor logs every RPC with its procedure, caller, duration and
// outcome. Caller mistakes log at WARN, server failures at ERROR.
func LoggingInterceptor(logger *slog.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			attrs := []slog.Attr{
				slog.String("procedure", req.Spec().Procedure),
				slog.String("user_id", string(GetUserID(ctx))), // empty if pre-auth
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
			}
			if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
				attrs = append(attrs, slog.String("trace_id", sc.TraceID().String()))
			}

			if err == nil {
				logger.LogAttrs(ctx, slog.LevelInfo, "RPC ok", attrs...)
				return resp, nil
			}

			code := connect.CodeOf(err)
			attrs = append(attrs, slog.String("code", code.String()))
			var connectErr *connect.Error
			if errors.As(err, &connectErr) {
				attrs = append(attrs, slog.String("error", connectErr.Message()))
			} else {
				attrs = append(attrs, slog.Any("error", err))
			}

			level := slog.LevelWarn
			if serverFault(code) {
				level = slog.LevelError
			}
			logger.LogAttrs(ctx, level, "RPC error", attrs...)
			return resp, err
		}
	}
}

// RecoverInterceptor turns a handler panic into CodeInternal.
func RecoverInterceptor(logger *slog.Logger) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (resp connect.AnyResponse, err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.ErrorContext(ctx, "RPC panic", "procedure", req.Spec().Procedure, "panic", r)
					err = connect.NewError(connect.CodeInternal, fmt.Errorf("panic: %v", r))
				}
			}()
			return next(ctx, req)
		}
	}
}

func serverFault(code connect.Code) bool {
	switch code {
	case connect.CodeInternal, connect.CodeUnknown, connect.CodeDataLoss, connect.CodeUnavailable, connect.CodeUnimplemented:
		return true
	default:
		return false
	}
}
