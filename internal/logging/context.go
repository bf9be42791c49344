package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// FromContext returns the logger carried by ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

func withField(ctx context.Context, attach func(zerolog.Context) zerolog.Context) context.Context {
	return WithContext(ctx, attach(FromContext(ctx).With()).Logger())
}

// WithComponent tags every entry logged through ctx with component.
func WithComponent(ctx context.Context, component string) context.Context {
	return withField(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str("component", component)
	})
}

// WithUserID scopes ctx to one signed-in user.
func WithUserID(ctx context.Context, userID string) context.Context {
	return withField(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Str("user_id", userID)
	})
}

// WithTabID scopes ctx to one tab.
func WithTabID(ctx context.Context, tabID int) context.Context {
	return withField(ctx, func(c zerolog.Context) zerolog.Context {
		return c.Int("tab_id", tabID)
	})
}
