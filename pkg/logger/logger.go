package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/getsentry/sentry-go"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
)

// Init builds the process logger and makes it the slog default.
// Development: text format with Debug level.
// Production: JSON format with Info level.
// Errors are also forwarded to Sentry when sentryDSN is set.
func Init(isDev bool, sentryDSN string) *slog.Logger {
	l := New(os.Stdout, isDev, sentryDSN)
	slog.SetDefault(l)
	return l
}

func New(w io.Writer, isDev bool, sentryDSN string) *slog.Logger {
	var handlers []slog.Handler
	if isDev {
		handlers = append(handlers, slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	} else {
		handlers = append(handlers, slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	if sentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:              sentryDSN,
			TracesSampleRate: 1.0,
		})
		if err == nil {
			handlers = append(handlers, slogsentry.Option{
				Level: slog.LevelError,
			}.NewSentryHandler())
		} else {
			slog.New(handlers[0]).Warn("sentry disabled", slog.String("error", err.Error()))
		}
	}

	if len(handlers) == 1 {
		return slog.New(handlers[0])
	}
	return slog.New(slogmulti.Fanout(handlers...))
}
