package middleware

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.opentelemetry.io/otel/trace"
)

// Logger logs each request as one JSON line on stdout. Fields: ts,
// request_id, method, path, status and latency in milliseconds, plus
// trace_id when a span is recording.
func Logger() fiber.Handler {
	return LoggerWithWriter(os.Stdout, time.Local)
}

// LoggerWithWriter is Logger with the output and time zone under the
// caller's control.
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	enc := json.NewEncoder(w)

	return func(c *fiber.Ctx) error {
		start := time.Now()

		// The tracing middleware swaps the span out of the user context
		// before this handler regains control, so grab the ID up front.
		traceID := ""
		if sc := trace.SpanFromContext(c.UserContext()).SpanContext(); sc.HasTraceID() {
			traceID = sc.TraceID().String()
		}

		err := c.Next()

		rid, _ := c.Locals(RequestIDLocalKey).(string)

		// The app-level error handler runs after this middleware returns,
		// so map the status from the error itself.
		status := c.Response().StatusCode()
		if err != nil {
			if fiberErr, ok := err.(*fiber.Error); ok {
				status = fiberErr.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		line := map[string]any{
			"ts":         start.In(loc).Format(time.RFC3339Nano),
			"request_id": rid,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency":    float64(time.Since(start).Microseconds()) / 1000.0,
		}
		if traceID != "" {
			line["trace_id"] = traceID
		}
		_ = enc.Encode(line)

		return err
	}
}
