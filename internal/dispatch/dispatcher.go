// Package dispatch runs a single asynchronous server call with in-flight
// accounting and routes its outcome to success or error handlers.
package dispatch

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-sub-keeper/internal/app"
	"github.com/MKhiriev/go-sub-keeper/internal/logger"
)

// Outcome classifies a finished call.
type Outcome int

const (
	Success Outcome = iota
	Conflict
	Internal
	NoResponse
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case Conflict:
		return "conflict"
	case NoResponse:
		return "no-response"
	default:
		return "internal"
	}
}

// Tracker is the in-flight accounting a call reports to.
type Tracker interface {
	Increment()
	Decrement()
}

// Call performs one request and returns its typed payload.
type Call[T any] func(ctx context.Context) (T, error)

// ErrorHandler receives the HTTP status (or [app.NoHTTPCode]) and a
// human-readable message.
type ErrorHandler func(code int, message string)

// Request describes one dispatched call.
type Request[T any] struct {
	// Method names the call in logs.
	Method string
	Call   Call[T]
	// OnSuccess is invoked with the payload of a 2xx response. Optional.
	OnSuccess func(T)
	// OnError overrides the default handler, which only logs.
	OnError ErrorHandler
}

// Go increments tracker, runs req.Call on its own goroutine and decrements
// tracker exactly once when the call returns, before any handler runs. The
// returned channel is closed after the handler has finished.
func Go[T any](ctx context.Context, tracker Tracker, log *logger.Logger, req Request[T]) <-chan struct{} {
	done := make(chan struct{})
	tracker.Increment()

	go func() {
		defer close(done)

		payload, err := req.Call(ctx)
		tracker.Decrement()

		if err == nil {
			log.Debug().Str("method", req.Method).Msg("request succeeded")
			if req.OnSuccess != nil {
				req.OnSuccess(payload)
			}
			return
		}

		code, message := Classify(err)
		onError := req.OnError
		if onError == nil {
			onError = LogError(log, req.Method)
		}
		onError(code, message)
	}()

	return done
}

// Classify extracts the status code and message from a failed call. A
// response outside the 2xx range is reported with its status; anything else
// never produced a response and is reported with [app.NoHTTPCode].
func Classify(err error) (code int, message string) {
	var statusErr *app.StatusError
	if errors.As(err, &statusErr) {
		message = strings.TrimSpace(statusErr.Message)
		if message == "" {
			message = app.MsgNoErrorBody
		}
		return statusErr.StatusCode, message
	}

	message = err.Error()
	if message == "" {
		message = app.MsgNoResponse
	}
	return app.NoHTTPCode, message
}

// OutcomeOf maps a status handed to an ErrorHandler to its outcome class.
func OutcomeOf(code int) Outcome {
	switch {
	case code == app.NoHTTPCode:
		return NoResponse
	case code >= http.StatusOK && code < http.StatusMultipleChoices:
		return Success
	case code == http.StatusConflict:
		return Conflict
	default:
		return Internal
	}
}

// LogError is the default ErrorHandler.
func LogError(log *logger.Logger, method string) ErrorHandler {
	return func(code int, message string) {
		log.Error().
			Str("method", method).
			Int("code", code).
			Str("outcome", OutcomeOf(code).String()).
			Msgf("%s failed (Error code: %d): %s", method, code, message)
	}
}
