package chat

import (
	"context"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/campusmate/chatbot-go/internal/errors"
	"github.com/campusmate/chatbot-go/internal/logger"
	"github.com/campusmate/chatbot-go/internal/metrics"
	"github.com/campusmate/chatbot-go/internal/reply"
	"github.com/campusmate/chatbot-go/internal/sentry"
)

// errorReply is returned from the panic boundary. The engine never lets a
// rule take down the request.
const errorReply = "Sorry, something went wrong while processing your message. Please try again."

// Engine runs the classify-and-respond pass: normalize the message, walk
// the rule table, and wrap the winning rule's reply in an envelope.
type Engine struct {
	registry *Registry
	log      *logger.Logger
	metrics  *metrics.Metrics
	rand     reply.RandSource
	clock    func() time.Time
	location *time.Location
}

// EngineOptions configures an Engine. Zero values are usable: a nil Rand
// disables name personalization, a nil Clock means time.Now, and a nil
// Location means time.Local.
type EngineOptions struct {
	Logger   *logger.Logger
	Metrics  *metrics.Metrics
	Rand     reply.RandSource
	Clock    func() time.Time
	Location *time.Location
}

// NewEngine creates an engine over an ordered rule registry.
func NewEngine(registry *Registry, opts EngineOptions) *Engine {
	e := &Engine{
		registry: registry,
		log:      opts.Logger,
		metrics:  opts.Metrics,
		rand:     opts.Rand,
		clock:    opts.Clock,
		location: opts.Location,
	}
	if e.log == nil {
		e.log = logger.New("info")
	}
	if e.clock == nil {
		e.clock = time.Now
	}
	if e.location == nil {
		e.location = time.Local
	}
	return e
}

// ClassifyAndRespond runs one full pass over the bundle. The reference
// instant is captured once at entry; every date computation downstream
// sees the same moment. A panicking rule is converted into an ERROR
// response instead of propagating.
func (e *Engine) ClassifyAndRespond(ctx context.Context, bundle *RequestBundle) (resp Response) {
	now := e.clock().In(e.location)
	name := bundle.FirstName()

	resp = Response{
		Metadata: Metadata{
			UserName:      name,
			Timestamp:     now,
			DataAvailable: availabilityFor(bundle),
		},
	}

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("chat rule panic: %v", r)
			e.log.WithModule("engine").WithError(err).ErrorContext(ctx, "recovered from rule panic")
			sentry.CaptureExceptionWithContext(ctx, err)
			resp.Intent = IntentError
			resp.Reply = errorReply
		}
	}()

	req := &Request{
		Bundle:  bundle,
		Message: strings.ToLower(strings.TrimSpace(bundle.Message)),
		Name:    name,
		Now:     now,
		Persona: reply.NewPersonalizer(e.rand),
	}

	intent, text, ok := e.registry.Dispatch(req)
	if !ok {
		// Unreachable with the guidance fallback registered, but a
		// misconfigured table should degrade, not crash.
		e.log.WithModule("engine").WithError(apperrors.ErrUnknownIntent).
			WarnContext(ctx, "no rule matched", "message_length", len(req.Message))
		resp.Intent = IntentError
		resp.Reply = errorReply
		return resp
	}

	if e.metrics != nil {
		e.metrics.RecordIntentMatch(intent.String())
	}
	e.log.WithModule("engine").DebugContext(ctx, "message classified",
		"intent", intent.String(), "message_length", len(req.Message))

	resp.Intent = intent
	resp.Reply = text
	return resp
}
