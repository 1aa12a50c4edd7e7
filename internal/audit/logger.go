package audit

import (
	"context"

	"github.com/sirupsen/logrus"
)

type Event struct {
	ActorID  *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata map[string]any
}

// Logger writes one structured entry per successful write. Entries are
// emitted synchronously after commit and never fail the request.
type Logger struct {
	log logrus.FieldLogger
}

func New(log logrus.FieldLogger) *Logger {
	return &Logger{log: log}
}

type requestIDKey struct{}

// WithRequestID attaches the request id so audit entries can be correlated
// with access logs.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

func (l *Logger) Log(ctx context.Context, ev Event) {
	if l == nil {
		return
	}

	fields := logrus.Fields{
		"audit":  true,
		"action": ev.Action,
		"entity": ev.Entity,
	}
	if ev.ActorID != nil {
		fields["actor_id"] = *ev.ActorID
	}
	if ev.EntityID != nil {
		fields["entity_id"] = *ev.EntityID
	}
	if id := RequestID(ctx); id != "" {
		fields["request_id"] = id
	}
	for k, v := range ev.Metadata {
		fields[k] = v
	}

	l.log.WithFields(fields).Info(ev.Action)
}
