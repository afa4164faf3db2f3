package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/segmentio/kafka-go"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublish(t *testing.T) {
	w := &fakeWriter{}
	p := NewWithWriter(w)

	event := Event{
		Type:       PostCreated,
		UserID:     7,
		ResourceID: 12,
		Time:       time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	if err := p.Publish(context.Background(), event); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if len(w.messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(w.messages))
	}
	msg := w.messages[0]
	if string(msg.Key) != "7" {
		t.Errorf("expected key 7, got %q", msg.Key)
	}

	var got Event
	if err := json.Unmarshal(msg.Value, &got); err != nil {
		t.Fatalf("invalid payload: %s", err)
	}
	if diff := cmp.Diff(event, got); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}

	if err := p.Close(); err != nil || !w.closed {
		t.Error("writer was not closed")
	}
}

func TestPublishSetsTime(t *testing.T) {
	w := &fakeWriter{}
	p := NewWithWriter(w)

	if err := p.Publish(context.Background(), Event{Type: UserRegistered, UserID: 1}); err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if w.messages[0].Time.IsZero() {
		t.Error("event time was not set")
	}
}

func TestPublishError(t *testing.T) {
	want := errors.New("broker down")
	p := NewWithWriter(&fakeWriter{err: want})

	if err := p.Publish(context.Background(), Event{Type: AccountDeleted, UserID: 1}); !errors.Is(err, want) {
		t.Errorf("expected %v, got %v", want, err)
	}
}

func TestNewWithoutBrokers(t *testing.T) {
	p := New(nil, "blog-events")
	if _, ok := p.(Nop); !ok {
		t.Errorf("expected a Nop publisher, got %T", p)
	}
	if err := p.Publish(context.Background(), Event{}); err != nil {
		t.Errorf("unexpected error: %s", err)
	}
}
