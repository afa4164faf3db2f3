// Package events publishes domain events so that other systems can react to what happens on the blog.
package events

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
	"github.com/sidereusnuntius/goblog/internal/domain"
)

//go:generate mockgen -destination=../mocks/mock_events.go -package=mocks . Publisher

const (
	UserRegistered = "user.registered"
	PostCreated    = "post.created"
	PostDeleted    = "post.deleted"
	CommentCreated = "comment.created"
	AccountDeleted = "account.deleted"
)

type Event struct {
	Type string `json:"type"`
	// UserID is the user who caused the event.
	UserID domain.ID `json:"user_id"`
	// ResourceID identifies the post or comment concerned, if any.
	ResourceID domain.ID `json:"resource_id,omitempty"`
	Time       time.Time `json:"time"`
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// Writer is the part of kafka.Writer used by the publisher.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	writer Writer
}

// New returns a publisher writing to topic on brokers. With no brokers, events are dropped.
func New(brokers []string, topic string) Publisher {
	if len(brokers) == 0 {
		log.Info().Msg("no kafka brokers configured; domain events will not be published")
		return Nop{}
	}

	return NewWithWriter(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
		WriteTimeout: 5 * time.Second,
	})
}

func NewWithWriter(w Writer) Publisher {
	return &kafkaPublisher{writer: w}
}

// Publish writes the event as JSON, keyed by user so that the events of a user keep their order.
func (p *kafkaPublisher) Publish(ctx context.Context, event Event) error {
	if event.Time.IsZero() {
		event.Time = time.Now()
	}

	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(int64(event.UserID), 10)),
		Value: value,
		Time:  event.Time,
	})
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }

func (Nop) Close() error { return nil }
