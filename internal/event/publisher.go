package event

import (
	"encoding/json"
	"log"
	"time"

	"github.com/streadway/amqp"
)

// Domain event routing keys published by the course service.
const (
	CourseCreated       = "course.created"
	CourseDeleted       = "course.deleted"
	SectionCreated      = "course.section.created"
	VideoCreated        = "course.video.created"
	DeadlineCreated     = "course.deadline.created"
	AssignmentCreated   = "course.assignment.created"
	AssignmentSubmitted = "course.assignment.submitted"
	ProgressUpdated     = "course.video.progress_updated"
	UserEnrolled        = "course.enrollment.created"
)

type EventPublisher struct {
	conn     *amqp.Connection
	channel  *amqp.Channel
	exchange string
}

func NewEventPublisher(amqpURL, exchange string) (*EventPublisher, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, err
	}
	return &EventPublisher{conn: conn, channel: ch, exchange: exchange}, nil
}

// Publish sends the event with its type as the routing key. Publishing is
// best-effort from the route layer; callers tolerate a nil publisher.
func (p *EventPublisher) Publish(eventType string, payload any) error {
	body, err := json.Marshal(map[string]any{
		"type":      eventType,
		"service":   "course-service",
		"payload":   payload,
		"timestamp": time.Now(),
	})
	if err != nil {
		return err
	}

	log.Printf("[EVENT] %s", eventType)

	return p.channel.Publish(
		p.exchange,
		eventType,
		false,
		false,
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
}

func (p *EventPublisher) Close() {
	if p.channel != nil {
		_ = p.channel.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
