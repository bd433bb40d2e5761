package destination

import (
	"context"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/gaborage/go-beams/event"
)

// Publisher abstracts the broker channel an AMQP destination ships lines
// through, keeping tests broker-free.
type Publisher interface {
	Publish(ctx context.Context, exchange, routingKey string, body []byte) error
	Close() error
}

// AMQP publishes rendered lines to an exchange/routing key. Delivery errors
// are recorded and surfaced by the next Flush. Marked async by default:
// broker round-trips should not block the logging call site.
type AMQP struct {
	*Core
	pub        Publisher
	exchange   string
	routingKey string

	// Guarded by the core write mutex.
	lastErr error
}

// NewAMQP returns a destination publishing through pub.
func NewAMQP(pub Publisher, exchange, routingKey string) *AMQP {
	d := &AMQP{
		Core:       NewCore(),
		pub:        pub,
		exchange:   exchange,
		routingKey: routingKey,
	}
	d.SetAsync(true)
	return d
}

// Log renders the event and publishes it as one message.
func (d *AMQP) Log(e event.Event) {
	line, ok := d.Process(e)
	if !ok {
		return
	}

	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	if err := d.pub.Publish(context.Background(), d.exchange, d.routingKey, []byte(line)); err != nil {
		d.lastErr = fmt.Errorf("failed to publish log message: %w", err)
	}
}

// Flush reports and clears the last delivery error.
func (d *AMQP) Flush() error {
	d.writeMu.Lock()
	defer d.writeMu.Unlock()

	err := d.lastErr
	d.lastErr = nil
	return err
}

// Close closes the underlying publisher.
func (d *AMQP) Close() error {
	return d.pub.Close()
}

// amqpPublisher is the amqp091-backed Publisher used outside tests.
type amqpPublisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// DialAMQP connects to the broker and opens a publishing channel.
func DialAMQP(brokerURL string) (Publisher, error) {
	conn, err := amqp.Dial(brokerURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	return &amqpPublisher{conn: conn, ch: ch}, nil
}

func (p *amqpPublisher) Publish(ctx context.Context, exchange, routingKey string, body []byte) error {
	return p.ch.PublishWithContext(ctx, exchange, routingKey, false, false, amqp.Publishing{
		ContentType: "text/plain",
		Timestamp:   time.Now(),
		Body:        body,
	})
}

func (p *amqpPublisher) Close() error {
	if err := p.ch.Close(); err != nil {
		p.conn.Close()
		return err
	}
	return p.conn.Close()
}
