package notifications

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"comedyslots/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RabbitMQProducer publishes notifications to a durable queue on the default exchange.
type RabbitMQProducer struct {
	url   string
	queue string
	log   *logger.Logger

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewRabbitMQProducer(url, queue string, log *logger.Logger) (*RabbitMQProducer, error) {
	p := &RabbitMQProducer{url: url, queue: queue, log: log.WithComponent("rabbitmq-producer")}

	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.connectLocked(); err != nil {
		return nil, err
	}
	return p, nil
}

// connectLocked (re)opens the connection and channel and declares the queue.
func (p *RabbitMQProducer) connectLocked() error {
	if p.conn != nil && !p.conn.IsClosed() && p.channel != nil && !p.channel.IsClosed() {
		return nil
	}
	p.closeLocked()

	conn, err := amqp.Dial(p.url)
	if err != nil {
		return fmt.Errorf("rabbitmq dial: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("rabbitmq channel open: %w", err)
	}
	if err := declareQueue(ch, p.queue); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return err
	}

	p.conn, p.channel = conn, ch
	return nil
}

func declareQueue(ch *amqp.Channel, queue string) error {
	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		return fmt.Errorf("rabbitmq queue declare: %w", err)
	}
	return nil
}

func (p *RabbitMQProducer) PublishNotification(ctx context.Context, notification *EmailNotification) error {
	notification.MarkQueued()
	body, err := notification.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.connectLocked(); err != nil {
		notification.MarkFailed(err)
		return err
	}

	err = p.channel.PublishWithContext(ctx,
		"",      // default exchange
		p.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    notification.ID.String(),
			Type:         string(notification.Type),
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		notification.MarkFailed(err)
		return fmt.Errorf("rabbitmq publish: %w", err)
	}

	p.log.DebugContext(ctx, "notification published", "queue", p.queue, "booking_id", notification.BookingID.String())
	return nil
}

func (p *RabbitMQProducer) closeLocked() {
	if p.channel != nil {
		_ = p.channel.Close()
		p.channel = nil
	}
	if p.conn != nil {
		_ = p.conn.Close()
		p.conn = nil
	}
}

func (p *RabbitMQProducer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closeLocked()
	return nil
}

func (p *RabbitMQProducer) HealthCheck(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.conn == nil || p.conn.IsClosed() {
		return fmt.Errorf("rabbitmq connection is closed")
	}
	return nil
}

// RabbitMQConsumer reads the notification queue and reconnects with backoff when
// the broker goes away.
type RabbitMQConsumer struct {
	url       string
	queue     string
	prefetch  int
	processor *Processor
	log       *logger.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu        sync.Mutex
	connected bool
}

func NewRabbitMQConsumer(url, queue string, processor *Processor, log *logger.Logger) *RabbitMQConsumer {
	return &RabbitMQConsumer{
		url:       url,
		queue:     queue,
		prefetch:  50,
		processor: processor,
		log:       log.WithComponent("rabbitmq-consumer"),
	}
}

func (c *RabbitMQConsumer) StartConsumers(ctx context.Context, numWorkers int) error {
	if numWorkers < 1 {
		numWorkers = 1
	}
	ctx, c.cancel = context.WithCancel(ctx)

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.run(ctx, numWorkers)
	}()
	return nil
}

func (c *RabbitMQConsumer) run(ctx context.Context, numWorkers int) {
	backoff := time.Second
	for ctx.Err() == nil {
		conn, err := amqp.Dial(c.url)
		if err != nil {
			c.log.Warn("failed to dial broker", "error", err, "retry_in", backoff)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		c.setConnected(true)
		err = c.consume(ctx, conn, numWorkers)
		c.setConnected(false)
		_ = conn.Close()

		if err != nil && ctx.Err() == nil {
			c.log.Warn("consume loop ended, reconnecting", "error", err)
			select {
			case <-time.After(2 * time.Second):
			case <-ctx.Done():
			}
		}
	}
}

func (c *RabbitMQConsumer) consume(ctx context.Context, conn *amqp.Connection, numWorkers int) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		c.log.Warn("set QoS failed", "error", err)
	}
	if err := declareQueue(ch, c.queue); err != nil {
		return err
	}

	deliveries, err := ch.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	var workers sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		workers.Add(1)
		go func() {
			defer workers.Done()
			for {
				select {
				case d, ok := <-deliveries:
					if !ok {
						return
					}
					c.handle(ctx, d)
				case <-ctx.Done():
					return
				}
			}
		}()
	}
	workers.Wait()

	if ctx.Err() != nil {
		return nil
	}
	return errors.New("deliveries channel closed")
}

// handle acks processed messages and rejects the rest without requeueing, so a
// poison message cannot loop.
func (c *RabbitMQConsumer) handle(ctx context.Context, d amqp.Delivery) {
	if err := c.processor.ProcessMessage(ctx, d.Body); err != nil {
		c.log.Warn("dropping notification", "message_id", d.MessageId, "error", err)
		_ = d.Nack(false, false)
		return
	}
	_ = d.Ack(false)
}

func (c *RabbitMQConsumer) setConnected(v bool) {
	c.mu.Lock()
	c.connected = v
	c.mu.Unlock()
}

func (c *RabbitMQConsumer) Stop() error {
	if c.cancel != nil {
		c.cancel()
	}
	c.wg.Wait()
	return nil
}

func (c *RabbitMQConsumer) HealthCheck(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.connected {
		return fmt.Errorf("rabbitmq consumer is not connected")
	}
	return nil
}
