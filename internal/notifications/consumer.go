package notifications

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"comedyslots/pkg/logger"

	"github.com/IBM/sarama"
)

type NotificationConsumer interface {
	StartConsumers(ctx context.Context, numWorkers int) error
	Stop() error
	HealthCheck(ctx context.Context) error
}

// Processor renders and sends a notification, retrying with exponential backoff.
type Processor struct {
	emailService EmailService
	maxRetries   int
	backoff      time.Duration
	log          *logger.Logger
}

func NewProcessor(emailService EmailService, maxRetries int, backoff time.Duration, log *logger.Logger) *Processor {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &Processor{
		emailService: emailService,
		maxRetries:   maxRetries,
		backoff:      backoff,
		log:          log.WithComponent("notification-processor"),
	}
}

// ProcessMessage decodes a transport payload and processes it.
func (p *Processor) ProcessMessage(ctx context.Context, body []byte) error {
	var notification EmailNotification
	if err := json.Unmarshal(body, &notification); err != nil {
		return fmt.Errorf("failed to unmarshal notification: %w", err)
	}
	return p.Process(ctx, &notification)
}

func (p *Processor) Process(ctx context.Context, notification *EmailNotification) error {
	if notification.RecipientEmail == "" {
		return fmt.Errorf("notification %s has no recipient", notification.ID)
	}

	notification.Status = NotificationStatusSending
	if err := p.executeWithRetry(ctx, notification); err != nil {
		notification.MarkFailed(err)
		p.log.LogNotificationFailed(ctx, notification.BookingID.String(), notification.RecipientEmail, err)
		return err
	}

	notification.MarkSent()
	p.log.InfoContext(ctx, "notification sent",
		"type", notification.Type,
		"booking_id", notification.BookingID.String(),
		"recipient", notification.RecipientEmail,
	)
	return nil
}

// executeWithRetry sends until success, the notification's retry budget runs
// out, or ctx is done. A zero budget on the message means the processor default.
func (p *Processor) executeWithRetry(ctx context.Context, notification *EmailNotification) error {
	if notification.MaxRetries <= 0 {
		notification.MaxRetries = p.maxRetries
	}

	for {
		err := p.emailService.SendNotification(ctx, notification)
		if err == nil {
			return nil
		}
		if !notification.ShouldRetry() {
			notification.MarkExpired()
			return fmt.Errorf("giving up after %d attempts: %w", notification.RetryCount+1, err)
		}

		delay := p.backoff * time.Duration(1<<notification.RetryCount)
		notification.IncrementRetry()
		p.log.WarnContext(ctx, "retrying notification", "attempt", notification.RetryCount, "delay", delay, "error", err)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

type ConsumerConfig struct {
	Brokers           []string
	GroupID           string
	Topics            []string
	SessionTimeout    time.Duration
	Heartbeat         time.Duration
	MaxProcessingTime time.Duration
	OffsetOldest      bool
}

func DefaultConsumerConfig() *ConsumerConfig {
	return &ConsumerConfig{
		Brokers:           []string{"localhost:9092"},
		GroupID:           "comedy-slots-notifications",
		Topics:            []string{"booking-notifications"},
		SessionTimeout:    30 * time.Second,
		Heartbeat:         3 * time.Second,
		MaxProcessingTime: 5 * time.Minute,
		OffsetOldest:      true,
	}
}

type KafkaNotificationConsumer struct {
	consumerGroup sarama.ConsumerGroup
	config        *ConsumerConfig
	processor     *Processor
	log           *logger.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewKafkaNotificationConsumer(config *ConsumerConfig, processor *Processor, log *logger.Logger) (*KafkaNotificationConsumer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Consumer.Group.Session.Timeout = config.SessionTimeout
	saramaConfig.Consumer.Group.Heartbeat.Interval = config.Heartbeat
	saramaConfig.Consumer.MaxProcessingTime = config.MaxProcessingTime
	saramaConfig.Consumer.Return.Errors = true
	saramaConfig.Consumer.Offsets.AutoCommit.Enable = true
	saramaConfig.Consumer.Offsets.AutoCommit.Interval = time.Second
	if config.OffsetOldest {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetOldest
	} else {
		saramaConfig.Consumer.Offsets.Initial = sarama.OffsetNewest
	}

	consumerGroup, err := sarama.NewConsumerGroup(config.Brokers, config.GroupID, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &KafkaNotificationConsumer{
		consumerGroup: consumerGroup,
		config:        config,
		processor:     processor,
		log:           log.WithComponent("kafka-consumer"),
	}, nil
}

func (knc *KafkaNotificationConsumer) StartConsumers(ctx context.Context, numWorkers int) error {
	if numWorkers < 1 {
		numWorkers = 1
	}
	ctx, knc.cancel = context.WithCancel(ctx)

	go knc.handleErrors()

	for i := 0; i < numWorkers; i++ {
		knc.wg.Add(1)
		go func(workerID int) {
			defer knc.wg.Done()
			knc.runWorker(ctx, workerID)
		}(i)
	}

	knc.log.Info("notification consumers started", "workers", numWorkers, "topics", knc.config.Topics)
	return nil
}

func (knc *KafkaNotificationConsumer) runWorker(ctx context.Context, workerID int) {
	handler := &ConsumerGroupHandler{processor: knc.processor, workerID: workerID, log: knc.log}

	for ctx.Err() == nil {
		if err := knc.consumerGroup.Consume(ctx, knc.config.Topics, handler); err != nil {
			knc.log.Warn("error consuming messages", "worker", workerID, "error", err)
			select {
			case <-time.After(time.Second):
			case <-ctx.Done():
			}
		}
	}
}

func (knc *KafkaNotificationConsumer) handleErrors() {
	for err := range knc.consumerGroup.Errors() {
		knc.log.Warn("consumer group error", "error", err)
	}
}

func (knc *KafkaNotificationConsumer) Stop() error {
	if knc.cancel != nil {
		knc.cancel()
	}
	knc.wg.Wait()

	if err := knc.consumerGroup.Close(); err != nil {
		return fmt.Errorf("failed to close consumer group: %w", err)
	}
	return nil
}

func (knc *KafkaNotificationConsumer) HealthCheck(ctx context.Context) error {
	if knc.processor == nil {
		return fmt.Errorf("processor not configured")
	}
	return nil
}

type ConsumerGroupHandler struct {
	processor *Processor
	workerID  int
	log       *logger.Logger
}

func (h *ConsumerGroupHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *ConsumerGroupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *ConsumerGroupHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				return nil
			}
			if err := h.processor.ProcessMessage(session.Context(), message.Value); err != nil {
				h.log.Warn("dropping notification",
					"worker", h.workerID,
					"partition", message.Partition,
					"offset", message.Offset,
					"error", err,
				)
			}
			// Retries already happened in the processor; a failed message is not redelivered.
			session.MarkMessage(message, "")

		case <-session.Context().Done():
			return nil
		}
	}
}
