package notifications

import (
	"context"
	"fmt"
	"sync"

	"comedyslots/internal/shared/config"
	"comedyslots/pkg/logger"
)

const (
	TransportKafka    = "kafka"
	TransportRabbitMQ = "rabbitmq"
	TransportInline   = "inline"
)

// Service owns the producer side and, for broker transports, the consumer workers
// that turn queued notifications into emails.
type Service struct {
	config    config.NotificationConfig
	transport string
	producer  NotificationProducer
	consumer  NotificationConsumer
	log       *logger.Logger

	mu        sync.RWMutex
	isRunning bool
}

// NewService wires the configured transport. SMTP is used when configured, otherwise
// emails are written to the log.
func NewService(cfg *config.Config, log *logger.Logger) (*Service, error) {
	nc := cfg.Notifications

	var emailService EmailService
	if nc.Email.Enabled() {
		smtpService, err := NewSMTPEmailService(SMTPConfigFrom(nc.Email), log)
		if err != nil {
			return nil, err
		}
		emailService = smtpService
	} else {
		emailService = NewLogEmailService(log)
	}

	return newServiceWithEmail(nc, emailService, log)
}

func newServiceWithEmail(nc config.NotificationConfig, emailService EmailService, log *logger.Logger) (*Service, error) {
	processor := NewProcessor(emailService, nc.MaxRetries, nc.RetryBaseDelay, log)
	svc := &Service{
		config:    nc,
		transport: nc.Transport,
		log:       log.WithComponent("notifications"),
	}

	switch nc.Transport {
	case TransportKafka:
		producerConfig := DefaultKafkaProducerConfig()
		producerConfig.Brokers = nc.KafkaBrokers
		producerConfig.NotificationTopic = nc.Topic
		producer, err := NewKafkaNotificationProducer(producerConfig, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create notification producer: %w", err)
		}

		consumerConfig := DefaultConsumerConfig()
		consumerConfig.Brokers = nc.KafkaBrokers
		consumerConfig.Topics = []string{nc.Topic}
		consumerConfig.GroupID = nc.ConsumerGroupID
		consumer, err := NewKafkaNotificationConsumer(consumerConfig, processor, log)
		if err != nil {
			_ = producer.Close()
			return nil, fmt.Errorf("failed to create notification consumer: %w", err)
		}
		svc.producer, svc.consumer = producer, consumer

	case TransportRabbitMQ:
		producer, err := NewRabbitMQProducer(nc.RabbitMQURL, nc.Queue, log)
		if err != nil {
			return nil, fmt.Errorf("failed to create notification producer: %w", err)
		}
		svc.producer = producer
		svc.consumer = NewRabbitMQConsumer(nc.RabbitMQURL, nc.Queue, processor, log)

	case TransportInline, "":
		svc.transport = TransportInline
		svc.producer = NewInlineProducer(processor)

	default:
		return nil, fmt.Errorf("unknown notification transport %q", nc.Transport)
	}

	return svc, nil
}

// NewInlineService delivers directly through emailService with no broker.
func NewInlineService(nc config.NotificationConfig, emailService EmailService, log *logger.Logger) *Service {
	nc.Transport = TransportInline
	svc, _ := newServiceWithEmail(nc, emailService, log)
	return svc
}

func (s *Service) Transport() string {
	return s.transport
}

func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("notification service is already running")
	}
	if s.consumer != nil {
		if err := s.consumer.StartConsumers(ctx, s.config.NumWorkers); err != nil {
			return fmt.Errorf("failed to start consumers: %w", err)
		}
	}

	s.isRunning = true
	s.log.Info("notification service started", "transport", s.transport)
	return nil
}

func (s *Service) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return fmt.Errorf("notification service is not running")
	}

	if s.consumer != nil {
		if err := s.consumer.Stop(); err != nil {
			s.log.Warn("error stopping consumer", "error", err)
		}
	}
	if err := s.producer.Close(); err != nil {
		s.log.Warn("error closing producer", "error", err)
	}

	s.isRunning = false
	s.log.Info("notification service stopped")
	return nil
}

func (s *Service) SendNotification(ctx context.Context, notification *EmailNotification) error {
	return s.producer.PublishNotification(ctx, notification)
}

func (s *Service) HealthCheck(ctx context.Context) error {
	s.mu.RLock()
	isRunning := s.isRunning
	s.mu.RUnlock()

	if !isRunning {
		return fmt.Errorf("notification service is not running")
	}
	if err := s.producer.HealthCheck(ctx); err != nil {
		return fmt.Errorf("producer health check failed: %w", err)
	}
	if s.consumer != nil {
		if err := s.consumer.HealthCheck(ctx); err != nil {
			return fmt.Errorf("consumer health check failed: %w", err)
		}
	}
	return nil
}
