package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/internal/domain"
	"github.com/yasirnuhbasa/Berber-Randevu-Sistemi/pkg/clock"
)

const eventTypeHeader = "event_type"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MessageWriter часть kafka.Writer, нужная для публикации
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaNotifier публикует события о записях в Kafka.
// Ключ сообщения ID мастера: события одного мастера идут в одну партицию по порядку.
type KafkaNotifier struct {
	writer       MessageWriter
	timeout      time.Duration
	timeProvider clock.Clock
	log          Logger
}

// NewKafkaNotifier создает notifier поверх асинхронного kafka.Writer.
// WriteMessages только ставит сообщение в очередь writer-а, поэтому
// недоступный брокер не задерживает ответ на запрос; ошибки доставки
// приходят в Completion и логируются.
func NewKafkaNotifier(brokers []string, topic string, timeout time.Duration, log Logger) *KafkaNotifier {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		MaxAttempts:  3,
		WriteTimeout: timeout,
		Async:        true,
		Completion:   completionLogger(log),
		Logger:       kafka.LoggerFunc(func(string, ...interface{}) {}),
		ErrorLogger:  kafka.LoggerFunc(log.Error),
	}

	return NewWithWriter(writer, timeout, log)
}

// NewWithWriter создает notifier с произвольным writer
func NewWithWriter(writer MessageWriter, timeout time.Duration, log Logger) *KafkaNotifier {
	return &KafkaNotifier{
		writer:       writer,
		timeout:      timeout,
		timeProvider: clock.NewSystem(),
		log:          log,
	}
}

func completionLogger(log Logger) func(messages []kafka.Message, err error) {
	return func(messages []kafka.Message, err error) {
		if err == nil {
			return
		}
		for _, msg := range messages {
			log.Error("Failed to deliver %s event (key=%s): %v", headerValue(msg, eventTypeHeader), msg.Key, err)
		}
	}
}

func headerValue(msg kafka.Message, key string) string {
	for _, h := range msg.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

// Publish отправляет событие; вызывается после фиксации транзакции
func (n *KafkaNotifier) Publish(ctx context.Context, eventType domain.AppointmentEventType, appointment *domain.Appointment) error {
	payload, err := json.Marshal(newEvent(eventType, appointment, n.timeProvider.Now()))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	if n.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, n.timeout)
		defer cancel()
	}

	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(appointment.BarberID, 10)),
		Value: payload,
		Headers: []kafka.Header{
			{Key: eventTypeHeader, Value: []byte(eventType)},
		},
	}

	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("%w: appointment_id=%d: %v", ErrPublish, appointment.ID, err)
	}

	n.log.Info("Queued %s for appointment_id=%d", eventType, appointment.ID)
	return nil
}

func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}

// Noop notifier для конфигурации без брокера
type Noop struct{}

func (Noop) Publish(context.Context, domain.AppointmentEventType, *domain.Appointment) error {
	return nil
}

func (Noop) Close() error {
	return nil
}
