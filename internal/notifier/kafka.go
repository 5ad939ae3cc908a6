package notifier

import (
	"context"
	"encoding/json"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"go.uber.org/zap"
)

const (
	maxBufferedRecords = 1000
	deliveryTimeout    = 30 * time.Second
)

type producer interface {
	TryProduce(ctx context.Context, r *kgo.Record, promise func(*kgo.Record, error))
	Flush(ctx context.Context) error
	Close()
}

type kafkaPublisher struct {
	client producer
	topic  string
}

// NewKafka publishes events as JSON records keyed by order number, so all
// events of one order land on the same partition in order.
func NewKafka(brokers []string, topic string) (*Notifier, func(context.Context), error) {
	return newKafka(brokers, topic, maxBufferedRecords, deliveryTimeout)
}

func newKafka(brokers []string, topic string, maxBuffered int, timeout time.Duration) (*Notifier, func(context.Context), error) {
	cl, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.AllowAutoTopicCreation(),
		kgo.MaxBufferedRecords(maxBuffered),
		kgo.RecordDeliveryTimeout(timeout),
	)
	if err != nil {
		return nil, nil, err
	}
	p := &kafkaPublisher{client: cl, topic: topic}
	return newNotifier(p), p.close, nil
}

// publish never blocks: with the buffer full the record is dropped and
// logged, and buffered records fail after deliveryTimeout.
func (p *kafkaPublisher) publish(ctx context.Context, e Event) error {
	value, err := json.Marshal(e)
	if err != nil {
		return err
	}
	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(e.OrderNumber),
		Value: value,
		Headers: []kgo.RecordHeader{
			{Key: "event-type", Value: []byte(e.Type)},
		},
	}
	// The record outlives the request that produced it.
	p.client.TryProduce(context.WithoutCancel(ctx), record, func(r *kgo.Record, err error) {
		if err != nil {
			zap.L().Error("can't publish notification",
				zap.String("type", e.Type), zap.String("order_number", e.OrderNumber), zap.Error(err))
		}
	})
	return nil
}

func (p *kafkaPublisher) close(ctx context.Context) {
	if err := p.client.Flush(ctx); err != nil {
		zap.L().Warn("notification flush interrupted", zap.Error(err))
	}
	p.client.Close()
}
