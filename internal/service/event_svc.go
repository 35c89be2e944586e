package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

// ==================== 领域事件 ====================

// 事件类型
const (
	EventArtisanRegistered    = "artisan.registered"
	EventArtisanStatusChanged = "artisan.status_changed"
	EventBatikCreated         = "batik.created"
	EventBatikUpdated         = "batik.updated"
	EventBatikDeleted         = "batik.deleted"
	EventBatikClassified      = "batik.classified"
)

// Event 领域事件
type Event struct {
	Type       string      `json:"type"`
	Key        string      `json:"key"`
	OccurredAt time.Time   `json:"occurredAt"`
	Payload    interface{} `json:"payload,omitempty"`
}

// NewEvent 创建事件
func NewEvent(eventType, key string, payload interface{}) Event {
	return Event{Type: eventType, Key: key, OccurredAt: time.Now().UTC(), Payload: payload}
}

// EventPublisher 事件发布接口
type EventPublisher interface {
	Publish(ctx context.Context, evt Event) error
	Close() error
}

// publishQuietly 事件发布失败不影响主流程，只记日志
func publishQuietly(ctx context.Context, pub EventPublisher, log *zap.Logger, evt Event) {
	if pub == nil {
		return
	}
	if err := pub.Publish(ctx, evt); err != nil {
		log.Warn("发布事件失败", zap.String("type", evt.Type), zap.String("key", evt.Key), zap.Error(err))
	}
}

// ==================== Kafka 实现 ====================

// KafkaPublisher 基于 sarama SyncProducer 的事件发布
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
	log      *zap.Logger
}

// KafkaOptions Kafka 连接选项
type KafkaOptions struct {
	Brokers  []string
	Topic    string
	ClientID string
}

// NewKafkaPublisher 连接 Kafka
func NewKafkaPublisher(opts KafkaOptions, log *zap.Logger) (*KafkaPublisher, error) {
	config := sarama.NewConfig()
	config.ClientID = opts.ClientID
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(opts.Brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to start Sarama producer: %w", err)
	}

	log.Info("Kafka producer connected", zap.Strings("brokers", opts.Brokers), zap.String("topic", opts.Topic))
	return NewKafkaPublisherWithProducer(producer, opts.Topic, log), nil
}

// NewKafkaPublisherWithProducer 使用已有 producer（测试中传入 sarama/mocks）
func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topic string, log *zap.Logger) *KafkaPublisher {
	return &KafkaPublisher{producer: producer, topic: topic, log: log}
}

// Publish 以事件 key 作为消息 key，同一实体的事件落在同一分区
func (p *KafkaPublisher) Publish(ctx context.Context, evt Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	body, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("encode event %s: %w", evt.Type, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(evt.Key),
		Value: sarama.ByteEncoder(body),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event-type"), Value: []byte(evt.Type)},
		},
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("send event %s: %w", evt.Type, err)
	}
	p.log.Debug("事件已发送",
		zap.String("type", evt.Type),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
	)
	return nil
}

// Close 关闭 producer
func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}

// ==================== 日志实现 ====================

// LogPublisher 未启用 Kafka 时把事件写入日志
type LogPublisher struct {
	log *zap.Logger
}

// NewLogPublisher 创建日志发布者
func NewLogPublisher(log *zap.Logger) *LogPublisher {
	return &LogPublisher{log: log}
}

func (p *LogPublisher) Publish(ctx context.Context, evt Event) error {
	p.log.Info("domain event",
		zap.String("type", evt.Type),
		zap.String("key", evt.Key),
		zap.Time("occurred_at", evt.OccurredAt),
		zap.Any("payload", evt.Payload),
	)
	return nil
}

func (p *LogPublisher) Close() error {
	return nil
}
