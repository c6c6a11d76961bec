package listener

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-scm-service/internal/logger"
	"github.com/fekuna/omnipos-scm-service/internal/metrics"
	"github.com/fekuna/omnipos-scm-service/internal/model"
	"github.com/fekuna/omnipos-scm-service/internal/order"
	"github.com/fekuna/omnipos-scm-service/internal/order/dto"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const EventOrderPlaced = "OrderPlaced"

var errInvalidEvent = errors.New("invalid order event")

// MessageReader is the part of broker.KafkaConsumer the listener needs.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type OrderListener struct {
	consumer MessageReader
	uc       order.UseCase
	logger   logger.ZapLogger
}

func NewOrderListener(consumer MessageReader, uc order.UseCase, logger logger.ZapLogger) *OrderListener {
	return &OrderListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
	}
}

func (l *OrderListener) Start(ctx context.Context) {
	l.logger.Info("Starting order Kafka listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping order Kafka listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				time.Sleep(time.Second)
				continue
			}
			if err := l.processMessage(ctx, msg.Value); err != nil {
				l.logger.Error("Failed to process order event",
					zap.Int64("offset", msg.Offset),
					zap.Error(err),
				)
			}
		}
	}
}

type OrderPlacedEvent struct {
	EventID   string       `json:"event_id"`
	EventType string       `json:"event_type"`
	Payload   OrderPayload `json:"payload"`
	Timestamp time.Time    `json:"timestamp"`
}

type OrderPayload struct {
	SKU              string `json:"sku"`
	Quantity         int    `json:"quantity"`
	CustomerName     string `json:"customer_name"`
	CustomerLocation string `json:"customer_location"`
}

// processMessage places the order carried by an OrderPlaced event and
// fulfills it. Other event types are ignored.
func (l *OrderListener) processMessage(ctx context.Context, value []byte) error {
	var event OrderPlacedEvent
	if err := json.Unmarshal(value, &event); err != nil {
		metrics.ObserveEvent("invalid")
		return fmt.Errorf("%w: %v", errInvalidEvent, err)
	}
	if event.EventType != EventOrderPlaced {
		return nil
	}

	log := l.logger.With(zap.String("event_id", event.EventID))

	o, err := l.uc.PlaceOrder(ctx, &dto.PlaceOrderInput{
		SKU:              event.Payload.SKU,
		Quantity:         event.Payload.Quantity,
		CustomerName:     event.Payload.CustomerName,
		CustomerLocation: event.Payload.CustomerLocation,
		EventID:          event.EventID,
	})
	if errors.Is(err, model.ErrDuplicateEvent) {
		metrics.ObserveEvent("duplicate")
		log.Info("order event already processed, skipping")
		return nil
	}
	if err != nil {
		metrics.ObserveEvent("failed")
		return fmt.Errorf("place order: %w", err)
	}

	result, err := l.uc.FulfillOrder(ctx, o.ID, o.SKU, o.Quantity)
	if err != nil {
		metrics.ObserveEvent("failed")
		return fmt.Errorf("fulfill order %d: %w", o.ID, err)
	}

	metrics.ObserveEvent("success")
	log.Info("order event processed",
		zap.Int64("order_id", o.ID),
		zap.Int("fulfilled", result.Fulfilled),
		zap.Int("remaining", result.Remaining),
	)
	return nil
}
