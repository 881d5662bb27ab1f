// Package events publishes order lifecycle events to RabbitMQ. The
// publisher is optional: a nil *Publisher drops events silently, so the
// service runs unchanged without a broker.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/dulce-tentacion/pasteleria-backend/models"
	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	Exchange = "pedidos.events"

	RoutingKeyOrderCreated = "pedido.creado"
	RoutingKeyOrderStatus  = "pedido.estado"
)

type OrderEvent struct {
	EventID        string             `json:"event_id"`
	Type           string             `json:"type"`
	OrderID        string             `json:"id_pedido"`
	Status         models.OrderStatus `json:"estado"`
	PreviousStatus models.OrderStatus `json:"estado_anterior,omitempty"`
	Total          float64            `json:"total,omitempty"`
	OccurredAt     time.Time          `json:"occurred_at"`
}

type Publisher struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func Connect(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if err := ch.ExchangeDeclare(Exchange, "direct", true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	return &Publisher{conn: conn, ch: ch}, nil
}

func (p *Publisher) Close() {
	if p == nil {
		return
	}
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}

func (p *Publisher) publish(ctx context.Context, routingKey string, event OrderEvent) error {
	if p == nil {
		return nil
	}
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.ch.PublishWithContext(ctx, Exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID,
		Timestamp:    event.OccurredAt,
		Body:         body,
	})
}

func (p *Publisher) OrderCreated(ctx context.Context, order *models.Order) error {
	return p.publish(ctx, RoutingKeyOrderCreated, OrderEvent{
		EventID:    uuid.NewString(),
		Type:       "order_created",
		OrderID:    order.ID.Hex(),
		Status:     order.Status,
		Total:      order.Total,
		OccurredAt: time.Now().UTC(),
	})
}

func (p *Publisher) OrderStatusChanged(ctx context.Context, orderID string, previous, current models.OrderStatus) error {
	return p.publish(ctx, RoutingKeyOrderStatus, OrderEvent{
		EventID:        uuid.NewString(),
		Type:           "order_status_changed",
		OrderID:        orderID,
		Status:         current,
		PreviousStatus: previous,
		OccurredAt:     time.Now().UTC(),
	})
}
