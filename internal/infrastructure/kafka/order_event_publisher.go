package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/jhoicas/Traslados-api/internal/application/transfer"
	"github.com/jhoicas/Traslados-api/internal/domain/entity"
)

var _ transfer.OrderEventPublisher = (*OrderEventPublisher)(nil)

// OrderEventPublisher publica eventos de orden actualizada en Kafka para los
// sistemas dependientes (EDI, sincronización, notificaciones).
type OrderEventPublisher struct {
	writer *kafkago.Writer
}

// NewWriter construye el writer Kafka del tópico de órdenes.
func NewWriter(brokers []string, topic string) *kafkago.Writer {
	return &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		BatchSize:    100,
	}
}

// NewOrderEventPublisher construye el publicador sobre un writer ya configurado.
func NewOrderEventPublisher(writer *kafkago.Writer) *OrderEventPublisher {
	return &OrderEventPublisher{writer: writer}
}

type orderUpdatedEvent struct {
	EventID    string           `json:"event_id"`
	Type       string           `json:"type"`
	OrderID    int64            `json:"order_id"`
	OrderNo    string           `json:"order_no"`
	Step       string           `json:"step"`
	Lines      []eventOrderLine `json:"lines"`
	OccurredAt time.Time        `json:"occurred_at"`
}

type eventOrderLine struct {
	ID               int64  `json:"id"`
	PID              int64  `json:"pid"`
	LineNo           int    `json:"line_no"`
	ItemNo           string `json:"item_no"`
	Quantity         int    `json:"quantity"`
	QuantityReceived int    `json:"quantity_received"`
}

// PublishOrderUpdated publica el snapshot de la orden (solo líneas activas).
// La clave es el id de la orden para conservar el orden por partición.
func (p *OrderEventPublisher) PublishOrderUpdated(ctx context.Context, order *entity.TransferOrder) error {
	event := orderUpdatedEvent{
		EventID:    uuid.NewString(),
		Type:       "transfer_order.updated",
		OrderID:    order.ID,
		OrderNo:    order.OrderNo,
		Step:       order.Step.String(),
		Lines:      make([]eventOrderLine, 0, len(order.Lines)),
		OccurredAt: time.Now(),
	}
	for _, line := range order.ActiveLines() {
		event.Lines = append(event.Lines, eventOrderLine{
			ID:               line.ID,
			PID:              line.PID,
			LineNo:           line.LineNo,
			ItemNo:           line.ItemNo,
			Quantity:         line.Quantity,
			QuantityReceived: line.QuantityReceived,
		})
	}

	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order updated event: %w", err)
	}
	err = p.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(strconv.FormatInt(order.ID, 10)),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("publish order updated event: %w", err)
	}
	return nil
}

// Close cierra el writer subyacente.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}
