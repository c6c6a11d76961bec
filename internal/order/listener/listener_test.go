package listener

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/fekuna/omnipos-scm-service/internal/logger"
	"github.com/fekuna/omnipos-scm-service/internal/model"
	"github.com/fekuna/omnipos-scm-service/internal/order/dto"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrders struct {
	mu        sync.Mutex
	placed    []dto.PlaceOrderInput
	fulfilled []int64
	placeErr  error
	byEvent   map[string]int64
}

func (f *fakeOrders) PlaceOrder(_ context.Context, input *dto.PlaceOrderInput) (*model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.placeErr != nil {
		return nil, f.placeErr
	}
	if id, ok := f.byEvent[input.EventID]; ok {
		return &model.Order{ID: id}, model.ErrDuplicateEvent
	}
	f.placed = append(f.placed, *input)
	id := int64(len(f.placed))
	if f.byEvent == nil {
		f.byEvent = map[string]int64{}
	}
	f.byEvent[input.EventID] = id
	return &model.Order{ID: id, SKU: input.SKU, Quantity: input.Quantity}, nil
}

func (f *fakeOrders) FulfillOrder(_ context.Context, orderID int64, sku string, quantity int) (*dto.FulfillmentResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fulfilled = append(f.fulfilled, orderID)
	return &dto.FulfillmentResult{OrderID: orderID, SKU: sku, Requested: quantity, Fulfilled: quantity}, nil
}

func (f *fakeOrders) GetOrder(context.Context, int64) (*model.Order, error) { return nil, nil }
func (f *fakeOrders) ListOrders(context.Context, string, string) ([]model.Order, error) {
	return nil, nil
}
func (f *fakeOrders) UpdateStatus(context.Context, *dto.UpdateStatusInput) error { return nil }
func (f *fakeOrders) DeleteOrder(context.Context, int64) error                   { return nil }
func (f *fakeOrders) MoveOrderToCustomer(context.Context, *dto.MoveToCustomerInput) (*model.LogisticsRecord, error) {
	return nil, nil
}

func event(t *testing.T, eventType string) []byte {
	t.Helper()
	return eventWithID(t, "evt-1", eventType)
}

func eventWithID(t *testing.T, id, eventType string) []byte {
	t.Helper()
	b, err := json.Marshal(OrderPlacedEvent{
		EventID:   id,
		EventType: eventType,
		Payload:   OrderPayload{SKU: "SKU001", Quantity: 2, CustomerName: "user1", CustomerLocation: "Retail Hub 1"},
	})
	require.NoError(t, err)
	return b
}

func TestProcessMessage_PlacesAndFulfills(t *testing.T) {
	orders := &fakeOrders{}
	l := NewOrderListener(nil, orders, logger.NewNop())

	require.NoError(t, l.processMessage(context.Background(), event(t, EventOrderPlaced)))

	require.Len(t, orders.placed, 1)
	assert.Equal(t, "SKU001", orders.placed[0].SKU)
	assert.Equal(t, "evt-1", orders.placed[0].EventID)
	assert.Equal(t, []int64{1}, orders.fulfilled)
}

func TestProcessMessage_RedeliveryIsSkipped(t *testing.T) {
	orders := &fakeOrders{}
	l := NewOrderListener(nil, orders, logger.NewNop())

	require.NoError(t, l.processMessage(context.Background(), event(t, EventOrderPlaced)))
	require.NoError(t, l.processMessage(context.Background(), event(t, EventOrderPlaced)))

	assert.Len(t, orders.placed, 1)
	assert.Equal(t, []int64{1}, orders.fulfilled)
}

func TestProcessMessage_IgnoresOtherEvents(t *testing.T) {
	orders := &fakeOrders{}
	l := NewOrderListener(nil, orders, logger.NewNop())

	require.NoError(t, l.processMessage(context.Background(), event(t, "OrderCancelled")))
	assert.Empty(t, orders.placed)
}

func TestProcessMessage_Errors(t *testing.T) {
	orders := &fakeOrders{}
	l := NewOrderListener(nil, orders, logger.NewNop())

	err := l.processMessage(context.Background(), []byte("{not json"))
	assert.ErrorIs(t, err, errInvalidEvent)

	orders.placeErr = model.ErrProductNotFound
	err = l.processMessage(context.Background(), event(t, EventOrderPlaced))
	assert.ErrorIs(t, err, model.ErrProductNotFound)
	assert.Empty(t, orders.fulfilled)
}

type scriptedReader struct {
	msgs   [][]byte
	cancel context.CancelFunc
}

func (r *scriptedReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		<-ctx.Done()
		return kafka.Message{}, errors.New("reader closed")
	}
	v := r.msgs[0]
	r.msgs = r.msgs[1:]
	return kafka.Message{Value: v}, nil
}

func TestStart_ConsumesUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	orders := &fakeOrders{}
	msgs := [][]byte{
		eventWithID(t, "evt-1", EventOrderPlaced),
		[]byte("garbage"),
		eventWithID(t, "evt-2", EventOrderPlaced),
	}
	reader := &scriptedReader{msgs: msgs, cancel: cancel}
	l := NewOrderListener(reader, orders, logger.NewNop())

	l.Start(ctx)

	assert.Len(t, orders.placed, 2)
	assert.Equal(t, []int64{1, 2}, orders.fulfilled)
}
