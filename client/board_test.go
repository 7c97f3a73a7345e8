package client

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/VictorBevilacqua/ana-carla-gestor-railway/entity"
)

// stubAPI records calls and serves canned data; err, when set, fails every
// mutation.
type stubAPI struct {
	orders    []entity.Order
	customers []entity.Customer
	menu      []entity.MenuItem

	err         error
	statusCalls []entity.Status
	created     []entity.Order
	updated     []OrderPatch
}

func (s *stubAPI) Orders(ctx context.Context, status *entity.Status) ([]entity.Order, error) {
	return s.orders, s.err
}

func (s *stubAPI) Customers(ctx context.Context) ([]entity.Customer, error) {
	return s.customers, s.err
}

func (s *stubAPI) Menu(ctx context.Context, active *bool) ([]entity.MenuItem, error) {
	return s.menu, s.err
}

func (s *stubAPI) CreateOrder(ctx context.Context, order entity.Order) (entity.Order, error) {
	if s.err != nil {
		return entity.Order{}, s.err
	}
	order.ID = uint(len(s.created) + 100)
	order.Status = entity.StatusReceived
	order.CreatedAt = time.Now()
	s.created = append(s.created, order)
	return order, nil
}

func (s *stubAPI) UpdateOrder(ctx context.Context, id uint, patch OrderPatch) (entity.Order, error) {
	if s.err != nil {
		return entity.Order{}, s.err
	}
	s.updated = append(s.updated, patch)
	o := entity.Order{ID: id, Lines: patch.Lines}
	if patch.Notes != nil {
		o.Notes = *patch.Notes
	}
	o.RecalcTotal()
	return o, nil
}

func (s *stubAPI) UpdateOrderStatus(ctx context.Context, id uint, status entity.Status) (entity.Order, error) {
	if s.err != nil {
		return entity.Order{}, s.err
	}
	s.statusCalls = append(s.statusCalls, status)
	for _, o := range s.orders {
		if o.ID == id {
			o.Status = status
			return o, nil
		}
	}
	return entity.Order{ID: id, Status: status}, nil
}

func loadedBoard(t *testing.T, api *stubAPI) *Board {
	t.Helper()
	b := NewBoard(api)
	if err := b.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return b
}

func TestLoadHidesArchivedOrders(t *testing.T) {
	api := &stubAPI{orders: []entity.Order{
		{ID: 1, Status: entity.StatusReceived},
		{ID: 2, Status: entity.StatusArchived, Total: 40, CreatedAt: time.Now().Add(-time.Hour), DeliveredAt: ptrTime(time.Now())},
		{ID: 3, Status: entity.StatusDelivered},
	}}
	b := loadedBoard(t, api)

	if len(b.Orders) != 2 {
		t.Fatalf("visible orders = %d, want 2", len(b.Orders))
	}
	for _, o := range b.Orders {
		if o.ID == 2 {
			t.Error("archived order shown on the board")
		}
	}

	// The archived record still feeds the aggregates.
	sum := b.Summary(time.Now())
	if sum.AverageTicket == 0 {
		t.Error("archived delivered order missing from the average ticket")
	}
}

func TestLoadFailureKeepsSnapshot(t *testing.T) {
	api := &stubAPI{orders: []entity.Order{{ID: 1, Status: entity.StatusReceived}}}
	b := loadedBoard(t, api)

	api.err = errors.New("boom")
	if err := b.Load(context.Background()); err == nil {
		t.Fatal("Load succeeded with a failing fetch")
	}
	if len(b.Orders) != 1 {
		t.Errorf("previous snapshot lost: %d orders", len(b.Orders))
	}
}

func TestMoveSameColumnIsNoop(t *testing.T) {
	api := &stubAPI{orders: []entity.Order{{ID: 1, Status: entity.StatusReceived}}}
	b := loadedBoard(t, api)

	if err := b.Move(context.Background(), 1, entity.StatusReceived, entity.StatusReceived); err != nil {
		t.Fatalf("Move: %v", err)
	}
	if len(api.statusCalls) != 0 {
		t.Errorf("no-op drop issued %d backend calls", len(api.statusCalls))
	}
}

func TestMoveRejectsArchivedTarget(t *testing.T) {
	api := &stubAPI{orders: []entity.Order{{ID: 1, Status: entity.StatusDelivered}}}
	b := loadedBoard(t, api)

	if err := b.Move(context.Background(), 1, entity.StatusDelivered, entity.StatusArchived); err == nil {
		t.Error("Move accepted the archival token as a column")
	}
	if len(api.statusCalls) != 0 {
		t.Error("rejected move still reached the backend")
	}
}

func TestMoveFailureLeavesBoardUntouched(t *testing.T) {
	api := &stubAPI{orders: []entity.Order{{ID: 1, Status: entity.StatusReceived}}}
	b := loadedBoard(t, api)

	api.err = errors.New("rede fora")
	err := b.Move(context.Background(), 1, entity.StatusReceived, entity.StatusPreparing)
	if err == nil {
		t.Fatal("Move succeeded against a failing backend")
	}
	if b.Orders[0].Status != entity.StatusReceived {
		t.Errorf("card moved despite the failure: %s", b.Orders[0].Status)
	}
}

func TestFinalizeOnlyFromDelivered(t *testing.T) {
	api := &stubAPI{orders: []entity.Order{
		{ID: 1, Status: entity.StatusPreparing},
		{ID: 2, Status: entity.StatusDelivered, Total: 56, CreatedAt: time.Now().Add(-time.Hour), DeliveredAt: ptrTime(time.Now())},
	}}
	b := loadedBoard(t, api)

	if err := b.Finalize(context.Background(), 1); err == nil {
		t.Error("finalized an order still in preparation")
	}

	if err := b.Finalize(context.Background(), 2); err != nil {
		t.Fatalf("Finalize: %v", err)
	}
	if b.find(2) >= 0 {
		t.Error("finalized order still on the board")
	}
	if got := api.statusCalls; len(got) != 1 || got[0] != entity.StatusArchived {
		t.Errorf("statusCalls = %v, want [%s]", got, entity.StatusArchived)
	}

	// Finalizing hides the card but keeps the revenue.
	sum := b.Summary(time.Now())
	if math.Abs(sum.AverageTicket-56) > 1e-6 {
		t.Errorf("AverageTicket = %.2f after finalize, want 56.00", sum.AverageTicket)
	}
}

func TestCreateOrderValidation(t *testing.T) {
	api := &stubAPI{}
	b := loadedBoard(t, api)
	ctx := context.Background()
	line := entity.OrderLine{Name: "Bowl", Quantity: 1, UnitPrice: 26}

	if _, err := b.CreateOrder(ctx, 0, []entity.OrderLine{line}, entity.ChannelWeb, ""); err == nil {
		t.Error("accepted an order without a customer")
	}
	if _, err := b.CreateOrder(ctx, 1, nil, entity.ChannelWeb, ""); err == nil {
		t.Error("accepted an order without lines")
	}
	if _, err := b.CreateOrder(ctx, 1, []entity.OrderLine{{Name: "Bowl", Quantity: 0}}, entity.ChannelWeb, ""); err == nil {
		t.Error("accepted an order whose only line has zero quantity")
	}
	if _, err := b.CreateOrder(ctx, 1, []entity.OrderLine{line}, entity.Channel("SINAL_DE_FUMACA"), ""); err == nil {
		t.Error("accepted an unknown channel")
	}
	if len(api.created) != 0 {
		t.Errorf("invalid requests reached the backend: %d", len(api.created))
	}

	created, err := b.CreateOrder(ctx, 1, []entity.OrderLine{
		line,
		{Name: "Suco", Quantity: 0, UnitPrice: 12}, // dropped, not zeroed
	}, entity.ChannelWhatsApp, "entregar às 12h")
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if len(created.Lines) != 1 {
		t.Errorf("zero-quantity line submitted: %+v", created.Lines)
	}
	if math.Abs(created.Total-26) > 1e-6 {
		t.Errorf("Total = %.2f, want 26.00", created.Total)
	}
	if b.find(created.ID) < 0 {
		t.Error("created order not appended to the board")
	}
}

func TestUpdateOrderRecomputesTotal(t *testing.T) {
	api := &stubAPI{orders: []entity.Order{{
		ID: 1, Status: entity.StatusReceived, Total: 22,
		Lines: []entity.OrderLine{{Name: "Salada Caesar", Quantity: 1, UnitPrice: 22}},
	}}}
	b := loadedBoard(t, api)

	updated, err := b.UpdateOrder(context.Background(), 1, []entity.OrderLine{
		{Name: "Salada Caesar", Quantity: 2, UnitPrice: 22},
		{Name: "Suco Detox", Quantity: 1, UnitPrice: 12},
	}, "")
	if err != nil {
		t.Fatalf("UpdateOrder: %v", err)
	}
	if math.Abs(updated.Total-56) > 1e-6 {
		t.Errorf("Total = %.2f, want 56.00", updated.Total)
	}
	if math.Abs(b.Orders[0].Total-56) > 1e-6 {
		t.Errorf("board copy not replaced, Total = %.2f", b.Orders[0].Total)
	}
}

func TestCustomerName(t *testing.T) {
	b := &Board{Customers: []entity.Customer{{ID: 7, Name: "Marina Souza"}}}
	if got := b.CustomerName(7); got != "Marina Souza" {
		t.Errorf("CustomerName(7) = %q", got)
	}
	if got := b.CustomerName(99); got != "Cliente desconhecido" {
		t.Errorf("CustomerName(99) = %q", got)
	}
}

func ptrTime(t time.Time) *time.Time { return &t }
