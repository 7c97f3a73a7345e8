package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/VictorBevilacqua/ana-carla-gestor-railway/entity"
	"github.com/VictorBevilacqua/ana-carla-gestor-railway/pkg/dashboard"
	"github.com/VictorBevilacqua/ana-carla-gestor-railway/pkg/kanban"
	"golang.org/x/sync/errgroup"
)

// API is the slice of the REST client the board needs. *Client satisfies it.
type API interface {
	Orders(ctx context.Context, status *entity.Status) ([]entity.Order, error)
	Customers(ctx context.Context) ([]entity.Customer, error)
	Menu(ctx context.Context, active *bool) ([]entity.MenuItem, error)
	CreateOrder(ctx context.Context, order entity.Order) (entity.Order, error)
	UpdateOrder(ctx context.Context, id uint, patch OrderPatch) (entity.Order, error)
	UpdateOrderStatus(ctx context.Context, id uint, status entity.Status) (entity.Order, error)
}

// Board holds the kanban view of orders plus the customer and menu
// snapshots it is rendered against. Mutations follow confirmed-update
// semantics: local state changes only after the backend acknowledges, so a
// failed call leaves the board consistent and a reload is the whole
// recovery story.
//
// Board is not safe for concurrent use; it mirrors a single UI surface.
type Board struct {
	api API

	Orders    []entity.Order
	Customers []entity.Customer
	Menu      []entity.MenuItem

	// all keeps archived orders too; aggregates must see the history the
	// board hides.
	all []entity.Order
}

func NewBoard(api API) *Board {
	return &Board{api: api}
}

// Load fetches orders, customers and the full menu concurrently. The menu
// fetch includes inactive items so lines of old orders still resolve. If
// any fetch fails the whole load fails and the previous snapshot is kept.
func (b *Board) Load(ctx context.Context) error {
	var (
		orders    []entity.Order
		customers []entity.Customer
		menu      []entity.MenuItem
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = b.api.Orders(ctx, nil)
		return err
	})
	g.Go(func() error {
		var err error
		customers, err = b.api.Customers(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		menu, err = b.api.Menu(ctx, nil)
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("carregar quadro: %w", err)
	}

	b.all = orders
	b.Orders = kanban.Visible(orders)
	b.Customers = customers
	b.Menu = menu
	return nil
}

func (b *Board) syncAll(o entity.Order) {
	for i := range b.all {
		if b.all[i].ID == o.ID {
			b.all[i] = o
			return
		}
	}
	b.all = append(b.all, o)
}

// Columns partitions the visible orders into the four fixed columns.
func (b *Board) Columns() map[entity.Status][]entity.Order {
	return kanban.Group(b.Orders)
}

func (b *Board) find(id uint) int {
	for i, o := range b.Orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}

// Move is the drag-and-drop transition. Dropping a card on its own column
// is a no-op with no backend call. Otherwise the status patch is confirmed
// first and only then the card changes column; on failure the board is
// untouched and the caller may Load to resync.
func (b *Board) Move(ctx context.Context, id uint, from, to entity.Status) error {
	if from == to {
		return nil
	}
	if !to.OnBoard() {
		return errors.New("destino inválido")
	}
	i := b.find(id)
	if i < 0 {
		return errors.New("pedido não está no quadro")
	}

	updated, err := b.api.UpdateOrderStatus(ctx, id, to)
	if err != nil {
		return fmt.Errorf("mover pedido: %w", err)
	}
	b.Orders[i] = updated
	b.syncAll(updated)
	return nil
}

// Finalize archives a delivered order: it leaves the board but the record
// survives. Only the last column allows it.
func (b *Board) Finalize(ctx context.Context, id uint) error {
	i := b.find(id)
	if i < 0 {
		return errors.New("pedido não está no quadro")
	}
	if b.Orders[i].Status != entity.StatusDelivered {
		return errors.New("apenas pedidos entregues podem ser finalizados")
	}

	archived, err := b.api.UpdateOrderStatus(ctx, id, entity.StatusArchived)
	if err != nil {
		return fmt.Errorf("finalizar pedido: %w", err)
	}
	b.Orders = append(b.Orders[:i], b.Orders[i+1:]...)
	b.syncAll(archived)
	return nil
}

// keepValidLines drops lines whose quantity fell below 1; decrementing to
// zero removes the line instead of storing a zero quantity.
func keepValidLines(lines []entity.OrderLine) []entity.OrderLine {
	out := make([]entity.OrderLine, 0, len(lines))
	for _, l := range lines {
		if l.Quantity >= 1 {
			out = append(out, l)
		}
	}
	return out
}

// CreateOrder validates locally, recomputes the total and submits; the
// server-assigned record is appended to the board.
func (b *Board) CreateOrder(ctx context.Context, customerID uint, lines []entity.OrderLine, channel entity.Channel, notes string) (entity.Order, error) {
	if customerID == 0 {
		return entity.Order{}, errors.New("selecione um cliente")
	}
	lines = keepValidLines(lines)
	if len(lines) == 0 {
		return entity.Order{}, errors.New("adicione pelo menos um item ao pedido")
	}
	if !channel.Valid() {
		return entity.Order{}, errors.New("canal inválido")
	}

	order := entity.Order{
		CustomerID: customerID,
		Channel:    channel,
		Notes:      notes,
		Lines:      lines,
	}
	order.RecalcTotal()

	created, err := b.api.CreateOrder(ctx, order)
	if err != nil {
		return entity.Order{}, fmt.Errorf("criar pedido: %w", err)
	}
	b.Orders = append(b.Orders, created)
	b.syncAll(created)
	return created, nil
}

// UpdateOrder replaces an order's lines and notes, recomputing the total
// before submission. The confirmed record replaces the local copy.
func (b *Board) UpdateOrder(ctx context.Context, id uint, lines []entity.OrderLine, notes string) (entity.Order, error) {
	i := b.find(id)
	if i < 0 {
		return entity.Order{}, errors.New("pedido não está no quadro")
	}
	lines = keepValidLines(lines)
	if len(lines) == 0 {
		return entity.Order{}, errors.New("adicione pelo menos um item ao pedido")
	}

	updated, err := b.api.UpdateOrder(ctx, id, OrderPatch{Notes: &notes, Lines: lines})
	if err != nil {
		return entity.Order{}, fmt.Errorf("atualizar pedido: %w", err)
	}
	b.Orders[i] = updated
	b.syncAll(updated)
	return updated, nil
}

// Summary computes the dashboard from the current snapshot, archived
// orders included.
func (b *Board) Summary(now time.Time) dashboard.Summary {
	return dashboard.Summarize(b.Customers, b.all, now)
}

// CustomerName resolves a customer id for card headers.
func (b *Board) CustomerName(id uint) string {
	for _, c := range b.Customers {
		if c.ID == id {
			return c.Name
		}
	}
	return "Cliente desconhecido"
}
