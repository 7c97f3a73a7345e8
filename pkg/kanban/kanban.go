// Package kanban partitions orders into the fixed board columns.
package kanban

import "github.com/VictorBevilacqua/ana-carla-gestor-railway/entity"

// Visible drops archived orders; everything else stays in input order.
func Visible(orders []entity.Order) []entity.Order {
	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status.OnBoard() {
			out = append(out, o)
		}
	}
	return out
}

// Group partitions orders by status, preserving relative order within each
// column. Every board column is present in the result, empty or not;
// archived orders are excluded.
func Group(orders []entity.Order) map[entity.Status][]entity.Order {
	cols := make(map[entity.Status][]entity.Order, len(entity.BoardColumns))
	for _, s := range entity.BoardColumns {
		cols[s] = []entity.Order{}
	}
	for _, o := range orders {
		if o.Status.OnBoard() {
			cols[o.Status] = append(cols[o.Status], o)
		}
	}
	return cols
}

// Column returns the orders of a single column, preserving input order.
func Column(orders []entity.Order, status entity.Status) []entity.Order {
	var out []entity.Order
	for _, o := range orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}
