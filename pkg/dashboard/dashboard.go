// Package dashboard computes point-in-time business metrics and heuristic
// alerts from order and customer collections. Everything here is a pure
// function of its inputs plus "now"; nothing mutates remote state. Records
// with missing dates are skipped per record rather than failing the whole
// computation.
package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/VictorBevilacqua/ana-carla-gestor-railway/entity"
)

const (
	trailingWindowDays = 30
	churnAfterDays     = 30
	staleInPrep        = 45 * time.Minute
	slowDayRatio       = 0.7
	maxAlerts          = 5
	maxNamesInAlert    = 3
)

// Alert is one triggered condition, ordered by rule priority.
type Alert struct {
	Title  string `json:"titulo"`
	Detail string `json:"descricao"`
}

// Summary bundles the KPI values shown on the dashboard.
type Summary struct {
	OrdersToday     int     `json:"pedidosHoje"`
	QueueCount      int     `json:"pedidosFila"`
	RevenueToday    float64 `json:"receitaHoje"`
	ActiveCustomers int     `json:"clientesAtivos"`
	TotalCustomers  int     `json:"totalClientes"`
	AverageTicket   float64 `json:"ticketMedio"`
	Alerts          []Alert `json:"alertas"`
}

func dayStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// OrdersToday returns orders created since local midnight.
func OrdersToday(orders []entity.Order, now time.Time) []entity.Order {
	start := dayStart(now)
	var out []entity.Order
	for _, o := range orders {
		if o.CreatedAt.IsZero() {
			continue
		}
		if !o.CreatedAt.Before(start) {
			out = append(out, o)
		}
	}
	return out
}

// RevenueToday sums the totals of today's orders that carry a delivery
// timestamp. An undelivered order contributes nothing.
func RevenueToday(ordersToday []entity.Order) float64 {
	var sum float64
	for _, o := range ordersToday {
		if o.DeliveredAt != nil {
			sum += o.Total
		}
	}
	return sum
}

func inTrailingWindow(o entity.Order, now time.Time) bool {
	if o.CreatedAt.IsZero() {
		return false
	}
	cutoff := dayStart(now).AddDate(0, 0, -trailingWindowDays)
	return !o.CreatedAt.Before(cutoff) && o.CreatedAt.Before(now)
}

// ActiveCustomers30d counts distinct customers with at least one order in
// the trailing 30 days.
func ActiveCustomers30d(orders []entity.Order, now time.Time) int {
	seen := make(map[uint]struct{})
	for _, o := range orders {
		if inTrailingWindow(o, now) {
			seen[o.CustomerID] = struct{}{}
		}
	}
	return len(seen)
}

// Delivered30d returns the trailing-window orders that were delivered.
func Delivered30d(orders []entity.Order, now time.Time) []entity.Order {
	var out []entity.Order
	for _, o := range orders {
		if inTrailingWindow(o, now) && o.DeliveredAt != nil {
			out = append(out, o)
		}
	}
	return out
}

// AverageTicket30d is revenue per delivered order over the trailing window,
// or 0 when nothing was delivered.
func AverageTicket30d(orders []entity.Order, now time.Time) float64 {
	delivered := Delivered30d(orders, now)
	if len(delivered) == 0 {
		return 0
	}
	var sum float64
	for _, o := range delivered {
		sum += o.Total
	}
	return sum / float64(len(delivered))
}

// LastOrderDates derives each customer's most recent order creation date.
// Derived every time rather than trusting a stored field.
func LastOrderDates(orders []entity.Order) map[uint]time.Time {
	last := make(map[uint]time.Time)
	for _, o := range orders {
		if o.CreatedAt.IsZero() {
			continue
		}
		if t, ok := last[o.CustomerID]; !ok || o.CreatedAt.After(t) {
			last[o.CustomerID] = o.CreatedAt
		}
	}
	return last
}

// Alerts evaluates the heuristic rules in fixed order, appending each
// triggered condition and capping the result for display.
func Alerts(customers []entity.Customer, orders []entity.Order, now time.Time) []Alert {
	var alerts []Alert

	// Rule 1: customers whose last order is 30+ days in the past.
	last := LastOrderDates(orders)
	var churned []string
	for _, c := range customers {
		t, ok := last[c.ID]
		if !ok {
			// Never ordered; nothing to win back yet.
			continue
		}
		if now.Sub(t) >= churnAfterDays*24*time.Hour {
			churned = append(churned, c.Name)
		}
	}
	if len(churned) > 0 {
		names := churned
		suffix := ""
		if len(names) > maxNamesInAlert {
			names = names[:maxNamesInAlert]
			suffix = "…"
		}
		alerts = append(alerts, Alert{
			Title:  fmt.Sprintf("%d cliente(s) sem pedido há 30+ dias", len(churned)),
			Detail: strings.Join(names, ", ") + suffix,
		})
	}

	// Rule 2: orders sitting in preparation for too long.
	stale := 0
	for _, o := range orders {
		if o.Status != entity.StatusPreparing || o.UpdatedAt.IsZero() {
			continue
		}
		if now.Sub(o.UpdatedAt) > staleInPrep {
			stale++
		}
	}
	if stale > 0 {
		alerts = append(alerts, Alert{
			Title:  fmt.Sprintf("%d pedido(s) em preparo há mais de 45min", stale),
			Detail: "Verifique o status da produção",
		})
	}

	// Rule 3: today's volume below 70% of the trailing-7-day average.
	// The 7 days strictly before today; never fires on an empty history.
	start := dayStart(now)
	weekAgo := start.AddDate(0, 0, -7)
	week := 0
	for _, o := range orders {
		if o.CreatedAt.IsZero() {
			continue
		}
		if !o.CreatedAt.Before(weekAgo) && o.CreatedAt.Before(start) {
			week++
		}
	}
	avg := float64(week) / 7
	today := len(OrdersToday(orders, now))
	if avg > 0 && float64(today) < avg*slowDayRatio {
		alerts = append(alerts, Alert{
			Title:  "Movimento abaixo da média",
			Detail: fmt.Sprintf("Hoje: %d pedidos vs média 7d: %.1f", today, avg),
		})
	}

	if len(alerts) > maxAlerts {
		alerts = alerts[:maxAlerts]
	}
	return alerts
}

// Summarize computes the full dashboard in one pass over the collections.
func Summarize(customers []entity.Customer, orders []entity.Order, now time.Time) Summary {
	today := OrdersToday(orders, now)
	queue := 0
	for _, o := range orders {
		if o.Status == entity.StatusReceived || o.Status == entity.StatusPreparing {
			queue++
		}
	}
	return Summary{
		OrdersToday:     len(today),
		QueueCount:      queue,
		RevenueToday:    RevenueToday(today),
		ActiveCustomers: ActiveCustomers30d(orders, now),
		TotalCustomers:  len(customers),
		AverageTicket:   AverageTicket30d(orders, now),
		Alerts:          Alerts(customers, orders, now),
	}
}
