package entity

import "fmt"

// Status is the wire token for an order's position in the kanban flow.
// Display labels are a separate concern; see Label and StatusFromLabel.
type Status string

const (
	StatusReceived  Status = "RECEBIDO"
	StatusPreparing Status = "PREPARANDO"
	StatusReady     Status = "PRONTO"
	StatusDelivered Status = "ENTREGUE"

	// StatusArchived removes an order from the board without deleting it.
	StatusArchived Status = "CANCELADO"
)

// BoardColumns is the fixed left-to-right column order of the board.
// StatusArchived is terminal and never shown as a column.
var BoardColumns = []Status{StatusReceived, StatusPreparing, StatusReady, StatusDelivered}

var statusLabels = map[Status]string{
	StatusReceived:  "Novo",
	StatusPreparing: "Em preparo",
	StatusReady:     "Pronto",
	StatusDelivered: "Entregue",
	StatusArchived:  "Finalizado",
}

func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// OnBoard reports whether orders with this status appear as board cards.
func (s Status) OnBoard() bool {
	return s.Valid() && s != StatusArchived
}

// Label returns the display name shown in the UI for this status.
func (s Status) Label() string {
	return statusLabels[s]
}

func ParseStatus(v string) (Status, error) {
	s := Status(v)
	if !s.Valid() {
		return "", fmt.Errorf("invalid status: %q", v)
	}
	return s, nil
}

// StatusFromLabel resolves a display label back to its wire token.
func StatusFromLabel(label string) (Status, bool) {
	for s, l := range statusLabels {
		if l == label {
			return s, true
		}
	}
	return "", false
}
