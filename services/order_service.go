package services

import (
	"errors"
	"time"

	"github.com/VictorBevilacqua/ana-carla-gestor-railway/entity"
	"github.com/VictorBevilacqua/ana-carla-gestor-railway/repository"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("not found")

type OrderService struct {
	DB           *gorm.DB
	Repo         *repository.OrderRepository
	CustomerRepo *repository.CustomerRepository
}

func NewOrderService(db *gorm.DB, repo *repository.OrderRepository, customerRepo *repository.CustomerRepository) *OrderService {
	return &OrderService{DB: db, Repo: repo, CustomerRepo: customerRepo}
}

// ----- DTOs from Controller -----

type OrderLineIn struct {
	ItemID    *uint   `json:"itemId"`
	Name      string  `json:"nome" binding:"required"`
	Quantity  int     `json:"quantidade" binding:"required,min=1"`
	UnitPrice float64 `json:"precoUnit" binding:"min=0"`
	Notes     string  `json:"observacoes"`
}

type CreateOrderReq struct {
	CustomerID uint          `json:"clienteId" binding:"required"`
	Channel    string        `json:"canal" binding:"required"`
	Notes      string        `json:"observacoes"`
	Lines      []OrderLineIn `json:"itens" binding:"required,min=1,dive"`
}

type UpdateOrderReq struct {
	Channel *string       `json:"canal"`
	Notes   *string       `json:"observacoes"`
	Lines   []OrderLineIn `json:"itens"`
}

func toLines(in []OrderLineIn) []entity.OrderLine {
	lines := make([]entity.OrderLine, 0, len(in))
	for _, l := range in {
		lines = append(lines, entity.OrderLine{
			ItemID:    l.ItemID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Notes:     l.Notes,
		})
	}
	return lines
}

func (s *OrderService) List(status *entity.Status) ([]entity.Order, error) {
	return s.Repo.List(status)
}

func (s *OrderService) Get(id uint) (*entity.Order, error) {
	o, err := s.Repo.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return o, err
}

// Create validates the request, recomputes the total from the lines and
// stores order plus lines in one transaction. The stored total is never
// taken from the client.
func (s *OrderService) Create(req *CreateOrderReq) (*entity.Order, error) {
	channel, err := entity.ParseChannel(req.Channel)
	if err != nil {
		return nil, err
	}

	ok, err := s.CustomerRepo.Exists(req.CustomerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("customer not found")
	}

	for _, l := range req.Lines {
		if l.Quantity < 1 {
			return nil, errors.New("line quantity must be at least 1")
		}
	}

	order := &entity.Order{
		CustomerID: req.CustomerID,
		Channel:    channel,
		Status:     entity.StatusReceived,
		Notes:      req.Notes,
		Lines:      toLines(req.Lines),
	}
	order.RecalcTotal()

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Create(tx, order)
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.Get(order.ID)
}

// Update applies a partial edit. When lines are provided the whole line set
// is replaced and the total recomputed.
func (s *OrderService) Update(id uint, req *UpdateOrderReq) (*entity.Order, error) {
	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Channel != nil {
		channel, err := entity.ParseChannel(*req.Channel)
		if err != nil {
			return nil, err
		}
		order.Channel = channel
	}
	if req.Notes != nil {
		order.Notes = *req.Notes
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if req.Lines != nil {
			for _, l := range req.Lines {
				if l.Quantity < 1 {
					return errors.New("line quantity must be at least 1")
				}
			}
			lines := toLines(req.Lines)
			if err := s.Repo.ReplaceLines(tx, order.ID, lines); err != nil {
				return err
			}
			order.Lines = lines
			order.RecalcTotal()
		}
		return tx.Model(&entity.Order{}).Where("id = ?", order.ID).
			Updates(map[string]any{
				"channel": order.Channel,
				"notes":   order.Notes,
				"total":   order.Total,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.Get(order.ID)
}

// UpdateStatus is the kanban move: a plain field update, valid from any
// status to any status. The first transition to ENTREGUE stamps the
// delivery timestamp; later moves never clear it.
func (s *OrderService) UpdateStatus(id uint, status string) (*entity.Order, error) {
	next, err := entity.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	order, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	prev := order.Status
	order.Status = next
	if next == entity.StatusDelivered && prev != entity.StatusDelivered && order.DeliveredAt == nil {
		now := time.Now()
		order.DeliveredAt = &now
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&entity.Order{}).Where("id = ?", order.ID).
			Updates(map[string]any{
				"status":       order.Status,
				"delivered_at": order.DeliveredAt,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.Get(order.ID)
}

func (s *OrderService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
