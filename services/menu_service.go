package services

import (
	"errors"
	"strings"

	"github.com/VictorBevilacqua/ana-carla-gestor-railway/entity"
	"github.com/VictorBevilacqua/ana-carla-gestor-railway/repository"
)

type MenuService struct {
	repo *repository.MenuRepository
}

func NewMenuService(repo *repository.MenuRepository) *MenuService {
	return &MenuService{repo: repo}
}

type MenuItemIn struct {
	Category    string  `json:"categoria" binding:"required"`
	Name        string  `json:"nome" binding:"required"`
	Price       float64 `json:"preco" binding:"required,gt=0"`
	Description string  `json:"descricao"`
	Active      *bool   `json:"ativo"`
	Ordering    int     `json:"ordem"`
}

func (s *MenuService) List(active *bool) ([]entity.MenuItem, error) {
	return s.repo.List(active)
}

func (s *MenuService) Create(in *MenuItemIn) (*entity.MenuItem, error) {
	category, err := entity.ParseCategory(in.Category)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, errors.New("name is required")
	}

	item := &entity.MenuItem{
		Category:    category,
		Name:        name,
		Price:       in.Price,
		Description: in.Description,
		Active:      true,
		Ordering:    in.Ordering,
	}
	if in.Active != nil {
		item.Active = *in.Active
	}
	if err := s.repo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update rewrites a menu item. Past order lines keep their own price
// snapshot, so a price change never touches order history.
func (s *MenuService) Update(id uint, in *MenuItemIn) (*entity.MenuItem, error) {
	item, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}

	category, err := entity.ParseCategory(in.Category)
	if err != nil {
		return nil, err
	}
	item.Category = category
	if name := strings.TrimSpace(in.Name); name != "" {
		item.Name = name
	}
	item.Price = in.Price
	item.Description = in.Description
	item.Ordering = in.Ordering
	if in.Active != nil {
		item.Active = *in.Active
	}

	if err := s.repo.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

// SetActive toggles availability without deleting; deactivation is
// independent of the item's order history.
func (s *MenuService) SetActive(id uint, active bool) (*entity.MenuItem, error) {
	if _, err := s.repo.Get(id); err != nil {
		return nil, err
	}
	if err := s.repo.SetActive(id, active); err != nil {
		return nil, err
	}
	return s.repo.Get(id)
}
