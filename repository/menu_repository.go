package repository

import (
	"github.com/VictorBevilacqua/ana-carla-gestor-railway/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

// List returns menu items in display order. A nil active filter returns
// everything, inactive items included; edit forms for old orders need them.
func (r *MenuRepository) List(active *bool) ([]entity.MenuItem, error) {
	q := r.DB.Order("ordering ASC, id ASC")
	if active != nil {
		q = q.Where("active = ?", *active)
	}
	var items []entity.MenuItem
	err := q.Find(&items).Error
	return items, err
}

func (r *MenuRepository) Get(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Create(item).Error
}

func (r *MenuRepository) Save(item *entity.MenuItem) error {
	return r.DB.Save(item).Error
}

func (r *MenuRepository) SetActive(id uint, active bool) error {
	return r.DB.Model(&entity.MenuItem{}).Where("id = ?", id).Update("active", active).Error
}
