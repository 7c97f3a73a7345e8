package repository

import (
	"github.com/VictorBevilacqua/ana-carla-gestor-railway/entity"
	"gorm.io/gorm"
)

type CustomerRepository struct {
	DB *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{DB: db}
}

func (r *CustomerRepository) List() ([]entity.Customer, error) {
	var customers []entity.Customer
	err := r.DB.Order("name ASC").Find(&customers).Error
	return customers, err
}

func (r *CustomerRepository) Get(id uint) (*entity.Customer, error) {
	var c entity.Customer
	if err := r.DB.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CustomerRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.Customer{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *CustomerRepository) Create(c *entity.Customer) error {
	return r.DB.Create(c).Error
}

func (r *CustomerRepository) Save(c *entity.Customer) error {
	return r.DB.Save(c).Error
}

func (r *CustomerRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Customer{}, id).Error
}
