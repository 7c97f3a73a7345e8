package services

import (
	"errors"
	"strings"

	"github.com/VictorBevilacqua/ana-carla-gestor-railway/entity"
	"github.com/VictorBevilacqua/ana-carla-gestor-railway/repository"
)

type CustomerService struct {
	repo *repository.CustomerRepository
}

func NewCustomerService(repo *repository.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

type CustomerIn struct {
	Name    string `json:"nome" binding:"required"`
	Phones  string `json:"telefones"`
	Email   string `json:"email"`
	Address string `json:"endereco"`
	Notes   string `json:"observacoes"`
	Active  *bool  `json:"ativo"`
}

func (s *CustomerService) List() ([]entity.Customer, error) {
	return s.repo.List()
}

func (s *CustomerService) Get(id uint) (*entity.Customer, error) {
	return s.repo.Get(id)
}

func (s *CustomerService) Create(in *CustomerIn) (*entity.Customer, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	c := &entity.Customer{
		Name:    name,
		Phones:  strings.TrimSpace(in.Phones),
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Address: in.Address,
		Notes:   in.Notes,
		Active:  true,
	}
	if in.Active != nil {
		c.Active = *in.Active
	}
	if err := s.repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CustomerService) Update(id uint, in *CustomerIn) (*entity.Customer, error) {
	c, err := s.repo.Get(id)
	if err != nil {
		return nil, err
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		c.Name = name
	}
	c.Phones = strings.TrimSpace(in.Phones)
	c.Email = strings.ToLower(strings.TrimSpace(in.Email))
	c.Address = in.Address
	c.Notes = in.Notes
	if in.Active != nil {
		c.Active = *in.Active
	}
	if err := s.repo.Save(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CustomerService) Delete(id uint) error {
	if _, err := s.repo.Get(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}
