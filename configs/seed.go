package configs

import (
	"log"
	"time"

	"github.com/VictorBevilacqua/ana-carla-gestor-railway/entity"
	"golang.org/x/crypto/bcrypt"
)

func SeedAdmin(email, password string) error {
	if email == "" || password == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		Name:     "Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// SeedMenu inserts the starting cardápio once.
func SeedMenu() error {
	var count int64
	db.Model(&entity.MenuItem{}).Count(&count)
	if count > 0 {
		return nil
	}

	items := []entity.MenuItem{
		{Category: entity.CategorySalad, Name: "Salada Caesar", Price: 22.00, Description: "Alface, frango, croutons e molho caesar", Active: true, Ordering: 1},
		{Category: entity.CategoryProtein, Name: "Frango Grelhado", Price: 28.00, Description: "Filé de frango grelhado com temperos", Active: true, Ordering: 2},
		{Category: entity.CategorySide, Name: "Cuscuz Marroquino", Price: 20.00, Description: "Cuscuz com legumes", Active: true, Ordering: 3},
		{Category: entity.CategoryDrink, Name: "Suco Detox", Price: 12.00, Description: "Suco verde detox", Active: true, Ordering: 4},
		{Category: entity.CategorySalad, Name: "Salada no Pote", Price: 18.00, Description: "Mix de folhas e vegetais", Active: true, Ordering: 5},
		{Category: entity.CategoryBowl, Name: "Bowl Low-Carb", Price: 26.00, Description: "Bowl com proteína e vegetais", Active: true, Ordering: 6},
	}
	return db.Create(&items).Error
}

// SeedDemo loads a small demo dataset for local development.
func SeedDemo() error {
	var count int64
	db.Model(&entity.Customer{}).Count(&count)
	if count > 0 {
		return nil
	}

	customers := []entity.Customer{
		{Name: "Marina Souza", Phones: "(19) 98765-4321", Email: "marina@email.com", Active: true},
		{Name: "Rodrigo Silva", Phones: "(19) 98765-4322", Active: true},
		{Name: "Juliana Costa", Phones: "(19) 98765-4323", Email: "juliana@email.com", Active: true},
		{Name: "Victor Bevilacqua", Phones: "(19) 98765-4324", Notes: "Cliente VIP", Active: true},
		{Name: "Carla Mendes", Phones: "(19) 98765-4325", Active: true},
	}
	if err := db.Create(&customers).Error; err != nil {
		return err
	}

	now := time.Now()
	delivered := now.Add(-26 * time.Hour)
	orders := []entity.Order{
		{
			CustomerID: customers[0].ID,
			Status:     entity.StatusReceived,
			Channel:    entity.ChannelWhatsApp,
			Lines: []entity.OrderLine{
				{Name: "Salada Caesar", Quantity: 2, UnitPrice: 22.00},
				{Name: "Suco Detox", Quantity: 1, UnitPrice: 12.00},
			},
		},
		{
			CustomerID: customers[2].ID,
			Status:     entity.StatusPreparing,
			Channel:    entity.ChannelPhone,
			Notes:      "Sem cebola",
			Lines: []entity.OrderLine{
				{Name: "Bowl Low-Carb", Quantity: 3, UnitPrice: 26.00},
			},
		},
		{
			CustomerID:  customers[3].ID,
			Status:      entity.StatusDelivered,
			Channel:     entity.ChannelInPerson,
			DeliveredAt: &delivered,
			Lines: []entity.OrderLine{
				{Name: "Bowl Low-Carb", Quantity: 1, UnitPrice: 26.00},
				{Name: "Suco Detox", Quantity: 1, UnitPrice: 12.00},
			},
		},
	}
	for i := range orders {
		orders[i].RecalcTotal()
		if err := db.Create(&orders[i]).Error; err != nil {
			return err
		}
	}
	return nil
}
