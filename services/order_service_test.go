package services

import (
	"fmt"
	"math"
	"testing"

	"github.com/VictorBevilacqua/ana-carla-gestor-railway/entity"
	"github.com/VictorBevilacqua/ana-carla-gestor-railway/repository"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testOrderService(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&entity.Customer{}, &entity.Order{}, &entity.OrderLine{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	svc := NewOrderService(db, repository.NewOrderRepository(db), repository.NewCustomerRepository(db))
	return svc, db
}

func seedCustomer(t *testing.T, db *gorm.DB) uint {
	t.Helper()
	c := entity.Customer{Name: "Maria Silva", Active: true}
	if err := db.Create(&c).Error; err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return c.ID
}

func TestCreateOrderComputesTotal(t *testing.T) {
	svc, db := testOrderService(t)
	customerID := seedCustomer(t, db)

	order, err := svc.Create(&CreateOrderReq{
		CustomerID: customerID,
		Channel:    "WHATSAPP",
		Lines: []OrderLineIn{
			{Name: "Salada Caesar", Quantity: 2, UnitPrice: 22.00},
			{Name: "Suco Detox", Quantity: 1, UnitPrice: 12.00},
		},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if order.Status != entity.StatusReceived {
		t.Errorf("Status = %s, want %s", order.Status, entity.StatusReceived)
	}
	if math.Abs(order.Total-56.00) > 1e-6 {
		t.Errorf("Total = %.6f, want 56.00", order.Total)
	}
	if len(order.Lines) != 2 {
		t.Errorf("stored %d lines, want 2", len(order.Lines))
	}
	if order.DeliveredAt != nil {
		t.Error("DeliveredAt set on a fresh order")
	}
}

func TestCreateOrderRejectsBadInput(t *testing.T) {
	svc, db := testOrderService(t)
	customerID := seedCustomer(t, db)

	if _, err := svc.Create(&CreateOrderReq{
		CustomerID: customerID,
		Channel:    "POMBO_CORREIO",
		Lines:      []OrderLineIn{{Name: "Bowl", Quantity: 1, UnitPrice: 25}},
	}); err == nil {
		t.Error("accepted an unknown channel")
	}

	if _, err := svc.Create(&CreateOrderReq{
		CustomerID: customerID + 99,
		Channel:    "WEB",
		Lines:      []OrderLineIn{{Name: "Bowl", Quantity: 1, UnitPrice: 25}},
	}); err == nil {
		t.Error("accepted an order for a missing customer")
	}

	if _, err := svc.Create(&CreateOrderReq{
		CustomerID: customerID,
		Channel:    "WEB",
		Lines:      []OrderLineIn{{Name: "Bowl", Quantity: 0, UnitPrice: 25}},
	}); err == nil {
		t.Error("accepted a zero-quantity line")
	}
}

func TestUpdateStatusStampsDeliveryOnce(t *testing.T) {
	svc, db := testOrderService(t)
	customerID := seedCustomer(t, db)

	order, err := svc.Create(&CreateOrderReq{
		CustomerID: customerID,
		Channel:    "PRESENCIAL",
		Lines:      []OrderLineIn{{Name: "Bowl Fit", Quantity: 1, UnitPrice: 28}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	order, err = svc.UpdateStatus(order.ID, "ENTREGUE")
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if order.DeliveredAt == nil {
		t.Fatal("first move to ENTREGUE did not stamp DeliveredAt")
	}
	stamped := *order.DeliveredAt

	// Moving away and back must keep the original stamp.
	if _, err := svc.UpdateStatus(order.ID, "PREPARANDO"); err != nil {
		t.Fatalf("UpdateStatus back: %v", err)
	}
	order, err = svc.UpdateStatus(order.ID, "ENTREGUE")
	if err != nil {
		t.Fatalf("UpdateStatus again: %v", err)
	}
	if order.DeliveredAt == nil {
		t.Fatal("DeliveredAt cleared by a later move")
	}
	if !order.DeliveredAt.Equal(stamped) {
		t.Errorf("DeliveredAt changed: %v -> %v", stamped, *order.DeliveredAt)
	}

	if _, err := svc.UpdateStatus(order.ID, "EM_VOO"); err == nil {
		t.Error("accepted an unknown status token")
	}
}

func TestUpdateOrderReplacesLinesAndTotal(t *testing.T) {
	svc, db := testOrderService(t)
	customerID := seedCustomer(t, db)

	order, err := svc.Create(&CreateOrderReq{
		CustomerID: customerID,
		Channel:    "TELEFONE",
		Lines:      []OrderLineIn{{Name: "Salada Caesar", Quantity: 1, UnitPrice: 22}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	notes := "sem cebola"
	order, err = svc.Update(order.ID, &UpdateOrderReq{
		Notes: &notes,
		Lines: []OrderLineIn{
			{Name: "Bowl Fit", Quantity: 2, UnitPrice: 28},
		},
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if math.Abs(order.Total-56.00) > 1e-6 {
		t.Errorf("Total = %.6f after line replacement, want 56.00", order.Total)
	}
	if len(order.Lines) != 1 || order.Lines[0].Name != "Bowl Fit" {
		t.Errorf("lines not replaced: %+v", order.Lines)
	}
	if order.Notes != "sem cebola" {
		t.Errorf("Notes = %q", order.Notes)
	}

	var count int64
	db.Model(&entity.OrderLine{}).Where("order_id = ?", order.ID).Count(&count)
	if count != 1 {
		t.Errorf("%d line rows in db, want 1", count)
	}
}

func TestDeleteOrderRemovesLines(t *testing.T) {
	svc, db := testOrderService(t)
	customerID := seedCustomer(t, db)

	order, err := svc.Create(&CreateOrderReq{
		CustomerID: customerID,
		Channel:    "WEB",
		Lines:      []OrderLineIn{{Name: "Suco Verde", Quantity: 3, UnitPrice: 10}},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(order.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(order.ID); err != ErrNotFound {
		t.Errorf("Get after delete = %v, want ErrNotFound", err)
	}

	var count int64
	db.Model(&entity.OrderLine{}).Where("order_id = ?", order.ID).Count(&count)
	if count != 0 {
		t.Errorf("%d orphan line rows left", count)
	}
}
