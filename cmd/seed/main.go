// seed puebla la base de datos con el conjunto de demostración: tres
// usuarios (uno por rol), cinco categorías de equipos de red, cinco
// proveedores y cinco productos.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jdcastano/stock-control-api/internal/domain/entity"
	"github.com/jdcastano/stock-control-api/internal/infrastructure/postgres"
	"github.com/jdcastano/stock-control-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("cargar configuración: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("conexión a PostgreSQL: %v", err)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	now := time.Now()

	users := []struct {
		email, password, name, role string
	}{
		{"abc@mail.com", "adminpass", "Rachel Thomas", entity.RoleAdmin},
		{"non@mail.com", "managerpass", "Alex Jackson", entity.RoleManager},
		{"mmm@mail.com", "staffpass", "Peter Nelson", entity.RoleStaff},
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			fail("hash de password: %v", err)
		}
		if err := userRepo.Create(&entity.User{
			ID:           uuid.NewString(),
			Email:        u.email,
			PasswordHash: string(hash),
			Name:         u.name,
			Role:         u.role,
			CreatedAt:    now,
			UpdatedAt:    now,
		}); err != nil {
			fail("crear usuario %s: %v", u.email, err)
		}
	}

	categoryNames := []string{"Router", "Switch", "Modem", "Multiplexer", "Splitter"}
	categoryIDs := make(map[string]string, len(categoryNames))
	for _, name := range categoryNames {
		id := uuid.NewString()
		if err := categoryRepo.Create(&entity.Category{ID: id, Name: name, CreatedAt: now}); err != nil {
			fail("crear categoría %s: %v", name, err)
		}
		categoryIDs[name] = id
	}

	suppliers := []entity.Supplier{
		{Name: "Cisco", Email: "abcd@mail.com", Phone: "1234567890", Address: "Cisco HQ"},
		{Name: "HP", Email: "abhp@mail.com", Phone: "1980762345", Address: "HP HQ"},
		{Name: "Netgear", Email: "Neger@mail.com", Phone: "9256476541", Address: "Netgear HQ"},
		{Name: "Broadcom", Email: "brcom@mail.com", Phone: "1759731673", Address: "Broadcom HQ"},
		{Name: "BELL", Email: "blee@mail.com", Phone: "1256476893", Address: "Bell HQ"},
	}
	for i := range suppliers {
		suppliers[i].ID = uuid.NewString()
		suppliers[i].CreatedAt = now
		suppliers[i].UpdatedAt = now
		if err := supplierRepo.Create(&suppliers[i]); err != nil {
			fail("crear proveedor %s: %v", suppliers[i].Name, err)
		}
	}

	products := []struct {
		name, description, category string
		stock, reorder              int
		price                       string
		sku                         string
	}{
		{"Cisco ISR 1101", "ISR 1101 4 Ports GE Ethernet WAN Router", "Router", 500, 150, "1000.00", "XYZ123"},
		{"HP 5406zl", "HP ProCurve Switch 5406zl", "Switch", 300, 100, "2000.00", "ABC456"},
		{"DOCSIS 3.1 Cable Modem", "Superfast speeds up to 10 gigabits per second", "Modem", 200, 50, "150.00", "LMN789"},
		{"Cellular Duplexer Rx", "A multiplexer product that is RoHS6 compliant", "Multiplexer", 200, 50, "500.00", "DSC423"},
		{"SBB100 Splitter Trough Block", "Splitter block with copper-aluminium monopie", "Splitter", 400, 75, "300.00", "BGH678"},
	}
	for _, p := range products {
		price, err := decimal.NewFromString(p.price)
		if err != nil {
			fail("precio inválido %s: %v", p.price, err)
		}
		if err := productRepo.Create(&entity.Product{
			ID:           uuid.NewString(),
			Name:         p.name,
			Description:  p.description,
			CategoryID:   categoryIDs[p.category],
			CurrentStock: p.stock,
			ReorderPoint: p.reorder,
			Price:        price,
			SKU:          p.sku,
			CreatedAt:    now,
			UpdatedAt:    now,
		}); err != nil {
			fail("crear producto %s: %v", p.sku, err)
		}
	}

	fmt.Println("Base de datos poblada con datos de demostración.")
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
