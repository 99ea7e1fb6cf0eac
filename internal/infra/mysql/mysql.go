package mysql

import (
	"fmt"

	"canteen-service/internal/config"
	"canteen-service/internal/domain"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

func NewMySQL(cfg config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		cfg.MySQLUser, cfg.MySQLPassword, cfg.MySQLHost, cfg.MySQLPort, cfg.MySQLDatabase)
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			SingularTable: false,
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&domain.Role{},
		&domain.User{},
		&domain.Category{},
		&domain.MenuItem{},
		&domain.Status{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.CartItem{},
		&domain.PushSubscription{},
	); err != nil {
		return nil, err
	}

	if err := seed(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Fixed lookup rows. Menu categories get starter rows too; without them
// a fresh database rejects every menu create on the category FK.
var (
	seedRoles = []domain.Role{
		{ID: domain.RoleCustomer, Name: "customer"},
		{ID: domain.RoleAdmin, Name: "admin"},
	}
	seedStatuses = []domain.Status{
		{ID: domain.StatusPending, Name: "pending"},
		{ID: domain.StatusProcessing, Name: "processing"},
		{ID: domain.StatusReady, Name: "ready"},
		{ID: domain.StatusCompleted, Name: "completed"},
		{ID: domain.StatusRejected, Name: "rejected"},
		{ID: domain.StatusCancelled, Name: "cancelled"},
	}
	seedCategories = []domain.Category{
		{ID: 1, Name: "Makanan"},
		{ID: 2, Name: "Minuman"},
		{ID: 3, Name: "Snack"},
	}
)

// seed fills the lookup tables. FirstOrCreate keeps restarts idempotent.
func seed(db *gorm.DB) error {
	for _, r := range seedRoles {
		if err := db.Where(domain.Role{ID: r.ID}).FirstOrCreate(&r).Error; err != nil {
			return err
		}
	}

	for _, s := range seedStatuses {
		if err := db.Where(domain.Status{ID: s.ID}).FirstOrCreate(&s).Error; err != nil {
			return err
		}
	}

	for _, c := range seedCategories {
		if err := db.Where(domain.Category{ID: c.ID}).FirstOrCreate(&c).Error; err != nil {
			return err
		}
	}

	return nil
}
