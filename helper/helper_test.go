package helper

import (
	"cafe_manager/model"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// a single connection keeps every tx on the same in-memory db
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&model.Member{},
		&model.Cafe{},
		&model.CafeMenu{},
		&model.Payment{},
		&model.OrderItem{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func createTestMember(t *testing.T, db *gorm.DB, memId string) model.Member {
	t.Helper()
	member := model.Member{
		MemId:    memId,
		Password: "hashed",
		MemNick:  memId + "_nick",
		MemImg:   memId + ".png",
	}
	if err := db.Create(&member).Error; err != nil {
		t.Fatalf("failed to create test member: %v", err)
	}
	return member
}

func createTestCafe(t *testing.T, db *gorm.DB, owner model.Member, name string) model.Cafe {
	t.Helper()
	cafe := model.Cafe{
		CafeName: name,
		Slug:     name,
		MemNo:    owner.MemNo,
	}
	if err := db.Create(&cafe).Error; err != nil {
		t.Fatalf("failed to create test cafe: %v", err)
	}
	return cafe
}

func createTestMenu(t *testing.T, db *gorm.DB, cafe model.Cafe, name string, price int) model.CafeMenu {
	t.Helper()
	menu := model.CafeMenu{
		CafeNo:   cafe.CafeNo,
		MenuName: name,
		MenuImg:  name + ".png",
		Price:    price,
	}
	if err := db.Create(&menu).Error; err != nil {
		t.Fatalf("failed to create test menu: %v", err)
	}
	return menu
}
