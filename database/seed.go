package database

import (
	"cafe_manager/constants"
	"cafe_manager/model"
	"log"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("123456cf"), 10)
	HashPassword := string(bytes)
	if err != nil {
		HashPassword = "123456cf"
	}

	members := []model.Member{
		{MemId: "admin", Password: HashPassword, MemNick: "Administrator", Role: constants.ROLE_ADMIN},
		{MemId: "cafeowner", Password: HashPassword, MemNick: "Around Owner", Role: constants.ROLE_CAFE},
	}
	for _, member := range members {
		if err := db.Where(model.Member{MemId: member.MemId}).FirstOrCreate(&member).Error; err != nil {
			log.Println("failed to seed member:", member.MemId, "error:", err)
		}
	}

	var owner model.Member
	if err := db.Where(model.Member{MemId: "cafeowner"}).First(&owner).Error; err != nil {
		log.Println("failed to load seed owner:", err)
		return
	}

	cafe := model.Cafe{
		CafeName: "Around Cafe",
		Slug:     slug.Make("Around Cafe"),
		MemNo:    owner.MemNo,
		Address:  "123 Coffee Street",
	}
	if err := db.Where(model.Cafe{Slug: cafe.Slug}).FirstOrCreate(&cafe).Error; err != nil {
		log.Println("failed to seed cafe:", err)
		return
	}

	menus := []model.CafeMenu{
		{CafeNo: cafe.CafeNo, MenuName: "Americano", Price: 3000, MenuImg: "americano.png"},
		{CafeNo: cafe.CafeNo, MenuName: "Cafe Latte", Price: 3500, MenuImg: "latte.png"},
		{CafeNo: cafe.CafeNo, MenuName: "Cheese Cake", Price: 5000, MenuImg: "cheesecake.png"},
	}
	for _, menu := range menus {
		if err := db.Where(model.CafeMenu{CafeNo: menu.CafeNo, MenuName: menu.MenuName}).FirstOrCreate(&menu).Error; err != nil {
			log.Println("failed to seed menu:", menu.MenuName, "error:", err)
		}
	}
}
