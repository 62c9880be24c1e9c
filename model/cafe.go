package model

import "time"

type Cafe struct {
	CafeNo    uint      `gorm:"primaryKey" json:"cafeNo"`
	CafeName  string    `gorm:"not null" validate:"required" json:"cafeName"`
	Slug      string    `gorm:"uniqueIndex" json:"slug"`
	MemNo     uint      `gorm:"not null" json:"memNo"`
	Member    Member    `gorm:"foreignKey:MemNo;references:MemNo" json:"-"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CafeImg   string    `json:"cafeImg"`
	Menus     []CafeMenu `gorm:"foreignKey:CafeNo;references:CafeNo;constraint:OnDelete:CASCADE" json:"menus"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type Cafes []Cafe

type FilterCafe struct {
	Pagination
	SearchKey string `json:"searchKey"`
}

type CreateCafeInput struct {
	CafeName string `json:"cafeName" validate:"required"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	CafeImg  string `json:"cafeImg"`
}

type EditCafeInput struct {
	CafeName *string `json:"cafeName"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	CafeImg  *string `json:"cafeImg"`
}
