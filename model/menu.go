package model

import "time"

type CafeMenu struct {
	MenuNo    uint      `gorm:"primaryKey" json:"menuNo"`
	CafeNo    uint      `gorm:"not null;index" json:"cafeNo"`
	MenuName  string    `gorm:"not null" validate:"required" json:"menuName"`
	MenuImg   string    `json:"menuImg"`
	Price     int       `gorm:"not null" json:"price"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateMenuInput struct {
	MenuName string `json:"menuName" validate:"required"`
	MenuImg  string `json:"menuImg"`
	Price    int    `json:"price" validate:"required,gt=0"`
}

type EditMenuInput struct {
	MenuName *string `json:"menuName"`
	MenuImg  *string `json:"menuImg"`
	Price    *int    `json:"price"`
}
