package model

import "time"

type Member struct {
	MemNo     uint      `gorm:"primaryKey" json:"memNo"`
	MemId     string    `gorm:"unique;not null" json:"memId"`
	Password  string    `gorm:"not null" json:"-"`
	MemEmail  string    `json:"memEmail"`
	MemNick   string    `gorm:"not null" json:"memNick"`
	MemImg    string    `json:"memImg"`
	MemPoint  int       `gorm:"default:0" json:"memPoint"`
	Role      string    `gorm:"default:USER" json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type RegisterMemberInput struct {
	MemId    string `json:"memId" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
	MemEmail string `json:"memEmail" validate:"omitempty,email"`
	MemNick  string `json:"memNick" validate:"required"`
	MemImg   string `json:"memImg"`
}

type EditMemberInput struct {
	MemNick *string `json:"memNick"`
	MemImg  *string `json:"memImg"`
}

type MemberChangePassword struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=8"`
}
