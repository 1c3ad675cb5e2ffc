package model

type User struct {
	Model
	Email    string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password string `gorm:"type:varchar(255);not null" json:"-"`
	RoleID   int    `gorm:"default:0;not null" json:"role_id"`
	Name     string `gorm:"type:varchar(100)" json:"name"`
}
