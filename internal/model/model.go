package model

import (
	"time"

	"gorm.io/gorm"
)

// Model 带软删除的基础模型，用于可恢复的实体
type Model struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

// Base 不带软删除的基础模型
// 字段定义、档案及其字段值需要真实删除语义：档案删除必须级联清掉值，
// 字段定义删除必须留下可检索的孤儿值，软删除会让这两者变得含糊
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
