package model

import "gorm.io/datatypes"

// Girl 档案实体，可变属性全部存放在 GirlFieldValue 中
type Girl struct {
	Base
	// ClubID 可选的所属场馆
	ClubID *uint `gorm:"index" json:"club_id"`
	Club   *Club `gorm:"foreignKey:ClubID" json:"club,omitempty"`

	Values []GirlFieldValue `gorm:"foreignKey:GirlID" json:"values"`
}

// GirlFieldValue 档案的一个字段值，(girl_id, field_slug) 逻辑唯一
// 字段定义删除后已有值不级联删除，渲染端按当前定义忽略孤儿值
type GirlFieldValue struct {
	Base
	GirlID    uint   `gorm:"uniqueIndex:idx_girl_slug;not null" json:"girl_id"`
	FieldSlug string `gorm:"type:varchar(60);uniqueIndex:idx_girl_slug;not null" json:"field_slug"`
	// Value 按写入时字段类型归一化后的 JSON 值
	Value datatypes.JSON `json:"value"`
}
