package model

import "gorm.io/datatypes"

// FieldType 动态字段类型，封闭枚举
// 新增类型属于封闭集扩展：归一化和布局解析都对类型做全量 switch
type FieldType string

const (
	FieldInput        FieldType = "INPUT"
	FieldTextarea     FieldType = "TEXTAREA"
	FieldNumber       FieldType = "NUMBER"
	FieldSelect       FieldType = "SELECT"
	FieldSelectSearch FieldType = "SELECT_SEARCH"
	FieldMultiselect  FieldType = "MULTISELECT"
	FieldGallery      FieldType = "GALLERY"
	// FieldSection 纯视觉分区容器，不承载数据
	FieldSection FieldType = "SECTION"
)

// Valid 判断是否为已知字段类型
func (t FieldType) Valid() bool {
	switch t {
	case FieldInput, FieldTextarea, FieldNumber, FieldSelect,
		FieldSelectSearch, FieldMultiselect, FieldGallery, FieldSection:
		return true
	}
	return false
}

// GirlField 动态字段定义，后台可配置
type GirlField struct {
	Base
	Name     string    `gorm:"type:varchar(150);not null" json:"name"`      // 显示名称
	Slug     string    `gorm:"type:varchar(60);uniqueIndex;not null" json:"slug"` // 机器键，和字段值做关联
	Type     FieldType `gorm:"type:varchar(20);not null" json:"type"`
	Required bool      `gorm:"default:false;not null" json:"required"`

	Placeholder *string `gorm:"type:varchar(255)" json:"placeholder"`
	HelpText    *string `gorm:"type:varchar(255)" json:"help_text"`

	// Options 类型相关的附加配置：SELECT*/MULTISELECT 为 {label,value} 列表，
	// GALLERY 为 {maxItems}，其余类型不使用
	Options datatypes.JSON `json:"options"`

	// Order 同一 parent 下的排序序号
	Order int `gorm:"column:sort_order;default:0;not null" json:"order"`
	// ParentID 所属分区，仅非 SECTION 字段可设置；分区不可再嵌套
	ParentID *uint `gorm:"index" json:"parent_id"`

	// ContainerColumns 分区的栅格列数（1-3），仅 SECTION 有效
	ContainerColumns *int `json:"container_columns"`
	// ColSpan 字段占用的列数（1-3），渲染时被钳制到容器宽度以内
	ColSpan *int `json:"col_span"`
}

// SelectOption SELECT*/MULTISELECT 的选项
type SelectOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// GalleryItem 画廊条目，Cover 标记代表图
type GalleryItem struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Title string `json:"title,omitempty"`
	Alt   string `json:"alt,omitempty"`
	Cover bool   `json:"cover,omitempty"`
}
