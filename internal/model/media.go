package model

// Media 媒体文件的元数据记录，文件本体在磁盘上
type Media struct {
	Model
	Name        string  `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"` // 磁盘文件名
	URL         string  `gorm:"type:varchar(255);not null" json:"url"`
	Title       *string `gorm:"type:varchar(255)" json:"title"`
	Alt         *string `gorm:"type:varchar(255)" json:"alt"`
	Description *string `gorm:"type:varchar(500)" json:"description"`
}
