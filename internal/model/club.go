package model

import "gorm.io/datatypes"

// Club 场馆实体，地址、联系方式和每周营业时间
type Club struct {
	Model
	Name        string `gorm:"type:varchar(150);not null" json:"name"`
	Street      string `gorm:"type:varchar(150);not null" json:"street"`
	HouseNumber string `gorm:"type:varchar(20);not null" json:"house_number"`
	ZipAndCity  string `gorm:"type:varchar(150);not null" json:"zip_and_city"`

	LogoPath      *string `gorm:"type:varchar(255)" json:"logo_path"`
	WatermarkPath *string `gorm:"type:varchar(255)" json:"watermark_path"`

	ClubPhone          *string `gorm:"type:varchar(50)" json:"club_phone"`
	ClubMobile         *string `gorm:"type:varchar(50)" json:"club_mobile"`
	ClubMobileWhatsApp bool    `gorm:"default:false;not null" json:"club_mobile_whatsapp"`
	ClubEmail          *string `gorm:"type:varchar(255)" json:"club_email"`

	JobPhone          *string `gorm:"type:varchar(50)" json:"job_phone"`
	JobMobile         *string `gorm:"type:varchar(50)" json:"job_mobile"`
	JobMobileWhatsApp bool    `gorm:"default:false;not null" json:"job_mobile_whatsapp"`
	JobEmail          *string `gorm:"type:varchar(255)" json:"job_email"`
	JobContactPerson  *string `gorm:"type:varchar(150)" json:"job_contact_person"`

	// OpeningHours 周一到周日七项 {open,close,closed}
	OpeningHours datatypes.JSON `json:"opening_hours"`
}

// OpeningHour 单个工作日的营业时间，时间格式 HH:MM，空串表示未填写
type OpeningHour struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}
