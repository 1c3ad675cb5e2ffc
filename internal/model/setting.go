package model

// SettingID 站点设置单例行的固定主键
const SettingID = "singleton"

// Setting 站点设置，全库只有一行
type Setting struct {
	ID string `gorm:"type:varchar(20);primaryKey" json:"id"`

	SiteName        string `gorm:"type:varchar(150);not null" json:"site_name"`
	SiteDescription string `gorm:"type:varchar(500);not null" json:"site_description"`
	AdminEmail      string `gorm:"type:varchar(255);not null" json:"admin_email"`
	TimeZone        string `gorm:"type:varchar(50);not null" json:"time_zone"`
	DateFormat      string `gorm:"type:varchar(20);not null" json:"date_format"`
	TimeFormat      string `gorm:"type:varchar(20);not null" json:"time_format"`

	LogoPath    *string `gorm:"type:varchar(255)" json:"logo_path"`
	FaviconPath *string `gorm:"type:varchar(255)" json:"favicon_path"`

	AllowRegistration        bool   `gorm:"default:true;not null" json:"allow_registration"`
	DefaultRole              string `gorm:"type:varchar(20);not null" json:"default_role"`
	RequireEmailVerification bool   `gorm:"default:true;not null" json:"require_email_verification"`
	EnableTwoFactorAuth      bool   `gorm:"default:false;not null" json:"enable_two_factor_auth"`
	PasswordMinLength        int    `gorm:"default:8;not null" json:"password_min_length"`
	SessionTimeout           int    `gorm:"default:30;not null" json:"session_timeout"`
}

// DefaultSetting 首次访问时落库的默认值
func DefaultSetting() Setting {
	return Setting{
		ID:                       SettingID,
		SiteName:                 "ESCORT-CMS",
		SiteDescription:          "Content Management System für Escort-Agenturen",
		AdminEmail:               "admin@example.com",
		TimeZone:                 "Europe/Berlin",
		DateFormat:               "dd.MM.yyyy",
		TimeFormat:               "HH:mm",
		AllowRegistration:        true,
		DefaultRole:              "author",
		RequireEmailVerification: true,
		EnableTwoFactorAuth:      false,
		PasswordMinLength:        8,
		SessionTimeout:           30,
	}
}
