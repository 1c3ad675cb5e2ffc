package setting

import (
	"escort-cms/internal/global/database"
	"escort-cms/internal/global/response"
	"escort-cms/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// SettingUpdateReq 定义更新设置请求的结构体，缺省项回落到默认值
type SettingUpdateReq struct {
	SiteName        *string `json:"site_name"`
	SiteDescription *string `json:"site_description"`
	AdminEmail      *string `json:"admin_email"`
	TimeZone        *string `json:"time_zone"`
	DateFormat      *string `json:"date_format"`
	TimeFormat      *string `json:"time_format"`

	LogoPath    *string `json:"logo_path"`
	FaviconPath *string `json:"favicon_path"`

	AllowRegistration        *bool   `json:"allow_registration"`
	DefaultRole              *string `json:"default_role"`
	RequireEmailVerification *bool   `json:"require_email_verification"`
	EnableTwoFactorAuth      *bool   `json:"enable_two_factor_auth"`
	PasswordMinLength        *int    `json:"password_min_length"`
	SessionTimeout           *int    `json:"session_timeout"`
}

// GetSetting 处理读取设置请求，单例行不存在时用默认值创建
func GetSetting(c *gin.Context) {
	var setting model.Setting
	err := database.DB.First(&setting, "id = ?", model.SettingID).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		setting = model.DefaultSetting()
		if err := database.DB.Create(&setting).Error; err != nil {
			log.Error("写入默认设置失败", "error", err)
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
	case err != nil:
		log.Error("查询设置失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, setting)
}

// UpdateSetting 处理更新设置请求，整组 upsert
func UpdateSetting(c *gin.Context) {
	var req SettingUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定更新设置请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	setting := model.DefaultSetting()
	if req.SiteName != nil {
		setting.SiteName = *req.SiteName
	}
	if req.SiteDescription != nil {
		setting.SiteDescription = *req.SiteDescription
	}
	if req.AdminEmail != nil {
		setting.AdminEmail = *req.AdminEmail
	}
	if req.TimeZone != nil {
		setting.TimeZone = *req.TimeZone
	}
	if req.DateFormat != nil {
		setting.DateFormat = *req.DateFormat
	}
	if req.TimeFormat != nil {
		setting.TimeFormat = *req.TimeFormat
	}
	if req.LogoPath != nil && *req.LogoPath != "" {
		setting.LogoPath = req.LogoPath
	}
	if req.FaviconPath != nil && *req.FaviconPath != "" {
		setting.FaviconPath = req.FaviconPath
	}
	if req.AllowRegistration != nil {
		setting.AllowRegistration = *req.AllowRegistration
	}
	if req.DefaultRole != nil {
		setting.DefaultRole = *req.DefaultRole
	}
	if req.RequireEmailVerification != nil {
		setting.RequireEmailVerification = *req.RequireEmailVerification
	}
	if req.EnableTwoFactorAuth != nil {
		setting.EnableTwoFactorAuth = *req.EnableTwoFactorAuth
	}
	if req.PasswordMinLength != nil {
		setting.PasswordMinLength = *req.PasswordMinLength
	}
	if req.SessionTimeout != nil {
		setting.SessionTimeout = *req.SessionTimeout
	}

	if err := database.DB.Save(&setting).Error; err != nil {
		log.Error("保存设置失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, setting)
}
