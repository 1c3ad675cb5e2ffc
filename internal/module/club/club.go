package club

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"escort-cms/internal/global/database"
	"escort-cms/internal/global/response"
	"escort-cms/internal/model"
	"escort-cms/tools"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"
)

// weekdays 营业时间允许的键
var weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// ClubCreateReq 定义创建场馆请求的结构体
type ClubCreateReq struct {
	Name        string `json:"name" binding:"required,max=150"`        // 场馆名称
	Street      string `json:"street" binding:"required,max=150"`      // 街道
	HouseNumber string `json:"house_number" binding:"required,max=20"` // 门牌号
	ZipAndCity  string `json:"zip_and_city" binding:"required,max=150"` // 邮编和城市

	LogoPath      string `json:"logo_path"`      // 标志图路径
	WatermarkPath string `json:"watermark_path"` // 水印图路径

	ClubPhone          string `json:"club_phone"`
	ClubMobile         string `json:"club_mobile"`
	ClubMobileWhatsApp bool   `json:"club_mobile_whatsapp"`
	ClubEmail          string `json:"club_email"`

	JobPhone          string `json:"job_phone"`
	JobMobile         string `json:"job_mobile"`
	JobMobileWhatsApp bool   `json:"job_mobile_whatsapp"`
	JobEmail          string `json:"job_email"`
	JobContactPerson  string `json:"job_contact_person"`

	OpeningHours map[string]model.OpeningHour `json:"opening_hours"` // 每周营业时间
}

// ClubUpdateReq 定义更新场馆请求的结构体，使用指针类型支持部分更新
// 可空字段传空串表示清空
type ClubUpdateReq struct {
	Name        *string `json:"name" binding:"omitempty,max=150"`
	Street      *string `json:"street" binding:"omitempty,max=150"`
	HouseNumber *string `json:"house_number" binding:"omitempty,max=20"`
	ZipAndCity  *string `json:"zip_and_city" binding:"omitempty,max=150"`

	LogoPath      *string `json:"logo_path"`
	WatermarkPath *string `json:"watermark_path"`

	ClubPhone          *string `json:"club_phone"`
	ClubMobile         *string `json:"club_mobile"`
	ClubMobileWhatsApp *bool   `json:"club_mobile_whatsapp"`
	ClubEmail          *string `json:"club_email"`

	JobPhone          *string `json:"job_phone"`
	JobMobile         *string `json:"job_mobile"`
	JobMobileWhatsApp *bool   `json:"job_mobile_whatsapp"`
	JobEmail          *string `json:"job_email"`
	JobContactPerson  *string `json:"job_contact_person"`

	OpeningHours *map[string]model.OpeningHour `json:"opening_hours"`
}

// CreateClub 处理创建场馆请求
func CreateClub(c *gin.Context) {
	var req ClubCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定创建场馆请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	hours, err := encodeOpeningHours(req.OpeningHours)
	if err != nil {
		response.Fail(c, err)
		return
	}

	club := model.Club{
		Name:               req.Name,
		Street:             req.Street,
		HouseNumber:        req.HouseNumber,
		ZipAndCity:         req.ZipAndCity,
		LogoPath:           optional(req.LogoPath),
		WatermarkPath:      optional(req.WatermarkPath),
		ClubPhone:          optional(req.ClubPhone),
		ClubMobile:         optional(req.ClubMobile),
		ClubMobileWhatsApp: req.ClubMobileWhatsApp,
		ClubEmail:          optional(req.ClubEmail),
		JobPhone:           optional(req.JobPhone),
		JobMobile:          optional(req.JobMobile),
		JobMobileWhatsApp:  req.JobMobileWhatsApp,
		JobEmail:           optional(req.JobEmail),
		JobContactPerson:   optional(req.JobContactPerson),
		OpeningHours:       hours,
	}

	if err := database.DB.Create(&club).Error; err != nil {
		log.Error("创建场馆失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, club)
}

// ListClubs 处理场馆列表请求
func ListClubs(c *gin.Context) {
	var clubs []model.Club
	if err := database.DB.Order("created_at desc").Find(&clubs).Error; err != nil {
		log.Error("查询场馆列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, gin.H{"items": clubs})
}

// GetClub 处理场馆详情请求
func GetClub(c *gin.Context) {
	var club model.Club
	if err := database.DB.First(&club, "id = ?", c.Param("id")).Error; err != nil {
		log.Warn("场馆不存在", "id", c.Param("id"))
		response.Fail(c, response.ErrNotFound.WithTips("场馆不存在"))
		return
	}
	response.Success(c, club)
}

// UpdateClub 处理更新场馆请求
func UpdateClub(c *gin.Context) {
	var club model.Club
	if err := database.DB.First(&club, "id = ?", c.Param("id")).Error; err != nil {
		log.Warn("场馆不存在", "id", c.Param("id"))
		response.Fail(c, response.ErrNotFound.WithTips("场馆不存在"))
		return
	}

	var req ClubUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定更新场馆请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if req.Name != nil {
		club.Name = *req.Name
	}
	if req.Street != nil {
		club.Street = *req.Street
	}
	if req.HouseNumber != nil {
		club.HouseNumber = *req.HouseNumber
	}
	if req.ZipAndCity != nil {
		club.ZipAndCity = *req.ZipAndCity
	}
	if req.LogoPath != nil {
		club.LogoPath = optional(*req.LogoPath)
	}
	if req.WatermarkPath != nil {
		club.WatermarkPath = optional(*req.WatermarkPath)
	}
	if req.ClubPhone != nil {
		club.ClubPhone = optional(*req.ClubPhone)
	}
	if req.ClubMobile != nil {
		club.ClubMobile = optional(*req.ClubMobile)
	}
	if req.ClubMobileWhatsApp != nil {
		club.ClubMobileWhatsApp = *req.ClubMobileWhatsApp
	}
	if req.ClubEmail != nil {
		club.ClubEmail = optional(*req.ClubEmail)
	}
	if req.JobPhone != nil {
		club.JobPhone = optional(*req.JobPhone)
	}
	if req.JobMobile != nil {
		club.JobMobile = optional(*req.JobMobile)
	}
	if req.JobMobileWhatsApp != nil {
		club.JobMobileWhatsApp = *req.JobMobileWhatsApp
	}
	if req.JobEmail != nil {
		club.JobEmail = optional(*req.JobEmail)
	}
	if req.JobContactPerson != nil {
		club.JobContactPerson = optional(*req.JobContactPerson)
	}
	if req.OpeningHours != nil {
		hours, err := encodeOpeningHours(*req.OpeningHours)
		if err != nil {
			response.Fail(c, err)
			return
		}
		club.OpeningHours = hours
	}

	if err := database.DB.Save(&club).Error; err != nil {
		log.Error("更新场馆失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, club)
}

// DeleteClub 处理删除场馆请求
func DeleteClub(c *gin.Context) {
	var club model.Club
	if err := database.DB.First(&club, "id = ?", c.Param("id")).Error; err != nil {
		log.Warn("场馆不存在", "id", c.Param("id"))
		response.Fail(c, response.ErrNotFound.WithTips("场馆不存在"))
		return
	}

	if err := database.DB.Delete(&club).Error; err != nil {
		log.Error("删除场馆失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{"ok": true})
}

// ClubExportRow 导出 xlsx 的行结构
type ClubExportRow struct {
	ID         uint   `excel:"ID"`
	Name       string `excel:"名称"`
	Street     string `excel:"街道"`
	ZipAndCity string `excel:"邮编城市"`
	Phone      string `excel:"电话"`
	Email      string `excel:"邮箱"`
	CreatedAt  string `excel:"创建时间"`
}

// ExportClubs 导出全部场馆为 xlsx
func ExportClubs(c *gin.Context) {
	var clubs []model.Club
	if err := database.DB.Order("created_at desc").Find(&clubs).Error; err != nil {
		log.Error("查询场馆列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	rows := make([]ClubExportRow, 0, len(clubs))
	for _, club := range clubs {
		rows = append(rows, ClubExportRow{
			ID:         club.ID,
			Name:       club.Name,
			Street:     club.Street + " " + club.HouseNumber,
			ZipAndCity: club.ZipAndCity,
			Phone:      deref(club.ClubPhone),
			Email:      deref(club.ClubEmail),
			CreatedAt:  club.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := tools.ExportToExcel(f, "Clubs", rows); err != nil {
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}
	_ = f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("clubs-%d.xlsx", time.Now().Unix())
	path := filepath.Join(os.TempDir(), filename)
	if err := f.SaveAs(path); err != nil {
		log.Error("写入导出文件失败", "error", err)
		response.Fail(c, response.ErrStorage.WithOrigin(err))
		return
	}
	defer os.Remove(path)

	if err := tools.SendStoredFile(c, path, filename, tools.ExcelContentType); err != nil {
		log.Error("发送导出文件失败", "error", err)
	}
}

// encodeOpeningHours 校验并序列化营业时间，键必须是周一到周日，时间格式 HH:MM
func encodeOpeningHours(hours map[string]model.OpeningHour) (datatypes.JSON, error) {
	if hours == nil {
		return datatypes.JSON("{}"), nil
	}
	allowed := map[string]bool{}
	for _, day := range weekdays {
		allowed[day] = true
	}
	for day, entry := range hours {
		if !allowed[day] {
			return nil, response.ErrInvalidRequest.WithTips("未知的星期键: " + day)
		}
		for _, clock := range []string{entry.Open, entry.Close} {
			if clock == "" {
				continue
			}
			if _, err := time.Parse("15:04", clock); err != nil {
				return nil, response.ErrInvalidRequest.WithTips("营业时间格式错误，应为 HH:MM")
			}
		}
	}
	encoded, err := json.Marshal(hours)
	if err != nil {
		return nil, response.ErrInvalidRequest.WithOrigin(err)
	}
	return datatypes.JSON(encoded), nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
