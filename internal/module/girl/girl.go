package girl

import (
	"encoding/json"

	"escort-cms/internal/global/database"
	"escort-cms/internal/global/response"
	"escort-cms/internal/model"
	"escort-cms/internal/module/field"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// listLimit 列表端点最多返回的档案数
const listLimit = 50

// GirlCreateReq 定义创建档案请求的结构体
type GirlCreateReq struct {
	// Values 扁平的 slug→提交值映射
	Values map[string]any `json:"values"`
}

// CreateGirl 处理创建档案请求
// 先做必填校验和归一化，通过后在一个事务里写入档案和全部字段值
func CreateGirl(c *gin.Context) {
	var req GirlCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定创建档案请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if req.Values == nil {
		req.Values = map[string]any{}
	}

	fields, err := field.LoadAll(c.Request.Context())
	if err != nil {
		log.Error("查询字段定义失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	// 必填校验：一次性聚合所有缺失字段，校验不过不产生任何写入
	if missing := ValidateRequired(fields, req.Values); len(missing) > 0 {
		log.Warn("必填字段缺失", "fields", missing)
		response.Fail(c, response.ErrValidation.WithFields(missing))
		return
	}

	bySlug := map[string]model.GirlField{}
	for _, f := range fields {
		bySlug[f.Slug] = f
	}

	// 归一化：未知 slug 和 SECTION 直接跳过
	type normalized struct {
		slug string
		raw  []byte
	}
	var entries []normalized
	for slug, rawValue := range req.Values {
		def, ok := bySlug[slug]
		if !ok {
			continue
		}
		value, persist := Normalize(def.Type, rawValue)
		if !persist {
			continue
		}
		encoded, err := json.Marshal(value)
		if err != nil {
			response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
			return
		}
		entries = append(entries, normalized{slug: slug, raw: encoded})
	}

	var girl model.Girl
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&girl).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		rows := make([]model.GirlFieldValue, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, model.GirlFieldValue{
				GirlID:    girl.ID,
				FieldSlug: e.slug,
				Value:     datatypes.JSON(e.raw),
			})
		}
		return tx.Create(&rows).Error
	})
	if err != nil {
		log.Error("创建档案失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{"id": girl.ID})
}

// ListGirls 处理档案列表请求，附带代表图缩略地址
func ListGirls(c *gin.Context) {
	var total int64
	if err := database.DB.Model(&model.Girl{}).Count(&total).Error; err != nil {
		log.Error("统计档案数量失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var girls []model.Girl
	if err := database.DB.Preload("Values").
		Order("created_at desc").Limit(listLimit).
		Find(&girls).Error; err != nil {
		log.Error("查询档案列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	fields, err := field.LoadAll(c.Request.Context())
	if err != nil {
		log.Error("查询字段定义失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	gallerySlugs := map[string]bool{}
	for _, f := range fields {
		if f.Type == model.FieldGallery {
			gallerySlugs[f.Slug] = true
		}
	}

	type girlItem struct {
		model.Girl
		Thumb string `json:"thumb,omitempty"`
	}
	items := make([]girlItem, 0, len(girls))
	for _, g := range girls {
		item := girlItem{Girl: g}
		for _, v := range g.Values {
			if !gallerySlugs[v.FieldSlug] {
				continue
			}
			var gallery []model.GalleryItem
			if err := json.Unmarshal(v.Value, &gallery); err != nil {
				continue
			}
			if url, ok := CoverURL(gallery); ok {
				item.Thumb = url
				break
			}
		}
		items = append(items, item)
	}

	response.Success(c, gin.H{"total": total, "items": items})
}

// GetGirl 处理获取单个档案请求，返回档案及其全部字段值
// 值不排序，展示顺序由布局解析在读取端处理
func GetGirl(c *gin.Context) {
	var girl model.Girl
	if err := database.DB.Preload("Values").Preload("Club").
		First(&girl, "id = ?", c.Param("id")).Error; err != nil {
		log.Warn("档案不存在", "id", c.Param("id"))
		response.Fail(c, response.ErrNotFound.WithTips("档案不存在"))
		return
	}
	response.Success(c, girl)
}

// UpdateGirl 处理更新档案请求
// 支持部分更新：club_id 三态（缺失不动，null 解除关联），values 按 slug 逐个插入或覆盖
// 部分更新不做必填校验，编辑单个字段无需重新提交整个档案
func UpdateGirl(c *gin.Context) {
	var girl model.Girl
	if err := database.DB.First(&girl, "id = ?", c.Param("id")).Error; err != nil {
		log.Warn("档案不存在", "id", c.Param("id"))
		response.Fail(c, response.ErrNotFound.WithTips("档案不存在"))
		return
	}

	var body map[string]json.RawMessage
	if err := json.NewDecoder(c.Request.Body).Decode(&body); err != nil {
		log.Error("绑定更新档案请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	// club_id 三态解析
	clubRaw, hasClubUpdate := body["club_id"]
	var newClubID *uint
	if hasClubUpdate && string(clubRaw) != "null" {
		var clubID uint
		if err := json.Unmarshal(clubRaw, &clubID); err != nil {
			response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
			return
		}
		var club model.Club
		if err := database.DB.First(&club, "id = ?", clubID).Error; err != nil {
			log.Warn("关联的场馆不存在", "club_id", clubID)
			response.Fail(c, response.ErrNotFound.WithTips("关联的场馆不存在"))
			return
		}
		newClubID = &clubID
	}

	var values map[string]any
	if raw, ok := body["values"]; ok && string(raw) != "null" {
		if err := json.Unmarshal(raw, &values); err != nil {
			response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
			return
		}
	}

	fields, err := field.LoadAll(c.Request.Context())
	if err != nil {
		log.Error("查询字段定义失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	bySlug := map[string]model.GirlField{}
	for _, f := range fields {
		bySlug[f.Slug] = f
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if hasClubUpdate {
			if err := tx.Model(&girl).Update("club_id", newClubID).Error; err != nil {
				return err
			}
		}

		for slug, rawValue := range values {
			var encoded []byte
			if def, ok := bySlug[slug]; ok {
				value, persist := Normalize(def.Type, rawValue)
				if !persist {
					continue
				}
				var err error
				if encoded, err = json.Marshal(value); err != nil {
					return err
				}
			} else {
				// 未知 slug 原样保存，和字段定义删除后的孤儿值行为保持一致
				var err error
				if encoded, err = json.Marshal(rawValue); err != nil {
					return err
				}
			}

			var existing model.GirlFieldValue
			err := tx.Where("girl_id = ? AND field_slug = ?", girl.ID, slug).First(&existing).Error
			switch {
			case err == nil:
				if err := tx.Model(&existing).Update("value", datatypes.JSON(encoded)).Error; err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				row := model.GirlFieldValue{
					GirlID:    girl.ID,
					FieldSlug: slug,
					Value:     datatypes.JSON(encoded),
				}
				if err := tx.Create(&row).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Error("更新档案失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{"ok": true})
}

// DeleteGirl 处理删除档案请求
// 字段值不能脱离档案存在：同一事务里先删值再删档案
func DeleteGirl(c *gin.Context) {
	var girl model.Girl
	if err := database.DB.First(&girl, "id = ?", c.Param("id")).Error; err != nil {
		log.Warn("档案不存在", "id", c.Param("id"))
		response.Fail(c, response.ErrNotFound.WithTips("档案不存在"))
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("girl_id = ?", girl.ID).Delete(&model.GirlFieldValue{}).Error; err != nil {
			return err
		}
		return tx.Delete(&girl).Error
	})
	if err != nil {
		log.Error("删除档案失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{"ok": true})
}
