package field

import (
	"context"
	"encoding/json"
	"strings"

	"escort-cms/internal/global/cache"
	"escort-cms/internal/global/database"
	"escort-cms/internal/global/response"
	"escort-cms/internal/model"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// FieldCreateReq 定义创建字段请求的结构体
type FieldCreateReq struct {
	Name             string          `json:"name" binding:"required,max=150"` // 字段显示名称
	Slug             string          `json:"slug" binding:"max=60"`           // 机器键，留空时由名称推导
	Type             model.FieldType `json:"type" binding:"required"`         // 字段类型
	Required         bool            `json:"required"`                        // 是否必填
	Placeholder      *string         `json:"placeholder"`                     // 占位提示
	HelpText         *string         `json:"help_text"`                       // 帮助文案
	Options          json.RawMessage `json:"options"`                         // 类型相关配置
	ParentID         *uint           `json:"parent_id"`                       // 所属分区
	ContainerColumns *int            `json:"container_columns"`               // 分区列数，仅 SECTION
	ColSpan          *int            `json:"col_span"`                        // 占用列数
	Order            *int            `json:"order"`                           // 排序序号，留空时追加到同组末尾
}

// ReorderReq 定义批量排序请求的结构体，同时用于拖拽排序和移入/移出分区
type ReorderReq struct {
	Items []ReorderItem `json:"items" binding:"required"`
}

type ReorderItem struct {
	ID       uint  `json:"id" binding:"required"`
	Order    int   `json:"order"`
	ParentID *uint `json:"parent_id"`
}

// LoadAll 返回全部字段定义，按排序序号升序；优先读缓存，未命中回源数据库
func LoadAll(ctx context.Context) ([]model.GirlField, error) {
	var fields []model.GirlField
	if cache.GetJSON(ctx, cache.FieldsKey, &fields) {
		return fields, nil
	}

	if err := database.DB.Order("sort_order asc, id asc").Find(&fields).Error; err != nil {
		return nil, err
	}

	if err := cache.SetJSON(ctx, cache.FieldsKey, fields); err != nil {
		log.Warn("写入字段缓存失败", "error", err)
	}
	return fields, nil
}

// invalidateCache 任何字段写操作之后都要让列表缓存失效
func invalidateCache(ctx context.Context) {
	if err := cache.Del(ctx, cache.FieldsKey); err != nil {
		log.Warn("清除字段缓存失败", "error", err)
	}
}

// ListFields 处理字段定义列表请求
func ListFields(c *gin.Context) {
	fields, err := LoadAll(c.Request.Context())
	if err != nil {
		log.Error("查询字段定义列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, gin.H{"items": fields})
}

// GetLayout 返回布局解析后的字段树
func GetLayout(c *gin.Context) {
	fields, err := LoadAll(c.Request.Context())
	if err != nil {
		log.Error("查询字段定义列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, ResolveLayout(fields))
}

// CreateField 处理创建字段定义请求
func CreateField(c *gin.Context) {
	var req FieldCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定创建字段请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	if !req.Type.Valid() {
		log.Warn("未知的字段类型", "type", req.Type)
		response.Fail(c, response.ErrInvalidRequest.WithTips("未知的字段类型"))
		return
	}

	// slug 留空时由名称推导
	slug := strings.TrimSpace(req.Slug)
	if slug == "" {
		slug = Slugify(req.Name)
	}
	if slug == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("无法从名称推导出有效的 slug"))
		return
	}

	// slug 全局唯一，冲突时什么都不落库
	var count int64
	if err := database.DB.Model(&model.GirlField{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	if count > 0 {
		log.Warn("slug 已被占用", "slug", slug)
		response.Fail(c, response.ErrValidation.WithTips("slug 已被占用"))
		return
	}

	if err := validateParent(database.DB, req.Type, req.ParentID); err != nil {
		response.Fail(c, err)
		return
	}

	// 未指定排序时追加到同组末尾
	order := 0
	if req.Order != nil {
		order = *req.Order
	} else {
		siblings := database.DB.Model(&model.GirlField{})
		if req.ParentID == nil {
			siblings = siblings.Where("parent_id IS NULL")
		} else {
			siblings = siblings.Where("parent_id = ?", *req.ParentID)
		}
		var siblingCount int64
		if err := siblings.Count(&siblingCount).Error; err != nil {
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
		order = int(siblingCount)
	}

	field := model.GirlField{
		Name:             req.Name,
		Slug:             slug,
		Type:             req.Type,
		Required:         req.Required,
		Placeholder:      req.Placeholder,
		HelpText:         req.HelpText,
		Options:          datatypes.JSON(req.Options),
		ParentID:         req.ParentID,
		ContainerColumns: req.ContainerColumns,
		ColSpan:          req.ColSpan,
		Order:            order,
	}

	if err := database.DB.Create(&field).Error; err != nil {
		log.Error("创建字段定义失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	invalidateCache(c.Request.Context())
	response.Success(c, field)
}

// UpdateField 处理更新字段定义请求
// 请求体按三态解析：键缺失保持原值，键为 null 清空可空字段
func UpdateField(c *gin.Context) {
	var field model.GirlField
	if err := database.DB.First(&field, "id = ?", c.Param("id")).Error; err != nil {
		log.Warn("字段定义不存在", "id", c.Param("id"))
		response.Fail(c, response.ErrNotFound.WithTips("字段定义不存在"))
		return
	}

	var patch map[string]json.RawMessage
	if err := json.NewDecoder(c.Request.Body).Decode(&patch); err != nil {
		log.Error("绑定更新字段请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	updates := map[string]any{}

	if raw, ok := patch["name"]; ok {
		var name string
		if err := json.Unmarshal(raw, &name); err != nil || name == "" {
			response.Fail(c, response.ErrInvalidRequest.WithTips("名称不能为空"))
			return
		}
		updates["name"] = name
	}

	if raw, ok := patch["slug"]; ok {
		var slug string
		if err := json.Unmarshal(raw, &slug); err != nil || slug == "" {
			response.Fail(c, response.ErrInvalidRequest.WithTips("slug 不能为空"))
			return
		}
		var count int64
		if err := database.DB.Model(&model.GirlField{}).
			Where("slug = ? AND id <> ?", slug, field.ID).Count(&count).Error; err != nil {
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
		if count > 0 {
			log.Warn("slug 已被占用", "slug", slug)
			response.Fail(c, response.ErrValidation.WithTips("slug 已被占用"))
			return
		}
		updates["slug"] = slug
	}

	if raw, ok := patch["type"]; ok {
		var t model.FieldType
		if err := json.Unmarshal(raw, &t); err != nil || !t.Valid() {
			response.Fail(c, response.ErrInvalidRequest.WithTips("未知的字段类型"))
			return
		}
		// 已在分区内的字段不能改成 SECTION，分区不可嵌套
		if t == model.FieldSection && field.ParentID != nil {
			response.Fail(c, response.ErrInvalidRequest.WithTips("分区不能嵌套在分区内"))
			return
		}
		updates["type"] = t
	}

	if raw, ok := patch["required"]; ok {
		var required bool
		if err := json.Unmarshal(raw, &required); err != nil {
			response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
			return
		}
		updates["required"] = required
	}

	// 可空字段：null 表示清空
	for key, column := range map[string]string{
		"placeholder":       "placeholder",
		"help_text":         "help_text",
		"options":           "options",
		"container_columns": "container_columns",
		"col_span":          "col_span",
	} {
		raw, ok := patch[key]
		if !ok {
			continue
		}
		if string(raw) == "null" {
			updates[column] = nil
			continue
		}
		updates[column] = rawColumnValue(column, raw)
	}

	if len(updates) == 0 {
		response.Success(c, field)
		return
	}

	if err := database.DB.Model(&field).Updates(updates).Error; err != nil {
		log.Error("更新字段定义失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	invalidateCache(c.Request.Context())

	if err := database.DB.First(&field, "id = ?", field.ID).Error; err != nil {
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, field)
}

// rawColumnValue 将原始 JSON 转为对应列的落库值
func rawColumnValue(column string, raw json.RawMessage) any {
	switch column {
	case "container_columns", "col_span":
		var n int
		if err := json.Unmarshal(raw, &n); err != nil {
			return nil
		}
		return n
	case "options":
		return datatypes.JSON(raw)
	default:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil
		}
		return s
	}
}

// ReorderFields 处理批量排序请求，整批在同一事务中生效
func ReorderFields(c *gin.Context) {
	var req ReorderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定排序请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Items {
			var field model.GirlField
			if err := tx.First(&field, "id = ?", item.ID).Error; err != nil {
				return response.ErrNotFound.WithTips("字段定义不存在").WithOrigin(err)
			}
			if err := validateParent(tx, field.Type, item.ParentID); err != nil {
				return err
			}

			updates := map[string]any{"sort_order": item.Order}
			if item.ParentID == nil {
				updates["parent_id"] = nil
			} else {
				updates["parent_id"] = *item.ParentID
			}
			if err := tx.Model(&model.GirlField{}).Where("id = ?", item.ID).Updates(updates).Error; err != nil {
				return response.ErrDatabase.WithOrigin(err)
			}
		}
		return nil
	})
	if err != nil {
		log.Error("批量排序失败", "error", err)
		response.Fail(c, err)
		return
	}

	invalidateCache(c.Request.Context())
	response.Success(c, gin.H{"ok": true})
}

// DeleteField 处理删除字段定义请求
// 只删除定义本身，已有的字段值保留为孤儿数据
func DeleteField(c *gin.Context) {
	var field model.GirlField
	if err := database.DB.First(&field, "id = ?", c.Param("id")).Error; err != nil {
		log.Warn("字段定义不存在", "id", c.Param("id"))
		response.Fail(c, response.ErrNotFound.WithTips("字段定义不存在"))
		return
	}

	if err := database.DB.Delete(&field).Error; err != nil {
		log.Error("删除字段定义失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	invalidateCache(c.Request.Context())
	response.Success(c, gin.H{"ok": true})
}

// validateParent 校验分区归属：parent 必须是已存在的 SECTION，且 SECTION 自身不能有 parent
func validateParent(db *gorm.DB, fieldType model.FieldType, parentID *uint) error {
	if parentID == nil {
		return nil
	}
	if fieldType == model.FieldSection {
		return response.ErrInvalidRequest.WithTips("分区不能嵌套在分区内")
	}
	var parent model.GirlField
	if err := db.First(&parent, "id = ?", *parentID).Error; err != nil {
		return response.ErrNotFound.WithTips("所属分区不存在").WithOrigin(err)
	}
	if parent.Type != model.FieldSection {
		return response.ErrInvalidRequest.WithTips("parent 必须是分区字段")
	}
	return nil
}
