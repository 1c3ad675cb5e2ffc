package girl

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"escort-cms/internal/global/database"
	"escort-cms/internal/global/response"
	"escort-cms/internal/model"
	"escort-cms/internal/module/field"
	"escort-cms/tools"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"
)

// ExportGirls 导出全部档案为 xlsx，每个数据字段一列，列顺序跟随布局
func ExportGirls(c *gin.Context) {
	fields, err := field.LoadAll(c.Request.Context())
	if err != nil {
		log.Error("查询字段定义失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	ordered := exportColumns(fields)

	var girls []model.Girl
	if err := database.DB.Preload("Values").Preload("Club").
		Order("created_at desc").Find(&girls).Error; err != nil {
		log.Error("查询档案列表失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := "Girls"
	if _, err := f.NewSheet(sheet); err != nil {
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}
	_ = f.DeleteSheet("Sheet1")

	headers := []string{"ID", "创建时间", "场馆"}
	for _, def := range ordered {
		headers = append(headers, def.Name)
	}
	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			response.Fail(c, response.ErrServerInternal.WithOrigin(err))
			return
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			response.Fail(c, response.ErrServerInternal.WithOrigin(err))
			return
		}
	}

	for row, g := range girls {
		bySlug := map[string]datatypes.JSON{}
		for _, v := range g.Values {
			bySlug[v.FieldSlug] = v.Value
		}

		cells := []string{
			strconv.FormatUint(uint64(g.ID), 10),
			g.CreatedAt.Format("2006-01-02 15:04"),
		}
		if g.Club != nil {
			cells = append(cells, g.Club.Name)
		} else {
			cells = append(cells, "")
		}
		for _, def := range ordered {
			cells = append(cells, valueDisplay(bySlug[def.Slug]))
		}

		for col, value := range cells {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				response.Fail(c, response.ErrServerInternal.WithOrigin(err))
				return
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				response.Fail(c, response.ErrServerInternal.WithOrigin(err))
				return
			}
		}
	}

	filename := fmt.Sprintf("girls-%d.xlsx", time.Now().Unix())
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

// exportColumns 按布局顺序收集全部数据字段：先顶层字段，再逐个分区的子字段
func exportColumns(fields []model.GirlField) []model.GirlField {
	layout := field.ResolveLayout(fields)
	var ordered []model.GirlField
	for _, placed := range layout.TopLevel {
		ordered = append(ordered, placed.Field)
	}
	for _, section := range layout.Sections {
		for _, placed := range section.Children {
			ordered = append(ordered, placed.Field)
		}
	}
	return ordered
}

// valueDisplay 把归一化后的 JSON 值转成单元格文本
func valueDisplay(raw datatypes.JSON) string {
	if len(raw) == 0 {
		return ""
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			switch entry := item.(type) {
			case string:
				parts = append(parts, entry)
			case map[string]any:
				// 画廊条目取 URL
				if url, ok := entry["url"].(string); ok {
					parts = append(parts, url)
				}
			}
		}
		return strings.Join(parts, ", ")
	default:
		encoded, err := json.Marshal(val)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
}
