package field

import (
	"sort"

	"escort-cms/internal/model"
)

// topLevelColumns 顶层字段固定的栅格列数
const topLevelColumns = 3

// PlacedField 放置在栅格中的字段，Span 已钳制到所在栅格宽度以内
type PlacedField struct {
	Field model.GirlField `json:"field"`
	Span  int             `json:"span"`
}

// SectionLayout 一个分区及其排序后的子字段
type SectionLayout struct {
	Section  model.GirlField `json:"section"`
	Columns  int             `json:"columns"`
	Children []PlacedField   `json:"children"`
}

// Layout 渲染布局树：顶层字段加分区列表
type Layout struct {
	TopLevel []PlacedField   `json:"top_level"`
	Sections []SectionLayout `json:"sections"`
}

// ResolveLayout 由字段定义列表推导布局，纯函数，不做任何 I/O
// 指向不存在分区的字段不会出现在结果中（孤儿字段渲染端直接忽略）
func ResolveLayout(fields []model.GirlField) Layout {
	sorted := make([]model.GirlField, len(fields))
	copy(sorted, fields)
	// 按排序序号稳定排序，序号相同时保持插入顺序
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Order < sorted[j].Order
	})

	layout := Layout{
		TopLevel: []PlacedField{},
		Sections: []SectionLayout{},
	}

	childrenByParent := map[uint][]model.GirlField{}
	var sections []model.GirlField

	for _, f := range sorted {
		switch {
		case f.Type == model.FieldSection:
			sections = append(sections, f)
		case f.ParentID == nil:
			layout.TopLevel = append(layout.TopLevel, PlacedField{
				Field: f,
				Span:  clampSpan(f.ColSpan, topLevelColumns),
			})
		default:
			childrenByParent[*f.ParentID] = append(childrenByParent[*f.ParentID], f)
		}
	}

	for _, s := range sections {
		columns := clampColumns(s.ContainerColumns)
		children := childrenByParent[s.ID]
		placed := make([]PlacedField, 0, len(children))
		for _, child := range children {
			// 子字段不能在视觉上超出容器列数
			placed = append(placed, PlacedField{
				Field: child,
				Span:  clampSpan(child.ColSpan, columns),
			})
		}
		layout.Sections = append(layout.Sections, SectionLayout{
			Section:  s,
			Columns:  columns,
			Children: placed,
		})
	}

	return layout
}

func clampColumns(columns *int) int {
	if columns == nil {
		return 1
	}
	if *columns < 1 {
		return 1
	}
	if *columns > 3 {
		return 3
	}
	return *columns
}

func clampSpan(span *int, max int) int {
	if span == nil || *span < 1 {
		return 1
	}
	if *span > max {
		return max
	}
	return *span
}
