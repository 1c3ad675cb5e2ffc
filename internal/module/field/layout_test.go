package field

import (
	"testing"

	"escort-cms/internal/model"

	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int    { return &n }
func uintPtr(n uint) *uint { return &n }

func makeField(id uint, slug string, fieldType model.FieldType, order int) model.GirlField {
	f := model.GirlField{
		Name:  slug,
		Slug:  slug,
		Type:  fieldType,
		Order: order,
	}
	f.ID = id
	return f
}

func TestResolveLayoutPartition(t *testing.T) {
	section := makeField(1, "masse", model.FieldSection, 1)
	section.ContainerColumns = intPtr(2)
	child := makeField(2, "groesse", model.FieldNumber, 0)
	child.ParentID = uintPtr(1)
	top := makeField(3, "name", model.FieldInput, 0)

	layout := ResolveLayout([]model.GirlField{section, child, top})

	require.Len(t, layout.TopLevel, 1)
	require.Equal(t, "name", layout.TopLevel[0].Field.Slug)

	require.Len(t, layout.Sections, 1)
	require.Equal(t, "masse", layout.Sections[0].Section.Slug)
	require.Equal(t, 2, layout.Sections[0].Columns)
	require.Len(t, layout.Sections[0].Children, 1)
	require.Equal(t, "groesse", layout.Sections[0].Children[0].Field.Slug)
}

func TestResolveLayoutOrdering(t *testing.T) {
	a := makeField(1, "a", model.FieldInput, 2)
	b := makeField(2, "b", model.FieldInput, 0)
	c := makeField(3, "c", model.FieldInput, 1)

	layout := ResolveLayout([]model.GirlField{a, b, c})

	require.Len(t, layout.TopLevel, 3)
	require.Equal(t, "b", layout.TopLevel[0].Field.Slug)
	require.Equal(t, "c", layout.TopLevel[1].Field.Slug)
	require.Equal(t, "a", layout.TopLevel[2].Field.Slug)
}

func TestResolveLayoutStableOnEqualOrder(t *testing.T) {
	// 序号相同时保持输入顺序
	a := makeField(1, "a", model.FieldInput, 0)
	b := makeField(2, "b", model.FieldInput, 0)
	layout := ResolveLayout([]model.GirlField{a, b})
	require.Equal(t, "a", layout.TopLevel[0].Field.Slug)
	require.Equal(t, "b", layout.TopLevel[1].Field.Slug)
}

func TestResolveLayoutClamp(t *testing.T) {
	section := makeField(1, "s", model.FieldSection, 0)
	section.ContainerColumns = intPtr(7) // 超过上限，钳制到 3
	wide := makeField(2, "wide", model.FieldInput, 0)
	wide.ParentID = uintPtr(1)
	wide.ColSpan = intPtr(5) // 超过容器宽度，钳制到容器列数

	zero := makeField(3, "zero", model.FieldInput, 1)
	zero.ColSpan = intPtr(0) // 非法值回落到 1

	topWide := makeField(4, "top-wide", model.FieldInput, 2)
	topWide.ColSpan = intPtr(9) // 顶层最多 3 列

	layout := ResolveLayout([]model.GirlField{section, wide, zero, topWide})

	require.Equal(t, 3, layout.Sections[0].Columns)
	require.Equal(t, 3, layout.Sections[0].Children[0].Span)
	require.Equal(t, 1, layout.TopLevel[0].Span)
	require.Equal(t, 3, layout.TopLevel[1].Span)
}

func TestResolveLayoutDefaultColumns(t *testing.T) {
	section := makeField(1, "s", model.FieldSection, 0)
	layout := ResolveLayout([]model.GirlField{section})
	require.Equal(t, 1, layout.Sections[0].Columns)
	require.Empty(t, layout.Sections[0].Children)
}

func TestResolveLayoutOrphanDropped(t *testing.T) {
	// 指向不存在分区的字段不出现在任何地方
	orphan := makeField(1, "orphan", model.FieldInput, 0)
	orphan.ParentID = uintPtr(99)
	top := makeField(2, "top", model.FieldInput, 1)

	layout := ResolveLayout([]model.GirlField{orphan, top})

	require.Len(t, layout.TopLevel, 1)
	require.Equal(t, "top", layout.TopLevel[0].Field.Slug)
	require.Empty(t, layout.Sections)
}
