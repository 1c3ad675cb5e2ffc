package girl

import (
	"testing"

	"escort-cms/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestExportColumns(t *testing.T) {
	parentID := uint(1)
	section := model.GirlField{Name: "Maße", Slug: "masse", Type: model.FieldSection, Order: 0}
	section.ID = parentID
	child := model.GirlField{Name: "Größe", Slug: "groesse", Type: model.FieldNumber, Order: 0, ParentID: &parentID}
	top := model.GirlField{Name: "Name", Slug: "name", Type: model.FieldInput, Order: 1}

	// 先顶层字段，再分区子字段，分区本身不是数据列
	ordered := exportColumns([]model.GirlField{section, child, top})
	require.Len(t, ordered, 2)
	require.Equal(t, "name", ordered[0].Slug)
	require.Equal(t, "groesse", ordered[1].Slug)
}

func TestValueDisplay(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{"字符串", `"blond"`, "blond"},
		{"数字", `58.5`, "58.5"},
		{"整数无小数点", `172`, "172"},
		{"null 为空", `null`, ""},
		{"字符串列表拼接", `["deutsch","englisch"]`, "deutsch, englisch"},
		{"画廊取 URL", `[{"name":"a.jpg","url":"/medien/a.jpg"},{"name":"b.jpg","url":"/medien/b.jpg"}]`, "/medien/a.jpg, /medien/b.jpg"},
		{"空列表", `[]`, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, valueDisplay(datatypes.JSON(tc.raw)))
		})
	}
	require.Equal(t, "", valueDisplay(nil))
}
