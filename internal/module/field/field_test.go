package field

import (
	"fmt"
	"testing"

	"escort-cms/internal/global/database"
	"escort-cms/internal/global/response"
	"escort-cms/internal/model"
	"escort-cms/test"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func setup(t *testing.T) {
	test.Setup(t)
	(&ModuleField{}).Init()
}

func TestCreateFieldDerivesSlugAndOrder(t *testing.T) {
	setup(t)

	resp := test.DoRequest(t, CreateField, FieldCreateReq{Name: "Körbchen Größe", Type: model.FieldInput})
	test.NoError(t, resp)

	var created model.GirlField
	test.DecodeData(t, resp, &created)
	require.Equal(t, "koerbchen-groesse", created.Slug)
	require.Equal(t, 0, created.Order)

	// 不指定排序时追加到同组末尾
	resp = test.DoRequest(t, CreateField, FieldCreateReq{Name: "Haarfarbe", Type: model.FieldSelect})
	test.NoError(t, resp)
	test.DecodeData(t, resp, &created)
	require.Equal(t, 1, created.Order)
}

func TestCreateFieldDuplicateSlug(t *testing.T) {
	setup(t)

	resp := test.DoRequest(t, CreateField, FieldCreateReq{Name: "Alter", Type: model.FieldNumber})
	test.NoError(t, resp)

	resp = test.DoRequest(t, CreateField, FieldCreateReq{Name: "Anders", Slug: "alter", Type: model.FieldInput})
	test.ErrorEqual(t, response.ErrValidation, resp)

	// 冲突时什么都不落库
	var count int64
	require.NoError(t, database.DB.Model(&model.GirlField{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestCreateFieldUnknownType(t *testing.T) {
	setup(t)
	resp := test.DoRequest(t, CreateField, FieldCreateReq{Name: "Feld", Type: "CHECKBOX"})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}

func TestCreateFieldParentRules(t *testing.T) {
	setup(t)

	resp := test.DoRequest(t, CreateField, FieldCreateReq{Name: "Maße", Type: model.FieldSection})
	test.NoError(t, resp)
	var section model.GirlField
	test.DecodeData(t, resp, &section)

	// 普通字段可以放进分区
	resp = test.DoRequest(t, CreateField, FieldCreateReq{Name: "Größe", Type: model.FieldNumber, ParentID: &section.ID})
	test.NoError(t, resp)

	// 分区不可嵌套
	resp = test.DoRequest(t, CreateField, FieldCreateReq{Name: "Unterbereich", Type: model.FieldSection, ParentID: &section.ID})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)

	// parent 必须是分区字段
	resp = test.DoRequest(t, CreateField, FieldCreateReq{Name: "Gewicht", Type: model.FieldNumber})
	test.NoError(t, resp)
	var plain model.GirlField
	test.DecodeData(t, resp, &plain)

	resp = test.DoRequest(t, CreateField, FieldCreateReq{Name: "Schuhgröße", Type: model.FieldNumber, ParentID: &plain.ID})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)

	// parent 不存在
	missing := uint(999)
	resp = test.DoRequest(t, CreateField, FieldCreateReq{Name: "BH", Type: model.FieldNumber, ParentID: &missing})
	test.ErrorEqual(t, response.ErrNotFound, resp)
}

func TestUpdateFieldTriState(t *testing.T) {
	setup(t)

	help := "in cm"
	resp := test.DoRequest(t, CreateField, FieldCreateReq{Name: "Größe", Type: model.FieldNumber, HelpText: &help})
	test.NoError(t, resp)
	var created model.GirlField
	test.DecodeData(t, resp, &created)
	id := fmt.Sprint(created.ID)

	// 键缺失保持原值
	resp = test.DoRequestParams(t, UpdateField, map[string]any{"name": "Körpergröße"}, map[string]string{"id": id})
	test.NoError(t, resp)
	var updated model.GirlField
	test.DecodeData(t, resp, &updated)
	require.Equal(t, "Körpergröße", updated.Name)
	require.NotNil(t, updated.HelpText)
	require.Equal(t, "in cm", *updated.HelpText)

	// 键为 null 清空可空字段
	resp = test.DoRequestParams(t, UpdateField, map[string]any{"help_text": nil}, map[string]string{"id": id})
	test.NoError(t, resp)
	test.DecodeData(t, resp, &updated)
	require.Nil(t, updated.HelpText)
}

func TestUpdateFieldSlugConflict(t *testing.T) {
	setup(t)

	resp := test.DoRequest(t, CreateField, FieldCreateReq{Name: "Alter", Type: model.FieldNumber})
	test.NoError(t, resp)

	resp = test.DoRequest(t, CreateField, FieldCreateReq{Name: "Gewicht", Type: model.FieldNumber})
	test.NoError(t, resp)
	var second model.GirlField
	test.DecodeData(t, resp, &second)

	resp = test.DoRequestParams(t, UpdateField,
		map[string]any{"slug": "alter"},
		map[string]string{"id": fmt.Sprint(second.ID)})
	test.ErrorEqual(t, response.ErrValidation, resp)
}

func TestUpdateFieldNotFound(t *testing.T) {
	setup(t)
	resp := test.DoRequestParams(t, UpdateField, map[string]any{"name": "x"}, map[string]string{"id": "404"})
	test.ErrorEqual(t, response.ErrNotFound, resp)
}

func TestReorderFields(t *testing.T) {
	setup(t)

	resp := test.DoRequest(t, CreateField, FieldCreateReq{Name: "Maße", Type: model.FieldSection})
	test.NoError(t, resp)
	var section model.GirlField
	test.DecodeData(t, resp, &section)

	resp = test.DoRequest(t, CreateField, FieldCreateReq{Name: "Alter", Type: model.FieldNumber})
	test.NoError(t, resp)
	var alter model.GirlField
	test.DecodeData(t, resp, &alter)

	resp = test.DoRequest(t, CreateField, FieldCreateReq{Name: "Name", Type: model.FieldInput})
	test.NoError(t, resp)
	var name model.GirlField
	test.DecodeData(t, resp, &name)

	// 调整顺序并把 alter 移入分区
	resp = test.DoRequest(t, ReorderFields, ReorderReq{Items: []ReorderItem{
		{ID: name.ID, Order: 0},
		{ID: alter.ID, Order: 0, ParentID: &section.ID},
	}})
	test.NoError(t, resp)

	var moved model.GirlField
	require.NoError(t, database.DB.First(&moved, "id = ?", alter.ID).Error)
	require.NotNil(t, moved.ParentID)
	require.Equal(t, section.ID, *moved.ParentID)
	require.Equal(t, 0, moved.Order)

	// 移出分区：parent_id 为 null
	resp = test.DoRequest(t, ReorderFields, ReorderReq{Items: []ReorderItem{
		{ID: alter.ID, Order: 2},
	}})
	test.NoError(t, resp)
	require.NoError(t, database.DB.First(&moved, "id = ?", alter.ID).Error)
	require.Nil(t, moved.ParentID)
	require.Equal(t, 2, moved.Order)
}

func TestReorderFieldsUnknownIDRollsBack(t *testing.T) {
	setup(t)

	resp := test.DoRequest(t, CreateField, FieldCreateReq{Name: "Alter", Type: model.FieldNumber})
	test.NoError(t, resp)
	var alter model.GirlField
	test.DecodeData(t, resp, &alter)

	// 整批失败时第一条的更新也要回滚
	resp = test.DoRequest(t, ReorderFields, ReorderReq{Items: []ReorderItem{
		{ID: alter.ID, Order: 5},
		{ID: 999, Order: 0},
	}})
	test.ErrorEqual(t, response.ErrNotFound, resp)

	var unchanged model.GirlField
	require.NoError(t, database.DB.First(&unchanged, "id = ?", alter.ID).Error)
	require.Equal(t, 0, unchanged.Order)
}

func TestDeleteFieldKeepsValues(t *testing.T) {
	setup(t)

	resp := test.DoRequest(t, CreateField, FieldCreateReq{Name: "Alter", Type: model.FieldNumber})
	test.NoError(t, resp)
	var created model.GirlField
	test.DecodeData(t, resp, &created)

	girl := model.Girl{}
	require.NoError(t, database.DB.Create(&girl).Error)
	value := model.GirlFieldValue{GirlID: girl.ID, FieldSlug: created.Slug, Value: datatypes.JSON([]byte("25"))}
	require.NoError(t, database.DB.Create(&value).Error)

	resp = test.DoRequestParams(t, DeleteField, nil, map[string]string{"id": fmt.Sprint(created.ID)})
	test.NoError(t, resp)

	// 只删定义，已有值保留为孤儿数据
	var fieldCount, valueCount int64
	require.NoError(t, database.DB.Model(&model.GirlField{}).Count(&fieldCount).Error)
	require.NoError(t, database.DB.Model(&model.GirlFieldValue{}).Count(&valueCount).Error)
	require.EqualValues(t, 0, fieldCount)
	require.EqualValues(t, 1, valueCount)
}
