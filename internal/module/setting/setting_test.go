package setting

import (
	"testing"

	"escort-cms/internal/global/database"
	"escort-cms/internal/model"
	"escort-cms/test"

	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) {
	test.Setup(t)
	(&ModuleSetting{}).Init()
}

func TestGetSettingCreatesDefaults(t *testing.T) {
	setup(t)

	resp := test.DoRequest(t, GetSetting, nil)
	test.NoError(t, resp)
	var setting model.Setting
	test.DecodeData(t, resp, &setting)
	require.Equal(t, model.SettingID, setting.ID)
	require.Equal(t, "ESCORT-CMS", setting.SiteName)
	require.Equal(t, "Europe/Berlin", setting.TimeZone)

	// 默认行已经落库，再次读取不会重复创建
	resp = test.DoRequest(t, GetSetting, nil)
	test.NoError(t, resp)

	var count int64
	require.NoError(t, database.DB.Model(&model.Setting{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestUpdateSetting(t *testing.T) {
	setup(t)

	name := "Mein Studio"
	timeout := 60
	resp := test.DoRequest(t, UpdateSetting, SettingUpdateReq{
		SiteName:       &name,
		SessionTimeout: &timeout,
	})
	test.NoError(t, resp)
	var setting model.Setting
	test.DecodeData(t, resp, &setting)
	require.Equal(t, "Mein Studio", setting.SiteName)
	require.Equal(t, 60, setting.SessionTimeout)

	// 缺省项回落到默认值
	require.Equal(t, "Europe/Berlin", setting.TimeZone)

	var stored model.Setting
	require.NoError(t, database.DB.First(&stored, "id = ?", model.SettingID).Error)
	require.Equal(t, "Mein Studio", stored.SiteName)
}
