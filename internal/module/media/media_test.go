package media

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"escort-cms/internal/global/database"
	"escort-cms/internal/global/response"
	"escort-cms/internal/model"
	"escort-cms/test"

	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) {
	test.Setup(t)
	(&ModuleMedia{}).Init()
}

// seedFile 直接往媒体目录写文件并设置修改时间
func seedFile(t *testing.T, name string, modTime time.Time) {
	path := filepath.Join(store.Dir, name)
	require.NoError(t, os.WriteFile(path, []byte("data"), 0o644))
	require.NoError(t, os.Chtimes(path, modTime, modTime))
}

type listData struct {
	Items      []MediaItem `json:"items"`
	Total      int         `json:"total"`
	Page       int         `json:"page"`
	PageSize   int         `json:"page_size"`
	TotalPages int         `json:"total_pages"`
}

func listNames(items []MediaItem) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}

func TestListMediaSortAndPaging(t *testing.T) {
	setup(t)

	now := time.Now()
	seedFile(t, "b.jpg", now.Add(-2*time.Hour))
	seedFile(t, "a.jpg", now.Add(-1*time.Hour))
	seedFile(t, "c.mp4", now)

	resp := test.DoRequestQuery(t, ListMedia, "sort=name_asc")
	test.NoError(t, resp)
	var data listData
	test.DecodeData(t, resp, &data)
	require.Equal(t, 3, data.Total)
	require.Equal(t, []string{"a.jpg", "b.jpg", "c.mp4"}, listNames(data.Items))

	resp = test.DoRequestQuery(t, ListMedia, "sort=date_desc")
	test.NoError(t, resp)
	test.DecodeData(t, resp, &data)
	require.Equal(t, []string{"c.mp4", "a.jpg", "b.jpg"}, listNames(data.Items))

	// 分页
	resp = test.DoRequestQuery(t, ListMedia, "page=2&page_size=2")
	test.NoError(t, resp)
	test.DecodeData(t, resp, &data)
	require.Equal(t, 2, data.TotalPages)
	require.Equal(t, []string{"c.mp4"}, listNames(data.Items))

	// 页码越界回落到最后一页
	resp = test.DoRequestQuery(t, ListMedia, "page=99&page_size=2")
	test.NoError(t, resp)
	test.DecodeData(t, resp, &data)
	require.Equal(t, 2, data.Page)
}

func TestListMediaTypeFilter(t *testing.T) {
	setup(t)

	now := time.Now()
	seedFile(t, "a.jpg", now)
	seedFile(t, "b.mp4", now)
	seedFile(t, "c.txt", now)

	resp := test.DoRequestQuery(t, ListMedia, "type=image")
	test.NoError(t, resp)
	var data listData
	test.DecodeData(t, resp, &data)
	require.Equal(t, []string{"a.jpg"}, listNames(data.Items))

	resp = test.DoRequestQuery(t, ListMedia, "type=video")
	test.NoError(t, resp)
	test.DecodeData(t, resp, &data)
	require.Equal(t, []string{"b.mp4"}, listNames(data.Items))
}

func TestListMediaSearch(t *testing.T) {
	setup(t)

	now := time.Now()
	seedFile(t, "strand.jpg", now)
	seedFile(t, "studio.jpg", now)

	// 元数据标题命中也算搜索结果
	title := "Am Strand"
	require.NoError(t, database.DB.Create(&model.Media{Name: "studio.jpg", URL: "/medien/studio.jpg", Title: &title}).Error)

	resp := test.DoRequestQuery(t, ListMedia, "q=strand")
	test.NoError(t, resp)
	var data listData
	test.DecodeData(t, resp, &data)
	require.Equal(t, []string{"strand.jpg", "studio.jpg"}, listNames(data.Items))

	resp = test.DoRequestQuery(t, ListMedia, "q=fehlt")
	test.NoError(t, resp)
	test.DecodeData(t, resp, &data)
	require.Empty(t, data.Items)
}

func TestUpdateMediaUpsertsMeta(t *testing.T) {
	setup(t)

	title := "Titel"
	alt := "Alt-Text"
	resp := test.DoRequest(t, UpdateMedia, MediaUpdateReq{Name: "foto.jpg", Title: &title, Alt: &alt})
	test.NoError(t, resp)

	var meta model.Media
	require.NoError(t, database.DB.Where("name = ?", "foto.jpg").First(&meta).Error)
	require.Equal(t, "Titel", *meta.Title)
	require.Equal(t, "Alt-Text", *meta.Alt)

	// 再次提交为覆盖
	newTitle := "Neuer Titel"
	resp = test.DoRequest(t, UpdateMedia, MediaUpdateReq{Name: "foto.jpg", Title: &newTitle})
	test.NoError(t, resp)

	require.NoError(t, database.DB.Where("name = ?", "foto.jpg").First(&meta).Error)
	require.Equal(t, "Neuer Titel", *meta.Title)
	require.Nil(t, meta.Alt)

	var count int64
	require.NoError(t, database.DB.Model(&model.Media{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestDeleteMediaRemovesRowAndFile(t *testing.T) {
	setup(t)

	seedFile(t, "foto.jpg", time.Now())
	require.NoError(t, database.DB.Create(&model.Media{Name: "foto.jpg", URL: "/medien/foto.jpg"}).Error)

	resp := test.DoRequestParams(t, DeleteMedia, nil, map[string]string{"name": "foto.jpg"})
	test.NoError(t, resp)

	var count int64
	require.NoError(t, database.DB.Unscoped().Model(&model.Media{}).Where("name = ?", "foto.jpg").Count(&count).Error)
	require.EqualValues(t, 0, count)

	_, err := os.Stat(filepath.Join(store.Dir, "foto.jpg"))
	require.True(t, os.IsNotExist(err))
}

func TestImportMedia(t *testing.T) {
	setup(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("bilddaten"))
	}))
	defer server.Close()

	resp := test.DoRequest(t, ImportMedia, MediaImportReq{URL: server.URL + "/bilder/foto.jpg"})
	test.NoError(t, resp)
	var data struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	}
	test.DecodeData(t, resp, &data)
	require.Equal(t, "foto.jpg", data.Name)
	require.Equal(t, "/medien/foto.jpg", data.URL)

	content, err := os.ReadFile(filepath.Join(store.Dir, "foto.jpg"))
	require.NoError(t, err)
	require.Equal(t, "bilddaten", string(content))

	var meta model.Media
	require.NoError(t, database.DB.Where("name = ?", "foto.jpg").First(&meta).Error)
}

func TestImportMediaRejectsBadURL(t *testing.T) {
	setup(t)

	resp := test.DoRequest(t, ImportMedia, MediaImportReq{URL: "ftp://example.com/a.jpg"})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)

	resp = test.DoRequest(t, ImportMedia, MediaImportReq{URL: "https://example.com/"})
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}
