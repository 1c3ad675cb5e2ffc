package media

import (
	"net/url"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"escort-cms/internal/global/database"
	"escort-cms/internal/global/httpclient"
	"escort-cms/internal/global/mediastore"
	"escort-cms/internal/global/response"
	"escort-cms/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// maxPageSize 单页最多返回的文件数
const maxPageSize = 200

var (
	imageExt = regexp.MustCompile(`(?i)\.(png|jpg|jpeg|gif|webp|avif|svg)$`)
	videoExt = regexp.MustCompile(`(?i)\.(mp4|webm|mov|avi|mkv|m4v)$`)
)

// MediaItem 列表条目：磁盘文件加上数据库里的元数据
type MediaItem struct {
	Name        string  `json:"name"`
	URL         string  `json:"url"`
	Title       *string `json:"title"`
	Alt         *string `json:"alt"`
	Description *string `json:"description"`
}

// MediaUpdateReq 定义元数据更新请求的结构体
type MediaUpdateReq struct {
	Name        string  `json:"name" binding:"required"`
	Title       *string `json:"title"`
	Alt         *string `json:"alt"`
	Description *string `json:"description"`
}

// MediaImportReq 定义远程导入请求的结构体
type MediaImportReq struct {
	URL  string `json:"url" binding:"required"`
	Name string `json:"name"` // 留空时取 URL 路径中的文件名
}

// UploadMedia 处理文件上传请求，保存到磁盘并登记元数据
func UploadMedia(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		log.Error("读取上传文件失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithTips("缺少上传文件"))
		return
	}

	name, fileURL, err := store.Save(fileHeader)
	if err != nil {
		log.Error("保存上传文件失败", "error", err)
		response.Fail(c, response.ErrStorage.WithOrigin(err))
		return
	}

	if err := upsertMeta(name, fileURL); err != nil {
		log.Error("登记媒体元数据失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{"name": name, "url": fileURL})
}

// ImportMedia 从远程 URL 拉取文件存入媒体库
func ImportMedia(c *gin.Context) {
	var req MediaImportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定导入请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	parsed, err := url.Parse(req.URL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		response.Fail(c, response.ErrInvalidRequest.WithTips("URL 不合法"))
		return
	}

	name := req.Name
	if name == "" {
		name = path.Base(parsed.Path)
	}
	if name == "" || name == "." || name == "/" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("无法从 URL 推导文件名"))
		return
	}

	resp, err := httpclient.Client.R().SetContext(c.Request.Context()).Get(req.URL)
	if err != nil {
		log.Error("拉取远程文件失败", "error", err, "url", req.URL)
		response.Fail(c, response.ErrInvalidRequest.WithTips("拉取远程文件失败").WithOrigin(err))
		return
	}
	if resp.StatusCode() != 200 {
		log.Warn("远程文件响应异常", "status", resp.StatusCode(), "url", req.URL)
		response.Fail(c, response.ErrInvalidRequest.WithTips("远程文件响应异常"))
		return
	}

	savedName, fileURL, err := store.SaveBytes(name, resp.Body())
	if err != nil {
		log.Error("保存导入文件失败", "error", err)
		response.Fail(c, response.ErrStorage.WithOrigin(err))
		return
	}

	if err := upsertMeta(savedName, fileURL); err != nil {
		log.Error("登记媒体元数据失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{"name": savedName, "url": fileURL})
}

// ListMedia 处理媒体列表请求
// 以磁盘目录为准，分页内的条目再关联数据库元数据
func ListMedia(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "25"))
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	sortKey := strings.ToLower(c.DefaultQuery("sort", "name_asc"))
	query := strings.ToLower(c.Query("q"))
	fileType := strings.ToLower(c.DefaultQuery("type", "all"))

	names, err := store.List()
	if err != nil {
		log.Error("读取媒体目录失败", "error", err)
		response.Fail(c, response.ErrStorage.WithOrigin(err))
		return
	}

	// 类型过滤按扩展名判断
	switch fileType {
	case "image":
		names = filterNames(names, imageExt.MatchString)
	case "video":
		names = filterNames(names, videoExt.MatchString)
	}

	// 搜索：文件名包含关键字，或元数据标题/名称命中
	if query != "" {
		matched := map[string]bool{}
		for _, name := range names {
			if strings.Contains(strings.ToLower(name), query) {
				matched[name] = true
			}
		}
		var metas []model.Media
		if err := database.DB.
			Where("LOWER(name) LIKE ? OR LOWER(title) LIKE ?", "%"+query+"%", "%"+query+"%").
			Find(&metas).Error; err == nil {
			for _, m := range metas {
				matched[m.Name] = true
			}
		}
		names = filterNames(names, func(name string) bool { return matched[name] })
	}

	switch sortKey {
	case "name_desc":
		sort.Sort(sort.Reverse(sort.StringSlice(names)))
	case "date_desc":
		sort.SliceStable(names, func(i, j int) bool {
			return store.ModTimeMilli(names[i]) > store.ModTimeMilli(names[j])
		})
	case "date_asc":
		sort.SliceStable(names, func(i, j int) bool {
			return store.ModTimeMilli(names[i]) < store.ModTimeMilli(names[j])
		})
	default:
		sort.Strings(names)
	}

	total := len(names)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}
	pageNames := names[start:end]

	// 只为当前页的文件取元数据
	metaMap := map[string]model.Media{}
	if len(pageNames) > 0 {
		var metas []model.Media
		if err := database.DB.Where("name IN ?", pageNames).Find(&metas).Error; err != nil {
			log.Error("查询媒体元数据失败", "error", err)
			response.Fail(c, response.ErrDatabase.WithOrigin(err))
			return
		}
		for _, m := range metas {
			metaMap[m.Name] = m
		}
	}

	items := make([]MediaItem, 0, len(pageNames))
	for _, name := range pageNames {
		item := MediaItem{Name: name, URL: store.URL(name)}
		if meta, ok := metaMap[name]; ok {
			item.Title = meta.Title
			item.Alt = meta.Alt
			item.Description = meta.Description
		}
		items = append(items, item)
	}

	response.Success(c, gin.H{
		"items":       items,
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": totalPages,
	})
}

// UpdateMedia 处理元数据更新请求
func UpdateMedia(c *gin.Context) {
	var req MediaUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("绑定元数据更新请求失败", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	name := mediastore.SanitizeName(req.Name)
	var meta model.Media
	err := database.DB.Where("name = ?", name).First(&meta).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		meta = model.Media{Name: name, URL: store.URL(name)}
	case err != nil:
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	meta.Title = req.Title
	meta.Alt = req.Alt
	meta.Description = req.Description

	if err := database.DB.Save(&meta).Error; err != nil {
		log.Error("保存媒体元数据失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, meta)
}

// DeleteMedia 处理删除请求
// 先删元数据行，磁盘文件尽力删除，失败只记日志不回滚
func DeleteMedia(c *gin.Context) {
	name := mediastore.SanitizeName(c.Param("name"))
	if name == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("文件名不能为空"))
		return
	}

	if err := database.DB.Unscoped().Where("name = ?", name).Delete(&model.Media{}).Error; err != nil {
		log.Error("删除媒体元数据失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if err := store.Remove(name); err != nil {
		log.Warn("删除磁盘文件失败", "error", err, "name", name)
	}

	response.Success(c, gin.H{"ok": true})
}

// upsertMeta 按文件名登记或刷新元数据行
func upsertMeta(name, fileURL string) error {
	var meta model.Media
	err := database.DB.Where("name = ?", name).First(&meta).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return database.DB.Create(&model.Media{Name: name, URL: fileURL}).Error
	case err != nil:
		return err
	}
	return database.DB.Model(&meta).Update("url", fileURL).Error
}

func filterNames(names []string, keep func(string) bool) []string {
	out := names[:0]
	for _, name := range names {
		if keep(name) {
			out = append(out, name)
		}
	}
	return out
}
