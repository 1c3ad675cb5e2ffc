package mediastore

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Store 媒体文件存储
// 文件按净化后的原始文件名保存到本地目录，返回可访问的 URL
type Store struct {
	Dir     string // 文件保存目录
	BaseURL string // 文件访问基础URL
}

func New(dir, baseURL string) *Store {
	return &Store{
		Dir:     dir,
		BaseURL: strings.TrimRight(baseURL, "/"),
	}
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// SanitizeName 将文件名中的不安全字符替换为下划线
func SanitizeName(name string) string {
	return unsafeChars.ReplaceAllString(filepath.Base(name), "_")
}

// Save 保存上传的文件并返回 (文件名, URL)
func (s *Store) Save(fileHeader *multipart.FileHeader) (string, string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", "", err
	}
	defer file.Close()

	name := SanitizeName(fileHeader.Filename)
	if err := s.write(name, file); err != nil {
		return "", "", err
	}
	return name, s.URL(name), nil
}

// SaveBytes 保存字节内容（如从远程 URL 导入的文件）
func (s *Store) SaveBytes(name string, data []byte) (string, string, error) {
	name = SanitizeName(name)
	if err := s.write(name, strings.NewReader(string(data))); err != nil {
		return "", "", err
	}
	return name, s.URL(name), nil
}

// Remove 删除磁盘文件
func (s *Store) Remove(name string) error {
	return os.Remove(filepath.Join(s.Dir, SanitizeName(name)))
}

// List 列出目录下全部文件名，隐藏文件除外
func (s *Store) List() ([]string, error) {
	if err := os.MkdirAll(s.Dir, os.ModePerm); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// ModTimeMilli 返回文件修改时间的毫秒时间戳，文件不存在时为 0
func (s *Store) ModTimeMilli(name string) int64 {
	info, err := os.Stat(filepath.Join(s.Dir, name))
	if err != nil {
		return 0
	}
	return info.ModTime().UnixMilli()
}

// URL 返回文件的访问 URL
func (s *Store) URL(name string) string {
	return s.BaseURL + "/" + name
}

func (s *Store) write(name string, src io.Reader) error {
	// 确保保存目录存在
	if err := os.MkdirAll(s.Dir, os.ModePerm); err != nil {
		return err
	}

	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return err
	}
	return nil
}
