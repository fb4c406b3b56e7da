// Package upload 图片文件的本地存储服务
package upload

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"fiberloom/backend/config"
)

var (
	ErrFileTooLarge    = fmt.Errorf("文件超过大小限制")
	ErrUnsupportedType = fmt.Errorf("不支持的文件类型")
)

// 允许的图片MIME类型及对应扩展名
var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Service 负责上传文件的保存、URL生成和删除
type Service struct {
	dir     string
	baseURL string
	maxSize int64
}

// NewService 从全局配置构造上传服务
func NewService() *Service {
	conf := config.Conf.Upload
	return &Service{
		dir:     conf.Dir,
		baseURL: strings.TrimRight(conf.BaseURL, "/"),
		maxSize: conf.MaxSizeMB * 1024 * 1024,
	}
}

// NewServiceWith 指定参数构造，测试用
func NewServiceWith(dir, baseURL string, maxSizeMB int64) *Service {
	return &Service{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
		maxSize: maxSizeMB * 1024 * 1024,
	}
}

// EnsureDir 确保上传目录存在
func (s *Service) EnsureDir() error {
	return os.MkdirAll(s.dir, 0755)
}

// SaveImage 校验并保存multipart图片，返回存储文件名和公开URL
// 仅接受 JPEG/PNG/WebP，按文件内容嗅探判断，大小超限直接拒绝
func (s *Service) SaveImage(fileHeader *multipart.FileHeader) (string, string, error) {
	if fileHeader.Size > s.maxSize {
		return "", "", ErrFileTooLarge
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", "", fmt.Errorf("读取上传文件失败: %w", err)
	}
	defer src.Close()

	// 按内容嗅探MIME，不信任客户端Content-Type
	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		return "", "", fmt.Errorf("读取上传文件失败: %w", err)
	}
	ext, ok := allowedTypes[http.DetectContentType(head[:n])]
	if !ok {
		return "", "", ErrUnsupportedType
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", "", fmt.Errorf("读取上传文件失败: %w", err)
	}

	if err := s.EnsureDir(); err != nil {
		return "", "", fmt.Errorf("创建上传目录失败: %w", err)
	}

	filename := uuid.NewString() + ext
	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", "", fmt.Errorf("创建目标文件失败: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(filepath.Join(s.dir, filename))
		return "", "", fmt.Errorf("写入文件失败: %w", err)
	}

	return filename, s.FileURL(filename), nil
}

// FileURL 由存储文件名构建公开URL
func (s *Service) FileURL(filename string) string {
	return s.baseURL + "/" + filename
}

// FilenameFromURL 从公开URL还原存储文件名，非本服务URL返回空串
func (s *Service) FilenameFromURL(url string) string {
	if !strings.HasPrefix(url, s.baseURL+"/") {
		return ""
	}
	// 去掉前缀后不允许再有路径分隔符
	name := strings.TrimPrefix(url, s.baseURL+"/")
	if name == "" || name != path.Base(name) {
		return ""
	}
	return name
}

// DeleteFile 尽力删除存储文件，失败只记日志不返回错误
func (s *Service) DeleteFile(filename string) {
	if filename == "" {
		return
	}
	if err := os.Remove(filepath.Join(s.dir, filename)); err != nil && !os.IsNotExist(err) {
		log.Printf("[upload] 删除文件失败 %s: %v", filename, err)
	}
}

// DeleteFiles 批量尽力删除
func (s *Service) DeleteFiles(filenames []string) {
	for _, f := range filenames {
		s.DeleteFile(f)
	}
}

// DeleteByURL 按公开URL尽力删除对应文件
func (s *Service) DeleteByURL(url string) {
	s.DeleteFile(s.FilenameFromURL(url))
}
