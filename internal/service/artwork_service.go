package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ArtworkService 生成图落盘服务
// 合成结果以文件形式保存在本地目录，由路由层以静态资源方式对外提供。
type ArtworkService struct {
	dir string
}

// NewArtworkService 创建落盘服务
func NewArtworkService(dir string) *ArtworkService {
	if strings.TrimSpace(dir) == "" {
		dir = "./artwork"
	}
	return &ArtworkService{dir: dir}
}

// Dir 落盘目录
func (s *ArtworkService) Dir() string {
	return s.dir
}

// Save 保存图像字节并返回对外访问路径
func (s *ArtworkService) Save(data []byte, mimeType string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("artwork: empty image data")
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("poster_%s%s", uuid.NewString(), extensionForMIME(mimeType))
	if err := os.WriteFile(filepath.Join(s.dir, filename), data, 0o644); err != nil {
		return "", err
	}
	return "/artwork/" + filename, nil
}

// Remove 删除一个落盘文件；传入对外访问路径
func (s *ArtworkService) Remove(publicPath string) error {
	filename := strings.TrimPrefix(publicPath, "/artwork/")
	if filename == "" || strings.Contains(filename, "/") {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, filename))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func extensionForMIME(mimeType string) string {
	switch strings.ToLower(strings.TrimSpace(mimeType)) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
