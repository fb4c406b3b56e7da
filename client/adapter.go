package client

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"fiberloom/backend/internal/model/content"
	"fiberloom/backend/internal/model/product"
)

// Artwork 前台作品卡片视图
type Artwork struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Status      string   `json:"status"`
	Dimensions  string   `json:"dimensions"`
	Materials   []string `json:"materials"`
	Images      []string `json:"images"`
}

// SocialLink 前台社交链接视图
type SocialLink struct {
	Platform string `json:"platform"`
	Label    string `json:"label"`
	URL      string `json:"url"`
}

// AboutBlock 前台关于页区块视图
type AboutBlock struct {
	Title      string   `json:"title"`
	Paragraphs []string `json:"paragraphs"`
	Image      string   `json:"image"`
	ImageAlt   string   `json:"image_alt"`
}

// ContentBlock 前台命名内容块视图
type ContentBlock struct {
	Title    string            `json:"title"`
	Content  string            `json:"content"`
	Image    string            `json:"image"`
	ImageAlt string            `json:"image_alt"`
	Metadata map[string]string `json:"metadata"`
}

// AdaptProductToArtwork 商品转作品视图：title取name，其余字段原样透传
func AdaptProductToArtwork(p *product.Product) Artwork {
	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, img.URL)
	}

	return Artwork{
		ID:          p.ID,
		Title:       p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Status:      p.Status,
		Dimensions:  formatDimensions(p),
		Materials:   p.Materials,
		Images:      images,
	}
}

// formatDimensions 拼接展示尺寸，如 "60 × 90 cm"
func formatDimensions(p *product.Product) string {
	if p.DimWidth == 0 && p.DimHeight == 0 {
		return ""
	}
	unit := p.DimUnit
	if unit == "" {
		unit = "cm"
	}
	return fmt.Sprintf("%s × %s %s", trimFloat(p.DimWidth), trimFloat(p.DimHeight), unit)
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// AdaptContactLinks 联系链接转社交链接视图，过滤不安全的URL协议
func AdaptContactLinks(links []content.ContactLink) []SocialLink {
	out := make([]SocialLink, 0, len(links))
	for _, l := range links {
		if !isSafeLinkURL(l.URL) {
			continue
		}
		label := l.Label
		if label == "" {
			label = l.Platform
		}
		out = append(out, SocialLink{
			Platform: l.Platform,
			Label:    label,
			URL:      l.URL,
		})
	}
	return out
}

// isSafeLinkURL 仅放行 http/https/mailto 协议，拦截 javascript: 等注入向量
func isSafeLinkURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https", "mailto":
		return true
	}
	return false
}

// AdaptAboutSection 关于页区块转前台视图
func AdaptAboutSection(s *content.AboutSection) AboutBlock {
	return AboutBlock{
		Title:      s.Title,
		Paragraphs: s.Paragraphs,
		Image:      s.Image,
		ImageAlt:   s.ImageAlt,
	}
}

// AdaptPageContent 页面内容行转内容块视图
func AdaptPageContent(row *content.PageContent) ContentBlock {
	return ContentBlock{
		Title:    row.Title,
		Content:  row.Content,
		Image:    row.Image,
		ImageAlt: row.ImageAlt,
		Metadata: row.Metadata,
	}
}

// fallbackBlocks 后端不可达或记录缺失时的兜底文案
var fallbackBlocks = map[string]ContentBlock{
	"home/hero": {
		Title:   "Handwoven textiles",
		Content: "One-of-a-kind wall hangings and rugs, woven by hand.",
	},
	"home/intro": {
		Title:   "About the studio",
		Content: "Every piece starts on the loom with natural fibres.",
	},
	"contact/hero": {
		Title:   "Get in touch",
		Content: "Questions about a piece or a commission? Write me.",
	},
}

// FallbackContentBlock 返回指定页面区块的硬编码默认内容
func FallbackContentBlock(page, section string) ContentBlock {
	if b, ok := fallbackBlocks[page+"/"+section]; ok {
		return b
	}
	return ContentBlock{}
}
