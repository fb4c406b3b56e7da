package seeder

import (
	"fiberloom/backend/internal/model/content"
	"fiberloom/backend/internal/model/product"
)

// productFixtures 商品种子数据
// 按名称精确匹配判定是否已存在
var productFixtures = []product.Product{
	{
		Name:          "Misty Highlands",
		Description:   "Hand-tufted wall hanging inspired by highland fog rolling over mossy slopes.",
		Category:      product.CategoryWallHanging,
		Price:         320,
		Status:        product.StatusAvailable,
		StockQuantity: 1,
		DimWidth:      70,
		DimHeight:     100,
		DimUnit:       "cm",
		Materials:     []string{"wool", "cotton warp"},
		Images: []product.ProductImage{
			{URL: "/uploads/seed/misty-highlands-1.jpg", ShowOnHome: true, SortOrder: 0},
			{URL: "/uploads/seed/misty-highlands-2.jpg", SortOrder: 1},
		},
	},
	{
		Name:          "Ember Field",
		Description:   "Warm-toned tapestry with gradient bands of rust, ochre and deep red.",
		Category:      product.CategoryWallHanging,
		Price:         280,
		Status:        product.StatusAvailable,
		StockQuantity: 1,
		DimWidth:      60,
		DimHeight:     85,
		DimUnit:       "cm",
		Materials:     []string{"wool", "linen"},
		Images: []product.ProductImage{
			{URL: "/uploads/seed/ember-field-1.jpg", ShowOnHome: true, SortOrder: 0},
		},
	},
	{
		Name:          "Tidal Lines",
		Description:   "Woven wall piece tracing shoreline contours in blues and sand tones.",
		Category:      product.CategoryWallHanging,
		Price:         350,
		Status:        product.StatusSold,
		StockQuantity: 0,
		DimWidth:      80,
		DimHeight:     110,
		DimUnit:       "cm",
		Materials:     []string{"wool", "cotton", "jute"},
	},
	{
		Name:          "Moss Path Runner",
		Description:   "Durable flat-woven runner in layered greens for hallway or bedside.",
		Category:      product.CategoryRug,
		Price:         450,
		Status:        product.StatusAvailable,
		StockQuantity: 2,
		DimWidth:      70,
		DimHeight:     200,
		DimUnit:       "cm",
		Materials:     []string{"new zealand wool"},
		Images: []product.ProductImage{
			{URL: "/uploads/seed/moss-path-runner-1.jpg", ShowOnHome: true, SortOrder: 0},
		},
	},
	{
		Name:          "Quiet Dunes",
		Description:   "Soft neutral rug with subtle ridged texture, undyed fleece palette.",
		Category:      product.CategoryRug,
		Price:         520,
		Status:        product.StatusDraft,
		StockQuantity: 1,
		DimWidth:      140,
		DimHeight:     200,
		DimUnit:       "cm",
		Materials:     []string{"undyed wool", "cotton warp"},
	},
}

// pageContentFixtures 默认页面内容块
// (page, section) 已存在时不覆盖
var pageContentFixtures = []content.PageContent{
	{
		Page:        "home",
		Section:     "hero",
		Title:       "Woven by hand, one thread at a time",
		Content:     "Original wall hangings and rugs made in a small home studio.",
		IsPublished: true,
	},
	{
		Page:        "home",
		Section:     "intro",
		Title:       "The studio",
		Content:     "Every piece starts on the loom with locally sourced wool.",
		IsPublished: true,
		SortOrder:   1,
	},
	{
		Page:        "contact",
		Section:     "hero",
		Title:       "Get in touch",
		Content:     "Commissions, questions and studio visits are always welcome.",
		IsPublished: true,
	},
}
