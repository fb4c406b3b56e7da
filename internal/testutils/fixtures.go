package testutils

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"fiberloom/backend/internal/model/blog"
	"fiberloom/backend/internal/model/content"
	"fiberloom/backend/internal/model/product"
	"fiberloom/backend/internal/model/user"
)

// CreateTestUser creates a test admin user with unique username
// Password is always "password123" unless overridden through WithPassword
func CreateTestUser(db *gorm.DB, opts ...UserOption) *user.User {
	uniqueID := uuid.New().String()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("Failed to hash test password: %v", err))
	}

	testUser := &user.User{
		Username: fmt.Sprintf("test_admin_%s", uniqueID),
		Password: string(hash),
		Role:     user.RoleAdmin,
	}

	for _, opt := range opts {
		opt(testUser)
	}

	if err := db.Create(testUser).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test user: %v", err))
	}

	return testUser
}

// UserOption configures test user
type UserOption func(*user.User)

// WithUsername sets the username
func WithUsername(username string) UserOption {
	return func(u *user.User) {
		u.Username = username
	}
}

// WithPassword sets the bcrypt-hashed password
func WithPassword(plain string) UserOption {
	return func(u *user.User) {
		hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
		if err != nil {
			panic(fmt.Sprintf("Failed to hash test password: %v", err))
		}
		u.Password = string(hash)
	}
}

// WithRole sets the role
func WithRole(role string) UserOption {
	return func(u *user.User) {
		u.Role = role
	}
}

// CreateTestProduct creates a test product with a unique name
func CreateTestProduct(db *gorm.DB, opts ...ProductOption) *product.Product {
	uniqueID := uuid.New().String()

	testProduct := &product.Product{
		Name:          fmt.Sprintf("Test Product %s", uniqueID),
		Description:   "Test product description",
		Category:      product.CategoryWallHanging,
		Price:         120.0,
		Status:        product.StatusAvailable,
		StockQuantity: 1,
		DimWidth:      60,
		DimHeight:     90,
		DimUnit:       "cm",
		Materials:     []string{"wool", "cotton"},
	}

	for _, opt := range opts {
		opt(testProduct)
	}

	if err := db.Create(testProduct).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test product: %v", err))
	}

	return testProduct
}

// ProductOption configures test product
type ProductOption func(*product.Product)

// WithProductName sets the product name
func WithProductName(name string) ProductOption {
	return func(p *product.Product) {
		p.Name = name
	}
}

// WithCategory sets the product category
func WithCategory(category string) ProductOption {
	return func(p *product.Product) {
		p.Category = category
	}
}

// WithStatus sets the product status
func WithStatus(status string) ProductOption {
	return func(p *product.Product) {
		p.Status = status
	}
}

// WithPrice sets the product price
func WithPrice(price float64) ProductOption {
	return func(p *product.Product) {
		p.Price = price
	}
}

// CreateTestProductImage creates an image row attached to the given product
func CreateTestProductImage(db *gorm.DB, productID uint, opts ...ProductImageOption) *product.ProductImage {
	uniqueID := uuid.New().String()

	img := &product.ProductImage{
		URL:       fmt.Sprintf("/uploads/test_%s.jpg", uniqueID),
		ProductID: productID,
	}

	for _, opt := range opts {
		opt(img)
	}

	if err := db.Create(img).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test product image: %v", err))
	}

	return img
}

// ProductImageOption configures test product image
type ProductImageOption func(*product.ProductImage)

// WithShowOnHome marks the image for the home grid
func WithShowOnHome(show bool) ProductImageOption {
	return func(i *product.ProductImage) {
		i.ShowOnHome = show
	}
}

// WithSortOrder sets the image sort order
func WithSortOrder(order int) ProductImageOption {
	return func(i *product.ProductImage) {
		i.SortOrder = order
	}
}

// CreateTestArticle creates a test blog article with unique title and slug
func CreateTestArticle(db *gorm.DB, opts ...ArticleOption) *blog.Article {
	uniqueID := uuid.New().String()

	testArticle := &blog.Article{
		Title:   fmt.Sprintf("Test Article %s", uniqueID),
		Content: "Test article content",
		Slug:    fmt.Sprintf("test-article-%s", uniqueID),
	}

	for _, opt := range opts {
		opt(testArticle)
	}

	if err := db.Create(testArticle).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test article: %v", err))
	}

	return testArticle
}

// ArticleOption configures test article
type ArticleOption func(*blog.Article)

// WithTitle sets the article title
func WithTitle(title string) ArticleOption {
	return func(a *blog.Article) {
		a.Title = title
	}
}

// WithSlug sets the article slug
func WithSlug(slug string) ArticleOption {
	return func(a *blog.Article) {
		a.Slug = slug
	}
}

// WithPublished marks the article published at the given time
func WithPublished(at time.Time) ArticleOption {
	return func(a *blog.Article) {
		a.IsPublished = true
		a.PublishedAt = &at
	}
}

// CreateTestTag creates a test blog tag with unique name and slug
func CreateTestTag(db *gorm.DB, opts ...TagOption) *blog.Tag {
	uniqueID := uuid.New().String()

	testTag := &blog.Tag{
		Name: fmt.Sprintf("tag-%s", uniqueID),
		Slug: fmt.Sprintf("tag-%s", uniqueID),
	}

	for _, opt := range opts {
		opt(testTag)
	}

	if err := db.Create(testTag).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test tag: %v", err))
	}

	return testTag
}

// TagOption configures test tag
type TagOption func(*blog.Tag)

// WithTagName sets the tag name
func WithTagName(name string) TagOption {
	return func(t *blog.Tag) {
		t.Name = name
	}
}

// CreateTestAboutSection creates a test about section
func CreateTestAboutSection(db *gorm.DB, opts ...AboutSectionOption) *content.AboutSection {
	uniqueID := uuid.New().String()

	section := &content.AboutSection{
		Title:       fmt.Sprintf("About %s", uniqueID),
		Paragraphs:  []string{"First paragraph", "Second paragraph"},
		IsPublished: true,
	}

	for _, opt := range opts {
		opt(section)
	}

	if err := db.Create(section).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test about section: %v", err))
	}

	return section
}

// AboutSectionOption configures test about section
type AboutSectionOption func(*content.AboutSection)

// WithSectionPublished sets the published flag
func WithSectionPublished(published bool) AboutSectionOption {
	return func(s *content.AboutSection) {
		s.IsPublished = published
	}
}

// CreateTestContactLink creates a test contact link with a unique URL
func CreateTestContactLink(db *gorm.DB, opts ...ContactLinkOption) *content.ContactLink {
	uniqueID := uuid.New().String()

	link := &content.ContactLink{
		Platform: "instagram",
		Label:    "Instagram",
		URL:      fmt.Sprintf("https://instagram.com/test_%s", uniqueID),
		IsActive: true,
	}

	for _, opt := range opts {
		opt(link)
	}

	if err := db.Create(link).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test contact link: %v", err))
	}

	return link
}

// ContactLinkOption configures test contact link
type ContactLinkOption func(*content.ContactLink)

// WithPlatform sets the platform
func WithPlatform(platform string) ContactLinkOption {
	return func(l *content.ContactLink) {
		l.Platform = platform
	}
}

// WithLinkActive sets the active flag
func WithLinkActive(active bool) ContactLinkOption {
	return func(l *content.ContactLink) {
		l.IsActive = active
	}
}

// CreateTestPageContent creates a test page content entry with unique page/section keys
func CreateTestPageContent(db *gorm.DB, opts ...PageContentOption) *content.PageContent {
	uniqueID := uuid.New().String()

	pc := &content.PageContent{
		Page:    fmt.Sprintf("page-%s", uniqueID),
		Section: "hero",
		Title:   "Test title",
		Content: "Test body",
	}

	for _, opt := range opts {
		opt(pc)
	}

	if err := db.Create(pc).Error; err != nil {
		panic(fmt.Sprintf("Failed to create test page content: %v", err))
	}

	return pc
}

// PageContentOption configures test page content
type PageContentOption func(*content.PageContent)

// WithPageSection sets the page and section keys
func WithPageSection(page, section string) PageContentOption {
	return func(pc *content.PageContent) {
		pc.Page = page
		pc.Section = section
	}
}
