package product

import (
	"fmt"
	"testing"

	"fiberloom/backend/internal/dto"
	productModel "fiberloom/backend/internal/model/product"
	"fiberloom/backend/internal/response"
	"fiberloom/backend/internal/testutils"
	"fiberloom/backend/internal/upload"
)

// setupProductService 创建 ProductService 实例用于测试
func setupProductService(t *testing.T) (*ProductService, *ProductRepository) {
	db := testutils.SetupTestDB(t)
	repo := NewProductRepository(db)
	uploads := upload.NewServiceWith(t.TempDir(), "/uploads", 5)
	return NewProductService(repo, uploads), repo
}

// TestCreateProduct_Integration 集成测试：创建商品
func TestCreateProduct_Integration(t *testing.T) {
	service, _ := setupProductService(t)

	tests := []struct {
		name        string
		req         dto.CreateProductRequest
		wantStatus  string
		wantDimUnit string
	}{
		{
			name: "Create with explicit status keeps it",
			req: dto.CreateProductRequest{
				Name:     "Handwoven wall piece",
				Category: productModel.CategoryWallHanging,
				Price:    250,
				Status:   productModel.StatusAvailable,
				DimUnit:  "in",
			},
			wantStatus:  productModel.StatusAvailable,
			wantDimUnit: "in",
		},
		{
			name: "Create without status defaults to draft",
			req: dto.CreateProductRequest{
				Name:     "Small tufted rug",
				Category: productModel.CategoryRug,
				Price:    180,
			},
			wantStatus:  productModel.StatusDraft,
			wantDimUnit: "cm",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, berr := service.CreateProduct(tt.req)
			if berr != nil {
				t.Fatalf("CreateProduct failed: %v", berr.Msg)
			}
			if p.ID == 0 {
				t.Error("Expected product ID to be set")
			}
			if p.Status != tt.wantStatus {
				t.Errorf("Status = %q, want %q", p.Status, tt.wantStatus)
			}
			if p.DimUnit != tt.wantDimUnit {
				t.Errorf("DimUnit = %q, want %q", p.DimUnit, tt.wantDimUnit)
			}
		})
	}
}

// TestGetProduct_NotFound 测试获取不存在的商品
func TestGetProduct_NotFound(t *testing.T) {
	service, _ := setupProductService(t)

	_, berr := service.GetProduct(99999)
	if berr == nil {
		t.Fatal("Expected error for non-existent product")
	}
	if berr.Code != response.NotFound {
		t.Errorf("Code = %d, want %d", berr.Code, response.NotFound)
	}
	if berr.HTTPStatus() != 404 {
		t.Errorf("HTTPStatus = %d, want 404", berr.HTTPStatus())
	}
}

// TestListProducts_Pagination 测试分页：25条记录、每页10条，应有3页
func TestListProducts_Pagination(t *testing.T) {
	service, repo := setupProductService(t)

	for i := 0; i < 25; i++ {
		testutils.CreateTestProduct(repo.db, testutils.WithProductName(fmt.Sprintf("Pagination item %02d", i)))
	}

	result, berr := service.ListProducts(dto.ListProductsQuery{Page: 1, Limit: 10})
	if berr != nil {
		t.Fatalf("ListProducts failed: %v", berr.Msg)
	}
	if result.Total != 25 {
		t.Errorf("Total = %d, want 25", result.Total)
	}
	if result.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", result.TotalPages)
	}
	if len(result.Data) != 10 {
		t.Errorf("Page 1 size = %d, want 10", len(result.Data))
	}

	// 最后一页只剩5条
	last, berr := service.ListProducts(dto.ListProductsQuery{Page: 3, Limit: 10})
	if berr != nil {
		t.Fatalf("ListProducts page 3 failed: %v", berr.Msg)
	}
	if len(last.Data) != 5 {
		t.Errorf("Page 3 size = %d, want 5", len(last.Data))
	}
}

// TestListProducts_Filters 测试分类/状态过滤组合
func TestListProducts_Filters(t *testing.T) {
	service, repo := setupProductService(t)

	testutils.CreateTestProduct(repo.db,
		testutils.WithCategory(productModel.CategoryWallHanging),
		testutils.WithStatus(productModel.StatusAvailable))
	testutils.CreateTestProduct(repo.db,
		testutils.WithCategory(productModel.CategoryWallHanging),
		testutils.WithStatus(productModel.StatusSold))
	testutils.CreateTestProduct(repo.db,
		testutils.WithCategory(productModel.CategoryRug),
		testutils.WithStatus(productModel.StatusAvailable))

	tests := []struct {
		name     string
		query    dto.ListProductsQuery
		expected int64
	}{
		{"Filter by category", dto.ListProductsQuery{Category: productModel.CategoryWallHanging}, 2},
		{"Filter by status", dto.ListProductsQuery{Status: productModel.StatusAvailable}, 2},
		{"Filter by category and status", dto.ListProductsQuery{
			Category: productModel.CategoryWallHanging,
			Status:   productModel.StatusAvailable,
		}, 1},
		{"No filter returns all", dto.ListProductsQuery{}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, berr := service.ListProducts(tt.query)
			if berr != nil {
				t.Fatalf("ListProducts failed: %v", berr.Msg)
			}
			if result.Total != tt.expected {
				t.Errorf("Total = %d, want %d", result.Total, tt.expected)
			}
		})
	}
}

// TestListProducts_Search 测试名称模糊搜索
func TestListProducts_Search(t *testing.T) {
	service, repo := setupProductService(t)

	testutils.CreateTestProduct(repo.db, testutils.WithProductName("Azure mountain tapestry"))
	testutils.CreateTestProduct(repo.db, testutils.WithProductName("Crimson runner"))

	result, berr := service.ListProducts(dto.ListProductsQuery{Search: "mountain"})
	if berr != nil {
		t.Fatalf("ListProducts failed: %v", berr.Msg)
	}
	if result.Total != 1 {
		t.Fatalf("Total = %d, want 1", result.Total)
	}
	if result.Data[0].Name != "Azure mountain tapestry" {
		t.Errorf("Name = %q, want search match", result.Data[0].Name)
	}
}

// TestUpdateProduct_PartialUpdate 测试部分更新只改指定字段
func TestUpdateProduct_PartialUpdate(t *testing.T) {
	service, repo := setupProductService(t)

	p := testutils.CreateTestProduct(repo.db,
		testutils.WithPrice(100),
		testutils.WithStatus(productModel.StatusDraft))

	newPrice := 150.0
	updated, berr := service.UpdateProduct(p.ID, dto.UpdateProductRequest{Price: &newPrice})
	if berr != nil {
		t.Fatalf("UpdateProduct failed: %v", berr.Msg)
	}
	if updated.Price != 150 {
		t.Errorf("Price = %v, want 150", updated.Price)
	}
	if updated.Status != productModel.StatusDraft {
		t.Errorf("Status = %q, should be unchanged", updated.Status)
	}
	if updated.Name != p.Name {
		t.Errorf("Name = %q, should be unchanged", updated.Name)
	}
}

// TestDeleteProduct_CascadesImages 测试删除商品级联删除图片记录
func TestDeleteProduct_CascadesImages(t *testing.T) {
	service, repo := setupProductService(t)

	p := testutils.CreateTestProduct(repo.db)
	img := testutils.CreateTestProductImage(repo.db, p.ID)

	if berr := service.DeleteProduct(p.ID); berr != nil {
		t.Fatalf("DeleteProduct failed: %v", berr.Msg)
	}

	if _, berr := service.GetProduct(p.ID); berr == nil {
		t.Error("Expected product to be deleted")
	}
	if _, err := repo.GetImageByID(img.ID); err == nil {
		t.Error("Expected product image to be deleted")
	}
}

// TestStatistics_CountsAddUp 测试统计：分类计数之和等于总数，状态计数之和等于总数
func TestStatistics_CountsAddUp(t *testing.T) {
	service, repo := setupProductService(t)

	testutils.CreateTestProduct(repo.db,
		testutils.WithCategory(productModel.CategoryWallHanging),
		testutils.WithStatus(productModel.StatusAvailable))
	testutils.CreateTestProduct(repo.db,
		testutils.WithCategory(productModel.CategoryWallHanging),
		testutils.WithStatus(productModel.StatusSold))
	testutils.CreateTestProduct(repo.db,
		testutils.WithCategory(productModel.CategoryRug),
		testutils.WithStatus(productModel.StatusDraft))
	testutils.CreateTestProduct(repo.db,
		testutils.WithCategory(productModel.CategoryRug),
		testutils.WithStatus(productModel.StatusAvailable))

	stats, berr := service.Statistics()
	if berr != nil {
		t.Fatalf("Statistics failed: %v", berr.Msg)
	}

	if stats.Total != 4 {
		t.Errorf("Total = %d, want 4", stats.Total)
	}

	var byCategory, byStatus int64
	for _, n := range stats.ByCategory {
		byCategory += n
	}
	for _, n := range stats.ByStatus {
		byStatus += n
	}
	if byCategory != stats.Total {
		t.Errorf("Sum of category counts = %d, want %d", byCategory, stats.Total)
	}
	if byStatus != stats.Total {
		t.Errorf("Sum of status counts = %d, want %d", byStatus, stats.Total)
	}
	if stats.ByCategory[productModel.CategoryWallHanging] != 2 {
		t.Errorf("Wall-hanging count = %d, want 2", stats.ByCategory[productModel.CategoryWallHanging])
	}
}

// TestListByCategory_OnlyAvailable 测试分类页只返回available商品
func TestListByCategory_OnlyAvailable(t *testing.T) {
	service, repo := setupProductService(t)

	testutils.CreateTestProduct(repo.db,
		testutils.WithCategory(productModel.CategoryRug),
		testutils.WithStatus(productModel.StatusAvailable))
	testutils.CreateTestProduct(repo.db,
		testutils.WithCategory(productModel.CategoryRug),
		testutils.WithStatus(productModel.StatusSold))
	testutils.CreateTestProduct(repo.db,
		testutils.WithCategory(productModel.CategoryRug),
		testutils.WithStatus(productModel.StatusDraft))
	testutils.CreateTestProduct(repo.db,
		testutils.WithCategory(productModel.CategoryWallHanging),
		testutils.WithStatus(productModel.StatusAvailable))

	products, berr := service.ListByCategory(productModel.CategoryRug)
	if berr != nil {
		t.Fatalf("ListByCategory failed: %v", berr.Msg)
	}
	if len(products) != 1 {
		t.Fatalf("len = %d, want 1 (available rug only)", len(products))
	}
	if products[0].Status != productModel.StatusAvailable {
		t.Errorf("Status = %q, want available", products[0].Status)
	}

	// 无效分类
	if _, berr := service.ListByCategory("sculpture"); berr == nil {
		t.Error("Expected error for invalid category")
	}
}

// TestHomeGridImages 测试首页图墙只含show_on_home图片，按sort_order排序
func TestHomeGridImages(t *testing.T) {
	service, repo := setupProductService(t)

	p := testutils.CreateTestProduct(repo.db)
	testutils.CreateTestProductImage(repo.db, p.ID,
		testutils.WithShowOnHome(true), testutils.WithSortOrder(2))
	testutils.CreateTestProductImage(repo.db, p.ID,
		testutils.WithShowOnHome(true), testutils.WithSortOrder(1))
	testutils.CreateTestProductImage(repo.db, p.ID,
		testutils.WithShowOnHome(false))

	images, berr := service.HomeGridImages()
	if berr != nil {
		t.Fatalf("HomeGridImages failed: %v", berr.Msg)
	}
	if len(images) != 2 {
		t.Fatalf("len = %d, want 2", len(images))
	}
	if images[0].SortOrder != 1 || images[1].SortOrder != 2 {
		t.Errorf("Images not ordered by sort_order: got %d, %d", images[0].SortOrder, images[1].SortOrder)
	}
	if images[0].Product == nil {
		t.Error("Expected owning product to be preloaded")
	}
}

// TestUpdateImage 测试更新图片属性
func TestUpdateImage(t *testing.T) {
	service, repo := setupProductService(t)

	p := testutils.CreateTestProduct(repo.db)
	img := testutils.CreateTestProductImage(repo.db, p.ID)

	show := true
	order := 5
	updated, berr := service.UpdateImage(img.ID, dto.UpdateProductImageRequest{
		ShowOnHome: &show,
		SortOrder:  &order,
	})
	if berr != nil {
		t.Fatalf("UpdateImage failed: %v", berr.Msg)
	}
	if !updated.ShowOnHome || updated.SortOrder != 5 {
		t.Errorf("Image not updated: show=%v order=%d", updated.ShowOnHome, updated.SortOrder)
	}

	// 不存在的图片
	if _, berr := service.UpdateImage(99999, dto.UpdateProductImageRequest{}); berr == nil {
		t.Error("Expected error for non-existent image")
	}
}
