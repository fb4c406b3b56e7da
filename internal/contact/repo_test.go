package contact

import (
	"testing"

	"fiberloom/backend/internal/testutils"
)

// TestRepoLinkExists 测试(platform,url)唯一性检查
func TestRepoLinkExists(t *testing.T) {
	db := testutils.SetupTestDB(t)
	handler := NewContactHandler(db)

	link := testutils.CreateTestContactLink(db)

	exists, err := handler.RepoLinkExists(link.Platform, link.URL, 0)
	if err != nil {
		t.Fatalf("RepoLinkExists failed: %v", err)
	}
	if !exists {
		t.Error("Expected duplicate (platform,url) to be detected")
	}

	// 排除自身
	exists, err = handler.RepoLinkExists(link.Platform, link.URL, link.ID)
	if err != nil {
		t.Fatalf("RepoLinkExists failed: %v", err)
	}
	if exists {
		t.Error("Expected own row to be excluded from duplicate check")
	}

	// 同平台不同链接不冲突
	exists, err = handler.RepoLinkExists(link.Platform, "https://instagram.com/other", 0)
	if err != nil {
		t.Fatalf("RepoLinkExists failed: %v", err)
	}
	if exists {
		t.Error("Different URL on same platform should not conflict")
	}
}

// TestRepoListLinks_ActiveFilter 测试仅启用过滤
func TestRepoListLinks_ActiveFilter(t *testing.T) {
	db := testutils.SetupTestDB(t)
	handler := NewContactHandler(db)

	testutils.CreateTestContactLink(db)
	testutils.CreateTestContactLink(db, testutils.WithLinkActive(false))

	all, err := handler.RepoListLinks(false)
	if err != nil {
		t.Fatalf("RepoListLinks failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("len = %d, want 2", len(all))
	}

	active, err := handler.RepoListLinks(true)
	if err != nil {
		t.Fatalf("RepoListLinks failed: %v", err)
	}
	if len(active) != 1 {
		t.Errorf("Active len = %d, want 1", len(active))
	}
}
