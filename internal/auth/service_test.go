package auth

import (
	"testing"

	"fiberloom/backend/config"
	"fiberloom/backend/internal/dto"
	"fiberloom/backend/internal/pkg"
	"fiberloom/backend/internal/response"
	"fiberloom/backend/internal/testutils"
)

// setupAuthService 创建 AuthService 实例用于测试
func setupAuthService(t *testing.T) (*AuthService, *UserRepository) {
	config.Conf = &config.AppConfig{
		JWT: config.JWTConfig{
			Secret:     "test-secret-key",
			ExpireTime: 1,
		},
	}

	db := testutils.SetupTestDB(t)
	repo := NewUserRepository(db)
	return NewAuthService(repo), repo
}

// TestLogin 测试登录：错误密码与未知用户均返回泛化401，正确密码签发可解析令牌
func TestLogin(t *testing.T) {
	service, repo := setupAuthService(t)

	u := testutils.CreateTestUser(repo.db, testutils.WithPassword("correctpassword"))

	t.Run("Wrong password is unauthorized", func(t *testing.T) {
		_, berr := service.Login(dto.LoginRequest{Username: u.Username, Password: "wrongpassword"})
		if berr == nil {
			t.Fatal("Expected error for wrong password")
		}
		if berr.Code != response.Unauthorized {
			t.Errorf("Code = %d, want %d", berr.Code, response.Unauthorized)
		}
	})

	t.Run("Unknown user gets the same generic message", func(t *testing.T) {
		_, berr := service.Login(dto.LoginRequest{Username: "nobody", Password: "whatever"})
		if berr == nil {
			t.Fatal("Expected error for unknown user")
		}
		if berr.Code != response.Unauthorized {
			t.Errorf("Code = %d, want %d", berr.Code, response.Unauthorized)
		}
		if berr.Msg != "用户名或密码错误" {
			t.Errorf("Message = %q, should not reveal user existence", berr.Msg)
		}
	})

	t.Run("Correct password returns valid token", func(t *testing.T) {
		result, berr := service.Login(dto.LoginRequest{Username: u.Username, Password: "correctpassword"})
		if berr != nil {
			t.Fatalf("Login failed: %v", berr.Msg)
		}
		if result.AccessToken == "" {
			t.Fatal("Expected access token")
		}
		if result.User.Password != "" {
			// json:"-" 下密码不会序列化，但结构体内仍有值属预期
			t.Log("Password field present in struct (hidden by json tag)")
		}

		claims, err := pkg.ParseAccessToken(result.AccessToken)
		if err != nil {
			t.Fatalf("ParseAccessToken failed: %v", err)
		}
		if claims.Username != u.Username {
			t.Errorf("Token username = %q, want %q", claims.Username, u.Username)
		}
		if claims.UserID != u.ID {
			t.Errorf("Token userID = %d, want %d", claims.UserID, u.ID)
		}
	})
}

// TestProfile 测试当前用户信息
func TestProfile(t *testing.T) {
	service, repo := setupAuthService(t)

	u := testutils.CreateTestUser(repo.db)

	profile, berr := service.Profile(u.ID)
	if berr != nil {
		t.Fatalf("Profile failed: %v", berr.Msg)
	}
	if profile.Username != u.Username || profile.Role != u.Role {
		t.Errorf("Profile = %+v, mismatch with user %+v", profile, u)
	}

	// 已删除用户
	if _, berr := service.Profile(99999); berr == nil {
		t.Error("Expected error for absent user")
	}
}

// TestUpdateCredentials 测试修改凭据
func TestUpdateCredentials(t *testing.T) {
	service, repo := setupAuthService(t)

	u := testutils.CreateTestUser(repo.db, testutils.WithPassword("oldpassword"))

	t.Run("Wrong current password rejected", func(t *testing.T) {
		newName := "newname"
		_, berr := service.UpdateCredentials(u.ID, dto.UpdateCredentialsRequest{
			CurrentPassword: "notit",
			Username:        &newName,
		})
		if berr == nil {
			t.Fatal("Expected error for wrong current password")
		}
		if berr.Code != response.Unauthorized {
			t.Errorf("Code = %d, want %d", berr.Code, response.Unauthorized)
		}
	})

	t.Run("Username conflict", func(t *testing.T) {
		other := testutils.CreateTestUser(repo.db)
		_, berr := service.UpdateCredentials(u.ID, dto.UpdateCredentialsRequest{
			CurrentPassword: "oldpassword",
			Username:        &other.Username,
		})
		if berr == nil {
			t.Fatal("Expected conflict for taken username")
		}
		if berr.Code != response.Conflict {
			t.Errorf("Code = %d, want %d", berr.Code, response.Conflict)
		}
	})

	t.Run("Password change takes effect", func(t *testing.T) {
		newPassword := "freshpassword"
		if _, berr := service.UpdateCredentials(u.ID, dto.UpdateCredentialsRequest{
			CurrentPassword: "oldpassword",
			NewPassword:     &newPassword,
		}); berr != nil {
			t.Fatalf("UpdateCredentials failed: %v", berr.Msg)
		}

		if _, berr := service.Login(dto.LoginRequest{Username: u.Username, Password: "oldpassword"}); berr == nil {
			t.Error("Old password should no longer work")
		}
		if _, berr := service.Login(dto.LoginRequest{Username: u.Username, Password: "freshpassword"}); berr != nil {
			t.Errorf("New password should work: %v", berr.Msg)
		}
	})
}
