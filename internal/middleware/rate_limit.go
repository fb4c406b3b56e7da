package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"fiberloom/backend/internal/database"
	"fiberloom/backend/internal/dto"
	"fiberloom/backend/internal/response"
)

const (
	// 同一用户名连续失败上限
	loginMaxAttempts = 5
	// 超限后的冷却时间
	loginCooldown = 15 * time.Minute
	// 失败计数窗口
	loginAttemptWindow = 15 * time.Minute
)

// LoginRateLimit 按用户名限制登录尝试，防止暴力破解
// Redis 不可用时直接放行
func LoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if database.RedisDB == nil {
			c.Next()
			return
		}

		// 读取 body 后再还原，登录handler还要用
		bodyBytes, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		var input struct {
			Username string `json:"username"`
		}
		if err := json.Unmarshal(bodyBytes, &input); err != nil || input.Username == "" {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c, 3*time.Second)
		defer cancel()

		cooldownKey := "login_cooldown:" + input.Username
		if database.RedisDB.Exists(ctx, cooldownKey).Val() > 0 {
			ttl := database.RedisDB.TTL(ctx, cooldownKey).Val()
			dto.AbortErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.TooManyRequests),
				response.WithErrorMessage(fmt.Sprintf("尝试次数过多，请 %d 分钟后再试", int(ttl.Minutes())+1)),
			))
			return
		}

		attempts, _ := database.RedisDB.Get(ctx, "login_attempts:"+input.Username).Int()
		if attempts >= loginMaxAttempts {
			database.RedisDB.Set(ctx, cooldownKey, "1", loginCooldown)
			database.RedisDB.Del(ctx, "login_attempts:"+input.Username)
			dto.AbortErrorResponse(c, response.NewBusinessError(
				response.WithErrorCode(response.TooManyRequests),
				response.WithErrorMessage(fmt.Sprintf("尝试次数过多，已锁定 %d 分钟", int(loginCooldown.Minutes()))),
			))
			return
		}

		c.Next()
	}
}

// RecordLoginFailure 登录失败后累加计数，由登录handler调用
func RecordLoginFailure(username string) {
	if database.RedisDB == nil || username == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	key := "login_attempts:" + username
	database.RedisDB.Incr(ctx, key)
	database.RedisDB.Expire(ctx, key, loginAttemptWindow)
}

// ClearLoginFailures 登录成功后清除失败计数
func ClearLoginFailures(username string) {
	if database.RedisDB == nil || username == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	database.RedisDB.Del(ctx, "login_attempts:"+username)
}
