package dto

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	res "fiberloom/backend/internal/response"
)

func SuccessResponse(c *gin.Context, data any) {
	c.JSON(http.StatusOK, res.SuccessResponse(data))
}

func CreatedResponse(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, res.SuccessResponse(data))
}

// ErrorResponse 按业务错误码映射HTTP状态码，返回统一错误体
func ErrorResponse(c *gin.Context, err *res.BusinessError) {
	c.JSON(err.HTTPStatus(), res.ErrorResponse(err.Code, err.Msg))
}

// AbortErrorResponse 中间件用：返回错误并终止后续handler
func AbortErrorResponse(c *gin.Context, err *res.BusinessError) {
	c.AbortWithStatusJSON(err.HTTPStatus(), res.ErrorResponse(err.Code, err.Msg))
}

// ValidationErrorResponse 处理验证错误，返回友好的JSON字段名
func ValidationErrorResponse(c *gin.Context, err error) {
	// 尝试转换为 validator.ValidationErrors
	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		// 获取第一个错误
		if len(validationErrs) > 0 {
			firstErr := validationErrs[0]

			// 获取字段的JSON标签名
			jsonField := getJSONFieldName(firstErr)

			// 构造友好的错误消息
			var message string
			switch firstErr.Tag() {
			case "required":
				message = fmt.Sprintf("字段 '%s' 是必填项", jsonField)
			case "max":
				message = fmt.Sprintf("字段 '%s' 不能超过 %s", jsonField, firstErr.Param())
			case "min":
				message = fmt.Sprintf("字段 '%s' 不能少于 %s", jsonField, firstErr.Param())
			case "gt":
				message = fmt.Sprintf("字段 '%s' 必须大于 %s", jsonField, firstErr.Param())
			case "gte":
				message = fmt.Sprintf("字段 '%s' 必须不小于 %s", jsonField, firstErr.Param())
			case "oneof":
				message = fmt.Sprintf("字段 '%s' 必须是以下值之一: %s", jsonField, firstErr.Param())
			case "url":
				message = fmt.Sprintf("字段 '%s' 必须是合法URL", jsonField)
			default:
				message = fmt.Sprintf("字段 '%s' 验证失败: %s", jsonField, firstErr.Tag())
			}

			ErrorResponse(c, res.NewBusinessError(
				res.WithErrorCode(res.ParseError),
				res.WithErrorMessage(message),
			))
			return
		}
	}

	// 如果不是 validation 错误，返回原始错误消息
	ErrorResponse(c, res.NewBusinessError(
		res.WithErrorCode(res.ParseError),
		res.WithErrorMessage("参数错误: "+err.Error()),
	))
}

// getJSONFieldName 获取字段的JSON标签名称
func getJSONFieldName(fe validator.FieldError) string {
	// 获取字段所在的结构体命名空间
	field := fe.StructNamespace()

	if strings.Contains(field, ".") {
		parts := strings.Split(field, ".")
		if len(parts) > 1 {
			// 获取最后一个字段名（去掉结构体名称前缀）
			fieldName := parts[len(parts)-1]

			// validator不提供结构体实例，返回字段名的snake_case版本
			return toSnakeCase(fieldName)
		}
	}

	return toSnakeCase(fe.Field())
}

// toSnakeCase 将PascalCase转换为snake_case
func toSnakeCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune('_')
		}
		result.WriteRune(r)
	}
	return strings.ToLower(result.String())
}
