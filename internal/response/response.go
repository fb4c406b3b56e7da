// Package response 统一响应体与业务错误定义
// 业务码与HTTP状态码相互独立，状态码由 BusinessError.HTTPStatus 映射
package response

// ResponseCode 业务码
type ResponseCode int

// Success 成功业务码，客户端以此判定业务成败
const Success ResponseCode = 100

// Response 统一响应体 {code, message, data}
type Response struct {
	Code    ResponseCode `json:"code"`
	Message string       `json:"message"`
	Data    any          `json:"data"`
}

// SuccessResponse 成功响应，数据挂在data字段
func SuccessResponse(data any) Response {
	return Response{
		Code:    Success,
		Message: "success",
		Data:    data,
	}
}

// ErrorResponse 错误响应，data恒为空
func ErrorResponse(code ResponseCode, msg string) Response {
	return Response{
		Code:    code,
		Message: msg,
	}
}
