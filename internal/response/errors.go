package response

import "net/http"

// 业务错误码
const (
	// 失败
	Fail ResponseCode = 0
	// 参数解析错误
	ParseError ResponseCode = 1
	// 参数错误
	InvalidParameter ResponseCode = 2
	// 资源不存在
	NotFound ResponseCode = 3
	// 未认证或认证失效
	Unauthorized ResponseCode = 4
	// 唯一性冲突
	Conflict ResponseCode = 5
	// 请求过于频繁
	TooManyRequests ResponseCode = 6
)

type BusinessError struct {
	Code ResponseCode
	Msg  string
	Err  error
}

// Error 实现 error 接口
func (be *BusinessError) Error() string {
	return be.Msg
}

// HTTPStatus 业务错误码到HTTP状态码的映射
func (be *BusinessError) HTTPStatus() int {
	switch be.Code {
	case ParseError, InvalidParameter, Fail:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Unauthorized:
		return http.StatusUnauthorized
	case Conflict:
		return http.StatusConflict
	case TooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

type ErrorOption func(*BusinessError)

func WithErrorCode(code ResponseCode) ErrorOption {
	return func(be *BusinessError) {
		be.Code = code
	}
}

func WithErrorMessage(msg string) ErrorOption {
	return func(be *BusinessError) {
		be.Msg = msg
	}
}

func WithError(err error) ErrorOption {
	return func(be *BusinessError) {
		be.Err = err
	}
}

func NewBusinessError(opts ...ErrorOption) *BusinessError {
	err := &BusinessError{
		Code: Fail,
		Msg:  "business error",
		Err:  nil,
	}
	for _, opt := range opts {
		opt(err)
	}
	return err
}

// ===== 常用错误的快捷构造 =====

func NotFoundError(msg string) *BusinessError {
	return NewBusinessError(WithErrorCode(NotFound), WithErrorMessage(msg))
}

func ConflictError(msg string) *BusinessError {
	return NewBusinessError(WithErrorCode(Conflict), WithErrorMessage(msg))
}

func UnauthorizedError(msg string) *BusinessError {
	return NewBusinessError(WithErrorCode(Unauthorized), WithErrorMessage(msg))
}

func BadRequestError(msg string) *BusinessError {
	return NewBusinessError(WithErrorCode(InvalidParameter), WithErrorMessage(msg))
}
