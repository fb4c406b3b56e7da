package response

import (
	"encoding/json"
	"net/http"
	"testing"
)

// TestResponseEnvelope 测试统一响应体的序列化形状
func TestResponseEnvelope(t *testing.T) {
	ok := SuccessResponse(map[string]int{"id": 7})
	if ok.Code != Success || ok.Message != "success" {
		t.Errorf("SuccessResponse = %+v", ok)
	}

	b, err := json.Marshal(ok)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	var decoded struct {
		Code    int            `json:"code"`
		Message string         `json:"message"`
		Data    map[string]int `json:"data"`
	}
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if decoded.Code != 100 || decoded.Data["id"] != 7 {
		t.Errorf("envelope = %+v", decoded)
	}

	bad := ErrorResponse(NotFound, "没有这个东西")
	if bad.Code != NotFound || bad.Data != nil {
		t.Errorf("ErrorResponse = %+v", bad)
	}
}

// TestBusinessErrorHTTPStatus 测试业务码到HTTP状态码的映射
func TestBusinessErrorHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  *BusinessError
		want int
	}{
		{"not found", NotFoundError("x"), http.StatusNotFound},
		{"conflict", ConflictError("x"), http.StatusConflict},
		{"unauthorized", UnauthorizedError("x"), http.StatusUnauthorized},
		{"bad request", BadRequestError("x"), http.StatusBadRequest},
		{"parse error", NewBusinessError(WithErrorCode(ParseError)), http.StatusBadRequest},
		{"too many requests", NewBusinessError(WithErrorCode(TooManyRequests)), http.StatusTooManyRequests},
		{"unknown code", NewBusinessError(WithErrorCode(ResponseCode(99))), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.HTTPStatus(); got != tt.want {
				t.Errorf("HTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}
