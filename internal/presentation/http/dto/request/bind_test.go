package request

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func testContext(t *testing.T, body string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestBindStrict(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid body", `{"reason":"spilled"}`, false},
		{"unknown field rejected", `{"reason":"spilled","priority":"high"}`, true},
		{"missing required field", `{}`, true},
		{"empty body", ``, true},
		{"malformed json", `{"reason":`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := testContext(t, tt.body)
			var req VoidOrderRequest
			err := BindStrict(c, &req)
			if (err != nil) != tt.wantErr {
				t.Errorf("BindStrict() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestBindStrictValidationTags(t *testing.T) {
	c := testContext(t, `{"email":"not-an-email","password":"secret123"}`)
	var req LoginRequest
	if err := BindStrict(c, &req); err == nil {
		t.Error("expected validation error for malformed email")
	}

	c = testContext(t, `{"email":"cashier@example.com","password":"secret123"}`)
	if err := BindStrict(c, &req); err != nil {
		t.Errorf("valid login rejected: %v", err)
	}
}
