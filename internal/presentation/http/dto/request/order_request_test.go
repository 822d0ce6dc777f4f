package request

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func bindCreateOrder(t *testing.T, body string) (CreateOrderRequest, error) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/orders", strings.NewReader(body))

	var req CreateOrderRequest
	err := c.ShouldBindJSON(&req)
	return req, err
}

func TestCreateOrderRequestBinding(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "full payload",
			body: `{"tailor_id":"7d7a2e6a-13a7-4a99-8c3b-0a4c2b1d9e5f","order_type":"Kurta","price":50,
				"items":[{"garment_type":"Kurta","quantity":2,"total_price":50}]}`,
		},
		{
			// Itemless orders are valid; the invoice falls back to a
			// synthetic line built from the order type and price
			name: "no items",
			body: `{"tailor_id":"7d7a2e6a-13a7-4a99-8c3b-0a4c2b1d9e5f","order_type":"Saree Blouse","price":25}`,
		},
		{
			name:    "item missing garment type",
			body:    `{"tailor_id":"7d7a2e6a-13a7-4a99-8c3b-0a4c2b1d9e5f","order_type":"Kurta","price":50,"items":[{"quantity":1}]}`,
			wantErr: true,
		},
		{
			name:    "missing tailor id",
			body:    `{"order_type":"Kurta","price":50}`,
			wantErr: true,
		},
		{
			name:    "missing order type",
			body:    `{"tailor_id":"7d7a2e6a-13a7-4a99-8c3b-0a4c2b1d9e5f","price":50}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := bindCreateOrder(t, tt.body)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected binding error, got %+v", req)
				}
				return
			}
			if err != nil {
				t.Fatalf("binding failed: %v", err)
			}
		})
	}
}
