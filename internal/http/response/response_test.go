package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/resto-next/internal/models"

	"github.com/gin-gonic/gin"
)

func TestCartSuccessBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	CartSuccess(c, "ok", models.NewMoneyFromInt(1000), 2, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200 got %d", w.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body failed: %v", err)
	}
	if body["success"] != true || body["cart_total"] != float64(1000) || body["cart_count"] != float64(2) {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestCartSuccessWithStatusKeepsFractionalTotal(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	total, err := models.ParseMoney("12.5")
	if err != nil {
		t.Fatalf("parse money failed: %v", err)
	}
	CartSuccessWithStatus(c, http.StatusCreated, "ok", total, 0, nil)

	if w.Code != http.StatusCreated {
		t.Fatalf("want 201 got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"cart_total":12.50`) || !strings.Contains(w.Body.String(), `"cart_count":0`) {
		t.Fatalf("cart_total must be a JSON number, got %s", w.Body.String())
	}
}

func TestCartFailureOmitsTotals(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	CartFailure(c, http.StatusNotFound, "missing")

	if w.Code != http.StatusNotFound {
		t.Fatalf("want 404 got %d", w.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body failed: %v", err)
	}
	if body["success"] != false || body["message"] != "missing" {
		t.Fatalf("unexpected body %v", body)
	}
	if _, ok := body["cart_total"]; ok {
		t.Fatalf("failure should not carry cart_total")
	}
}

func TestErrorAttachesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("request_id", "req-1")

	Error(c, CodeBadRequest, "bad")

	var body Response
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body failed: %v", err)
	}
	data, _ := body.Data.(map[string]interface{})
	if body.StatusCode != CodeBadRequest || data["request_id"] != "req-1" {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 20, 41)
	if p.TotalPage != 3 {
		t.Fatalf("want 3 pages got %d", p.TotalPage)
	}
}

func TestAppErrorUnwrapAndInternal(t *testing.T) {
	cause := errors.New("db down")
	appErr := NewAppError(CodeInternal, "error.cart_update_failed", "Erreur", cause)
	if !errors.Is(appErr, cause) {
		t.Fatalf("app error should unwrap to cause")
	}
	if !appErr.Internal() {
		t.Fatalf("internal code should be internal")
	}
	if appErr.Error() != "error.cart_update_failed: db down" {
		t.Fatalf("unexpected error text %s", appErr.Error())
	}
	plain := NewAppError(CodeBadRequest, "error.invalid_quantity", "Quantité invalide", nil)
	if plain.Internal() {
		t.Fatalf("validation error without cause should not be internal")
	}
}
