package public

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/animall-next/internal/config"
	"github.com/animall-next/internal/constants"
	handlershared "github.com/animall-next/internal/http/handlers/shared"
	"github.com/animall-next/internal/http/response"
	"github.com/animall-next/internal/models"
	"github.com/animall-next/internal/provider"
	"github.com/animall-next/internal/repository"
	"github.com/animall-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupCartHandlerTest(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:cart_handler_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Session{},
		&models.CartItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	if err := db.Create(&models.Session{ID: "s1", View: constants.ViewHome}).Error; err != nil {
		t.Fatalf("create session failed: %v", err)
	}

	container := &provider.Container{Config: &config.Config{}}
	container.CartService = service.NewCartService(
		repository.NewCartRepository(db),
		repository.NewProductRepository(db),
		repository.NewSessionRepository(db),
	)
	handler := New(container)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(handlershared.SessionContextKey, "s1")
	})
	r.GET("/cart", handler.GetCart)
	r.POST("/cart/items", handler.AddCartItem)
	r.PATCH("/cart/items/:product_id", handler.AdjustCartItem)
	r.DELETE("/cart/items/:product_id", handler.DeleteCartItem)
	r.DELETE("/cart", handler.ClearCart)
	return r, db
}

func createHandlerProduct(t *testing.T, db *gorm.DB, slug string, active bool) *models.Product {
	t.Helper()
	product := &models.Product{
		Slug:        slug,
		Title:       slug,
		PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(24.99)),
		IsActive:    active,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *response.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body failed: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("%s %s http status want 200 got %d", method, path, w.Code)
	}
	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response failed: %v", err)
	}
	return &resp
}

func TestCartHandlerAddAndGet(t *testing.T) {
	r, db := setupCartHandlerTest(t)
	product := createHandlerProduct(t, db, "neon-samurai", true)

	resp := doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"product_id": product.ID, "quantity": 2})
	if resp.StatusCode != response.CodeOK {
		t.Fatalf("add status want 0 got %d (%s)", resp.StatusCode, resp.Msg)
	}

	resp = doJSON(t, r, http.MethodGet, "/cart", nil)
	if resp.StatusCode != response.CodeOK {
		t.Fatalf("get status want 0 got %d", resp.StatusCode)
	}
	data, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("cart payload type %T", resp.Data)
	}
	if got := data["total_quantity"].(float64); got != 2 {
		t.Fatalf("total quantity want 2 got %v", got)
	}
	if got := data["subtotal"].(string); got != "49.98" {
		t.Fatalf("subtotal want 49.98 got %v", got)
	}
}

func TestCartHandlerAddRejectsInactive(t *testing.T) {
	r, db := setupCartHandlerTest(t)
	product := createHandlerProduct(t, db, "retired", false)

	resp := doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"product_id": product.ID})
	if resp.StatusCode != response.CodeBadRequest {
		t.Fatalf("status want %d got %d (%s)", response.CodeBadRequest, resp.StatusCode, resp.Msg)
	}
}

func TestCartHandlerAddRejectsBadBody(t *testing.T) {
	r, _ := setupCartHandlerTest(t)

	resp := doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"quantity": 1})
	if resp.StatusCode != response.CodeBadRequest {
		t.Fatalf("status want %d got %d", response.CodeBadRequest, resp.StatusCode)
	}
}

func TestCartHandlerAdjustAndDelete(t *testing.T) {
	r, db := setupCartHandlerTest(t)
	product := createHandlerProduct(t, db, "mecha-strike", true)

	doJSON(t, r, http.MethodPost, "/cart/items", gin.H{"product_id": product.ID, "quantity": 3})

	resp := doJSON(t, r, http.MethodPatch, fmt.Sprintf("/cart/items/%d", product.ID), gin.H{"delta": -2})
	if resp.StatusCode != response.CodeOK {
		t.Fatalf("adjust status want 0 got %d (%s)", resp.StatusCode, resp.Msg)
	}
	data := resp.Data.(map[string]interface{})
	if got := data["total_quantity"].(float64); got != 1 {
		t.Fatalf("total quantity want 1 got %v", got)
	}

	resp = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/cart/items/%d", product.ID), nil)
	if resp.StatusCode != response.CodeOK {
		t.Fatalf("delete status want 0 got %d", resp.StatusCode)
	}

	resp = doJSON(t, r, http.MethodGet, "/cart", nil)
	data = resp.Data.(map[string]interface{})
	if got := data["total_quantity"].(float64); got != 0 {
		t.Fatalf("cart should be empty, total quantity %v", got)
	}
}

func TestCartHandlerInvalidProductID(t *testing.T) {
	r, _ := setupCartHandlerTest(t)

	resp := doJSON(t, r, http.MethodPatch, "/cart/items/abc", gin.H{"delta": 1})
	if resp.StatusCode != response.CodeBadRequest {
		t.Fatalf("status want %d got %d", response.CodeBadRequest, resp.StatusCode)
	}
}
