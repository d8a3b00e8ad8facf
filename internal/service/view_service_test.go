package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/animall-next/internal/constants"
	"github.com/animall-next/internal/models"
	"github.com/animall-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupViewServiceTest(t *testing.T) (*ViewService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:view_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Session{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	return NewViewService(repository.NewSessionRepository(db)), db
}

func TestViewSetSwitches(t *testing.T) {
	svc, db := setupViewServiceTest(t)
	createTestSession(t, db, "s1")

	session, err := svc.SetView("s1", constants.ViewShop)
	if err != nil {
		t.Fatalf("set view failed: %v", err)
	}
	if session.View != constants.ViewShop {
		t.Fatalf("view want shop got %q", session.View)
	}

	session, err = svc.SetView("s1", constants.ViewGenerate)
	if err != nil {
		t.Fatalf("set view failed: %v", err)
	}
	if session.View != constants.ViewGenerate {
		t.Fatalf("view want generate got %q", session.View)
	}
}

func TestViewSetRejectsUnknown(t *testing.T) {
	svc, db := setupViewServiceTest(t)
	createTestSession(t, db, "s1")

	_, err := svc.SetView("s1", "checkout")
	if !errors.Is(err, ErrInvalidView) {
		t.Fatalf("expected ErrInvalidView, got %v", err)
	}
}

func TestViewGetMissingSession(t *testing.T) {
	svc, _ := setupViewServiceTest(t)

	_, err := svc.Get("missing")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestViewCartPanelToggle(t *testing.T) {
	svc, db := setupViewServiceTest(t)
	createTestSession(t, db, "s1")

	session, err := svc.OpenCart("s1")
	if err != nil {
		t.Fatalf("open cart failed: %v", err)
	}
	if !session.CartOpen {
		t.Fatalf("cart panel should be open")
	}

	session, err = svc.CloseCart("s1")
	if err != nil {
		t.Fatalf("close cart failed: %v", err)
	}
	if session.CartOpen {
		t.Fatalf("cart panel should be closed")
	}
}
