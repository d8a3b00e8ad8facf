package service

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/animall-next/internal/constants"
	"github.com/animall-next/internal/models"
	"github.com/animall-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupSessionServiceTest(t *testing.T) (*SessionService, *gorm.DB, string) {
	t.Helper()
	dsn := fmt.Sprintf("file:session_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Session{},
		&models.CartItem{},
		&models.ChatMessage{},
		&models.Generation{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	artworkDir := t.TempDir()
	chatRepo := repository.NewChatMessageRepository(db)
	assistant := NewAssistantService(chatRepo, nil, true)
	svc := NewSessionService(
		repository.NewSessionRepository(db),
		repository.NewCartRepository(db),
		chatRepo,
		repository.NewGenerationRepository(db),
		NewArtworkService(artworkDir),
		assistant,
		nil,
		720,
	)
	return svc, db, artworkDir
}

func TestSessionEnsureCreates(t *testing.T) {
	svc, _, _ := setupSessionServiceTest(t)

	session, err := svc.Ensure("s1")
	if err != nil {
		t.Fatalf("ensure failed: %v", err)
	}
	if session.ID != "s1" {
		t.Fatalf("session id want s1 got %q", session.ID)
	}
	if session.View != constants.ViewHome {
		t.Fatalf("new session view want home got %q", session.View)
	}
}

func TestSessionEnsureIdempotent(t *testing.T) {
	svc, db, _ := setupSessionServiceTest(t)

	first, err := svc.Ensure("s1")
	if err != nil {
		t.Fatalf("first ensure failed: %v", err)
	}
	first.View = constants.ViewShop
	if err := db.Save(first).Error; err != nil {
		t.Fatalf("save session failed: %v", err)
	}

	again, err := svc.Ensure("s1")
	if err != nil {
		t.Fatalf("second ensure failed: %v", err)
	}
	if again.View != constants.ViewShop {
		t.Fatalf("ensure must not reset existing session, view got %q", again.View)
	}

	var count int64
	if err := db.Model(&models.Session{}).Count(&count).Error; err != nil {
		t.Fatalf("count sessions failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("sessions want 1 got %d", count)
	}
}

func TestSessionPurgeRemovesEverything(t *testing.T) {
	svc, db, artworkDir := setupSessionServiceTest(t)

	if _, err := svc.Ensure("s1"); err != nil {
		t.Fatalf("ensure failed: %v", err)
	}
	product := createTestProduct(t, db, "ghost-ship", "25.00", true, false)
	if err := db.Create(&models.CartItem{SessionID: "s1", ProductID: product.ID, Quantity: 2}).Error; err != nil {
		t.Fatalf("create cart item failed: %v", err)
	}
	if err := db.Create(&models.ChatMessage{SessionID: "s1", Role: constants.ChatRoleUser, Text: "hi"}).Error; err != nil {
		t.Fatalf("create chat message failed: %v", err)
	}
	filename := "poster_purge_test.png"
	if err := os.WriteFile(filepath.Join(artworkDir, filename), []byte{1}, 0o644); err != nil {
		t.Fatalf("write artwork failed: %v", err)
	}
	createGeneration(t, db, "s1", constants.GenerationStatusReady, constants.QualityStandard, "/artwork/"+filename)

	if err := svc.Purge("s1"); err != nil {
		t.Fatalf("purge failed: %v", err)
	}

	for name, model := range map[string]interface{}{
		"cart items":    &models.CartItem{},
		"chat messages": &models.ChatMessage{},
		"generations":   &models.Generation{},
	} {
		var count int64
		if err := db.Model(model).Where("session_id = ?", "s1").Count(&count).Error; err != nil {
			t.Fatalf("count %s failed: %v", name, err)
		}
		if count != 0 {
			t.Fatalf("%s should be purged, got %d", name, count)
		}
	}
	var sessionCount int64
	if err := db.Model(&models.Session{}).Where("id = ?", "s1").Count(&sessionCount).Error; err != nil {
		t.Fatalf("count sessions failed: %v", err)
	}
	if sessionCount != 0 {
		t.Fatalf("session row should be purged")
	}
	if _, err := os.Stat(filepath.Join(artworkDir, filename)); !os.IsNotExist(err) {
		t.Fatalf("artwork file should be removed, stat err: %v", err)
	}
}

func TestSessionPurgeEmptyIDNoop(t *testing.T) {
	svc, _, _ := setupSessionServiceTest(t)
	if err := svc.Purge(""); err != nil {
		t.Fatalf("purge with empty id should be a noop: %v", err)
	}
}
