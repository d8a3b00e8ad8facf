package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/animall-next/internal/constants"
	"github.com/animall-next/internal/gemini"
	"github.com/animall-next/internal/models"
	"github.com/animall-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAssistantServiceTest(t *testing.T, ai gemini.Client, enabled bool) *AssistantService {
	t.Helper()
	dsn := fmt.Sprintf("file:assistant_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.ChatMessage{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db
	return NewAssistantService(repository.NewChatMessageRepository(db), ai, enabled)
}

func TestAssistantTranscriptSeedsGreeting(t *testing.T) {
	svc := setupAssistantServiceTest(t, &fakeAIClient{}, true)

	messages, err := svc.Transcript("s1")
	if err != nil {
		t.Fatalf("transcript failed: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("fresh transcript want 1 message got %d", len(messages))
	}
	if messages[0].Role != constants.ChatRoleAssistant {
		t.Fatalf("greeting role want assistant got %q", messages[0].Role)
	}
	if messages[0].Text != constants.AssistantGreeting {
		t.Fatalf("greeting text got %q", messages[0].Text)
	}
}

func TestAssistantSendMessageAppendsBothSides(t *testing.T) {
	svc := setupAssistantServiceTest(t, &fakeAIClient{chatReply: "Try the Shonen Battle collection!"}, true)

	reply, err := svc.SendMessage(context.Background(), "s1", "what do you recommend?")
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if reply.Role != constants.ChatRoleAssistant {
		t.Fatalf("reply role want assistant got %q", reply.Role)
	}
	if reply.Text != "Try the Shonen Battle collection!" {
		t.Fatalf("reply text got %q", reply.Text)
	}

	messages, err := svc.Transcript("s1")
	if err != nil {
		t.Fatalf("transcript failed: %v", err)
	}
	// 问候语 + 用户发言 + 助手回复
	if len(messages) != 3 {
		t.Fatalf("transcript want 3 messages got %d", len(messages))
	}
	if messages[1].Role != constants.ChatRoleUser || messages[1].Text != "what do you recommend?" {
		t.Fatalf("user message wrong: %+v", messages[1])
	}
	if messages[2].Role != constants.ChatRoleAssistant {
		t.Fatalf("assistant message wrong: %+v", messages[2])
	}
}

func TestAssistantSendMessageRejectsEmpty(t *testing.T) {
	svc := setupAssistantServiceTest(t, &fakeAIClient{}, true)

	_, err := svc.SendMessage(context.Background(), "s1", "   ")
	if !errors.Is(err, ErrMessageRequired) {
		t.Fatalf("expected ErrMessageRequired, got %v", err)
	}
}

func TestAssistantDisabled(t *testing.T) {
	svc := setupAssistantServiceTest(t, &fakeAIClient{}, false)

	if _, err := svc.SendMessage(context.Background(), "s1", "hello"); !errors.Is(err, ErrAssistantDisabled) {
		t.Fatalf("expected ErrAssistantDisabled, got %v", err)
	}
	if _, err := svc.Transcript("s1"); !errors.Is(err, ErrAssistantDisabled) {
		t.Fatalf("expected ErrAssistantDisabled, got %v", err)
	}
}

func TestAssistantRemoteFailureFallsBack(t *testing.T) {
	svc := setupAssistantServiceTest(t, &fakeAIClient{chatErr: errors.New("connection reset")}, true)

	reply, err := svc.SendMessage(context.Background(), "s1", "hello")
	if err != nil {
		t.Fatalf("send should not surface remote errors: %v", err)
	}
	if reply.Text != constants.AssistantFallbackReply {
		t.Fatalf("reply want fallback got %q", reply.Text)
	}
}

func TestAssistantEmptyResponseFallsBack(t *testing.T) {
	svc := setupAssistantServiceTest(t, &fakeAIClient{chatErr: gemini.ErrEmptyResponse}, true)

	reply, err := svc.SendMessage(context.Background(), "s1", "hello")
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if reply.Text != constants.AssistantEmptyReply {
		t.Fatalf("reply want empty-reply fallback got %q", reply.Text)
	}
}

func TestAssistantNilClientFallsBack(t *testing.T) {
	svc := setupAssistantServiceTest(t, nil, true)

	reply, err := svc.SendMessage(context.Background(), "s1", "hello")
	if err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if reply.Text != constants.AssistantFallbackReply {
		t.Fatalf("reply want fallback got %q", reply.Text)
	}
}
