package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hotelbot/models"

	"github.com/gin-gonic/gin"
)

// fakeChatService records calls and echoes a canned reply.
type fakeChatService struct {
	lastSessionID string
	lastMessage   string
	cleared       []string
}

func (s *fakeChatService) Chat(ctx context.Context, sessionID, message string) *models.ChatResponse {
	s.lastSessionID = sessionID
	s.lastMessage = message
	return &models.ChatResponse{Message: "Hello! How can I help you with your hotel booking?"}
}

func (s *fakeChatService) ClearSession(ctx context.Context, sessionID string) {
	s.cleared = append(s.cleared, sessionID)
}

func newTestRouter(svc *fakeChatService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewChatHandler(svc)
	api := r.Group("/api/chat")
	api.POST("", h.Chat)
	api.DELETE("/session/:sessionId", h.ClearSession)
	r.GET("/api/health", HealthHandler)
	return r
}

func postChat(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestChatEndpoint(t *testing.T) {
	svc := &fakeChatService{}
	r := newTestRouter(svc)

	w := postChat(r, `{"message":"Find hotels in Goa","sessionId":"s1"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp models.ChatResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp.Message == "" {
		t.Error("empty reply message")
	}
	if svc.lastSessionID != "s1" {
		t.Errorf("session = %q, want s1", svc.lastSessionID)
	}
	if svc.lastMessage != "Find hotels in Goa" {
		t.Errorf("message = %q", svc.lastMessage)
	}
}

func TestChatEndpointDefaultsSession(t *testing.T) {
	svc := &fakeChatService{}
	r := newTestRouter(svc)

	w := postChat(r, `{"message":"hi"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if svc.lastSessionID != "default-session" {
		t.Errorf("session = %q, want default-session", svc.lastSessionID)
	}
}

func TestChatEndpointRejectsMissingMessage(t *testing.T) {
	r := newTestRouter(&fakeChatService{})

	w := postChat(r, `{"sessionId":"s1"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestChatEndpointRejectsBlankMessage(t *testing.T) {
	r := newTestRouter(&fakeChatService{})

	w := postChat(r, `{"message":"   "}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestChatEndpointRejectsOversizedMessage(t *testing.T) {
	r := newTestRouter(&fakeChatService{})

	long := strings.Repeat("a", 2001)
	w := postChat(r, `{"message":"`+long+`"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestClearSessionEndpoint(t *testing.T) {
	svc := &fakeChatService{}
	r := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/chat/session/s1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", w.Code)
	}
	if len(svc.cleared) != 1 || svc.cleared[0] != "s1" {
		t.Errorf("cleared = %v, want [s1]", svc.cleared)
	}
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestRouter(&fakeChatService{})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var payload map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid health JSON: %v", err)
	}
	if payload["status"] != "UP" {
		t.Errorf("status field = %v, want UP", payload["status"])
	}
}
