// File: services/chat/service.go
package chat

import (
	"context"
	"time"

	"hotelbot/models"
	"hotelbot/utils"

	"go.uber.org/zap"
)

// SystemPrompt fixes the assistant's persona and the booking workflow it
// walks users through.
const SystemPrompt = `You are a helpful and friendly AI hotel concierge assistant for a hotel booking system.
Your name is HotelBot, and you work for a premium hotel booking platform.

Your capabilities:
1. Search for available hotels in various cities across India
2. Help users book hotel rooms
3. Modify existing bookings (change dates, number of guests)
4. Cancel bookings when requested
5. Provide travel recommendations and tips

Guidelines:
- Always be polite, professional, and helpful
- When a user wants to book a hotel, collect these details:
  * City/Location
  * Check-in date
  * Check-out date
  * Number of guests
  * Room preference (single/double/suite) - optional
  * Budget range - optional
- Ask one or two questions at a time, not all at once
- If the user provides partial information, acknowledge what you have and ask for what's missing
- When displaying hotel options, format them clearly with name, location, price, and room type
- After a booking is confirmed, always provide the booking reference ID
- For modifications or cancellations, ask for the booking reference ID first
- Be conversational and natural in your responses
- If you don't know something, be honest about it
- For travel tips, use your general knowledge about Indian destinations

Current date context: The system date should be considered for booking validations.
Booking IDs follow the format: HBK-YYYY-XXXXX (e.g., HBK-2026-00123)

Remember: You have access to tools for searching hotels, creating bookings, modifying bookings, and cancelling bookings.
Use these tools when the user requests these actions and you have collected sufficient information.`

// fallbackMessage is returned whenever the chat engine fails; the caller
// always gets a reply instead of an error.
const fallbackMessage = "I apologize, but I encountered an issue processing your request. " +
	"Please try again or rephrase your question."

// ChatService is the orchestration boundary between the HTTP layer and the
// chat engine.
type ChatService interface {
	Chat(ctx context.Context, sessionID, message string) *models.ChatResponse
	ClearSession(ctx context.Context, sessionID string)
}

// DefaultChatService implements ChatService over an Engine and a SessionStore.
type DefaultChatService struct {
	Engine   Engine
	Sessions SessionStore
}

// Chat records the session access and relays the message to the engine. Any
// engine failure resolves to the fallback message rather than an error.
func (s *DefaultChatService) Chat(ctx context.Context, sessionID, message string) *models.ChatResponse {
	s.touch(ctx, sessionID)

	reply, err := s.Engine.Respond(ctx, sessionID, message)
	if err != nil {
		utils.GetLogger().Warn("Chat engine failure",
			zap.String("session", sessionID), zap.Error(err))
		return &models.ChatResponse{Message: fallbackMessage}
	}
	return &models.ChatResponse{Message: reply}
}

// ClearSession drops the engine-side conversation history and the session
// tracking entry.
func (s *DefaultChatService) ClearSession(ctx context.Context, sessionID string) {
	s.Engine.ClearSession(sessionID)
	if err := s.Sessions.Remove(ctx, sessionID); err != nil {
		utils.GetLogger().Warn("Failed to remove session entry",
			zap.String("session", sessionID), zap.Error(err))
	}
}

func (s *DefaultChatService) touch(ctx context.Context, sessionID string) {
	info, err := s.Sessions.Get(ctx, sessionID)
	if err != nil {
		utils.GetLogger().Warn("Failed to load session entry",
			zap.String("session", sessionID), zap.Error(err))
	}
	if info == nil {
		info = &models.SessionInfo{SessionID: sessionID}
	}
	info.LastAccess = time.Now()
	info.Messages++
	if err := s.Sessions.Put(ctx, info); err != nil {
		utils.GetLogger().Warn("Failed to store session entry",
			zap.String("session", sessionID), zap.Error(err))
	}
}
