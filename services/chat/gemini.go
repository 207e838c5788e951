// File: services/chat/gemini.go
package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"hotelbot/utils"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// maxToolRounds caps the function-call loop per user message so a model that
// keeps requesting tools cannot hold the request thread forever.
const maxToolRounds = 5

// Engine is the boundary to the external chat model: given a conversation key
// and a user message it produces a text reply, invoking zero or more tools
// along the way. Conversation memory lives inside the engine.
type Engine interface {
	Respond(ctx context.Context, sessionID, userMessage string) (string, error)
	// ClearSession drops the engine-side conversation history for a session.
	ClearSession(sessionID string)
	// EvictIdleSessions drops histories idle for longer than the given
	// duration and returns how many were removed.
	EvictIdleSessions(idleFor time.Duration) int
}

// GeminiEngine implements Engine on the Gemini API with function calling.
// Each session owns a ChatSession carrying the conversation history.
type GeminiEngine struct {
	model *genai.GenerativeModel
	tools *BookingTools

	mu       sync.Mutex
	sessions map[string]*engineSession
}

type engineSession struct {
	mu       sync.Mutex
	chat     *genai.ChatSession
	lastUsed time.Time
}

// NewGeminiEngine creates a Gemini-backed engine with the system prompt and
// the tool declarations registered on the model.
func NewGeminiEngine(apiKey, modelName, systemPrompt string, tools *BookingTools) (*GeminiEngine, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	model.Tools = []*genai.Tool{{FunctionDeclarations: tools.Declarations()}}

	return &GeminiEngine{
		model:    model,
		tools:    tools,
		sessions: make(map[string]*engineSession),
	}, nil
}

// Respond sends the user message on the session's chat and runs the
// function-calling loop: every FunctionCall part is dispatched to the tool
// set and its text result is sent back as a FunctionResponse, until the
// model answers in plain text.
func (g *GeminiEngine) Respond(ctx context.Context, sessionID, userMessage string) (string, error) {
	sess := g.session(sessionID)
	sess.mu.Lock()
	defer sess.mu.Unlock()

	resp, err := sess.chat.SendMessage(ctx, genai.Text(userMessage))
	if err != nil {
		return "", fmt.Errorf("gemini send error: %w", err)
	}

	for round := 0; round < maxToolRounds; round++ {
		calls := functionCalls(resp)
		if len(calls) == 0 {
			break
		}

		replies := make([]genai.Part, 0, len(calls))
		for _, call := range calls {
			result := g.tools.Dispatch(call.Name, call.Args)
			utils.GetLogger().Debug("Tool invoked",
				zap.String("session", sessionID), zap.String("tool", call.Name))
			replies = append(replies, genai.FunctionResponse{
				Name:     call.Name,
				Response: map[string]any{"result": result},
			})
		}

		resp, err = sess.chat.SendMessage(ctx, replies...)
		if err != nil {
			return "", fmt.Errorf("gemini tool response error: %w", err)
		}
	}

	return textOf(resp), nil
}

// ClearSession drops the conversation history for a session.
func (g *GeminiEngine) ClearSession(sessionID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.sessions, sessionID)
}

// EvictIdleSessions removes chat histories idle for longer than idleFor.
func (g *GeminiEngine) EvictIdleSessions(idleFor time.Duration) int {
	cutoff := time.Now().Add(-idleFor)

	g.mu.Lock()
	defer g.mu.Unlock()

	evicted := 0
	for id, sess := range g.sessions {
		if sess.lastUsed.Before(cutoff) {
			delete(g.sessions, id)
			evicted++
		}
	}
	return evicted
}

// session returns the session's chat state, creating it on first use.
func (g *GeminiEngine) session(sessionID string) *engineSession {
	g.mu.Lock()
	defer g.mu.Unlock()

	sess, ok := g.sessions[sessionID]
	if !ok {
		sess = &engineSession{chat: g.model.StartChat()}
		g.sessions[sessionID] = sess
	}
	sess.lastUsed = time.Now()
	return sess
}

// functionCalls extracts the FunctionCall parts of the first candidate.
func functionCalls(resp *genai.GenerateContentResponse) []genai.FunctionCall {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	var calls []genai.FunctionCall
	for _, part := range resp.Candidates[0].Content.Parts {
		if call, ok := part.(genai.FunctionCall); ok {
			calls = append(calls, call)
		}
	}
	return calls
}

// textOf concatenates the text parts of the first candidate.
func textOf(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}
