package chat

import (
	"context"

	"clinicdesk/models"
)

// ChatService handles one inbound patient message end to end: directory
// lookup, session management, the assistant round trip with tool dispatch,
// and transcript persistence.
type ChatService interface {
	HandleMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error)
}
