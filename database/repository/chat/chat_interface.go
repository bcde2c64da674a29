package chatRepo

import "clinicdesk/models"

// ChatRepository defines persistence for chat sessions and transcripts.
type ChatRepository interface {
	// GetOrCreateSession returns the patient's most recent session with the
	// clinic, creating one if none exists.
	GetOrCreateSession(patientID, clinicID string) (*models.ChatSession, error)
	SaveMessage(msg *models.ChatMessage) error
	// GetHistory returns the oldest-first transcript, capped at limit.
	GetHistory(sessionID string, limit int) ([]models.ChatMessage, error)
	ClearHistory(patientID, clinicID string) error
}
