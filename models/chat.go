package models

import "time"

// Patient is a chat user, keyed by phone number within a clinic.
type Patient struct {
	ID          string    `bson:"id" json:"id"`
	ClinicID    string    `bson:"clinicId" json:"clinicId"`
	PhoneNumber string    `bson:"phoneNumber" json:"phoneNumber"`
	Name        string    `bson:"name,omitempty" json:"name,omitempty"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	LastSeenAt  time.Time `bson:"lastSeenAt" json:"lastSeenAt"`
}

// ChatSession groups a patient's conversation with one clinic.
type ChatSession struct {
	ID            string    `bson:"id" json:"id"`
	ClinicID      string    `bson:"clinicId" json:"clinicId"`
	PatientID     string    `bson:"patientId" json:"patientId"`
	StartedAt     time.Time `bson:"startedAt" json:"startedAt"`
	LastMessageAt time.Time `bson:"lastMessageAt" json:"lastMessageAt"`
}

// ChatMessage roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// ChatMessage is one transcript entry. Tool invocations are stored with
// RoleTool and the function name so a session can be replayed.
type ChatMessage struct {
	ID           string    `bson:"id" json:"id"`
	SessionID    string    `bson:"sessionId" json:"sessionId"`
	ClinicID     string    `bson:"clinicId" json:"clinicId"`
	PatientID    string    `bson:"patientId" json:"patientId"`
	Role         string    `bson:"role" json:"role"`
	Content      string    `bson:"content" json:"content"`
	FunctionName string    `bson:"functionName,omitempty" json:"functionName,omitempty"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// ChatRequest is the inbound chat payload.
type ChatRequest struct {
	Message     string `json:"message" binding:"required"`
	ClinicID    string `json:"clinicId" binding:"required"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	UserName    string `json:"userName,omitempty"`
}

// ChatResponse is what the orchestrator surfaces back to the user.
type ChatResponse struct {
	Response   string `json:"response"`
	SessionID  string `json:"sessionId"`
	PatientID  string `json:"patientId"`
	ClinicName string `json:"clinicName"`
	Error      string `json:"error,omitempty"`
}
