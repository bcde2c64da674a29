package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	chatRepo "clinicdesk/database/repository/chat"
	clinicRepo "clinicdesk/database/repository/clinic"
	patientRepo "clinicdesk/database/repository/patient"
	"clinicdesk/models"
	bookingSvc "clinicdesk/services/booking"
	"clinicdesk/services/scheduling"
	"clinicdesk/utils"

	"go.uber.org/zap"
)

// ErrClinicNotFound marks an unknown clinic id on the chat path.
var ErrClinicNotFound = errors.New("clinic not found")

const emptyMessageReply = "I'm here to help you. Please let me know what you need assistance with."

// DefaultChatService implements ChatService.
type DefaultChatService struct {
	Clinics   clinicRepo.ClinicRepository
	Patients  patientRepo.PatientRepository
	Chats     chatRepo.ChatRepository
	History   *RedisHistoryStore
	Booking   bookingSvc.BookingService
	Assistant *GeminiAssistant
	// Now allows tests to pin the clock; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultChatService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultChatService) HandleMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	logger := utils.GetLogger()

	userInput := strings.TrimSpace(req.Message)
	if userInput == "" {
		return &models.ChatResponse{Response: emptyMessageReply}, nil
	}

	clinic, err := s.Clinics.GetByID(req.ClinicID)
	if err != nil {
		return nil, fmt.Errorf("clinic %s: %w", req.ClinicID, ErrClinicNotFound)
	}

	patient, err := s.Patients.GetOrCreate(req.PhoneNumber, clinic.ID, req.UserName)
	if err != nil {
		return nil, fmt.Errorf("failed to manage patient: %w", err)
	}

	session, err := s.Chats.GetOrCreateSession(patient.ID, clinic.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to manage chat session: %w", err)
	}

	history := s.loadHistory(ctx, session.ID)

	userMsg := models.ChatMessage{
		SessionID: session.ID,
		ClinicID:  clinic.ID,
		PatientID: patient.ID,
		Role:      models.RoleUser,
		Content:   userInput,
	}
	if err := s.Chats.SaveMessage(&userMsg); err != nil {
		logger.Error("failed to save user message", zap.Error(err))
	}

	prompt := SystemPrompt(clinic, s.now().In(scheduling.ClinicLocation(clinic.Timezone)))
	reply, err := s.Assistant.Converse(ctx, prompt, history, userInput,
		s.toolHandler(clinic, patient, session))
	if err != nil {
		logger.Error("assistant turn failed",
			zap.String("clinic", clinic.ID), zap.Error(err))
		return &models.ChatResponse{
			Response:   fmt.Sprintf("I'm sorry, there was an error processing your request. Please try again or call us at %s.", clinic.Phone),
			SessionID:  session.ID,
			PatientID:  patient.ID,
			ClinicName: clinic.Name,
			Error:      err.Error(),
		}, nil
	}

	assistantMsg := models.ChatMessage{
		SessionID: session.ID,
		ClinicID:  clinic.ID,
		PatientID: patient.ID,
		Role:      models.RoleAssistant,
		Content:   reply,
	}
	if err := s.Chats.SaveMessage(&assistantMsg); err != nil {
		logger.Error("failed to save assistant message", zap.Error(err))
	}

	if s.History != nil {
		updated := append(append(history, userMsg), assistantMsg)
		if err := s.History.Set(ctx, session.ID, updated); err != nil {
			logger.Warn("failed to refresh history cache", zap.Error(err))
		}
	}

	return &models.ChatResponse{
		Response:   reply,
		SessionID:  session.ID,
		PatientID:  patient.ID,
		ClinicName: clinic.Name,
	}, nil
}

// loadHistory prefers the Redis cache and falls back to Mongo; a transcript
// miss degrades to an empty history rather than failing the turn.
func (s *DefaultChatService) loadHistory(ctx context.Context, sessionID string) []models.ChatMessage {
	logger := utils.GetLogger()

	if s.History != nil {
		if history, err := s.History.Get(ctx, sessionID); err == nil && history != nil {
			return history
		} else if err != nil {
			logger.Warn("history cache read failed", zap.Error(err))
		}
	}

	history, err := s.Chats.GetHistory(sessionID, historyCap)
	if err != nil {
		logger.Error("failed to load chat history", zap.Error(err))
		return nil
	}
	return history
}

// toolHandler dispatches the model's function calls into the booking
// service. Every invocation is recorded on the transcript with its result.
func (s *DefaultChatService) toolHandler(clinic *models.Clinic, patient *models.Patient, session *models.ChatSession) ToolHandler {
	return func(ctx context.Context, name string, args map[string]any) map[string]any {
		var result map[string]any

		switch name {
		case "available_slots":
			result = s.handleAvailableSlots(ctx, clinic, args)
		case "book_appointment":
			result = s.handleBookAppointment(ctx, clinic, patient, args)
		default:
			result = map[string]any{"error": fmt.Sprintf("unknown function %q", name)}
		}

		s.recordToolCall(session, clinic, patient, name, result)
		return result
	}
}

func (s *DefaultChatService) handleAvailableSlots(ctx context.Context, clinic *models.Clinic, args map[string]any) map[string]any {
	service := stringArg(args, "service")
	nowLocal := s.now().In(scheduling.ClinicLocation(clinic.Timezone))
	date := scheduling.NormalizeDate(stringArg(args, "date"), nowLocal)

	slots, err := s.Booking.AvailableSlotDisplays(ctx, clinic, service, date)
	if err != nil {
		return map[string]any{"error": scheduling.FailureMessage(err, clinic)}
	}
	return map[string]any{"date": date, "slots": slots}
}

func (s *DefaultChatService) handleBookAppointment(ctx context.Context, clinic *models.Clinic, patient *models.Patient, args map[string]any) map[string]any {
	phone := stringArg(args, "patient_phone")
	if phone == "" {
		phone = patient.PhoneNumber
	}
	req := scheduling.BookingRequest{
		ServiceText:  stringArg(args, "service"),
		PatientName:  stringArg(args, "patient_name"),
		PatientPhone: phone,
		Slot:         stringArg(args, "slot"),
	}

	conf, err := s.Booking.BookAppointment(ctx, clinic, patient, req)
	if err != nil {
		return map[string]any{"result": scheduling.FailureMessage(err, clinic)}
	}
	return map[string]any{"result": bookingSvc.ConfirmationMessage(conf, clinic, req.PatientName)}
}

func (s *DefaultChatService) recordToolCall(session *models.ChatSession, clinic *models.Clinic, patient *models.Patient, name string, result map[string]any) {
	content, err := json.Marshal(result)
	if err != nil {
		content = []byte("{}")
	}
	msg := models.ChatMessage{
		SessionID:    session.ID,
		ClinicID:     clinic.ID,
		PatientID:    patient.ID,
		Role:         models.RoleTool,
		Content:      string(content),
		FunctionName: name,
	}
	if err := s.Chats.SaveMessage(&msg); err != nil {
		utils.GetLogger().Error("failed to save tool message",
			zap.String("function", name), zap.Error(err))
	}
}

func stringArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}
