package chatRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"clinicdesk/database"
	"clinicdesk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoChatRepo implements ChatRepository using MongoDB.
type MongoChatRepo struct {
	sessions *mongo.Collection
	messages *mongo.Collection
}

// NewMongoChatRepo creates a new instance of ChatRepository using MongoDB.
func NewMongoChatRepo() ChatRepository {
	db := database.MongoClient.Database(database.DBName)
	return &MongoChatRepo{
		sessions: db.Collection("chat_sessions"),
		messages: db.Collection("chat_messages"),
	}
}

func (r *MongoChatRepo) GetOrCreateSession(patientID, clinicID string) (*models.ChatSession, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"patientId": patientID, "clinicId": clinicID}
	opts := options.FindOne().SetSort(bson.D{{Key: "lastMessageAt", Value: -1}})

	var session models.ChatSession
	err := r.sessions.FindOne(ctx, filter, opts).Decode(&session)
	if err == nil {
		return &session, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to look up chat session: %w", err)
	}

	now := time.Now().UTC()
	session = models.ChatSession{
		ID:            uuid.New().String(),
		ClinicID:      clinicID,
		PatientID:     patientID,
		StartedAt:     now,
		LastMessageAt: now,
	}
	if _, err := r.sessions.InsertOne(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create chat session: %w", err)
	}
	return &session, nil
}

func (r *MongoChatRepo) SaveMessage(msg *models.ChatMessage) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now().UTC()
	}
	if _, err := r.messages.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to save chat message: %w", err)
	}

	update := bson.M{"$set": bson.M{"lastMessageAt": msg.CreatedAt}}
	if _, err := r.sessions.UpdateOne(ctx, bson.M{"id": msg.SessionID}, update); err != nil {
		return fmt.Errorf("failed to bump session %s: %w", msg.SessionID, err)
	}
	return nil
}

func (r *MongoChatRepo) GetHistory(sessionID string, limit int) ([]models.ChatMessage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetLimit(int64(limit))
	cursor, err := r.messages.Find(ctx, bson.M{"sessionId": sessionID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}
	defer cursor.Close(ctx)

	var history []models.ChatMessage
	for cursor.Next(ctx) {
		var m models.ChatMessage
		if err := cursor.Decode(&m); err != nil {
			return nil, fmt.Errorf("failed to decode chat message: %w", err)
		}
		history = append(history, m)
	}
	return history, nil
}

func (r *MongoChatRepo) ClearHistory(patientID, clinicID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	filter := bson.M{"patientId": patientID, "clinicId": clinicID}
	if _, err := r.messages.DeleteMany(ctx, filter); err != nil {
		return fmt.Errorf("failed to clear chat messages: %w", err)
	}
	if _, err := r.sessions.DeleteMany(ctx, filter); err != nil {
		return fmt.Errorf("failed to clear chat sessions: %w", err)
	}
	return nil
}
