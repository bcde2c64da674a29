package patientRepo

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
)

// MongoPatientRepo implements PatientRepository using MongoDB.
type MongoPatientRepo struct {
	coll *mongo.Collection
}

// NewMongoPatientRepo creates a new instance of PatientRepository using MongoDB.
func NewMongoPatientRepo() PatientRepository {
	coll := database.MongoClient.Database(database.DBName).Collection("patients")
	return &MongoPatientRepo{coll: coll}
}

func (r *MongoPatientRepo) GetOrCreate(phoneNumber, clinicID, name string) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	filter := bson.M{"phoneNumber": phoneNumber, "clinicId": clinicID}
	var patient models.Patient
	err := r.coll.FindOne(ctx, filter).Decode(&patient)
	if err == nil {
		set := bson.M{"lastSeenAt": time.Now().UTC()}
		if name != "" && name != patient.Name {
			set["name"] = name
			patient.Name = name
		}
		if _, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set}); err != nil {
			return nil, fmt.Errorf("failed to touch patient %s: %w", patient.ID, err)
		}
		return &patient, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("failed to look up patient by phone: %w", err)
	}

	now := time.Now().UTC()
	patient = models.Patient{
		ID:          uuid.New().String(),
		ClinicID:    clinicID,
		PhoneNumber: phoneNumber,
		Name:        name,
		CreatedAt:   now,
		LastSeenAt:  now,
	}
	if _, err := r.coll.InsertOne(ctx, patient); err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	return &patient, nil
}

func (r *MongoPatientRepo) GetByID(id string) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var patient models.Patient
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&patient); err != nil {
		return nil, fmt.Errorf("failed to fetch patient with id %s: %w", id, err)
	}
	return &patient, nil
}
