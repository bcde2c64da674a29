package clinicRepo

import (
	"context"
	"fmt"
	"time"

	"clinicdesk/database"
	"clinicdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoClinicRepo implements ClinicRepository using MongoDB.
type MongoClinicRepo struct {
	coll *mongo.Collection
}

// NewMongoClinicRepo creates a new instance of ClinicRepository using MongoDB.
func NewMongoClinicRepo() ClinicRepository {
	coll := database.MongoClient.Database(database.DBName).Collection("clinics")
	return &MongoClinicRepo{coll: coll}
}

func (r *MongoClinicRepo) GetByID(id string) (*models.Clinic, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var clinic models.Clinic
	filter := bson.M{"id": id}
	if err := r.coll.FindOne(ctx, filter).Decode(&clinic); err != nil {
		return nil, fmt.Errorf("failed to fetch clinic with id %s: %w", id, err)
	}
	return &clinic, nil
}

func (r *MongoClinicRepo) GetAll() ([]models.Clinic, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve clinics: %w", err)
	}
	defer cursor.Close(ctx)
	var clinics []models.Clinic
	for cursor.Next(ctx) {
		var c models.Clinic
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode clinic: %w", err)
		}
		clinics = append(clinics, c)
	}
	return clinics, nil
}

func (r *MongoClinicRepo) Create(clinic *models.Clinic) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, clinic)
	if err != nil {
		return fmt.Errorf("failed to create clinic: %w", err)
	}
	return nil
}

func (r *MongoClinicRepo) Update(clinic *models.Clinic) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": clinic.ID}
	update := bson.M{"$set": clinic}
	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update clinic with id %s: %w", clinic.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("clinic with id %s not found", clinic.ID)
	}
	return nil
}

func (r *MongoClinicRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	filter := bson.M{"id": id}
	result, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete clinic with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("clinic with id %s not found", id)
	}
	return nil
}
