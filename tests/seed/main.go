package main

import (
	"context"
	"log"
	"time"

	"clinicdesk/config"
	"clinicdesk/database"
	"clinicdesk/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Seeds a demo clinic so the chat endpoint can be exercised end to end
// against a fresh database.
func main() {
	config.LoadConfig()
	database.InitDB()

	coll := database.MongoClient.Database(database.DBName).Collection("clinics")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	clinic := models.Clinic{
		ID:              "demo-clinic",
		Name:            "Johar Town Medical & Dental Centre",
		Address:         "Plot 367, J3, Johar Town, Lahore",
		Phone:           "042-35714448",
		WhatsappContact: "03458589440",
		Timezone:        "Asia/Karachi",
		Config: &models.ClinicConfig{
			WorkingHours: &models.WorkingHours{
				Start: "09:00",
				End:   "19:00",
			},
		},
		Practitioners: []models.Practitioner{
			{
				Name:       "Dr. Azeem Rauf",
				Speciality: "Orthodontist and Dental Surgeon",
				CalendarID: "azeem.rauf@johartownclinic.com",
				Timings:    "Mon-Sat: 9AM-7PM, Sun: Closed",
				Services: []models.ServiceOffering{
					{Name: "Braces", Duration: "60 min"},
					{Name: "Cosmetic Fillings", Duration: "45 min"},
					{Name: "Dental Implants", Duration: "90 min"},
					{Name: "Teeth Whitening", Duration: "30 min"},
				},
			},
			{
				Name:       "Dr. Wajeeha Nusrat",
				Speciality: "Dermatologist",
				CalendarID: "wajeeha.nusrat@johartownclinic.com",
				Timings:    "Mon-Fri: 9AM-5PM, Sat: 9AM-2PM, Sun: Closed",
				Services: []models.ServiceOffering{
					{Name: "Hydrafacial", Duration: "45 min"},
					{Name: "Chemical Peels", Duration: "30 min"},
					{Name: "Laser hair removal", Duration: "30 min"},
					{Name: "Botox", Duration: "30 min"},
				},
			},
		},
	}

	res, err := coll.ReplaceOne(ctx, bson.M{"id": clinic.ID}, clinic)
	if err != nil {
		log.Fatalf("Failed to upsert demo clinic: %v", err)
	}
	if res.MatchedCount == 0 {
		if _, err := coll.InsertOne(ctx, clinic); err != nil {
			log.Fatalf("Failed to insert demo clinic: %v", err)
		}
		log.Printf("Inserted demo clinic %q", clinic.ID)
		return
	}
	log.Printf("Updated demo clinic %q", clinic.ID)
}
