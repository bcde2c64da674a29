package booking

import (
	"context"
	"fmt"

	"clinicdesk/cron"
	appointmentRepo "clinicdesk/database/repository/appointment"
	"clinicdesk/models"
	"clinicdesk/services/scheduling"
	"clinicdesk/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Engine       scheduling.Engine
	Appointments appointmentRepo.AppointmentRepository
	Reminders    *cron.ReminderScheduler
}

func (s *DefaultBookingService) AvailableSlotDisplays(ctx context.Context, clinic *models.Clinic, serviceText, dateText string) ([]string, error) {
	slots, err := s.Engine.AvailableSlots(ctx, clinic, serviceText, dateText)
	if err != nil {
		return nil, err
	}
	displays := make([]string, 0, len(slots))
	for _, slot := range slots {
		displays = append(displays, scheduling.SlotDisplay(slot))
	}
	return displays, nil
}

func (s *DefaultBookingService) BookAppointment(ctx context.Context, clinic *models.Clinic, patient *models.Patient, req scheduling.BookingRequest) (*models.BookingConfirmation, error) {
	logger := utils.GetLogger()

	conf, err := s.Engine.BookAppointment(ctx, clinic, req)
	if err != nil {
		return nil, err
	}

	appt := &models.Appointment{
		ID:               uuid.New().String(),
		ClinicID:         clinic.ID,
		PatientName:      req.PatientName,
		PatientPhone:     req.PatientPhone,
		PractitionerName: conf.PractitionerName,
		ServiceName:      conf.ServiceName,
		DurationMinutes:  conf.DurationMinutes,
		StartUTC:         conf.StartUTC,
		EventID:          conf.EventID,
	}
	if patient != nil {
		appt.PatientID = patient.ID
		if appt.PatientPhone == "" {
			appt.PatientPhone = patient.PhoneNumber
		}
	}

	// The calendar event is the commit; everything below is best-effort.
	if s.Appointments != nil {
		if err := s.Appointments.Create(appt); err != nil {
			logger.Error("failed to record appointment",
				zap.String("eventId", conf.EventID), zap.Error(err))
		}
	}

	if s.Reminders != nil && patient != nil {
		payload := models.ReminderPayload{
			AppointmentID: appt.ID,
			ClinicID:      clinic.ID,
			PatientID:     patient.ID,
			Display:       conf.Display,
			ServiceName:   conf.ServiceName,
			ClinicName:    clinic.Name,
			ClinicPhone:   clinic.Phone,
		}
		if err := s.Reminders.Schedule(payload, conf.StartUTC); err != nil {
			logger.Error("failed to schedule reminder",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}

	return conf, nil
}

// ConfirmationMessage builds the patient-facing confirmation text for a
// successful commit.
func ConfirmationMessage(conf *models.BookingConfirmation, clinic *models.Clinic, patientName string) string {
	return fmt.Sprintf(
		"Appointment Confirmed!\n\n"+
			"Patient: %s\n"+
			"Service: %s\n"+
			"Duration: %d minutes\n"+
			"Date & Time: %s\n"+
			"Practitioner: %s\n\n"+
			"Location: %s\n%s\n\n"+
			"Contact: %s\n\n"+
			"Please arrive 10 minutes early. Thank you!",
		patientName,
		conf.ServiceName,
		conf.DurationMinutes,
		conf.Display,
		conf.PractitionerName,
		clinic.Name,
		clinic.Address,
		clinic.Phone,
	)
}
