package scheduling

import (
	"errors"
	"fmt"

	"clinicdesk/models"
)

// Engine error kinds. Every operation converts internal faults into one of
// these; nothing past the engine boundary should see a panic or a raw
// provider error.
var (
	// ErrPractitionerNotFound: no roster entry matches the requested service.
	ErrPractitionerNotFound = errors.New("no practitioner offers the requested service")
	// ErrCalendarUnavailable: the external calendar client is uninitialized
	// or unreachable. Distinct from "zero free slots".
	ErrCalendarUnavailable = errors.New("calendar unavailable")
	// ErrInvalidSlotFormat: the commit path cannot parse the supplied slot.
	ErrInvalidSlotFormat = errors.New("invalid slot format")
	// ErrBookingFailed: the external insert call itself errored.
	ErrBookingFailed = errors.New("booking failed")
)

// FailureMessage renders an engine error as the short apologetic text shown
// to patients, always with the clinic phone as the fallback contact.
func FailureMessage(err error, clinic *models.Clinic) string {
	phone := ""
	if clinic != nil {
		phone = clinic.Phone
		if phone == "" {
			phone = clinic.WhatsappContact
		}
	}

	switch {
	case errors.Is(err, ErrPractitionerNotFound):
		return fmt.Sprintf("Sorry, we couldn't find a practitioner for that service. Please call us at %s and we'll help you out.", phone)
	case errors.Is(err, ErrInvalidSlotFormat):
		return fmt.Sprintf("Sorry, I couldn't understand that appointment time. Please pick one of the offered slots or call us at %s.", phone)
	case errors.Is(err, ErrCalendarUnavailable):
		return fmt.Sprintf("Sorry, our scheduling system is temporarily unavailable. Please try again shortly or call us at %s.", phone)
	default:
		return fmt.Sprintf("Sorry, there was an error booking your appointment. Please try again or call us at %s.", phone)
	}
}
