package models

// WorkingHours is an explicit open/close pair in "HH:MM" form, e.g. "09:00".
type WorkingHours struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// ClinicConfig carries optional per-clinic overrides. Anything unset falls
// back to the process-wide defaults from AppConfig.
type ClinicConfig struct {
	WorkingHours *WorkingHours `bson:"workingHours,omitempty" json:"workingHours,omitempty"`
}

// ServiceOffering is one service a practitioner performs. Duration is free
// text like "45 min"; only the leading integer is authoritative. Offerings
// keep their declared order so service matching stays deterministic.
type ServiceOffering struct {
	Name     string `bson:"name" json:"name"`
	Duration string `bson:"duration" json:"duration"`
}

// Practitioner is a service provider with an individual external calendar.
type Practitioner struct {
	Name       string            `bson:"name" json:"name"`
	Speciality string            `bson:"speciality" json:"speciality"`
	CalendarID string            `bson:"calendarId" json:"calendarId"`
	Timings    string            `bson:"timings,omitempty" json:"timings,omitempty"`
	Services   []ServiceOffering `bson:"services" json:"services"`
}

// Clinic is a directory record. Immutable per request; the directory is the
// source of truth and may change between requests.
type Clinic struct {
	ID              string         `bson:"id" json:"id"`
	Name            string         `bson:"name" json:"name"`
	Address         string         `bson:"address" json:"address"`
	Phone           string         `bson:"phone" json:"phone"`
	WhatsappContact string         `bson:"whatsappContact,omitempty" json:"whatsappContact,omitempty"`
	Timezone        string         `bson:"timezone" json:"timezone"`
	Config          *ClinicConfig  `bson:"config,omitempty" json:"config,omitempty"`
	Practitioners   []Practitioner `bson:"practitioners" json:"practitioners"`
}

// ServiceInfo is the flattened view of one offered service, used by the
// clinic services endpoint and the assistant prompt.
type ServiceInfo struct {
	ServiceName      string `json:"serviceName"`
	PractitionerName string `json:"practitionerName"`
	Speciality       string `json:"speciality"`
	DurationMinutes  int    `json:"durationMinutes"`
	DurationDisplay  string `json:"durationDisplay"`
}
