package scheduling

import "clinicdesk/models"

// ClinicServices flattens a clinic's roster into the per-service view used
// by the services endpoint and the assistant prompt. Within one practitioner
// service names are unique; across practitioners the first occurrence wins,
// mirroring resolver order.
func ClinicServices(clinic *models.Clinic) []models.ServiceInfo {
	seen := make(map[string]bool)
	var services []models.ServiceInfo
	for _, p := range clinic.Practitioners {
		for _, svc := range p.Services {
			if seen[svc.Name] {
				continue
			}
			seen[svc.Name] = true
			services = append(services, models.ServiceInfo{
				ServiceName:      svc.Name,
				PractitionerName: p.Name,
				Speciality:       p.Speciality,
				DurationMinutes:  parseDurationMinutes(svc.Name, svc.Duration),
				DurationDisplay:  svc.Duration,
			})
		}
	}
	return services
}
