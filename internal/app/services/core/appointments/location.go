package appointments

import "guidingpath-service/internal/pkg/constvars"

const LocationToBeAnnounced = "To Be Announced"

var locationByCounselType = map[string]string{
	constvars.CounselTypeVirtual:  "Virtual (Online Meeting)",
	constvars.CounselTypeInPerson: "Guidance Office",
}

// LocationLabel returns where a session of counselType takes place.
func LocationLabel(counselType string) string {
	if label, ok := locationByCounselType[counselType]; ok {
		return label
	}
	return LocationToBeAnnounced
}
