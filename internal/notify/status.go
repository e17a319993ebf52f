package notify

import (
	"strings"

	"placeverse/internal/models"
)

const defaultStatusColor = "#6c757d"

var statusColors = map[models.ApplicationStatus]string{
	models.ApplicationStatusPending:     "#ffc107",
	models.ApplicationStatusReviewing:   "#17a2b8",
	models.ApplicationStatusShortlisted: "#28a745",
	models.ApplicationStatusInterviewed: "#6f42c1",
	models.ApplicationStatusSelected:    "#28a745",
	models.ApplicationStatusRejected:    "#dc3545",
}

var statusNextSteps = map[models.ApplicationStatus]string{
	models.ApplicationStatusReviewing:   "We are currently reviewing your application.",
	models.ApplicationStatusShortlisted: "Congratulations! You have been shortlisted. We will contact you soon for the next steps.",
	models.ApplicationStatusInterviewed: "Great job! We will be in touch with the final decision soon.",
	models.ApplicationStatusSelected:    "Congratulations! You have been selected. Our team will contact you with next steps.",
	models.ApplicationStatusRejected:    "Thank you for your interest. We encourage you to apply for other positions that match your skills.",
}

// StatusLabel returns the title-cased display form of a status.
func StatusLabel(s models.ApplicationStatus) string {
	str := string(s)
	if str == "" {
		return str
	}
	return strings.ToUpper(str[:1]) + str[1:]
}

// StatusColor returns the badge color for a status.
func StatusColor(s models.ApplicationStatus) string {
	if c, ok := statusColors[s]; ok {
		return c
	}
	return defaultStatusColor
}

// NextSteps returns the guidance line for a status. Empty for statuses with
// none defined (pending).
func NextSteps(s models.ApplicationStatus) string {
	return statusNextSteps[s]
}
