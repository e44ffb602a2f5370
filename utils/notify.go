package utils

import (
	"log"
	"time"

	"techclass/config"

	"github.com/go-resty/resty/v2"
)

// NotifyCertificateIssued posts an issuance event to the configured webhook
// (the public site rebuilds its certificate wall from these). Best-effort:
// failures are logged and dropped.
func NotifyCertificateIssued(certificateID, courseName, studentName string) {
	webhookURL := config.AppConfig.NotifyWebhookURL
	if webhookURL == "" {
		return
	}

	client := resty.New().SetTimeout(10 * time.Second)

	resp, err := client.R().
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"event":          "certificate.issued",
			"certificate_id": certificateID,
			"course_name":    courseName,
			"student_name":   studentName,
			"issued_at":      time.Now().Format(time.RFC3339),
		}).
		Post(webhookURL)

	if err != nil {
		log.Printf("Error notifying webhook for certificate %s: %v", certificateID, err)
		return
	}
	if resp.StatusCode() >= 300 {
		log.Printf("Webhook rejected certificate %s notification, status code: %d", certificateID, resp.StatusCode())
	}
}
