package utils

import (
	"fmt"
	"log"

	"techclass/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendCertificateEmail notifies a student that their certificate is ready.
// Called asynchronously after issuance; failures are logged, never surfaced.
func SendCertificateEmail(email, studentName, courseName, certificateID, verificationCode string) {
	if config.AppConfig.SendGridApiKey == "" {
		log.Printf("Skipping certificate email to %s: SendGrid not configured", email)
		return
	}

	from := mail.NewEmail(config.AppConfig.PlatformName, config.AppConfig.EmailSender)
	to := mail.NewEmail(studentName, email)
	subject := fmt.Sprintf("Your %s Certificate is Ready!", courseName)

	plain := fmt.Sprintf(
		"Dear %s,\n\nCongratulations on completing %s!\n\nCertificate ID: %s\nVerification Code: %s\n\nShare the verification code with anyone who needs to confirm your achievement.\n\n%s Team",
		studentName, courseName, certificateID, verificationCode, config.AppConfig.PlatformName,
	)

	html := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px; box-shadow: 0 2px 8px rgba(0, 0, 0, 0.1);">
					<h2 style="color: #333333; text-align: center;">&#127942; Certificate of Completion</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Congratulations on completing the course:</p>
					<h3 style="text-align: center; color: #4CAF50; margin: 20px 0;">%s</h3>
					<div style="background-color: #f8f9fa; border-radius: 8px; padding: 20px; margin: 20px 0; text-align: center;">
						<p style="font-size: 14px; color: #666666; margin-bottom: 10px;">Your Certificate ID:</p>
						<h2 style="color: #2196F3; margin: 0;">%s</h2>
						<p style="font-size: 14px; color: #666666; margin: 15px 0 5px;">Verification Code:</p>
						<h3 style="color: #333333; margin: 0;">%s</h3>
					</div>
					<p style="font-size: 14px; color: #666666;">Anyone can confirm your achievement by entering the verification code on our site.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 20px;">%s Team</p>
				</div>
			</body>
		</html>
	`, studentName, courseName, certificateID, verificationCode, config.AppConfig.PlatformName)

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	client := sendgrid.NewSendClient(config.AppConfig.SendGridApiKey)

	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending certificate email to %s: %v", email, err)
		return
	}
	if resp.StatusCode >= 300 {
		log.Printf("Certificate email to %s rejected, status code: %d", email, resp.StatusCode)
		return
	}

	log.Println("Certificate email sent successfully to", email)
}

// SendPasswordResetEmail emails a one-time password reset token
func SendPasswordResetEmail(email, name, token string) {
	if config.AppConfig.SendGridApiKey == "" {
		log.Printf("Skipping password reset email to %s: SendGrid not configured", email)
		return
	}

	from := mail.NewEmail(config.AppConfig.PlatformName, config.AppConfig.EmailSender)
	to := mail.NewEmail(name, email)
	subject := fmt.Sprintf("Password Reset - %s", config.AppConfig.PlatformName)

	plain := fmt.Sprintf(
		"Dear %s,\n\nUse this token to reset your password: %s\n\nThe token expires in 1 hour. If you did not request a reset, ignore this email.\n\n%s Team",
		name, token, config.AppConfig.PlatformName,
	)

	html := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Password Reset</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Use this token to reset your password:</p>
					<h3 style="text-align: center; color: #2196F3; margin: 20px 0;">%s</h3>
					<p style="font-size: 14px; color: #999999;">The token expires in 1 hour. If you did not request a reset, ignore this email.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 20px;">%s Team</p>
				</div>
			</body>
		</html>
	`, name, token, config.AppConfig.PlatformName)

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	client := sendgrid.NewSendClient(config.AppConfig.SendGridApiKey)

	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending password reset email to %s: %v", email, err)
		return
	}
	if resp.StatusCode >= 300 {
		log.Printf("Password reset email to %s rejected, status code: %d", email, resp.StatusCode)
	}
}
