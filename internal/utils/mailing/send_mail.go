package mailing

import (
	"Finora-Backend/internal/utils"
	"fmt"
	"gopkg.in/gomail.v2"
	"strconv"
)

type MailConfig struct {
	AppURL       string
	SMTPHost     string
	SMTPPort     string
	SMTPSender   string
	SMTPEmail    string
	SMTPPassword string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		AppURL:       utils.GetConfig("APP_URL"),
		SMTPHost:     utils.GetConfig("SMTP_HOST"),
		SMTPPort:     utils.GetConfig("SMTP_PORT"),
		SMTPSender:   utils.GetConfig("SMTP_SENDER_NAME"),
		SMTPEmail:    utils.GetConfig("SMTP_AUTH_EMAIL"),
		SMTPPassword: utils.GetConfig("SMTP_AUTH_PASSWORD"),
	}
}

func SendMail(toEmail string, subject string, body string) error {
	emailConfig := LoadMailConfig()

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", emailConfig.SMTPEmail)
	mailer.SetHeader("To", toEmail)
	mailer.SetHeader("Subject", subject)
	mailer.SetBody("text/html", body)
	port, err := strconv.Atoi(emailConfig.SMTPPort)
	if err != nil {
		return err
	}
	dialer := gomail.NewDialer(
		emailConfig.SMTPHost,
		port,
		emailConfig.SMTPEmail,
		emailConfig.SMTPPassword,
	)

	err = dialer.DialAndSend(mailer)
	if err != nil {
		return err
	}

	return nil
}

// SendResetPasswordMail sends a time-limited password reset link.
func SendResetPasswordMail(toEmail string, token string) error {
	emailConfig := LoadMailConfig()
	body := fmt.Sprintf(
		`<p>You requested a password reset. The link below is valid for 15 minutes.</p>
<p><a href="%s/reset-password?token=%s">Reset password</a></p>`,
		emailConfig.AppURL, token,
	)
	return SendMail(toEmail, "Reset your password", body)
}

// SendReceiptReviewMail notifies a user that an uploaded receipt needs manual review.
func SendReceiptReviewMail(toEmail string, receiptID string) error {
	emailConfig := LoadMailConfig()
	body := fmt.Sprintf(
		`<p>One of your receipts could not be processed automatically and needs your review.</p>
<p><a href="%s/receipts/%s">Open receipt</a></p>`,
		emailConfig.AppURL, receiptID,
	)
	return SendMail(toEmail, "Receipt needs your review", body)
}
