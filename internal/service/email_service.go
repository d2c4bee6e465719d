package service

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/mnhthng/recruitai/config"
	"github.com/rs/zerolog/log"
)

// MailService sends HTML mail to candidates over SMTP with STARTTLS.
type MailService interface {
	SendOffer(toEmail, candidateName, positionName string) error
	SendOnboarding(toEmail, candidateName string) error
}

type smtpMailService struct {
	cfg *config.Config
}

func NewMailService(cfg *config.Config) MailService {
	if cfg.SMTP.Host == "" || cfg.SMTP.Username == "" || cfg.SMTP.Password == "" {
		log.Warn().Msg("SMTP configuration is incomplete; outbound mail will fail")
	}
	return &smtpMailService{cfg: cfg}
}

func (s *smtpMailService) SendOffer(toEmail, candidateName, positionName string) error {
	subject := fmt.Sprintf("Job Offer - %s Position", positionName)
	return s.send(toEmail, subject, renderOfferBody(candidateName, positionName))
}

func (s *smtpMailService) SendOnboarding(toEmail, candidateName string) error {
	return s.send(toEmail, "Welcome to the team!", renderOnboardingBody(candidateName))
}

func (s *smtpMailService) send(toEmail, subject, htmlBody string) error {
	smtpCfg := s.cfg.SMTP
	if smtpCfg.Host == "" || smtpCfg.Username == "" || smtpCfg.Password == "" {
		return fmt.Errorf("%w: SMTP configuration is incomplete", ErrMailDelivery)
	}

	var msg strings.Builder
	msg.WriteString("From: " + smtpCfg.Username + "\r\n")
	msg.WriteString("To: " + toEmail + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := smtpCfg.Host + ":" + smtpCfg.Port
	auth := smtp.PlainAuth("", smtpCfg.Username, smtpCfg.Password, smtpCfg.Host)

	// smtp.SendMail negotiates STARTTLS when the server advertises it.
	if err := smtp.SendMail(addr, auth, smtpCfg.Username, []string{toEmail}, []byte(msg.String())); err != nil {
		log.Error().Err(err).Str("to", toEmail).Msg("Failed to send email")
		return fmt.Errorf("%w: %v", ErrMailDelivery, err)
	}

	log.Info().Str("to", toEmail).Str("subject", subject).Msg("Email sent")
	return nil
}

func renderOfferBody(candidateName, positionName string) string {
	return fmt.Sprintf(`<html>
<body>
	<p>Dear %s,</p>
	<p>We are delighted to let you know that you have been selected for the <strong>%s</strong> position at our company.</p>
	<p>We were impressed by your profile and by your skills throughout the interview and testing process.</p>
	<p>Please get in touch with us to discuss the terms and the next steps. You can reply to this email directly.</p>
	<p>We look forward to welcoming you to the team!</p>
	<p>Best regards,</p>
	<p>The Recruitment Team</p>
</body>
</html>`, candidateName, positionName)
}

func renderOnboardingBody(candidateName string) string {
	return fmt.Sprintf(`<html>
<body>
	<p>Welcome %s,</p>
	<p>We are excited to have you join the team!</p>
	<p>This email confirms your onboarding and gives you a starting point; we will reach out shortly with the next steps of the process.</p>
	<p>Best regards,</p>
	<p>The Recruitment Team</p>
</body>
</html>`, candidateName)
}
