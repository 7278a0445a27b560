package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/mail"
	"time"

	config "github.com/mkobay/tutor_manage/configs"
)

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// Mailer sends transactional email through Brevo. A nil Mailer silently
// drops messages so the app can run without email configured.
type Mailer struct {
	apiKey string
	sender party
	client *http.Client
}

var defaultMailer *Mailer

type party struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type transactionalEmail struct {
	Sender      party   `json:"sender"`
	To          []party `json:"to"`
	Subject     string  `json:"subject"`
	HTMLContent string  `json:"htmlContent"`
}

func InitEmailService() {
	apiKey := config.Config("BREVO_API_KEY")
	senderEmail := config.Config("EMAIL_SENDER")
	senderName := config.Config("EMAIL_SENDER_NAME")

	if apiKey == "" || senderEmail == "" {
		log.Println("⚠️ Email disabled: BREVO_API_KEY or EMAIL_SENDER not set.")
		defaultMailer = nil
		return
	}

	defaultMailer = &Mailer{
		apiKey: apiKey,
		sender: party{Name: senderName, Email: senderEmail},
		client: &http.Client{Timeout: 10 * time.Second},
	}
	log.Println("✅ Email service ready.")
}

func (m *Mailer) send(to party, subject, htmlContent string) error {
	if _, err := mail.ParseAddress(to.Email); err != nil {
		return fmt.Errorf("invalid recipient %q: %w", to.Email, err)
	}
	if to.Name == "" {
		to.Name = to.Email
	}

	body, err := json.Marshal(transactionalEmail{
		Sender:      m.sender,
		To:          []party{to},
		Subject:     subject,
		HTMLContent: htmlContent,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, brevoEndpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("api-key", m.apiKey)
	req.Header.Set("content-type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("brevo returned %d: %s", resp.StatusCode, detail)
	}
	return nil
}

// SendEmail delivers one message to one recipient. Failures are logged,
// not returned, since every caller treats email as best effort.
func SendEmail(toName, toEmail, subject, htmlContent string) {
	if defaultMailer == nil {
		return
	}
	if err := defaultMailer.send(party{Name: toName, Email: toEmail}, subject, htmlContent); err != nil {
		log.Printf("🔥 Email to %s failed: %v", toEmail, err)
		return
	}
	log.Printf("✅ Email sent to %s", toEmail)
}
