package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
)

// ResendClient handles email sending via Resend API
type ResendClient struct {
	apiKey string
	from   string
}

// NewResendClient creates a new Resend client. Returns nil when no API key
// is configured; callers treat a nil client as "email disabled".
func NewResendClient() *ResendClient {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		log.Println("⚠️  RESEND_API_KEY not set, welcome emails disabled")
		return nil
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "noreply@weardeck.app" // Default from address
	}

	return &ResendClient{
		apiKey: apiKey,
		from:   from,
	}
}

// SendWelcomeEmail sends the post-signup welcome email via Resend
func (r *ResendClient) SendWelcomeEmail(name, email string) error {
	payload := map[string]interface{}{
		"from":    r.from,
		"to":      email,
		"subject": "Welcome to WearDeck",
		"html":    r.buildWelcomeHTML(name),
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		log.Printf("[resend] failed to create request: %v", err)
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		log.Printf("[resend] failed to send request: %v", err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("[resend] failed to read response: %v", err)
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("[resend] api returned status %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend api error: status %d", resp.StatusCode)
	}

	log.Printf("[resend] welcome email sent to %s", email)
	return nil
}

// buildWelcomeHTML creates the HTML body for the welcome email with inline styles
func (r *ResendClient) buildWelcomeHTML(name string) string {
	return fmt.Sprintf(`<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1.0" />
    <title>Welcome to WearDeck</title>
  </head>
  <body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif; background-color: #ffffff; color: #1a1a1a; line-height: 1.6;">
    <div style="background-color: #ffffff; padding: 60px 20px;">
      <div style="max-width: 600px; margin: 0 auto; background: #ffffff;">
        <div style="padding: 0 0 60px 0; text-align: left;">
          <div style="font-size: 24px; font-weight: 700; color: #1a1a1a;">WearDeck</div>
        </div>
        <div style="padding: 0;">
          <p style="font-size: 36px; font-weight: 700; color: #000000; margin: 0 0 24px 0; line-height: 1.2;">Your style feed is waiting</p>
          <p style="font-size: 17px; color: #626262; line-height: 1.8; margin: 0 0 40px 0;">
            <span style="color: #000000; font-weight: 600;">%s</span>, upload a few inspiration images and set your budget, and we'll start assembling outfits that fit both.
          </p>
        </div>
        <div style="padding: 60px 0 0 0; border-top: 1px solid #f0f0f0;">
          <p style="font-size: 13px; color: #9a9a9a; margin: 0;">You received this email because you created a WearDeck account.</p>
        </div>
      </div>
    </div>
  </body>
</html>`, name)
}
