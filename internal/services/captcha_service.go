package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"prodfeedback/pkg/utils"
)

const defaultRecaptchaVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// CaptchaVerifier gates public submissions. A disabled verifier means
// the deployment has no captcha configured and the stage is skipped.
type CaptchaVerifier interface {
	Enabled() bool
	Verify(ctx context.Context, token string) error
}

type RecaptchaVerifier struct {
	HTTP      *http.Client
	Secret    string
	VerifyURL string
}

// NewCaptchaVerifier returns a disabled verifier when RECAPTCHA_SECRET
// is unset.
func NewCaptchaVerifier() CaptchaVerifier {
	secret := os.Getenv("RECAPTCHA_SECRET")
	if secret == "" {
		return &disabledCaptcha{}
	}

	verifyURL := os.Getenv("RECAPTCHA_VERIFY_URL")
	if verifyURL == "" {
		verifyURL = defaultRecaptchaVerifyURL
	}

	return &RecaptchaVerifier{
		HTTP:      &http.Client{Timeout: 10 * time.Second},
		Secret:    secret,
		VerifyURL: verifyURL,
	}
}

func (v *RecaptchaVerifier) Enabled() bool { return true }

func (v *RecaptchaVerifier) Verify(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("%w: missing captcha token", utils.ErrCaptcha)
	}

	form := url.Values{}
	form.Set("secret", v.Secret)
	form.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.VerifyURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrCaptcha, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrCaptcha, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("%w: bad status %s", utils.ErrCaptcha, resp.Status)
	}

	var payload struct {
		Success bool `json:"success"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("%w: decoding response: %v", utils.ErrCaptcha, err)
	}
	if !payload.Success {
		return fmt.Errorf("%w: verification rejected", utils.ErrCaptcha)
	}

	return nil
}

type disabledCaptcha struct{}

func (d *disabledCaptcha) Enabled() bool { return false }

func (d *disabledCaptcha) Verify(ctx context.Context, token string) error { return nil }
