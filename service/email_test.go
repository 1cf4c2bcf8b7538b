package service

import (
	"testing"

	"baito/config"

	"github.com/stretchr/testify/assert"
)

func newTestEmailService() *EmailService {
	return NewEmailService(&config.EmailConfig{})
}

func TestGenerateResetEmailBody(t *testing.T) {
	s := newTestEmailService()
	body := s.generateResetEmailBody("https://example.com/forgotpassword/reset?token=abc")
	assert.Contains(t, body, "https://example.com/forgotpassword/reset?token=abc")
	assert.Contains(t, body, "パスワードを再設定する")
	assert.Contains(t, body, "30分")
}

func TestSendPasswordResetEmailDisabled(t *testing.T) {
	s := newTestEmailService()
	err := s.SendPasswordResetEmail("user@example.com", "https://example.com/reset")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "メール送信が無効")
}

func TestSendTestEmailDisabled(t *testing.T) {
	s := newTestEmailService()
	err := s.SendTestEmail("user@example.com")
	assert.Error(t, err)
}
