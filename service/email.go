package service

import (
	"fmt"

	"baito/config"

	"gopkg.in/gomail.v2"
)

// EmailService メール送信サービス
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService メール送信サービスを作成
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendPasswordResetEmail パスワード再設定メールを送信する
func (s *EmailService) SendPasswordResetEmail(toEmail, resetLink string) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("メール送信が無効です。BAITO_EMAIL_ENABLED=true を設定してください")
	}

	subject := "【バイト収入管理】パスワード再設定"
	body := s.generateResetEmailBody(resetLink)

	return s.sendEmail(toEmail, subject, body)
}

// generateResetEmailBody 再設定メールの本文を生成する
func (s *EmailService) generateResetEmailBody(resetLink string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="ja">
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: 'Hiragino Sans', 'Noto Sans JP', Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #2563eb, #1d4ed8); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 40px 30px; }
        .content p { color: #333; line-height: 1.8; margin: 0 0 20px; }
        .btn { display: inline-block; background: linear-gradient(135deg, #2563eb, #1d4ed8); color: white !important; text-decoration: none; padding: 14px 40px; border-radius: 8px; font-weight: 600; margin: 20px 0; }
        .warning { background: #fff3cd; border-left: 4px solid #ffc107; padding: 15px; margin: 20px 0; border-radius: 4px; }
        .warning p { margin: 0; color: #856404; font-size: 14px; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
        .link { word-break: break-all; color: #2563eb; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>バイト収入管理</h1>
        </div>
        <div class="content">
            <p>パスワード再設定のリクエストを受け付けました。</p>
            <p>下のボタンから新しいパスワードを設定してください。</p>
            <p style="text-align: center;">
                <a href="%s" class="btn">パスワードを再設定する</a>
            </p>
            <div class="warning">
                <p>このリンクの有効期限は <strong>30分</strong> です。</p>
                <p>心当たりがない場合はこのメールを無視してください。</p>
            </div>
            <p>ボタンが開けない場合は次の URL をブラウザに貼り付けてください。</p>
            <p class="link">%s</p>
        </div>
        <div class="footer">
            <p>このメールはシステムから自動送信されています。返信はできません。</p>
        </div>
    </div>
</body>
</html>
`, resetLink, resetLink)
}

// sendEmail メールを送信する
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("メールの送信に失敗しました: %w", err)
	}

	return nil
}

// SendTestEmail 設定確認用のテストメールを送信する
func (s *EmailService) SendTestEmail(toEmail string) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("メール送信が無効です")
	}

	subject := "【バイト収入管理】メール設定テスト"
	body := `
<!DOCTYPE html>
<html lang="ja">
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; padding: 20px;">
    <h2>メール設定は正常です</h2>
    <p>このメールが届いていればメールサービスの設定は完了しています。</p>
</body>
</html>
`
	return s.sendEmail(toEmail, subject, body)
}
