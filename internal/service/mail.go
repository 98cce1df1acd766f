package service

import (
	"fmt"

	"stralshund/dog-api/internal/model"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// Mailer delivers verification and password reset links. With
// mail.enabled off the links are only logged, which is enough for
// local development
type Mailer struct {
	enabled bool
	host    string
	port    int
	from    string
	pass    string
	domain  string
	ssl     bool
}

func NewMailer() *Mailer {
	return &Mailer{
		enabled: viper.GetBool("mail.enabled"),
		host:    viper.GetString("mail.host"),
		port:    viper.GetInt("mail.port"),
		from:    viper.GetString("mail.sender_address"),
		pass:    viper.GetString("mail.password"),
		domain:  viper.GetString("host.domain"),
		ssl:     viper.GetBool("host.ssl.enabled"),
	}
}

func (m *Mailer) baseURL() string {
	s := ""
	if m.ssl {
		s = "s"
	}

	return fmt.Sprintf("http%v://%v", s, m.domain)
}

func (m *Mailer) SendVerificationMail(user *model.User, token string) error {
	link := fmt.Sprintf("%v/verify?user_id=%v&token=%v", m.baseURL(), user.ID, token)

	if !m.enabled {
		zap.L().Debug("Mail disabled, verification link", zap.String("link", link))
		return nil
	}

	body := fmt.Sprintf("Hi %v,<br><br>Click <a href='%v'>here</a> to verify your StralsHund account.", user.FullName(), link)
	return m.send(user.Email, "Verify your StralsHund account", body)
}

func (m *Mailer) SendResetMail(user *model.User, token string) error {
	link := fmt.Sprintf("%v/reset-password?token=%v", m.baseURL(), token)

	if !m.enabled {
		zap.L().Debug("Mail disabled, password reset link", zap.String("link", link))
		return nil
	}

	body := fmt.Sprintf("Hi %v,<br><br>Click <a href='%v'>here</a> to reset your password.<br><br>This link will expire in 10 minutes. If you didn't request a reset you can ignore this mail.", user.FullName(), link)
	return m.send(user.Email, "Reset your StralsHund password", body)
}

func (m *Mailer) send(sendTo, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", sendTo)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.host, m.port, m.from, m.pass)

	return d.DialAndSend(msg)
}
