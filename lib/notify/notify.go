package notify

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"ats-backend/config"
	"ats-backend/lib/smtp"
)

// Provider sends transactional email. Every send is fire-and-forget: a failed
// notification is logged and lost, it never fails the operation that
// triggered it.
type Provider interface {
	SendVerificationEmail(to, token string)
	SendInvitationEmail(to, name, token string)
	SendNewApplicationNotice(jobTitle, applicantName string)
	SendStatusChangeEmail(to, name, jobTitle, stageName string)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		emailFrom:     config.Conf.Smtp.EmailFrom,
		hrNotifyEmail: config.Conf.Smtp.HRNotifyEmail,
		siteURL:       config.Conf.App.SiteURL,
	}
}

type impl struct {
	emailFrom     string
	hrNotifyEmail string
	siteURL       string
}

func (i impl) send(to, message, subject string) {
	go func() {
		if err := smtp.Instance.SendEMail(i.emailFrom, to, message, subject); err != nil {
			log.WithError(err).
				WithField("recipient", to).
				WithField("subject", subject).
				Error("notification email lost")
		}
	}()
}

func (i impl) SendVerificationEmail(to, token string) {
	message := fmt.Sprintf("Please confirm your email address by following the link: %s/api/v1/auth/verify-email?token=%s\n\nThe link is valid for 24 hours.", i.siteURL, token)
	i.send(to, message, "Confirm your email")
}

func (i impl) SendInvitationEmail(to, name, token string) {
	message := fmt.Sprintf("Hello %s,\n\nYou have been invited to the recruitment workspace. Finish your account setup here: %s/setup-account?token=%s\n\nThe invitation is valid for 7 days.", name, i.siteURL, token)
	i.send(to, message, "You are invited")
}

func (i impl) SendNewApplicationNotice(jobTitle, applicantName string) {
	if i.hrNotifyEmail == "" {
		return
	}
	message := fmt.Sprintf("New application for \"%s\" from %s.", jobTitle, applicantName)
	i.send(i.hrNotifyEmail, message, "New application received")
}

func (i impl) SendStatusChangeEmail(to, name, jobTitle, stageName string) {
	message := fmt.Sprintf("Hello %s,\n\nYour application for \"%s\" has moved to the \"%s\" stage.", name, jobTitle, stageName)
	i.send(to, message, "Application status update")
}
