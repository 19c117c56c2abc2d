package config

import (
	"github.com/kelseyhightower/envconfig"
)

type App struct {
	// Network
	Port string `envconfig:"PORT" default:"8080"`
	// Session secret for the web portal
	SecretKey string `envconfig:"SECRET_KEY" default:"a_strong_fallback_secret_key"`
	// SMS provider. Leaving these unset disables real sending; the
	// notification gateway then logs messages locally instead.
	TwilioAccountSID  string `envconfig:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken   string `envconfig:"TWILIO_AUTH_TOKEN"`
	TwilioPhoneNumber string `envconfig:"TWILIO_PHONE_NUMBER"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}

// TwilioConfigured reports whether all provider credentials are present.
func (c App) TwilioConfigured() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioPhoneNumber != ""
}
