package config

// SMSConfig controls who gets texted when an SOS alert arrives.
// Provider "none" (or empty) disables texting.
type SMSConfig struct {
	Provider        string        `yaml:"provider"`
	Twilio          *TwilioConfig `yaml:"twilio"`
	AWS             *AWSSNSConfig `yaml:"aws"`
	ResponderNumber string        `yaml:"responder_number"`
}

type TwilioConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`
}

type AWSSNSConfig struct {
	Region          string `yaml:"region"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	SenderID        string `yaml:"sender_id"`
}

func loadSMSConfig() *SMSConfig {
	return &SMSConfig{
		Provider: getEnv("SMS_PROVIDER", "none"),
		Twilio: &TwilioConfig{
			AccountSID: getEnv("TWILIO_ACCOUNT_SID", ""),
			AuthToken:  getEnv("TWILIO_AUTH_TOKEN", ""),
			FromNumber: getEnv("TWILIO_FROM_NUMBER", ""),
		},
		AWS: &AWSSNSConfig{
			Region:          getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			SenderID:        getEnv("SMS_SENDER_ID", "Helpize"),
		},
		ResponderNumber: getEnv("SOS_RESPONDER_NUMBER", ""),
	}
}
