package utils

import "time"

// Application Constants
const (
	AppName    = "Helpize"
	AppVersion = "1.0.0"

	// Session
	SessionCookieName = "helpize_session"
	FlashCookieName   = "helpize_flash"
	SessionTTL        = 24 * time.Hour

	// File Upload
	MaxRequestBodySize = 16 * 1024 * 1024 // 16MB
	UploadFolder       = "static/uploads"

	// Date format used by activity forms
	DateLayout = "2006-01-02"
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusFailed  = "failed"
)

// Error Messages
const (
	ErrInternalServer  = "internal server error"
	ErrRequestTooLarge = "request body exceeds the 16MB limit"
)

// Flash messages shown by the web pages
const (
	FlashSOSSent            = "SOS alert sent!"
	FlashInvalidCredentials = "Invalid email or password"
	FlashEmailRegistered    = "Email already registered"
	FlashSignupSuccess      = "Signup successful! Welcome."
	FlashFileUploaded       = "File uploaded!"
	FlashNoFile             = "No file selected"
	FlashInvalidFilename    = "Invalid file name"
	FlashSomethingWrong     = "Something went wrong, please try again"
)

// Cache Keys
const (
	CacheUserPrefix = "user:"
	CacheUserTTL    = 15 * time.Minute
)

// Event Types
const (
	EventUserRegistered    = "user_registered"
	EventUserLogin         = "user_login"
	EventUserLogout        = "user_logout"
	EventAlertCreated      = "alert_created"
	EventResourceUploaded  = "resource_uploaded"
	EventActivitySubmitted = "activity_submitted"
)

// File Types
var (
	AllowedImageTypes    = []string{"jpg", "jpeg", "png"}
	AllowedDocumentTypes = []string{"pdf", "doc", "docx"}
)
