package models

import "time"

type LoginOutcome string

const (
	LoginOutcomeSuccess            LoginOutcome = "success"
	LoginOutcomeInvalidCredentials LoginOutcome = "invalid_credentials"
	LoginOutcomeError              LoginOutcome = "error"
)

// LoginAudit is one row of the admin login audit log.
type LoginAudit struct {
	ID             int64        `json:"id"`
	Username       string       `json:"username"`
	Outcome        LoginOutcome `json:"outcome"`
	Scheme         string       `json:"scheme"`
	IPAddress      string       `json:"ip_address"`
	RawUserAgent   string       `json:"raw_user_agent"`
	BrowserName    string       `json:"browser_name"`
	BrowserVersion string       `json:"browser_version"`
	OSName         string       `json:"os_name"`
	DeviceType     string       `json:"device_type"`
	CreatedAt      time.Time    `json:"created_at"`
}
