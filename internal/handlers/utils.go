package handlers

import (
	"fmt"
	"strings"

	"art-gallery/internal/middlewares"
	"art-gallery/internal/models"

	"github.com/avct/uasurfer"
)

func userAgentVersion(v uasurfer.Version) string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// recordLoginAttempt writes one audit row for a login attempt. Audit failures
// are logged and swallowed: a broken audit trail must not block logins.
func recordLoginAttempt(ctx *middlewares.AppContext, username string, outcome models.LoginOutcome) {
	rawUA := ctx.Request.UserAgent()
	parsed := uasurfer.Parse(rawUA)

	audit := &models.LoginAudit{
		Username:       username,
		Outcome:        outcome,
		Scheme:         ctx.Auth.Name(),
		IPAddress:      middlewares.GetClientIP(ctx.Request),
		RawUserAgent:   rawUA,
		BrowserName:    strings.TrimPrefix(parsed.Browser.Name.String(), "Browser"),
		BrowserVersion: userAgentVersion(parsed.Browser.Version),
		OSName:         strings.TrimPrefix(parsed.OS.Name.String(), "OS"),
		DeviceType:     strings.TrimPrefix(parsed.DeviceType.String(), "Device"),
	}

	if err := ctx.Storage.InsertLoginAudit(ctx.Request.Context(), audit); err != nil {
		ctx.Logger.Error("failed to record login attempt", "username", username, "error", err)
	}
}
