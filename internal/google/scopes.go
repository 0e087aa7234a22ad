package google

// DefaultOAuthScopes are the Google OAuth scopes meetslots needs.
// These scopes are used consistently across the application for OAuth
// configurations.
//
// The scopes provide access to:
//   - Google Calendar: read-only (events, freebusy, calendar metadata)
var DefaultOAuthScopes = []string{
	// OpenID Connect scopes (required for user info)
	"openid",
	"https://www.googleapis.com/auth/userinfo.email",

	// Google Calendar scope. Read-only is enough: meetslots queries
	// freebusy, events, and calendar metadata but never writes.
	"https://www.googleapis.com/auth/calendar.readonly",
}
