package internal

const (
	DotEnvPath         = "./.env"
	SessionCookie      = "keepalleytrash.sid"
	SessionTokenCookie = "session_token"
)
