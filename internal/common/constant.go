package common

// AuthorizationHeader is the HTTP header carrying the bearer credential on
// every authenticated request.
const AuthorizationHeader = "Authorization"

// SessionTokenKey is the durable-store key under which the console persists
// the raw access token between runs.
const SessionTokenKey = "token"
