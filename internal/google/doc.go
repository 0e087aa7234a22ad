// Package google provides OAuth2 authentication and token management for
// the Google Calendar API.
//
// Tokens are stored per account as files in the user cache directory.
// The TokenProvider interface allows other token sources to be plugged in;
// the engine itself never touches tokens and treats this package as an
// external collaborator.
package google
