// Package riot talks to the Riot account APIs: the RSO (Riot Sign-On) OAuth
// flow and the API-key-authenticated account lookup.
package riot

import "errors"

// Account is Riot's canonical account record
type Account struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// ErrAccountNotFound is returned when the provider reports no account for the
// given Riot ID
var ErrAccountNotFound = errors.New("account not found")
