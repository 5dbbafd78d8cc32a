package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Breach is one incident from the upstream breach catalog.
// Truncated account lookups populate Name only.
type Breach struct {
	Name         string   `json:"Name"`
	Title        string   `json:"Title,omitempty"`
	Domain       string   `json:"Domain,omitempty"`
	BreachDate   string   `json:"BreachDate,omitempty"`
	AddedDate    string   `json:"AddedDate,omitempty"`
	ModifiedDate string   `json:"ModifiedDate,omitempty"`
	PwnCount     uint64   `json:"PwnCount,omitempty"`
	Description  string   `json:"Description,omitempty"`
	LogoPath     string   `json:"LogoPath,omitempty"`
	DataClasses  []string `json:"DataClasses,omitempty"`
	IsVerified   bool     `json:"IsVerified,omitempty"`
	IsFabricated bool     `json:"IsFabricated,omitempty"`
	IsSensitive  bool     `json:"IsSensitive,omitempty"`
	IsRetired    bool     `json:"IsRetired,omitempty"`
	IsSpamList   bool     `json:"IsSpamList,omitempty"`
}

// Paste is a public text dump in which an account was seen.
type Paste struct {
	Source     string     `json:"Source"`
	ID         string     `json:"Id"`
	Title      string     `json:"Title,omitempty"`
	Date       *time.Time `json:"Date,omitempty"`
	EmailCount int        `json:"EmailCount"`
}
