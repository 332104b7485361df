package freeagent

import "time"

type Status string

const (
	StatusAvailable   Status = "available"
	StatusNegotiating Status = "negotiating"
	StatusSigned      Status = "signed"
)

type Stats struct {
	Goals         int
	Assists       int
	MatchesPlayed int
	Rating        float64
}

// FreeAgent is a player listed on the transfer market.
type FreeAgent struct {
	ID                string
	Username          string
	FirstName         string
	LastName          string
	AvatarURL         string
	PreferredPosition string
	Country           string
	Age               int
	Rating            float64
	AskingPrice       int64
	ContractLength    int
	Status            Status
	Stats             Stats
	PreviousTeam      string
	TransferReason    string
	AvailableUntil    *time.Time
}

func (s Status) Valid() bool {
	switch s {
	case StatusAvailable, StatusNegotiating, StatusSigned:
		return true
	default:
		return false
	}
}
