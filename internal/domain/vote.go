package domain

import "time"

type Vote struct {
	ID            int64     `json:"id"`
	DestinationID string    `json:"destinationId"`
	VoterID       string    `json:"voterId"`
	CreatedAt     time.Time `json:"createdAt"`
}

// VoteState is what a voter sees after toggling.
type VoteState struct {
	VoteCount int  `json:"voteCount"`
	HasVoted  bool `json:"hasVoted"`
}
