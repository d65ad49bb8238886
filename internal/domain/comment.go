package domain

import "time"

type Comment struct {
	ID            string    `json:"id"`
	DestinationID string    `json:"destinationId"`
	Content       string    `json:"content"`
	AuthorName    string    `json:"authorName"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
