package domain

import "time"

type Account struct {
	AccountID string `json:"accountId"`
	Nickname  string `json:"nickname"`
}

type Feedback struct {
	ID        string    `json:"id"`
	AccountID string    `json:"accountId"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
