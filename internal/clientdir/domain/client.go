package domain

import "time"

// Client is a directory record. ID and CreatedAt are assigned at creation
// and never change; Email is unique across all clients.
type Client struct {
	ID        int64
	Name      string
	Email     string
	CreatedAt time.Time
}
