package models

import "time"

type Product struct {
	ID          string            `json:"_id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Price       Price             `json:"price"`
	Images      []string          `json:"images"`
	Category    string            `json:"category,omitempty"`
	Properties  map[string]string `json:"properties"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}
