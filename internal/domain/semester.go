package domain

import "time"

type Semester struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"` // e.g. "Fall 2026"
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Current   bool      `json:"current"`
	CreatedAt time.Time `json:"created_at"`
}
