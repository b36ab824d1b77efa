package model

import "time"

// Run records one saved analysis of an export file.
type Run struct {
	CreatedAt time.Time
	ID        string
	Source    string
	Target    string
	Summary   Summary
	RowCount  int
	Dropped   int
}
