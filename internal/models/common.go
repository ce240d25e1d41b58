package models

import "time"

// AuditFields holds the created/updated timestamps present on every table.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"updatedAt"`
}
