package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ExportRecord is the history entry written after each CV download.
type ExportRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    string             `bson:"user_id" json:"user_id"`
	ProfileID string             `bson:"profile_id" json:"profile_id"`

	BasePages  int      `bson:"base_pages" json:"base_pages"`
	TotalPages int      `bson:"total_pages" json:"total_pages"`
	Sections   []string `bson:"sections" json:"sections"`
	Embedded   []string `bson:"embedded,omitempty" json:"embedded,omitempty"`
	Skipped    []string `bson:"skipped,omitempty" json:"skipped,omitempty"`
	SizeBytes  int      `bson:"size_bytes" json:"size_bytes"`

	GeneratedAt time.Time `bson:"generated_at" json:"generated_at"`
	ExpiresAt   time.Time `bson:"expires_at" json:"expires_at"` // for TTL index
}
