package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DepartmentFeedback holds the single current generated report for a
// department. Regeneration replaces the whole document.
type DepartmentFeedback struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Department  string             `bson:"department" json:"department"`
	Feedback    string             `bson:"feedback" json:"feedback"`
	GeneratedAt time.Time          `bson:"generated_at" json:"generated_at"`
}
