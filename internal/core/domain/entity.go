package domain

import "time"

// Entity holds the bookkeeping fields shared by every persisted aggregate.
// Aggregates embed it; repositories must exclude Deleted records from every query.
type Entity struct {
	ID        int64     `json:"id" bson:"_id"`
	CreatedAt time.Time `json:"createTime" bson:"create_time"`
	UpdatedAt time.Time `json:"updateTime" bson:"update_time"`
	CreatedBy int64     `json:"createBy,omitempty" bson:"create_by,omitempty"`
	UpdatedBy int64     `json:"updateBy,omitempty" bson:"update_by,omitempty"`
	Deleted   bool      `json:"-" bson:"deleted"`
	Version   int       `json:"version" bson:"version"`
}

// Stamp initialises the creation fields of a new record.
func (e *Entity) Stamp(now time.Time, actor int64) {
	e.CreatedAt = now
	e.UpdatedAt = now
	e.CreatedBy = actor
	e.UpdatedBy = actor
	e.Deleted = false
}

// Touch records a modification by actor.
func (e *Entity) Touch(now time.Time, actor int64) {
	e.UpdatedAt = now
	e.UpdatedBy = actor
}
