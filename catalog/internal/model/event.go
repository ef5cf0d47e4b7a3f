package model

import (
	"time"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventRenewed       EventKind = "renewed"
	EventCheckedOut    EventKind = "checked_out"
	EventReturned      EventKind = "returned"
	EventAuthorCreated EventKind = "author_created"
	EventAuthorUpdated EventKind = "author_updated"
	EventAuthorDeleted EventKind = "author_deleted"
)

type Event struct {
	ID         int64      `json:"-" db:"id"`
	Kind       EventKind  `json:"kind" db:"kind"`
	InstanceID *uuid.UUID `json:"instanceId,omitempty" db:"instance_id"`
	AuthorID   *int       `json:"authorId,omitempty" db:"author_id"`
	Actor      string     `json:"actor" db:"actor"`
	DueBack    *time.Time `json:"dueBack,omitempty" db:"due_back"`
	At         time.Time  `json:"at" db:"created_at"`
}
