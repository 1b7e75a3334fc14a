package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionSnapshot captures a full tutoring session at a point in time,
// enabling restore without replaying the turn log.
type SessionSnapshot struct {
	ent.Schema
}

func (SessionSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the captured session"),
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the snapshot was taken"),
		field.Text("data").
			Comment("Serialized session state as JSON"),
	}
}

func (SessionSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("timestamp"),
	}
}
