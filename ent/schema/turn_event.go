package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TurnEvent records one committed conversation turn: which component
// handled it and where the session cursor ended up.
type TurnEvent struct {
	ent.Schema
}

func (TurnEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TurnEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID of the session the turn belongs to"),
		field.String("agent").
			NotEmpty().
			Comment("Component that handled the turn: lecture, qa, assessment, remedial, welcome"),
		field.String("user_preview").
			Default("").
			Comment("Short preview of the user input"),
		field.Int("messages_appended").
			Default(0).
			Comment("How many messages the turn added to the transcript"),
		field.Int("current_step").
			Default(0).
			Comment("Outline cursor after the turn committed"),
		field.String("quiz_phase").
			Default("").
			Comment("Quiz state after the turn: not_started, in_progress, completed"),
	}
}

func (TurnEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("agent"),
	}
}
