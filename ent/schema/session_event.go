package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records drill session lifecycle events (start,
// complete, quit).
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("UUID grouping events in a session"),
		field.String("action").
			NotEmpty().
			Comment("start, complete, or quit"),
		field.String("mode").
			NotEmpty().
			Comment("daily or weekly-test"),
		field.Int("word_count").
			Default(0).
			Comment("Words in the session's active list"),
		field.Int("words_skipped").
			Default(0).
			Comment("Skip substitutions performed (on complete/quit)"),
		field.Int("duration_secs").
			Default(0).
			Comment("Session duration in seconds (on complete/quit)"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("action"),
	}
}
