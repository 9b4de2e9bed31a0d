package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LedgerSnapshot stores the learner's full progress ledger (streak,
// daily history, totals) as a JSON document. Each save inserts a new
// row and the newest row wins, so a crash mid-save can never corrupt
// the previous state.
type LedgerSnapshot struct {
	ent.Schema
}

func (LedgerSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("sequence").
			Comment("Event sequence number at the time of the save"),
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the ledger was saved"),
		field.JSON("data", map[string]any{}).
			Comment("Full progress ledger as JSON"),
	}
}

func (LedgerSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("timestamp"),
		index.Fields("sequence"),
	}
}
