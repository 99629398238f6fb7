package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Snapshot stores a derived JSON document at a point in the event stream,
// such as a bank-run summary, so it can be read back without replaying
// events.
type Snapshot struct {
	ent.Schema
}

func (Snapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("kind").
			NotEmpty().
			Comment("Payload discriminator, e.g. bank_run"),
		field.Int64("sequence").
			Comment("Event sequence number at the time of the snapshot"),
		field.Time("timestamp").
			Default(time.Now).
			Comment("When the snapshot was taken"),
		field.JSON("data", map[string]any{}).
			Comment("Snapshot payload"),
	}
}

func (Snapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind", "timestamp"),
		index.Fields("sequence"),
	}
}
