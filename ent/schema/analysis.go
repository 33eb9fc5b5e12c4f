package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Analysis caches the parsed LLM analysis of a fine for one locale.
type Analysis struct {
	ent.Schema
}

func (Analysis) Annotations() []schema.Annotation {
	return []schema.Annotation{entsql.Annotation{Table: "analyses"}}
}

func (Analysis) Fields() []ent.Field {
	return []ent.Field{
		field.String("uid").
			Unique().
			Comment("UUID exposed to API clients"),
		field.String("report_number"),
		field.String("locale"),
		field.String("category"),
		field.Text("summary").Default(""),
		field.Text("key_points").
			Default("[]").
			Comment("JSON array of key point strings"),
		field.Text("recommendation").Default(""),
		field.Text("raw_text").Default(""),
		field.String("model").Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Analysis) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_number", "locale").Unique(),
	}
}
