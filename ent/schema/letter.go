package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Letter caches a generated cancellation request.
type Letter struct {
	ent.Schema
}

func (Letter) Annotations() []schema.Annotation {
	return []schema.Annotation{entsql.Annotation{Table: "letters"}}
}

func (Letter) Fields() []ent.Field {
	return []ent.Field{
		field.String("uid").Unique(),
		field.String("report_number"),
		field.String("mode").
			Comment("full_letter or arguments"),
		field.String("locale"),
		field.Text("body").Default(""),
		field.String("model").Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Letter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_number", "mode", "locale").Unique(),
	}
}
