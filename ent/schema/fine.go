package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// Fine is a traffic fine report entered by the user.
type Fine struct {
	ent.Schema
}

func (Fine) Annotations() []schema.Annotation {
	return []schema.Annotation{entsql.Annotation{Table: "fines"}}
}

func (Fine) Fields() []ent.Field {
	return []ent.Field{
		field.String("report_number").
			Unique().
			NotEmpty(),
		field.String("date"),
		field.String("location"),
		field.String("violation"),
		field.String("amount").Default(""),
		field.String("due_date").Default(""),
		field.String("officer_name").Default(""),
		field.String("badge_number").Default(""),
		field.Text("description").Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
