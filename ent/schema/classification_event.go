package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ClassificationEvent records one verdict decision and the pass that made it.
type ClassificationEvent struct {
	ent.Schema
}

func (ClassificationEvent) Annotations() []schema.Annotation {
	return []schema.Annotation{entsql.Annotation{Table: "classification_events"}}
}

func (ClassificationEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ClassificationEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("source").
			Comment("manual or analysis"),
		field.String("report_number").
			Default("").
			Comment("Fine the text belongs to, empty for ad-hoc text"),
		field.String("locale"),
		field.String("category").
			Comment("favorable, unfavorable or partial"),
		field.String("pass").
			Default("").
			Comment("Detection pass that decided the category"),
		field.String("terms").
			Default("[]").
			Comment("JSON array of the matched terms"),
		field.String("strength").
			Default(""),
		field.Int("text_length").
			Default(0),
	}
}

func (ClassificationEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_number"),
		index.Fields("category"),
	}
}
