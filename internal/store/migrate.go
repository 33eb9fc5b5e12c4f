package store

import (
	"context"
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	sqlschema "entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	"github.com/abhisek/finecheck/ent/schema"
)

// schemas lists every persisted entity. Tables are derived from the ent
// schema definitions at startup, so the schema package stays the single
// source of truth for columns and indexes.
var schemas = []ent.Interface{
	schema.Fine{},
	schema.Analysis{},
	schema.Letter{},
	schema.LLMRequestEvent{},
	schema.ClassificationEvent{},
}

// migrateSchema creates or alters the tables to match schemas.
func migrateSchema(ctx context.Context, drv dialect.Driver) error {
	tables, err := buildTables(schemas)
	if err != nil {
		return err
	}
	m, err := sqlschema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("new migrate: %w", err)
	}
	return m.Create(ctx, tables...)
}

func buildTables(defs []ent.Interface) ([]*sqlschema.Table, error) {
	tables := make([]*sqlschema.Table, 0, len(defs))
	for _, def := range defs {
		t, err := buildTable(def)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

func buildTable(def ent.Interface) (*sqlschema.Table, error) {
	name := tableName(def)
	if name == "" {
		return nil, fmt.Errorf("schema %T has no table annotation", def)
	}

	t := sqlschema.NewTable(name).
		AddPrimary(&sqlschema.Column{Name: "id", Type: field.TypeInt, Increment: true})

	var (
		fields  []ent.Field
		indexes []ent.Index
	)
	for _, m := range def.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, def.Fields()...)
	indexes = append(indexes, def.Indexes()...)

	for _, f := range fields {
		d := f.Descriptor()
		if d.Err != nil {
			return nil, fmt.Errorf("%s.%s: %w", name, d.Name, d.Err)
		}
		t.AddColumn(buildColumn(d))
	}
	for _, idx := range indexes {
		d := idx.Descriptor()
		t.AddIndex(name+"_"+strings.Join(d.Fields, "_"), d.Unique, d.Fields)
	}
	return t, nil
}

func buildColumn(d *field.Descriptor) *sqlschema.Column {
	c := &sqlschema.Column{
		Name:     d.Name,
		Type:     d.Info.Type,
		Unique:   d.Unique,
		Nullable: d.Optional,
		Comment:  d.Comment,
	}
	if d.StorageKey != "" {
		c.Name = d.StorageKey
	}
	if d.Size > 0 {
		c.Size = int64(d.Size)
	}
	// Function defaults such as time.Now are applied by the repositories.
	switch v := d.Default.(type) {
	case string, bool, int, int64, float64:
		c.Default = v
	}
	return c
}

func tableName(def ent.Interface) string {
	for _, a := range def.Annotations() {
		switch ann := a.(type) {
		case entsql.Annotation:
			return ann.Table
		case *entsql.Annotation:
			return ann.Table
		}
	}
	return ""
}
