package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Document maps to the public.documents table.
type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("file_name").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// Canonical absolute path; the natural key that makes ingestion idempotent.
		field.String("file_path").NotEmpty().Unique().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// Stemmed, stopword-filtered text. Lossy; search only, never display.
		// May be empty when every token was a stopword.
		field.String("content").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		// Raw extracted text, source of truth for snippets and date backfill.
		field.String("original_content").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("document_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("ingested_at").Default(time.Now).Immutable(),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("file_name"),
		index.Fields("document_date"),
	}
}
