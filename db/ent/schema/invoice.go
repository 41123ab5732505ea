package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/okafor-dev/pdfproc/constants"
	"github.com/okafor-dev/pdfproc/db/ent/schema/utils"
)

// Invoice stores the extracted metadata for a single split invoice.
type Invoice struct{ ent.Schema }

func (Invoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoices"},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("job_id", uuid.UUID{}),
		field.String("company_name").NotEmpty(),
		field.String("po_number").Optional(),
		field.String("invoice_number").Optional(),
		field.String("tier_used").
			Validate(utils.EnumValidator(
				string(constants.TierTextOnly),
				string(constants.TierVisionFallback),
			)),
		field.Float32("confidence").Default(0),
		field.String("raw_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("extracted_json", json.RawMessage{}).Optional(),
		field.String("split_path").NotEmpty(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("invoices").
			Field("job_id").
			Unique().
			Required(),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id"),
		index.Fields("company_name"),
	}
}
