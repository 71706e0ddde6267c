package schema

import (
	"context"
	"fmt"

	"github.com/twmb/franz-go/pkg/sr"
)

var _ SchemaIdentifier = (*SchemaCreater)(nil)

// A SchemaCreater registers avro schemas in the schema registry and
// reports the assigned ids.
type SchemaCreater struct {
	cl *sr.Client
}

func NewSchemaCreater(cl *sr.Client) SchemaCreater {
	return SchemaCreater{cl}
}

func (c SchemaCreater) DetermineID(
	ctx context.Context, subject, avroSchemaText string,
) (int, error) {
	const op = "SchemaCreater.DetermineID"

	if err := ctx.Err(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	ss, err := c.cl.CreateSchema(ctx, subject, sr.Schema{
		Type:   sr.TypeAvro,
		Schema: avroSchemaText,
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return ss.ID, nil
}
