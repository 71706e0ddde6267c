package schema

import (
	"context"
	"errors"
	"fmt"

	"github.com/hamba/avro/v2"
	"github.com/twmb/franz-go/pkg/sr"
)

var ErrTooFewOpts = errors.New("too few options")

type Serde interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

// A SchemaIdentifier resolves the schema registry id for a subject
// and avro schema text, registering the schema when needed.
type SchemaIdentifier interface {
	DetermineID(ctx context.Context, subject, avroSchemaText string) (int, error)
}

type serde struct {
	avroSchema avro.Schema
	srSerde    *sr.Serde
}

func (s serde) Encode(v any) ([]byte, error) {
	return s.srSerde.Encode(v)
}

func (s serde) Decode(data []byte, v any) error {
	return s.srSerde.Decode(data, v)
}

func (s serde) encodeFn(v any) ([]byte, error) {
	return avro.Marshal(s.avroSchema, v)
}

func (s serde) decodeFn(data []byte, v any) error {
	return avro.Unmarshal(s.avroSchema, data, v)
}

type Opt func(*serdeOpts) error

type serdeOpts struct {
	subject string
	si      SchemaIdentifier
}

func SubjectOpt(subject string) Opt {
	return func(so *serdeOpts) error {
		if subject == "" {
			return errors.New("subject is empty string")
		}
		so.subject = subject
		return nil
	}
}

func SchemaIdentifierOpt(si SchemaIdentifier) Opt {
	return func(so *serdeOpts) error {
		if si == nil {
			return errors.New("schema identifier is nil")
		}
		so.si = si
		return nil
	}
}

func NewSerdeBrowseEventV1(ctx context.Context, opts ...Opt) (Serde, error) {
	const op = "NewSerdeBrowseEventV1"
	return newSerde(ctx, BrowseEventSchemaTextV1, BrowseEventV1{}, op, opts...)
}

func NewSerdeCartEventV1(ctx context.Context, opts ...Opt) (Serde, error) {
	const op = "NewSerdeCartEventV1"
	return newSerde(ctx, CartEventSchemaTextV1, CartEventV1{}, op, opts...)
}

func newSerde(
	ctx context.Context,
	schemaText string,
	example any,
	op string,
	opts ...Opt,
) (Serde, error) {
	if len(opts) != 2 {
		return serde{}, fmt.Errorf("%s: %w", op, ErrTooFewOpts)
	}

	var serdeOpts serdeOpts
	for _, o := range opts {
		if err := o(&serdeOpts); err != nil {
			return serde{}, fmt.Errorf("%s: %w", op, err)
		}
	}

	avroSchema, err := avro.Parse(schemaText)
	if err != nil {
		return serde{}, fmt.Errorf("%s: %w", op, err)
	}

	s := serde{avroSchema: avroSchema}

	srID, err := serdeOpts.si.DetermineID(ctx, serdeOpts.subject, schemaText)
	if err != nil {
		return serde{}, fmt.Errorf("%s: %w", op, err)
	}

	srSerde := new(sr.Serde)
	srSerde.Register(
		srID,
		example,
		sr.EncodeFn(s.encodeFn),
		sr.DecodeFn(s.decodeFn),
	)

	s.srSerde = srSerde
	return s, nil
}
