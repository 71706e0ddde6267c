package kafka

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/yogisaja/preset-store/internal/core/domain"
	"github.com/yogisaja/preset-store/internal/core/port"
	"github.com/yogisaja/preset-store/pkg/schema"
)

// A producer is used for composition.
//
// Producing records to the kafka broker and closing the underlying
// [kgo.Client].
type producer struct {
	opPrefix string
	cl       ProducerClient
}

func (p producer) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))
	log.Info("closing producer...")
	p.cl.Close()
	log.Info("producer is closed")
}

func (p producer) produce(ctx context.Context, rs ...*kgo.Record) error {
	const op = "produce"
	res := p.cl.ProduceSync(ctx, rs...)
	if err := res.FirstErr(); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

var _ port.BrowseEventsProducer = (*BrowseEventsProducer)(nil)

// A BrowseEventsProducer produces [domain.BrowseEvent] records.
type BrowseEventsProducer struct {
	producer producer
	encoder  Encoder
	opPrefix string
}

func NewBrowseEventsProducer(opts ...ProducerOpt) (BrowseEventsProducer, error) {
	const op = "NewBrowseEventsProducer"

	options, err := applyProducerOpts(op, opts)
	if err != nil {
		return BrowseEventsProducer{}, err
	}

	opPrefix := "BrowseEventsProducer"
	return BrowseEventsProducer{
		producer: producer{opPrefix: opPrefix, cl: options.cl},
		encoder:  options.encoder,
		opPrefix: opPrefix,
	}, nil
}

func (p BrowseEventsProducer) Close() {
	p.producer.close()
}

func (p BrowseEventsProducer) ProduceBrowseEvent(
	ctx context.Context, evt domain.BrowseEvent,
) error {
	const op = "ProduceBrowseEvent"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	s := browseEventToSchemaV1(evt)
	b, err := p.encoder.Encode(s)
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}

	r := &kgo.Record{Key: []byte(s.Category), Value: b}
	if err := p.producer.produce(ctx, r); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

var _ port.CartEventsProducer = (*CartEventsProducer)(nil)

// A CartEventsProducer produces [domain.CartEvent] records.
type CartEventsProducer struct {
	producer producer
	encoder  Encoder
	opPrefix string
}

func NewCartEventsProducer(opts ...ProducerOpt) (CartEventsProducer, error) {
	const op = "NewCartEventsProducer"

	options, err := applyProducerOpts(op, opts)
	if err != nil {
		return CartEventsProducer{}, err
	}

	opPrefix := "CartEventsProducer"
	return CartEventsProducer{
		producer: producer{opPrefix: opPrefix, cl: options.cl},
		encoder:  options.encoder,
		opPrefix: opPrefix,
	}, nil
}

func (p CartEventsProducer) Close() {
	p.producer.close()
}

func (p CartEventsProducer) ProduceCartEvent(
	ctx context.Context, evt domain.CartEvent,
) error {
	const op = "ProduceCartEvent"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	s := cartEventToSchemaV1(evt)
	b, err := p.encoder.Encode(s)
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}

	msgKey := []byte(strconv.FormatInt(s.ProductID, 10))
	r := &kgo.Record{Key: msgKey, Value: b}
	if err := p.producer.produce(ctx, r); err != nil {
		return opErr(err, p.opPrefix, op)
	}
	return nil
}

func applyProducerOpts(op string, opts []ProducerOpt) (producerOpts, error) {
	if len(opts) != 2 {
		panic(opErr(ErrTooFewOpts, op)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return producerOpts{}, opErr(err, op)
		}
	}
	return options, nil
}

func browseEventToSchemaV1(v domain.BrowseEvent) (s schema.BrowseEventV1) {
	s.Query = v.Query
	s.Category = v.Category
	s.Sort = string(v.Sort)
	s.MinPrice = v.MinPrice
	s.MaxPrice = v.MaxPrice
	s.Results = v.Results
	return s
}

func cartEventToSchemaV1(v domain.CartEvent) (s schema.CartEventV1) {
	s.Action = string(v.Action)
	s.ProductID = v.ProductID
	s.Name = v.Name
	s.Quantity = v.Quantity
	s.UnitPrice = v.UnitPrice
	return s
}
