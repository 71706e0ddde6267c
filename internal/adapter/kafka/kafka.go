package kafka

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/yogisaja/preset-store/pkg/retry"
)

var ErrTooFewOpts = errors.New("too few options")

const (
	pingAttempts = 5
	pingDelay    = 500 * time.Millisecond
)

type ProducerClient interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
	Close()
}

type Encoder interface {
	Encode(v any) ([]byte, error)
}

type ProducerOpt func(*producerOpts) error

type producerOpts struct {
	cl      ProducerClient
	encoder Encoder
}

// ProducerClientOpt builds a [kgo.Client] bound to the topic and pings
// the brokers with a few retries, the broker may still be starting.
// A nil tlsConfig keeps the connection plain.
func ProducerClientOpt(
	ctx context.Context, seedBrokers []string, topic string,
	tlsConfig *tls.Config,
) ProducerOpt {
	return func(opts *producerOpts) error {
		clOpts := []kgo.Opt{
			kgo.SeedBrokers(seedBrokers...),
			kgo.DefaultProduceTopicAlways(),
			kgo.DefaultProduceTopic(topic),
			kgo.RequiredAcks(kgo.AllISRAcks()),
			kgo.AllowAutoTopicCreation(),
		}
		if tlsConfig != nil {
			clOpts = append(clOpts, kgo.DialTLSConfig(tlsConfig))
		}

		cl, err := kgo.NewClient(clOpts...)
		if err != nil {
			return err
		}

		retryCfg := retry.Config{
			MaxAttempts: pingAttempts,
			Backoff:     retry.LinearBackoff(pingDelay),
		}
		if err := retry.Do(ctx, retryCfg, func() error {
			return cl.Ping(ctx)
		}); err != nil {
			cl.Close()
			return err
		}

		opts.cl = cl
		return nil
	}
}

func ProducerEncoderOpt(encoder Encoder) ProducerOpt {
	return func(opts *producerOpts) error {
		if encoder == nil {
			return errors.New("encoder is nil")
		}
		opts.encoder = encoder
		return nil
	}
}

func makeOp(s ...string) string {
	return strings.Join(s, ".")
}

func opErr(err error, op ...string) error {
	return fmt.Errorf("%s: %w", makeOp(op...), err)
}
