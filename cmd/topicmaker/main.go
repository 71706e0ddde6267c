package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
	"github.com/yogisaja/preset-store/config"
	"github.com/yogisaja/preset-store/pkg/sigctx"
)

const (
	partitions        = 3
	replicationFactor = 3
	cleanupDelete     = "delete"
)

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	cfg := config.Load()

	cl := createClient(cfg.Broker.SeedBrokers)
	defer cl.Close()

	printStart(cfg)
	defer printComplete(time.Now())

	err := makeTopics(
		sigCtx, cl, cleanupDelete,
		cfg.Broker.Topics.BrowseEvents,
		cfg.Broker.Topics.CartEvents,
	)
	if err != nil {
		printFail(err)
	}
}

func createClient(seedBrokers []string) *kadm.Client {
	cl, err := kadm.NewOptClient(
		kgo.SeedBrokers(seedBrokers...),
	)
	if err != nil {
		panic(err) // develop mistake
	}
	return cl
}

func makeTopics(
	ctx context.Context, cl *kadm.Client, cleanupPolicy string, topics ...string,
) error {
	minISR := "1"

	config := map[string]*string{
		"cleanup.policy":      &cleanupPolicy,
		"min.insync.replicas": &minISR,
	}

	responses, err := cl.CreateTopics(
		ctx,
		partitions,
		replicationFactor,
		config,
		topics...,
	)
	if err != nil {
		return err
	}

	var errs []error
	for _, res := range responses.Sorted() {
		err := res.Err
		if err != nil {
			if errors.Is(res.Err, kerr.TopicAlreadyExists) {
				fmt.Printf("topic: %q already exists\n", res.Topic)
			} else {
				errs = append(errs, err)
			}
			continue
		}
		fmt.Printf("topic: %q successfully created\n", res.Topic)
	}

	return errors.Join(errs...)
}

func printStart(cfg config.Config) {
	fmt.Printf(`initializing topics...
	- %q
	- %q

`,
		cfg.Broker.Topics.BrowseEvents,
		cfg.Broker.Topics.CartEvents,
	)
}

func printComplete(start time.Time) {
	fmt.Printf("\ncomplete in %s\n", time.Since(start))
}

func printFail(err error) {
	fmt.Printf("failed to create topics: \n%s\n", err)
}
