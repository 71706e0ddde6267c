package app

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/twmb/franz-go/pkg/sr"
	"github.com/yogisaja/preset-store/config"
	"github.com/yogisaja/preset-store/internal/adapter"
	"github.com/yogisaja/preset-store/internal/adapter/feed"
	"github.com/yogisaja/preset-store/internal/adapter/httphandler"
	"github.com/yogisaja/preset-store/internal/adapter/kafka"
	"github.com/yogisaja/preset-store/internal/core/cart"
	"github.com/yogisaja/preset-store/internal/core/service"
	"github.com/yogisaja/preset-store/pkg/schema"
)

type serdes struct {
	browseEvent schema.Serde
	cartEvent   schema.Serde
}

type producers struct {
	browseEvents kafka.BrowseEventsProducer
	cartEvents   kafka.CartEventsProducer
}

type App struct {
	ctx        context.Context
	cfg        config.Config
	serdes     serdes
	producers  producers
	service    service.Service
	httpServer httphandler.HTTPServer
}

func New(ctx context.Context, cfg config.Config) *App {
	app := &App{ctx: ctx, cfg: cfg}

	app.initLogger()
	app.initSerdes()
	app.initOutboundAdapters()
	app.initCoreService()
	app.initInboundAdapters()

	return app
}

func (app *App) initLogger() {
	opts := &slog.HandlerOptions{Level: app.cfg.LogLevel}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func (app *App) initSerdes() {
	const op = "App.initSerdes"
	ctx := app.ctx
	urls := app.cfg.Broker.SchemaRegistryURLs

	srClient, err := sr.NewClient(sr.URLs(urls...))
	if err != nil {
		app.fallDown(op, err)
	}

	schemaCreater := schema.NewSchemaCreater(srClient)

	browseEventSS := app.cfg.Broker.Topics.BrowseEvents + "-value"
	browseEventSerde, err := schema.NewSerdeBrowseEventV1(
		ctx,
		schema.SubjectOpt(browseEventSS),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	cartEventSS := app.cfg.Broker.Topics.CartEvents + "-value"
	cartEventSerde, err := schema.NewSerdeCartEventV1(
		ctx,
		schema.SubjectOpt(cartEventSS),
		schema.SchemaIdentifierOpt(schemaCreater),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.serdes.browseEvent = browseEventSerde
	app.serdes.cartEvent = cartEventSerde
}

func (app *App) initOutboundAdapters() {
	const op = "App.initOutboundAdapters"

	ctx := app.ctx
	seedBrokers := app.cfg.Broker.SeedBrokers
	browseEventsTopic := app.cfg.Broker.Topics.BrowseEvents
	cartEventsTopic := app.cfg.Broker.Topics.CartEvents
	tlsConfig := app.makeTLSConfig()

	browseEventsProducer, err := kafka.NewBrowseEventsProducer(
		kafka.ProducerClientOpt(ctx, seedBrokers, browseEventsTopic, tlsConfig),
		kafka.ProducerEncoderOpt(app.serdes.browseEvent),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	cartEventsProducer, err := kafka.NewCartEventsProducer(
		kafka.ProducerClientOpt(ctx, seedBrokers, cartEventsTopic, tlsConfig),
		kafka.ProducerEncoderOpt(app.serdes.cartEvent),
	)
	if err != nil {
		app.fallDown(op, err)
	}

	app.producers.browseEvents = browseEventsProducer
	app.producers.cartEvents = cartEventsProducer
}

func (app *App) makeTLSConfig() *tls.Config {
	brokerTLS := app.cfg.Broker.TLS
	if !brokerTLS.Enabled() {
		return nil
	}
	return adapter.MakeTLSConfig(brokerTLS.CA, brokerTLS.Cert, brokerTLS.Key)
}

func (app *App) initCoreService() {
	const op = "App.initCoreService"

	catalogFeed, err := feed.Load(app.cfg.CatalogFile)
	if err != nil {
		app.fallDown(op, err)
	}

	app.service = service.New(
		catalogFeed.Products(),
		cart.NewStore(),
		app.producers.browseEvents,
		app.producers.cartEvents,
	)
}

func (app *App) initInboundAdapters() {
	addr := app.cfg.HTTPServerAddr
	mux := http.NewServeMux()
	httphandler.RegisterCatalog(mux, app.service)
	httphandler.RegisterCart(mux, app.service)

	handler := httphandler.AllowJSON(mux)
	app.httpServer = httphandler.NewHTTPServer(addr, handler)
}

func (app *App) Run(stopFn context.CancelFunc) {
	go app.httpServer.Run(stopFn)

	slog.Info("application is running")
}

func (app *App) Close(ctx context.Context) {
	slog.Info("application is closing...")

	app.httpServer.Close(ctx)
	app.producers.browseEvents.Close()
	app.producers.cartEvents.Close()

	slog.Info("application is closed")
}

func (app *App) fallDown(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
