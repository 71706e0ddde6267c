package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "PRESET_STORE_CONFIG_FILE"

type topics struct {
	BrowseEvents string `mapstructure:"browse_events"`
	CartEvents   string `mapstructure:"cart_events"`
}

type brokerTLS struct {
	CA   string `mapstructure:"ca"`
	Cert string `mapstructure:"cert"`
	Key  string `mapstructure:"key"`
}

func (t brokerTLS) Enabled() bool {
	return t.CA != "" && t.Cert != "" && t.Key != ""
}

type broker struct {
	SeedBrokers        []string  `mapstructure:"seed_brokers"`
	SchemaRegistryURLs []string  `mapstructure:"schema_registry_urls"`
	Topics             topics    `mapstructure:"topics"`
	TLS                brokerTLS `mapstructure:"tls"`
}

type Config struct {
	LogLevel       slog.Level `mapstructure:"log_level"`
	HTTPServerAddr string     `mapstructure:"http_server_addr"`
	CatalogFile    string     `mapstructure:"catalog_file"`
	Broker         broker     `mapstructure:"broker"`
}

func Load() Config {
	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "/config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) Print() {
	tamplate := `
	General:
	LogLevel=%q
	HTTPServerAddr=%q
	CatalogFile=%q

	BrokerConfig:
	SeedBrokers=%q
	SchemaRegistryURLs=%q
	Topics:
		BrowseEvents=%q
		CartEvents=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.HTTPServerAddr,
		c.CatalogFile,
		c.Broker.SeedBrokers,
		c.Broker.SchemaRegistryURLs,
		c.Broker.Topics.BrowseEvents,
		c.Broker.Topics.CartEvents,
	)
}
