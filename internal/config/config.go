package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	CatalogSourceBuiltin  = "builtin"
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
)

type Config struct {
	App struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	Catalog struct {
		Source string `mapstructure:"source"`
		File   string `mapstructure:"file"`
	} `mapstructure:"catalog"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string        `mapstructure:"addr"`
		Password string        `mapstructure:"password"`
		DB       int           `mapstructure:"db"`
		TTL      time.Duration `mapstructure:"ttl"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
		GroupID string   `mapstructure:"group_id"`
	} `mapstructure:"kafka"`
	Jaeger struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"jaeger"`
	Worker struct {
		SnapshotEvery int `mapstructure:"snapshot_every"`
	} `mapstructure:"worker"`
}

// LoadConfig reads .env and config.yaml from the given directories (default ".")
// and lets environment variables override both.
func LoadConfig(paths ...string) (cfg Config, err error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	envFiles := make([]string, len(paths))
	for i, p := range paths {
		envFiles[i] = strings.TrimSuffix(p, "/") + "/.env"
	}
	if err := godotenv.Load(envFiles...); err != nil {
		log.Println("warning: .env file not found, use environment only.")
	}

	v := viper.New()
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if rerr := v.ReadInConfig(); rerr != nil {
		log.Printf("note: config.yaml not found, use defaults and env. Error: %v", rerr)
	}

	v.SetDefault("app.port", "8080")
	v.SetDefault("app.env", "development")
	v.SetDefault("catalog.source", CatalogSourceBuiltin)
	v.SetDefault("redis.ttl", 10*time.Minute)
	v.SetDefault("kafka.group_id", "analysis-tally-group")
	v.SetDefault("worker.snapshot_every", 100)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("app.port", "APP_PORT")
	v.BindEnv("app.env", "APP_ENV")
	v.BindEnv("catalog.source", "CATALOG_SOURCE")
	v.BindEnv("catalog.file", "CATALOG_FILE")
	v.BindEnv("db.dsn", "DB_DSN")
	v.BindEnv("redis.addr", "REDIS_ADDR")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("redis.ttl", "CACHE_TTL")
	v.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	v.BindEnv("kafka.group_id", "KAFKA_GROUP_ID")
	v.BindEnv("jaeger.otlp_endpoint", "JAEGER_OTLP_ENDPOINT")
	v.BindEnv("worker.snapshot_every", "WORKER_SNAPSHOT_EVERY")

	err = v.Unmarshal(&cfg)
	return
}
