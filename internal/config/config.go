package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

const (
	LocalStorage = "local"
	S3Storage    = "s3"
)

type Configuration struct {
	// Name of the blog.
	Name string `validate:"required"`
	// Url is the blog's public url; it is used to build the urls of locally stored files.
	Url *url.URL `validate:"required"`
	// Addr is the address the HTTP server listens on.
	Addr string `validate:"required"`
	// Debug, if true, will make the application log all HTTP requests and other events.
	Debug bool
	// DbUrl is the path to the database file.
	DbUrl string `validate:"required"`
	// QueueDbUrl is the path to the database file used by the task queue. It may be the same as DbUrl.
	QueueDbUrl string `validate:"required"`
	// StaticDir is the directory on which the blog's favicon, stylesheet and other static files can be found.
	StaticDir string

	SessionCookie   string        `validate:"required"`
	SessionLifetime time.Duration `validate:"gt=0"`
	SessionIdle     time.Duration
	SecureCookies   bool

	// Storage selects where uploaded images are kept: either a local directory, FsRoot, or an S3 bucket.
	Storage string `validate:"oneof=local s3"`
	// FsRoot is the root of the directory on which uploaded files are stored when Storage is "local".
	FsRoot     string `validate:"required_if=Storage local"`
	S3Bucket   string `validate:"required_if=Storage s3"`
	S3Region   string
	S3Endpoint string
	S3KeyID    string
	S3Secret   string
	// S3PublicUrl is the base url under which the bucket's objects are publicly readable.
	S3PublicUrl *url.URL `validate:"required_if=Storage s3"`

	// MaxUploadBytes bounds the size of multipart request bodies.
	MaxUploadBytes int64 `validate:"gt=0"`

	// KafkaBrokers lists the brokers domain events are published to. Events are not published when empty.
	KafkaBrokers []string
	KafkaTopic   string `validate:"required_with=KafkaBrokers"`

	QueueWorkers int `validate:"gt=0"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("name", "goblog")
	v.SetDefault("url", "http://localhost:8080")
	v.SetDefault("addr", ":8080")
	v.SetDefault("debug", false)
	v.SetDefault("db_url", "file:blog.db?_foreign_keys=on")
	v.SetDefault("queue_db_url", "file:queue.db")
	v.SetDefault("static_dir", "static")
	v.SetDefault("session_cookie", "session")
	v.SetDefault("session_lifetime", "168h")
	v.SetDefault("session_idle", "0s")
	v.SetDefault("secure_cookies", false)
	v.SetDefault("storage", LocalStorage)
	v.SetDefault("fs_root", "uploads")
	v.SetDefault("s3_region", "us-east-1")
	v.SetDefault("max_upload_bytes", 10<<20)
	v.SetDefault("kafka_topic", "blog-events")
	v.SetDefault("queue_workers", 2)
}

// ReadConfig loads the configuration from, in order of precedence, the environment (variables prefixed with GOBLOG_,
// a .env file being loaded first if present), an optional config.yaml and the defaults.
func ReadConfig() (Configuration, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Msg("unable to load .env file")
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("goblog")
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Configuration{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return FromViper(v)
}

// FromViper builds and validates the configuration held by v.
func FromViper(v *viper.Viper) (cfg Configuration, err error) {
	u, err := url.Parse(strings.TrimSuffix(v.GetString("url"), "/"))
	if err != nil {
		return cfg, fmt.Errorf("invalid url: %w", err)
	}

	var publicUrl *url.URL
	if raw := v.GetString("s3_public_url"); raw != "" {
		if publicUrl, err = url.Parse(strings.TrimSuffix(raw, "/")); err != nil {
			return cfg, fmt.Errorf("invalid s3 public url: %w", err)
		}
	}

	var brokers []string
	for _, b := range strings.Split(v.GetString("kafka_brokers"), ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}

	cfg = Configuration{
		Name:            v.GetString("name"),
		Url:             u,
		Addr:            v.GetString("addr"),
		Debug:           v.GetBool("debug"),
		DbUrl:           v.GetString("db_url"),
		QueueDbUrl:      v.GetString("queue_db_url"),
		StaticDir:       v.GetString("static_dir"),
		SessionCookie:   v.GetString("session_cookie"),
		SessionLifetime: v.GetDuration("session_lifetime"),
		SessionIdle:     v.GetDuration("session_idle"),
		SecureCookies:   v.GetBool("secure_cookies"),
		Storage:         v.GetString("storage"),
		FsRoot:          v.GetString("fs_root"),
		S3Bucket:        v.GetString("s3_bucket"),
		S3Region:        v.GetString("s3_region"),
		S3Endpoint:      v.GetString("s3_endpoint"),
		S3KeyID:         v.GetString("s3_key_id"),
		S3Secret:        v.GetString("s3_secret"),
		S3PublicUrl:     publicUrl,
		MaxUploadBytes:  v.GetInt64("max_upload_bytes"),
		KafkaBrokers:    brokers,
		KafkaTopic:      v.GetString("kafka_topic"),
		QueueWorkers:    v.GetInt("queue_workers"),
	}

	err = validator.New().Struct(cfg)
	return
}
