package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestFromViperDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := FromViper(v)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if cfg.Storage != LocalStorage {
		t.Errorf("expected storage %q, got %q", LocalStorage, cfg.Storage)
	}
	if cfg.SessionLifetime != 168*time.Hour {
		t.Errorf("expected session lifetime of 168h, got %s", cfg.SessionLifetime)
	}
	if cfg.Url.String() != "http://localhost:8080" {
		t.Errorf("unexpected url %s", cfg.Url)
	}
	if len(cfg.KafkaBrokers) != 0 {
		t.Errorf("expected no brokers, got %v", cfg.KafkaBrokers)
	}
}

func TestFromViper(t *testing.T) {
	cases := []struct {
		name      string
		set       map[string]any
		expectErr bool
	}{
		{"s3 without bucket", map[string]any{"storage": S3Storage}, true},
		{"s3", map[string]any{
			"storage":       S3Storage,
			"s3_bucket":     "blog",
			"s3_public_url": "https://cdn.example.com/blog",
		}, false},
		{"s3 with bad public url", map[string]any{
			"storage":       S3Storage,
			"s3_bucket":     "blog",
			"s3_public_url": "https://cdn.example.com/%zz",
		}, true},
		{"unknown storage", map[string]any{"storage": "ftp"}, true},
		{"brokers", map[string]any{"kafka_brokers": "k1:9092, k2:9092"}, false},
		{"zero lifetime", map[string]any{"session_lifetime": "0s"}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := viper.New()
			setDefaults(v)
			for k, val := range c.set {
				v.Set(k, val)
			}

			cfg, err := FromViper(v)
			if c.expectErr {
				if err == nil {
					t.Error("expected validation error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if c.name == "s3" && cfg.S3PublicUrl.String() != "https://cdn.example.com/blog" {
				t.Errorf("unexpected public url %v", cfg.S3PublicUrl)
			}
			if c.name == "brokers" && len(cfg.KafkaBrokers) != 2 {
				t.Errorf("expected 2 brokers, got %v", cfg.KafkaBrokers)
			}
		})
	}
}
