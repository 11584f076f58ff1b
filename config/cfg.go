package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	httpapi "github.com/paycort/paycort-admin/internal/api/http"
	"github.com/paycort/paycort-admin/internal/apisrv/admin"
	"github.com/paycort/paycort-admin/internal/bucket"
	"github.com/paycort/paycort-admin/internal/feed"
	"github.com/paycort/paycort-admin/internal/gate"
	"github.com/paycort/paycort-admin/internal/ratelimit"
	"github.com/paycort/paycort-admin/internal/store"
	"github.com/paycort/paycort-admin/log"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	DB     store.Config     `mapstructure:"mysql"`
	Logger log.Config       `mapstructure:"logger"`
	HTTP   httpapi.Config   `mapstructure:"http"`
	Auth   gate.Config      `mapstructure:"auth"`
	Feed   feed.Config      `mapstructure:"feed"`
	Bucket bucket.Config    `mapstructure:"bucket"`
	Views  admin.Config     `mapstructure:"views"`
	Limits ratelimit.Config `mapstructure:"limits"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values.
// Flat names such as MYSQL_DSN or AUTH_ADMIN_PIN are bound explicitly, any
// other key can be set with double underscores, e.g. VIEWS__HEARTBEAT.
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("toml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))

	setDefaults(v)
	bindEnvVars(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/paycort-admin")
		v.AddConfigPath("/etc/paycort-admin")
		if err := v.ReadInConfig(); err != nil {
			var nf viper.ConfigFileNotFoundError
			if !errors.As(err, &nf) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	if config.DB.DSN == "" {
		config.DB.DSN = dsnFromEnv(config.DB.TLSCAPath)
	}

	return &config, nil
}

// dsnFromEnv builds a MySQL DSN from DigitalOcean's db.* env vars or from
// MYSQL_* env vars. It returns "" when they are incomplete. TLS with the
// custom CA is requested only when tlsCAPath is set, the store registers
// that config under the same condition.
func dsnFromEnv(tlsCAPath string) string {
	var host, port, user, password, database string

	if dbHost := os.Getenv("db.HOSTNAME"); dbHost != "" {
		host = dbHost
		port = os.Getenv("db.PORT")
		user = os.Getenv("db.USERNAME")
		password = os.Getenv("db.PASSWORD")
		database = os.Getenv("db.DATABASE")
	} else {
		host = os.Getenv("MYSQL_HOST")
		port = os.Getenv("MYSQL_PORT")
		user = os.Getenv("MYSQL_USER")
		password = os.Getenv("MYSQL_PASSWORD")
		database = os.Getenv("MYSQL_DATABASE")
	}

	if host == "" || user == "" || password == "" || database == "" {
		return ""
	}
	if port == "" {
		port = "3306"
	}
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true",
		user, password, host, port, database)
	if tlsCAPath != "" {
		dsn += "&tls=custom"
	}
	return dsn
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mysql.automigrate", true)

	v.SetDefault("http.port", "8081")
	v.SetDefault("http.address", "0.0.0.0")

	a := gate.DefaultConfig()
	v.SetDefault("auth.jwt_ttl", a.JWTTTL)
	v.SetDefault("auth.submit_delay", a.SubmitDelay)

	f := feed.DefaultConfig()
	v.SetDefault("feed.poll_interval", f.PollInterval)
	v.SetDefault("feed.ping_interval", f.PingInterval)

	v.SetDefault("views.heartbeat", admin.DefaultConfig().Heartbeat)

	l := ratelimit.DefaultConfig()
	v.SetDefault("limits.stream_limit_per_minute", l.StreamPerMinute)
	v.SetDefault("limits.archive_limit_per_minute", l.ArchivePerMinute)
}

// bindEnvVars binds flat environment variable names to config keys.
func bindEnvVars(v *viper.Viper) {
	// MySQL
	_ = v.BindEnv("mysql.dsn", "MYSQL_DSN")
	_ = v.BindEnv("mysql.automigrate", "MYSQL_AUTOMIGRATE")
	_ = v.BindEnv("mysql.max_open_connections", "MYSQL_MAX_OPEN_CONNECTIONS")
	_ = v.BindEnv("mysql.max_idle_connections", "MYSQL_MAX_IDLE_CONNECTIONS")
	_ = v.BindEnv("mysql.tls_ca_path", "MYSQL_TLS_CA_PATH")

	// Logger
	_ = v.BindEnv("logger.level", "LOG_LEVEL")
	_ = v.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	_ = v.BindEnv("http.port", "HTTP_PORT", "PORT")
	_ = v.BindEnv("http.address", "HTTP_ADDRESS")
	_ = v.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")

	// Auth, the pin is also read from the name the web client used
	_ = v.BindEnv("auth.admin_pin", "AUTH_ADMIN_PIN", "NEXT_PUBLIC_ADMIN_PIN")
	_ = v.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET")
	_ = v.BindEnv("auth.jwt_ttl", "AUTH_JWT_TTL")
	_ = v.BindEnv("auth.submit_delay", "AUTH_SUBMIT_DELAY")

	// Feed
	_ = v.BindEnv("feed.poll_interval", "FEED_POLL_INTERVAL")
	_ = v.BindEnv("feed.ping_interval", "FEED_PING_INTERVAL")

	// Bucket
	_ = v.BindEnv("bucket.s3_access_key", "BUCKET_S3_ACCESS_KEY")
	_ = v.BindEnv("bucket.s3_secret_access_key", "BUCKET_S3_SECRET_ACCESS_KEY")
	_ = v.BindEnv("bucket.s3_endpoint", "BUCKET_S3_ENDPOINT")
	_ = v.BindEnv("bucket.s3_bucket_name", "BUCKET_S3_BUCKET_NAME")
	_ = v.BindEnv("bucket.s3_bucket_location", "BUCKET_S3_BUCKET_LOCATION")
	_ = v.BindEnv("bucket.base_folder", "BUCKET_BASE_FOLDER")
	_ = v.BindEnv("bucket.subdomain_endpoint", "BUCKET_SUBDOMAIN_ENDPOINT")

	// Views
	_ = v.BindEnv("views.heartbeat", "VIEWS_HEARTBEAT")

	// Limits
	_ = v.BindEnv("limits.stream_limit_per_minute", "LIMITS_STREAM_LIMIT_PER_MINUTE")
	_ = v.BindEnv("limits.archive_limit_per_minute", "LIMITS_ARCHIVE_LIMIT_PER_MINUTE")
}
