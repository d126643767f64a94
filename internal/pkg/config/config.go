package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"

	"github.com/gasline/gasline/internal/pkg/models"
)

// InitConfig loads configuration from the environment, optionally seeded
// from a dotenv file in local environments. Only the database settings are
// required; everything else carries a usable default.
func InitConfig(configPath string) *models.Config {
	v := viper.New()

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	setDefaults(v)

	configs := &models.Config{}
	if err := v.Unmarshal(configs); err != nil {
		log.Fatalf("failed to unmarshal configuration: %v", err)
	}

	return configs
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "accounts-service")
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "")

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15)
	v.SetDefault("server.write_timeout", 15)
	v.SetDefault("server.shutdown_timeout", 30)

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.host", "")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.idle_conns", 2)

	v.SetDefault("redis.host", "")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("nsq.producer_address", "")
	v.SetDefault("nsq.lookupd_addresses", []string{})

	v.SetDefault("iam.base_url", "")
	v.SetDefault("iam.realm", "")
	v.SetDefault("iam.client_id", "account")
	v.SetDefault("iam.client_secret", "")
	v.SetDefault("iam.admin_username", "")
	v.SetDefault("iam.admin_password", "")
	v.SetDefault("iam.timeout_sec", 5)

	v.SetDefault("jwt.public_key", "")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.audience", "account")
	v.SetDefault("jwt.issuer", "")

	v.SetDefault("auth.max_login_attempts", 3)
	v.SetDefault("auth.lockout_minutes", 15)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file_path", "")
}
