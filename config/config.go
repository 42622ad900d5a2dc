// config/config.go
package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration
	Gateway       GatewayConfiguration
	External      ExternalConfiguration
	Auth          AuthConfiguration
	Proxy         ProxyConfiguration
	Health        HealthConfiguration
	Redis         RedisConfiguration
	Elasticsearch ElasticsearchConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port string
}

// GatewayConfiguration stores the base URL of our platform's API gateway
type GatewayConfiguration struct {
	URL string
}

// ExternalConfiguration stores the base URL of the partner platform's API
// gateway. Empty means the external services are not configured.
type ExternalConfiguration struct {
	URL string
}

// AuthConfiguration stores the token signing secret and TTL
type AuthConfiguration struct {
	Secret   string
	TokenTTL string
}

// ProxyConfiguration stores dispatcher settings
type ProxyConfiguration struct {
	Timeout string
}

// HealthConfiguration stores health probe settings
type HealthConfiguration struct {
	Timeout string
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Addr string
}

// ElasticsearchConfiguration stores data for Elasticsearch connection
type ElasticsearchConfiguration struct {
	URL string
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config") // path to look for the config file in
	viper.SetConfigName("config") // name of the config file (without extension)
	viper.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	viper.AutomaticEnv() // read in environment variables that match

	// Set default configurations
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("gateway.url", "http://api-gateway:8000")
	viper.SetDefault("external.url", "")
	viper.SetDefault("auth.secret", "dev-only-signing-secret")
	viper.SetDefault("auth.tokenTTL", "30m")
	viper.SetDefault("proxy.timeout", "30s")
	viper.SetDefault("health.timeout", "5s")
	viper.SetDefault("redis.addr", "")
	viper.SetDefault("elasticsearch.url", "")
	viper.SetDefault("ratelimit.requests", 100)
	viper.SetDefault("ratelimit.window", "1m")
	viper.SetDefault("log.file", "logging/api.log")

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	// Unmarshal the configuration into the Configuration struct
	err := viper.Unmarshal(&config)
	if err != nil {
		return err
	}

	return nil
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration retrieves a duration value from the configuration
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}
