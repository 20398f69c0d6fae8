package config

import (
	"fmt"
	"time"
)

// RedisConfig представляет конфигурацию кэша рейтинга фильмов.
// При Enabled=false сервис работает без кэша.
type RedisConfig struct {
	Enabled        bool          `yaml:"enabled" env:"FILMORATE_REDIS_ENABLED" env-default:"false"`
	Host           string        `yaml:"host" env:"FILMORATE_REDIS_HOST" env-default:"localhost"`
	Port           int           `yaml:"port" env:"FILMORATE_REDIS_PORT" env-default:"6379"`
	Password       string        `yaml:"password" env:"FILMORATE_REDIS_PASSWORD" env-default:""`
	DB             int           `yaml:"db" env:"FILMORATE_REDIS_DB" env-default:"0"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"FILMORATE_REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	ReadTimeout    time.Duration `yaml:"read_timeout" env:"FILMORATE_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"FILMORATE_REDIS_WRITE_TIMEOUT" env-default:"3s"`
	PopularTTL     time.Duration `yaml:"popular_ttl" env:"FILMORATE_REDIS_POPULAR_TTL" env-default:"30s"`
}

// GetAddressString возвращает адрес Redis.
func (c *RedisConfig) GetAddressString() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
