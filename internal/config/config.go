package config

import (
	"fmt"
	"time"

	"github.com/num30/config"
)

type Config struct {
	RunAddress string   `default:":8080" envvar:"RUN_ADDR"`
	LogLevel   string   `default:"info" flag:"loglevel" envvar:"LOGLEVEL"`
	LogFormat  string   `default:"text" envvar:"LOG_FORMAT"`
	Metrics    bool     `default:"true" envvar:"METRICS_ENABLED"`
	API        API      `default:"{}"`
	Session    Session  `default:"{}"`
	DB         Database `default:"{}"`
	RedisURL   string   `envvar:"REDIS_URL"`
	SQLitePath string   `default:"data/sessions.db" envvar:"SQLITE_PATH"`
}

// API points at the RoundBuy backend the console administers.
type API struct {
	BaseURL string        `default:"http://localhost:3000/api" validate:"required" envvar:"API_BASE_URL"`
	Timeout time.Duration `default:"15s" envvar:"API_TIMEOUT"`
}

type Session struct {
	// Backend is one of memory, redis, postgres, sqlite.
	Backend      string        `default:"memory" envvar:"SESSION_BACKEND"`
	TTL          time.Duration `default:"12h" envvar:"SESSION_TTL"`
	CookieName   string        `default:"rb_session" envvar:"SESSION_COOKIE"`
	SecureCookie bool          `default:"false" envvar:"SESSION_SECURE_COOKIE"`
}

type Database struct {
	Host     string `default:"localhost" validate:"required" envvar:"DB_HOST"`
	Port     int    `default:"5434" envvar:"DB_PORT"`
	Password string `default:"roundbuy_admin" validate:"required" envvar:"DB_PASS"`
	DbName   string `default:"roundbuy_admin" envvar:"DB_NAME"`
	Username string `default:"roundbuy_admin" envvar:"DB_USERNAME"`
}

func (d Database) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable", d.Username, d.Password, d.Host, d.Port, d.DbName)
}

func MustBuild(cfgFile string) *Config {
	var conf Config
	err := config.NewConfReader(cfgFile).Read(&conf)
	if err != nil {
		panic(err)
	}

	return &conf
}
