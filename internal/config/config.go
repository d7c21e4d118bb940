// internal/config/config.go
// Loader konfigurasi: file YAML opsional (CONFIG_FILE) lalu override dari environment variables

package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	AppName   string `yaml:"app_name"`
	AppEnv    string `yaml:"app_env"`
	AppPort   string `yaml:"app_port"`
	MCPPort   string `yaml:"mcp_port"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	MySQL struct {
		DSN      string `yaml:"dsn"`
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		DB       string `yaml:"db"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		MaxOpen  int    `yaml:"max_open"`
		MaxIdle  int    `yaml:"max_idle"`
	} `yaml:"mysql"`

	LLM struct {
		APIKey  string `yaml:"api_key"`
		APIBase string `yaml:"api_base"`
		Model   string `yaml:"model"`
	} `yaml:"llm"`

	Economics struct {
		OilPrice     float64 `yaml:"oil_price"`
		GasPrice     float64 `yaml:"gas_price"`
		DiscountRate float64 `yaml:"discount_rate"`
	} `yaml:"economics"`

	History struct {
		Months int    `yaml:"months"`
		Seed   uint64 `yaml:"seed"` // 0 = acak
	} `yaml:"history"`

	Worker struct {
		Enabled  bool   `yaml:"enabled"`
		Schedule string `yaml:"schedule"` // cron 6 field (dengan detik)
		CSVPath  string `yaml:"csv_path"`
	} `yaml:"worker"`
}

func defaults() *Config {
	c := &Config{
		AppName:   "oilgas-portfolio",
		AppEnv:    "development",
		AppPort:   "8080",
		MCPPort:   "8090",
		LogLevel:  "info",
		LogFormat: "json",
	}
	c.MySQL.Host = "localhost"
	c.MySQL.Port = "3306"
	c.MySQL.DB = "oilgas"
	c.MySQL.User = "root"
	c.MySQL.MaxOpen = 10
	c.MySQL.MaxIdle = 5

	c.LLM.APIBase = "https://api.openai.com/v1"
	c.LLM.Model = "gpt-4o-mini"

	c.Economics.OilPrice = 75
	c.Economics.GasPrice = 3.5
	c.Economics.DiscountRate = 10

	c.History.Months = 24

	c.Worker.Schedule = "0 */15 * * * *"
	return c
}

// Load membaca CONFIG_FILE (bila ada) lalu menimpa dengan env.
func Load() (*Config, error) {
	c := defaults()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := c.loadFile(path); err != nil {
			return nil, err
		}
	}
	c.applyEnv()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.AppName = getEnv("APP_NAME", c.AppName)
	c.AppEnv = getEnv("APP_ENV", c.AppEnv)
	c.AppPort = getEnv("APP_PORT", c.AppPort)
	c.MCPPort = getEnv("MCP_PORT", c.MCPPort)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)
	c.LogFormat = getEnv("LOG_FORMAT", c.LogFormat)

	c.MySQL.DSN = getEnv("DB_DSN", c.MySQL.DSN)
	c.MySQL.Host = getEnv("MYSQL_HOST", c.MySQL.Host)
	c.MySQL.Port = getEnv("MYSQL_PORT", c.MySQL.Port)
	c.MySQL.DB = getEnv("MYSQL_DB", c.MySQL.DB)
	c.MySQL.User = getEnv("MYSQL_USER", c.MySQL.User)
	c.MySQL.Password = getEnv("MYSQL_PASSWORD", c.MySQL.Password)
	c.MySQL.MaxOpen = getEnvInt("MYSQL_MAX_OPEN_CONNS", c.MySQL.MaxOpen)
	c.MySQL.MaxIdle = getEnvInt("MYSQL_MAX_IDLE_CONNS", c.MySQL.MaxIdle)

	// LLM / OpenAI
	c.LLM.APIKey = getEnv("OPENAI_API_KEY", c.LLM.APIKey)
	c.LLM.APIBase = getEnv("OPENAI_API_BASE", c.LLM.APIBase)
	c.LLM.Model = getEnv("OPENAI_MODEL", c.LLM.Model)

	c.Economics.OilPrice = getEnvFloat("OIL_PRICE", c.Economics.OilPrice)
	c.Economics.GasPrice = getEnvFloat("GAS_PRICE", c.Economics.GasPrice)
	c.Economics.DiscountRate = getEnvFloat("DISCOUNT_RATE", c.Economics.DiscountRate)

	c.History.Months = getEnvInt("HISTORY_MONTHS", c.History.Months)
	c.History.Seed = uint64(getEnvInt("HISTORY_SEED", int(c.History.Seed)))

	c.Worker.Enabled = getEnvBool("WORKER_ENABLED", c.Worker.Enabled)
	c.Worker.Schedule = getEnv("WORKER_SCHEDULE", c.Worker.Schedule)
	c.Worker.CSVPath = getEnv("WORKER_CSV_PATH", c.Worker.CSVPath)
}

func (c *Config) Validate() error {
	if c.Economics.OilPrice <= 0 {
		return fmt.Errorf("economics.oil_price must be positive, got %v", c.Economics.OilPrice)
	}
	if c.History.Months <= 0 {
		return fmt.Errorf("history.months must be positive, got %d", c.History.Months)
	}
	return nil
}

// MySQLDSN: DB_DSN apa adanya, atau dirakit dari host/port/db/user.
// Kosong bila host juga kosong (sumber MySQL dimatikan).
func (c *Config) MySQLDSN() string {
	if c.MySQL.DSN != "" {
		return c.MySQL.DSN
	}
	if c.MySQL.Host == "" {
		return ""
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true",
		c.MySQL.User, c.MySQL.Password, c.MySQL.Host, c.MySQL.Port, c.MySQL.DB)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var i int
		_, err := fmt.Sscanf(v, "%d", &i)
		if err == nil {
			return i
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
