package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		DSN string `yaml:"url"`
	} `yaml:"database"`

	Auth struct {
		// JWTSecret подписывает сессионные токены. Пустое значение -
		// фатальная ошибка запуска, никакого insecure fallback.
		JWTSecret string `yaml:"jwt_secret"`
		// AdminSecret - серверный секрет для самоназначения роли admin
		// при регистрации
		AdminSecret string `yaml:"admin_secret"`
	} `yaml:"auth"`

	Email struct {
		Enabled      bool   `yaml:"enabled"`
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		// AdminEmail получает уведомления о новых заявках на регистрацию
		AdminEmail string `yaml:"admin_email"`
	} `yaml:"email"`

	PayDunya struct {
		BaseURL    string `yaml:"base_url"`
		MasterKey  string `yaml:"master_key"`
		PrivateKey string `yaml:"private_key"`
		PublicKey  string `yaml:"public_key"`
		Token      string `yaml:"token"`
		Mode       string `yaml:"mode"` // "test" или "live"
		ReturnURL  string `yaml:"return_url"`
		CancelURL  string `yaml:"cancel_url"`
		StoreName  string `yaml:"store_name"`
	} `yaml:"paydunya"`

	FirstAdmin struct {
		Phone    string `yaml:"phone"`
		Password string `yaml:"password"`
	} `yaml:"first_admin"`
}

var AppConfig *Config

// LoadConfig загружает конфигурацию из config.yaml, переменные окружения
// имеют приоритет. .env подхватывается если есть (режим разработки).
func LoadConfig() {
	var cfg Config

	// .env опционален, ошибки игнорируем
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	if f, err := os.Open(configPath); err == nil {
		decoder := yaml.NewDecoder(f)
		if err := decoder.Decode(&cfg); err != nil {
			f.Close()
			log.Fatalf("Failed to parse config file at %s: %v", configPath, err)
		}
		f.Close()
	}

	applyEnvOverrides(&cfg)
	applyDefaults(&cfg)
	mustValidate(&cfg)

	AppConfig = &cfg
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("SERVER_ENV"); v != "" {
		cfg.Server.Env = v
	}
	if v := os.Getenv("SERVER_PORT"); v != "" {
		cfg.Server.Port, _ = strconv.Atoi(v)
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Auth.JWTSecret = v
	}
	if v := os.Getenv("ADMIN_SECRET_KEY"); v != "" {
		cfg.Auth.AdminSecret = v
	}
	if v := os.Getenv("ADMIN_EMAIL"); v != "" {
		cfg.Email.AdminEmail = v
	}
	if v := os.Getenv("PAYDUNYA_BASE_URL"); v != "" {
		cfg.PayDunya.BaseURL = v
	}
	if v := os.Getenv("PAYDUNYA_MASTER_KEY"); v != "" {
		cfg.PayDunya.MasterKey = v
	}
	if v := os.Getenv("PAYDUNYA_PRIVATE_KEY"); v != "" {
		cfg.PayDunya.PrivateKey = v
	}
	if v := os.Getenv("PAYDUNYA_PUBLIC_KEY"); v != "" {
		cfg.PayDunya.PublicKey = v
	}
	if v := os.Getenv("PAYDUNYA_TOKEN"); v != "" {
		cfg.PayDunya.Token = v
	}
	if v := os.Getenv("PAYDUNYA_RETURN_URL"); v != "" {
		cfg.PayDunya.ReturnURL = v
	}
	if v := os.Getenv("PAYDUNYA_CANCEL_URL"); v != "" {
		cfg.PayDunya.CancelURL = v
	}
	if v := os.Getenv("FIRST_ADMIN_PHONE"); v != "" {
		cfg.FirstAdmin.Phone = v
	}
	if v := os.Getenv("FIRST_ADMIN_PASSWORD"); v != "" {
		cfg.FirstAdmin.Password = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Server.Env == "" {
		cfg.Server.Env = "development"
	}
	if cfg.PayDunya.BaseURL == "" {
		cfg.PayDunya.BaseURL = "https://app.paydunya.com/api"
	}
	if cfg.PayDunya.Mode == "" {
		cfg.PayDunya.Mode = "test"
	}
	if cfg.PayDunya.StoreName == "" {
		cfg.PayDunya.StoreName = "MyChild"
	}
}

// mustValidate завершает процесс если секреты не заданы.
// Секреты не имеют значений по умолчанию.
func mustValidate(cfg *Config) {
	if cfg.Auth.JWTSecret == "" {
		log.Fatal("JWT_SECRET is not configured; refusing to start with an insecure default")
	}
	if cfg.Auth.AdminSecret == "" {
		log.Fatal("ADMIN_SECRET_KEY is not configured; refusing to start")
	}
	if cfg.Database.DSN == "" {
		log.Fatal("DATABASE_URL is not configured")
	}
}

func GetConfig() *Config {
	if AppConfig == nil {
		LoadConfig()
	}
	return AppConfig
}
