package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lin-avraham/Pizza2/utils"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSecretKey = "pizzapasta-dev-secret"

// Config holds everything the process reads from the environment.
type Config struct {
	Port           string
	GinMode        string
	LogLevel       string
	DBDriver       string
	DatabaseURL    string
	BusyTimeout    time.Duration
	SecretKey      string
	UploadFolder   string
	TicketFont     string
	Twilio         TwilioConfig
	NotifyPerMin   int
	RequestsPerSec int
	RedisAddr      string
	RedisPass      string
	RedisDB        int
	DishCacheTTL   time.Duration
}

// TwilioConfig carries the messaging provider credentials and the fixed
// WhatsApp sender/recipient pair.
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	APIBase    string
	From       string
	To         string
}

// LoadConfig loads .env (if present) and reads the environment.
func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		GinMode:      getEnv("GIN_MODE", "debug"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		DBDriver:     strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DatabaseURL:  getEnv("DATABASE_URL", "pizzapasta.db"),
		BusyTimeout:  getDuration("DB_BUSY_TIMEOUT", 10*time.Second),
		SecretKey:    os.Getenv("SECRET_KEY"),
		UploadFolder: getEnv("UPLOAD_FOLDER", "static/uploads"),
		TicketFont:   getEnv("TICKET_FONT", "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"),
		Twilio: TwilioConfig{
			AccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
			AuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
			APIBase:    getEnv("TWILIO_API_BASE", "https://api.twilio.com"),
			From:       getEnv("WHATSAPP_FROM", "whatsapp:+14155238886"),
			To:         getEnv("WHATSAPP_TO", "whatsapp:+972525661997"),
		},
		NotifyPerMin:   getInt("NOTIFY_RATE_PER_MIN", 30),
		RequestsPerSec: getInt("REQUESTS_PER_SEC", 50),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPass:      os.Getenv("REDIS_PASS"),
		RedisDB:        getInt("REDIS_DB", 0),
		DishCacheTTL:   getDuration("DISH_CACHE_TTL", 5*time.Minute),
	}

	if cfg.SecretKey == "" {
		if utils.InfoLogger != nil {
			utils.InfoLogger.Warn("SECRET_KEY not set, using development default")
		}
		cfg.SecretKey = defaultSecretKey
	}

	return cfg
}

// InitDB opens the configured database with a bounded lock wait.
func InitDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(SQLiteDSN(cfg.DatabaseURL, cfg.BusyTimeout))
	case "mysql":
		dialector = mysql.Open(MySQLDSN(cfg.DatabaseURL, cfg.BusyTimeout))
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.DBDriver, err)
	}

	if cfg.DBDriver == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// sqlite has a single writer; one connection keeps writes serialized.
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// SQLiteDSN appends the busy timeout and foreign key pragma to a sqlite path.
func SQLiteDSN(path string, busy time.Duration) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s_busy_timeout=%d&_foreign_keys=on", path, sep, busy.Milliseconds())
}

// MySQLDSN makes sure parseTime and a lock wait timeout are set.
func MySQLDSN(dsn string, busy time.Duration) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	secs := int(busy.Seconds())
	if secs < 1 {
		secs = 1
	}
	return fmt.Sprintf("%s%sparseTime=true&innodb_lock_wait_timeout=%d", dsn, sep, secs)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
