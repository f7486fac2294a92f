package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Config holds the application's configuration values.
type Config struct {
	AppName   string `json:"appname"`
	AppEnv    string `json:"appenv"`
	AppPort   uint16 `json:"appport"`
	GinMode   string `json:"ginmode"`
	DBHost    string `json:"dbhost"`
	DBPort    uint16 `json:"dbport"`
	DBName    string `json:"dbname"`
	DBUser    string `json:"dbuser"`
	DBPass    string `json:"dbpass"`
	RedisAddr string `json:"redisaddr"`
	RedisPass string `json:"redispass"`
	RedisDB   int    `json:"redisdb"`
}

var config *Config
var once sync.Once

// LoadConfig loads the environment variables from a .env file, and returns a singleton Config instance.
func LoadConfig() *Config {
	once.Do(func() {
		// Load environment variables from .env file. A missing file is fine,
		// the environment may already be populated (tests, containers).
		if err := godotenv.Load(); err != nil {
			log.Printf("no .env file loaded: %v", err)
		}
		config = loadFromEnv()
	})
	return config
}

func loadFromEnv() *Config {
	appPort, _ := strconv.ParseUint(os.Getenv("APPPORT"), 10, 16)
	dbPort, _ := strconv.ParseUint(os.Getenv("DBPORT"), 10, 16)
	redisDB, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	return &Config{
		AppName:   os.Getenv("APPNAME"),
		AppEnv:    os.Getenv("APPENV"),
		AppPort:   uint16(appPort),
		GinMode:   os.Getenv("GINMODE"),
		DBHost:    os.Getenv("DBHOST"),
		DBPort:    uint16(dbPort),
		DBName:    os.Getenv("DBNAME"),
		DBUser:    os.Getenv("DBUSER"),
		DBPass:    os.Getenv("DBPASS"),
		RedisAddr: redisAddr,
		RedisPass: os.Getenv("REDIS_PASS"),
		RedisDB:   redisDB,
	}
}

// ConnectDB establishes a database connection. In the test environment
// (APPENV=test) it opens a shared in-memory SQLite database with foreign
// keys enabled so constraint violations surface the same way they do on
// MySQL; otherwise it connects to MySQL using the configuration values.
func ConnectDB() (*gorm.DB, error) {
	if os.Getenv("APPENV") == "test" {
		return gorm.Open(sqlite.Open("file::memory:?cache=shared&_foreign_keys=on"), &gorm.Config{})
	}

	cfg := LoadConfig()
	// Build the Data Source Name (DSN) using the configuration values.
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true", cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}
