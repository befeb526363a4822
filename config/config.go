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
	"gorm.io/gorm/logger"
)

// Config holds the application's configuration values.
type Config struct {
	AppName  string `json:"appname"`
	AppEnv   string `json:"appenv"`
	AppPort  uint16 `json:"appport"`
	GinMode  string `json:"ginmode"`
	DBHost   string `json:"dbhost"`
	DBPort   uint16 `json:"dbport"`
	DBName   string `json:"dbname"`
	DBUSER   string `json:"dbuser"`
	DBPass   string `json:"dbpass"`
	SeedData bool   `json:"seeddata"`
}

var config *Config
var once sync.Once

// LoadConfig loads the environment variables from a .env file, and returns a singleton Config instance.
func LoadConfig() *Config {
	once.Do(func() {
		// .env is optional; deployments and CI may set the variables directly.
		if err := godotenv.Load(); err != nil {
			log.Printf("No .env file loaded: %v", err)
		}

		appPort, _ := strconv.ParseUint(os.Getenv("APPPORT"), 10, 16)
		dbPort, _ := strconv.ParseUint(os.Getenv("DBPORT"), 10, 16)
		seedData, _ := strconv.ParseBool(os.Getenv("SEEDDATA"))

		// Initialize the Config struct with values from environment variables.
		config = &Config{
			AppName:  os.Getenv("APPNAME"),
			AppEnv:   os.Getenv("APPENV"),
			AppPort:  uint16(appPort),
			GinMode:  os.Getenv("GINMODE"),
			DBHost:   os.Getenv("DBHOST"),
			DBPort:   uint16(dbPort),
			DBName:   os.Getenv("DBNAME"),
			DBUSER:   os.Getenv("DBUSER"),
			DBPass:   os.Getenv("DBPASS"),
			SeedData: seedData,
		}
	})
	return config
}

// ConnectMySQL establishes a connection to a MySQL database using the
// configuration values. When APPENV=test it opens an in-memory SQLite
// database instead so the test suite runs without a MySQL server.
func ConnectMySQL() (*gorm.DB, error) {
	cfg := LoadConfig()
	if cfg.AppEnv == "test" || os.Getenv("APPENV") == "test" {
		return gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
	}

	// Build the Data Source Name (DSN) using the configuration values.
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true", cfg.DBUSER, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)

	// Open a database connection.
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}
