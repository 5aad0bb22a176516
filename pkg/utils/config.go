package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Cinema   CinemaConfig
	Booking  BookingConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

// CinemaConfig identifies the single cinema this deployment serves.
// Multi-tenant support would move this into the data model.
type CinemaConfig struct {
	Name     string
	Timezone string
}

type BookingConfig struct {
	MaxSeatsPerBooking int
	DefaultPerPage     int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("CINEMA_NAME", "Main Street Cinema")
	viper.SetDefault("CINEMA_TIMEZONE", "UTC")
	viper.SetDefault("BOOKING_MAX_SEATS", 10)
	viper.SetDefault("BOOKING_PER_PAGE", 10)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Cinema: CinemaConfig{
			Name:     viper.GetString("CINEMA_NAME"),
			Timezone: viper.GetString("CINEMA_TIMEZONE"),
		},
		Booking: BookingConfig{
			MaxSeatsPerBooking: viper.GetInt("BOOKING_MAX_SEATS"),
			DefaultPerPage:     viper.GetInt("BOOKING_PER_PAGE"),
		},
	}

	return config, nil
}
