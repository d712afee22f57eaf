package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	AdminEmail    string
	AdminPassword string

	SouthKitchenEmail        string
	SouthKitchenPassword     string
	KolhapuriKitchenEmail    string
	KolhapuriKitchenPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	ttlHours := 24
	if v, err := strconv.Atoi(getEnv("JWT_TTL_HOURS", "24")); err == nil && v > 0 {
		ttlHours = v
	}

	return &Config{
		DBSource:  getEnv("DB_SOURCE", "hotellucky.db"),
		Port:      getEnv("PORT", "8000"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    time.Duration(ttlHours) * time.Hour,

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),

		SouthKitchenEmail:        os.Getenv("SOUTH_KITCHEN_EMAIL"),
		SouthKitchenPassword:     os.Getenv("SOUTH_KITCHEN_PASSWORD"),
		KolhapuriKitchenEmail:    os.Getenv("KOLHAPURI_KITCHEN_EMAIL"),
		KolhapuriKitchenPassword: os.Getenv("KOLHAPURI_KITCHEN_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
