package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	JwtSecret  string
	Issuer     string
	ServerPort string

	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string

	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioUseSSL    bool
	MinioBucket    string

	// AIAPIKey left empty disables external evaluation and triggers the
	// default-evaluation path.
	AIAPIKey  string
	AIBaseURL string
	AIModel   string
	AITimeout time.Duration

	EmailEnabled bool
	EmailFrom    string
	AWSRegion    string
)

func LoadConfig() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	JwtSecret = getEnv("JWT_SECRET", "defaultsecret")
	Issuer = getEnv("ISSUER", "femfund")
	ServerPort = getEnv("SERVER_PORT", "8080")

	DbHost = getEnv("DB_HOST", "localhost")
	DbPort = getEnv("DB_PORT", "5432")
	DbUser = getEnv("DB_USER", "postgres")
	DbPassword = getEnv("DB_PASSWORD", "password")
	DbName = getEnv("DB_NAME", "femfund")

	MinioEndpoint = getEnv("MINIO_ENDPOINT", "localhost:9000")
	MinioAccessKey = getEnv("MINIO_ACCESS_KEY", "minioadmin")
	MinioSecretKey = getEnv("MINIO_SECRET_KEY", "minioadmin")
	MinioBucket = getEnv("MINIO_BUCKET", "femfund-documents")
	MinioUseSSL, _ = strconv.ParseBool(getEnv("MINIO_USE_SSL", "false"))

	AIAPIKey = getEnv("AI_API_KEY", "")
	AIBaseURL = getEnv("AI_BASE_URL", "https://api.openai.com/v1")
	AIModel = getEnv("AI_MODEL", "gpt-4")
	timeoutSec, _ := strconv.Atoi(getEnv("AI_TIMEOUT_SECONDS", "30"))
	AITimeout = time.Duration(timeoutSec) * time.Second

	EmailEnabled, _ = strconv.ParseBool(getEnv("EMAIL_ENABLED", "false"))
	EmailFrom = getEnv("EMAIL_FROM", "FemFund <noreply@femfund.com>")
	AWSRegion = getEnv("AWS_REGION", "us-east-1")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
