package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	envPort                  = "PORT"
	envServerReadTimeout     = "SERVER_READ_TIMEOUT"
	envServerWriteTimeout    = "SERVER_WRITE_TIMEOUT"
	envServerShutdownTimeout = "SERVER_SHUTDOWN_TIMEOUT"
	envMongoURI              = "MONGODB_URI"
	envMongoDatabase         = "MONGODB_DATABASE"
	envJWTSecret             = "JWT_SECRET"
	envJWTExpiry             = "JWT_EXPIRY"
	envAWSRegion             = "AWS_REGION"
	envAWSAccessKeyID        = "AWS_ACCESS_KEY_ID"
	envAWSSecretAccessKey    = "AWS_SECRET_ACCESS_KEY"
	envS3Bucket              = "S3_BUCKET"
	envSMTPHost              = "SMTP_HOST"
	envSMTPPort              = "SMTP_PORT"
	envSMTPUser              = "SMTP_USER"
	envSMTPPassword          = "SMTP_PASSWORD"
	envEmailFrom             = "EMAIL_FROM"
	envAdminAlertEmail       = "ADMIN_ALERT_EMAIL"
	envDefaultAdminEmail     = "DEFAULT_ADMIN_EMAIL"
	envDefaultAdminPassword  = "DEFAULT_ADMIN_PASSWORD"
	envDefaultAdminName      = "DEFAULT_ADMIN_NAME"
	envVisitorCounterFile    = "VISITOR_COUNTER_FILE"
	envVisitorFlushInterval  = "VISITOR_FLUSH_INTERVAL"
	envPaginationPageSize    = "PAGINATION_PAGE_SIZE"
	envSiteBaseURL           = "SITE_BASE_URL"
)

const (
	defaultServerPort         = "2000"
	defaultServerReadTimeout  = 10 * time.Second
	defaultServerWriteTimeout = 10 * time.Second
	defaultServerShutdown     = 10 * time.Second
	defaultMongoURI           = "mongodb://localhost:27017"
	defaultMongoDatabase      = "AMIZERORealEstate1"
	defaultJWTExpiry          = 24 * time.Hour
	defaultSMTPHost           = "smtp.gmail.com"
	defaultSMTPPort           = 587
	defaultAdminEmail         = "admin@amizero.rw"
	defaultAdminName          = "AMIZERO Admin"
	defaultCounterFile        = "visitor_counts.json"
	defaultFlushInterval      = 5 * time.Minute
	defaultPageSize           = 20
	defaultSiteBaseURL        = "https://amizerorealestate.com"

	minJWTSecretLength       = 32
	minUniqueCharsInSecret   = 16
	minRepeatedCharThreshold = 4
	maxRepeatedChars         = 2

	errRequiredEnvNotSetFmt     = "required environment variable %s is not set"
	errPortRequiredFmt          = "PORT must be set"
	errMongoURIRequiredFmt      = "MONGODB_URI must be set"
	errJWTSecretRequiredFmt     = "JWT_SECRET must be set"
	errJWTSecretMinLengthFmt    = "JWT_SECRET must be at least %d characters"
	errJWTSecretLowEntropyFmt   = "JWT_SECRET has insufficient entropy (appears non-random). Use a cryptographically secure random string."
	errAdminPasswordRequiredFmt = "DEFAULT_ADMIN_PASSWORD must be set"
	errInvalidConfigurationFmt  = "invalid configuration: %w"
)

type Config struct {
	Server  ServerConfig
	Mongo   MongoConfig
	JWT     JWTConfig
	AWS     AWSConfig
	SMTP    SMTPConfig
	Admin   AdminConfig
	App     AppConfig
	Visitor VisitorConfig
}

type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type MongoConfig struct {
	URI      string
	Database string
}

type JWTConfig struct {
	Secret         string
	ExpiryDuration time.Duration
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
}

type SMTPConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	From            string
	AdminAlertEmail string
}

type AdminConfig struct {
	Email    string
	Password string
	Name     string
}

type AppConfig struct {
	PageSize    int
	SiteBaseURL string
}

type VisitorConfig struct {
	FilePath      string
	FlushInterval time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv(envPort, defaultServerPort),
			ReadTimeout:     getDurationEnv(envServerReadTimeout, defaultServerReadTimeout),
			WriteTimeout:    getDurationEnv(envServerWriteTimeout, defaultServerWriteTimeout),
			ShutdownTimeout: getDurationEnv(envServerShutdownTimeout, defaultServerShutdown),
		},
		Mongo: MongoConfig{
			URI:      getEnv(envMongoURI, defaultMongoURI),
			Database: getEnv(envMongoDatabase, defaultMongoDatabase),
		},
		JWT: JWTConfig{
			Secret:         requireEnv(envJWTSecret),
			ExpiryDuration: getDurationEnv(envJWTExpiry, defaultJWTExpiry),
		},
		AWS: AWSConfig{
			Region:          requireEnv(envAWSRegion),
			AccessKeyID:     requireEnv(envAWSAccessKeyID),
			SecretAccessKey: requireEnv(envAWSSecretAccessKey),
			Bucket:          requireEnv(envS3Bucket),
		},
		SMTP: SMTPConfig{
			Host:            getEnv(envSMTPHost, defaultSMTPHost),
			Port:            getIntEnv(envSMTPPort, defaultSMTPPort),
			User:            os.Getenv(envSMTPUser),
			Password:        os.Getenv(envSMTPPassword),
			From:            getEnv(envEmailFrom, os.Getenv(envSMTPUser)),
			AdminAlertEmail: getEnv(envAdminAlertEmail, os.Getenv(envSMTPUser)),
		},
		Admin: AdminConfig{
			Email:    getEnv(envDefaultAdminEmail, defaultAdminEmail),
			Password: requireEnv(envDefaultAdminPassword),
			Name:     getEnv(envDefaultAdminName, defaultAdminName),
		},
		App: AppConfig{
			PageSize:    getIntEnv(envPaginationPageSize, defaultPageSize),
			SiteBaseURL: getEnv(envSiteBaseURL, defaultSiteBaseURL),
		},
		Visitor: VisitorConfig{
			FilePath:      getEnv(envVisitorCounterFile, defaultCounterFile),
			FlushInterval: getDurationEnv(envVisitorFlushInterval, defaultFlushInterval),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf(errInvalidConfigurationFmt, err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf(errPortRequiredFmt)
	}

	if c.Mongo.URI == "" {
		return fmt.Errorf(errMongoURIRequiredFmt)
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf(errJWTSecretRequiredFmt)
	}

	if len(c.JWT.Secret) < minJWTSecretLength {
		return fmt.Errorf(errJWTSecretMinLengthFmt, minJWTSecretLength)
	}

	if !hasMinimumEntropy(c.JWT.Secret) {
		return fmt.Errorf(errJWTSecretLowEntropyFmt)
	}

	if c.Admin.Password == "" {
		return fmt.Errorf(errAdminPasswordRequiredFmt)
	}

	return nil
}

func hasMinimumEntropy(secret string) bool {
	if len(secret) < minJWTSecretLength {
		return false
	}

	charCounts := make(map[rune]int)
	for _, char := range secret {
		charCounts[char]++
	}

	uniqueChars := len(charCounts)
	if uniqueChars < minUniqueCharsInSecret {
		return false
	}

	repeatedChars := 0
	for _, count := range charCounts {
		if count > len(secret)/minRepeatedCharThreshold {
			repeatedChars++
		}
	}

	return repeatedChars <= maxRepeatedChars
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func requireEnv(key string) string {
	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf(errRequiredEnvNotSetFmt, key))
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		if minutes, err := strconv.Atoi(value); err == nil {
			return time.Duration(minutes) * time.Minute
		}
	}
	return defaultValue
}
