package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"pixgate/internal/application/safety"
	"pixgate/internal/application/sanitize"
	"pixgate/internal/application/usecase"
	"pixgate/internal/application/validation"
	"pixgate/internal/infrastructure/broker"
	"pixgate/internal/infrastructure/classifier"
	"pixgate/internal/infrastructure/database"
	"pixgate/internal/infrastructure/minio"
	"pixgate/pkg/logger"
)

type DefaultConfig struct {
	Address string `yaml:"address"`
}

type AuthConfig struct {
	JWTSecret string
}

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	Default         DefaultConfig          `yaml:"default"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	MinIOUploader   minio.UploaderConfig   `yaml:"minio_uploader"`
	MinIORemover    minio.RemoverConfig    `yaml:"minio_remover"`
	DBConfig        database.Config        `yaml:"db_config"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	Classifier      classifier.Config      `yaml:"classifier"`
	Safety          safety.Config          `yaml:"safety"`
	Validation      validation.Config      `yaml:"validation"`
	Sanitize        sanitize.Config        `yaml:"sanitize"`
	Uploader        usecase.UploaderConfig `yaml:"uploader"`
	Auth            AuthConfig             `yaml:"-"`
	Logger          logger.Config          `yaml:"logger"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")
	config.Classifier.APIKey = os.Getenv("CLASSIFIER_API_KEY")
	config.Auth.JWTSecret = os.Getenv("JWT_SECRET")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	if c.Validation.MaxBytes <= 0 {
		return errors.New("validation.max_bytes must be positive")
	}
	if c.Validation.MaxAnimatedBytes <= 0 || c.Validation.MaxAnimatedBytes > c.Validation.MaxBytes {
		return errors.New("validation.max_animated_bytes must be positive and not exceed max_bytes")
	}
	if c.Uploader.QuotaBytes <= 0 {
		return errors.New("uploader.quota_bytes must be positive")
	}

	return nil
}
