package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig
	Logger     LoggerConfig
	Redis      RedisConfig
	OpenAI     OpenAIConfig
	Generation GenerationConfig
	Upload     UploadConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type OpenAIConfig struct {
	APIKey  string `yaml:"api_key"`
	Model   string `yaml:"model"`
	Timeout time.Duration
}

type GenerationConfig struct {
	DefaultQuestionCount int
	MaxQuestionCount     int
	// ChunkSize is the character budget for a single LLM prompt's text portion.
	ChunkSize int
	// MaxChunks caps how many chunks of a long document are sent upstream;
	// anything beyond is truncated.
	MaxChunks    int
	MaxAttempts  int
	RetryBackoff time.Duration
	ResultTTL    time.Duration
}

type UploadConfig struct {
	// MaxFileSize is the request body limit in bytes.
	MaxFileSize int
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 60)
	viper.SetDefault("server.idle_timeout", 20)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("redis.address", "localhost:6379")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("openai.model", "gpt-3.5-turbo")
	viper.SetDefault("openai.timeout", 30)
	viper.SetDefault("generation.default_question_count", 5)
	viper.SetDefault("generation.max_question_count", 50)
	viper.SetDefault("generation.chunk_size", 3000)
	viper.SetDefault("generation.max_chunks", 4)
	viper.SetDefault("generation.max_attempts", 2)
	viper.SetDefault("generation.retry_backoff_ms", 300)
	viper.SetDefault("generation.result_ttl", 24)
	viper.SetDefault("upload.max_file_size", 10*1024*1024)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A config file is optional; defaults plus env vars are enough.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
			IdleTimeout:  viper.GetDuration("server.idle_timeout") * time.Second,
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		OpenAI: OpenAIConfig{
			APIKey:  viper.GetString("openai.api_key"),
			Model:   viper.GetString("openai.model"),
			Timeout: viper.GetDuration("openai.timeout") * time.Second,
		},
		Generation: GenerationConfig{
			DefaultQuestionCount: viper.GetInt("generation.default_question_count"),
			MaxQuestionCount:     viper.GetInt("generation.max_question_count"),
			ChunkSize:            viper.GetInt("generation.chunk_size"),
			MaxChunks:            viper.GetInt("generation.max_chunks"),
			MaxAttempts:          viper.GetInt("generation.max_attempts"),
			RetryBackoff:         viper.GetDuration("generation.retry_backoff_ms") * time.Millisecond,
			ResultTTL:            viper.GetDuration("generation.result_ttl") * time.Hour,
		},
		Upload: UploadConfig{
			MaxFileSize: viper.GetInt("upload.max_file_size"),
		},
	}

	// Override with environment variables if set
	if port := os.Getenv("SERVER_PORT"); port != "" {
		config.Server.Port = viper.GetInt("SERVER_PORT")
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}
	if openAIKey := os.Getenv("OPENAI_API_KEY"); openAIKey != "" {
		config.OpenAI.APIKey = openAIKey
	}
	if model := os.Getenv("OPENAI_MODEL"); model != "" {
		config.OpenAI.Model = model
	}

	return config, nil
}

// Validate checks the invariants that must hold before the server starts.
// A missing API credential is a startup-time fatal, not a per-request error.
func (c *Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return fmt.Errorf("openai api key is not configured (set OPENAI_API_KEY or openai.api_key)")
	}
	if c.Generation.DefaultQuestionCount <= 0 || c.Generation.DefaultQuestionCount > c.Generation.MaxQuestionCount {
		return fmt.Errorf("invalid generation.default_question_count: %d", c.Generation.DefaultQuestionCount)
	}
	if c.Generation.ChunkSize <= 0 {
		return fmt.Errorf("invalid generation.chunk_size: %d", c.Generation.ChunkSize)
	}
	return nil
}
