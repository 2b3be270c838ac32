package config

import "github.com/caarlos0/env/v9"

type Config struct {
	Port             string `env:"PORT" envDefault:"8080"`
	GeminiAPIKey     string `env:"GEMINI_API_KEY,required"`
	GeminiTextModel  string `env:"GEMINI_TEXT_MODEL" envDefault:"gemini-2.5-pro"`
	GeminiImageModel string `env:"GEMINI_IMAGE_MODEL" envDefault:"models/gemini-2.5-flash-image"`
	StorageBucket    string `env:"STORAGE_BUCKET,required"`
	TimeoutSeconds   int    `env:"REQUEST_TIMEOUT_SECONDS" envDefault:"55"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
