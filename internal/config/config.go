package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Provider   ProviderConfig   `mapstructure:"provider"`
	Gemini     GeminiConfig     `mapstructure:"gemini"`
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
	Generation GenerationConfig `mapstructure:"generation"`
	CORS       CORSConfig       `mapstructure:"cors"`
	Log        LogConfig        `mapstructure:"log"`
	Storage    StorageConfig    `mapstructure:"storage"`
}

type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	MaxHeaderBytes int           `mapstructure:"max_header_bytes"`
}

type ProviderConfig struct {
	Name string `mapstructure:"name"`
}

type GeminiConfig struct {
	APIKey         string        `mapstructure:"api_key"`
	ImageModel     string        `mapstructure:"image_model"`
	ImageEditModel string        `mapstructure:"image_edit_model"`
	ProImageModel  string        `mapstructure:"pro_image_model"`
	VideoModel     string        `mapstructure:"video_model"`
	TTSModel       string        `mapstructure:"tts_model"`
	PollInterval   time.Duration `mapstructure:"poll_interval"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

type OpenAIConfig struct {
	APIKey     string        `mapstructure:"api_key"`
	BaseURL    string        `mapstructure:"base_url"`
	ImageModel string        `mapstructure:"image_model"`
	TTSModel   string        `mapstructure:"tts_model"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

type GenerationConfig struct {
	MaxInputFiles    int           `mapstructure:"max_input_files"`
	ProMaxInputFiles int           `mapstructure:"pro_max_input_files"`
	AspectRatio      string        `mapstructure:"aspect_ratio"`
	Resolution       string        `mapstructure:"resolution"`
	Voice            string        `mapstructure:"voice"`
	VideoTimeout     time.Duration `mapstructure:"video_timeout"`
}

type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	ExposedHeaders   []string `mapstructure:"exposed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type StorageConfig struct {
	OutputDir string `mapstructure:"output_dir"`
	DBPath    string `mapstructure:"db_path"`
}

func Load(configPath string) (*Config, error) {
	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()
	viper.SetEnvPrefix("MEDIASTUDIO")

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	// Config file wins; fall back to the conventional env vars when the
	// key is not set there.
	if cfg.Gemini.APIKey == "" {
		if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
			cfg.Gemini.APIKey = apiKey
		} else if apiKey := os.Getenv("GOOGLE_API_KEY"); apiKey != "" {
			cfg.Gemini.APIKey = apiKey
		}
	}
	if cfg.OpenAI.APIKey == "" {
		if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
			cfg.OpenAI.APIKey = apiKey
		}
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 33000)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "15m")
	viper.SetDefault("server.max_header_bytes", 1<<20)

	viper.SetDefault("provider.name", "gemini")

	viper.SetDefault("gemini.image_model", "gemini-2.5-flash-image")
	viper.SetDefault("gemini.image_edit_model", "gemini-2.5-flash-image-preview")
	viper.SetDefault("gemini.pro_image_model", "gemini-3-pro-image-preview")
	viper.SetDefault("gemini.video_model", "veo-3.1-generate-preview")
	viper.SetDefault("gemini.tts_model", "gemini-2.5-pro-preview-tts")
	viper.SetDefault("gemini.poll_interval", "10s")
	viper.SetDefault("gemini.timeout", "2m")

	viper.SetDefault("openai.image_model", "dall-e-3")
	viper.SetDefault("openai.tts_model", "tts-1")
	viper.SetDefault("openai.timeout", "2m")

	viper.SetDefault("generation.max_input_files", 3)
	viper.SetDefault("generation.pro_max_input_files", 14)
	viper.SetDefault("generation.aspect_ratio", "16:9")
	viper.SetDefault("generation.resolution", "720p")
	viper.SetDefault("generation.voice", "Zephyr")
	viper.SetDefault("generation.video_timeout", "10m")

	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")

	viper.SetDefault("storage.output_dir", "./outputs")
	viper.SetDefault("storage.db_path", "./data.db")
}
