package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Mongo   MongoConfig   `yaml:"mongo"`
	Auth    AuthConfig    `yaml:"auth"`
	GraphQL GraphQLConfig `yaml:"graphql"`
	Media   MediaConfig   `yaml:"media"`
	AI      AIConfig      `yaml:"ai"`
	Log     LogConfig     `yaml:"log"`
	CORS    CORSConfig    `yaml:"cors"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxUploadBytes  int64         `yaml:"max_upload_bytes" env:"SERVER_MAX_UPLOAD_BYTES" env-default:"52428800"`
	// RateLimitPerMinute caps requests per client IP; 0 disables limiting.
	RateLimitPerMinute int `yaml:"rate_limit_per_minute" env:"SERVER_RATE_LIMIT_PER_MINUTE" env-default:"600"`
}

// MongoConfig holds MongoDB connection settings.
type MongoConfig struct {
	URI            string        `yaml:"uri"              env:"MONGO_URI"              env-required:"true"`
	Database       string        `yaml:"database"         env:"MONGO_DATABASE"         env-default:"storyforge"`
	ConnectTimeout time.Duration `yaml:"connect_timeout"  env:"MONGO_CONNECT_TIMEOUT"  env-default:"10s"`
	MaxPoolSize    uint64        `yaml:"max_pool_size"    env:"MONGO_MAX_POOL_SIZE"    env-default:"100"`
}

// AuthConfig holds authentication settings.
type AuthConfig struct {
	JWTSecret       string        `yaml:"jwt_secret"        env:"AUTH_JWT_SECRET"        env-required:"true"`
	JWTIssuer       string        `yaml:"jwt_issuer"        env:"AUTH_JWT_ISSUER"        env-default:"storyforge"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl"  env:"AUTH_ACCESS_TOKEN_TTL"  env-default:"15m"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" env:"AUTH_REFRESH_TOKEN_TTL" env-default:"720h"`
	BcryptCost      int           `yaml:"bcrypt_cost"       env:"AUTH_BCRYPT_COST"       env-default:"10"`
}

// GraphQLConfig holds GraphQL server settings.
type GraphQLConfig struct {
	PlaygroundEnabled    bool `yaml:"playground_enabled"    env:"GRAPHQL_PLAYGROUND_ENABLED"    env-default:"false"`
	IntrospectionEnabled bool `yaml:"introspection_enabled" env:"GRAPHQL_INTROSPECTION_ENABLED" env-default:"false"`
	ComplexityLimit      int  `yaml:"complexity_limit"      env:"GRAPHQL_COMPLEXITY_LIMIT"      env-default:"300"`
}

// MediaConfig holds settings for local asset storage.
type MediaConfig struct {
	Dir     string `yaml:"dir"      env:"MEDIA_DIR"      env-default:"./media/assets"`
	BaseURL string `yaml:"base_url" env:"MEDIA_BASE_URL" env-default:"/media/assets"`
}

// AIConfig holds settings for the external generation providers.
type AIConfig struct {
	HFToken        string        `yaml:"hf_token"         env:"AI_HF_TOKEN"`
	HFBaseURL      string        `yaml:"hf_base_url"      env:"AI_HF_BASE_URL"      env-default:"https://api-inference.huggingface.co/models"`
	ImageModel     string        `yaml:"image_model"      env:"AI_IMAGE_MODEL"      env-default:"stabilityai/stable-diffusion-xl-base-1.0"`
	MusicModel     string        `yaml:"music_model"      env:"AI_MUSIC_MODEL"      env-default:"facebook/musicgen-small"`
	TTSBaseURL     string        `yaml:"tts_base_url"     env:"AI_TTS_BASE_URL"     env-default:"https://translate.google.com/translate_tts"`
	TTSLanguage    string        `yaml:"tts_language"     env:"AI_TTS_LANGUAGE"     env-default:"en"`
	RequestTimeout time.Duration `yaml:"request_timeout"  env:"AI_REQUEST_TIMEOUT"  env-default:"120s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ImageConfigured reports whether image and music generation can be used.
// Both go through the Hugging Face Inference API and need a token.
func (c AIConfig) ImageConfigured() bool {
	return c.HFToken != ""
}

// MusicConfigured reports whether ambient music generation can be used.
func (c AIConfig) MusicConfigured() bool {
	return c.HFToken != ""
}
