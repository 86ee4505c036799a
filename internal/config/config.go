package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/viper"
)

const (
	StoreDriverPostgREST = "postgrest"
	StoreDriverPostgres  = "postgres"

	EmbeddingSourceOllama = "ollama"
	EmbeddingSourceOpenAI = "openai"

	IndexDriverNone   = "none"
	IndexDriverQdrant = "qdrant"
)

type Config struct {
	SupabaseURL        string
	SupabaseServiceKey string
	Store              StoreConfig
	Embedding          EmbeddingConfig
	Redis              RedisConfig
	CacheTTLs          CacheTTLConfig
	Logger             LoggerConfig
	Server             ServerConfig
	Ingest             IngestConfig
	Match              MatchConfig
	Index              IndexConfig
}

type StoreConfig struct {
	Driver string
	Table  string
	Schema string
	DSN    string
}

type EmbeddingConfig struct {
	Source string
	Ollama OllamaConfig
	OpenAI OpenAIConfig
}

type OllamaConfig struct {
	ServerURL string
	Model     string
}

type OpenAIConfig struct {
	APIKey     string
	Model      string
	Dimensions int
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type CacheTTLConfig struct {
	Embedding string
}

type LoggerConfig struct {
	Level string
	Env   string
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type IngestConfig struct {
	OutputPath string
	SeedPath   string
}

type MatchConfig struct {
	TopK int
}

type IndexConfig struct {
	Driver     string
	Host       string
	Port       int
	Collection string
}

// LoadConfig reads config.json from the parent directory, the working directory or ./configs.
// SPECIALTY_CONFIG may point at an explicit file instead.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(os.Getenv("SPECIALTY_CONFIG"))
}

// LoadConfigFrom reads the given config file, or searches the default paths when path is empty.
func LoadConfigFrom(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("json")
		v.AddConfigPath("..")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	configFile := v.ConfigFileUsed()
	if configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", absPath)
	}

	config := &Config{
		SupabaseURL:        v.GetString("supabase_url"),
		SupabaseServiceKey: v.GetString("supabase_service_key"),
		Store: StoreConfig{
			Driver: v.GetString("store.driver"),
			Table:  v.GetString("store.table"),
			Schema: v.GetString("store.schema"),
			DSN:    v.GetString("store.dsn"),
		},
		Embedding: EmbeddingConfig{
			Source: v.GetString("embedding.source"),
			Ollama: OllamaConfig{
				ServerURL: v.GetString("embedding.ollama.server_url"),
				Model:     v.GetString("embedding.ollama.model"),
			},
			OpenAI: OpenAIConfig{
				APIKey:     v.GetString("embedding.openai.api_key"),
				Model:      v.GetString("embedding.openai.model"),
				Dimensions: v.GetInt("embedding.openai.dimensions"),
			},
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		CacheTTLs: CacheTTLConfig{
			Embedding: v.GetString("cache_ttls.embedding"),
		},
		Logger: LoggerConfig{
			Level: v.GetString("logger.level"),
			Env:   v.GetString("logger.env"),
		},
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  time.Duration(v.GetInt("server.read_timeout")) * time.Second,
			WriteTimeout: time.Duration(v.GetInt("server.write_timeout")) * time.Second,
		},
		Ingest: IngestConfig{
			OutputPath: v.GetString("ingest.output_path"),
			SeedPath:   v.GetString("ingest.seed_path"),
		},
		Match: MatchConfig{
			TopK: v.GetInt("match.top_k"),
		},
		Index: IndexConfig{
			Driver:     v.GetString("index.driver"),
			Host:       v.GetString("index.host"),
			Port:       v.GetInt("index.port"),
			Collection: v.GetString("index.collection"),
		},
	}

	// Override with environment variables if set
	if url := os.Getenv("SUPABASE_URL"); url != "" {
		config.SupabaseURL = url
	}
	if key := os.Getenv("SUPABASE_SERVICE_KEY"); key != "" {
		config.SupabaseServiceKey = key
	}
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		config.Store.DSN = dsn
	}
	if openAIKey := os.Getenv("OPENAI_API_KEY"); openAIKey != "" {
		config.Embedding.OpenAI.APIKey = openAIKey
	}
	if ollamaURL := os.Getenv("OLLAMA_SERVER_URL"); ollamaURL != "" {
		config.Embedding.Ollama.ServerURL = ollamaURL
	}
	if redisAddress := os.Getenv("REDIS_ADDRESS"); redisAddress != "" {
		config.Redis.Address = redisAddress
	}
	if redisPassword := os.Getenv("REDIS_PASSWORD"); redisPassword != "" {
		config.Redis.Password = redisPassword
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store.driver", StoreDriverPostgREST)
	v.SetDefault("store.table", "specialties")
	v.SetDefault("store.schema", "public")
	v.SetDefault("embedding.source", EmbeddingSourceOllama)
	v.SetDefault("embedding.ollama.server_url", "http://localhost:11434")
	v.SetDefault("embedding.ollama.model", "all-minilm")
	v.SetDefault("embedding.openai.model", "text-embedding-3-small")
	v.SetDefault("cache_ttls.embedding", "168h")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.env", "development")
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", 20)
	v.SetDefault("server.write_timeout", 20)
	v.SetDefault("ingest.output_path", "specialty_embeddings.npy")
	v.SetDefault("match.top_k", 5)
	v.SetDefault("index.driver", IndexDriverNone)
	v.SetDefault("index.port", 6334)
	v.SetDefault("index.collection", "specialties")
}

// Validate only checks that the settings required by the selected drivers are present.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreDriverPostgREST:
		if c.SupabaseURL == "" {
			return fmt.Errorf("SUPABASE_URL is required for the %s store", StoreDriverPostgREST)
		}
		if c.SupabaseServiceKey == "" {
			return fmt.Errorf("SUPABASE_SERVICE_KEY is required for the %s store", StoreDriverPostgREST)
		}
	case StoreDriverPostgres:
		if c.Store.DSN == "" {
			return fmt.Errorf("store.dsn is required for the %s store", StoreDriverPostgres)
		}
	default:
		return fmt.Errorf("unsupported store driver: %q", c.Store.Driver)
	}

	switch c.Embedding.Source {
	case EmbeddingSourceOllama, EmbeddingSourceOpenAI:
	default:
		return fmt.Errorf("unsupported embedding source: %q", c.Embedding.Source)
	}

	switch c.Index.Driver {
	case "", IndexDriverNone, IndexDriverQdrant:
	default:
		return fmt.Errorf("unsupported index driver: %q", c.Index.Driver)
	}
	return nil
}

// SupabaseRESTURL returns the PostgREST endpoint of the Supabase project.
func (c *Config) SupabaseRESTURL() string {
	return strings.TrimRight(c.SupabaseURL, "/") + "/rest/v1"
}

// ServiceKeyRole returns the role claim of the Supabase service key.
// The signature is not verified; the key is only inspected.
func (c *Config) ServiceKeyRole() (string, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(c.SupabaseServiceKey, claims); err != nil {
		return "", fmt.Errorf("failed to parse service key: %w", err)
	}
	role, _ := claims["role"].(string)
	return role, nil
}

// ParseTTLStringOrDefault parses a duration string and falls back to defaultTTL when it is empty or invalid.
func (c *Config) ParseTTLStringOrDefault(ttl string, defaultTTL time.Duration) time.Duration {
	if ttl == "" {
		return defaultTTL
	}
	d, err := time.ParseDuration(ttl)
	if err != nil || d <= 0 {
		return defaultTTL
	}
	return d
}
