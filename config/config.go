package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config configuration globale de l'application
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"db"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Log      LogConfig      `mapstructure:"log"`
	Service  ServiceConfig  `mapstructure:"service"`
}

// ServerConfig configuration du serveur HTTP
type ServerConfig struct {
	Port int        `mapstructure:"port"`
	CORS CORSConfig `mapstructure:"cors"`
}

// CORSConfig origines autorisées pour le cross-origin
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DatabaseConfig configuration PostgreSQL
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Name            string `mapstructure:"name"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	SSLMode         string `mapstructure:"sslmode"`
	Timezone        string `mapstructure:"timezone"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // minutes
}

// DSN construit la chaîne de connexion PostgreSQL
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
	)
}

// RedisConfig configuration Redis (limitation de débit, facultatif)
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LogConfig configuration des journaux
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ServiceConfig règles métier du service
//
// Strict: true  → matricule obligatoire à la création d'un étudiant
//         false → matricule facultatif (variante souple)
type ServiceConfig struct {
	Strict          bool `mapstructure:"strict"`
	RateLimit       int  `mapstructure:"rate_limit"`        // requêtes par fenêtre, 0 = désactivé
	RateLimitWindow int  `mapstructure:"rate_limit_window"` // secondes
}

// Load charge la configuration depuis le fichier et les variables d'environnement
// Priorité : variables d'environnement > fichier > valeurs par défaut
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── Valeurs par défaut ──
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "gestion_notes")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "Europe/Paris")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.conn_max_lifetime", 60)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("service.strict", true)
	v.SetDefault("service.rate_limit", 100)
	v.SetDefault("service.rate_limit_window", 60)

	// ── Fichier de configuration ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── Variables d'environnement ──
	v.SetEnvPrefix("NOTES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("lecture du fichier de configuration: %w", err)
		}
		// Pas de fichier : valeurs par défaut + environnement
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("décodage de la configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate vérifie les valeurs critiques
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("configuration invalide: server.port doit être entre 1 et 65535")
	}
	if c.Database.Name == "" {
		return fmt.Errorf("configuration invalide: db.name ne peut pas être vide")
	}
	if c.Service.RateLimit < 0 || c.Service.RateLimitWindow < 0 {
		return fmt.Errorf("configuration invalide: limites de débit négatives")
	}
	return nil
}
