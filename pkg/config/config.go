package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	JWT   JWTConfig
	Admin AdminConfig
	Store StoreConfig
	AI    AIConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// AdminConfig credenciales del administrador del sistema (no vive en el almacén).
type AdminConfig struct {
	Email    string
	Name     string
	Password string
}

// StoreConfig configuración del almacén en memoria.
type StoreConfig struct {
	LatencyMS int  // latencia simulada por operación, 0 = desactivada
	SeedDemo  bool // cargar el juego de datos de demostración al arrancar
}

// Latency devuelve la latencia como duración.
func (c StoreConfig) Latency() time.Duration {
	return time.Duration(c.LatencyMS) * time.Millisecond
}

// AIConfig configuración del generador de narrativa (Anthropic).
type AIConfig struct {
	AnthropicAPIKey string
	AnthropicModel  string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "ridgepark-crm"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "ridgepark-crm"),
		},
		Admin: AdminConfig{
			Email:    getString(v, "ADMIN_EMAIL", "admin@user.com"),
			Name:     getString(v, "ADMIN_NAME", "System Admin"),
			Password: getString(v, "ADMIN_PASSWORD", ""),
		},
		Store: StoreConfig{
			LatencyMS: getInt(v, "STORE_LATENCY_MS", 0),
			SeedDemo:  getBool(v, "STORE_SEED_DEMO", false),
		},
		AI: AIConfig{
			AnthropicAPIKey: getString(v, "AI_ANTHROPIC_API_KEY", ""),
			AnthropicModel:  getString(v, "AI_ANTHROPIC_MODEL", "claude-3-5-haiku-20241022"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
