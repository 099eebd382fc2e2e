package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	Store  StoreConfig
	Report ReportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string // trace, debug, info, warn, error
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host        string
	Port        int
	SwaggerFile string // generado con swag init; si no existe no se monta /docs
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// StoreConfig origen de los datos iniciales del store en memoria.
type StoreConfig struct {
	SnapshotPath string // JSON con branches/services/therapists/bookings/inventory; vacío = store vacío
}

// ReportConfig valores por defecto de los reportes.
type ReportConfig struct {
	DefaultSpaPercent decimal.Decimal // se usa solo cuando la sucursal no existe
	AnalyticsDays     int             // ventana por defecto de la analítica (últimos N días)
	TopServices       int             // tamaño del ranking de servicios
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, REPORT_ANALYTICS_DAYS, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return FromViper(v)
}

// FromViper construye la configuración a partir de una instancia ya cargada (útil en tests).
func FromViper(v *viper.Viper) (*Config, error) {
	spaPercent, err := decimal.NewFromString(getString(v, "REPORT_DEFAULT_SPA_PERCENT", "30"))
	if err != nil {
		return nil, fmt.Errorf("config: REPORT_DEFAULT_SPA_PERCENT: %w", err)
	}
	if spaPercent.IsNegative() || spaPercent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("config: REPORT_DEFAULT_SPA_PERCENT fuera de rango: %s", spaPercent)
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "spacity-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8080),
			SwaggerFile: getString(v, "HTTP_SWAGGER_FILE", "./docs/swagger.json"),
		},
		Store: StoreConfig{
			SnapshotPath: getString(v, "STORE_SNAPSHOT_PATH", ""),
		},
		Report: ReportConfig{
			DefaultSpaPercent: spaPercent,
			AnalyticsDays:     getInt(v, "REPORT_ANALYTICS_DAYS", 7),
			TopServices:       getInt(v, "REPORT_TOP_SERVICES", 5),
		},
	}
	if cfg.Report.AnalyticsDays <= 0 {
		return nil, fmt.Errorf("config: REPORT_ANALYTICS_DAYS debe ser positivo")
	}
	if cfg.Report.TopServices <= 0 {
		return nil, fmt.Errorf("config: REPORT_TOP_SERVICES debe ser positivo")
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
			n, err := strconv.Atoi(v.GetString(key))
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
