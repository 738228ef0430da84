package config

import (
	"fmt"
	"time"
)

// EngineConfig is the root configuration for the antibot admission engine,
// generalized from the teacher's ArcConfig: the same flat top-level of
// ambient settings (log, tracing, metrics) plus one nested struct per
// domain component instead of per microservice.
type EngineConfig struct {
	LogLevel           string          `json:"logLevel" mapstructure:"logLevel"`
	LogFormat          string          `json:"logFormat" mapstructure:"logFormat"`
	ProfilerAddr       string          `json:"profilerAddr" mapstructure:"profilerAddr"`
	PrometheusEndpoint string          `json:"prometheusEndpoint" mapstructure:"prometheusEndpoint"`
	PrometheusAddr     string          `json:"prometheusAddr" mapstructure:"prometheusAddr"`
	Network            string          `json:"network" mapstructure:"network"`
	Tracing            *TracingConfig  `json:"tracing" mapstructure:"tracing"`
	PeerRpc            *PeerRpcConfig  `json:"peerRpc" mapstructure:"peerRpc"`
	SocialDB           *DbConfig       `json:"socialDb" mapstructure:"socialDb"`
	Cache              *CacheConfig    `json:"cache" mapstructure:"cache"`
	Api                *ApiConfig      `json:"api" mapstructure:"api"`
	Limits             *LimitsConfig   `json:"limits" mapstructure:"limits"`
	Thresholds         *ThresholdsConfig `json:"thresholds" mapstructure:"thresholds"`
}

type TracingConfig struct {
	DialAddr   string            `json:"dialAddr" mapstructure:"dialAddr"`
	Attributes map[string]string `json:"attributes" mapstructure:"attributes"`
}

type PeerRpcConfig struct {
	Password string `json:"password" mapstructure:"password"`
	User     string `json:"user" mapstructure:"user"`
	Host     string `json:"host" mapstructure:"host"`
	Port     int    `json:"port" mapstructure:"port"`
}

type DbConfig struct {
	Mode     string          `json:"mode" mapstructure:"mode"`
	Postgres *PostgresConfig `json:"postgres" mapstructure:"postgres"`
}

type PostgresConfig struct {
	Host           string `json:"host" mapstructure:"host"`
	Port           int    `json:"port" mapstructure:"port"`
	Name           string `json:"name" mapstructure:"name"`
	User           string `json:"user" mapstructure:"user"`
	Password       string `json:"password" mapstructure:"password"`
	MaxIdleConns   int    `json:"maxIdleConns" mapstructure:"maxIdleConns"`
	MaxOpenConns   int    `json:"maxOpenConns" mapstructure:"maxOpenConns"`
	SslMode        string `json:"sslMode" mapstructure:"sslMode"`
	MigrationsPath string `json:"migrationsPath" mapstructure:"migrationsPath"`
}

// DSN builds the database/sql connection string sql.Open("pgx", ...) wants,
// in the same "key=value" form the teacher's cmd/arc/services wiring builds
// by hand at each call site.
func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%d sslmode=%s",
		p.User, p.Password, p.Name, p.Host, p.Port, p.SslMode)
}

type CacheConfig struct {
	Engine   string        `json:"engine" mapstructure:"engine"`
	Addr     string        `json:"addr" mapstructure:"addr"`
	TTL      time.Duration `json:"ttl" mapstructure:"ttl"`
}

type ApiConfig struct {
	Address string `json:"address" mapstructure:"address"`
}

// LimitsConfig overrides limits.DefaultTable() entries per (kind, class) at
// a given chain height, for operators tuning quotas without a redeploy.
type LimitsConfig struct {
	Overrides []LimitsOverride `json:"overrides" mapstructure:"overrides"`
}

type LimitsOverride struct {
	FromHeight int32          `json:"fromHeight" mapstructure:"fromHeight"`
	Kind       string         `json:"kind" mapstructure:"kind"`
	Trial      int            `json:"trial" mapstructure:"trial"`
	Full       int            `json:"full" mapstructure:"full"`
}

// ThresholdsConfig overrides limits.DefaultThresholds() fields; zero values
// mean "keep the default" (applied by resolveThresholds in cmd/socialengine).
type ThresholdsConfig struct {
	ScoringReputation              int64 `json:"scoringReputation" mapstructure:"scoringReputation"`
	OverPostReputation              int64 `json:"overPostReputation" mapstructure:"overPostReputation"`
	OverPostWindowSeconds            int64 `json:"overPostWindowSeconds" mapstructure:"overPostWindowSeconds"`
	BadReputationCutoff              int64 `json:"badReputationCutoff" mapstructure:"badReputationCutoff"`
	ComplaintEligibilityReputation   int64 `json:"complaintEligibilityReputation" mapstructure:"complaintEligibilityReputation"`
	FullReputationMin                int64 `json:"fullReputationMin" mapstructure:"fullReputationMin"`
	TrialBalanceMin                  int64 `json:"trialBalanceMin" mapstructure:"trialBalanceMin"`
	FullBalanceMin                   int64 `json:"fullBalanceMin" mapstructure:"fullBalanceMin"`
	TrialRegistrationAge             int64 `json:"trialRegistrationAge" mapstructure:"trialRegistrationAge"`
	FullRegistrationAge              int64 `json:"fullRegistrationAge" mapstructure:"fullRegistrationAge"`
	PostEditCutoffSeconds            int64 `json:"postEditCutoffSeconds" mapstructure:"postEditCutoffSeconds"`
}
