package config

import "time"

func getDefaultEngineConfig() *EngineConfig {
	return &EngineConfig{
		LogLevel:           "INFO",
		LogFormat:          "tint",
		PrometheusEndpoint: "/metrics",
		PrometheusAddr:     ":9090",
		Network:            "mainnet",
		PeerRpc:            getDefaultPeerRpcConfig(),
		SocialDB: &DbConfig{
			Mode: "postgres",
			Postgres: &PostgresConfig{
				Host:           "localhost",
				Port:           5432,
				Name:           "socialdb",
				User:           "socialdb",
				MaxIdleConns:   10,
				MaxOpenConns:   10,
				SslMode:        "disable",
				MigrationsPath: "file://internal/socialdb/postgresql/migrations",
			},
		},
		Cache: &CacheConfig{
			Engine: "memory",
			TTL:    time.Minute,
		},
		Api: &ApiConfig{
			Address: ":8080",
		},
	}
}

func getDefaultPeerRpcConfig() *PeerRpcConfig {
	return &PeerRpcConfig{
		Password: "bitcoin",
		User:     "bitcoin",
		Host:     "localhost",
		Port:     8332,
	}
}
