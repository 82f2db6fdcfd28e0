package sys

import (
	"database/sql"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hcgdev/journal-api/business/v1/draft"
	"github.com/hcgdev/journal-api/persistence/v1/blob"
	"go.uber.org/zap"
)

// Configs contains all the configs gathered from env vars
var Configs struct {
	Http struct {
		Port            string
		ShutdownTimeout time.Duration
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		IdleTimeout     time.Duration
	}
	Swagger struct {
		Protocol string
		Host     string
	}
	Storage struct {
		Driver string
	}
	Database struct {
		ConnectionURL    string
		PingTimeout      time.Duration
		OperationTimeout time.Duration
	}
	Cache struct {
		ConnectionURL    string
		User             string
		Pass             string
		PingTimeout      time.Duration
		OperationTimeout time.Duration
	}
	Session struct {
		TTL time.Duration
	}
	Assistant struct {
		Endpoint string
		Model    string
		APIKey   string
		Timeout  time.Duration
	}
	Messaging struct {
		TopicName       string
		MaxWorkers      int
		WaitTime        time.Duration
		ShutdownTimeout time.Duration
	}
	NewRelic struct {
		AppName           string
		Licence           string
		Enabled           bool
		ConnectionTimeout time.Duration
		ShutdownTimeout   time.Duration
	}
}

// R holds static resources across the project
var R struct {
	Log       *zap.SugaredLogger
	Cache     *redis.Client
	Database  *sql.DB
	Blob      blob.Store
	Assistant *draft.Assistant
}
