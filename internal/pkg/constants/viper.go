package constants

// Viper keys.
const (
	ViperServerAddr            = "server.addr"
	ViperServerShutdownTimeout = "server.shutdown_timeout"
	ViperServerCORSOrigins     = "server.cors_origins"

	ViperLogLevel  = "log.level"
	ViperLogFormat = "log.format"

	ViperStoreDriver         = "store.driver"
	ViperStoreDSN            = "store.dsn"
	ViperStoreConnectRetries = "store.connect_retries"

	ViperSeedEnabled = "seed.enabled"

	ViperActorDefaultID   = "actor.default_id"
	ViperActorDefaultName = "actor.default_name"
)

const EnvPrefix = "ROADTRACK"

// Store drivers.
const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
)

// Request headers used for activity attribution.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserName = "X-User-Name"
)
