package bootstrap

// Log messages for startup
const (
	LogMsgStartingClosetBot = "Starting ClosetBot"
	LogMsgConfigWarning     = "Configuration warning"
	LogMsgStoreOpened       = "Item store opened"
)

// Error messages for store setup
const (
	ErrMsgUnknownStoreDriver = "unknown store driver"
	ErrMsgFailedEnsureIndex  = "failed to ensure indexes"
	ErrMsgFailedMigrate      = "failed to migrate database"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDown         = "Shutting down..."
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgGatewayCloseFailed   = "Discord gateway close failed"
	LogMsgStoreCloseFailed     = "Item store close failed"
	LogMsgShutdownComplete     = "Shutdown complete"
)
