package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeCheckViolation is raised when a location outside the enum is written
	PgErrorCodeCheckViolation = "23514"
)

// Store operation names used in StoreError.
const (
	opCreate         = "create item"
	opFindOneByName  = "find item by name"
	opFindAll        = "find all items"
	opFindByLocation = "find items by location"
	opUpdateLocation = "update item location"
	opDeleteOne      = "delete item"
	opPing           = "ping"
)

// Log messages
const (
	LogMsgSkippedItem = "Skipping invalid item record"
)
