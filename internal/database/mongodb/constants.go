package mongodb

// AppName is reported to the server in the connection handshake.
const AppName = "closetbot"

// Default collection name, matching the pluralised model name used by the
// records already in production.
const DefaultCollection = "clothingitems"

// Field names of the stored document.
const (
	fieldID        = "_id"
	fieldName      = "name"
	fieldLocation  = "location"
	fieldLastMoved = "lastMoved"
)

// Error messages
const (
	ErrMsgConnect = "mongo connect"
	ErrMsgPing    = "mongo ping"
)

// Store operation names used in StoreError and metrics.
const (
	opCreate         = "create item"
	opFindOneByName  = "find item by name"
	opFindAll        = "find all items"
	opFindByLocation = "find items by location"
	opUpdateLocation = "update item location"
	opDeleteOne      = "delete item"
	opPing           = "ping"
	opEnsureIndexes  = "ensure indexes"
)

// Log messages
const (
	LogMsgConnected    = "Connected to MongoDB"
	LogMsgSkippedItem  = "Skipping invalid item record"
	LogMsgIndexesReady = "Item indexes ready"
)
