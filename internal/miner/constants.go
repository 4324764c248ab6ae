package miner

// Remaining watch-time descriptors
const (
	RemainingFormatSingular = "%d minute remaining"
	RemainingFormatPlural   = "%d minutes remaining"
)

// SessionSchemaPath locates the session schema inside the embedded schema FS
const SessionSchemaPath = "schemas/session.schema.json"
