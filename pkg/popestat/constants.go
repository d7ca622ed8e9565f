package popestat

// Exit codes. These are part of the tool's contract with calling scripts:
//   - 0: Success
//   - 1: General error (bad arguments, database or data failure)
//   - 2: Run interrupted by the user
//   - 3: Standard output pipe closed by the downstream reader
const (
	ExitSuccess     = 0
	ExitGeneralErr  = 1
	ExitInterrupted = 2
	ExitBrokenPipe  = 3
)

// Connection defaults. The database, user and table names are fixed by
// convention; tests and callers override them through ConnConfig rather
// than through package-level state.
const (
	DefaultHost     = "localhost"
	DefaultPort     = 5432
	DefaultDatabase = "census"
	DefaultUsername = "census"
	DefaultSSLMode  = "prefer"

	// DefaultTable is the destination table for population estimate rows.
	// It is dropped and recreated on every run.
	DefaultTable = "popest"
)

// PostgreSQL SQLSTATE codes for the one recoverable per-row failure mode:
// a value that cannot be coerced to an integer column. Every other code
// aborts the load.
const (
	SQLStateInvalidTextRepresentation = "22P02"
	SQLStateNumericValueOutOfRange    = "22003"
)
