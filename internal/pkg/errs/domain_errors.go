package errs

// Sentinels shared by several command handlers. Callers mark low-level
// failures with these so the HTTP layer can map them with errors.Is.
var (
	ErrIdempotencyKeyRequired  = New("idempotency key required")
	ErrIdempotencyInProgress   = New("idempotency in progress")
	ErrIdempotencyMismatch     = New("idempotency key reused with a different request")
	ErrIdempotencyCheckFailed  = New("idempotency check failed")
	ErrDatabaseOperationFailed = New("database operation failed")
)
