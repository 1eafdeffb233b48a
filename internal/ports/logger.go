package ports

import "github.com/Internmain07/I-INTERN-sub000/pkg/log"

// Logger is the structured logging port, aliased from pkg/log so internal
// packages depend on ports only.
type Logger = log.Logger

// Field is a structured log field.
type Field = log.Field

// Field constructors re-exported for internal callers.
var (
	String   = log.String
	Int      = log.Int
	Bool     = log.Bool
	Time     = log.Time
	Duration = log.Duration
	Err      = log.Err
	Any      = log.Any
)
