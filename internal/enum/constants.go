package enum

// DefaultCacheSize is the number of labels kept when no size is configured
const DefaultCacheSize = 256

// Error message templates
const (
	ErrMsgParseFailed    = "failed to parse enum tables: %w"
	ErrMsgReadFileFailed = "failed to read enum file %s: %w"
	ErrFmtNotMapping     = "%w: %s must be a mapping (line %d)"
	ErrFmtDuplicateEnum  = "%w: enum %s declared twice (line %d)"
	ErrFmtDuplicateName  = "%w: %s.%s declared twice (line %d)"
	ErrFmtBadValue       = "%w: %s.%s is not a 32-bit integer (line %d)"
)
