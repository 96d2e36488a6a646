package constants

const MaxAccountIDLen = 32

const (
	DefaultPrecision = 2
	DefaultLogLevel  = "warn"
)
