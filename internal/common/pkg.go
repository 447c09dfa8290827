package common

// UnknownStr is the fallback name of out-of-range enum values.
const UnknownStr = "unknown"
