// File: lojinha/utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = time.Hour

// MaxUploadSize is the upload limit in bytes (2MB).
const MaxUploadSize = 2 << 20
