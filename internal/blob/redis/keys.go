package redis

import "fmt"

// Key prefix for all ledger data
const keyPrefix = "rummy"

// documentKey returns the Redis key for a collection document
func documentKey(name string) string {
	return fmt.Sprintf("%s:doc:%s", keyPrefix, name)
}
