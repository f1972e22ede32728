// Package redis provides the Redis document store backend.
//
// Entries live in one hash per id plus a sorted-set index scored by creation
// time in unix milliseconds; daybook pages are plain string keys. All client
// traffic runs through a circuit breaker hook so a dead Redis fails fast
// instead of piling up timeouts.
package redis
