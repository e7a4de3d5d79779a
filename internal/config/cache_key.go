package config

import "fmt"

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// DashboardKey returns the cache key for a family's dashboard report.
func (r *CacheKeyStruct) DashboardKey(familyID int) string {
	return fmt.Sprintf("family:%d:dashboard", familyID)
}

// EventsChannel returns the Redis PubSub channel for change events.
func (r *CacheKeyStruct) EventsChannel() string {
	return "homeroom:events"
}

var CacheKey = NewCacheKeyStruct()
