package renderer

import (
	"testing"
)

func TestNewUniformCache(t *testing.T) {
	cache := NewUniformCache(0)

	if cache == nil {
		t.Fatal("NewUniformCache returned nil")
	}

	if cache.locations == nil {
		t.Error("locations map should be initialized")
	}
}

func TestUniformCacheClear(t *testing.T) {
	cache := NewUniformCache(0)
	cache.locations["viewVector"] = 5

	cache.Clear()

	if len(cache.locations) != 0 {
		t.Error("Clear should empty the cache")
	}
}

func TestUniformCacheStoresLocations(t *testing.T) {
	cache := NewUniformCache(0)

	cache.locations["glowColor"] = 1

	if _, ok := cache.locations["glowColor"]; !ok {
		t.Error("Should be able to store in locations map")
	}

	if _, ok := cache.locations["missing"]; ok {
		t.Error("Non-existent key should not be in map")
	}
}
