package lru

import (
	"log/slog"
)

// LogEvictions returns an [OnEvictFunc] that logs every eviction at debug
// level with the evicted key and value as attributes. A nil logger means
// [slog.Default].
//
//	cache.OnEvict(lru.LogEvictions[string, int](logger))
func LogEvictions[K comparable, V any](logger *slog.Logger) OnEvictFunc[K, V] {
	if logger == nil {
		logger = slog.Default()
	}

	return func(key K, value V) {
		logger.Debug("lru entry evicted", slog.Any("key", key), slog.Any("value", value))
	}
}
