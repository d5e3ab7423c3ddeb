package tinylog

import (
	"sync"
	"time"
)

var (
	cacheableLayouts sync.Map
	nonCacheLayouts  sync.Map
)

func init() {
	for _, layout := range []string{
		time.ANSIC,
		time.UnixDate,
		time.RubyDate,
		time.RFC822,
		time.RFC822Z,
		time.RFC850,
		time.RFC1123,
		time.RFC1123Z,
		time.RFC3339,
		time.Kitchen,
		time.Stamp,
		time.DateTime,
		time.DateOnly,
		time.TimeOnly,
	} {
		cacheableLayouts.Store(layout, struct{}{})
	}
	for _, layout := range []string{
		time.RFC3339Nano,
		time.StampMilli,
		time.StampMicro,
		time.StampNano,
	} {
		nonCacheLayouts.Store(layout, struct{}{})
	}
}

// timeCache keeps the rendered timestamp of the last second seen so a
// console writing many lines per second formats the time once. It is not
// safe for concurrent use; the console guards it with its own mutex.
type timeCache struct {
	layout    string
	cacheable bool
	sec       int64
	loc       *time.Location
	text      []byte
}

func newTimeCache(layout string) timeCache {
	return timeCache{layout: layout, cacheable: isCacheableLayout(layout)}
}

func (c *timeCache) appendTime(buf []byte, t time.Time) []byte {
	if !c.cacheable {
		return appendTimestamp(buf, t, c.layout)
	}
	sec := t.Unix()
	if c.text == nil || sec != c.sec || t.Location() != c.loc {
		c.text = appendTimestamp(c.text[:0], t, c.layout)
		c.sec = sec
		c.loc = t.Location()
	}
	return append(buf, c.text...)
}

func isCacheableLayout(layout string) bool {
	if _, ok := cacheableLayouts.Load(layout); ok {
		return true
	}
	if _, ok := nonCacheLayouts.Load(layout); ok {
		return false
	}
	if hasSubSecondPrecision(layout) {
		nonCacheLayouts.Store(layout, struct{}{})
		return false
	}
	cacheableLayouts.Store(layout, struct{}{})
	return true
}

func hasSubSecondPrecision(layout string) bool {
	base := time.Date(2024, time.January, 2, 15, 4, 5, 0, time.UTC)
	// If formatting changes within the same second, layout depends on sub-second precision.
	return base.Format(layout) != base.Add(time.Millisecond).Format(layout)
}
