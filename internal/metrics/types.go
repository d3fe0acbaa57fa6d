package metrics

import "time"

type HTTPMetric struct {
	Time       time.Time
	RequestID  string
	Method     string
	Path       string
	StatusCode int
	DurationMs float64
	BytesOut   int64
	ClientIP   string
	Error      string
}

type BusinessMetric struct {
	Time       time.Time
	MetricName string
	Value      float64
	Labels     map[string]string
}

// InfraMetric is a periodic sample of process and store state. Pool fields
// come from pgxpool or database/sql stats depending on the driver.
type InfraMetric struct {
	Time          time.Time
	PoolAcquired  int
	PoolIdle      int
	PoolTotal     int
	PoolMax       int
	CacheHits     int64
	CacheMisses   int64
	CacheHitRatio float64
	Goroutines    int
	HeapAllocMB   float64
}
