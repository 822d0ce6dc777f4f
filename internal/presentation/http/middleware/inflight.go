package middleware

import (
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

// InFlightTracker counts requests currently being served. The count is
// surfaced on the health endpoint so load balancers can observe saturation.
type InFlightTracker struct {
	count atomic.Int64
}

// NewInFlightTracker creates a new in-flight request tracker
func NewInFlightTracker() *InFlightTracker {
	return &InFlightTracker{}
}

// Middleware increments the counter for the duration of each request
func (t *InFlightTracker) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		t.count.Add(1)
		defer t.count.Add(-1)
		c.Next()
	}
}

// Count returns the number of requests currently in flight
func (t *InFlightTracker) Count() int64 {
	return t.count.Load()
}
