package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Tier is the budget class a route falls into.
type Tier int

const (
	TierExempt Tier = iota
	TierStandard
	TierAnalyze
)

func (t Tier) String() string {
	switch t {
	case TierAnalyze:
		return "analyze"
	case TierStandard:
		return "standard"
	default:
		return "exempt"
	}
}

// standardMultiplier scales the analyze budget for cheap read routes.
const standardMultiplier = 5

// Budget is a token bucket: Rate tokens per second up to Burst.
type Budget struct {
	Rate  float64
	Burst int
}

func (b Budget) unlimited() bool { return b.Rate <= 0 || b.Burst <= 0 }

// RatePolicy classifies routes by gin full path. Analyze routes run the
// extractor and projector and get the configured budget; every other route
// except the exempt ones gets standardMultiplier times that.
type RatePolicy struct {
	Analyze       Budget
	AnalyzeRoutes []string
	ExemptRoutes  []string
}

// TierFor classifies a request. Preflight requests are always exempt.
func (p RatePolicy) TierFor(method, fullPath string) Tier {
	if method == http.MethodOptions {
		return TierExempt
	}
	for _, route := range p.ExemptRoutes {
		if route == fullPath {
			return TierExempt
		}
	}
	for _, route := range p.AnalyzeRoutes {
		if route == fullPath {
			return TierAnalyze
		}
	}
	return TierStandard
}

// BudgetFor returns the bucket parameters for t.
func (p RatePolicy) BudgetFor(t Tier) Budget {
	switch t {
	case TierAnalyze:
		return p.Analyze
	case TierStandard:
		return Budget{Rate: p.Analyze.Rate * standardMultiplier, Burst: p.Analyze.Burst * standardMultiplier}
	default:
		return Budget{}
	}
}

type bucketKey struct {
	principal string
	tier      Tier
}

type bucket struct {
	tokens float64
	seen   time.Time
}

// RateLimiter holds one bucket per caller and tier. Buckets that have
// refilled completely are dropped on a periodic sweep.
type RateLimiter struct {
	mu        sync.Mutex
	buckets   map[bucketKey]*bucket
	now       func() time.Time
	lastSweep time.Time
}

const sweepInterval = time.Minute

func NewRateLimiter(now func() time.Time) *RateLimiter {
	if now == nil {
		now = time.Now
	}
	return &RateLimiter{
		buckets: make(map[bucketKey]*bucket),
		now:     now,
	}
}

// Take spends one token from the caller's bucket for tier. When the bucket is
// empty it reports how long until a token is available.
func (l *RateLimiter) Take(principal string, tier Tier, budget Budget) (bool, time.Duration) {
	if l == nil || budget.unlimited() {
		return true, 0
	}
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweepLocked(now, budget)

	key := bucketKey{principal: principal, tier: tier}
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{tokens: float64(budget.Burst), seen: now}
		l.buckets[key] = b
	}
	if elapsed := now.Sub(b.seen).Seconds(); elapsed > 0 {
		b.tokens = math.Min(float64(budget.Burst), b.tokens+elapsed*budget.Rate)
	}
	b.seen = now

	if b.tokens >= 1 {
		b.tokens--
		return true, 0
	}
	wait := (1 - b.tokens) / budget.Rate
	return false, time.Duration(math.Ceil(wait*1000)) * time.Millisecond
}

// Len reports how many buckets are tracked.
func (l *RateLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// sweepLocked drops buckets idle long enough to have refilled. Both tiers
// refill in Burst/Rate seconds since the standard budget scales both.
func (l *RateLimiter) sweepLocked(now time.Time, budget Budget) {
	if now.Sub(l.lastSweep) < sweepInterval {
		return
	}
	l.lastSweep = now
	refill := time.Duration(float64(budget.Burst) / budget.Rate * float64(time.Second))
	if refill < sweepInterval {
		refill = sweepInterval
	}
	for key, b := range l.buckets {
		if now.Sub(b.seen) >= refill {
			delete(l.buckets, key)
		}
	}
}

// RateLimit throttles callers per tier, keyed by X-Client-Id or client IP.
func RateLimit(policy RatePolicy, limiter *RateLimiter) gin.HandlerFunc {
	if limiter == nil {
		limiter = NewRateLimiter(nil)
	}
	return func(c *gin.Context) {
		tier := policy.TierFor(c.Request.Method, c.FullPath())
		if tier == TierExempt {
			c.Next()
			return
		}
		allowed, retryAfter := limiter.Take(principal(c), tier, policy.BudgetFor(tier))
		if allowed {
			c.Next()
			return
		}
		retryAfterMs := retryAfter.Milliseconds()
		if retryAfterMs <= 0 {
			retryAfterMs = 1000
		}
		c.Header("Retry-After", strconv.FormatInt((retryAfterMs+999)/1000, 10))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
			"success":      false,
			"error":        "rate_limited",
			"tier":         tier.String(),
			"retryAfterMs": retryAfterMs,
		})
	}
}
