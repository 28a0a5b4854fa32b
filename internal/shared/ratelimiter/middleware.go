package ratelimiter

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// clientPool はクライアントIPごとのLimiterを保持します。
// ウィンドウが経過したエントリは定期的に破棄し、マップの無限成長を防ぎます。
type clientPool struct {
	limit    int
	interval time.Duration

	mu        sync.Mutex
	limiters  map[string]*Limiter
	lastSweep time.Time
}

func newClientPool(limit int, interval time.Duration) *clientPool {
	return &clientPool{
		limit:     limit,
		interval:  interval,
		limiters:  make(map[string]*Limiter),
		lastSweep: time.Now(),
	}
}

// get は指定IPのLimiterを返します（なければ生成）。
// interval に一度、失効済みエントリをまとめて破棄します。失効済みLimiterは
// カウントがリセット済みと等価なので、破棄して作り直しても挙動は変わりません。
func (p *clientPool) get(ip string, now time.Time) *Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	if now.Sub(p.lastSweep) >= p.interval {
		for key, lim := range p.limiters {
			if lim.Stale(now) {
				delete(p.limiters, key)
			}
		}
		p.lastSweep = now
	}

	l, ok := p.limiters[ip]
	if !ok {
		l = NewLimiter(p.limit, p.interval)
		p.limiters[ip] = l
	}
	return l
}

// Middleware はクライアントIPごとにリクエスト頻度を制限するGinミドルウェアを返します。
// 上限を超えたリクエストには429を返します。ログイン・登録エンドポイントの
// ブルートフォース対策として使用します。
func Middleware(limit int, interval time.Duration) gin.HandlerFunc {
	pool := newClientPool(limit, interval)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		if !pool.get(ip, time.Now()).Allow() {
			slog.Warn("rate limit exceeded", "remote_addr", ip, "path", c.FullPath())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
