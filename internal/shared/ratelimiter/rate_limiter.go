// Package ratelimiter はログイン等の操作の頻度を制限します。
package ratelimiter

import (
	"sync"
	"time"
)

// Limiter は固定ウィンドウ方式で操作の頻度を制限します。
// リクエストハンドラー内で使用するため、待機せずに即座に可否を返します。
type Limiter struct {
	limit    int           // ウィンドウあたりの上限
	interval time.Duration // どの単位でリセットするか

	mu        sync.Mutex
	count     int
	lastReset time.Time
}

// NewLimiter は新しいLimiterのインスタンスを生成します。
func NewLimiter(limit int, interval time.Duration) *Limiter {
	return &Limiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// Allow は現在のウィンドウで操作が許可されるかを返します。
// 上限に達している場合はfalseを返します。待機はしません。
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	// interval を過ぎたらカウントリセット
	if now.Sub(l.lastReset) >= l.interval {
		l.count = 0
		l.lastReset = now
	}

	if l.count >= l.limit {
		return false
	}
	l.count++
	return true
}

// Stale は現在のウィンドウが経過済みかを返します。
// 経過済みのLimiterは新品と等価なため、保持側は安全に破棄できます。
func (l *Limiter) Stale(now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return now.Sub(l.lastReset) >= l.interval
}
