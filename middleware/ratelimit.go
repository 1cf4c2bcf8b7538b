package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// LoginRateLimit ログイン試行の制限ミドルウェア
// IP ごとにスライディングウィンドウで数え、maxAttempts を超えたら 429 を返す
func LoginRateLimit(maxAttempts int, window time.Duration) gin.HandlerFunc {
	type entry struct {
		timestamps []time.Time
	}
	var (
		mu        sync.Mutex
		store     = make(map[string]*entry)
		lastSweep = time.Now()
	)
	// しばらくアクセスのない IP の記録を落とす。ロックを取った状態で呼ぶ
	sweep := func(now time.Time) {
		cutoff := now.Add(-window)
		for ip, e := range store {
			newTs := e.timestamps[:0]
			for _, t := range e.timestamps {
				if t.After(cutoff) {
					newTs = append(newTs, t)
				}
			}
			if len(newTs) == 0 {
				delete(store, ip)
			} else {
				e.timestamps = newTs
			}
		}
		lastSweep = now
	}

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()
		mu.Lock()
		if now.Sub(lastSweep) >= time.Minute {
			sweep(now)
		}
		e, ok := store[ip]
		if !ok {
			e = &entry{}
			store[ip] = e
		}
		// ウィンドウ外の記録を落とす
		cutoff := now.Add(-window)
		newTs := e.timestamps[:0]
		for _, t := range e.timestamps {
			if t.After(cutoff) {
				newTs = append(newTs, t)
			}
		}
		e.timestamps = newTs
		if len(e.timestamps) >= maxAttempts {
			mu.Unlock()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"message": "ログイン試行が多すぎます。しばらくしてからやり直してください",
			})
			c.Abort()
			return
		}
		e.timestamps = append(e.timestamps, now)
		mu.Unlock()
		c.Next()
	}
}
