package service

import (
	"sync"
	"time"
)

// LoginRateLimiter limita la frecuencia de intentos de login por identificador.
type LoginRateLimiter interface {
	Allow(key string) bool
}

type loginRateLimiter struct {
	mu        sync.Mutex
	window    time.Duration
	max       int
	hits      map[string][]time.Time
	lastSweep time.Time
}

// NewLoginRateLimiter crea un rate limiter en memoria.
func NewLoginRateLimiter(window time.Duration, max int) LoginRateLimiter {
	if max <= 0 {
		max = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &loginRateLimiter{
		window:    window,
		max:       max,
		hits:      make(map[string][]time.Time),
		lastSweep: time.Now().UTC(),
	}
}

func (l *loginRateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now().UTC()
	cutoff := now.Add(-l.window)
	l.sweep(now, cutoff)
	entries := l.hits[key]
	kept := entries[:0]
	for _, ts := range entries {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	if len(kept) >= l.max {
		l.hits[key] = kept
		return false
	}
	kept = append(kept, now)
	l.hits[key] = kept
	return true
}

// sweep descarta identificadores sin intentos vigentes; sin esto el mapa
// crece sin límite con cada identificador distinto.
func (l *loginRateLimiter) sweep(now, cutoff time.Time) {
	if now.Sub(l.lastSweep) < l.window {
		return
	}
	l.lastSweep = now
	for key, entries := range l.hits {
		live := false
		for _, ts := range entries {
			if ts.After(cutoff) {
				live = true
				break
			}
		}
		if !live {
			delete(l.hits, key)
		}
	}
}
