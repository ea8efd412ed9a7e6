// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/taibuivan/tutorbook/internal/platform/apperr"
	"github.com/taibuivan/tutorbook/internal/platform/constants"
	"github.com/taibuivan/tutorbook/internal/platform/respond"
)

// # Client Table

type rateLimitClient struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterTable keeps one token bucket per client address.
type limiterTable struct {
	mutex   sync.Mutex
	clients map[string]*rateLimitClient
	limit   rate.Limit
	burst   int
}

func newLimiterTable(requestsPerSecond float64, burst int) *limiterTable {
	return &limiterTable{
		clients: make(map[string]*rateLimitClient),
		limit:   rate.Limit(requestsPerSecond),
		burst:   burst,
	}
}

// allow takes one token from the bucket of address.
func (table *limiterTable) allow(address string, now time.Time) bool {
	table.mutex.Lock()
	defer table.mutex.Unlock()

	client, found := table.clients[address]
	if !found {
		client = &rateLimitClient{limiter: rate.NewLimiter(table.limit, table.burst)}
		table.clients[address] = client
	}
	client.lastSeen = now
	return client.limiter.AllowN(now, 1)
}

// sweep drops clients idle for longer than ttl.
func (table *limiterTable) sweep(now time.Time, ttl time.Duration) {
	table.mutex.Lock()
	defer table.mutex.Unlock()

	for address, client := range table.clients {
		if now.Sub(client.lastSeen) > ttl {
			delete(table.clients, address)
		}
	}
}

// # Middleware

/*
RateLimit rejects a client with 429 once its token bucket is empty.

Each call owns its table, so two views in one process do not share buckets.
Idle clients are swept every [constants.RateLimitCleanupInterval] until context
is cancelled.

Parameters:
  - context: context.Context (stops the sweeper)
  - requestsPerSecond: float64 (refill rate)
  - burst: int (bucket size)
*/
func RateLimit(context context.Context, requestsPerSecond float64, burst int) func(http.Handler) http.Handler {
	table := newLimiterTable(requestsPerSecond, burst)

	go func() {
		ticker := time.NewTicker(constants.RateLimitCleanupInterval)
		defer ticker.Stop()

		for {
			select {
			case now := <-ticker.C:
				table.sweep(now, constants.RateLimitClientTTL)
			case <-context.Done():
				return
			}
		}
	}()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			if !table.allow(clientAddress(request), time.Now()) {
				respond.Error(writer, request, apperr.RateLimited())
				return
			}
			next.ServeHTTP(writer, request)
		})
	}
}
