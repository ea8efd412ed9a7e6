// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package middleware holds the HTTP chain in front of the local tutorbook view.

Chain, outermost first:

  - RequestID: tags the request for log correlation.
  - StructuredLogger: one log line per request, plus a scoped logger in context.
  - RateLimit: token bucket per client address.
  - PanicRecovery: turns a handler panic into a 500 envelope.
  - CORS: lets a browser front end on the same machine call the view.

The view listens on a local address and has no authentication layer. Errors
produced here use the same JSON envelope as the handlers (see package respond).
*/
package middleware

import (
	"net"
	"net/http"
)

// clientAddress identifies the caller by the host part of RemoteAddr.
//
// The view is never deployed behind a proxy, so forwarding headers are ignored
// and a client cannot pick its own rate limit bucket.
func clientAddress(request *http.Request) string {
	host, _, err := net.SplitHostPort(request.RemoteAddr)
	if err != nil {
		return request.RemoteAddr
	}
	return host
}
