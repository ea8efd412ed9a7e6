// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package constants provides centralized, immutable values for the entire application.

Categories:

  - Metadata: Application name and version.
  - Data Files: Default file names and window geometry.
  - View Timing: Read/Write/Idle timeouts for the local HTTP view.
  - Rate Limiting: Burst capacities and client tracking TTLs for the view.
  - Headers and health payload field names shared by middleware and the view.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "tutorbook"
	AppVersion = "0.3.0"
)

// # Data Files

const (
	// AddressBookFileName is the default data file inside the data directory.
	AddressBookFileName = "addressbook.json"

	// DataFilePerm is the permission used for every file tutorbook writes.
	DataFilePerm = 0o644

	// DataDirPerm is the permission used when creating the data directory.
	DataDirPerm = 0o755
)

// # Window Geometry

const (
	DefaultWindowWidth  = 740.0
	DefaultWindowHeight = 600.0
)

// # View Timing

const (
	DefaultReadTimeout       = 5 * time.Second
	DefaultWriteTimeout      = 10 * time.Second
	DefaultIdleTimeout       = 120 * time.Second
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests during shutdown.
	ShutdownTimeout = 5 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per client.
	DefaultRateLimitRPS = 20.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 40

	// RateLimitCleanupInterval is how often idle client entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # HTTP Headers

const (
	HeaderXRequestID = "X-Request-ID"
	HeaderOrigin     = "Origin"
)

// # Health Payload Fields

const (
	FieldStatus  = "status"
	FieldApp     = "app"
	FieldVersion = "version"
)
