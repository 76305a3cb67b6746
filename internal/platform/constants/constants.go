// Copyright (c) 2026 FreightDesk. All rights reserved.
// Author: dev@freightdesk.io

/*
Package constants provides centralized, immutable values for the platform.

It defines default timeouts, rate limits, and cross-cutting keys shared
between layers so that magic strings and numbers stay out of business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "freightdesk-api"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Authentication

const (
	// AuthIssuer is the standard 'iss' claim in session tokens.
	AuthIssuer = "freightdesk.io"

	// DefaultTokenTTL is the session token lifetime when not configured.
	DefaultTokenTTL = 12 * time.Hour
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
	HeaderAuthorization = "Authorization"
)

// # Permission Actions

// Actions an identity's permission grant may allow per module.
const (
	ActionCreate = "create"
	ActionRead   = "read"
	ActionUpdate = "update"
	ActionDelete = "delete"
	ActionExport = "export"
	ActionPrint  = "print"
)

// AllActions lists every grantable action, used by seeding and grant validation.
var AllActions = []string{ActionCreate, ActionRead, ActionUpdate, ActionDelete, ActionExport, ActionPrint}

// # Permission Modules

// Modules an identity's permission grants are keyed by. Every routed
// resource belongs to exactly one module.
const (
	ModuleFleet      = "fleet"
	ModuleBilling    = "billing"
	ModuleOperations = "operations"
	ModuleAccounting = "accounting"
	ModuleSettings   = "settings"
)

// AllModules lists every permission module, used by admin seeding.
var AllModules = []string{ModuleFleet, ModuleBilling, ModuleOperations, ModuleAccounting, ModuleSettings}
