package config

import "time"

// UpstreamConfig contains TripShot API access configuration
type UpstreamConfig struct {
	BaseURL   string `yaml:"baseURL" validate:"required,url"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gt=0"`
}

// Timeout returns the upstream HTTP timeout as a duration.
func (u UpstreamConfig) Timeout() time.Duration {
	return time.Duration(u.TimeoutMS) * time.Millisecond
}

// RouteConfig identifies one shuttle route and the stop displayed for it
type RouteConfig struct {
	RouteID     string `yaml:"routeId" validate:"required,uuid_rfc4122"`
	TargetStop  string `yaml:"targetStop" validate:"required"`
	DisplayName string `yaml:"displayName"`
}

// RoutesConfig holds both tracked routes
type RoutesConfig struct {
	Outbound RouteConfig `yaml:"outbound"`
	Inbound  RouteConfig `yaml:"inbound"`
}

// PageConfig contains static page output configuration
type PageConfig struct {
	Path     string `yaml:"path" validate:"required"`
	TimeZone string `yaml:"timeZone" validate:"required"`
}

// Location resolves the configured display time zone.
func (p PageConfig) Location() (*time.Location, error) {
	return time.LoadLocation(p.TimeZone)
}

// ServerConfig contains API server configuration
type ServerConfig struct {
	Port      int `yaml:"port" validate:"gt=0"`
	RateLimit int `yaml:"rateLimit" validate:"gte=0"`
}

// Config is the root configuration structure
type Config struct {
	Upstream UpstreamConfig `yaml:"upstream"`
	Routes   RoutesConfig   `yaml:"routes"`
	Page     PageConfig     `yaml:"page"`
	Server   ServerConfig   `yaml:"server"`
}
