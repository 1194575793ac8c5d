// Package config provides configuration loading and validation for DispLog.
package config

import "time"

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// Sources lists log files or glob patterns to process when no files
	// are given on the command line.
	Sources []string `yaml:"sources,omitempty"`

	// ChunkSize is the number of lines buffered per parsed batch.
	ChunkSize int `yaml:"chunk_size,omitempty"`

	// Output is the default output format (text or json).
	Output string `yaml:"output,omitempty"`

	// Webhooks are optional endpoints that receive parse reports.
	Webhooks []WebhookConfig `yaml:"webhooks,omitempty"`
}

// WebhookTrigger determines when a webhook fires.
type WebhookTrigger string

const (
	// WebhookTriggerOnRecords fires only when records were parsed (default).
	WebhookTriggerOnRecords WebhookTrigger = "on_records"
	// WebhookTriggerAlways fires after every run.
	WebhookTriggerAlways WebhookTrigger = "always"
	// WebhookTriggerNever disables the webhook.
	WebhookTriggerNever WebhookTrigger = "never"
)

// WebhookConfig defines a webhook endpoint for sending parse reports.
type WebhookConfig struct {
	// Name is an optional identifier for the webhook.
	Name string `yaml:"name,omitempty"`

	// URL is the webhook endpoint (required).
	URL string `yaml:"url"`

	// Token is an optional bearer token for authentication. Values of the
	// form ${VAR} or $VAR are expanded from the environment.
	Token string `yaml:"token,omitempty"`

	// Trigger determines when the webhook fires.
	// Defaults to "on_records" if not specified.
	Trigger WebhookTrigger `yaml:"trigger,omitempty"`

	// Timeout is the HTTP request timeout. Defaults to 10s.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}
