// SPDX-License-Identifier: MPL-2.0

package config

import "context"

type (
	// LoadOptions defines explicit configuration loading inputs.
	LoadOptions struct {
		// ConfigFilePath forces loading from a specific config file when set.
		ConfigFilePath string
		// ConfigDirPath overrides the config directory lookup when set.
		ConfigDirPath string
	}

	// Provider loads configuration from explicit options.
	Provider interface {
		Load(ctx context.Context, opts LoadOptions) (*Config, error)
		Resolve(ctx context.Context, opts LoadOptions) (Result, error)
	}

	// Result is a loaded configuration together with the file it came from.
	Result struct {
		Config *Config
		// Path is the merged config file, or "" when only defaults apply.
		Path string
	}

	fileProvider struct{}
)

// NewProvider creates a configuration provider.
func NewProvider() Provider {
	return &fileProvider{}
}

// Load reads configuration from the requested source.
func (p *fileProvider) Load(ctx context.Context, opts LoadOptions) (*Config, error) {
	cfg, _, err := loadWithOptions(ctx, opts)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Resolve loads configuration and reports which file was merged.
func (p *fileProvider) Resolve(ctx context.Context, opts LoadOptions) (Result, error) {
	cfg, path, err := loadWithOptions(ctx, opts)
	if err != nil {
		return Result{}, err
	}
	return Result{Config: cfg, Path: path}, nil
}
