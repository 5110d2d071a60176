package types

import (
	"fmt"
	"strings"
)

// SecurityGroupPolicy decides how the security group sentinel treats non-default groups.
type SecurityGroupPolicy string

const (
	// SecurityGroupPolicyStrict flags the VPC for any group not named "default".
	SecurityGroupPolicyStrict SecurityGroupPolicy = "strict"
	// SecurityGroupPolicyRecognizePattern deletes launch-wizard groups and never blocks the VPC.
	SecurityGroupPolicyRecognizePattern SecurityGroupPolicy = "launch-wizard"
)

// RegionListFailurePolicy decides what happens when regions cannot be enumerated.
type RegionListFailurePolicy string

const (
	RegionListFailureAbort    RegionListFailurePolicy = "abort"
	RegionListFailureContinue RegionListFailurePolicy = "continue"
)

// LogLevel is the console verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

const (
	DefaultProfile         = "default"
	DefaultBootstrapRegion = "us-east-1"
	DefaultReportName      = "default-vpc-teardown"
)

// Config represents the application configuration that can be loaded from a file
// and overridden by command-line flags.
type Config struct {
	Profile             string                  `json:"profile" yaml:"profile" toml:"profile"`
	BootstrapRegion     string                  `json:"bootstrap_region" yaml:"bootstrap_region" toml:"bootstrap_region"`
	Regions             []string                `json:"regions" yaml:"regions" toml:"regions"`
	DryRun              bool                    `json:"dry_run" yaml:"dry_run" toml:"dry_run"`
	AutoApprove         bool                    `json:"auto_approve" yaml:"auto_approve" toml:"auto_approve"`
	LogLevel            LogLevel                `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat           string                  `json:"log_format" yaml:"log_format" toml:"log_format"`
	SecurityGroupPolicy SecurityGroupPolicy     `json:"security_group_policy" yaml:"security_group_policy" toml:"security_group_policy"`
	OnRegionListError   RegionListFailurePolicy `json:"on_region_list_error" yaml:"on_region_list_error" toml:"on_region_list_error"`
	IgnoreFailures      bool                    `json:"ignore_failures" yaml:"ignore_failures" toml:"ignore_failures"`
	ReportName          string                  `json:"report_name" yaml:"report_name" toml:"report_name"`
	ReportType          []string                `json:"report_type" yaml:"report_type" toml:"report_type"`
	Dir                 string                  `json:"dir" yaml:"dir" toml:"dir"`
}

// DefaultConfig returns the configuration used when neither a file nor flags set a value.
func DefaultConfig() *Config {
	return &Config{
		Profile:             DefaultProfile,
		BootstrapRegion:     DefaultBootstrapRegion,
		LogLevel:            LogLevelWarn,
		LogFormat:           "text",
		SecurityGroupPolicy: SecurityGroupPolicyStrict,
		OnRegionListError:   RegionListFailureAbort,
		ReportName:          DefaultReportName,
	}
}

// ApplyDefaults fills zero-valued fields with the defaults.
func (c *Config) ApplyDefaults() {
	d := DefaultConfig()
	if c.Profile == "" {
		c.Profile = d.Profile
	}
	if c.BootstrapRegion == "" {
		c.BootstrapRegion = d.BootstrapRegion
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = d.LogFormat
	}
	if c.SecurityGroupPolicy == "" {
		c.SecurityGroupPolicy = d.SecurityGroupPolicy
	}
	if c.OnRegionListError == "" {
		c.OnRegionListError = d.OnRegionListError
	}
	if c.ReportName == "" {
		c.ReportName = d.ReportName
	}
}

// Validate rejects unknown enum values and a region allow-list with no usable entry.
// Region entries are trimmed, blank ones dropped and duplicates removed in place.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Profile) == "" {
		return fmt.Errorf("%w: a profile is required", ErrInvalidConfig)
	}

	if err := c.normalizeRegions(); err != nil {
		return err
	}

	switch c.SecurityGroupPolicy {
	case SecurityGroupPolicyStrict, SecurityGroupPolicyRecognizePattern:
	default:
		return fmt.Errorf("%w: unknown security group policy %q (want %q or %q)",
			ErrInvalidConfig, c.SecurityGroupPolicy, SecurityGroupPolicyStrict, SecurityGroupPolicyRecognizePattern)
	}

	switch c.OnRegionListError {
	case RegionListFailureAbort, RegionListFailureContinue:
	default:
		return fmt.Errorf("%w: unknown region list failure policy %q (want %q or %q)",
			ErrInvalidConfig, c.OnRegionListError, RegionListFailureAbort, RegionListFailureContinue)
	}

	switch c.LogLevel {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}

	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q (want text or json)", ErrInvalidConfig, c.LogFormat)
	}

	for _, reportType := range c.ReportType {
		switch reportType {
		case "csv", "json", "pdf":
		default:
			return fmt.Errorf("%w: unsupported report type %q", ErrInvalidConfig, reportType)
		}
	}

	return nil
}

// normalizeRegions cleans the allow-list. An allow-list that was given but holds only
// blank entries is an error, never "all regions".
func (c *Config) normalizeRegions() error {
	if c.Regions == nil {
		return nil
	}

	seen := make(map[string]bool, len(c.Regions))
	regions := make([]string, 0, len(c.Regions))
	for _, region := range c.Regions {
		region = strings.TrimSpace(region)
		if region == "" || seen[region] {
			continue
		}
		seen[region] = true
		regions = append(regions, region)
	}

	if len(regions) == 0 && len(c.Regions) > 0 {
		return fmt.Errorf("%w: the region list %q has no usable entry", ErrInvalidConfig, c.Regions)
	}

	c.Regions = regions
	return nil
}
