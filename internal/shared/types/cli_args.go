package types

// CLIArgs represents the command-line arguments.
// Changed records which flags the operator set explicitly, so they can override a config file.
type CLIArgs struct {
	ConfigFile          string
	Profile             string
	BootstrapRegion     string
	Regions             []string
	DryRun              bool
	AutoApprove         bool
	Debug               bool
	Verbose             bool
	LogFormat           string
	SecurityGroupPolicy string
	OnRegionListError   string
	IgnoreFailures      bool
	ReportName          string
	ReportType          []string
	Dir                 string

	Changed map[string]bool
}

// ApplyTo overlays the explicitly set flags onto cfg.
func (a *CLIArgs) ApplyTo(cfg *Config) {
	set := func(name string) bool { return a.Changed[name] }

	if set("profile") {
		cfg.Profile = a.Profile
	}
	if set("bootstrap-region") {
		cfg.BootstrapRegion = a.BootstrapRegion
	}
	if set("regions") {
		cfg.Regions = a.Regions
		// An explicitly empty --regions stays a blank entry so that Validate rejects it.
		if len(a.Regions) == 0 {
			cfg.Regions = []string{""}
		}
	}
	if set("dryrun") {
		cfg.DryRun = a.DryRun
	}
	if set("yes") {
		cfg.AutoApprove = a.AutoApprove
	}
	if set("log-format") {
		cfg.LogFormat = a.LogFormat
	}
	if set("sg-policy") {
		cfg.SecurityGroupPolicy = SecurityGroupPolicy(a.SecurityGroupPolicy)
	}
	if set("on-region-list-error") {
		cfg.OnRegionListError = RegionListFailurePolicy(a.OnRegionListError)
	}
	if set("ignore-failures") {
		cfg.IgnoreFailures = a.IgnoreFailures
	}
	if set("report-name") {
		cfg.ReportName = a.ReportName
	}
	if set("report-type") {
		cfg.ReportType = a.ReportType
	}
	if set("dir") {
		cfg.Dir = a.Dir
	}

	// --debug wins over --verbose.
	switch {
	case a.Debug:
		cfg.LogLevel = LogLevelDebug
	case a.Verbose:
		cfg.LogLevel = LogLevelInfo
	}
}
