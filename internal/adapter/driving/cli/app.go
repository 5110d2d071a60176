package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/diillson/aws-default-vpc-remover/internal/application/usecase"
	"github.com/diillson/aws-default-vpc-remover/internal/domain/repository"
	"github.com/diillson/aws-default-vpc-remover/internal/shared/types"
	"github.com/diillson/aws-default-vpc-remover/pkg/version"
	"github.com/spf13/cobra"
)

// Dependencies are the adapters the CLI wires into the teardown use case.
// The AWS repository and console depend on the resolved configuration, so they are built per run.
type Dependencies struct {
	ConfigRepo       repository.ConfigRepository
	ExportRepo       repository.ExportRepository
	NewAWSRepository func(profile, bootstrapRegion string) repository.AWSRepository
	NewConsole       func(level types.LogLevel, format string) types.ConsoleInterface
}

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd *cobra.Command
	deps    Dependencies
	version string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string, deps Dependencies) *CLIApp {
	app := &CLIApp{
		version: versionStr,
		deps:    deps,
	}

	rootCmd := &cobra.Command{
		Use:   "remove-default-vpc",
		Short: "Delete the default VPC in every region of an AWS account",
		Long: `Deletes the default VPC, with its internet gateway and subnets, in every region of the
account behind the selected profile. Regions where the VPC is in use or carries
non-default route tables, network ACLs or security groups are left untouched.`,
		Version:       version.FormatVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          app.runCommand,
	}

	rootCmd.SetVersionTemplate(`{{printf "remove-default-vpc version: %s\n" .Version}}`)

	flags := rootCmd.PersistentFlags()
	flags.StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	flags.StringP("profile", "p", types.DefaultProfile, "AWS profile to use")
	flags.Bool("dryrun", false, "Report what would be deleted without changing anything")
	flags.BoolP("debug", "d", false, "Enable debug logging")
	flags.BoolP("verbose", "v", false, "Enable info logging")
	flags.BoolP("yes", "y", false, "Skip the interactive confirmation")
	flags.String("bootstrap-region", types.DefaultBootstrapRegion, "Region used for the identity check and region enumeration")
	flags.StringSliceP("regions", "r", nil, "Only process these regions (comma-separated)")
	flags.String("sg-policy", string(types.SecurityGroupPolicyStrict), "Security group policy: strict or launch-wizard")
	flags.String("on-region-list-error", string(types.RegionListFailureAbort), "When regions cannot be listed: abort or continue")
	flags.Bool("ignore-failures", false, "Exit 0 even when some API calls failed")
	flags.StringP("report-name", "n", types.DefaultReportName, "Base name for the report files (without extension)")
	flags.StringSliceP("report-type", "t", nil, "Report types to write: csv, json, pdf")
	flags.String("dir", "", "Directory to save the report files (default: current directory)")
	flags.String("log-format", "text", "Log format: text or json")
	flags.Bool("check-update", false, "Check GitHub for a newer release before running")

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	return app.rootCmd.Execute()
}

// SetArgs overrides os.Args, mostly for tests.
func (app *CLIApp) SetArgs(args []string) {
	app.rootCmd.SetArgs(args)
}

// parseArgs lê as flags da linha de comando em um CLIArgs.
func (app *CLIApp) parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	flags := cmd.Flags()

	configFile, _ := flags.GetString("config-file")
	profile, _ := flags.GetString("profile")
	dryRun, _ := flags.GetBool("dryrun")
	debug, _ := flags.GetBool("debug")
	verbose, _ := flags.GetBool("verbose")
	autoApprove, _ := flags.GetBool("yes")
	bootstrapRegion, _ := flags.GetString("bootstrap-region")
	regions, _ := flags.GetStringSlice("regions")
	sgPolicy, _ := flags.GetString("sg-policy")
	onRegionListError, _ := flags.GetString("on-region-list-error")
	ignoreFailures, _ := flags.GetBool("ignore-failures")
	reportName, _ := flags.GetString("report-name")
	reportType, _ := flags.GetStringSlice("report-type")
	dir, _ := flags.GetString("dir")
	logFormat, _ := flags.GetString("log-format")

	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	changed := make(map[string]bool)
	for _, name := range []string{
		"profile", "bootstrap-region", "regions", "dryrun", "yes", "log-format", "sg-policy",
		"on-region-list-error", "ignore-failures", "report-name", "report-type", "dir",
	} {
		changed[name] = flags.Changed(name)
	}

	return &types.CLIArgs{
		ConfigFile:          configFile,
		Profile:             profile,
		BootstrapRegion:     bootstrapRegion,
		Regions:             regions,
		DryRun:              dryRun,
		AutoApprove:         autoApprove,
		Debug:               debug,
		Verbose:             verbose,
		LogFormat:           logFormat,
		SecurityGroupPolicy: sgPolicy,
		OnRegionListError:   onRegionListError,
		IgnoreFailures:      ignoreFailures,
		ReportName:          reportName,
		ReportType:          reportType,
		Dir:                 dir,
		Changed:             changed,
	}, nil
}

// resolveConfig merges, in increasing precedence, defaults, the config file and explicit flags.
func (app *CLIApp) resolveConfig(args *types.CLIArgs) (*types.Config, error) {
	cfg := &types.Config{}
	if args.ConfigFile != "" {
		loaded, err := app.deps.ConfigRepo.LoadConfigFile(args.ConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	args.ApplyTo(cfg)
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runCommand é o ponto de entrada principal para o comando CLI.
func (app *CLIApp) runCommand(cmd *cobra.Command, _ []string) error {
	cliArgs, err := app.parseArgs(cmd)
	if err != nil {
		return err
	}

	cfg, err := app.resolveConfig(cliArgs)
	if err != nil {
		return err
	}

	if cfg.LogFormat == "text" {
		displayWelcomeBanner(cmd.OutOrStdout())
	}

	console := app.deps.NewConsole(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if checkUpdate, _ := cmd.Flags().GetBool("check-update"); checkUpdate {
		app.checkLatestVersion(ctx, console)
	}

	teardown := usecase.NewTeardownUseCase(
		app.deps.NewAWSRepository(cfg.Profile, cfg.BootstrapRegion),
		app.deps.ExportRepo,
		console,
		*cfg,
	)

	_, err = teardown.Run(ctx)
	return err
}

// checkLatestVersion avisa quando uma versão mais recente está disponível.
func (app *CLIApp) checkLatestVersion(ctx context.Context, console types.ConsoleInterface) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	latest, newer, err := version.CheckLatestVersion(ctx, http.DefaultClient, app.version)
	if err != nil {
		console.LogDebug("Unable to check for a newer release: %s", err)
		return
	}
	if newer {
		console.LogWarning("A new version of remove-default-vpc is available: %s", latest)
		console.LogWarning("Please update using: go install github.com/diillson/aws-default-vpc-remover/cmd/remove-default-vpc@latest")
	}
}
