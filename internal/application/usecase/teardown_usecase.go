package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/diillson/aws-default-vpc-remover/internal/domain/entity"
	"github.com/diillson/aws-default-vpc-remover/internal/domain/repository"
	"github.com/diillson/aws-default-vpc-remover/internal/shared/types"
)

// TeardownUseCase removes the default VPC of every region of one account.
//
// Order of operation, per region:
//
//  1. Resolve the default VPC (skip the region when there is none)
//  2. Skip the VPC if any network interface lives in it
//  3. Detach and delete the internet gateway
//  4. Delete the subnets
//  5. Check for non-default route tables, network ACLs and security groups
//  6. Delete the VPC, unless step 5 found something
type TeardownUseCase struct {
	awsRepo    repository.AWSRepository
	exportRepo repository.ExportRepository
	console    types.ConsoleInterface
	cfg        types.Config

	now func() time.Time
}

// NewTeardownUseCase creates a new teardown use case.
func NewTeardownUseCase(
	awsRepo repository.AWSRepository,
	exportRepo repository.ExportRepository,
	console types.ConsoleInterface,
	cfg types.Config,
) *TeardownUseCase {
	return &TeardownUseCase{
		awsRepo:    awsRepo,
		exportRepo: exportRepo,
		console:    console,
		cfg:        cfg,
		now:        time.Now,
	}
}

// Run executes the teardown over every region and returns what happened.
// A non-nil error with a populated report means the run finished but something failed.
func (uc *TeardownUseCase) Run(ctx context.Context) (entity.RunReport, error) {
	report := entity.RunReport{
		DryRun:              uc.cfg.DryRun,
		SecurityGroupPolicy: string(uc.cfg.SecurityGroupPolicy),
		StartedAt:           uc.now(),
	}

	identity, err := uc.awsRepo.GetCallerIdentity(ctx)
	if err != nil {
		uc.console.LogError("Unable to connect with profile %s: %s", uc.cfg.Profile, err)
		return report, fmt.Errorf("%w: %v", types.ErrIdentityUnavailable, err)
	}
	report.Identity = identity
	uc.console.LogInfo("Logged in as: %s", identity.Arn)

	if err := uc.confirm(identity); err != nil {
		return report, err
	}

	regions, err := uc.resolveRegions(ctx)
	if err != nil {
		return report, err
	}
	uc.console.LogInfo("Fetched regions: %s", strings.Join(regions, ", "))

	var runErr error
	for _, region := range regions {
		if err := ctx.Err(); err != nil {
			uc.console.LogError("Run interrupted before region %s: %s", region, err)
			runErr = err
			break
		}
		report.Regions = append(report.Regions, uc.ProcessRegion(ctx, region))
	}
	report.FinishedAt = uc.now()

	uc.displaySummary(report)
	uc.exportReport(report)

	if runErr != nil {
		return report, runErr
	}
	if report.HasFailures() && !uc.cfg.IgnoreFailures {
		return report, types.ErrPartialFailure
	}
	return report, nil
}

// confirm prints the identity and asks for an explicit "yes" unless the run cannot change anything
// or was approved up front.
func (uc *TeardownUseCase) confirm(identity entity.CallerIdentity) error {
	if uc.cfg.DryRun {
		uc.console.LogInfo("Dry run: no changes will be made in account %s", identity.AccountID)
		return nil
	}
	if uc.cfg.AutoApprove {
		uc.console.LogWarning("Auto-approved deletion of default VPCs in account %s (%s)", identity.AccountID, identity.Arn)
		return nil
	}

	uc.console.Println(fmt.Sprintf("Profile: %s", identity.Profile))
	uc.console.Println(fmt.Sprintf("Account: %s", identity.AccountID))
	uc.console.Println(fmt.Sprintf("Identity: %s", identity.Arn))
	uc.console.Println("Default VPCs will be deleted in every region of this account. This action CANNOT be undone!")

	confirmed, err := uc.console.Confirm("Type 'yes' to continue:", "yes")
	if err != nil {
		uc.console.LogError("Could not read confirmation: %s", err)
		return fmt.Errorf("%w: %v", types.ErrAborted, err)
	}
	if !confirmed {
		uc.console.LogError("Confirmation not given, exiting")
		return types.ErrAborted
	}
	return nil
}

// resolveRegions returns the configured regions, or every region of the account.
func (uc *TeardownUseCase) resolveRegions(ctx context.Context) ([]string, error) {
	if len(uc.cfg.Regions) > 0 {
		uc.console.LogDebug("Using configured regions instead of enumerating")
		return uc.cfg.Regions, nil
	}

	regions, err := uc.awsRepo.GetAllRegions(ctx)
	if err != nil {
		uc.console.LogError("Unable to list regions: %s", err)
		if uc.cfg.OnRegionListError == types.RegionListFailureContinue {
			uc.console.LogWarning("Continuing with zero regions, nothing will be processed")
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", types.ErrRegionListUnavailable, err)
	}
	return regions, nil
}

// ProcessRegion runs the whole pipeline for one region. Every path records an outcome.
func (uc *TeardownUseCase) ProcessRegion(ctx context.Context, region string) entity.RegionResult {
	uc.console.LogInfo("Processing region %s", region)
	result := entity.RegionResult{Region: region}

	regionRepo, err := uc.awsRepo.ForRegion(ctx, region)
	if err != nil {
		uc.console.LogError("Unable to create EC2 client for %s: %s", region, err)
		result.Outcome = entity.OutcomeFailed
		result.Errors = append(result.Errors, err.Error())
		return result
	}

	if bound := regionRepo.Region(); bound != region {
		err := fmt.Errorf("EC2 client for %s is bound to region %q", region, bound)
		uc.console.LogError("%s", err)
		result.Outcome = entity.OutcomeFailed
		result.Errors = append(result.Errors, err.Error())
		return result
	}
	uc.console.LogDebug("EC2 client bound to %s", regionRepo.Region())

	run := &regionRun{
		uc:     uc,
		repo:   regionRepo,
		region: regionRepo.Region(),
		result: &result,
	}
	run.execute(ctx)
	return result
}

// regionRun carries the state of one region's pipeline.
type regionRun struct {
	uc     *TeardownUseCase
	repo   repository.RegionRepository
	region string
	vpcID  string
	result *entity.RegionResult
}

func (r *regionRun) execute(ctx context.Context) {
	vpcID, found, err := r.locateDefaultVPC(ctx)
	if err != nil {
		r.fail(err)
		return
	}
	if !found {
		r.result.Outcome = entity.OutcomeNoDefaultVPC
		return
	}
	r.vpcID = vpcID
	r.result.VpcID = vpcID

	occupied, err := r.checkOccupancy(ctx)
	if err != nil {
		r.fail(err)
		return
	}
	if occupied {
		r.result.Outcome = entity.OutcomeOccupied
		return
	}

	r.removeInternetGateway(ctx)
	r.removeSubnets(ctx)

	// All sentinels run, whatever the others found.
	nonDefaultRouteTable := r.checkRouteTables(ctx)
	nonDefaultACL := r.checkNetworkACLs(ctx)
	nonDefaultSecurityGroup := r.checkSecurityGroups(ctx)

	if nonDefaultRouteTable || nonDefaultACL || nonDefaultSecurityGroup {
		r.uc.console.LogWarning("Not deleting VPC %s in %s because non-default resources are associated", r.vpcID, r.region)
		r.result.Outcome = entity.OutcomeBlocked
		return
	}

	r.deleteVPC(ctx)
}

func (r *regionRun) fail(err error) {
	r.uc.console.LogError("%s", err)
	r.result.Outcome = entity.OutcomeFailed
	r.result.Errors = append(r.result.Errors, err.Error())
}

// recordError logs a failed call without changing the region's outcome.
func (r *regionRun) recordError(err error) {
	r.uc.console.LogError("%s", err)
	r.result.Errors = append(r.result.Errors, err.Error())
}

func (r *regionRun) recordAction(kind, id, operation string, err error) {
	action := entity.Action{
		Kind:      kind,
		ID:        id,
		Operation: operation,
		DryRun:    r.uc.cfg.DryRun,
	}
	if err != nil {
		action.Error = err.Error()
	}
	r.result.Actions = append(r.result.Actions, action)
}

func (r *regionRun) recordFinding(kind, id, detail string) {
	r.result.Findings = append(r.result.Findings, entity.Finding{Kind: kind, ID: id, Detail: detail})
}
