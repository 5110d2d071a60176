package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/diillson/aws-default-vpc-remover/internal/domain/entity"
	"github.com/diillson/aws-default-vpc-remover/internal/shared/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunProcessesRegionsInOrder(t *testing.T) {
	first := newDefaultVPCRegion("us-east-1", "vpc-1")
	second := &fakeRegion{name: "eu-west-1", attr: []string{"none"}}
	third := newDefaultVPCRegion("ap-southeast-2", "vpc-3")
	third.enis = []entity.NetworkInterface{{ID: "eni-1"}}

	console := &fakeConsole{}
	uc := NewTeardownUseCase(newFakeAWS(first, second, third), &fakeExport{}, console, testConfig())

	report, err := uc.Run(context.Background())

	require.NoError(t, err)
	require.Len(t, report.Regions, 3)
	assert.Equal(t, "us-east-1", report.Regions[0].Region)
	assert.Equal(t, entity.OutcomeDeleted, report.Regions[0].Outcome)
	assert.Equal(t, entity.OutcomeNoDefaultVPC, report.Regions[1].Outcome)
	assert.Equal(t, entity.OutcomeOccupied, report.Regions[2].Outcome)
	assert.Equal(t, "123456789012", report.Identity.AccountID)

	require.Len(t, console.tables, 1)
	assert.Len(t, console.tables[0].rows, 3)
	assert.True(t, console.hasMessage("success", "3 region(s) processed", "1 VPC(s) deleted"))
}

func TestRunIdentityFailureProcessesNothing(t *testing.T) {
	region := newDefaultVPCRegion("us-east-1", "vpc-1")
	aws := newFakeAWS(region)
	aws.identityErr = errAPI

	report, err := NewTeardownUseCase(aws, nil, &fakeConsole{}, testConfig()).Run(context.Background())

	assert.ErrorIs(t, err, types.ErrIdentityUnavailable)
	assert.Empty(t, report.Regions)
	assert.Zero(t, aws.regionListCalls)
	assert.Empty(t, region.calls)
}

func TestRunConfirmation(t *testing.T) {
	tests := []struct {
		name        string
		dryRun      bool
		autoApprove bool
		answer      bool
		wantPrompt  bool
		wantErr     error
	}{
		{name: "operator types yes", answer: true, wantPrompt: true},
		{name: "operator declines", answer: false, wantPrompt: true, wantErr: types.ErrAborted},
		{name: "dry run skips prompt", dryRun: true, wantPrompt: false},
		{name: "auto approve skips prompt", autoApprove: true, wantPrompt: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			region := newDefaultVPCRegion("us-east-1", "vpc-1")
			aws := newFakeAWS(region)
			console := &fakeConsole{answer: tt.answer}
			cfg := testConfig()
			cfg.DryRun = tt.dryRun
			cfg.AutoApprove = tt.autoApprove

			report, err := NewTeardownUseCase(aws, nil, console, cfg).Run(context.Background())

			if tt.wantPrompt {
				assert.Equal(t, 1, console.confirmCalls)
				assert.Contains(t, console.printed, "Identity: arn:aws:iam::123456789012:user/ops")
			} else {
				assert.Zero(t, console.confirmCalls)
			}

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, report.Regions)
				assert.Zero(t, aws.regionListCalls)
				assert.Empty(t, region.calls)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, report.Regions, 1)
		})
	}
}

func TestRunConfirmationReadError(t *testing.T) {
	console := &fakeConsole{confirmErr: context.Canceled}
	cfg := testConfig()
	cfg.AutoApprove = false

	_, err := NewTeardownUseCase(newFakeAWS(), nil, console, cfg).Run(context.Background())

	assert.ErrorIs(t, err, types.ErrAborted)
}

func TestRunRegionListFailurePolicy(t *testing.T) {
	tests := []struct {
		name    string
		policy  types.RegionListFailurePolicy
		wantErr error
	}{
		{name: "abort", policy: types.RegionListFailureAbort, wantErr: types.ErrRegionListUnavailable},
		{name: "continue", policy: types.RegionListFailureContinue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aws := newFakeAWS()
			aws.regionsErr = errAPI
			console := &fakeConsole{}
			cfg := testConfig()
			cfg.OnRegionListError = tt.policy

			report, err := NewTeardownUseCase(aws, nil, console, cfg).Run(context.Background())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.True(t, console.hasMessage("warning", "zero regions"))
			}
			assert.Empty(t, report.Regions)
			assert.True(t, console.hasMessage("error", "Unable to list regions"))
		})
	}
}

func TestRunUsesConfiguredRegions(t *testing.T) {
	east := newDefaultVPCRegion("us-east-1", "vpc-1")
	west := newDefaultVPCRegion("us-west-2", "vpc-2")
	aws := newFakeAWS(east, west)
	cfg := testConfig()
	cfg.Regions = []string{"us-west-2"}

	report, err := NewTeardownUseCase(aws, nil, &fakeConsole{}, cfg).Run(context.Background())

	require.NoError(t, err)
	assert.Zero(t, aws.regionListCalls)
	require.Len(t, report.Regions, 1)
	assert.Equal(t, "us-west-2", report.Regions[0].Region)
	assert.Empty(t, east.calls)
}

func TestRunPartialFailure(t *testing.T) {
	tests := []struct {
		name           string
		ignoreFailures bool
		wantErr        error
	}{
		{name: "fails the run", wantErr: types.ErrPartialFailure},
		{name: "ignored", ignoreFailures: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			broken := &fakeRegion{name: "us-east-1", attrErr: errAPI}
			clean := newDefaultVPCRegion("us-west-2", "vpc-2")
			cfg := testConfig()
			cfg.IgnoreFailures = tt.ignoreFailures

			report, err := NewTeardownUseCase(newFakeAWS(broken, clean), nil, &fakeConsole{}, cfg).Run(context.Background())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			require.Len(t, report.Regions, 2)
			assert.Equal(t, entity.OutcomeFailed, report.Regions[0].Outcome)
			assert.Equal(t, entity.OutcomeDeleted, report.Regions[1].Outcome)
		})
	}
}

func TestRunBlockedVPCIsNotAFailure(t *testing.T) {
	region := newDefaultVPCRegion("us-east-1", "vpc-1")
	region.acls = append(region.acls, entity.NetworkACL{ID: "acl-custom"})

	report, err := NewTeardownUseCase(newFakeAWS(region), nil, &fakeConsole{}, testConfig()).Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, entity.OutcomeBlocked, report.Regions[0].Outcome)
}

func TestRunStopsWhenContextIsCancelled(t *testing.T) {
	region := newDefaultVPCRegion("us-east-1", "vpc-1")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := NewTeardownUseCase(newFakeAWS(region), nil, &fakeConsole{}, testConfig()).Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, report.Regions)
	assert.Empty(t, region.calls)
}

func TestRunExportsReport(t *testing.T) {
	export := &fakeExport{}
	console := &fakeConsole{}
	cfg := testConfig()
	cfg.ReportName = "teardown"
	cfg.ReportType = []string{"csv", "json", "pdf"}
	cfg.Dir = "/tmp/reports"

	uc := NewTeardownUseCase(newFakeAWS(newDefaultVPCRegion("us-east-1", "vpc-1")), export, console, cfg)
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	report, err := uc.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"csv", "json", "pdf"}, export.formats)
	assert.Equal(t, fixed, report.StartedAt)
	assert.True(t, console.hasMessage("success", "/tmp/reports/teardown.pdf"))
}

func TestRunDryRunSummary(t *testing.T) {
	console := &fakeConsole{}
	cfg := testConfig()
	cfg.DryRun = true

	report, err := NewTeardownUseCase(newFakeAWS(newDefaultVPCRegion("us-east-1", "vpc-1")), nil, console, cfg).Run(context.Background())

	require.NoError(t, err)
	assert.True(t, report.DryRun)
	assert.Equal(t, entity.OutcomeWouldDelete, report.Regions[0].Outcome)
	assert.True(t, console.hasMessage("success", "1 VPC(s) would be deleted"))
}
