package usecase

import (
	"context"
	"fmt"

	"github.com/diillson/aws-default-vpc-remover/internal/domain/entity"
	"github.com/diillson/aws-default-vpc-remover/internal/shared/types"
)

// Each sentinel returns true when the VPC must be left for manual investigation.
// A sentinel that cannot read its resources returns true as well, unless it does not gate deletion.

// checkRouteTables flags the VPC when a route table is explicitly associated with a subnet.
// The default table only carries the main association.
func (r *regionRun) checkRouteTables(ctx context.Context) bool {
	tables, err := r.repo.GetRouteTables(ctx, r.vpcID)
	if err != nil {
		r.recordError(err)
		return true
	}

	for _, table := range tables {
		if assoc, ok := table.NonMainAssociation(); ok {
			r.uc.console.LogWarning("Found non default route table associated with VPC; this requires manual investigation. rtb id: %s vpc id: %s", table.ID, r.vpcID)
			r.recordFinding(entity.KindRouteTable, table.ID, fmt.Sprintf("non-main association %s", assoc.ID))
			return true
		}
	}
	return false
}

// checkNetworkACLs flags the VPC when any ACL is not the default one.
func (r *regionRun) checkNetworkACLs(ctx context.Context) bool {
	acls, err := r.repo.GetNetworkACLs(ctx, r.vpcID)
	if err != nil {
		r.recordError(err)
		return true
	}

	for _, acl := range acls {
		if !acl.IsDefault {
			r.uc.console.LogWarning("Found non default network ACL associated with VPC; this requires manual investigation. ACL id: %s vpc id: %s", acl.ID, r.vpcID)
			r.recordFinding(entity.KindNetworkACL, acl.ID, "custom network ACL")
			return true
		}
	}
	return false
}

// checkSecurityGroups applies the configured security group policy.
func (r *regionRun) checkSecurityGroups(ctx context.Context) bool {
	switch r.uc.cfg.SecurityGroupPolicy {
	case types.SecurityGroupPolicyRecognizePattern:
		r.removeLaunchWizardGroups(ctx)
		return false
	default:
		return r.checkStrictSecurityGroups(ctx)
	}
}

// checkStrictSecurityGroups flags the VPC for any group not named "default".
func (r *regionRun) checkStrictSecurityGroups(ctx context.Context) bool {
	groups, err := r.repo.GetSecurityGroups(ctx, r.vpcID)
	if err != nil {
		r.recordError(err)
		return true
	}

	for _, sg := range groups {
		if !sg.IsDefault() {
			r.uc.console.LogWarning("Found non default security group associated with VPC; this requires manual investigation. SG id: %s (%s) vpc id: %s", sg.ID, sg.Name, r.vpcID)
			r.recordFinding(entity.KindSecurityGroup, sg.ID, fmt.Sprintf("security group %q", sg.Name))
			return true
		}
	}
	return false
}

// removeLaunchWizardGroups deletes the groups left behind by the console launch wizard.
// Other groups are left alone; they never block the VPC deletion under this policy.
func (r *regionRun) removeLaunchWizardGroups(ctx context.Context) {
	groups, err := r.repo.GetSecurityGroups(ctx, r.vpcID)
	if err != nil {
		r.recordError(err)
		return
	}

	for _, sg := range groups {
		switch {
		case sg.IsDefault():
			continue
		case !sg.IsLaunchWizard():
			r.uc.console.LogInfo("Security group %s (%s) does not match the launch-wizard pattern, leaving it in place", sg.ID, sg.Name)
			continue
		}

		if r.uc.cfg.DryRun {
			r.uc.console.LogWarning("DRYRUN, would have deleted security group %s (%s) in VPC %s", sg.ID, sg.Name, r.vpcID)
			r.recordAction(entity.KindSecurityGroup, sg.ID, "delete", nil)
			continue
		}

		r.uc.console.LogWarning("Deleting security group %s (%s) in VPC %s", sg.ID, sg.Name, r.vpcID)
		err := r.repo.DeleteSecurityGroup(ctx, sg.ID)
		r.recordAction(entity.KindSecurityGroup, sg.ID, "delete", err)
		if err != nil {
			r.recordError(err)
		}
	}
}
