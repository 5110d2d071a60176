package usecase

import (
	"context"

	"github.com/diillson/aws-default-vpc-remover/internal/domain/entity"
)

// removeInternetGateway detaches and deletes the gateway attached to the VPC, if any.
// Delete is attempted even when detach fails.
func (r *regionRun) removeInternetGateway(ctx context.Context) {
	igws, err := r.repo.GetInternetGateways(ctx, r.vpcID)
	if err != nil {
		r.recordError(err)
		return
	}

	if len(igws) == 0 {
		r.uc.console.LogDebug("No IGW found in %s", r.vpcID)
		return
	}

	igwID := igws[0].ID
	if r.uc.cfg.DryRun {
		r.uc.console.LogWarning("DRYRUN, would have detached and deleted IGW %s in VPC %s", igwID, r.vpcID)
		r.recordAction(entity.KindInternetGateway, igwID, "detach", nil)
		r.recordAction(entity.KindInternetGateway, igwID, "delete", nil)
		return
	}

	r.uc.console.LogInfo("Detaching IGW %s in VPC %s", igwID, r.vpcID)
	err = r.repo.DetachInternetGateway(ctx, igwID, r.vpcID)
	r.recordAction(entity.KindInternetGateway, igwID, "detach", err)
	if err != nil {
		r.recordError(err)
	}

	r.uc.console.LogWarning("Deleting IGW %s in VPC %s", igwID, r.vpcID)
	err = r.repo.DeleteInternetGateway(ctx, igwID)
	r.recordAction(entity.KindInternetGateway, igwID, "delete", err)
	if err != nil {
		r.recordError(err)
	}
}

// removeSubnets deletes every subnet of the VPC, one call each.
func (r *regionRun) removeSubnets(ctx context.Context) {
	subnets, err := r.repo.GetSubnets(ctx, r.vpcID)
	if err != nil {
		r.recordError(err)
		return
	}

	// A default VPC normally has one subnet per availability zone.
	if len(subnets) == 0 {
		r.uc.console.LogWarning("No subnets found in %s", r.vpcID)
		return
	}

	for _, subnet := range subnets {
		if r.uc.cfg.DryRun {
			r.uc.console.LogWarning("DRYRUN, would have deleted subnet %s (%s) in VPC %s", subnet.ID, subnet.CidrBlock, r.vpcID)
			r.recordAction(entity.KindSubnet, subnet.ID, "delete", nil)
			continue
		}

		r.uc.console.LogWarning("Deleting subnet %s (%s) in VPC %s", subnet.ID, subnet.CidrBlock, r.vpcID)
		err := r.repo.DeleteSubnet(ctx, subnet.ID)
		r.recordAction(entity.KindSubnet, subnet.ID, "delete", err)
		if err != nil {
			r.recordError(err)
		}
	}
}

// deleteVPC deletes the VPC itself. No retry.
func (r *regionRun) deleteVPC(ctx context.Context) {
	if r.uc.cfg.DryRun {
		r.uc.console.LogWarning("DRYRUN, would have deleted VPC %s in region %s", r.vpcID, r.region)
		r.recordAction(entity.KindVPC, r.vpcID, "delete", nil)
		r.result.Outcome = entity.OutcomeWouldDelete
		return
	}

	r.uc.console.LogWarning("Deleting VPC %s in region %s", r.vpcID, r.region)
	err := r.repo.DeleteVPC(ctx, r.vpcID)
	r.recordAction(entity.KindVPC, r.vpcID, "delete", err)
	if err != nil {
		r.fail(err)
		return
	}

	r.uc.console.LogSuccess("Deleted VPC %s in region %s", r.vpcID, r.region)
	r.result.Outcome = entity.OutcomeDeleted
}
