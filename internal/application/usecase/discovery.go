package usecase

import (
	"context"

	"github.com/diillson/aws-default-vpc-remover/internal/domain/entity"
)

// locateDefaultVPC reads the default-vpc account attribute.
// An empty attribute is reported as "not found", the same as the literal "none".
func (r *regionRun) locateDefaultVPC(ctx context.Context) (string, bool, error) {
	values, err := r.repo.GetDefaultVPCAttribute(ctx)
	if err != nil {
		return "", false, err
	}
	r.uc.console.LogDebug("Found default-vpc attribute values in %s: %v", r.region, values)

	if len(values) == 0 {
		r.uc.console.LogWarning("No default VPC is configured in the %s region (empty default-vpc attribute)", r.region)
		return "", false, nil
	}

	vpcID := values[0]
	if vpcID == entity.NoDefaultVPC || vpcID == "" {
		r.uc.console.LogInfo("VPC (default) was not found in the %s region.", r.region)
		return "", false, nil
	}

	r.uc.console.LogInfo("Found default VPC %s in %s", vpcID, r.region)
	return vpcID, true, nil
}

// checkOccupancy reports whether any network interface is attached in the VPC.
func (r *regionRun) checkOccupancy(ctx context.Context) (bool, error) {
	enis, err := r.repo.GetNetworkInterfaces(ctx, r.vpcID)
	if err != nil {
		return false, err
	}

	if len(enis) > 0 {
		r.uc.console.LogWarning("VPC %s has existing network interfaces in the %s region and will be skipped.", r.vpcID, r.region)
		r.uc.console.LogDebug("First network interface in %s: %s", r.vpcID, enis[0].ID)
		return true, nil
	}
	return false, nil
}
