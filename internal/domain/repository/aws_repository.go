package repository

import (
	"context"

	"github.com/diillson/aws-default-vpc-remover/internal/domain/entity"
)

// AWSRepository defines the account-level AWS API interactions.
type AWSRepository interface {
	// Identity Operations
	GetCallerIdentity(ctx context.Context) (entity.CallerIdentity, error)

	// Region Operations
	GetAllRegions(ctx context.Context) ([]string, error)
	ForRegion(ctx context.Context, region string) (RegionRepository, error)
}

// RegionRepository defines the EC2 operations scoped to a single region.
type RegionRepository interface {
	Region() string

	// Account attribute lookup; returns every value of default-vpc, possibly none.
	GetDefaultVPCAttribute(ctx context.Context) ([]string, error)

	// Occupancy
	GetNetworkInterfaces(ctx context.Context, vpcID string) ([]entity.NetworkInterface, error)

	// Internet Gateway Operations
	GetInternetGateways(ctx context.Context, vpcID string) ([]entity.InternetGateway, error)
	DetachInternetGateway(ctx context.Context, igwID, vpcID string) error
	DeleteInternetGateway(ctx context.Context, igwID string) error

	// Subnet Operations
	GetSubnets(ctx context.Context, vpcID string) ([]entity.Subnet, error)
	DeleteSubnet(ctx context.Context, subnetID string) error

	// Sentinel lookups
	GetRouteTables(ctx context.Context, vpcID string) ([]entity.RouteTable, error)
	GetNetworkACLs(ctx context.Context, vpcID string) ([]entity.NetworkACL, error)
	GetSecurityGroups(ctx context.Context, vpcID string) ([]entity.SecurityGroup, error)
	DeleteSecurityGroup(ctx context.Context, groupID string) error

	// VPC Operations
	DeleteVPC(ctx context.Context, vpcID string) error
}
