package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2Types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/diillson/aws-default-vpc-remover/internal/domain/entity"
)

// ec2API is the subset of *ec2.Client used by the teardown.
type ec2API interface {
	DescribeRegions(ctx context.Context, params *ec2.DescribeRegionsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRegionsOutput, error)
	DescribeAccountAttributes(ctx context.Context, params *ec2.DescribeAccountAttributesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeAccountAttributesOutput, error)
	DescribeNetworkInterfaces(ctx context.Context, params *ec2.DescribeNetworkInterfacesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeNetworkInterfacesOutput, error)
	DescribeInternetGateways(ctx context.Context, params *ec2.DescribeInternetGatewaysInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInternetGatewaysOutput, error)
	DetachInternetGateway(ctx context.Context, params *ec2.DetachInternetGatewayInput, optFns ...func(*ec2.Options)) (*ec2.DetachInternetGatewayOutput, error)
	DeleteInternetGateway(ctx context.Context, params *ec2.DeleteInternetGatewayInput, optFns ...func(*ec2.Options)) (*ec2.DeleteInternetGatewayOutput, error)
	DescribeSubnets(ctx context.Context, params *ec2.DescribeSubnetsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error)
	DeleteSubnet(ctx context.Context, params *ec2.DeleteSubnetInput, optFns ...func(*ec2.Options)) (*ec2.DeleteSubnetOutput, error)
	DescribeRouteTables(ctx context.Context, params *ec2.DescribeRouteTablesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeRouteTablesOutput, error)
	DescribeNetworkAcls(ctx context.Context, params *ec2.DescribeNetworkAclsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeNetworkAclsOutput, error)
	DescribeSecurityGroups(ctx context.Context, params *ec2.DescribeSecurityGroupsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSecurityGroupsOutput, error)
	DeleteSecurityGroup(ctx context.Context, params *ec2.DeleteSecurityGroupInput, optFns ...func(*ec2.Options)) (*ec2.DeleteSecurityGroupOutput, error)
	DeleteVpc(ctx context.Context, params *ec2.DeleteVpcInput, optFns ...func(*ec2.Options)) (*ec2.DeleteVpcOutput, error)
}

type regionRepository struct {
	region string
	client ec2API
}

func newRegionRepository(region string, client ec2API) *regionRepository {
	return &regionRepository{region: region, client: client}
}

func (r *regionRepository) Region() string {
	return r.region
}

func vpcFilter(name, vpcID string) []ec2Types.Filter {
	return []ec2Types.Filter{{Name: aws.String(name), Values: []string{vpcID}}}
}

func (r *regionRepository) GetDefaultVPCAttribute(ctx context.Context) ([]string, error) {
	output, err := r.client.DescribeAccountAttributes(ctx, &ec2.DescribeAccountAttributesInput{
		AttributeNames: []ec2Types.AccountAttributeName{ec2Types.AccountAttributeNameDefaultVpc},
	})
	if err != nil {
		return nil, wrapAPIError(fmt.Sprintf("describe account attributes in %s", r.region), err)
	}

	var values []string
	for _, attr := range output.AccountAttributes {
		if aws.ToString(attr.AttributeName) != string(ec2Types.AccountAttributeNameDefaultVpc) {
			continue
		}
		for _, v := range attr.AttributeValues {
			values = append(values, aws.ToString(v.AttributeValue))
		}
	}
	return values, nil
}

func (r *regionRepository) GetNetworkInterfaces(ctx context.Context, vpcID string) ([]entity.NetworkInterface, error) {
	var enis []entity.NetworkInterface

	paginator := ec2.NewDescribeNetworkInterfacesPaginator(r.client, &ec2.DescribeNetworkInterfacesInput{
		Filters: vpcFilter("vpc-id", vpcID),
	})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, wrapAPIError(fmt.Sprintf("describe network interfaces in %s", vpcID), err)
		}
		for _, eni := range output.NetworkInterfaces {
			enis = append(enis, entity.NetworkInterface{
				ID:    aws.ToString(eni.NetworkInterfaceId),
				VpcID: aws.ToString(eni.VpcId),
			})
		}
	}
	return enis, nil
}

func (r *regionRepository) GetInternetGateways(ctx context.Context, vpcID string) ([]entity.InternetGateway, error) {
	var igws []entity.InternetGateway

	paginator := ec2.NewDescribeInternetGatewaysPaginator(r.client, &ec2.DescribeInternetGatewaysInput{
		Filters: vpcFilter("attachment.vpc-id", vpcID),
	})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, wrapAPIError(fmt.Sprintf("describe internet gateways in %s", vpcID), err)
		}
		for _, igw := range output.InternetGateways {
			igws = append(igws, entity.InternetGateway{ID: aws.ToString(igw.InternetGatewayId)})
		}
	}
	return igws, nil
}

func (r *regionRepository) DetachInternetGateway(ctx context.Context, igwID, vpcID string) error {
	_, err := r.client.DetachInternetGateway(ctx, &ec2.DetachInternetGatewayInput{
		InternetGatewayId: aws.String(igwID),
		VpcId:             aws.String(vpcID),
	})
	return wrapAPIError(fmt.Sprintf("detach internet gateway %s from %s", igwID, vpcID), err)
}

func (r *regionRepository) DeleteInternetGateway(ctx context.Context, igwID string) error {
	_, err := r.client.DeleteInternetGateway(ctx, &ec2.DeleteInternetGatewayInput{
		InternetGatewayId: aws.String(igwID),
	})
	return wrapAPIError(fmt.Sprintf("delete internet gateway %s", igwID), err)
}

func (r *regionRepository) GetSubnets(ctx context.Context, vpcID string) ([]entity.Subnet, error) {
	var subnets []entity.Subnet

	paginator := ec2.NewDescribeSubnetsPaginator(r.client, &ec2.DescribeSubnetsInput{
		Filters: vpcFilter("vpc-id", vpcID),
	})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, wrapAPIError(fmt.Sprintf("describe subnets in %s", vpcID), err)
		}
		for _, subnet := range output.Subnets {
			subnets = append(subnets, entity.Subnet{
				ID:        aws.ToString(subnet.SubnetId),
				CidrBlock: aws.ToString(subnet.CidrBlock),
			})
		}
	}
	return subnets, nil
}

func (r *regionRepository) DeleteSubnet(ctx context.Context, subnetID string) error {
	_, err := r.client.DeleteSubnet(ctx, &ec2.DeleteSubnetInput{SubnetId: aws.String(subnetID)})
	return wrapAPIError(fmt.Sprintf("delete subnet %s", subnetID), err)
}

func (r *regionRepository) GetRouteTables(ctx context.Context, vpcID string) ([]entity.RouteTable, error) {
	var tables []entity.RouteTable

	paginator := ec2.NewDescribeRouteTablesPaginator(r.client, &ec2.DescribeRouteTablesInput{
		Filters: vpcFilter("vpc-id", vpcID),
	})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, wrapAPIError(fmt.Sprintf("describe route tables in %s", vpcID), err)
		}
		for _, rt := range output.RouteTables {
			table := entity.RouteTable{ID: aws.ToString(rt.RouteTableId)}
			for _, assoc := range rt.Associations {
				table.Associations = append(table.Associations, entity.RouteTableAssociation{
					ID:   aws.ToString(assoc.RouteTableAssociationId),
					Main: aws.ToBool(assoc.Main),
				})
			}
			tables = append(tables, table)
		}
	}
	return tables, nil
}

func (r *regionRepository) GetNetworkACLs(ctx context.Context, vpcID string) ([]entity.NetworkACL, error) {
	var acls []entity.NetworkACL

	paginator := ec2.NewDescribeNetworkAclsPaginator(r.client, &ec2.DescribeNetworkAclsInput{
		Filters: vpcFilter("vpc-id", vpcID),
	})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, wrapAPIError(fmt.Sprintf("describe network ACLs in %s", vpcID), err)
		}
		for _, acl := range output.NetworkAcls {
			acls = append(acls, entity.NetworkACL{
				ID:        aws.ToString(acl.NetworkAclId),
				IsDefault: aws.ToBool(acl.IsDefault),
			})
		}
	}
	return acls, nil
}

func (r *regionRepository) GetSecurityGroups(ctx context.Context, vpcID string) ([]entity.SecurityGroup, error) {
	var groups []entity.SecurityGroup

	paginator := ec2.NewDescribeSecurityGroupsPaginator(r.client, &ec2.DescribeSecurityGroupsInput{
		Filters: vpcFilter("vpc-id", vpcID),
	})
	for paginator.HasMorePages() {
		output, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, wrapAPIError(fmt.Sprintf("describe security groups in %s", vpcID), err)
		}
		for _, sg := range output.SecurityGroups {
			groups = append(groups, entity.SecurityGroup{
				ID:   aws.ToString(sg.GroupId),
				Name: aws.ToString(sg.GroupName),
			})
		}
	}
	return groups, nil
}

func (r *regionRepository) DeleteSecurityGroup(ctx context.Context, groupID string) error {
	_, err := r.client.DeleteSecurityGroup(ctx, &ec2.DeleteSecurityGroupInput{GroupId: aws.String(groupID)})
	return wrapAPIError(fmt.Sprintf("delete security group %s", groupID), err)
}

func (r *regionRepository) DeleteVPC(ctx context.Context, vpcID string) error {
	_, err := r.client.DeleteVpc(ctx, &ec2.DeleteVpcInput{VpcId: aws.String(vpcID)})
	return wrapAPIError(fmt.Sprintf("delete VPC %s", vpcID), err)
}
