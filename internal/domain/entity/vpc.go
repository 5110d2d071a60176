package entity

import "regexp"

// NoDefaultVPC is the value of the default-vpc account attribute when a region has none.
const NoDefaultVPC = "none"

// DefaultSecurityGroupName is the name of the group every VPC is created with.
const DefaultSecurityGroupName = "default"

// launchWizardPattern matches the groups created by the EC2 console launch wizard.
var launchWizardPattern = regexp.MustCompile(`^launch-wizard-\d+$`)

// NetworkInterface is only evidence that the VPC is in use.
type NetworkInterface struct {
	ID    string
	VpcID string
}

type InternetGateway struct {
	ID string
}

type Subnet struct {
	ID        string
	CidrBlock string
}

// RouteTableAssociation binds a route table to a subnet, or marks it as the main table.
type RouteTableAssociation struct {
	ID   string
	Main bool
}

type RouteTable struct {
	ID           string
	Associations []RouteTableAssociation
}

// NonMainAssociation returns the first association that is not the main one.
func (rt RouteTable) NonMainAssociation() (RouteTableAssociation, bool) {
	for _, assoc := range rt.Associations {
		if !assoc.Main {
			return assoc, true
		}
	}
	return RouteTableAssociation{}, false
}

type NetworkACL struct {
	ID        string
	IsDefault bool
}

type SecurityGroup struct {
	ID   string
	Name string
}

// IsDefault reports whether the group is the VPC's own "default" group.
func (sg SecurityGroup) IsDefault() bool {
	return sg.Name == DefaultSecurityGroupName
}

// IsLaunchWizard reports whether the group name follows launch-wizard-<digits>.
func (sg SecurityGroup) IsLaunchWizard() bool {
	return IsLaunchWizardName(sg.Name)
}

// IsLaunchWizardName reports whether name follows launch-wizard-<digits>.
func IsLaunchWizardName(name string) bool {
	return launchWizardPattern.MatchString(name)
}
