package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/diillson/aws-default-vpc-remover/internal/domain/entity"
	"github.com/diillson/aws-default-vpc-remover/internal/domain/repository"
	"github.com/diillson/aws-default-vpc-remover/internal/shared/types"
)

var errAPI = errors.New("api error UnauthorizedOperation: You are not authorized to perform this operation.")

// fakeRegion is an in-memory region that records every call it receives.
type fakeRegion struct {
	name string

	attr    []string
	attrErr error

	enis   []entity.NetworkInterface
	eniErr error

	igws         []entity.InternetGateway
	igwErr       error
	detachErr    error
	deleteIGWErr error

	subnets         []entity.Subnet
	subnetErr       error
	deleteSubnetErr map[string]error

	routeTables []entity.RouteTable
	rtErr       error

	acls   []entity.NetworkACL
	aclErr error

	groups      []entity.SecurityGroup
	sgErr       error
	deleteSGErr map[string]error

	deleteVPCErr error

	calls []string
}

func newDefaultVPCRegion(name, vpcID string) *fakeRegion {
	return &fakeRegion{
		name: name,
		attr: []string{vpcID},
		routeTables: []entity.RouteTable{
			{ID: "rtb-main", Associations: []entity.RouteTableAssociation{{ID: "rtbassoc-main", Main: true}}},
		},
		acls:   []entity.NetworkACL{{ID: "acl-default", IsDefault: true}},
		groups: []entity.SecurityGroup{{ID: "sg-default", Name: "default"}},
	}
}

func (f *fakeRegion) record(call string, args ...string) {
	if len(args) > 0 {
		call = call + ":" + strings.Join(args, ",")
	}
	f.calls = append(f.calls, call)
}

// mutatingCalls returns every Detach*/Delete* call received.
func (f *fakeRegion) mutatingCalls() []string {
	var out []string
	for _, c := range f.calls {
		if strings.HasPrefix(c, "Delete") || strings.HasPrefix(c, "Detach") {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeRegion) Region() string { return f.name }

func (f *fakeRegion) GetDefaultVPCAttribute(ctx context.Context) ([]string, error) {
	f.record("DescribeAccountAttributes")
	return f.attr, f.attrErr
}

func (f *fakeRegion) GetNetworkInterfaces(ctx context.Context, vpcID string) ([]entity.NetworkInterface, error) {
	f.record("DescribeNetworkInterfaces", vpcID)
	return f.enis, f.eniErr
}

func (f *fakeRegion) GetInternetGateways(ctx context.Context, vpcID string) ([]entity.InternetGateway, error) {
	f.record("DescribeInternetGateways", vpcID)
	return f.igws, f.igwErr
}

func (f *fakeRegion) DetachInternetGateway(ctx context.Context, igwID, vpcID string) error {
	f.record("DetachInternetGateway", igwID, vpcID)
	return f.detachErr
}

func (f *fakeRegion) DeleteInternetGateway(ctx context.Context, igwID string) error {
	f.record("DeleteInternetGateway", igwID)
	return f.deleteIGWErr
}

func (f *fakeRegion) GetSubnets(ctx context.Context, vpcID string) ([]entity.Subnet, error) {
	f.record("DescribeSubnets", vpcID)
	return f.subnets, f.subnetErr
}

func (f *fakeRegion) DeleteSubnet(ctx context.Context, subnetID string) error {
	f.record("DeleteSubnet", subnetID)
	return f.deleteSubnetErr[subnetID]
}

func (f *fakeRegion) GetRouteTables(ctx context.Context, vpcID string) ([]entity.RouteTable, error) {
	f.record("DescribeRouteTables", vpcID)
	return f.routeTables, f.rtErr
}

func (f *fakeRegion) GetNetworkACLs(ctx context.Context, vpcID string) ([]entity.NetworkACL, error) {
	f.record("DescribeNetworkAcls", vpcID)
	return f.acls, f.aclErr
}

func (f *fakeRegion) GetSecurityGroups(ctx context.Context, vpcID string) ([]entity.SecurityGroup, error) {
	f.record("DescribeSecurityGroups", vpcID)
	return f.groups, f.sgErr
}

func (f *fakeRegion) DeleteSecurityGroup(ctx context.Context, groupID string) error {
	f.record("DeleteSecurityGroup", groupID)
	return f.deleteSGErr[groupID]
}

func (f *fakeRegion) DeleteVPC(ctx context.Context, vpcID string) error {
	f.record("DeleteVpc", vpcID)
	return f.deleteVPCErr
}

// fakeAWS serves fakeRegions by name.
type fakeAWS struct {
	identity    entity.CallerIdentity
	identityErr error

	regions    []string
	regionsErr error

	byRegion     map[string]*fakeRegion
	forRegionErr error

	regionListCalls int
}

func newFakeAWS(regions ...*fakeRegion) *fakeAWS {
	f := &fakeAWS{
		identity: entity.CallerIdentity{
			Profile:   "test",
			AccountID: "123456789012",
			Arn:       "arn:aws:iam::123456789012:user/ops",
		},
		byRegion: map[string]*fakeRegion{},
	}
	for _, r := range regions {
		f.regions = append(f.regions, r.name)
		f.byRegion[r.name] = r
	}
	return f
}

func (f *fakeAWS) GetCallerIdentity(ctx context.Context) (entity.CallerIdentity, error) {
	return f.identity, f.identityErr
}

func (f *fakeAWS) GetAllRegions(ctx context.Context) ([]string, error) {
	f.regionListCalls++
	return f.regions, f.regionsErr
}

func (f *fakeAWS) ForRegion(ctx context.Context, region string) (repository.RegionRepository, error) {
	if f.forRegionErr != nil {
		return nil, f.forRegionErr
	}
	r, ok := f.byRegion[region]
	if !ok {
		return nil, fmt.Errorf("unknown region %s", region)
	}
	return r, nil
}

type logEntry struct {
	level   string
	message string
}

// fakeConsole keeps every log line in memory and answers confirmations from a preset.
type fakeConsole struct {
	entries []logEntry
	printed []string

	answer       bool
	confirmErr   error
	confirmCalls int

	tables []*fakeTable
}

func (c *fakeConsole) log(level, format string, a ...interface{}) {
	c.entries = append(c.entries, logEntry{level: level, message: fmt.Sprintf(format, a...)})
}

func (c *fakeConsole) Println(a ...interface{}) { c.printed = append(c.printed, fmt.Sprint(a...)) }

func (c *fakeConsole) LogDebug(format string, a ...interface{})   { c.log("debug", format, a...) }
func (c *fakeConsole) LogInfo(format string, a ...interface{})    { c.log("info", format, a...) }
func (c *fakeConsole) LogWarning(format string, a ...interface{}) { c.log("warning", format, a...) }
func (c *fakeConsole) LogError(format string, a ...interface{})   { c.log("error", format, a...) }
func (c *fakeConsole) LogSuccess(format string, a ...interface{}) { c.log("success", format, a...) }

func (c *fakeConsole) Confirm(message, expected string) (bool, error) {
	c.confirmCalls++
	return c.answer, c.confirmErr
}

func (c *fakeConsole) CreateTable() types.TableInterface {
	t := &fakeTable{}
	c.tables = append(c.tables, t)
	return t
}

// messages returns the log lines at level.
func (c *fakeConsole) messages(level string) []string {
	var out []string
	for _, e := range c.entries {
		if e.level == level {
			out = append(out, e.message)
		}
	}
	return out
}

// hasMessage reports whether a line at level contains every fragment.
func (c *fakeConsole) hasMessage(level string, fragments ...string) bool {
	for _, msg := range c.messages(level) {
		matched := true
		for _, f := range fragments {
			if !strings.Contains(msg, f) {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

type fakeTable struct {
	columns []string
	rows    [][]interface{}
}

func (t *fakeTable) AddColumn(name string, options ...interface{}) { t.columns = append(t.columns, name) }
func (t *fakeTable) AddRow(cells ...interface{})                   { t.rows = append(t.rows, cells) }
func (t *fakeTable) Render() string                                { return strings.Join(t.columns, "|") }

type fakeExport struct {
	formats []string
	err     error
}

func (e *fakeExport) ExportReportToCSV(report entity.RunReport, filename, outputDir string) (string, error) {
	e.formats = append(e.formats, "csv")
	return outputDir + "/" + filename + ".csv", e.err
}

func (e *fakeExport) ExportReportToJSON(report entity.RunReport, filename, outputDir string) (string, error) {
	e.formats = append(e.formats, "json")
	return outputDir + "/" + filename + ".json", e.err
}

func (e *fakeExport) ExportReportToPDF(report entity.RunReport, filename, outputDir string) (string, error) {
	e.formats = append(e.formats, "pdf")
	return outputDir + "/" + filename + ".pdf", e.err
}

func testConfig() types.Config {
	cfg := types.DefaultConfig()
	cfg.Profile = "test"
	cfg.AutoApprove = true
	return *cfg
}
