package entity

import "time"

// Outcome is the final state of one region's teardown.
type Outcome string

const (
	OutcomeDeleted      Outcome = "deleted"
	OutcomeWouldDelete  Outcome = "would-delete"
	OutcomeNoDefaultVPC Outcome = "no-default-vpc"
	OutcomeOccupied     Outcome = "occupied"
	OutcomeBlocked      Outcome = "blocked"
	OutcomeFailed       Outcome = "failed"
)

// Resource kinds used in actions and findings.
const (
	KindInternetGateway = "internet-gateway"
	KindSubnet          = "subnet"
	KindRouteTable      = "route-table"
	KindNetworkACL      = "network-acl"
	KindSecurityGroup   = "security-group"
	KindVPC             = "vpc"
)

// Action is a mutating call that was issued, or would have been under dry-run.
type Action struct {
	Kind      string `json:"kind"`
	ID        string `json:"id"`
	Operation string `json:"operation"`
	DryRun    bool   `json:"dry_run"`
	Error     string `json:"error,omitempty"`
}

// Finding is a non-default resource that needs manual investigation.
type Finding struct {
	Kind   string `json:"kind"`
	ID     string `json:"id"`
	Detail string `json:"detail"`
}

// RegionResult collects everything that happened in one region.
type RegionResult struct {
	Region   string    `json:"region"`
	VpcID    string    `json:"vpc_id,omitempty"`
	Outcome  Outcome   `json:"outcome"`
	Actions  []Action  `json:"actions,omitempty"`
	Findings []Finding `json:"findings,omitempty"`
	Errors   []string  `json:"errors,omitempty"`
}

// Failed reports whether any API call in the region failed.
func (r RegionResult) Failed() bool {
	return r.Outcome == OutcomeFailed || len(r.Errors) > 0
}

// RunReport is the result of a whole run.
type RunReport struct {
	Identity            CallerIdentity `json:"identity"`
	DryRun              bool           `json:"dry_run"`
	SecurityGroupPolicy string         `json:"security_group_policy"`
	StartedAt           time.Time      `json:"started_at"`
	FinishedAt          time.Time      `json:"finished_at"`
	Regions             []RegionResult `json:"regions"`
}

// HasFailures reports whether any region recorded a failed API call.
func (r RunReport) HasFailures() bool {
	for _, region := range r.Regions {
		if region.Failed() {
			return true
		}
	}
	return false
}

// Count returns how many regions ended with the given outcome.
func (r RunReport) Count(outcome Outcome) int {
	n := 0
	for _, region := range r.Regions {
		if region.Outcome == outcome {
			n++
		}
	}
	return n
}
