package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLaunchWizardName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{name: "launch-wizard-7", want: true},
		{name: "launch-wizard-123", want: true},
		{name: "launch-wizard-", want: false},
		{name: "launch-wizard-7a", want: false},
		{name: "my-launch-wizard-7", want: false},
		{name: "default", want: false},
		{name: "my-sg", want: false},
		{name: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLaunchWizardName(tt.name))
			assert.Equal(t, tt.want, SecurityGroup{Name: tt.name}.IsLaunchWizard())
		})
	}
}

func TestSecurityGroupIsDefault(t *testing.T) {
	assert.True(t, SecurityGroup{Name: "default"}.IsDefault())
	assert.False(t, SecurityGroup{Name: "Default"}.IsDefault())
	assert.False(t, SecurityGroup{Name: "launch-wizard-1"}.IsDefault())
}

func TestRouteTableNonMainAssociation(t *testing.T) {
	main := RouteTable{ID: "rtb-1", Associations: []RouteTableAssociation{{ID: "a-1", Main: true}}}
	_, found := main.NonMainAssociation()
	assert.False(t, found)

	custom := RouteTable{ID: "rtb-2", Associations: []RouteTableAssociation{
		{ID: "a-1", Main: true},
		{ID: "a-2", Main: false},
		{ID: "a-3", Main: false},
	}}
	assoc, found := custom.NonMainAssociation()
	assert.True(t, found)
	assert.Equal(t, "a-2", assoc.ID)

	_, found = RouteTable{ID: "rtb-3"}.NonMainAssociation()
	assert.False(t, found)
}
