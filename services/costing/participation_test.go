package costing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveParticipation(t *testing.T) {
	roster := testRoster()

	tests := []struct {
		name           string
		excluded       []string
		wantAdults     int
		wantChildren   int
		wantIDs        []string
		wantExclLabels []string
	}{
		{
			name:         "no exclusions",
			wantAdults:   2,
			wantChildren: 1,
			wantIDs:      []string{"a1", "a2", "c1"},
		},
		{
			name:           "one adult excluded",
			excluded:       []string{"a2"},
			wantAdults:     1,
			wantChildren:   1,
			wantIDs:        []string{"a1", "c1"},
			wantExclLabels: []string{"Adult Two"},
		},
		{
			name:           "everyone excluded",
			excluded:       []string{"a1", "a2", "c1"},
			wantAdults:     0,
			wantChildren:   0,
			wantExclLabels: []string{"Adult One", "Adult Two", "Child One"},
		},
		{
			name:         "unknown ids silently ignored",
			excluded:     []string{"nobody", ""},
			wantAdults:   2,
			wantChildren: 1,
			wantIDs:      []string{"a1", "a2", "c1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := ResolveParticipation(tt.excluded, roster)
			assert.Equal(t, tt.wantAdults, p.AdultCount)
			assert.Equal(t, tt.wantChildren, p.ChildCount)
			assert.Equal(t, tt.wantAdults+tt.wantChildren, p.HeadCount())
			assert.Equal(t, tt.wantIDs, p.ParticipatingIDs)
			assert.Equal(t, tt.wantExclLabels, p.ExcludedLabels)
		})
	}
}

func TestResolveParticipationEmptyRoster(t *testing.T) {
	p := ResolveParticipation([]string{"a1"}, nil)
	assert.Zero(t, p.HeadCount())
	assert.Empty(t, p.ExcludedLabels)
}
