package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingSteps(t *testing.T) {
	all := []step{{version: "1.0.0"}, {version: "1.1.0"}, {version: "1.2.0"}}

	tests := []struct {
		name    string
		current string
		want    []string
		wantErr bool
	}{
		{name: "empty database", current: "", want: []string{"1.0.0", "1.1.0", "1.2.0"}},
		{name: "base schema", current: "1.0.0", want: []string{"1.1.0", "1.2.0"}},
		{name: "up to date", current: "1.2.0", want: []string{}},
		{name: "newer build", current: "2.0.0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			pending, err := pendingSteps(all, tt.current)

			// Assert
			if tt.wantErr {
				assert.ErrorContains(t, err, tt.current)
				return
			}
			require.NoError(t, err)
			versions := make([]string, 0, len(pending))
			for _, s := range pending {
				versions = append(versions, s.version)
			}
			assert.Equal(t, tt.want, versions)
		})
	}
}

func TestStepsAreOrdered(t *testing.T) {
	steps := (&MigrationManager{}).steps()

	require.NotEmpty(t, steps)
	assert.Equal(t, "1.0.0", steps[0].version)
	for i := 1; i < len(steps); i++ {
		assert.Less(t, steps[i-1].version, steps[i].version)
	}
}
