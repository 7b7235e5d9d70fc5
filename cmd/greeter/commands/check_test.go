package commands_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/greeter/cmd/greeter/commands"
	"github.com/macropower/greeter/pkg/version"
)

func TestCheckCmd(t *testing.T) {
	// Test binaries resolve the fallback version, which is exactly the state
	// the check command must reject.
	tc := commands.NewRootCmd("test_check", "", "")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	tc.SetArgs([]string{"check"})
	tc.SetOut(stdout)
	tc.SetErr(stderr)

	err := tc.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCheckFailed)
	assert.Contains(t, err.Error(), version.Fallback)
	assert.Empty(t, stdout.String())
}

func TestRunChecks(t *testing.T) {
	tcs := map[string]struct {
		version string
		wantErr error
	}{
		"release version passes": {
			version: "1.2.3",
		},
		"pre-release version passes": {
			version: "v9.9.9-rc.1",
		},
		"fallback version fails": {
			version: version.Fallback,
			wantErr: commands.ErrCheckFailed,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			err := commands.RunChecks(tc.version)

			if tc.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
