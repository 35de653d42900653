package samples

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suse/tinytest/lib"
)

func TestSuites(t *testing.T) {
	var stdout bytes.Buffer
	r := lib.NewRunner(&stdout, lib.RunnerOptions{})

	err := r.Run(Suites()...)

	require.NoError(t, err, stdout.String())
	assert.Equal(t, "Testing Dummy test: PASSED!\nTesting Runner: PASSED!\n", stdout.String())
}

func TestSuites_EachTestPasses(t *testing.T) {
	for _, suite := range Suites() {
		for i, test := range suite.Tests {
			var stdout bytes.Buffer
			result := lib.NewRunner(&stdout, lib.RunnerOptions{}).RunSuite(suite.Name, test)
			assert.True(t, result.Passed, "%s test #%d: %s", suite.Name, i, stdout.String())
		}
	}
}
