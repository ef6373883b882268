package afiocfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultResolvesWorkersFromCPUCount(t *testing.T) {
	o := Default()
	assert.Equal(t, 16, o.ResolvedWorkers(4))
}

func TestExplicitWorkersOverridesDefault(t *testing.T) {
	o := Default()
	o.Workers = 2
	assert.Equal(t, 2, o.ResolvedWorkers(4))
}

func TestResolvedWorkersHasFloor(t *testing.T) {
	o := Default()
	assert.Equal(t, 4, o.ResolvedWorkers(1))
}
