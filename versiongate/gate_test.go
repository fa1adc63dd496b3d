package versiongate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansys/acp-client-go/pkg/apperror"
	"github.com/ansys/acp-client-go/versiongate"
)

func TestCheckNoGate(t *testing.T) {
	v, err := versiongate.Parse("24.1.0")
	require.NoError(t, err)
	assert.NoError(t, versiongate.Check(v, "", "Rosette.Origin"))
}

func TestCheckUnstoredSkips(t *testing.T) {
	assert.NoError(t, versiongate.Check(nil, "25.1.0", "Rosette.Origin"))
}

func TestCheckPassesWhenServerNewEnough(t *testing.T) {
	v, err := versiongate.Parse("25.2.0")
	require.NoError(t, err)
	assert.NoError(t, versiongate.Check(v, "25.1.0", "CutoffSelectionRule"))
}

func TestCheckFailsAndNamesBothVersions(t *testing.T) {
	v, err := versiongate.Parse("24.2.0")
	require.NoError(t, err)
	gateErr := versiongate.Check(v, "25.1.0", "CutoffSelectionRule")
	require.Error(t, gateErr)
	assert.True(t, apperror.Is(gateErr, apperror.KindRuntime))
	assert.Contains(t, gateErr.Error(), "25.1.0")
	assert.Contains(t, gateErr.Error(), "24.2.0")
	assert.Contains(t, gateErr.Error(), "CutoffSelectionRule")
}
