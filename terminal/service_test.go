package terminal

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/termdrv/capability"
	"github.com/lixenwraith/termdrv/service"
)

func TestTerminalService_Lifecycle(t *testing.T) {
	vb := NewVirtualBackend(80, 24)
	caps := capability.NewServiceWithDatabase(testDatabase())
	svc := NewService(caps, vb)

	hub := service.NewHub()
	require.NoError(t, hub.Register(svc))
	require.NoError(t, hub.Register(caps))

	require.NoError(t, hub.InitAll())
	require.NotNil(t, svc.Terminal())
	assert.Empty(t, vb.Output())

	require.NoError(t, hub.StartAll())
	assert.True(t, vb.IsRaw())
	assert.Equal(t, "<smcup><civis><sgr0><clear>", string(vb.Output()))

	hub.StopAll()
	assert.False(t, vb.IsRaw())
	assert.Equal(t, 1, vb.FiniCount())

	// Stop is idempotent
	require.NoError(t, svc.Stop())
	assert.Equal(t, 1, vb.FiniCount())
}

func TestTerminalService_MissingCapabilityAbortsBeforeOutput(t *testing.T) {
	db := testDatabase()
	delete(db.Strings, capability.SetCursor)

	vb := NewVirtualBackend(80, 24)
	caps := capability.NewServiceWithDatabase(db)
	svc := NewService(caps, vb)

	hub := service.NewHub()
	require.NoError(t, hub.Register(caps))
	require.NoError(t, hub.Register(svc))

	err := hub.InitAll()
	require.Error(t, err)

	var missing *capability.MissingCapabilityError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, capability.SetCursor, missing.Name)

	assert.Nil(t, svc.Terminal())
	assert.Zero(t, vb.InitCount())
	assert.Empty(t, vb.Output())
}

func TestTerminalService_StartFailure(t *testing.T) {
	vb := NewVirtualBackend(80, 24)
	vb.FailInit(errors.New("not a tty"))
	caps := capability.NewServiceWithDatabase(testDatabase())
	svc := NewService(caps, vb)

	require.NoError(t, caps.Init())
	require.NoError(t, svc.Init())

	err := svc.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a tty")
	require.NoError(t, svc.Stop())
	assert.Zero(t, vb.FiniCount())
}

func TestTerminalService_StartBeforeInit(t *testing.T) {
	svc := NewService(capability.NewServiceWithDatabase(testDatabase()), NewVirtualBackend(80, 24))
	assert.Error(t, svc.Start())
}

func TestTerminalService_Dependencies(t *testing.T) {
	svc := NewService(nil, nil)
	assert.Equal(t, ServiceName, svc.Name())
	assert.Equal(t, []string{capability.ServiceName}, svc.Dependencies())
}
