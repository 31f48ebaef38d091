package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects lifecycle calls across services in call order
type recorder struct {
	calls []string
}

type fakeService struct {
	name     string
	deps     []string
	rec      *recorder
	initErr  error
	startErr error
	stopErr  error
}

func (f *fakeService) Name() string           { return f.name }
func (f *fakeService) Dependencies() []string { return f.deps }

func (f *fakeService) Init(args ...any) error {
	f.rec.calls = append(f.rec.calls, "init:"+f.name)
	return f.initErr
}

func (f *fakeService) Start() error {
	f.rec.calls = append(f.rec.calls, "start:"+f.name)
	return f.startErr
}

func (f *fakeService) Stop() error {
	f.rec.calls = append(f.rec.calls, "stop:"+f.name)
	return f.stopErr
}

func register(t *testing.T, h *Hub, svcs ...Service) {
	t.Helper()
	for _, s := range svcs {
		require.NoError(t, h.Register(s))
	}
}

func TestHub_DependencyOrder(t *testing.T) {
	rec := &recorder{}
	h := NewHub()
	register(t, h,
		&fakeService{name: "terminal", deps: []string{"capabilities"}, rec: rec},
		&fakeService{name: "capabilities", rec: rec},
		&fakeService{name: "audit", deps: []string{"terminal", "capabilities"}, rec: rec},
	)

	require.NoError(t, h.InitAll())
	require.NoError(t, h.StartAll())
	h.StopAll()

	assert.Equal(t, []string{
		"init:capabilities", "init:terminal", "init:audit",
		"start:capabilities", "start:terminal", "start:audit",
		"stop:audit", "stop:terminal", "stop:capabilities",
	}, rec.calls)
}

func TestHub_IndependentServicesSortByName(t *testing.T) {
	rec := &recorder{}
	h := NewHub()
	register(t, h,
		&fakeService{name: "c", rec: rec},
		&fakeService{name: "a", rec: rec},
		&fakeService{name: "b", rec: rec},
	)

	require.NoError(t, h.InitAll())
	assert.Equal(t, []string{"init:a", "init:b", "init:c"}, rec.calls)
	assert.Equal(t, []string{"a", "b", "c"}, h.Names())
}

func TestHub_DuplicateRegistration(t *testing.T) {
	h := NewHub()
	register(t, h, &fakeService{name: "a", rec: &recorder{}})
	assert.Error(t, h.Register(&fakeService{name: "a", rec: &recorder{}}))
}

func TestHub_Get(t *testing.T) {
	h := NewHub()
	svc := &fakeService{name: "a", rec: &recorder{}}
	register(t, h, svc)

	got, ok := h.Get("a")
	require.True(t, ok)
	assert.Same(t, svc, got)

	_, ok = h.Get("missing")
	assert.False(t, ok)
}

func TestHub_UnregisteredDependency(t *testing.T) {
	h := NewHub()
	register(t, h, &fakeService{name: "terminal", deps: []string{"capabilities"}, rec: &recorder{}})

	err := h.InitAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "capabilities")
}

func TestHub_Cycle(t *testing.T) {
	h := NewHub()
	register(t, h,
		&fakeService{name: "a", deps: []string{"b"}, rec: &recorder{}},
		&fakeService{name: "b", deps: []string{"a"}, rec: &recorder{}},
	)

	err := h.InitAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circular")
}

func TestHub_InitFailureRollsBack(t *testing.T) {
	rec := &recorder{}
	cause := errors.New("missing cup")
	h := NewHub()
	register(t, h,
		&fakeService{name: "a", rec: rec},
		&fakeService{name: "b", deps: []string{"a"}, rec: rec, initErr: cause},
		&fakeService{name: "c", deps: []string{"b"}, rec: rec},
	)

	err := h.InitAll()
	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "service b init failed")
	assert.Equal(t, []string{"init:a", "init:b", "stop:a"}, rec.calls)
}

func TestHub_StartFailureRollsBack(t *testing.T) {
	rec := &recorder{}
	cause := errors.New("no tty")
	h := NewHub()
	register(t, h,
		&fakeService{name: "a", rec: rec, stopErr: errors.New("ignored")},
		&fakeService{name: "b", deps: []string{"a"}, rec: rec, startErr: cause},
	)

	require.NoError(t, h.InitAll())
	rec.calls = nil

	err := h.StartAll()
	require.ErrorIs(t, err, cause)
	assert.Equal(t, []string{"start:a", "start:b", "stop:a"}, rec.calls)

	// Nothing left running
	rec.calls = nil
	h.StopAll()
	assert.Empty(t, rec.calls)
}

func TestHub_StartBeforeInit(t *testing.T) {
	h := NewHub()
	register(t, h, &fakeService{name: "a", rec: &recorder{}})
	assert.Error(t, h.StartAll())
}
