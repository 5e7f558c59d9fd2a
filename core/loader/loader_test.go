package loader

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubFeature struct {
	name    string
	enabled bool
	err     error
	loaded  bool
}

func (s *stubFeature) Name() string    { return s.name }
func (s *stubFeature) IsEnabled() bool { return s.enabled }
func (s *stubFeature) Load(fiber.Router) error {
	s.loaded = true
	return s.err
}

func TestManager_LoadAll(t *testing.T) {
	foods := &stubFeature{name: "foodlog", enabled: true}
	off := &stubFeature{name: "disabled", enabled: false}
	syncer := &stubFeature{name: "syncer", enabled: true}

	m := NewManager()
	m.Register(foods)
	m.Register(off)
	m.Register(syncer)

	loaded, err := m.LoadAll(fiber.New())
	assert.NoError(t, err)
	assert.Equal(t, []string{"foodlog", "syncer"}, loaded)
	assert.False(t, off.loaded)
}

func TestManager_LoadAll_Error(t *testing.T) {
	m := NewManager()
	m.Register(&stubFeature{name: "broken", enabled: true, err: errors.New("no routes")})

	_, err := m.LoadAll(fiber.New())
	assert.EqualError(t, err, "failed to load feature broken: no routes")
}
