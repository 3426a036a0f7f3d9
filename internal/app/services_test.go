package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navstack/internal/config"
	"navstack/internal/view"
)

func TestInitializeServices(t *testing.T) {
	cfg := &Config{
		NavConfig: &config.Config{
			Catalog: config.CatalogConfig{
				Dir:      t.TempDir(),
				Watch:    true,
				Debounce: 10 * time.Millisecond,
			},
			Containers: []config.ContainerConfig{
				{Name: "screen", LockInteraction: true},
				{Name: "modal", DefaultPooling: true, Animation: 5 * time.Millisecond},
			},
		},
	}

	services, err := InitializeServices(cfg)
	require.NoError(t, err)

	require.NotNil(t, services.System)
	assert.NotNil(t, services.Registry)
	assert.NotNil(t, services.Catalog)
	assert.NotNil(t, services.Watcher)

	containers := services.System.Containers()
	require.Len(t, containers, 2)
	assert.Equal(t, "modal", containers[0].Name())
	assert.Equal(t, "screen", containers[1].Name())
}

func TestInitializeServicesWithoutCatalog(t *testing.T) {
	cfg := &Config{
		NavConfig: &config.Config{
			Containers: []config.ContainerConfig{{Name: "screen"}},
		},
	}

	services, err := InitializeServices(cfg)
	require.NoError(t, err)

	assert.Nil(t, services.Catalog)
	assert.Nil(t, services.Watcher)
	assert.NotNil(t, services.Registry)
}

func TestInitializeServicesDuplicateContainer(t *testing.T) {
	cfg := &Config{
		NavConfig: &config.Config{
			Containers: []config.ContainerConfig{
				{Name: "screen"},
				{Name: "screen"},
			},
		},
	}

	_, err := InitializeServices(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to register container screen")
}

func TestPlaceholderFallbackServesPushes(t *testing.T) {
	cfg := &Config{
		NavConfig: &config.Config{
			Containers: []config.ContainerConfig{{Name: "screen"}},
		},
	}

	services, err := InitializeServices(cfg)
	require.NoError(t, err)

	c, ok := services.System.ByName("screen")
	require.True(t, ok)

	// No factory registered; the fallback carries the push.
	require.NoError(t, c.Push(context.Background(), "home", view.DefaultPushOptions(), nil))
	assert.Equal(t, []string{"home"}, c.Paths())
}

func TestTransitionEventsReachTheSystem(t *testing.T) {
	cfg := &Config{
		NavConfig: &config.Config{
			Containers: []config.ContainerConfig{{Name: "screen"}},
		},
	}

	services, err := InitializeServices(cfg)
	require.NoError(t, err)

	events := services.System.SubscribeTransitions()
	defer services.System.UnsubscribeTransitions(events)

	c, _ := services.System.ByName("screen")
	require.NoError(t, c.Push(context.Background(), "home", view.DefaultPushOptions(), nil))

	select {
	case ev := <-events:
		assert.Equal(t, "screen", ev.Container)
		assert.Equal(t, "home", ev.EnteringPath)
	case <-time.After(time.Second):
		t.Fatal("no transition event received")
	}
}
