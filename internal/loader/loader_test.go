package loader

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navstack/internal/view"
)

type stubView struct {
	view.BaseView
	name string
}

func TestRegistryLoad_ExactFactoryWinsOverFallback(t *testing.T) {
	r := NewRegistry(nil)
	r.SetFallback(func(ctx context.Context, def *Definition) (view.View, error) {
		return &stubView{name: "fallback"}, nil
	})
	r.Register("screens/home", func(ctx context.Context, def *Definition) (view.View, error) {
		return &stubView{name: "exact"}, nil
	})

	v, err := r.Load(context.Background(), "screens/home")
	require.NoError(t, err)
	assert.Equal(t, "exact", v.(*stubView).name)

	v, err = r.Load(context.Background(), "screens/other")
	require.NoError(t, err)
	assert.Equal(t, "fallback", v.(*stubView).name)
}

func TestRegistryLoad_NoFactoryRegistered(t *testing.T) {
	r := NewRegistry(nil)

	_, err := r.Load(context.Background(), "screens/home")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no factory")
}

func TestRegistryLoad_EmptyPathRejected(t *testing.T) {
	r := NewRegistry(nil)

	_, err := r.Load(context.Background(), "")
	require.Error(t, err)
}

func TestRegistryLoad_FactoryErrorIsWrapped(t *testing.T) {
	assetErr := errors.New("asset bundle corrupt")
	r := NewRegistry(nil)
	r.SetFallback(func(ctx context.Context, def *Definition) (view.View, error) {
		return nil, assetErr
	})

	_, err := r.Load(context.Background(), "screens/home")
	require.Error(t, err)
	assert.ErrorIs(t, err, assetErr)
	assert.Contains(t, err.Error(), "screens/home")
}

func TestRegistryLoad_NilViewRejected(t *testing.T) {
	r := NewRegistry(nil)
	r.SetFallback(func(ctx context.Context, def *Definition) (view.View, error) {
		return nil, nil
	})

	_, err := r.Load(context.Background(), "screens/home")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "returned no view")
}

func TestRegistryLoad_SynthesizesDefinitionWithoutCatalog(t *testing.T) {
	var got *Definition
	r := NewRegistry(nil)
	r.SetFallback(func(ctx context.Context, def *Definition) (view.View, error) {
		got = def
		return &stubView{}, nil
	})

	_, err := r.Load(context.Background(), "screens/home")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "screens/home", got.ResourcePath)
	assert.Empty(t, got.Title)
}

func TestRegistryLoad_PassesCatalogDefinition(t *testing.T) {
	dir := t.TempDir()
	writeDefinition(t, dir, "screens/home", "title: Home\npooling: disabled\n")

	var got *Definition
	r := NewRegistry(NewCatalog(dir))
	r.SetFallback(func(ctx context.Context, def *Definition) (view.View, error) {
		got = def
		return &stubView{}, nil
	})

	_, err := r.Load(context.Background(), "screens/home")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Home", got.Title)
	assert.Equal(t, view.PoolDisabled, got.PoolingPolicy())
}

func TestRegistryLoad_BadDefinitionFailsLoad(t *testing.T) {
	dir := t.TempDir()
	writeDefinition(t, dir, "screens/home", "pooling: sometimes\n")

	r := NewRegistry(NewCatalog(dir))
	r.SetFallback(func(ctx context.Context, def *Definition) (view.View, error) {
		return &stubView{}, nil
	})

	_, err := r.Load(context.Background(), "screens/home")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pooling")
}

func TestFunc_AdaptsToLoader(t *testing.T) {
	var l Loader = Func(func(ctx context.Context, resourcePath string) (view.View, error) {
		return &stubView{name: resourcePath}, nil
	})

	v, err := l.Load(context.Background(), "screens/home")
	require.NoError(t, err)
	assert.Equal(t, "screens/home", v.(*stubView).name)
}
