package integrations_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/integrations"
	"gearguard/internal/integrations/gearguard"
	"gearguard/internal/integrations/mock"
)

func TestRegistry(t *testing.T) {
	r := integrations.NewRegistry()

	_, err := r.Active()
	assert.Error(t, err, "до SetActive активного провайдера нет")

	require.NoError(t, r.Register(mock.NewMockProvider()))
	require.NoError(t, r.Register(gearguard.New("http://127.0.0.1:1/api", http.DefaultClient, gearguard.StaticToken(""), zap.NewNop())))
	assert.Error(t, r.Register(mock.NewMockProvider()), "повторная регистрация имени")
	assert.Equal(t, []string{gearguard.ProviderName, mock.ProviderName}, r.Names())

	err = r.SetActive("grpc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grpc")

	require.NoError(t, r.SetActive(mock.ProviderName))
	active, err := r.Active()
	require.NoError(t, err)
	assert.Equal(t, mock.ProviderName, active.Name())
}
