package auth

import (
	"context"
	"testing"

	domainerrors "gather/internal/domain/errors"
	"gather/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticClient struct {
	name    string
	display string
}

func (c *staticClient) Provider() string { return c.name }

func (c *staticClient) DisplayName() string { return c.display }

func (c *staticClient) DefaultRedirectURI() string { return "" }

func (c *staticClient) AuthorizationURL(service.OAuthAuthorizationParams) string { return "" }

func (c *staticClient) ExchangeCodeForProfile(context.Context, service.OAuthCodeExchangeParams) (*service.OAuthProfile, error) {
	return nil, nil
}

func TestProviderRegistry_Get(t *testing.T) {
	registry := NewProviderRegistry(RegistryParams{
		Clients: []service.OAuthProviderClient{
			&staticClient{name: "google", display: "Google"},
		},
	})

	client, err := registry.Get("google")
	require.NoError(t, err)
	assert.Equal(t, "google", client.Provider())

	client, err = registry.Get("github")
	assert.Nil(t, client)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthProviderNotEnabled)
}

func TestProviderRegistry_SkipsNilClients(t *testing.T) {
	// Unconfigured providers inject a nil client through the fx group.
	registry := NewProviderRegistry(RegistryParams{
		Clients: []service.OAuthProviderClient{
			nil,
			&staticClient{name: "google", display: "Google"},
		},
	})

	infos := registry.ListEnabled()

	require.Len(t, infos, 1)
	assert.Equal(t, "google", infos[0].Provider)
	assert.Equal(t, "Google", infos[0].DisplayName)
}

func TestProviderRegistry_ListEnabledSorted(t *testing.T) {
	registry := NewProviderRegistry(RegistryParams{
		Clients: []service.OAuthProviderClient{
			&staticClient{name: "zulu", display: "Zulu"},
			&staticClient{name: "alpha", display: "Alpha"},
		},
	})

	infos := registry.ListEnabled()

	require.Len(t, infos, 2)
	assert.Equal(t, "alpha", infos[0].Provider)
	assert.Equal(t, "zulu", infos[1].Provider)
}
