package auth

import (
	"sort"

	"go.uber.org/fx"

	domainerrors "gather/internal/domain/errors"
	"gather/internal/domain/service"
)

// providerRegistry is a concrete implementation of the OAuthProviderRegistry
// interface backed by the set of configured provider clients.
type providerRegistry struct {
	clients map[string]service.OAuthProviderClient
}

// RegistryParams holds dependencies for providerRegistry, injected by Fx.
type RegistryParams struct {
	fx.In

	Clients []service.OAuthProviderClient `group:"oauth_providers"`
}

// NewProviderRegistry is the constructor for providerRegistry.
func NewProviderRegistry(params RegistryParams) service.OAuthProviderRegistry {
	clients := make(map[string]service.OAuthProviderClient, len(params.Clients))
	for _, client := range params.Clients {
		if client == nil {
			continue
		}
		clients[client.Provider()] = client
	}

	return &providerRegistry{clients: clients}
}

// Get returns the client for the provider name.
func (r *providerRegistry) Get(provider string) (service.OAuthProviderClient, error) {
	client, ok := r.clients[provider]
	if !ok {
		return nil, domainerrors.ErrOAuthProviderNotEnabled.WrapMessage("unknown or disabled provider")
	}

	return client, nil
}

// ListEnabled returns the discovery listing, sorted for stable output.
func (r *providerRegistry) ListEnabled() []service.OAuthProviderInfo {
	infos := make([]service.OAuthProviderInfo, 0, len(r.clients))
	for _, client := range r.clients {
		infos = append(infos, service.OAuthProviderInfo{
			Provider:    client.Provider(),
			DisplayName: client.DisplayName(),
		})
	}

	sort.Slice(infos, func(i, j int) bool { return infos[i].Provider < infos[j].Provider })

	return infos
}
