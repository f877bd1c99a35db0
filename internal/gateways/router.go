package gateways

import (
	"fmt"

	"payhub/pkg/utils"
)

// Router is the closed registry of gateway adapters. It is populated once at
// startup; resolution is a pure lookup by gateway identifier.
type Router struct {
	adapters map[string]Adapter
}

func NewRouter(adapters ...Adapter) *Router {
	registry := make(map[string]Adapter, len(adapters))
	for _, a := range adapters {
		registry[a.Name()] = a
	}
	return &Router{adapters: registry}
}

// Resolve returns the adapter registered for gatewayID. An unknown identifier
// is a client input error, not a system fault.
func (r *Router) Resolve(gatewayID string) (Adapter, error) {
	adapter, ok := r.adapters[gatewayID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", utils.ErrUnsupportedGateway, gatewayID)
	}
	return adapter, nil
}
