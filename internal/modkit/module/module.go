// Package module holds the module contract and the port registry main uses to cross wire modules
package module

import (
	phttp "portfolio/internal/platform/net/http"
)

// Module is what api.Mount composes: routes under a prefix plus a ports bundle
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
