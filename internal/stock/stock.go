package stock

import (
	"context"

	"vending-machine/internal/model"
)

// Manifest is the initial stock of a machine.
type Manifest struct {
	Products model.ProductInventory
	Change   model.ChangeInventory
}

// Loader defines the interface for loading stock manifests.
type Loader interface {
	// Load reads a manifest, gunzipping it when the name ends in ".gz".
	Load(ctx context.Context, path string) (*Manifest, error)
}
