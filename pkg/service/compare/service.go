package compare

import (
	"context"

	"github.com/open-dynaMIX/qutebrowser-compare-config/pkg/models"
)

type Service interface {
	Compare(ctx context.Context) error
	ListSettings(ctx context.Context) error
}

// SchemaDB supplies the authoritative setting schema. How the mapping was
// obtained (bundled manifest, introspection, ...) is the provider's business.
type SchemaDB interface {
	GetSchema(ctx context.Context) (*models.Schema, error)
}
