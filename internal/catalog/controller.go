package catalog

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

type Controller struct {
	catalog *Catalog
	logger  *zap.Logger
}

func NewController(catalog *Catalog, logger *zap.Logger) *Controller {
	return &Controller{
		catalog: catalog,
		logger:  logger,
	}
}

// HandleListPackages serves the pricing-page data: the three tiers with
// their prices and included features.
func (c *Controller) HandleListPackages(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"packages": c.catalog.List(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
