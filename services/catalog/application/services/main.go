package services

import (
	"fmt"

	"github.com/ghuser/wardrobe/pkg/app"
	"github.com/ghuser/wardrobe/services/catalog/application/subscribers"
	"github.com/ghuser/wardrobe/services/catalog/domain/models"
	"github.com/ghuser/wardrobe/services/catalog/infrastructure/persistence/memory"
)

// Services is the application-layer service container for this bounded context.
// The catalog lives in memory, so a process must build exactly one Services and
// share it between every presentation adapter it runs.
type Services struct {
	Catalog  *CatalogService
	Activity *subscribers.ActivityLog
}

// New wires the catalog service with an in-memory repository, seeded with the
// demonstration items when cfg.CatalogSeed is set. Activity is not subscribed
// here; callers pass it to subscribers.Register once the bus is running.
func New(a *app.Application) (*Services, error) {
	repo := memory.NewItemRepository(a.EventBus, a.Logger)
	if a.Config.CatalogSeed {
		if err := repo.Seed(models.SeedItems()...); err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
	}
	return &Services{
		Catalog:  NewCatalogService(repo, OptionsFromConfig(a.Config), a.Logger),
		Activity: subscribers.NewActivityLog(a.Config.CatalogActivitySize, a.Logger),
	}, nil
}
