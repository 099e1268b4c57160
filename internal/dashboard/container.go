package dashboard

import (
	"github.com/quizdeck/admin-core/internal/api"
	"github.com/quizdeck/admin-core/internal/localstore"
)

type DashboardContainer struct {
	Widgets *Widgets
}

func NewDashboardContainer(client *api.Client, store localstore.Store) *DashboardContainer {
	return &DashboardContainer{
		Widgets: NewWidgets(client, store),
	}
}
