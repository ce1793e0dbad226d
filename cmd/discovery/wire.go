//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/stylediscover/server/internal/catalog"
	discoveryhttp "github.com/stylediscover/server/internal/discovery/delivery/http"
	discoveryquery "github.com/stylediscover/server/internal/discovery/usecase/query"
	"github.com/stylediscover/server/internal/prefs"
	prefshttp "github.com/stylediscover/server/internal/prefs/delivery/http"
	prefscommand "github.com/stylediscover/server/internal/prefs/usecase/command"
	prefsquery "github.com/stylediscover/server/internal/prefs/usecase/query"
	"github.com/stylediscover/server/kafka"
)

// Wire sets
var DiscoveryQuerySet = wire.NewSet(
	discoveryquery.NewBrowseOutfitsHandler,
	discoveryquery.NewFeedHandler,
	discoveryquery.NewGetOutfitHandler,
	discoveryquery.NewGetStatsHandler,
)

var PrefsUsecaseSet = wire.NewSet(
	prefscommand.NewToggleFavoriteHandler,
	prefscommand.NewAddToCartHandler,
	prefscommand.NewRemoveFromCartHandler,
	prefscommand.NewSubmitQuizHandler,
	prefscommand.NewSaveQuizSelectionsHandler,
	prefsquery.NewGetPreferencesHandler,
)

// InitializeDiscoveryHandler initializes the discovery HTTP handler
func InitializeDiscoveryHandler(snapshot *catalog.Snapshot, store *prefs.Store) *discoveryhttp.DiscoveryHandler {
	wire.Build(
		DiscoveryQuerySet,
		discoveryhttp.NewDiscoveryHandler,
	)
	return nil
}

// InitializePrefsHandler initializes the preferences HTTP handler
func InitializePrefsHandler(store *prefs.Store, snapshot *catalog.Snapshot, publisher *kafka.Publisher) *prefshttp.PrefsHandler {
	wire.Build(
		PrefsUsecaseSet,
		prefshttp.NewPrefsHandler,
	)
	return nil
}
