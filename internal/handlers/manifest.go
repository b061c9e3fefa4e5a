package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/facuparedes/streaming-catalogs-addon/internal/config"
	"github.com/facuparedes/streaming-catalogs-addon/internal/constants"
	"github.com/facuparedes/streaming-catalogs-addon/internal/models"
)

func (h *Handler) handleManifest(c *gin.Context) {
	manifest := baseManifest()
	manifest.Catalogs = defaultCatalogs()
	c.JSON(http.StatusOK, manifest)
}

func (h *Handler) handleConfiguredManifest(c *gin.Context) {
	userConfig := config.ParseUserConfig(c.Param("configuration"))

	manifest := baseManifest()
	manifest.Catalogs = append(
		providerCatalogs(userConfig.Providers),
		top10Catalogs(userConfig)...,
	)
	c.JSON(http.StatusOK, manifest)
}

func baseManifest() models.Manifest {
	return models.Manifest{
		ID:          constants.AddonID,
		Version:     constants.AddonVersion,
		Name:        constants.AddonName,
		Description: constants.AddonDescription,
		Logo:        constants.AddonLogo,
		Resources:   []string{"catalog"},
		Types:       []string{"movie", "series"},
		IDPrefixes:  []string{"tt"},
		BehaviorHints: models.BehaviorHints{
			Configurable: true,
		},
	}
}

// defaultCatalogs is served to unconfigured installs: the majors plus
// the global Top 10 pair.
func defaultCatalogs() []models.Catalog {
	catalogs := providerCatalogs([]string{"nfx", "hbm", "dnp", "amp", "atp"})
	return append(catalogs,
		models.Catalog{ID: "netflix-top10-global", Type: "movie", Name: "Netflix Top 10 Movies (Global)"},
		models.Catalog{ID: "netflix-top10-global", Type: "series", Name: "Netflix Top 10 Shows (Global)"},
	)
}

// providerCatalogs builds manifest catalogs for the selected provider
// codes, one per supported content type, skipping unknown codes.
func providerCatalogs(codes []string) []models.Catalog {
	var catalogs []models.Catalog
	seen := make(map[string]bool)

	for _, code := range codes {
		provider, ok := constants.Providers[code]
		if !ok || seen[code] {
			continue
		}
		seen[code] = true
		for _, t := range provider.Types {
			catalogs = append(catalogs, models.Catalog{
				ID:   code,
				Type: t,
				Name: provider.Name,
			})
		}
	}

	return catalogs
}

// top10Catalogs appends the Netflix Top 10 catalogs a configuration
// asks for: the global pair and optionally a country-specific pair.
func top10Catalogs(userConfig *config.UserConfig) []models.Catalog {
	var catalogs []models.Catalog

	if userConfig.Top10Global {
		catalogs = append(catalogs,
			models.Catalog{ID: "netflix-top10-global", Type: "movie", Name: "Netflix Top 10 Movies (Global)"},
			models.Catalog{ID: "netflix-top10-global", Type: "series", Name: "Netflix Top 10 Shows (Global)"},
		)
	}

	if userConfig.Top10Country && userConfig.Top10CountryCode != "" {
		code := strings.ToUpper(userConfig.Top10CountryCode)
		catalogs = append(catalogs,
			models.Catalog{
				ID:   "netflix-top10-" + code,
				Type: "movie",
				Name: fmt.Sprintf("Netflix Top 10 Movies (%s)", code),
			},
			models.Catalog{
				ID:   "netflix-top10-" + code,
				Type: "series",
				Name: fmt.Sprintf("Netflix Top 10 Shows (%s)", code),
			},
		)
	}

	return catalogs
}
