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

const top10IDPrefix = "netflix-top10-"

func (h *Handler) handleCatalog(c *gin.Context) {
	userConfig := config.ParseUserConfig(c.Param("configuration"))
	catalogType := c.Param("type")
	catalogID := stripJSONSuffix(c.Param("id"))

	if canonical, ok := constants.LegacyProviderAliases[catalogID]; ok {
		catalogID = canonical
	}

	var metas []models.Meta
	if strings.HasPrefix(catalogID, top10IDPrefix) {
		metas = h.top10Metas(catalogID, catalogType, userConfig)
	} else {
		metas = h.services.Catalog.ProviderMetas(catalogType, catalogID, userConfig.CountryCode, userConfig.Language)
	}

	if metas == nil {
		metas = []models.Meta{}
	}

	h.services.Logger.Debugf("[Handler] returning %d metas for %s/%s", len(metas), catalogType, catalogID)

	c.JSON(http.StatusOK, models.CatalogResponse{
		Metas: replaceRPDBPosters(userConfig.RPDBKey, metas),
	})
}

// top10Metas dispatches a netflix-top10-* catalog id to the assembler.
// Any fatal upstream error already degraded to an empty list inside
// the catalog service.
func (h *Handler) top10Metas(catalogID, catalogType string, userConfig *config.UserConfig) []models.Meta {
	contentType := "movies"
	if catalogType == "series" {
		contentType = "shows"
	}

	if catalogID == top10IDPrefix+"global" {
		return h.services.Catalog.GetGlobalTop10(contentType, userConfig.Language)
	}

	countryCode := strings.TrimPrefix(catalogID, top10IDPrefix)
	return h.services.Catalog.GetTop10Catalog(countryCode, contentType, userConfig.Language)
}

// replaceRPDBPosters swaps posters for Rating Poster DB renditions when
// an RPDB key is configured.
func replaceRPDBPosters(rpdbKey string, metas []models.Meta) []models.Meta {
	if rpdbKey == "" {
		return metas
	}

	replaced := make([]models.Meta, len(metas))
	for i, meta := range metas {
		meta.Poster = fmt.Sprintf("https://api.ratingposterdb.com/%s/imdb/poster-default/%s.jpg", rpdbKey, meta.ID)
		replaced[i] = meta
	}
	return replaced
}
