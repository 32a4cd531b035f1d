package admin

import (
	"strconv"
	"time"

	handlershared "github.com/resto-next/internal/http/handlers/shared"
	"github.com/resto-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

func respondError(c *gin.Context, code int, key string, err error) {
	handlershared.RespondError(c, code, key, err)
}

func respondCatalogError(c *gin.Context, err error) {
	handlershared.RespondMapped(c, err, handlershared.CatalogErrorRules, response.CodeInternal, "error.catalog_save_failed")
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, ok := handlershared.ParseID(c.Param(name))
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
	}
	return id, ok
}

func parsePage(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	return handlershared.NormalizePagination(page, pageSize)
}

func parseTimeNullable(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
