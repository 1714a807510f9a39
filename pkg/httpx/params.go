package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/chrono_catalog/internal/domain"
	"github.com/Gunvolt24/chrono_catalog/pkg/validate"
)

// WatchFilter — фильтр списка из query-строки.
// Порядок и неизвестные параметры не важны; нечисловые границы → validate.ErrInvalidFilter.
func WatchFilter(c *gin.Context) (domain.WatchFilter, error) {
	return validate.FilterFromQuery(c.Request.URL.Query())
}

// PathID — числовой параметр пути; не-число → validate.ErrInvalidID.
func PathID(c *gin.Context, name string) (int64, error) {
	return validate.WatchID(c.Param(name))
}
