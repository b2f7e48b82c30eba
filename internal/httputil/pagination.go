package httputil

import (
	"fmt"

	"github.com/gin-gonic/gin"
	validation "github.com/jellydator/validation"
)

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 100
)

// Page is the offset/limit window read from the query string.
type Page struct {
	Offset int `json:"offset" form:"offset,default=0"`
	Limit  int `json:"limit"  form:"limit,default=50"`
}

func (p Page) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Offset, validation.Min(0)),
		validation.Field(&p.Limit, validation.Required, validation.Min(1), validation.Max(MaxPageLimit)),
	)
}

// ParsePagination reads ?offset= and ?limit= (defaults 0 and 50, limit at most 100).
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	var page Page
	if err := c.ShouldBindQuery(&page); err != nil {
		return 0, 0, fmt.Errorf("offset and limit must be integers")
	}
	if err := page.Validate(); err != nil {
		return 0, 0, err
	}
	return page.Offset, page.Limit, nil
}
