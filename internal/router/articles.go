package router

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pagekit-io/connect/internal/apperr"
	"github.com/pagekit-io/connect/internal/domain"
	"github.com/pagekit-io/connect/pkg/connection"
)

const defaultPageSize = 20

// ArticleRouter serves article connections over HTTP.
type ArticleRouter struct {
	e         *echo.Echo
	paginator *connection.Paginator[domain.Article]
	source    connection.Source[domain.Article]
}

func NewArticleRouter(e *echo.Echo, paginator *connection.Paginator[domain.Article], source connection.Source[domain.Article]) *ArticleRouter {
	return &ArticleRouter{
		e:         e,
		paginator: paginator,
		source:    source,
	}
}

func (r *ArticleRouter) Bind() {
	r.e.GET("/articles", r.listHandler)
}

// listHandler translates query params into FindOptions and returns the
// connection as JSON. Pagination failures are left to the global error
// handler.
func (r *ArticleRouter) listHandler(c echo.Context) error {
	find, err := parseFindOptions(c)
	if err != nil {
		return err
	}

	conn, err := r.paginator.Paginate(c.Request().Context(), *find, r.source)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, conn)
}

func parseFindOptions(c echo.Context) (*connection.FindOptions, error) {
	first := defaultPageSize
	if raw := c.QueryParam("first"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return nil, apperr.NewValidationWrap("first must be an integer", err)
		}
		first = parsed
	}

	direction, ok := connection.ParseOrderDirection(c.QueryParam("direction"))
	if !ok {
		return nil, apperr.NewValidation("direction must be ASC or DESC")
	}

	orderBy := c.QueryParam("orderBy")
	if orderBy == "" {
		orderBy = "createdAt"
	}

	var after *string
	if cursor := c.QueryParam("after"); cursor != "" {
		after = &cursor
	}

	return &connection.FindOptions{
		First:   first,
		After:   after,
		OrderBy: connection.Order{Field: orderBy, Direction: direction},
	}, nil
}
