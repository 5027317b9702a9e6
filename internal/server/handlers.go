package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/llehouerou/reel/internal/suggest"
)

// providerURI rebuilds the provider URI for a request path.
func providerURI(c *gin.Context) string {
	return "content://reel" + c.Request.URL.Path
}

// query answers GET /:path?q=... . Without q the provider returns an empty
// result.
func (s *Server) query(c *gin.Context) {
	uri := providerURI(c)
	var args []string
	if q, ok := c.GetQuery("q"); ok {
		args = []string{q}
	}

	cur, err := s.provider.Query(c.Request.Context(), uri, args)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, suggest.ErrInvalidURI) {
			status = http.StatusBadRequest
		}
		c.JSON(status, ErrorResponse{Status: StatusError, Message: err.Error()})
		return
	}

	rows := make([][]any, 0, cur.Count())
	for _, r := range cur.Rows {
		rows = append(rows, r.Values())
	}
	c.JSON(http.StatusOK, QueryResponse{
		Status:  StatusOK,
		Columns: cur.Columns,
		Rows:    rows,
		Count:   cur.Count(),
		Type:    s.provider.Type(uri),
	})
}

func (s *Server) insert(c *gin.Context) {
	_, err := s.provider.Insert(providerURI(c), nil)
	s.refuse(c, err)
}

func (s *Server) update(c *gin.Context) {
	_, err := s.provider.Update(providerURI(c), nil, "", nil)
	s.refuse(c, err)
}

func (s *Server) delete(c *gin.Context) {
	_, err := s.provider.Delete(providerURI(c), "", nil)
	s.refuse(c, err)
}

// refuse reports a rejected mutation. The provider is read-only, so a nil
// error still gets 405.
func (s *Server) refuse(c *gin.Context, err error) {
	if err == nil {
		err = suggest.ErrUnsupported
	}
	c.JSON(http.StatusMethodNotAllowed, ErrorResponse{Status: StatusError, Message: err.Error()})
}
