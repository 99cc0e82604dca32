package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s Server) SearchVideos(c *gin.Context) {
	results, err := s.VideoService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}
