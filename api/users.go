package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shadowWisper/services/user"
)

func (s Server) GetProfile(c *gin.Context) {
	userID, ok := subject(c)
	if !ok {
		return
	}
	u, err := s.UserService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (s Server) CreateProfile(c *gin.Context) {
	userID, ok := subject(c)
	if !ok {
		return
	}
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := s.UserService.CreateUser(c.Request.Context(), &user.FireUser{
		ID:          userID,
		DisplayName: req.DisplayName,
		BirthDate:   req.BirthDate,
		Gender:      req.Gender,
		Profession:  req.Profession,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (s Server) UpdateProfile(c *gin.Context) {
	userID, ok := subject(c)
	if !ok {
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	err := s.UserService.UpdateUser(
		c.Request.Context(),
		userID,
		req.DisplayName,
		req.BirthDate,
		req.Gender,
		req.Profession,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s Server) DeleteProfile(c *gin.Context) {
	userID, ok := subject(c)
	if !ok {
		return
	}
	if err := s.UserService.DeleteUser(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
