package controllers

import (
	"log"
	"net/http"
	"os"

	"civicdispatch-be/models"
	authUtils "civicdispatch-be/utils"

	"github.com/gin-gonic/gin"
)

// LoginAuthority handles authority login against the static credential table
func LoginAuthority(c *gin.Context) {
	var input struct {
		OfficialID string `json:"officialId" binding:"required"`
		Password   string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	authority, ok := models.Authenticate(input.OfficialID, input.Password)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := authUtils.GenerateAndSetToken(authority)
	if err != nil {
		log.Println("Error generating token:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	environment := os.Getenv("GO_ENV")
	domain := os.Getenv("DOMAIN")

	// For production, don't set domain to allow cross-origin cookies
	if environment == "production" {
		domain = ""
	}

	cookie := &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		MaxAge:   3600, // 1 hour
		Path:     "/",
		Domain:   domain,
		Secure:   environment == "production",
		HttpOnly: true,
		SameSite: http.SameSiteNoneMode,
	}
	http.SetCookie(c.Writer, cookie)

	c.JSON(http.StatusOK, gin.H{
		"name":  authority.Name,
		"phone": authority.Phone,
	})
}

// GetMe retrieves the authenticated authority's information
func GetMe(c *gin.Context) {
	name := c.GetString("authority_name")
	phone := c.GetString("authority_phone")
	if name == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":  name,
		"phone": phone,
	})
}

// LogoutAuthority handles logout by clearing the auth_token cookie
func LogoutAuthority(c *gin.Context) {
	environment := os.Getenv("GO_ENV")
	domain := os.Getenv("DOMAIN")

	c.SetCookie("auth_token", "", -1, "/", domain, environment == "production", true)
	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}
