package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ViewController renders the server-side pages
type ViewController struct {
	appName     string
	authEnabled bool
}

// NewViewController creates a new ViewController
func NewViewController(appName string, authEnabled bool) *ViewController {
	return &ViewController{
		appName:     appName,
		authEnabled: authEnabled,
	}
}

// Alumnos renders the alumnos admin page; data is loaded by the page script from the API
func (c *ViewController) Alumnos(ctx *gin.Context) {
	ctx.HTML(http.StatusOK, "alumnos.html", gin.H{
		"title":       "Alumnos",
		"appName":     c.appName,
		"authEnabled": c.authEnabled,
	})
}
