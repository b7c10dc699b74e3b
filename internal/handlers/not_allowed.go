package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/NavalhaDigital/booking-api/internal/httperr"
)

// Métodos aceitos por rota, para o header Allow do 405.
var allowedMethods = map[string]string{
	"/services":      "GET, POST",
	"/professionals": "GET, POST",
	"/bookings":      "GET, POST",
}

func MethodNotAllowed(c *gin.Context) {
	if allow, ok := allowedMethods[c.Request.URL.Path]; ok {
		c.Header("Allow", allow)
	}
	httperr.MethodNotAllowed(c, "method_not_allowed", "Método não permitido")
}
