package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Enveloppe de réponse commune à toute l'API :
//
//	succès : {"success": true, ...données au premier niveau}
//	erreur : {"success": false, "error": "message"}
//
// Les champs de données (etudiant, notes, ...) sont fusionnés au premier
// niveau du corps, conformément au contrat de l'API.

// OK 200 avec données fusionnées
func OK(c *gin.Context, data gin.H) {
	c.JSON(http.StatusOK, merge(data))
}

// Created 201 avec données fusionnées
func Created(c *gin.Context, data gin.H) {
	c.JSON(http.StatusCreated, merge(data))
}

// Error réponse d'erreur générique
func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, gin.H{
		"success": false,
		"error":   message,
	})
}

// BadRequest 400
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound 404
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500, message générique (le détail reste dans les journaux)
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Erreur interne du serveur")
}

func merge(data gin.H) gin.H {
	body := gin.H{"success": true}
	for k, v := range data {
		body[k] = v
	}
	return body
}
