package middleware

import (
	"database/sql"

	"bespokedbikes/internal/repositories"
	"bespokedbikes/internal/store"

	"github.com/gin-gonic/gin"
)

const reposKey = "repositories"

// UnitOfWork gives each request its own set of repositories over a fresh
// unit of work. Nothing is written unless a handler calls Save.
func UnitOfWork(db *sql.DB, opts ...store.Option) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(reposKey, repositories.New(store.NewUnitOfWork(db, opts...)))
		c.Next()
	}
}

// Repositories returns the request's repositories. It panics when the
// UnitOfWork middleware is not installed on the route.
func Repositories(c *gin.Context) repositories.Repositories {
	return c.MustGet(reposKey).(repositories.Repositories)
}
