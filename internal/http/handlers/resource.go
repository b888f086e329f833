package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"bespokedbikes/internal/domain"
	"bespokedbikes/internal/dto"
	"bespokedbikes/internal/http/middleware"
	"bespokedbikes/internal/paging"
	"bespokedbikes/internal/query"
	"bespokedbikes/internal/repositories"
	"bespokedbikes/internal/utils"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/gin-gonic/gin"
)

// Resource serves one entity collection. T is the model, D its output DTO,
// C the creation DTO and U the update DTO that PUT and PATCH work on.
type Resource[T, D, C, U any] struct {
	Name         string
	Repo         func(repositories.Repositories) repositories.Repository[T]
	ID           func(*T) int64
	ToDto        func(*T) D
	FromCreation func(C) *T
	Apply        func(U, *T)
	ToUpdate     func(*T) U
}

func (r Resource[T, D, C, U]) repo(c *gin.Context) repositories.Repository[T] {
	return r.Repo(middleware.Repositories(c))
}

// List handles GET /{resource}?filters=&sortOrder=&pageNumber=&pageSize=.
func (r Resource[T, D, C, U]) List(c *gin.Context) {
	var params query.Parameters
	if err := c.ShouldBindQuery(&params); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	page, err := r.repo(c).List(c.Request.Context(), params)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	writePaginationHeader(c, newPaginationMetadata(c.Request.URL.Path, params, page))

	c.JSON(http.StatusOK, paging.Map(page, r.ToDto).Items)
}

// Get handles GET /{resource}/{id}.
func (r Resource[T, D, C, U]) Get(c *gin.Context) {
	e, ok := r.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, r.ToDto(e))
}

// Create handles POST /{resource}.
func (r Resource[T, D, C, U]) Create(c *gin.Context) {
	var in C
	if !BindJSONOrError(c, &in) {
		return
	}
	if err := dto.Validate(in); err != nil {
		RespondDomainError(c, err)
		return
	}

	repo := r.repo(c)
	e := r.FromCreation(in)
	if err := repo.Add(e); err != nil {
		RespondDomainError(c, err)
		return
	}
	saved, err := repo.Save(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if !saved {
		RespondDomainError(c, domain.PersistenceError{Op: "create " + r.Name})
		return
	}

	id := r.ID(e)
	r.logWrite(c, "create", id)
	c.Header("Location", strings.TrimSuffix(c.Request.URL.Path, "/")+"/"+strconv.FormatInt(id, 10))
	c.JSON(http.StatusCreated, r.ToDto(e))
}

// Update handles PUT /{resource}/{id}: every writable field is replaced.
func (r Resource[T, D, C, U]) Update(c *gin.Context) {
	var in U
	if !BindJSONOrError(c, &in) {
		return
	}
	e, ok := r.load(c)
	if !ok {
		return
	}
	if err := dto.Validate(in); err != nil {
		RespondDomainError(c, err)
		return
	}

	r.Apply(in, e)
	r.save(c, e, "update")
}

// Patch handles PATCH /{resource}/{id} with an RFC 6902 document applied to
// the update shape of the stored entity.
func (r Resource[T, D, C, U]) Patch(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "could not read request body", err)
		return
	}
	body = bytes.TrimSpace(body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		RespondError(c, http.StatusBadRequest, "patch document is required", nil)
		return
	}
	patch, err := jsonpatch.DecodePatch(body)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid patch document", err)
		return
	}

	e, ok := r.load(c)
	if !ok {
		return
	}

	current, err := json.Marshal(r.ToUpdate(e))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	patched, err := patch.Apply(current)
	if err != nil {
		respondValidation(c, map[string][]string{r.Name: {err.Error()}})
		return
	}

	var in U
	dec := json.NewDecoder(bytes.NewReader(patched))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		respondValidation(c, map[string][]string{r.Name: {err.Error()}})
		return
	}
	if err := dto.Validate(in); err != nil {
		RespondDomainError(c, err)
		return
	}

	r.Apply(in, e)
	r.save(c, e, "patch")
}

// Delete handles DELETE /{resource}/{id}.
func (r Resource[T, D, C, U]) Delete(c *gin.Context) {
	e, ok := r.load(c)
	if !ok {
		return
	}
	repo := r.repo(c)
	if err := repo.Delete(e); err != nil {
		RespondDomainError(c, err)
		return
	}
	if _, err := repo.Save(c.Request.Context()); err != nil {
		RespondDomainError(c, err)
		return
	}
	r.logWrite(c, "delete", r.ID(e))
	c.Status(http.StatusNoContent)
}

// load fetches the entity named by :id and answers 404 when there is none.
func (r Resource[T, D, C, U]) load(c *gin.Context) (*T, bool) {
	id, ok := pathID(c)
	if !ok {
		return nil, false
	}
	res := <-r.repo(c).GetByIDAsync(c.Request.Context(), id)
	if res.Err != nil {
		RespondDomainError(c, res.Err)
		return nil, false
	}
	if res.Value == nil {
		c.AbortWithStatus(http.StatusNotFound)
		return nil, false
	}
	return res.Value, true
}

// save runs the no-op Update hook and commits. An unchanged entity is still
// a success.
func (r Resource[T, D, C, U]) save(c *gin.Context, e *T, action string) {
	repo := r.repo(c)
	repo.Update(e)
	if _, err := repo.Save(c.Request.Context()); err != nil {
		RespondDomainError(c, err)
		return
	}
	r.logWrite(c, action, r.ID(e))
	c.Status(http.StatusNoContent)
}

func (r Resource[T, D, C, U]) logWrite(c *gin.Context, action string, id int64) {
	msg := fmt.Sprintf("id=%d", id)
	if sub := middleware.GetSubject(c); sub != "" {
		msg += " subject=" + sub
	}
	utils.LogEvent(middleware.GetRequestID(c), r.Name, action, msg)
}
