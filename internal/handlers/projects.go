package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/buttonsmith/internal/models"
	"github.com/thatcatcamp/buttonsmith/internal/projects"
	"github.com/thatcatcamp/buttonsmith/internal/style"
)

type projectRequest struct {
	styleInput
	Name string `json:"name"`
}

type projectView struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Label     string       `json:"label"`
	Token     string       `json:"token"`
	Style     *style.Model `json:"style,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

func newProjectView(p models.Project, m *style.Model) projectView {
	return projectView{
		ID:        p.ID,
		Name:      p.Name,
		Label:     p.Label,
		Token:     p.Token,
		Style:     m,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

var notFoundStatus = map[error]int{projects.ErrNotFound: http.StatusNotFound}

// ListProjects lists saved projects, newest first
func (a *API) ListProjects(c *gin.Context) {
	list, err := projects.List(a.db)
	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	views := make([]projectView, 0, len(list))
	for _, p := range list {
		views = append(views, newProjectView(p, nil))
	}
	c.JSON(http.StatusOK, gin.H{"projects": views})
}

// GetProject loads one project with its decoded style
func (a *API) GetProject(c *gin.Context) {
	saved, err := projects.Get(a.db, c.Param("id"))
	if err != nil {
		fail(c, statusFor(err, notFoundStatus), err)
		return
	}
	c.JSON(http.StatusOK, newProjectView(saved.Project, &saved.Style))
}

// SaveProject stores the posted style under a name
func (a *API) SaveProject(c *gin.Context) {
	var req projectRequest
	m, ok := modelFrom(c, &req)
	if !ok {
		return
	}
	project, err := projects.Save(a.db, req.Name, m)
	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	a.log.With("project", project.Name).Info("project saved")
	c.JSON(http.StatusCreated, newProjectView(*project, &m))
}

// DeleteProject removes a project
func (a *API) DeleteProject(c *gin.Context) {
	if err := projects.Delete(a.db, c.Param("id")); err != nil {
		fail(c, statusFor(err, notFoundStatus), err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListPlayground lists the pinned buttons in the order they were added
func (a *API) ListPlayground(c *gin.Context) {
	pinned, err := projects.ListPlayground(a.db)
	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	if pinned == nil {
		pinned = []projects.Pinned{}
	}
	c.JSON(http.StatusOK, gin.H{"entries": pinned})
}

// AddToPlayground pins the posted style
func (a *API) AddToPlayground(c *gin.Context) {
	var req styleInput
	m, ok := modelFrom(c, &req)
	if !ok {
		return
	}
	entry, err := projects.AddToPlayground(a.db, m, a.playground)
	if err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.JSON(http.StatusCreated, projects.Pinned{ID: entry.ID, Token: entry.Token, Style: m})
}

// RemoveFromPlayground unpins one entry
func (a *API) RemoveFromPlayground(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, err)
		return
	}
	if err := projects.RemoveFromPlayground(a.db, uint(id)); err != nil {
		fail(c, statusFor(err, notFoundStatus), err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearPlayground unpins everything
func (a *API) ClearPlayground(c *gin.Context) {
	if err := projects.ClearPlayground(a.db); err != nil {
		fail(c, http.StatusInternalServerError, err)
		return
	}
	c.Status(http.StatusNoContent)
}
