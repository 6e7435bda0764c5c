package mazeapi

import (
	"bytes"
	"errors"
	"image/png"
	"net/http"
	"strconv"

	"github.com/beka-birhanu/vinom-maze/api/identity"
	"github.com/beka-birhanu/vinom-maze/render"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController serves maze generation, solving and rendering.
type MazeController struct {
	sessionManager i.MazeSessionManager
	logger         i.Logger
}

// NewMazeController initializes a MazeController.
func NewMazeController(msm i.MazeSessionManager, logger i.Logger) (*MazeController, error) {
	if msm == nil || logger == nil {
		return nil, errors.New("maze controller requires a session manager and a logger")
	}
	return &MazeController{
		sessionManager: msm,
		logger:         logger,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", mc.create)
		mazes.GET("", mc.history)
		mazes.GET("/:ID", mc.maze)
		mazes.GET("/:ID/path", mc.path)
		mazes.GET("/:ID/image", mc.image)
	}
	route.GET("/reports", mc.reports)
}

func (mc *MazeController) create(ctx *gin.Context) {
	owner, ok := mc.owner(ctx)
	if !ok {
		return
	}

	var request CreateMazeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := mc.sessionManager.NewSession(ctx.Request.Context(), owner, request.Width)
	if err != nil {
		mc.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newMazeResponse(session))
}

func (mc *MazeController) history(ctx *gin.Context) {
	owner, ok := mc.owner(ctx)
	if !ok {
		return
	}

	ids, err := mc.sessionManager.History(ctx.Request.Context(), owner)
	if err != nil {
		mc.writeError(ctx, err)
		return
	}

	resp := HistoryResponse{IDs: make([]string, len(ids))}
	for idx, id := range ids {
		resp.IDs[idx] = id.String()
	}
	ctx.JSON(http.StatusOK, resp)
}

func (mc *MazeController) maze(ctx *gin.Context) {
	owner, id, ok := mc.ownerAndID(ctx)
	if !ok {
		return
	}

	session, err := mc.sessionManager.Session(owner, id)
	if err != nil {
		mc.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newMazeResponse(session))
}

func (mc *MazeController) path(ctx *gin.Context) {
	owner, id, ok := mc.ownerAndID(ctx)
	if !ok {
		return
	}

	path, err := mc.sessionManager.Solve(owner, id)
	if err != nil {
		mc.writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, PathResponse{Path: path, Length: len(path) - 1})
}

// image renders the maze as PNG. With ?solution=true the path from the entry
// to the exit is drawn over it.
func (mc *MazeController) image(ctx *gin.Context) {
	owner, id, ok := mc.ownerAndID(ctx)
	if !ok {
		return
	}

	withSolution := false
	if raw := ctx.Query("solution"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "solution must be a boolean"})
			return
		}
		withSolution = parsed
	}

	session, err := mc.sessionManager.Session(owner, id)
	if err != nil {
		mc.writeError(ctx, err)
		return
	}

	var path []int
	if withSolution {
		if path, err = session.Grid.Solve(); err != nil {
			mc.writeError(ctx, err)
			return
		}
	}

	img, err := render.NewImage(session.Grid.Width(), session.Grid.Cells(), path)
	if err != nil {
		mc.writeError(ctx, err)
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		mc.writeError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "image/png", buf.Bytes())
}

func (mc *MazeController) reports(ctx *gin.Context) {
	owner, ok := mc.owner(ctx)
	if !ok {
		return
	}

	reports, err := mc.sessionManager.Reports(ctx.Request.Context(), owner)
	if err != nil {
		mc.writeError(ctx, err)
		return
	}

	resp := make([]ReportResponse, len(reports))
	for idx, r := range reports {
		resp[idx] = newReportResponse(r)
	}
	ctx.JSON(http.StatusOK, resp)
}

// owner returns the authenticated user, answering 401 when there is none.
func (mc *MazeController) owner(ctx *gin.Context) (uuid.UUID, bool) {
	owner, err := identity.UserID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user claims"})
		return uuid.Nil, false
	}
	return owner, true
}

func (mc *MazeController) ownerAndID(ctx *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	owner, ok := mc.owner(ctx)
	if !ok {
		return uuid.Nil, uuid.Nil, false
	}

	id, err := uuid.Parse(ctx.Param("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return uuid.Nil, uuid.Nil, false
	}
	return owner, id, true
}

func (mc *MazeController) writeError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidWidth):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrSessionNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		mc.logger.
			WithField("method", ctx.Request.Method).
			WithField("path", ctx.Request.URL.Path).
			Error(err.Error())
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
