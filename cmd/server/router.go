package main

import (
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/karbonhq/karbon/internal/agent"
	"github.com/karbonhq/karbon/internal/cache"
	"github.com/karbonhq/karbon/internal/config"
	"github.com/karbonhq/karbon/internal/errors"
	"github.com/karbonhq/karbon/internal/middleware"
	"github.com/karbonhq/karbon/internal/planner"
	"github.com/karbonhq/karbon/internal/ratelimit"
	"github.com/karbonhq/karbon/internal/security"
	"github.com/karbonhq/karbon/internal/tools"
)

const version = "1.0.0"

// deps holds the wired services the router depends on.
type deps struct {
	cfg      *config.Config
	agent    *agent.Agent
	registry *tools.Registry
	limiter  *ratelimit.RateLimiter
	cache    *cache.Cache
}

type chatRequest struct {
	SessionID   string   `json:"session_id"`
	AgentType   string   `json:"agent_type"`
	Message     string   `json:"message" binding:"required"`
	Model       string   `json:"model"`
	Temperature *float64 `json:"temperature"`
}

type planRequest struct {
	Task     string `json:"task" binding:"required"`
	PlanType string `json:"plan_type"`
}

// setupRouter builds the gin engine with middleware and all routes.
func setupRouter(d deps) *gin.Engine {
	r := gin.New()

	r.Use(errors.RecoveryHandler())
	r.Use(errors.ErrorHandler())
	r.Use(cors.Default())
	r.Use(middleware.NewCompression(middleware.DefaultCompressionConfig()).Handler())

	sec := security.NewMiddleware(security.DefaultConfig())
	r.Use(sec.Headers)
	r.Use(sec.ValidateContentType)
	r.Use(sec.RequestTimeout)

	r.Use(d.limiter.IPRateLimitMiddleware())

	// Tool invocations are deterministic, so their responses are cacheable.
	toolPaths := make([]string, 0)
	for _, tool := range d.registry.List() {
		toolPaths = append(toolPaths, "/v1/tools/"+tool.Name)
	}
	r.Use(d.cache.Middleware(toolPaths...))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   version,
			"sessions":  d.agent.Sessions.Count(),
			"cache":     d.cache.Stats(),
			"ratelimit": d.limiter.Stats(),
		})
	})

	v1 := r.Group("/v1")

	v1.POST("/chat", d.handleChat)

	v1.GET("/sessions/:id/history", d.handleHistory)
	v1.GET("/sessions/:id/summary", d.handleSummary)
	if d.cfg.EnableExport {
		v1.GET("/sessions/:id/export", d.handleExport)
	}
	v1.POST("/sessions/:id/clear", d.handleClear)
	v1.DELETE("/sessions/:id", d.handleDeleteSession)

	v1.GET("/tools", d.handleListTools)
	v1.POST("/tools/:name", d.handleInvokeTool)

	v1.POST("/plans", d.handleCreatePlan)

	v1.GET("/models", d.handleListModels)
	v1.GET("/models/:id", d.handleGetModel)
	v1.GET("/agents", d.handleListAgents)

	if d.cfg.EnableSwagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	if d.cfg.EnableProfiling {
		r.GET("/debug/pprof/*filepath", gin.WrapF(pprof.Index))
		r.GET("/debug/pprof/cmdline", gin.WrapF(pprof.Cmdline))
		r.GET("/debug/pprof/profile", gin.WrapF(pprof.Profile))
		r.GET("/debug/pprof/symbol", gin.WrapF(pprof.Symbol))
		r.GET("/debug/pprof/trace", gin.WrapF(pprof.Trace))
	}

	return r
}

func (d deps) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.Abort(c, errors.NewValidationError("message is required"))
		return
	}

	agentType := req.AgentType
	if agentType == "" {
		agentType = config.AgentGeneralAssistant
	}

	if _, ok := config.AgentByName(agentType); !ok {
		errors.Abort(c, errors.NewValidationError("unknown agent type: "+agentType))
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = d.agent.Sessions.Create(agentType).ID
	}

	reply, err := d.agent.Respond(c.Request.Context(), sessionID, req.Message, agentType, agent.Options{
		Model:       req.Model,
		Temperature: req.Temperature,
	})
	if err != nil {
		errors.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"reply":      reply,
	})
}

func (d deps) handleHistory(c *gin.Context) {
	session, err := d.agent.Sessions.Get(c.Param("id"))
	if err != nil {
		errors.Abort(c, errors.NewNotFoundError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": session.ID,
		"agent_type": session.AgentType,
		"created_at": session.CreatedAt,
		"messages":   session.Messages,
	})
}

func (d deps) handleSummary(c *gin.Context) {
	summary, err := d.agent.Summary(c.Param("id"))
	if err != nil {
		errors.Abort(c, errors.NewNotFoundError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, summary)
}

func (d deps) handleExport(c *gin.Context) {
	export, err := d.agent.ExportSession(c.Param("id"))
	if err != nil {
		errors.Abort(c, errors.NewNotFoundError(err.Error()))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="chat_export.json"`)
	c.JSON(http.StatusOK, export)
}

func (d deps) handleClear(c *gin.Context) {
	if err := d.agent.Sessions.Clear(c.Param("id")); err != nil {
		errors.Abort(c, errors.NewNotFoundError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "history cleared"})
}

func (d deps) handleDeleteSession(c *gin.Context) {
	d.agent.Sessions.Delete(c.Param("id"))
	c.Status(http.StatusNoContent)
}

func (d deps) handleListTools(c *gin.Context) {
	list := d.registry.List()

	type toolInfo struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	infos := make([]toolInfo, 0, len(list))
	for _, tool := range list {
		infos = append(infos, toolInfo{Name: tool.Name, Description: tool.Description})
	}

	c.JSON(http.StatusOK, gin.H{"tools": infos})
}

func (d deps) handleInvokeTool(c *gin.Context) {
	name := c.Param("name")

	args := tools.Args{}
	if err := c.ShouldBindJSON(&args); err != nil {
		errors.Abort(c, errors.NewValidationError("invalid request body"))
		return
	}

	result, err := d.registry.Invoke(name, args)
	if err != nil {
		errors.Abort(c, errors.NewNotFoundError(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tool":   name,
		"result": result,
	})
}

func (d deps) handleCreatePlan(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errors.Abort(c, errors.NewValidationError("task is required"))
		return
	}

	c.JSON(http.StatusOK, planner.CreatePlan(req.Task, req.PlanType))
}

func (d deps) handleListModels(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"models": config.Models()})
}

func (d deps) handleGetModel(c *gin.Context) {
	model, ok := config.ModelByID(c.Param("id"))
	if !ok {
		errors.Abort(c, errors.NewNotFoundError("model not found: "+c.Param("id")))
		return
	}

	c.JSON(http.StatusOK, model)
}

func (d deps) handleListAgents(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"agents": config.Agents()})
}
