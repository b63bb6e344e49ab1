package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/telcolab/coverage-backend-go/internal/config"
	"github.com/telcolab/coverage-backend-go/internal/database"
	"github.com/telcolab/coverage-backend-go/internal/handler"
	"github.com/telcolab/coverage-backend-go/internal/middleware"
	"github.com/telcolab/coverage-backend-go/internal/repository"
	"github.com/telcolab/coverage-backend-go/internal/service"
)

// SetupRouter 设置路由
func SetupRouter(cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(120, time.Minute))

	// CORS 中间件
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Coverage Backend API is running",
		})
	})

	db := database.GetDB()
	measurementRepo := repository.NewMeasurementRepository(db)
	cellRepo := repository.NewCellRepository(db)
	taskRepo := repository.NewAnalysisTaskRepository(db)

	ingestService := service.NewIngestService(measurementRepo, cellRepo, cfg.GeohashPrecision)
	analysisService := service.NewAnalysisService(cellRepo, taskRepo, cfg)
	vizService := service.NewVizService(cellRepo)

	measurementHandler := handler.NewMeasurementHandler(ingestService)
	cellHandler := handler.NewCellHandler(cellRepo, ingestService)
	analysisHandler := handler.NewAnalysisHandler(analysisService)
	vizHandler := handler.NewVizHandler(vizService)

	auth := middleware.Auth(cfg.JWTSecret)

	// API 路由组
	api := r.Group("/api/v1")
	{
		// 测量数据接口
		measurements := api.Group("/measurements")
		{
			measurements.POST("", auth, measurementHandler.AddMeasurements)
			measurements.GET("/count", measurementHandler.Count)
		}

		// 网格单元接口
		cells := api.Group("/cells")
		{
			cells.GET("", cellHandler.GetCells)
			cells.POST("/build", auth, cellHandler.BuildCells)
		}

		// 分析接口
		analysis := api.Group("/analysis")
		{
			analysis.POST("/hotspots", auth, analysisHandler.RunHotspots)
			analysis.POST("/desired-areas", auth, analysisHandler.RunDesiredAreas)
			analysis.GET("/tasks/:id", analysisHandler.GetTask)
			analysis.GET("/optimal-neighbours", analysisHandler.OptimalNeighbours)
		}

		// 可视化接口
		viz := api.Group("/viz")
		{
			viz.GET("/choropleth", vizHandler.CellChoropleth)
			viz.GET("/districts", vizHandler.DistrictChoropleth)
			viz.GET("/signal-bar", vizHandler.SignalStrengthBar)
			viz.GET("/rsrp-box", vizHandler.RSRPBox)
		}
	}

	return r
}
