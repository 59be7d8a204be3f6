package server

import (
	"encoding/json"
	"fmt"
	"stegno/internal/logging"
	"stegno/pkg/config"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "stegno/docs"
)

const (
	RFC3339Millis = "2006-01-02T15:04:05.000Z07:00"
)

type Server struct {
	config config.CarrierConfig
	logger *logging.Logger
}

func New(cConfig config.CarrierConfig, logger *logging.Logger) *Server {
	return &Server{config: cConfig, logger: logger}
}

// StartServer godoc
// @title stegno API
// @version 1.0
// @description An API to hide text messages in the least significant bits of carrier files
// @BasePath /api/v1
func (s *Server) StartServer(port string) error {
	s.logger.Info("Starting server", "port", port)
	return s.Router().Run(fmt.Sprintf(":%s", port))
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{Formatter: logFormatter}), gin.Recovery())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.POST("/inject", s.InjectHandler)
	v1.POST("/extract", s.ExtractHandler)
	v1.GET("/capacity", s.CapacityHandler)

	r.POST("/fb/inject", gin.WrapF(s.handleInjectFlatbufferRequest))

	return r
}

func logFormatter(param gin.LogFormatterParams) string {
	if param.Latency > time.Minute {
		param.Latency = param.Latency.Truncate(time.Second)
	}

	entry, err := json.Marshal(map[string]any{
		"timestamp":        param.TimeStamp.Format(RFC3339Millis),
		"status_code":      param.StatusCode,
		"latency":          param.Latency.String(),
		"latency_raw":      param.Latency,
		"request_size":     humanize.Bytes(uint64(max(param.BodySize, 0))),
		"request_size_raw": param.BodySize,
		"client_ip":        param.ClientIP,
		"method":           param.Method,
		"path":             param.Path,
		"error":            param.ErrorMessage,
	})
	if err != nil {
		return fmt.Sprintf("{\"error\": %q}\n", err.Error())
	}
	return string(entry) + "\n"
}
