package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"go-qr-score/internal/config"
	"go-qr-score/internal/logger"
	"go-qr-score/internal/qrerrors"
	"go-qr-score/internal/service"
)

// ScoreHTTPRequest is the JSON body accepted by POST /score.
type ScoreHTTPRequest struct {
	URL             string `json:"url" binding:"required,url"`
	ExpectedContent string `json:"expected_content,omitempty"`
	RenderSize      int    `json:"render_size,omitempty"`
}

// ErrorResponse is the failure payload. A failed run always presents score 0
// and grade F, never a partial success.
type ErrorResponse struct {
	Score     int    `json:"score"`
	Grade     string `json:"grade"`
	Decodable bool   `json:"decodable"`
	Error     string `json:"error"`
}

// NewHandler builds the HTTP routing for the scoring API.
func NewHandler(svc service.ScoringService, cfg *config.Config) http.Handler {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestSizeLimiter(cfg.MaxRequestBodySize))

	r.GET("/health", healthCheck)
	r.POST("/score", scoreDocument(svc, cfg))

	return r
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func scoreDocument(svc service.ScoringService, cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()

		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.RequestTimeout)
		defer cancel()

		log := logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"ip":         c.ClientIP(),
		})

		var req ScoreHTTPRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.WithError(err).Error("Invalid request format")
			respondError(c, http.StatusBadRequest, "invalid request format")
			return
		}

		if err := svc.ValidateURL(req.URL); err != nil {
			log.WithError(err).WithField("url", req.URL).Error("Invalid document URL")
			respondError(c, http.StatusBadRequest, "invalid document URL")
			return
		}

		resp, err := svc.ScoreURL(ctx, service.ScoreRequest{
			URL:             req.URL,
			ExpectedContent: req.ExpectedContent,
			RenderSize:      req.RenderSize,
		})
		if err != nil {
			log.WithError(err).WithField("url", req.URL).Error("Scoring failed")
			respondError(c, qrerrors.GetStatusCode(err), err.Error())
			return
		}

		log.WithFields(logrus.Fields{
			"url":         req.URL,
			"score":       resp.Score,
			"grade":       resp.Grade,
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("Scored document")

		c.Header("X-Request-ID", requestID)
		c.JSON(http.StatusOK, resp)
	}
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{
		Score:     0,
		Grade:     "F",
		Decodable: false,
		Error:     message,
	})
}

func requestSizeLimiter(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
