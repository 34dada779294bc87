package system

import (
	"context"
	"log/slog"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Kunalk/spring-kafka-pubsub/internal/ports"
)

// ReadyTimeout — сколько readiness ждёт ответа каждой зависимости.
const ReadyTimeout = 2 * time.Second

// Check — зависимость, без которой сервис не готов.
type Check struct {
	Name    string
	Checker ports.IHealthChecker
}

// Controller — системные маршруты: liveness, readiness, метрики.
type Controller struct {
	checks []Check
	log    *slog.Logger
}

// New создаёт системный контроллер. Readiness успешен, только если ответили все checks.
func New(log *slog.Logger, checks ...Check) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{checks: checks, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.GET("/liveness", c.live)
	r.GET("/readyness", c.ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func (c *Controller) live(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// ready опрашивает зависимости параллельно; в ответе 503 перечислены упавшие.
func (c *Controller) ready(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), ReadyTimeout)
	defer cancel()

	type result struct {
		name string
		err  error
	}
	results := make(chan result, len(c.checks))
	for _, chk := range c.checks {
		chk := chk
		go func() {
			results <- result{name: chk.Name, err: chk.Checker.Ping(pingCtx)}
		}()
	}

	failed := map[string]string{}
	for range c.checks {
		if res := <-results; res.err != nil {
			failed[res.name] = res.err.Error()
		}
	}

	if len(failed) > 0 {
		names := make([]string, 0, len(failed))
		for name := range failed {
			names = append(names, name)
		}
		sort.Strings(names)
		c.log.Warn("ready check failed", "dependencies", names)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready", "failed": failed})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ready"})
}
