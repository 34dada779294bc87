package history

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Kunalk/spring-kafka-pubsub/internal/ports"
)

// Controller — маршруты консьюмера: история полученных WorkUnit.
type Controller struct {
	uc  ports.IReceiverUseCase
	log *slog.Logger
}

// New создаёт контроллер истории.
func New(uc ports.IReceiverUseCase, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api/v1")

	api.GET("/work-units", c.list)
}

// @Summary История полученных WorkUnit
// @Description Последние обработанные консьюмером WorkUnit, новые сначала
// @Tags workunit
// @Produce json
// @Param limit query int false "Сколько записей вернуть (по умолчанию 50, максимум 500)"
// @Success 200 {object} HistoryResponse "Список доставок"
// @Failure 400 {object} map[string]string "Невалидный limit"
// @Failure 500 {object} map[string]string "Внутренняя ошибка сервера"
// @Router /api/v1/work-units [get]
func (c *Controller) list(ctx *gin.Context) {
	limit := 0
	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	list, err := c.uc.History(ctx.Request.Context(), limit)
	if err != nil {
		c.log.Error("history failed", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	items := make([]HistoryItem, len(list))
	for i, d := range list {
		items[i] = HistoryItem{
			ID:         d.WorkUnit.ID,
			Definition: d.WorkUnit.Definition,
			Topic:      d.Topic,
			Partition:  d.Partition,
			Offset:     d.Offset,
			ReceivedAt: d.ReceivedAt,
		}
	}
	ctx.JSON(http.StatusOK, HistoryResponse{Items: items})
}
