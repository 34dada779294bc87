package workunit

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kunalk/spring-kafka-pubsub/internal/api/http/middlewares"
	"github.com/Kunalk/spring-kafka-pubsub/internal/domain"
	"github.com/Kunalk/spring-kafka-pubsub/internal/ports"
)

// Controller — маршрут продюсера: generateWork.
type Controller struct {
	uc  ports.IDispatcher
	log *slog.Logger
}

// New создаёт контроллер. Диспетчер общий для всех запросов.
func New(uc ports.IDispatcher, log *slog.Logger) *Controller {
	return &Controller{uc: uc, log: log}
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.GET("/generateWork", c.generateWork)
}

// @Summary Отправить WorkUnit в Kafka
// @Description Собирает WorkUnit из query-параметров и синхронно отправляет его в топик. Тело ответа — результат отправки.
// @Description id — идентичность WorkUnit: консьюмер отбрасывает повтор того же id в пределах CONSUMER_REDIS_DEDUP_TTL (24h), даже с другим definition.
// @Tags workunit
// @Produce json
// @Param id query string true "Идентификатор WorkUnit (ключ сообщения)"
// @Param definition query string true "Описание работы"
// @Success 200 {boolean} boolean "true — брокер подтвердил запись, false — отправка не удалась"
// @Failure 400 {object} ErrorResponse "Нет обязательного параметра"
// @Router /generateWork [get]
func (c *Controller) generateWork(ctx *gin.Context) {
	var req GenerateWorkRequest

	if err := ctx.ShouldBindQuery(&req); err != nil {
		c.log.Warn("generateWork bind failed", "error", err, "request_id", middlewares.GetRequestID(ctx))
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Errorf("%w: %v", domain.ErrMalformedRequest, err).Error()})
		return
	}

	wu, err := domain.NewWorkUnit(req.ID, req.Definition)
	if err != nil {
		c.log.Warn("generateWork validation failed", "error", err, "request_id", middlewares.GetRequestID(ctx))
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, c.uc.Dispatch(ctx.Request.Context(), wu))
}
