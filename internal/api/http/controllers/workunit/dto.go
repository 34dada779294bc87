package workunit

// GenerateWorkRequest — query-параметры GET /generateWork.
type GenerateWorkRequest struct {
	ID         string `form:"id" binding:"required"`
	Definition string `form:"definition" binding:"required"`
}

// ErrorResponse — ответ при невалидном запросе.
type ErrorResponse struct {
	Error string `json:"error"`
}
