package server

// HealthResponse はヘルスチェックエンドポイントのレスポンス
type HealthResponse struct {
	Status    string   `json:"status"`
	Version   string   `json:"version"`
	DataFiles []string `json:"data_files"`
}

// ErrorResponse はエラーレスポンスの共通形式
type ErrorResponse struct {
	Error string `json:"error"`
}

// ヘルスチェックのステータス値
const (
	StatusHealthy = "healthy"
)
