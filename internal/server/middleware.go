package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// corsMiddleware は全レスポンスにCORSヘッダーを付与するミドルウェア
// 成功・エラーを問わず、すべてのルートでクロスオリジンを無条件に許可する
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, PUT, POST, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// OPTIONSプリフライトはここで応答する
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Next()
	}
}
