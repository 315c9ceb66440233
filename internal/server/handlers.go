package server

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"madoguchi/internal/datadir"

	"github.com/gin-gonic/gin"
)

// handleIndex はエントリHTMLファイルを配信する
// ファイルが存在しない場合は404を返す（500にはしない）
func (s *Server) handleIndex(c *gin.Context) {
	entry := s.config.Gateway.EntryFile

	if _, err := os.Stat(entry); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: fmt.Sprintf("%s not found", filepath.Base(entry)),
		})
		return
	}

	c.File(entry)
}

// handleDataFile はデータディレクトリのCSVファイルを配信する
// 例: /api/Locations.csv, /api/Tracks.csv
//
// 検証は拡張子の確認のみ。既知の弱点として、パストラバーサルを
// 明示的には拒否しない（元の挙動を維持）。ginのルートパラメータが
// スラッシュを含むパスにマッチしないため、実際には階層を遡れない。
func (s *Server) handleDataFile(c *gin.Context) {
	filename := c.Param("filename")

	// CSVファイルのみ許可する
	if !strings.HasSuffix(filename, ".csv") {
		c.JSON(http.StatusForbidden, ErrorResponse{
			Error: "Only CSV files allowed",
		})
		return
	}

	path := filepath.Join(s.config.Gateway.DataDir, filename)

	f, err := os.Open(path)
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: fmt.Sprintf("%s not found", filename),
		})
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: fmt.Sprintf("%s not found", filename),
		})
		return
	}

	// ファイルの内容をそのままストリーム配信する
	c.DataFromReader(http.StatusOK, info.Size(), "text/csv", f, nil)
}

// handleHealth はヘルスチェックエンドポイント
// 常に200を返し、データディレクトリの現在の一覧を報告する
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:    StatusHealthy,
		Version:   s.config.Gateway.Version,
		DataFiles: datadir.List(s.config.Gateway.DataDir),
	})
}

// handleNotFound は未定義ルートへのリクエストに応答する
func (s *Server) handleNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, ErrorResponse{
		Error: "Resource not found",
	})
}

// handleRecovery はパニック発生時に500エラーを応答する
func (s *Server) handleRecovery(c *gin.Context, _ any) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{
		Error: "Internal server error",
	})
}
