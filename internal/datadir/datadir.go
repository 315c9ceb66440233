// Package datadir は、CSVデータファイルを置くディレクトリの管理を担当します。
//
// 責務:
//   - データディレクトリの存在保証（なければ作成）
//   - ディレクトリ一覧の取得（常にディスクの現在状態を反映）
//   - 必須ファイルの存在確認（警告用、起動を妨げない）
//   - fsnotifyによる変更監視
//
// このパッケージはファイルの内容には一切関知しない。CSVの解析や検証は行わない。
package datadir

import (
	"fmt"
	"os"
	"path/filepath"
)

// Ensure はデータディレクトリの存在を保証する
// ディレクトリを新規作成した場合はtrueを返す
func Ensure(dir string) (bool, error) {
	if _, err := os.Stat(dir); err == nil {
		return false, nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return false, fmt.Errorf("データディレクトリの作成に失敗: %w", err)
	}

	return true, nil
}

// List はディレクトリ直下のエントリ名一覧を返す
// ディレクトリが存在しない場合は空のスライスを返す（nilは返さない）
func List(dir string) []string {
	names := []string{}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return names
	}

	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	return names
}

// MissingRequired は必須ファイルのうちディレクトリに存在しないものを返す
func MissingRequired(dir string, required []string) []string {
	missing := []string{}

	for _, name := range required {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			missing = append(missing, name)
		}
	}

	return missing
}
