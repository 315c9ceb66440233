package datadir

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher はデータディレクトリの変更を監視する
// 監視は観測目的のみ。リクエスト処理は常にディスクを直接読むため、
// イベントを取りこぼしても配信内容には影響しない。
type Watcher struct {
	fw      *fsnotify.Watcher
	done    chan struct{}
	stopped bool
	mu      sync.Mutex
}

// NewWatcher は新しいWatcherを作成する
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("ファイル監視の初期化に失敗: %w", err)
	}

	return &Watcher{
		fw:   fw,
		done: make(chan struct{}),
	}, nil
}

// Watch はディレクトリ直下の変更監視を開始する
// 変更を検知するたびに onEvent(操作名, ファイル名) を呼び出す
// コールバックは監視ゴルーチンから呼ばれる
func (w *Watcher) Watch(dir string, onEvent func(op, name string)) error {
	if err := w.fw.Add(dir); err != nil {
		return fmt.Errorf("ディレクトリの監視開始に失敗: %w", err)
	}

	go func() {
		for {
			select {
			case <-w.done:
				return

			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				onEvent(event.Op.String(), event.Name)

			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				// 監視エラーは無視する（観測目的のため）
			}
		}
	}()

	return nil
}

// Stop は監視を終了しリソースを解放する
// 複数回呼び出しても安全
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true

	close(w.done)
	return w.fw.Close()
}
