package persist

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// FileStoreはキーごとに1つのJSONファイルを置く（デフォルトのドライバ）。
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStore{dir: dir}, nil
}

// キーはファイル名に使えない文字を含むことがある（cart:123 など）
var keyReplacer = strings.NewReplacer(":", "_", "/", "_", "\\", "_")

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, keyReplacer.Replace(key)+".json")
}

func (s *FileStore) Load(ctx context.Context, key string, dst any) (bool, error) {
	b, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	//壊れたJSONは「無かった」として扱う
	if err := json.Unmarshal(b, dst); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *FileStore) Save(ctx context.Context, key string, value any) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(key), b, 0o644)
}
