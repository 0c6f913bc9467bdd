package persist

import "context"

// Storeは名前付きキーにJSON値を保存する永続ストア。
// カート・ウィッシュリスト・ユーザーの書き込み先をここに差し替え可能にする。
//
// Loadはソフト失敗：値が無い・JSONとして壊れている場合は ok=false を返す。
// バックエンド障害は err に入るが、呼び出し側は「無かった」として扱ってよい。
type Store interface {
	Load(ctx context.Context, key string, dst any) (ok bool, err error)
	Save(ctx context.Context, key string, value any) error
}
