package main

import (
	"time"

	"app/internal/catalog"
	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/notify"
	"app/internal/persist"
	"app/internal/server"
	"app/internal/store"
	"app/internal/usecase"
	auth "app/internal/usecase/auth_usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func newJWTIssuer(secret string) *jwtIssuer {
	//アクセストークン
	return &jwtIssuer{
		secret:    []byte(secret),
		accessTTL: 15 * time.Minute,
	}
}

func (i *jwtIssuer) Issue(userID string, role model.Role, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":  userID,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

// STORAGE_DRIVERに応じた永続ストアを作る
func newPersistStore(cfg config.Config) (persist.Store, error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		gormDB, err := db.Connect(cfg)
		if err != nil {
			return nil, err
		}
		return persist.NewGormStore(gormDB)

	case config.DriverRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
			DB:   cfg.RedisDB,
		})
		return persist.NewRedisStore(rdb), nil

	default:
		return persist.NewFileStore(cfg.DataDir)
	}
}

func main() {
	// .envがあれば読む（無くても環境変数だけで動く）
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//永続ストア
	ps, err := newPersistStore(cfg)
	if err != nil {
		panic(err)
	}

	//カタログ（静的フィード）
	cat, err := catalog.Load()
	if err != nil {
		panic(err)
	}

	//ユーザーごとのカート・ウィッシュリスト
	stores := store.NewRegistry(ps)

	//通知フィード
	feed := notify.NewFeed()

	//Repository生成
	userRepo := infraRepo.NewPersistUserRepository(ps)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}

	//bcrypt（会員登録：Hash / ログイン：Verify）
	hasher := auth.NewBcryptPasswordHasher(12)
	verifier := auth.NewBcryptPasswordVerifier()

	//JWT issuer
	issuer := newJWTIssuer(cfg.JWTSecret)

	//Usecase生成
	registerUC := auth.NewRegisterUserUsecase(userRepo, hasher, idGen, clock)
	loginUC := auth.NewLoginUsecase(userRepo, verifier, issuer, clock)
	productUC := usecase.NewProductUsecase(cat)
	cartUC := usecase.NewCartUsecase(cat, stores, feed)
	wishlistUC := usecase.NewWishlistUsecase(cat, stores, feed)
	orderUC := usecase.NewOrderUsecase(cat)

	//Handler生成
	handlers := server.Handlers{
		Auth:         handler.NewAuthHandler(registerUC, loginUC),
		Product:      handler.NewProductHandler(productUC),
		Cart:         handler.NewCartHandler(cartUC),
		Wishlist:     handler.NewWishlistHandler(wishlistUC),
		Order:        handler.NewOrderHandler(orderUC),
		Notification: handler.NewNotificationHandler(feed),
	}

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	if err := server.Start(addr, cfg, handlers); err != nil {
		panic(err)
	}
}
