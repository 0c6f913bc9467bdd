package auth

import (
	"context"
	"errors"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"
)

// handlerからusecaseに渡す入力
type LoginInput struct {
	Email    string
	Password string
}

// token 形（JwtAccessToken相当）
type JwtAccessToken struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
}

// handlerがJSONにして返す
type LoginOutput struct {
	User  model.User     `json:"user"`
	Token JwtAccessToken `json:"token"`
}

// メールまたはパスワードが違う
var ErrInvalidCredentials = errors.New("invalid credentials")

// JWTを発行する約束
type AccessTokenIssuer interface {
	Issue(userID string, role model.Role, now time.Time) (token string, expiresAt time.Time, err error)
}

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

type LoginUsecase struct {
	userRepo repository.UserRepository
	verifier PasswordVerifier
	issuer   AccessTokenIssuer
	clock    Clock
}

// DI
func NewLoginUsecase(
	userRepo repository.UserRepository,
	verifier PasswordVerifier,
	issuer AccessTokenIssuer,
	clock Clock,
) *LoginUsecase {
	return &LoginUsecase{
		userRepo: userRepo,
		verifier: verifier,
		issuer:   issuer,
		clock:    clock,
	}
}

// ログイン処理を実行する
func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (LoginOutput, error) {
	var out LoginOutput

	//emailでユーザー取得
	user, err := u.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return out, ErrInvalidCredentials
		}
		return out, err
	}

	//パスワード照合
	if ok := u.verifier.Verify(in.Password, user.PasswordHash); !ok {
		return out, ErrInvalidCredentials
	}

	//AccessToken発行
	now := u.clock.Now()
	accessToken, accessExp, err := u.issuer.Issue(user.ID, user.Role, now)
	if err != nil {
		return out, err
	}

	//最終ログイン時刻更新（失敗してもログイン自体は成立させる）
	user.LastLoginAt = &now
	user.UpdatedAt = now
	_ = u.userRepo.Update(ctx, user)

	//出力（passwordは返さない）
	safeUser := *user
	safeUser.PasswordHash = ""

	out.User = safeUser
	out.Token = JwtAccessToken{
		AccessToken: accessToken,
		ExpiresIn:   int(accessExp.Sub(now).Seconds()),
	}

	return out, nil
}
