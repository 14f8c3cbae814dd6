// Package token issues and resolves opaque bearer tokens bound to a pembeli.
//
// The plaintext token is handed to the caller once; only its SHA-256 is
// persisted. MySQL holds the bindings, Redis caches hash -> owner lookups.
package token

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/toko-api/cmd/config"
	"github.com/muhammadheryan/toko-api/constant"
	"github.com/muhammadheryan/toko-api/model"
	"github.com/muhammadheryan/toko-api/repository/dberr"
	redisrepo "github.com/muhammadheryan/toko-api/repository/redis"
	tokenrepo "github.com/muhammadheryan/toko-api/repository/token"
	"github.com/muhammadheryan/toko-api/utils/logger"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

const (
	tokenBytes    = 32
	issueAttempts = 3
)

// ErrInvalidToken is returned when a token has no binding.
var ErrInvalidToken = errors.New("invalid token")

type Issuer interface {
	Issue(ctx context.Context, pembeliID uint64, label string) (string, error)
	IssueTx(ctx context.Context, tx *sqlx.Tx, pembeliID uint64, label string) (string, error)
	Resolve(ctx context.Context, token string) (uint64, error)
	Revoke(ctx context.Context, token string) error
	RevokeAllTx(ctx context.Context, tx *sqlx.Tx, pembeliID uint64) ([]string, error)
	Evict(ctx context.Context, hashes ...string)
}

type issuerImpl struct {
	cacheTTL  time.Duration
	tokenRepo tokenrepo.TokenRepository
	redisRepo redisrepo.Repository
}

func NewIssuer(cfg *config.Config, tokenRepo tokenrepo.TokenRepository, redisRepo redisrepo.Repository) Issuer {
	return &issuerImpl{
		cacheTTL:  cfg.Auth.TokenCacheTTL,
		tokenRepo: tokenRepo,
		redisRepo: redisRepo,
	}
}

// Generate returns a fresh random token and the hash stored for it.
func Generate() (token, hash string, err error) {
	buf := make([]byte, tokenBytes)
	if _, err = rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("read random token: %w", err)
	}
	token = hex.EncodeToString(buf)
	return token, Hash(token), nil
}

// Hash is the stored form of a bearer token.
func Hash(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func (s *issuerImpl) Issue(ctx context.Context, pembeliID uint64, label string) (string, error) {
	return s.issue(ctx, pembeliID, label, func(ent *model.TokenEntity) error {
		return s.tokenRepo.Create(ctx, ent)
	})
}

func (s *issuerImpl) IssueTx(ctx context.Context, tx *sqlx.Tx, pembeliID uint64, label string) (string, error) {
	return s.issue(ctx, pembeliID, label, func(ent *model.TokenEntity) error {
		return s.tokenRepo.CreateTx(ctx, tx, ent)
	})
}

// issue retries on a token_hash collision, which the unique index reports as ErrDuplicate.
func (s *issuerImpl) issue(ctx context.Context, pembeliID uint64, label string, store func(*model.TokenEntity) error) (string, error) {
	if label == "" {
		label = constant.DefaultTokenLabel
	}

	var plain string
	attempt := 0
	backoff := retry.WithMaxRetries(issueAttempts-1, retry.NewConstant(time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		token, hash, err := Generate()
		if err != nil {
			return err
		}

		err = store(&model.TokenEntity{
			PembeliID: pembeliID,
			Name:      label,
			TokenHash: hash,
			CreatedAt: time.Now().UTC(),
		})
		if errors.Is(err, dberr.ErrDuplicate) {
			logger.Ctx(ctx).Warn("[Issue] token hash collision, retrying", zap.Int("attempt", attempt))
			return retry.RetryableError(err)
		}
		if err != nil {
			return fmt.Errorf("store token: %w", err)
		}

		plain = token
		return nil
	})
	if err != nil {
		return "", err
	}
	return plain, nil
}

func (s *issuerImpl) Resolve(ctx context.Context, token string) (uint64, error) {
	if token == "" {
		return 0, ErrInvalidToken
	}
	hash := Hash(token)

	ownerID, err := s.redisRepo.GetTokenOwner(ctx, hash)
	if err == nil && ownerID != 0 {
		return ownerID, nil
	}
	if err != nil && !errors.Is(err, redisrepo.ErrCacheMiss) {
		logger.Ctx(ctx).Warn("[Resolve] err redisRepo.GetTokenOwner", zap.String("error", err.Error()))
	}

	ent, err := s.tokenRepo.GetByHash(ctx, hash)
	if err != nil {
		return 0, fmt.Errorf("lookup token: %w", err)
	}
	if ent == nil {
		return 0, ErrInvalidToken
	}

	if err := s.redisRepo.SetTokenOwner(ctx, hash, ent.PembeliID, s.cacheTTL); err != nil {
		logger.Ctx(ctx).Warn("[Resolve] err redisRepo.SetTokenOwner", zap.String("error", err.Error()))
	}
	return ent.PembeliID, nil
}

func (s *issuerImpl) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return ErrInvalidToken
	}
	hash := Hash(token)

	deleted, err := s.tokenRepo.DeleteByHash(ctx, hash)
	if err != nil {
		return fmt.Errorf("delete token: %w", err)
	}

	if err := s.redisRepo.DeleteTokenOwner(ctx, hash); err != nil {
		logger.Ctx(ctx).Warn("[Revoke] err redisRepo.DeleteTokenOwner", zap.String("error", err.Error()))
	}
	if !deleted {
		return ErrInvalidToken
	}
	return nil
}

// RevokeAllTx deletes every token row of a pembeli inside tx and returns the
// deleted hashes. Cached entries stay until Evict runs after commit.
func (s *issuerImpl) RevokeAllTx(ctx context.Context, tx *sqlx.Tx, pembeliID uint64) ([]string, error) {
	hashes, err := s.tokenRepo.ListHashesByPembeliTx(ctx, tx, pembeliID)
	if err != nil {
		return nil, fmt.Errorf("list tokens: %w", err)
	}
	if _, err := s.tokenRepo.DeleteByPembeliTx(ctx, tx, pembeliID); err != nil {
		return nil, fmt.Errorf("delete tokens: %w", err)
	}
	return hashes, nil
}

// Evict drops cached owner lookups. A failure only delays revocation until the TTL.
func (s *issuerImpl) Evict(ctx context.Context, hashes ...string) {
	if len(hashes) == 0 {
		return
	}
	if err := s.redisRepo.DeleteTokenOwner(ctx, hashes...); err != nil {
		logger.Ctx(ctx).Warn("[Evict] err redisRepo.DeleteTokenOwner", zap.Int("count", len(hashes)), zap.String("error", err.Error()))
	}
}
