package auth

import (
	"context"
	stderrors "errors"
	"sync"
	"time"

	"github.com/muhammadheryan/toko-api/application/token"
	"github.com/muhammadheryan/toko-api/cmd/config"
	"github.com/muhammadheryan/toko-api/constant"
	"github.com/muhammadheryan/toko-api/model"
	"github.com/muhammadheryan/toko-api/repository/dberr"
	pembelirepo "github.com/muhammadheryan/toko-api/repository/pembeli"
	txrepo "github.com/muhammadheryan/toko-api/repository/tx"
	"github.com/muhammadheryan/toko-api/utils/errors"
	"github.com/muhammadheryan/toko-api/utils/logger"
	"github.com/muhammadheryan/toko-api/utils/password"
	"go.uber.org/zap"
)

type AuthApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (uint64, error)
}

// EventPublisher receives account events once they are committed.
type EventPublisher interface {
	PublishPembeliRegistered(ctx context.Context, msg model.PembeliRegisteredEvent) error
}

type authAppImpl struct {
	config      *config.Config
	pembeliRepo pembelirepo.PembeliRepository
	txRepo      txrepo.TxRepository
	issuer      token.Issuer
	hasher      password.Hasher
	publisher   EventPublisher

	dummyOnce sync.Once
	dummyHash password.Secret
}

// NewAuthApp wires the auth flow. publisher may be nil.
func NewAuthApp(config *config.Config, pembeliRepo pembelirepo.PembeliRepository, txRepo txrepo.TxRepository, issuer token.Issuer, hasher password.Hasher, publisher EventPublisher) AuthApp {
	return &authAppImpl{
		config:      config,
		pembeliRepo: pembeliRepo,
		txRepo:      txRepo,
		issuer:      issuer,
		hasher:      hasher,
		publisher:   publisher,
	}
}

func (s *authAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	log := logger.Ctx(ctx)

	existing, err := s.pembeliRepo.Get(ctx, &model.PembeliFilter{Email: req.Email})
	if err != nil {
		log.Error("[Register] err pembeliRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrConflict)
	}

	hashed, err := s.hasher.Hash(req.Password)
	if stderrors.Is(err, password.ErrTooLong) {
		return nil, errors.SetValidationError(map[string]string{"password": constant.MsgPasswordTooLong})
	}
	if err != nil {
		log.Error("[Register] err hasher.Hash", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		log.Error("[Register] begin tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity, err := s.pembeliRepo.CreateTx(ctx, tx, &model.PembeliEntity{
		Nama:         req.Nama,
		Email:        req.Email,
		PasswordHash: hashed,
		Telepon:      req.Telepon,
		Alamat:       req.Alamat,
	})
	if err != nil {
		// lost the race against a concurrent register with the same email
		if stderrors.Is(err, dberr.ErrDuplicate) {
			return nil, errors.SetCustomError(constant.ErrConflict)
		}
		log.Error("[Register] err pembeliRepo.CreateTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		log.Error("[Register] pembeliRepo.CreateTx stored no row", zap.String("email", req.Email))
		return nil, errors.SetCustomError(constant.ErrRegisterFailed)
	}

	plain, err := s.issuer.IssueTx(ctx, tx, entity.ID, s.config.Auth.TokenLabel)
	if err != nil {
		log.Error("[Register] err issuer.IssueTx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		log.Error("[Register] commit tx", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.publishRegistered(ctx, entity)

	return &model.RegisterResponse{
		Nama:  entity.Nama,
		Token: plain,
	}, nil
}

func (s *authAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	log := logger.Ctx(ctx)

	if req.Email == "" || req.Password == "" {
		s.verifyDummy(req.Password)
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	pembeli, err := s.pembeliRepo.Get(ctx, &model.PembeliFilter{Email: req.Email})
	if err != nil {
		log.Error("[Login] err pembeliRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if pembeli == nil {
		// spend the same bcrypt work as a real mismatch
		s.verifyDummy(req.Password)
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	ok, err := s.hasher.Verify(req.Password, pembeli.PasswordHash)
	if err != nil {
		log.Error("[Login] corrupt credential", zap.Uint64("pembeli_id", pembeli.ID), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		return nil, errors.SetCustomError(constant.ErrInvalidCredentials)
	}

	plain, err := s.issuer.Issue(ctx, pembeli.ID, s.config.Auth.TokenLabel)
	if err != nil {
		log.Error("[Login] err issuer.Issue", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Pembeli: pembeli,
		Token:   plain,
	}, nil
}

func (s *authAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, error) {
	pembeliID, err := s.issuer.Resolve(ctx, tokenString)
	if err != nil {
		if stderrors.Is(err, token.ErrInvalidToken) {
			return 0, errors.SetCustomError(constant.ErrUnauthorize)
		}
		logger.Ctx(ctx).Error("[ValidateToken] err issuer.Resolve", zap.String("error", err.Error()))
		return 0, errors.SetCustomError(constant.ErrInternal)
	}
	return pembeliID, nil
}

func (s *authAppImpl) verifyDummy(plain string) {
	s.dummyOnce.Do(func() {
		h, err := s.hasher.Unusable()
		if err != nil {
			logger.Warn("[Login] err hasher.Unusable", zap.String("error", err.Error()))
			return
		}
		s.dummyHash = h
	})
	if s.dummyHash == "" {
		return
	}
	_, _ = s.hasher.Verify(plain, s.dummyHash)
}

func (s *authAppImpl) publishRegistered(ctx context.Context, entity *model.PembeliEntity) {
	if s.publisher == nil {
		return
	}
	msg := model.PembeliRegisteredEvent{
		PembeliID:    entity.ID,
		Nama:         entity.Nama,
		Email:        entity.Email,
		RegisteredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishPembeliRegistered(ctx, msg); err != nil {
		logger.Ctx(ctx).Error("[Register] publish pembeli registered", zap.Uint64("pembeli_id", entity.ID), zap.String("error", err.Error()))
	}
}
