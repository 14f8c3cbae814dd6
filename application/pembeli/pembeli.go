package pembeli

import (
	"context"
	stderrors "errors"

	"github.com/muhammadheryan/toko-api/application/token"
	"github.com/muhammadheryan/toko-api/constant"
	"github.com/muhammadheryan/toko-api/model"
	"github.com/muhammadheryan/toko-api/repository/dberr"
	pembelirepo "github.com/muhammadheryan/toko-api/repository/pembeli"
	produkrepo "github.com/muhammadheryan/toko-api/repository/produk"
	txrepo "github.com/muhammadheryan/toko-api/repository/tx"
	"github.com/muhammadheryan/toko-api/utils/errors"
	"github.com/muhammadheryan/toko-api/utils/logger"
	"github.com/muhammadheryan/toko-api/utils/password"
	"go.uber.org/zap"
)

type PembeliApp interface {
	List(ctx context.Context) ([]model.PembeliEntity, error)
	Get(ctx context.Context, id uint64) (*model.PembeliDetail, error)
	Profile(ctx context.Context, id uint64) (*model.PembeliEntity, error)
	Create(ctx context.Context, req *model.PembeliRequest) (*model.PembeliEntity, error)
	Update(ctx context.Context, id uint64, req *model.PembeliRequest) (*model.PembeliEntity, error)
	Delete(ctx context.Context, id uint64) error
}

type pembeliAppImpl struct {
	pembeliRepo pembelirepo.PembeliRepository
	produkRepo  produkrepo.ProdukRepository
	txRepo      txrepo.TxRepository
	issuer      token.Issuer
	hasher      password.Hasher
}

func NewPembeliApp(pembeliRepo pembelirepo.PembeliRepository, produkRepo produkrepo.ProdukRepository, txRepo txrepo.TxRepository, issuer token.Issuer, hasher password.Hasher) PembeliApp {
	return &pembeliAppImpl{
		pembeliRepo: pembeliRepo,
		produkRepo:  produkRepo,
		txRepo:      txRepo,
		issuer:      issuer,
		hasher:      hasher,
	}
}

func (s *pembeliAppImpl) List(ctx context.Context) ([]model.PembeliEntity, error) {
	items, err := s.pembeliRepo.List(ctx)
	if err != nil {
		logger.Ctx(ctx).Error("[ListPembeli] error pembeliRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *pembeliAppImpl) Get(ctx context.Context, id uint64) (*model.PembeliDetail, error) {
	log := logger.Ctx(ctx)

	entity, err := s.pembeliRepo.Get(ctx, &model.PembeliFilter{ID: id})
	if err != nil {
		log.Error("[GetPembeli] error pembeliRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	produk, err := s.produkRepo.ListByPembeli(ctx, id)
	if err != nil {
		log.Error("[GetPembeli] error produkRepo.ListByPembeli", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.PembeliDetail{
		PembeliEntity: *entity,
		Produk:        produk,
	}, nil
}

// Profile returns the pembeli bound to the caller's token. A token whose
// owner is gone is treated as unauthenticated.
func (s *pembeliAppImpl) Profile(ctx context.Context, id uint64) (*model.PembeliEntity, error) {
	entity, err := s.pembeliRepo.Get(ctx, &model.PembeliFilter{ID: id})
	if err != nil {
		logger.Ctx(ctx).Error("[ProfilePembeli] error pembeliRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}
	return entity, nil
}

// Create stores a pembeli on behalf of an authenticated caller. Without a
// password the account gets an unusable hash and cannot log in.
func (s *pembeliAppImpl) Create(ctx context.Context, req *model.PembeliRequest) (*model.PembeliEntity, error) {
	log := logger.Ctx(ctx)

	existing, err := s.pembeliRepo.Get(ctx, &model.PembeliFilter{Email: req.Email})
	if err != nil {
		log.Error("[CreatePembeli] error pembeliRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrConflict)
	}

	hashed, err := s.hashOrUnusable(req.Password)
	if stderrors.Is(err, password.ErrTooLong) {
		return nil, errors.SetValidationError(map[string]string{"password": constant.MsgPasswordTooLong})
	}
	if err != nil {
		log.Error("[CreatePembeli] error hashing password", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	entity, err := s.pembeliRepo.Create(ctx, &model.PembeliEntity{
		Nama:         req.Nama,
		Email:        req.Email,
		PasswordHash: hashed,
		Telepon:      req.Telepon,
		Alamat:       req.Alamat,
	})
	if err != nil {
		if stderrors.Is(err, dberr.ErrDuplicate) {
			return nil, errors.SetCustomError(constant.ErrConflict)
		}
		log.Error("[CreatePembeli] error pembeliRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrRegisterFailed)
	}
	return entity, nil
}

func (s *pembeliAppImpl) Update(ctx context.Context, id uint64, req *model.PembeliRequest) (*model.PembeliEntity, error) {
	log := logger.Ctx(ctx)

	entity, err := s.pembeliRepo.Get(ctx, &model.PembeliFilter{ID: id})
	if err != nil {
		log.Error("[UpdatePembeli] error pembeliRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return nil, errors.SetCustomError(constant.ErrPembeliNotFound)
	}

	if req.Email != entity.Email {
		other, err := s.pembeliRepo.Get(ctx, &model.PembeliFilter{Email: req.Email})
		if err != nil {
			log.Error("[UpdatePembeli] error pembeliRepo.Get email", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if other != nil && other.ID != id {
			return nil, errors.SetCustomError(constant.ErrConflict)
		}
	}

	entity.Nama = req.Nama
	entity.Email = req.Email
	entity.Telepon = req.Telepon
	entity.Alamat = req.Alamat
	// an empty hash leaves the stored one untouched
	entity.PasswordHash = ""
	if req.Password != "" {
		hashed, err := s.hasher.Hash(req.Password)
		if stderrors.Is(err, password.ErrTooLong) {
			return nil, errors.SetValidationError(map[string]string{"password": constant.MsgPasswordTooLong})
		}
		if err != nil {
			log.Error("[UpdatePembeli] error hasher.Hash", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		entity.PasswordHash = hashed
	}

	if err := s.pembeliRepo.Update(ctx, entity); err != nil {
		if stderrors.Is(err, dberr.ErrDuplicate) {
			return nil, errors.SetCustomError(constant.ErrConflict)
		}
		log.Error("[UpdatePembeli] error pembeliRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	entity.PasswordHash = ""
	return entity, nil
}

// Delete removes the pembeli with its tokens in one transaction. The row
// lock keeps new tokens from being bound until the delete commits; products
// go with the row through the foreign key.
func (s *pembeliAppImpl) Delete(ctx context.Context, id uint64) error {
	log := logger.Ctx(ctx)

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		log.Error("[DeletePembeli] begin tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	entity, err := s.pembeliRepo.GetForUpdateTx(ctx, tx, id)
	if err != nil {
		log.Error("[DeletePembeli] error pembeliRepo.GetForUpdateTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if entity == nil {
		return errors.SetCustomError(constant.ErrPembeliNotFound)
	}

	hashes, err := s.issuer.RevokeAllTx(ctx, tx, id)
	if err != nil {
		log.Error("[DeletePembeli] error issuer.RevokeAllTx", zap.Uint64("pembeli_id", id), zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	deleted, err := s.pembeliRepo.DeleteTx(ctx, tx, id)
	if err != nil {
		log.Error("[DeletePembeli] error pembeliRepo.DeleteTx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrPembeliNotFound)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		log.Error("[DeletePembeli] commit tx", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	committed = true

	s.issuer.Evict(ctx, hashes...)
	return nil
}

func (s *pembeliAppImpl) hashOrUnusable(plain string) (password.Secret, error) {
	if plain == "" {
		return s.hasher.Unusable()
	}
	return s.hasher.Hash(plain)
}
