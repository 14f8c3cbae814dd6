package produk

import (
	"context"
	stderrors "errors"

	"github.com/muhammadheryan/toko-api/constant"
	"github.com/muhammadheryan/toko-api/model"
	"github.com/muhammadheryan/toko-api/repository/dberr"
	pembelirepo "github.com/muhammadheryan/toko-api/repository/pembeli"
	produkrepo "github.com/muhammadheryan/toko-api/repository/produk"
	"github.com/muhammadheryan/toko-api/utils/errors"
	"github.com/muhammadheryan/toko-api/utils/logger"
	"go.uber.org/zap"
)

const msgPembeliIDInvalid = "pembeli_id yang dipilih tidak valid"

type ProdukApp interface {
	List(ctx context.Context) ([]model.ProdukDetail, error)
	Get(ctx context.Context, id uint64) (*model.ProdukDetail, error)
	Create(ctx context.Context, req *model.ProdukRequest) (*model.ProdukEntity, error)
	Update(ctx context.Context, id uint64, req *model.ProdukRequest) (*model.ProdukEntity, error)
	Delete(ctx context.Context, id uint64) error
}

type produkAppImpl struct {
	produkRepo  produkrepo.ProdukRepository
	pembeliRepo pembelirepo.PembeliRepository
}

func NewProdukApp(produkRepo produkrepo.ProdukRepository, pembeliRepo pembelirepo.PembeliRepository) ProdukApp {
	return &produkAppImpl{
		produkRepo:  produkRepo,
		pembeliRepo: pembeliRepo,
	}
}

func (s *produkAppImpl) List(ctx context.Context) ([]model.ProdukDetail, error) {
	items, err := s.produkRepo.List(ctx)
	if err != nil {
		logger.Ctx(ctx).Error("[ListProduk] error produkRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *produkAppImpl) Get(ctx context.Context, id uint64) (*model.ProdukDetail, error) {
	result, err := s.produkRepo.GetByID(ctx, id)
	if err != nil {
		logger.Ctx(ctx).Error("[GetProduk] error produkRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if result == nil {
		return nil, errors.SetCustomError(constant.ErrProdukNotFound)
	}
	return result, nil
}

func (s *produkAppImpl) Create(ctx context.Context, req *model.ProdukRequest) (*model.ProdukEntity, error) {
	if err := s.checkPembeli(ctx, req.PembeliID); err != nil {
		return nil, err
	}

	entity, err := s.produkRepo.Create(ctx, toEntity(req))
	if err != nil {
		return nil, s.storeError(ctx, "[CreateProduk] error produkRepo.Create", err)
	}
	return entity, nil
}

func (s *produkAppImpl) Update(ctx context.Context, id uint64, req *model.ProdukRequest) (*model.ProdukEntity, error) {
	existing, err := s.produkRepo.GetByID(ctx, id)
	if err != nil {
		logger.Ctx(ctx).Error("[UpdateProduk] error produkRepo.GetByID", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing == nil {
		return nil, errors.SetCustomError(constant.ErrProdukNotFound)
	}

	if err := s.checkPembeli(ctx, req.PembeliID); err != nil {
		return nil, err
	}

	entity := toEntity(req)
	entity.ID = id
	entity.CreatedAt = existing.CreatedAt
	if err := s.produkRepo.Update(ctx, entity); err != nil {
		return nil, s.storeError(ctx, "[UpdateProduk] error produkRepo.Update", err)
	}
	return entity, nil
}

func (s *produkAppImpl) Delete(ctx context.Context, id uint64) error {
	deleted, err := s.produkRepo.Delete(ctx, id)
	if err != nil {
		logger.Ctx(ctx).Error("[DeleteProduk] error produkRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if !deleted {
		return errors.SetCustomError(constant.ErrProdukNotFound)
	}
	return nil
}

// checkPembeli rejects a pembeli_id that does not reference an existing row.
func (s *produkAppImpl) checkPembeli(ctx context.Context, pembeliID *uint64) error {
	if pembeliID == nil {
		return nil
	}
	if *pembeliID == 0 {
		return pembeliIDInvalid()
	}

	owner, err := s.pembeliRepo.Get(ctx, &model.PembeliFilter{ID: *pembeliID})
	if err != nil {
		logger.Ctx(ctx).Error("[checkPembeli] error pembeliRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if owner == nil {
		return pembeliIDInvalid()
	}
	return nil
}

func (s *produkAppImpl) storeError(ctx context.Context, msg string, err error) error {
	switch {
	case stderrors.Is(err, dberr.ErrDuplicate):
		return errors.SetCustomError(constant.ErrKodeExists)
	case stderrors.Is(err, dberr.ErrForeignKey):
		// pembeli removed between the check and the write
		return pembeliIDInvalid()
	}
	logger.Ctx(ctx).Error(msg, zap.String("error", err.Error()))
	return errors.SetCustomError(constant.ErrInternal)
}

func pembeliIDInvalid() error {
	return errors.SetValidationError(map[string]string{"pembeli_id": msgPembeliIDInvalid})
}

func toEntity(req *model.ProdukRequest) *model.ProdukEntity {
	entity := &model.ProdukEntity{
		Nama:      req.Nama,
		Kode:      req.Kode,
		Deskripsi: req.Deskripsi,
		PembeliID: req.PembeliID,
	}
	if req.Harga != nil {
		entity.Harga = *req.Harga
	}
	if req.Stok != nil {
		entity.Stok = *req.Stok
	}
	return entity
}
