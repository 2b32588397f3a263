package service

import (
	"context"
	"errors"
	"fmt"

	"antique-models-store/internal/apperr"
	"antique-models-store/internal/dto"
	"antique-models-store/internal/logging"
	"antique-models-store/internal/model"
	"antique-models-store/internal/repository"
	"antique-models-store/internal/storage"
	"antique-models-store/internal/token"
)

type DownloadService interface {
	Download(ctx context.Context, modelID, tokenString string) (*dto.DownloadResult, error)
}

type downloadServiceImpl struct {
	issuer       *token.Issuer
	modelRepo    repository.ModelRepository
	purchaseRepo repository.PurchaseRepository
	store        storage.Store
	log          logging.Logger
}

func NewDownloadService(
	issuer *token.Issuer,
	modelRepo repository.ModelRepository,
	purchaseRepo repository.PurchaseRepository,
	store storage.Store,
	log logging.Logger,
) DownloadService {
	return &downloadServiceImpl{
		issuer:       issuer,
		modelRepo:    modelRepo,
		purchaseRepo: purchaseRepo,
		store:        store,
		log:          log,
	}
}

// Download verifies the bearer token, enforces expiry, the per-purchase
// download ceiling and the model binding, then streams the asset bytes.
func (s *downloadServiceImpl) Download(ctx context.Context, modelID, tokenString string) (*dto.DownloadResult, error) {
	if tokenString == "" {
		return nil, apperr.ErrUnauthenticated
	}

	claims, err := s.issuer.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	// claim-level expiry, checked independently of the jwt library
	if s.issuer.Expired(claims) {
		return nil, apperr.ErrTokenExpired
	}

	if claims.DownloadCount >= model.DownloadLimit {
		return nil, apperr.ErrLimitExceeded
	}

	// a token bound to one purchase must not unlock a different model
	if claims.ModelID != modelID {
		return nil, apperr.ErrModelMismatch
	}

	m, err := s.modelRepo.FindByID(ctx, modelID)
	if err != nil {
		return nil, err
	}

	count, err := s.bumpLedger(ctx, claims)
	if err != nil {
		return nil, err
	}

	data, err := s.store.Get(ctx, m.FileURL)
	if err != nil {
		return nil, fmt.Errorf("load asset for %s: %w", modelID, err)
	}

	s.log.Info(ctx, "download delivered",
		"modelId", modelID,
		"purchaseId", claims.PurchaseID,
		"downloadCount", count,
	)

	return &dto.DownloadResult{
		Data:          data,
		FileName:      m.ID + ".glb",
		ContentType:   "model/gltf-binary",
		DownloadCount: count,
		DownloadLimit: model.DownloadLimit,
	}, nil
}

// bumpLedger applies the atomic increment-with-ceiling on the purchase row.
// Tokens minted before the ledger existed have no row; for those the
// embedded count is the only signal available.
func (s *downloadServiceImpl) bumpLedger(ctx context.Context, claims *token.Claims) (int32, error) {
	count, err := s.purchaseRepo.IncrementDownloadCount(ctx, claims.PurchaseID, model.DownloadLimit)
	if err == nil {
		return count, nil
	}

	if errors.Is(err, apperr.ErrLimitExceeded) {
		return 0, apperr.ErrLimitExceeded
	}
	if errors.Is(err, apperr.ErrNotFound) {
		s.log.Warn(ctx, "no purchase ledger row for token", "purchaseId", claims.PurchaseID)
		return claims.DownloadCount + 1, nil
	}

	return 0, fmt.Errorf("increment download count for %s: %w", claims.PurchaseID, err)
}
