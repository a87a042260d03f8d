package usecase

import (
	"context"
	"fmt"

	"github.com/naik-shashank/AgriMart/internal/domain"
	"github.com/sirupsen/logrus"
)

type ShopUseCase interface {
	NearbyShops(ctx context.Context, user *domain.User, maxDistance int) ([]domain.Shop, error)
}

type shopUseCase struct {
	shopRepo domain.ShopRepository
	log      *logrus.Logger
}

func NewShopUseCase(repo domain.ShopRepository, logger *logrus.Logger) ShopUseCase {
	return &shopUseCase{
		shopRepo: repo,
		log:      logger,
	}
}

func (uc *shopUseCase) NearbyShops(ctx context.Context, user *domain.User, maxDistance int) ([]domain.Shop, error) {
	if maxDistance <= 0 {
		maxDistance = 5000
	}

	// A caller without stored coordinates simply has no shops nearby.
	point := user.Address.Coordinates
	if !point.Valid() {
		uc.log.Warnf("Use Case: User %s has no usable coordinates, returning no shops", user.ID.Hex())
		return []domain.Shop{}, nil
	}

	uc.log.Infof("Use Case: Searching shops within %dm of user %s", maxDistance, user.ID.Hex())
	shops, err := uc.shopRepo.FindNearby(ctx, point, maxDistance)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to find nearby shops for user %s: %v", user.ID.Hex(), err)
		return nil, fmt.Errorf("could not retrieve nearby shops: %w", err)
	}

	uc.log.Infof("Use Case: Found %d shops near user %s", len(shops), user.ID.Hex())
	return shops, nil
}
