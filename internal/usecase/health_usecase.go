package usecase

import (
	"context"
	"time"

	"go-talent-dashboard/internal/domain"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	storage domain.SlotStorage
	driver  string
}

func NewHealthUsecase(storage domain.SlotStorage, driver string) HealthUsecase {
	return &healthUsecase{storage: storage, driver: driver}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	status := map[string]string{
		"status":  "ok",
		"storage": u.driver,
	}
	if err := u.storage.Ping(ctx); err != nil {
		status["status"] = "degraded"
		status["storage_error"] = "unreachable"
	}
	return status
}
