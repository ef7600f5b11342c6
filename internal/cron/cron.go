package cron

import (
	"context"
	"time"

	"storefront/config"
	"storefront/internal/database/mongodb/repository"

	"github.com/google/wire"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var ProviderSet = wire.NewSet(NewCron)

const defaultPurgeSchedule = "0 0 4 * * *" // 每天 04:00

// purgeTarget 單一集合的硬刪除入口
type purgeTarget struct {
	name  string
	purge func(ctx context.Context, cutoff time.Time) (int64, error)
}

type Cron struct {
	logger  *zap.Logger
	config  *config.Configuration
	server  *cron.Cron
	targets []purgeTarget
}

func NewCron(
	logger *zap.Logger,
	conf *config.Configuration,
	userRepo *repository.UserRepository,
	blogRepo *repository.BlogRepository,
	tagRepo *repository.TagRepository,
	catRepo *repository.CategoryRepository,
	contactRepo *repository.ContactRepository,
	settingRepo *repository.SettingRepository,
) *Cron {
	server := cron.New(
		cron.WithSeconds(),
	)

	return &Cron{
		logger: logger,
		config: conf,
		server: server,
		targets: []purgeTarget{
			{name: "users", purge: userRepo.Store().PurgeDeletedBefore},
			{name: "blogs", purge: blogRepo.Store().PurgeDeletedBefore},
			{name: "tags", purge: tagRepo.Store().PurgeDeletedBefore},
			{name: "categories", purge: catRepo.Store().PurgeDeletedBefore},
			{name: "contacts", purge: contactRepo.Store().PurgeDeletedBefore},
			{name: "settings", purge: settingRepo.Store().PurgeDeletedBefore},
		},
	}
}

func (c *Cron) Run() error {
	schedule := c.config.Tenant.PurgeSchedule
	if schedule == "" {
		schedule = defaultPurgeSchedule
	}
	if _, err := c.server.AddFunc(schedule, c.purgeSoftDeleted); err != nil {
		return err
	}

	c.server.Start()
	return nil
}

func (c *Cron) Stop(ctx context.Context) error {
	stopCtx := c.server.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

// purgeSoftDeleted 硬刪除超過保留天數的軟刪除文件
func (c *Cron) purgeSoftDeleted() {
	retentionDays := c.config.Tenant.PurgeRetentionDays
	if retentionDays <= 0 {
		retentionDays = 30
	}
	cutoff := time.Now().AddDate(0, 0, -retentionDays)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	for _, target := range c.targets {
		purged, err := target.purge(ctx, cutoff)
		if err != nil {
			c.logger.Error("purge soft-deleted documents failed",
				zap.String("collection", target.name),
				zap.Error(err),
			)
			continue
		}
		if purged > 0 {
			c.logger.Info("purged soft-deleted documents",
				zap.String("collection", target.name),
				zap.Int64("purged", purged),
				zap.Time("cutoff", cutoff),
			)
		}
	}
}
