package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewMailer,
	NewAuthService,
	NewUserService,
	NewBlogService,
	NewTaxonomyService,
	NewContactService,
	NewSettingService,
	NewShopService,
	NewCatalogService,
	NewHealthService,
)
