package command

import (
	"context"
	"time"

	"storefront/internal/core"
	"storefront/internal/dto"
	"storefront/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// SeedAdminHandler 建立第一個管理員帳號，部署後一次性使用
type SeedAdminHandler struct {
	logger      *zap.Logger
	userService *service.UserService
}

func NewSeedAdminHandler(logger *zap.Logger, userService *service.UserService) *SeedAdminHandler {
	return &SeedAdminHandler{
		logger:      logger,
		userService: userService,
	}
}

func (handler *SeedAdminHandler) SeedAdmin(cmd *cobra.Command, args []string) {
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	displayName, _ := cmd.Flags().GetString("name")
	if email == "" || password == "" {
		cmd.PrintErrln("--email 與 --password 為必填")
		return
	}
	if displayName == "" {
		displayName = "Administrator"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	user, err := handler.userService.CreateUser(ctx, &dto.CreateUserDto{
		DisplayName: displayName,
		Email:       email,
		Password:    password,
		Role:        core.RoleAdmin,
		Status:      core.StatusActive,
	})
	if err != nil {
		handler.logger.Error("seed admin failed", zap.String("email", email), zap.Error(err))
		cmd.PrintErrln("建立管理員失敗:", err)
		return
	}

	handler.logger.Info("admin user created",
		zap.String("id", user.ID.Hex()),
		zap.String("email", user.Email),
	)
	cmd.Println("管理員建立成功:", user.ID.Hex())
}
