package command

import (
	commandHandler "storefront/internal/command/handler"

	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(NewCommand, commandHandler.NewSeedAdminHandler)

type Command struct {
	seedAdminHandler *commandHandler.SeedAdminHandler
}

// NewCommand .
func NewCommand(
	seedAdminHandler *commandHandler.SeedAdminHandler,
) *Command {
	return &Command{
		seedAdminHandler: seedAdminHandler,
	}
}

func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	seedAdmin := &cobra.Command{
		Use:   "seed-admin",
		Short: "建立初始管理員帳號",
		Run: func(cmd *cobra.Command, args []string) {
			command, cleanup, err := newCmd()
			if err != nil {
				panic(err)
			}
			defer cleanup()

			command.seedAdminHandler.SeedAdmin(cmd, args)
		},
	}
	seedAdmin.Flags().String("email", "", "管理員信箱")
	seedAdmin.Flags().String("password", "", "管理員密碼")
	seedAdmin.Flags().String("name", "", "顯示名稱")

	rootCmd.AddCommand(seedAdmin)
}
