package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/puntoventa-api/internal/application/auth"
	"github.com/jhoicas/puntoventa-api/internal/application/dto"
	"github.com/jhoicas/puntoventa-api/internal/domain/entity"
	"github.com/jhoicas/puntoventa-api/internal/infrastructure/postgres"
)

var adminIn dto.CreateUserRequest

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Crea un usuario con perfil Administrador",
	Long: `Crea el usuario inicial con perfil Administrador.
La contraseña puede pasarse con --password o con la variable POS_ADMIN_PASSWORD.`,
	RunE: runCreateAdmin,
}

func init() {
	f := createAdminCmd.Flags()
	f.StringVar(&adminIn.Username, "username", "admin", "nombre de usuario")
	f.StringVar(&adminIn.Email, "email", "", "email del administrador")
	f.StringVar(&adminIn.Password, "password", "", "contraseña (mínimo 8 caracteres)")
	f.StringVar(&adminIn.FirstName, "first-name", "Administrador", "nombre")
	f.StringVar(&adminIn.LastName, "last-name", "", "apellido")
	_ = createAdminCmd.MarkFlagRequired("email")
}

func runCreateAdmin(cmd *cobra.Command, _ []string) error {
	in := adminIn
	in.ProfileName = entity.ProfileAdmin
	if in.Password == "" {
		in.Password = os.Getenv("POS_ADMIN_PASSWORD")
	}
	if len(in.Password) < 8 {
		return errors.New("la contraseña debe tener al menos 8 caracteres")
	}

	ctx := cmd.Context()
	pool, _, log, err := openPool(ctx)
	if err != nil {
		return err
	}
	defer pool.Close()

	uc := auth.NewUserUseCase(postgres.NewUserRepository(pool), nil)
	user, err := uc.Bootstrap(ctx, in)
	if err != nil {
		return err
	}
	log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("administrador creado")
	return nil
}
