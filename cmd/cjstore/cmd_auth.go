package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jhoicas/cjstore-api/internal/application/dto"
)

func newLoginCmd(app *cliApp) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Iniciar sesión",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := app.session.Login(cmd.Context(), email, password)
			if err != nil {
				return apiMessage(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Hola, %s\n", sess.User.OwnerName)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email")
	cmd.Flags().StringVar(&password, "password", "", "contraseña")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newRegisterCmd(app *cliApp) *cobra.Command {
	var in dto.RegisterRequest
	var store dto.CreateStoreRequest
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Crear cuenta de comerciante (con --store-name también crea la tienda)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if store.Name != "" {
				store.OwnerName = in.OwnerName
				store.Email = in.Email
				in.Store = &store
			}
			sess, err := app.session.Register(cmd.Context(), in)
			if err != nil {
				return apiMessage(err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Cuenta creada: %s\n", sess.User.Email)
			if sess.User.Slug != "" {
				fmt.Fprintf(out, "Tienda: /store/%s\n", sess.User.Slug)
			}
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.OwnerName, "name", "", "nombre del dueño")
	f.StringVar(&in.Email, "email", "", "email")
	f.StringVar(&in.Password, "password", "", "contraseña (mínimo 6)")
	f.StringVar(&store.Name, "store-name", "", "nombre de la tienda")
	f.StringVar(&store.Slug, "slug", "", "slug de la tienda (por defecto, derivado del nombre)")
	f.StringVar(&store.WhatsApp, "whatsapp", "", "WhatsApp con código de país, solo dígitos")
	f.StringVar(&store.Description, "description", "", "descripción de la tienda")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cerrar sesión",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.session.Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Sesión cerrada")
			return nil
		},
	}
}

func newWhoamiCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Mostrar el usuario de la sesión",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.requireSession(); err != nil {
				return err
			}
			sess, err := app.session.Refresh(cmd.Context())
			if err != nil {
				return apiMessage(err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s <%s> (%s)\n", sess.User.OwnerName, sess.User.Email, sess.User.Role)
			if sess.User.Slug != "" {
				fmt.Fprintf(out, "tienda: %s\n", sess.User.Slug)
			}
			return nil
		},
	}
}
