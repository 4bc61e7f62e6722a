package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jhoicas/cjstore-api/internal/application/dto"
)

func newStoreCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Perfil de la tienda",
	}
	cmd.AddCommand(newStoreShowCmd(app), newStoreCreateCmd(app), newStoreUpdateCmd(app),
		newStoreListCmd(app), newStoreLinkCmd(app), newStorePDFCmd(app))
	return cmd
}

func printStore(w io.Writer, s *dto.StoreResponse) {
	fmt.Fprintf(w, "%s (/store/%s)\n", s.Name, s.Slug)
	fmt.Fprintf(w, "  id:        %s\n", s.ID)
	fmt.Fprintf(w, "  dueño:     %s <%s>\n", s.OwnerName, s.Email)
	fmt.Fprintf(w, "  whatsapp:  %s\n", s.WhatsApp)
	fmt.Fprintf(w, "  tema:      %s\n", s.Theme)
	fmt.Fprintf(w, "  visitas:   %d\n", s.Visits)
	if s.Description != "" {
		fmt.Fprintf(w, "  %s\n", s.Description)
	}
}

func newStoreShowCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "show [slug]",
		Short: "Mostrar una tienda (por defecto, la propia)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug := ""
			if len(args) == 1 {
				slug = args[0]
			} else {
				sess, err := app.requireSession()
				if err != nil {
					return err
				}
				slug = sess.User.Slug
				if slug == "" {
					return fmt.Errorf("la cuenta no tiene tienda")
				}
			}
			s, err := app.directory.BySlug(cmd.Context(), slug)
			if err != nil {
				return apiMessage(err)
			}
			printStore(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func newStoreListCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Listar tiendas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			stores, err := app.directory.Load(cmd.Context())
			if err != nil {
				return apiMessage(err)
			}
			out := cmd.OutOrStdout()
			for _, s := range stores {
				fmt.Fprintf(out, "%-24s %-30s %6d visitas\n", s.Slug, s.Name, s.Visits)
			}
			return nil
		},
	}
}

func newStoreCreateCmd(app *cliApp) *cobra.Command {
	var in dto.CreateStoreRequest
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Crear la tienda de la cuenta",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := app.requireSession()
			if err != nil {
				return err
			}
			if in.OwnerName == "" {
				in.OwnerName = sess.User.OwnerName
			}
			if in.Email == "" {
				in.Email = sess.User.Email
			}
			s, err := app.directory.Create(cmd.Context(), in)
			if err != nil {
				return apiMessage(err)
			}
			// el token debe llevar la tienda nueva
			if _, err := app.session.LinkStore(cmd.Context(), s.ID); err != nil {
				return apiMessage(err)
			}
			printStore(cmd.OutOrStdout(), s)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Name, "name", "", "nombre")
	f.StringVar(&in.Slug, "slug", "", "slug (por defecto, derivado del nombre)")
	f.StringVar(&in.WhatsApp, "whatsapp", "", "WhatsApp con código de país, solo dígitos")
	f.StringVar(&in.Description, "description", "", "descripción")
	f.StringVar(&in.Logo, "logo", "", "URL del logo")
	f.StringVar(&in.Theme, "theme", "light", "light o dark")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("whatsapp")
	return cmd
}

func newStoreUpdateCmd(app *cliApp) *cobra.Command {
	var name, slug, ownerName, email, whatsapp, logo, description, theme string
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Actualizar el perfil de la tienda propia (solo los flags indicados)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			storeID, err := app.ownStoreID()
			if err != nil {
				return err
			}
			var in dto.UpdateStoreRequest
			f := cmd.Flags()
			set := func(flag string, v *string) *string {
				if f.Changed(flag) {
					return v
				}
				return nil
			}
			in.Name = set("name", &name)
			in.Slug = set("slug", &slug)
			in.OwnerName = set("owner-name", &ownerName)
			in.Email = set("email", &email)
			in.WhatsApp = set("whatsapp", &whatsapp)
			in.Logo = set("logo", &logo)
			in.Description = set("description", &description)
			in.Theme = set("theme", &theme)

			s, err := app.directory.Update(cmd.Context(), storeID, in)
			if err != nil {
				return apiMessage(err)
			}
			if _, err := app.session.Refresh(cmd.Context()); err != nil {
				return apiMessage(err)
			}
			printStore(cmd.OutOrStdout(), s)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&name, "name", "", "nombre")
	f.StringVar(&slug, "slug", "", "slug")
	f.StringVar(&ownerName, "owner-name", "", "nombre del dueño")
	f.StringVar(&email, "email", "", "email de contacto")
	f.StringVar(&whatsapp, "whatsapp", "", "WhatsApp")
	f.StringVar(&logo, "logo", "", "URL del logo")
	f.StringVar(&description, "description", "", "descripción")
	f.StringVar(&theme, "theme", "", "light o dark")
	return cmd
}

func newStoreLinkCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "link <storeId>",
		Short: "Asociar la sesión a una tienda",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := app.session.LinkStore(cmd.Context(), args[0])
			if err != nil {
				return apiMessage(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Sesión asociada a %s\n", sess.User.StoreID)
			return nil
		},
	}
}

func newStorePDFCmd(app *cliApp) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "catalog-pdf",
		Short: "Descargar la lista de precios en PDF",
		RunE: func(cmd *cobra.Command, _ []string) error {
			storeID, err := app.ownStoreID()
			if err != nil {
				return err
			}
			pdf, err := app.api.CatalogPDF(cmd.Context(), storeID)
			if err != nil {
				return apiMessage(err)
			}
			if err := os.WriteFile(outPath, pdf, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Guardado en %s (%d bytes)\n", outPath, len(pdf))
			return nil
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "catalogo.pdf", "archivo de salida")
	return cmd
}
