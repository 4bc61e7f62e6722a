package main

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/cjstore-api/internal/application/dto"
)

func newProductsCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "products",
		Aliases: []string{"product"},
		Short:   "Catálogo de la tienda",
	}
	cmd.AddCommand(newProductsListCmd(app), newProductsAddCmd(app), newProductsUpdateCmd(app),
		newProductsDeleteCmd(app), newProductsImageCmd(app))
	return cmd
}

func printProducts(w io.Writer, list []dto.ProductResponse) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNOMBRE\tCATEGORÍA\tPRECIO\tSTOCK\tACTIVO")
	for _, p := range list {
		active := "sí"
		if !p.Active {
			active = "no"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%s\n", p.ID, p.Name, p.Category, p.Price.StringFixed(2), p.Stock, active)
	}
	_ = tw.Flush()
}

func newProductsListCmd(app *cliApp) *cobra.Command {
	var storeID, query, category, sortKey string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Listar productos (con filtros, solo los activos)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if storeID == "" {
				id, err := app.ownStoreID()
				if err != nil {
					return err
				}
				storeID = id
			}
			list, err := app.catalog.Load(cmd.Context(), storeID)
			if err != nil {
				return apiMessage(err)
			}
			if query != "" || category != "" || sortKey != "" {
				list = app.catalog.Search(query, category, sortKey)
			}
			printProducts(cmd.OutOrStdout(), list)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&storeID, "store", "", "ID de la tienda (por defecto, la propia)")
	f.StringVarP(&query, "query", "q", "", "texto a buscar")
	f.StringVar(&category, "category", "", "categoría exacta (All = todas)")
	f.StringVar(&sortKey, "sort", "", "price-asc, price-desc o name")
	return cmd
}

func newProductsAddCmd(app *cliApp) *cobra.Command {
	var in dto.CreateProductRequest
	var price string
	var inactive bool
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Agregar producto a la tienda propia",
		RunE: func(cmd *cobra.Command, _ []string) error {
			storeID, err := app.ownStoreID()
			if err != nil {
				return err
			}
			p, err := decimal.NewFromString(price)
			if err != nil {
				return fmt.Errorf("precio inválido %q", price)
			}
			in.StoreID = storeID
			in.Price = p
			if inactive {
				active := false
				in.Active = &active
			}
			created, err := app.catalog.Add(cmd.Context(), in)
			if err != nil {
				return apiMessage(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Producto creado: %s\n", created.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Name, "name", "", "nombre")
	f.StringVar(&in.Description, "description", "", "descripción")
	f.StringVar(&in.Category, "category", "", "categoría")
	f.StringVar(&price, "price", "", "precio, p. ej. 599.00")
	f.IntVar(&in.Stock, "stock", 0, "unidades en stock")
	f.StringVar(&in.Image, "image", "", "URL de la imagen")
	f.BoolVar(&inactive, "inactive", false, "crear oculto en la vitrina")
	for _, name := range []string{"name", "description", "category", "price"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newProductsUpdateCmd(app *cliApp) *cobra.Command {
	var name, description, category, price, image string
	var stock int
	var active bool
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Actualizar un producto (solo los flags indicados)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := cmd.Flags()
			var in dto.UpdateProductRequest
			if f.Changed("name") {
				in.Name = &name
			}
			if f.Changed("description") {
				in.Description = &description
			}
			if f.Changed("category") {
				in.Category = &category
			}
			if f.Changed("image") {
				in.Image = &image
			}
			if f.Changed("stock") {
				in.Stock = &stock
			}
			if f.Changed("active") {
				in.Active = &active
			}
			if f.Changed("price") {
				p, err := decimal.NewFromString(price)
				if err != nil {
					return fmt.Errorf("precio inválido %q", price)
				}
				in.Price = &p
			}
			p, err := app.catalog.Update(cmd.Context(), args[0], in)
			if err != nil {
				return apiMessage(err)
			}
			printProducts(cmd.OutOrStdout(), []dto.ProductResponse{*p})
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&name, "name", "", "nombre")
	f.StringVar(&description, "description", "", "descripción")
	f.StringVar(&category, "category", "", "categoría")
	f.StringVar(&price, "price", "", "precio")
	f.IntVar(&stock, "stock", 0, "stock")
	f.StringVar(&image, "image", "", "URL de la imagen")
	f.BoolVar(&active, "active", true, "visible en la vitrina")
	return cmd
}

func newProductsDeleteCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Eliminar un producto",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.catalog.Remove(cmd.Context(), args[0]); err != nil {
				return apiMessage(err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Producto %s eliminado\n", args[0])
			return nil
		},
	}
}

func newProductsImageCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "upload-image <id> <archivo>",
		Short: "Subir la imagen de un producto",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()
			contentType := mime.TypeByExtension(filepath.Ext(args[1]))
			if contentType == "" {
				contentType = "application/octet-stream"
			}
			url, err := app.api.UploadImage(cmd.Context(), args[0], filepath.Base(args[1]), contentType, f)
			if err != nil {
				return apiMessage(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}
}
