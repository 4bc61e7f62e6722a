package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jhoicas/cjstore-api/internal/infrastructure/remote"
)

func newStorefrontCmd(app *cliApp) *cobra.Command {
	var q remote.StorefrontQuery
	cmd := &cobra.Command{
		Use:   "storefront <slug>",
		Short: "Ver la vitrina pública de una tienda",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.api.Storefront(cmd.Context(), args[0], q)
			if err != nil {
				return apiMessage(err)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s: %s\n", out.Store.Name, out.Store.Description)
			fmt.Fprintf(w, "Categorías: %s\n", strings.Join(out.Categories, ", "))
			printProducts(w, out.Products)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&q.Query, "query", "q", "", "texto a buscar")
	f.StringVar(&q.Category, "category", "", "categoría exacta")
	f.StringVar(&q.Sort, "sort", "", "price-asc, price-desc o name")
	return cmd
}

func newOrderLinkCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "order-link <slug> <productId>",
		Short: "Enlace de pedido por WhatsApp de un producto",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.api.ProductDetail(cmd.Context(), args[0], args[1])
			if err != nil {
				return apiMessage(err)
			}
			if out.OrderLink == "" {
				if !out.Purchasable {
					return fmt.Errorf("%s está agotado", out.Product.Name)
				}
				return fmt.Errorf("los pedidos por WhatsApp están deshabilitados")
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.OrderLink)
			return nil
		},
	}
}

func newDashboardCmd(app *cliApp) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Resumen de la tienda propia",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := app.requireSession(); err != nil {
				return err
			}
			out, err := app.api.Dashboard(cmd.Context())
			if err != nil {
				return apiMessage(err)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s (/store/%s)\n", out.Store.Name, out.Store.Slug)
			fmt.Fprintf(w, "Productos: %d (%d activos)\n", out.TotalProducts, out.ActiveProducts)
			fmt.Fprintf(w, "Visitas:   %d\n", out.Visits)
			fmt.Fprintf(w, "Stock bajo: %d\n", out.LowStockCount)
			if len(out.LowStockProducts) > 0 {
				printProducts(w, out.LowStockProducts)
			}
			return nil
		},
	}
}
