package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"milsabores/internal/domain"
)

func cartCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show or edit the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := e.wire.Cart.State(cmd.Context())
			if err != nil {
				return userError(err)
			}
			return printCart(cmd.OutOrStdout(), state)
		},
	}
	cmd.AddCommand(
		cartEditCmd("add", "Add one unit of a product", e.addToCart),
		cartEditCmd("remove", "Remove one unit of a product", e.removeFromCart),
		cartClearCmd(e),
	)
	return cmd
}

func (e *env) addToCart(cmd *cobra.Command, id domain.ProductID) (domain.CartState, error) {
	return e.wire.Cart.Add(cmd.Context(), id)
}

func (e *env) removeFromCart(cmd *cobra.Command, id domain.ProductID) (domain.CartState, error) {
	return e.wire.Cart.Remove(cmd.Context(), id)
}

func cartEditCmd(
	use, short string,
	edit func(*cobra.Command, domain.ProductID) (domain.CartState, error),
) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [product-id]",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := edit(cmd, domain.ProductID(args[0]))
			if err != nil {
				return userError(err)
			}
			return printCart(cmd.OutOrStdout(), state)
		},
	}
}

func cartClearCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := e.wire.Cart.Clear(cmd.Context()); err != nil {
				return userError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cart cleared")
			return nil
		},
	}
}

func printCart(w io.Writer, state domain.CartState) error {
	if state.Empty() {
		_, err := fmt.Fprintln(w, "Cart is empty")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tPRODUCTO\tCANT.\tSUBTOTAL")
	for _, it := range state.Items {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n",
			it.Product.ID, it.Product.Name, it.Quantity, formatCLP(it.Subtotal()))
	}
	fmt.Fprintf(tw, "\t\tTOTAL\t%s\n", formatCLP(state.Total))
	return tw.Flush()
}
