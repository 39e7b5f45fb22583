package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoBulma/GoBulma/internal/document"
	"github.com/GoBulma/GoBulma/internal/uniuri"
	"github.com/GoBulma/GoBulma/pkg/widget"
)

func init() { //nolint: gochecknoinits
	renderCmd.Flags().Int64Var(&idsFrom, "ids-from", 0, "first value of generated element ids")
	renderCmd.Flags().IntVar(&randomIDs, "random-ids", 0, "generate random element ids of this length instead")
	renderCmd.Flags().StringVar(&idPrefix, "id-prefix", "", "prefix of generated element ids, overrides the document")

	rootCmd.AddCommand(renderCmd)
}

var (
	idsFrom   int64
	randomIDs int
	idPrefix  string

	renderCmd = &cobra.Command{
		Use:   "render <document.yaml>...",
		Short: "Render widget documents to stdout",
		Long: `Render widget documents to stdout. Documents share one id sequence,
so the output of several documents can be placed on one page.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var ids widget.IDAllocator = widget.NewCounterFrom(idsFrom)
			if randomIDs > 0 {
				ids = uniuri.Allocator{Length: randomIDs}
			}

			for _, path := range args {
				d, err := document.Load(path)
				if err != nil {
					return err
				}

				if idPrefix != "" {
					d.IDPrefix = idPrefix
				}

				out, err := d.Render(ids)
				if err != nil {
					return err
				}

				if _, err = fmt.Fprintln(cmd.OutOrStdout(), out); err != nil {
					return err //nolint:wrapcheck
				}
			}

			return nil
		},
	}
)
