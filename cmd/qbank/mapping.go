package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ukaji3/qbank-go/pkg/qbank/mapping"
	"github.com/ukaji3/qbank-go/pkg/qbank/models"
)

func newMappingCommand() *cobra.Command {
	mappingCmd := &cobra.Command{
		Use:   "mapping",
		Short: "Inspect and check field mapping files",
	}

	mappingCmd.AddCommand(&cobra.Command{
		Use:   "validate <mapping.yaml>",
		Short: "Validate a mapping file without converting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := mapping.LoadFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s, %d columns)\n", args[0], m.Variant(), len(m.Columns()))
			return nil
		},
	})

	mappingCmd.AddCommand(&cobra.Command{
		Use:   "show [questions|catalogue]",
		Short: "Print the built-in mapping as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			variant := models.VariantQuestions
			if len(args) == 1 {
				v, err := models.ParseVariant(args[0])
				if err != nil {
					return err
				}
				variant = v
			}

			m, err := mapping.Default(variant)
			if err != nil {
				return err
			}
			data, err := mapping.Marshal(m.File())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	return mappingCmd
}
