package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/atlas/internal/infrastructure/config"
)

func newConfigCmd(st *rootState) *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Configuration file helpers",
		Annotations: map[string]string{skipAppAnnotation: "true"},
	}

	var write bool
	schema := &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the config file",
		Long: `Print the JSON Schema describing config.toml.

With --write the schema is saved as config.schema.json next to the
config file so editors with TOML schema support can use it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if write {
				file, err := configFilePath(st)
				if err != nil {
					return err
				}
				path, err := config.WriteSchemaFile(file)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			}
			data, err := config.Schema()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	schema.Flags().BoolVar(&write, "write", false, "write config.schema.json next to the config file")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				file, err := configFilePath(st)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), file)
				return nil
			},
		},
		schema,
	)
	return cmd
}

func configFilePath(st *rootState) (string, error) {
	if st.opts.ConfigFile != "" {
		return st.opts.ConfigFile, nil
	}
	return config.GetConfigFile()
}
