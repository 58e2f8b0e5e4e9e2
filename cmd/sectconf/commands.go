package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sectconf/sectconf/pkg/config"
	"github.com/sectconf/sectconf/pkg/errors"
	"github.com/sectconf/sectconf/pkg/export"
	"github.com/sectconf/sectconf/pkg/filesystem"
	"github.com/sectconf/sectconf/pkg/paths"
)

// openConfig opens an already registered config. Unlike the library, which
// degrades a broken file to an empty store, the CLI surfaces load failures
// so a corrupt file is not silently shown as empty.
func openConfig(name string) (*config.Config, error) {
	path, err := paths.ConfigFile(name)
	if err != nil {
		return nil, err
	}
	fsys := filesystem.NewOS()
	if _, err := fsys.Stat(path); err != nil {
		return nil, errors.Newf(errors.ErrNotFound, MsgErrNoConfig, name, name)
	}
	manager := config.NewManager(path, fsys)
	if manager.LoadErr() != nil {
		return nil, manager.LoadErr()
	}
	return config.New(manager), nil
}

var registerCmd = &cobra.Command{
	Use:   "register <name>",
	Short: MsgRegisterShort,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Register(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), MsgRegisteredFormat, args[0], cfg.Manager().Path())
		return nil
	},
}

var unregisterCmd = &cobra.Command{
	Use:   "unregister <name>",
	Short: MsgUnregisterShort,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Unregister(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), MsgUnregisteredFormat, args[0])
		return nil
	},
}

var configsCmd = &cobra.Command{
	Use:   "configs",
	Short: MsgConfigsShort,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := config.Registered()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(names) == 0 {
			fmt.Fprintln(out, MsgNoConfigs)
			return nil
		}
		for _, name := range names {
			fmt.Fprintln(out, name)
		}
		return nil
	},
}

var setNone bool

var setCmd = &cobra.Command{
	Use:   "set <name> <section> <key> [value]",
	Short: MsgSetShort,
	Args:  cobra.RangeArgs(3, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, section, key := args[0], args[1], args[2]

		var value interface{}
		if !setNone && len(args) == 4 {
			value = args[3]
		}

		// Registering is idempotent, so set works on new and existing configs
		cfg, err := config.Register(name)
		if err != nil {
			return err
		}
		if err := cfg.Section(section).Set(key, value); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), MsgSetFormat, section, key, name)
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <name> <section> <key>",
	Short: MsgGetShort,
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, section, key := args[0], args[1], args[2]

		cfg, err := openConfig(name)
		if err != nil {
			return err
		}
		value, ok := cfg.Section(section).Get(key)
		if !ok {
			return errors.Newf(errors.ErrNotFound, MsgErrValueNotSet, section, key, name)
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

var unsetCmd = &cobra.Command{
	Use:   "unset <name> <section> <key>",
	Short: MsgUnsetShort,
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, section, key := args[0], args[1], args[2]

		cfg, err := openConfig(name)
		if err != nil {
			return err
		}
		if err := cfg.Section(section).Unset(key); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), MsgUnsetFormat, section, key, name)
		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list <name>",
	Short: MsgListShort,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := openConfig(args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		st := cfg.Manager().Store()
		sections := st.Sections()
		if len(sections) == 0 {
			fmt.Fprintln(out, MsgNoSections)
			return nil
		}
		for _, section := range sections {
			fmt.Fprintf(out, "[%s]\n", styled(sectionStyle, section))
			for _, key := range st.Keys(section) {
				if value, ok := st.Get(section, key); ok {
					fmt.Fprintf(out, "  %s = %s\n", styled(keyStyle, key), value)
				} else {
					fmt.Fprintf(out, "  %s = %s\n", styled(keyStyle, key), styled(noneStyle, MsgValueNone))
				}
			}
		}
		return nil
	},
}

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export <name>",
	Short: MsgExportShort,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := openConfig(args[0])
		if err != nil {
			return err
		}

		format := exportFormat
		if format == "" {
			format = cliSettings.DefaultFormat
		}
		data, err := export.Render(cfg.Manager().Store(), format)
		if err != nil {
			return err
		}

		if exportOutput != "" {
			return os.WriteFile(exportOutput, data, 0644)
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	setCmd.Flags().BoolVar(&setNone, "none", false, MsgFlagNone)
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", MsgFlagFormat)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", MsgFlagOutput)
}
