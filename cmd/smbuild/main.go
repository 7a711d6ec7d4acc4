// Copyright 2023 Ilya Veligor <veligor.dev@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command smbuild compiles preset circuits and saves them as Scrap
// Mechanic blueprints.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/veligor/smlogic"
	"github.com/veligor/smlogic/blueprint"
	"github.com/veligor/smlogic/presets"
)

var (
	cfgFile   string
	dir       string
	name      string
	overwrite bool
	verbose   bool

	adderBits int
	wordSize  int
	descrText string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "smbuild",
		Short:         "Build Scrap Mechanic logic blueprints from preset circuits",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default smbuild.yaml in the working directory)")
	pf.StringVar(&dir, "dir", "", "blueprint directory (the game's Blueprints folder)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	adder := &cobra.Command{
		Use:   "adder",
		Short: "Build a ripple-carry adder blueprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			return build(name, presets.Adder(adderBits))
		},
	}
	adder.Flags().IntVar(&adderBits, "bits", 8, "adder width in bits")
	addSaveFlags(adder, "adder")

	memory := &cobra.Command{
		Use:   "memory",
		Short: "Build a memory cell blueprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			return build(name, presets.MemoryCell(wordSize))
		},
	}
	memory.Flags().IntVar(&wordSize, "word-size", 8, "memory word width in bits")
	addSaveFlags(memory, "memory-cell")

	describe := &cobra.Command{
		Use:   "describe",
		Short: "Set the description of an existing blueprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newManager()
			if err != nil {
				return err
			}
			return m.SetDescription(name, descrText)
		},
	}
	describe.Flags().StringVar(&name, "name", "", "blueprint name")
	describe.Flags().StringVar(&descrText, "text", "", "description text")
	describe.MarkFlagRequired("name")

	root.AddCommand(adder, memory, describe)
	return root
}

func addSaveFlags(cmd *cobra.Command, defaultName string) {
	cmd.Flags().StringVar(&name, "name", defaultName, "blueprint name")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "overwrite an existing blueprint of the same name")
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("smbuild")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}
	viper.SetEnvPrefix("SMBUILD")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// the config file is optional unless named explicitly
		if _, ok := err.(viper.ConfigFileNotFoundError); ok && cfgFile == "" {
			return nil
		}
		return err
	}
	if dir == "" {
		dir = viper.GetString("dir")
	}
	return nil
}

func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func newManager() (*blueprint.Manager, error) {
	if dir == "" {
		return nil, fmt.Errorf("no blueprint directory: set --dir or \"dir\" in smbuild.yaml")
	}
	log, err := newLogger()
	if err != nil {
		return nil, err
	}
	return blueprint.NewManager(dir, log)
}

func build(name string, scheme *smlogic.Scheme) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	scheme.RemoveUnused()
	log.Info("compiled scheme",
		zap.String("name", name),
		zap.Int("units", scheme.UnitCount()),
		zap.Int("inputs", len(scheme.Inputs())),
		zap.Int("outputs", len(scheme.Outputs())),
	)

	m, err := newManager()
	if err != nil {
		return err
	}
	saved, err := m.Save(name, scheme.Blueprint(), overwrite)
	if err != nil {
		return err
	}
	if !saved {
		log.Warn("blueprint already exists, use --overwrite to replace it", zap.String("name", name))
		return nil
	}
	log.Info("blueprint saved", zap.String("name", name), zap.String("dir", dir))
	return nil
}
