/*
 * main.go, part of qecfg.
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

//qecfg turns Quantum Espresso (pw.x) molecular dynamics output into a flat dataset, and
//the dataset into .cfg training configurations for machine-learned potentials.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rmera/qecfg"
	"github.com/rmera/qecfg/internal/logger"
	"github.com/rmera/qecfg/zio"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var version = "0.1.0"

//Environment variables giving the default inputs. They can be set in a .env file.
const (
	envTranscript = "OUT_DEFAULT_INPUT"
	envDataset    = "CSV_DEFAULT_INPUT"
)

type app struct {
	v   *viper.Viper
	log *zap.Logger
}

func main() {
	_ = godotenv.Load() //a missing .env is fine
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: zap.NewNop()}
	root := &cobra.Command{
		Use:   "qecfg",
		Short: "Extract pw.x molecular dynamics data and write .cfg training sets",
		Long: `qecfg reads the output of a Quantum Espresso (pw.x) molecular dynamics run and
writes one row per ionic step to a CSV dataset, and writes the dataset as .cfg
configurations (BEGIN_CFG ... END_CFG blocks) for machine-learned interatomic potentials.

Settings are read from flags, from QECFG_* environment variables and from a
qecfg.yaml file in the working directory, in that order of precedence.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) { _ = a.log.Sync() },
	}
	pf := root.PersistentFlags()
	pf.String("config", "", "configuration file (default ./qecfg.yaml)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-encoding", "console", "log encoding (console or json)")
	pf.Bool("log-development", false, "development logging, with colors and stack traces")
	for _, f := range []string{"log-level", "log-encoding", "log-development"} {
		_ = a.v.BindPFlag(strings.Replace(f, "-", ".", 1), pf.Lookup(f))
	}
	root.AddCommand(versionCmd(), a.extractCmd(), a.convertCmd(), a.runCmd(), a.plotCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "qecfg v%s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "Go version: %s\n", runtime.Version())
		},
	}
}

//setup reads the configuration file and the environment, and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	a.v.SetEnvPrefix("QECFG")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	a.v.AutomaticEnv()
	if file, _ := cmd.Flags().GetString("config"); file != "" {
		a.v.SetConfigFile(file)
	} else {
		a.v.SetConfigName("qecfg")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
	}
	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("reading configuration: %w", err)
		}
	}
	log, err := logger.New(logger.Config{
		Level:       a.v.GetString("log.level"),
		Encoding:    a.v.GetString("log.encoding"),
		Development: a.v.GetBool("log.development"),
	})
	if err != nil {
		return err
	}
	a.log = log
	if f := a.v.ConfigFileUsed(); f != "" {
		a.log.Debug("Configuration read", zap.String("file", f))
	}
	return nil
}

//bind makes the flags named by keys, of the running command, the source
//of the configuration keys with the same names.
func (a *app) bind(cmd *cobra.Command, keys ...string) error {
	for _, k := range keys {
		if err := a.v.BindPFlag(k, cmd.Flags().Lookup(k)); err != nil {
			return err
		}
	}
	return nil
}

//input returns the input path given for the running command, or ErrMissingInput
//if none was given.
func (a *app) input(envvar string) (string, error) {
	in := a.v.GetString("input")
	if in == "" {
		return "", fmt.Errorf("%w: no input given (use --input or set %s)", qecfg.ErrMissingInput, envvar)
	}
	return in, nil
}

//defaultOutput returns the name of the input file, without directory, compression
//suffix or extension, followed by ext.
func defaultOutput(input, ext string) string {
	base := filepath.Base(zio.Trim(input))
	return strings.TrimSuffix(base, filepath.Ext(base)) + ext
}

//output returns the output path for the running command, or the default one.
func (a *app) output(key, input, ext string) string {
	if out := a.v.GetString(key); out != "" {
		return out
	}
	return defaultOutput(input, ext)
}
