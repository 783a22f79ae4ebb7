/*
 * commands.go, part of qecfg.
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

package main

import (
	"errors"
	"os"

	"github.com/rmera/qecfg"
	"github.com/rmera/qecfg/cfg"
	"github.com/rmera/qecfg/chemplot"
	"github.com/rmera/qecfg/chemstat"
	"github.com/rmera/qecfg/table"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract the ionic steps of a pw.x output to a CSV dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.bind(cmd, "input", "output", "stress-scope"); err != nil {
				return err
			}
			in, err := a.input(envTranscript)
			if err != nil {
				return err
			}
			scope, err := qecfg.ParseStressScope(a.v.GetString("stress-scope"))
			if err != nil {
				return err
			}
			_, err = a.extract(in, a.output("output", in, ".csv"), scope)
			return err
		},
	}
	f := cmd.Flags()
	f.StringP("input", "i", os.Getenv(envTranscript), "pw.x output file (env "+envTranscript+")")
	f.StringP("output", "o", "", "CSV dataset to write (default: input name with .csv extension)")
	f.String("stress-scope", "block", `where the stress of each step is read from: "block" or "global" (legacy)`)
	return cmd
}

func (a *app) convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Write a CSV dataset as .cfg configurations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.bind(cmd, "input", "output", "mode"); err != nil {
				return err
			}
			mode, err := cfg.ParseWriteMode(a.v.GetString("mode"))
			if err != nil {
				return err
			}
			in, err := a.input(envDataset)
			if err != nil {
				return err
			}
			a.log.Info("Processing input file", zap.String("path", in))
			ds, err := table.ReadFile(in)
			if err != nil {
				return err
			}
			return a.convert(ds, a.output("output", in, ".cfg"), mode)
		},
	}
	f := cmd.Flags()
	f.StringP("input", "i", os.Getenv(envDataset), "CSV dataset (env "+envDataset+")")
	f.StringP("output", "o", "", "cfg file to write (default: input name with .cfg extension)")
	f.StringP("mode", "m", "w", `"w" to overwrite the output, "a" to append to it`)
	return cmd
}

func (a *app) runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Extract a pw.x output and write it both as CSV dataset and as .cfg configurations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.bind(cmd, "input", "csv", "output", "mode", "stress-scope"); err != nil {
				return err
			}
			mode, err := cfg.ParseWriteMode(a.v.GetString("mode"))
			if err != nil {
				return err
			}
			scope, err := qecfg.ParseStressScope(a.v.GetString("stress-scope"))
			if err != nil {
				return err
			}
			in, err := a.input(envTranscript)
			if err != nil {
				return err
			}
			ds, err := a.extract(in, a.output("csv", in, ".csv"), scope)
			if err != nil {
				return err
			}
			return a.convert(ds, a.output("output", in, ".cfg"), mode)
		},
	}
	f := cmd.Flags()
	f.StringP("input", "i", os.Getenv(envTranscript), "pw.x output file (env "+envTranscript+")")
	f.String("csv", "", "CSV dataset to write (default: input name with .csv extension)")
	f.StringP("output", "o", "", "cfg file to write (default: input name with .cfg extension)")
	f.StringP("mode", "m", "w", `"w" to overwrite the cfg output, "a" to append to it`)
	f.String("stress-scope", "block", `where the stress of each step is read from: "block" or "global" (legacy)`)
	return cmd
}

func (a *app) plotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Plot the total energy of a CSV dataset against time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.bind(cmd, "input", "output", "title"); err != nil {
				return err
			}
			in, err := a.input(envDataset)
			if err != nil {
				return err
			}
			ds, err := table.ReadFile(in)
			if err != nil {
				return err
			}
			out := a.output("output", in, ".png")
			if err := chemplot.EnergyPlot(ds, a.v.GetString("title"), out); err != nil {
				return err
			}
			a.log.Info("Plot saved", zap.String("path", out))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringP("input", "i", os.Getenv(envDataset), "CSV dataset (env "+envDataset+")")
	f.StringP("output", "o", "", "image to write, the format is given by the extension (default: input name with .png extension)")
	f.String("title", "Total energy", "plot title")
	return cmd
}

//extract parses the transcript in, and writes the dataset built from it to out.
func (a *app) extract(in, out string, scope qecfg.StressScope) (*table.Dataset, error) {
	a.log.Info("Processing input file", zap.String("path", in), zap.Stringer("stress-scope", scope))
	res, err := qecfg.ReadFile(in, qecfg.Options{StressScope: scope, Logger: a.log})
	if err != nil {
		return nil, a.report("extract", err)
	}
	ds := table.Assemble(res.Records, a.log)
	if err := table.WriteFile(out, ds); err != nil {
		return nil, err
	}
	a.log.Info("Data extracted and saved", zap.String("path", out), zap.Int("rows", len(ds.Rows)))
	for _, s := range chemstat.Describe(ds) {
		a.log.Info("Summary", zap.Stringer("column", s))
	}
	if h := chemstat.ForceHistogram(ds, 10); h != nil {
		a.log.Debug("Force magnitudes (eV/A)", zap.Stringer("histogram", h))
	}
	return ds, nil
}

func (a *app) convert(ds *table.Dataset, out string, mode cfg.WriteMode) error {
	if ds.Dropped > 0 {
		a.log.Info("Removed rows with missing values", zap.Int("rows", ds.Dropped))
	}
	if mode == cfg.Append {
		a.log.Info("Output will be appended to", zap.String("path", out))
	} else {
		a.log.Info("Output will be overwritten to", zap.String("path", out))
	}
	_, err := cfg.WriteFile(out, ds, mode, a.log)
	return err
}

//report logs the file and the call trail of err, if it is a qecfg.Error, and returns err.
func (a *app) report(caller string, err error) error {
	var e qecfg.Error
	if errors.As(err, &e) {
		a.log.Error("Aborted", zap.String("file", e.FileName()), zap.Strings("trail", e.Decorate(caller)),
			zap.Bool("critical", e.Critical()))
	}
	return err
}
