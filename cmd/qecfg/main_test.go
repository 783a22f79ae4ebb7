/*
 * main_test.go, part of qecfg.
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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rmera/qecfg"
	"github.com/rmera/qecfg/cfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func execute(args ...string) (string, error) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.Execute()
	return out.String(), err
}

func TestDefaultOutput(Te *testing.T) {
	assert.Equal(Te, "run.csv", defaultOutput("/data/md/run.out", ".csv"))
	assert.Equal(Te, "run.cfg", defaultOutput("run.csv", ".cfg"))
	assert.Equal(Te, "run.cfg", defaultOutput("../run.csv.zst", ".cfg"))
	assert.Equal(Te, "run.csv", defaultOutput("run", ".csv"))
}

func TestVersion(Te *testing.T) {
	out, err := execute("version")
	require.NoError(Te, err)
	assert.True(Te, strings.HasPrefix(out, "qecfg v"+version))
}

func TestRun(Te *testing.T) {
	dir := Te.TempDir()
	csv := filepath.Join(dir, "md.csv")
	out := filepath.Join(dir, "md.cfg")
	_, err := execute("run", "-i", "../../test/fe2_md.out", "--csv", csv, "-o", out)
	require.NoError(Te, err)
	golden, err := os.ReadFile("../../test/fe2_md.cfg")
	require.NoError(Te, err)
	got, err := os.ReadFile(out)
	require.NoError(Te, err)
	assert.Equal(Te, string(golden), string(got))

	//the dataset written by run converts to the same configurations.
	again := filepath.Join(dir, "again.cfg")
	_, err = execute("convert", "-i", csv, "-o", again)
	require.NoError(Te, err)
	got, err = os.ReadFile(again)
	require.NoError(Te, err)
	assert.Equal(Te, string(golden), string(got))
}

func TestConvertModeFromConfig(Te *testing.T) {
	dir := Te.TempDir()
	csv := filepath.Join(dir, "md.csv")
	out := filepath.Join(dir, "md.cfg")
	_, err := execute("extract", "-i", "../../test/fe2_md.out", "-o", csv)
	require.NoError(Te, err)
	conf := filepath.Join(dir, "qecfg.yaml")
	require.NoError(Te, os.WriteFile(conf, []byte("mode: a\n"), 0o644))
	for i := 0; i < 2; i++ {
		_, err = execute("convert", "--config", conf, "-i", csv, "-o", out)
		require.NoError(Te, err)
	}
	golden, err := os.ReadFile("../../test/fe2_md.cfg")
	require.NoError(Te, err)
	got, err := os.ReadFile(out)
	require.NoError(Te, err)
	assert.Equal(Te, string(golden)+string(golden), string(got))
}

func TestBadMode(Te *testing.T) {
	dir := Te.TempDir()
	out := filepath.Join(dir, "never.cfg")
	_, err := execute("run", "-i", "../../test/fe2_md.out", "--csv", filepath.Join(dir, "md.csv"), "-o", out, "-m", "x")
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, cfg.ErrMalformedMode))
	entries, err := os.ReadDir(dir)
	require.NoError(Te, err)
	assert.Empty(Te, entries, "nothing must be written for an invalid mode")
}

func TestMissingInput(Te *testing.T) {
	dir := Te.TempDir()
	out := filepath.Join(dir, "out.csv")
	_, err := execute("extract", "-i", filepath.Join(dir, "nope.out"), "-o", out)
	require.Error(Te, err)
	assert.True(Te, errors.Is(err, qecfg.ErrMissingInput))
	_, err = os.Stat(out)
	assert.True(Te, os.IsNotExist(err))

	_, err = execute("convert", "-i", filepath.Join(dir, "nope.csv"), "-o", filepath.Join(dir, "out.cfg"))
	assert.True(Te, errors.Is(err, qecfg.ErrMissingInput))

	_, err = execute("convert", "-i", "", "-o", filepath.Join(dir, "out.cfg"))
	assert.True(Te, errors.Is(err, qecfg.ErrMissingInput))
}

func TestBadStressScope(Te *testing.T) {
	dir := Te.TempDir()
	_, err := execute("extract", "-i", "../../test/fe2_md.out", "-o", filepath.Join(dir, "x.csv"), "--stress-scope", "nowhere")
	assert.Error(Te, err)
}

func TestPlot(Te *testing.T) {
	dir := Te.TempDir()
	csv := filepath.Join(dir, "md.csv")
	_, err := execute("extract", "-i", "../../test/fe2_md.out", "-o", csv)
	require.NoError(Te, err)
	png := filepath.Join(dir, "md.png")
	_, err = execute("plot", "-i", csv, "-o", png)
	require.NoError(Te, err)
	_, err = os.Stat(png)
	assert.NoError(Te, err)
}

func TestReportTrail(Te *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	a := &app{log: zap.New(core)}
	path := filepath.Join(Te.TempDir(), "nope.out")
	_, err := a.extract(path, filepath.Join(Te.TempDir(), "nope.csv"), qecfg.StressPerBlock)
	require.True(Te, errors.Is(err, qecfg.ErrMissingInput))
	entries := logs.FilterMessage("Aborted").All()
	require.Len(Te, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(Te, path, ctx["file"])
	assert.Equal(Te, true, ctx["critical"])
	assert.Equal(Te, []interface{}{"ReadFile", "extract"}, ctx["trail"])

	plain := errors.New("plain")
	assert.Equal(Te, plain, a.report("convert", plain))
	assert.Len(Te, logs.FilterMessage("Aborted").All(), 1)
}
