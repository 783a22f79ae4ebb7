/*
 * zio.go, part of qecfg.
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

//Package zio opens and creates files that are transparently compressed or
//decompressed depending on the file name suffix: ".zst" (zstd), ".gz" (gzip)
//and ".lz4" (lz4). Any other name gives a plain file.
package zio

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

//Format is the compression applied to a file.
type Format int

const (
	Plain Format = iota
	Zstd
	Gzip
	LZ4
)

func (f Format) String() string {
	switch f {
	case Zstd:
		return "zstd"
	case Gzip:
		return "gzip"
	case LZ4:
		return "lz4"
	}
	return "plain"
}

//FormatOf returns the compression format implied by the name of a file.
func FormatOf(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		return Zstd
	case ".gz":
		return Gzip
	case ".lz4":
		return LZ4
	}
	return Plain
}

//Trim removes a compression suffix from name, if present.
func Trim(name string) string {
	if FormatOf(name) == Plain {
		return name
	}
	return strings.TrimSuffix(name, filepath.Ext(name))
}

//Create creates (or truncates) the file name and returns a writer for it.
func Create(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, err
	}
	return wrapWriter(f, FormatOf(name))
}

//Append opens the file name for appending, creating it if needed. Compressed
//formats get a new frame (or gzip member) appended, which their readers
//decode as part of the same stream.
func Append(name string) (io.WriteCloser, error) {
	f, err := os.OpenFile(name, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return wrapWriter(f, FormatOf(name))
}

//Open opens the file name for reading, decompressing it if needed.
func Open(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	var r io.Reader
	var closer func() error
	switch FormatOf(name) {
	case Zstd:
		d, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		r = d
		closer = func() error { d.Close(); return nil }
	case Gzip:
		g, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		r = g
		closer = g.Close
	case LZ4:
		r = lz4.NewReader(f)
	default:
		return f, nil
	}
	return &readCloser{Reader: r, f: f, closer: closer}, nil
}

//ReadAll reads the whole (possibly compressed) file name.
func ReadAll(name string) ([]byte, error) {
	r, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

func wrapWriter(f *os.File, format Format) (io.WriteCloser, error) {
	var w io.WriteCloser
	var err error
	switch format {
	case Zstd:
		w, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	case Gzip:
		w, err = gzip.NewWriterLevel(f, gzip.BestCompression)
	case LZ4:
		w = lz4.NewWriter(f)
	default:
		return f, nil
	}
	if err != nil {
		f.Close()
		return nil, err
	}
	return &writeCloser{WriteCloser: w, f: f}, nil
}

type writeCloser struct {
	io.WriteCloser
	f *os.File
}

//Close flushes the compressor and closes the file. The file is closed even
//if the compressor fails.
func (w *writeCloser) Close() error {
	err := w.WriteCloser.Close()
	if err2 := w.f.Close(); err == nil {
		err = err2
	}
	return err
}

type readCloser struct {
	io.Reader
	f      *os.File
	closer func() error
}

func (r *readCloser) Close() error {
	var err error
	if r.closer != nil {
		err = r.closer()
	}
	if err2 := r.f.Close(); err == nil {
		err = err2
	}
	return err
}
