/*
 * literal.go, part of qecfg.
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

package table

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/rmera/qecfg"
)

//Vector cells hold a printable list literal. They are written as JSON arrays,
//e.g. ["Fe",0.5,0.5,0.5] or [1,0,0], which are also valid Python literals.
//Legacy datasets with single-quoted strings (['Fe', 0.5, 0.5, 0.5]) can be read.

func encodeVec(v [3]float64) (string, error) {
	b, err := json.Marshal(v[:])
	return string(b), err
}

func encodeTagged(tag string, v [3]float64) (string, error) {
	b, err := json.Marshal([]interface{}{tag, v[0], v[1], v[2]})
	return string(b), err
}

func decodeList(cell string) ([]interface{}, error) {
	if strings.Contains(cell, "'") {
		cell = strings.ReplaceAll(cell, "'", `"`)
	}
	var l []interface{}
	if err := json.Unmarshal([]byte(cell), &l); err != nil {
		return nil, fmt.Errorf("invalid list literal %q: %w", cell, err)
	}
	return l, nil
}

func floatsFrom(l []interface{}, cell string) ([3]float64, error) {
	var ret [3]float64
	if len(l) != 3 {
		return ret, fmt.Errorf("list literal %q: 3 numbers expected", cell)
	}
	for i, v := range l {
		f, ok := v.(float64)
		if !ok {
			return ret, fmt.Errorf("list literal %q: element %d is not a number", cell, i)
		}
		ret[i] = f
	}
	return ret, nil
}

func decodeVec(cell string) (*[3]float64, error) {
	l, err := decodeList(cell)
	if err != nil {
		return nil, err
	}
	v, err := floatsFrom(l, cell)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

//decodeTagged reads a [tag, x, y, z] literal.
func decodeTagged(cell string) (string, [3]float64, error) {
	l, err := decodeList(cell)
	if err != nil {
		return "", [3]float64{}, err
	}
	if len(l) != 4 {
		return "", [3]float64{}, fmt.Errorf("list literal %q: 4 elements expected", cell)
	}
	var tag string
	switch t := l[0].(type) {
	case string:
		tag = t
	case float64:
		tag = fmt.Sprint(t)
	default:
		return "", [3]float64{}, fmt.Errorf("list literal %q: invalid first element", cell)
	}
	v, err := floatsFrom(l[1:], cell)
	return tag, v, err
}

func encodeForce(f *qecfg.AtomForce) (string, error) {
	return encodeTagged(f.Type, f.F)
}

func decodeForce(cell string) (*qecfg.AtomForce, error) {
	tag, v, err := decodeTagged(cell)
	if err != nil {
		return nil, err
	}
	return &qecfg.AtomForce{Type: tag, F: v}, nil
}

func encodePosition(p *qecfg.AtomPosition) (string, error) {
	return encodeTagged(p.Species, p.X)
}

func decodePosition(cell string) (*qecfg.AtomPosition, error) {
	tag, v, err := decodeTagged(cell)
	if err != nil {
		return nil, err
	}
	return &qecfg.AtomPosition{Species: tag, X: v}, nil
}
