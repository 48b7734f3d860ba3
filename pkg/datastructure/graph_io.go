package datastructure

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Map files are sequences of records, one "<key> <value...>" line each:
//
//	Node
//	id 1
//	gps 53.3807 -6.5940      (route map files only)
//	...
//	Edge
//	source 1
//	target 2
//	length 20.5
//	time 12.5                (route map files only)
//	oneway False
//
// All Node blocks come before the first Edge block. ReadGraph weighs edges by
// length, ReadRouteMap by time.

type recordScanner struct {
	sc   *bufio.Scanner
	line int
}

func newRecordScanner(r io.Reader) *recordScanner {
	return &recordScanner{sc: bufio.NewScanner(r)}
}

func (rs *recordScanner) next() (string, bool) {
	if !rs.sc.Scan() {
		return "", false
	}
	rs.line++
	return strings.TrimSpace(rs.sc.Text()), true
}

// values reads the next line and returns the fields after the expected key.
func (rs *recordScanner) values(key string, n int) ([]string, error) {
	line, ok := rs.next()
	if !ok {
		return nil, fmt.Errorf("line %d: expected %q record: %w", rs.line+1, key, io.ErrUnexpectedEOF)
	}
	fields := strings.Fields(line)
	if len(fields) < n+1 || fields[0] != key {
		return nil, fmt.Errorf("line %d: expected %q record with %d value(s), got %q", rs.line, key, n, line)
	}
	return fields[1:], nil
}

func (rs *recordScanner) value(key string) (string, error) {
	fields, err := rs.values(key, 1)
	if err != nil {
		return "", err
	}
	return fields[0], nil
}

func (rs *recordScanner) float(key string) (float64, error) {
	raw, err := rs.value(key)
	if err != nil {
		return 0, err
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: %q record: %w", rs.line, key, err)
	}
	return val, nil
}

func parseOneway(raw string) bool {
	return strings.EqualFold(raw, "true") || raw == "1"
}

// ReadGraph parses a map file into a Graph weighted by edge length.
func ReadGraph(r io.Reader) (*Graph[string], error) {
	g := NewGraph[string]()
	rs := newRecordScanner(r)

	entry, ok := rs.next()
	for ok && entry == "Node" {
		id, err := rs.value("id")
		if err != nil {
			return nil, err
		}
		g.AddVertex(id)
		entry, ok = rs.next()
	}

	for ok && entry == "Edge" {
		source, target, length, _, oneway, err := rs.edgeRecord(false)
		if err != nil {
			return nil, err
		}
		if err := addEdgeByLabel(g, source, target, length, oneway, rs.line); err != nil {
			return nil, err
		}
		entry, ok = rs.next()
	}

	if ok && entry != "" {
		return nil, fmt.Errorf("line %d: unexpected record %q", rs.line, entry)
	}
	if err := rs.sc.Err(); err != nil {
		return nil, fmt.Errorf("reading map file: %w", err)
	}
	return g, nil
}

// ReadRouteMap parses a map file carrying gps and time records into a
// RouteMap weighted by travel time.
func ReadRouteMap(r io.Reader) (*RouteMap[string], error) {
	rm := NewRouteMap[string]()
	rs := newRecordScanner(r)

	entry, ok := rs.next()
	for ok && entry == "Node" {
		id, err := rs.value("id")
		if err != nil {
			return nil, err
		}
		gps, err := rs.values("gps", 2)
		if err != nil {
			return nil, err
		}
		lat, err := strconv.ParseFloat(gps[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: \"gps\" record: %w", rs.line, err)
		}
		lon, err := strconv.ParseFloat(gps[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: \"gps\" record: %w", rs.line, err)
		}
		rm.AddVertex(id, lat, lon)
		entry, ok = rs.next()
	}

	for ok && entry == "Edge" {
		source, target, _, time, oneway, err := rs.edgeRecord(true)
		if err != nil {
			return nil, err
		}
		if err := addEdgeByLabel(rm, source, target, time, oneway, rs.line); err != nil {
			return nil, err
		}
		entry, ok = rs.next()
	}

	if ok && entry != "" {
		return nil, fmt.Errorf("line %d: unexpected record %q", rs.line, entry)
	}
	if err := rs.sc.Err(); err != nil {
		return nil, fmt.Errorf("reading map file: %w", err)
	}
	return rm, nil
}

func (rs *recordScanner) edgeRecord(withTime bool) (source, target string, length, time float64, oneway bool, err error) {
	if source, err = rs.value("source"); err != nil {
		return
	}
	if target, err = rs.value("target"); err != nil {
		return
	}
	if length, err = rs.float("length"); err != nil {
		return
	}
	if withTime {
		if time, err = rs.float("time"); err != nil {
			return
		}
	}
	var rawOneway string
	if rawOneway, err = rs.value("oneway"); err != nil {
		return
	}
	oneway = parseOneway(rawOneway)
	return
}

// labelledGraph is the slice of Graph both loaders share; RouteMap narrows
// GetVertexByLabel to its O(1) index.
type labelledGraph interface {
	GetVertexByLabel(element string) (*Vertex[string], bool)
	AddEdge(v, w *Vertex[string], weight float64, oneway bool) (*Edge[string], error)
}

func addEdgeByLabel(g labelledGraph, source, target string, weight float64, oneway bool, line int) error {
	sv, ok := g.GetVertexByLabel(source)
	if !ok {
		return fmt.Errorf("line %d: edge references unknown node %q: %w", line, source, ErrVertexNotFound)
	}
	tv, ok := g.GetVertexByLabel(target)
	if !ok {
		return fmt.Errorf("line %d: edge references unknown node %q: %w", line, target, ErrVertexNotFound)
	}
	if _, err := g.AddEdge(sv, tv, weight, oneway); err != nil {
		return fmt.Errorf("line %d: %w", line, err)
	}
	return nil
}
