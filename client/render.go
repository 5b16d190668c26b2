// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/iancoleman/orderedmap"
)

const missing = "-"

// View is a decoded response prepared for display. Headers is empty when
// the value does not form a table and Text holds it instead.
type View struct {
	Headers []string
	Rows    [][]string
	Text    string
}

// Tabulate lays v out the way the browser UI does: an array of objects is a
// table keyed by the first object's columns, a single object is a one-row
// table, anything else is indented JSON.
func Tabulate(v any) View {
	if items, ok := v.([]any); ok {
		if len(items) == 0 {
			return View{Text: "No rows"}
		}
		if first, ok := asObject(items[0]); ok {
			view := View{Headers: append([]string(nil), first.Keys()...)}
			for _, item := range items {
				obj, _ := asObject(item)
				view.Rows = append(view.Rows, rowOf(obj, view.Headers))
			}
			return view
		}
	}
	if obj, ok := asObject(v); ok {
		headers := append([]string(nil), obj.Keys()...)
		return View{Headers: headers, Rows: [][]string{rowOf(obj, headers)}}
	}
	return View{Text: rawText(v)}
}

func rowOf(obj *orderedmap.OrderedMap, headers []string) []string {
	row := make([]string, len(headers))
	for i, h := range headers {
		if obj == nil {
			row[i] = missing
			continue
		}
		val, _ := obj.Get(h)
		row[i] = cell(val)
	}
	return row
}

func cell(v any) string {
	switch t := v.(type) {
	case nil:
		return missing
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}
	b, err := marshal(v, "")
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

func rawText(v any) string {
	b, err := marshal(v, "  ")
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

// marshal encodes v without escaping HTML characters. The renderers escape
// for their own output.
func marshal(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

var tableTemplate = template.Must(template.New("table").Parse(
	`{{if .Headers}}<table>
<thead><tr>{{range .Headers}}<th>{{.}}</th>{{end}}</tr></thead>
<tbody>
{{- range .Rows}}
<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>
{{- end}}
</tbody>
</table>
{{else}}<pre>{{.Text}}</pre>
{{end}}`))

// RenderHTML writes v as an HTML table, or a <pre> block when it is not
// tabular. Cell text is escaped.
func RenderHTML(w io.Writer, v any) error {
	return tableTemplate.Execute(w, Tabulate(v))
}

// RenderText writes v as aligned columns.
func RenderText(w io.Writer, v any) error {
	view := Tabulate(v)
	if len(view.Headers) == 0 {
		_, err := fmt.Fprintln(w, view.Text)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(view.Headers, "\t"))
	for _, row := range view.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	return tw.Flush()
}
