// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"errors"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

var (
	// ErrParamsRequired is returned by BuildPath when a template has
	// placeholders and no parameter values were given.
	ErrParamsRequired = errors.New("client: route needs parameters, separated by commas")
	ErrIDRequired     = errors.New(`client: update needs an "id" field`)
	ErrInputRequired  = errors.New("client: request data required")
)

var placeholder = regexp.MustCompile(`:([a-zA-Z_]+)`)

// EditRoute is a mutating request offered by the edit panel.
type EditRoute struct {
	Label  string
	Method string
	Path   string
}

// EditRoutes mirrors the edit dropdown of the browser UI.
var EditRoutes = []EditRoute{
	{Label: "Add participant (POST)", Method: http.MethodPost, Path: "/participants"},
	{Label: "Update participant (PUT)", Method: http.MethodPut, Path: "/participants/:id"},
	{Label: "Delete participant (DELETE)", Method: http.MethodDelete, Path: "/participants/:id"},
	{Label: "Add coach (POST)", Method: http.MethodPost, Path: "/coaches"},
	{Label: "Update coach (PUT)", Method: http.MethodPut, Path: "/coaches/:id"},
	{Label: "Delete coach (DELETE)", Method: http.MethodDelete, Path: "/coaches/:id"},
}

// FindEditRoute looks an edit route up by label, case-insensitively.
func FindEditRoute(label string) (EditRoute, bool) {
	for _, r := range EditRoutes {
		if strings.EqualFold(r.Label, label) {
			return r, true
		}
	}
	return EditRoute{}, false
}

// Placeholders returns the placeholder names of a template in order.
func Placeholders(template string) []string {
	var names []string
	for _, m := range placeholder.FindAllStringSubmatch(template, -1) {
		names = append(names, m[1])
	}
	return names
}

// FillRoute substitutes :name placeholders positionally. Each value is
// trimmed, stripped of leading and trailing slashes and escaped as a single
// path segment. Missing values become empty segments.
func FillRoute(template string, values []string) string {
	i := 0
	return placeholder.ReplaceAllStringFunc(template, func(string) string {
		var v string
		if i < len(values) {
			v = values[i]
		}
		i++
		v = strings.Trim(strings.TrimSpace(v), "/")
		return strings.ReplaceAll(url.QueryEscape(v), "+", "%20")
	})
}

// BuildPath fills the template from comma-separated params and appends the
// raw query text.
func BuildPath(template, params, query string) (string, error) {
	path := template
	if strings.Contains(template, ":") {
		params = strings.TrimSpace(params)
		if params == "" {
			return "", ErrParamsRequired
		}
		path = FillRoute(template, strings.Split(params, ","))
	}

	query = strings.TrimPrefix(strings.TrimSpace(query), "?")
	if query != "" {
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		path += sep + query
	}
	return path, nil
}
