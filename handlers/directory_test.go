// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/icpc-scoreboard/models"
	"github.com/danielhkuo/icpc-scoreboard/testutil"
)

func TestListRoutes(t *testing.T) {
	w := httptest.NewRecorder()
	ListRoutes(w, httptest.NewRequest("GET", "/routes", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var entries []models.RouteEntry
	testutil.AssertJSON(t, w, &entries)

	if len(entries) != len(Directory) {
		t.Fatalf("Expected %d entries, got %d", len(Directory), len(entries))
	}
	for i := range Directory {
		if entries[i] != Directory[i] {
			t.Errorf("Position %d: expected %+v, got %+v", i, Directory[i], entries[i])
		}
	}
}

func TestDirectory_WellFormed(t *testing.T) {
	labels := map[string]bool{}
	for _, e := range Directory {
		if e.Label == "" {
			t.Errorf("Empty label for %s", e.Value)
		}
		if labels[e.Label] {
			t.Errorf("Duplicate label %q", e.Label)
		}
		labels[e.Label] = true

		if !strings.HasPrefix(e.Value, "/") {
			t.Errorf("Route %q should be absolute", e.Value)
		}
		if strings.Contains(e.Value, "{") || strings.Contains(e.Value, "?") {
			t.Errorf("Route %q should use :name placeholders and no query", e.Value)
		}
	}

	found := false
	for _, e := range Directory {
		if e.Value == "/coaches/:team_id" {
			found = true
		}
	}
	if !found {
		t.Error("Expected the team coach template in the directory")
	}
}
