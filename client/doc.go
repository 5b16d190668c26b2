// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client is a Go client for the scoreboard API, behaving like the
browser page served by package site.

# Routes

Route templates from GET /routes carry positional placeholders:

	path, err := client.BuildPath("/submissions/team/:team_id", "7", "limit=5")
	// "/submissions/team/7?limit=5"

BuildPath returns ErrParamsRequired when a template has placeholders and no
values were given.

# Requests

	c := client.New("http://localhost:3000", client.WithTimeout(5*time.Second))
	resp, err := c.Get(ctx, path)

Non-2xx answers come back as *StatusError. Edit sends the create, update and
delete requests listed in EditRoutes.

# Rendering

Decode keeps object key order, so tables show columns in the order the API
sent them. RenderHTML and RenderText print arrays of objects as tables and
single objects as one-row tables; missing or null cells print as "-".
*/
package client
