// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/danielhkuo/icpc-scoreboard/client"
	"github.com/danielhkuo/icpc-scoreboard/metrics"
	"github.com/danielhkuo/icpc-scoreboard/middleware"
	"github.com/danielhkuo/icpc-scoreboard/router"
	"github.com/danielhkuo/icpc-scoreboard/testutil"
)

type recorded struct {
	method string
	path   string
	body   string
	ctype  string
}

// echoServer answers every request with 200 and records it.
func echoServer(last *recorded) *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		*last = recorded{method: r.Method, path: r.URL.RequestURI(), body: string(b), ctype: r.Header.Get("Content-Type")}

		switch r.URL.Path {
		case "/routes":
			w.Write([]byte(`[{"label":"Teams","value":"/teams"},{"label":"Team coach","value":"/coaches/:team_id"}]`))
		case "/broken":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"Internal Server Error","message":"Server error"}`))
		case "/gone":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte("404 page not found"))
		default:
			if r.Method == http.MethodDelete {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			w.Write([]byte(`{"ok":true}`))
		}
	}))
}

func TestClientRequests(t *testing.T) {
	Convey("Given a client pointed at a test server", t, func() {
		var last recorded
		srv := echoServer(&last)
		defer srv.Close()

		c := client.New(srv.URL+"/", client.WithTimeout(5*time.Second))
		ctx := context.Background()

		Convey("When fetching the route directory", func() {
			routes, err := c.Routes(ctx)
			So(err, ShouldBeNil)
			So(len(routes), ShouldEqual, 2)
			So(routes[1].Value, ShouldEqual, "/coaches/:team_id")
		})

		Convey("When getting a path with a query", func() {
			resp, err := c.Get(ctx, "/submissions/recent?limit=3")
			So(err, ShouldBeNil)
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(last.method, ShouldEqual, http.MethodGet)
			So(last.path, ShouldEqual, "/submissions/recent?limit=3")
		})

		Convey("When the server fails", func() {
			resp, err := c.Get(ctx, "/broken")

			Convey("Then a StatusError carries the fixed message", func() {
				var se *client.StatusError
				So(errors.As(err, &se), ShouldBeTrue)
				So(se.StatusCode, ShouldEqual, http.StatusInternalServerError)
				So(se.Error(), ShouldEqual, "GET /broken: 500 Server error")
				So(resp, ShouldNotBeNil)
			})
		})

		Convey("When the body is not JSON", func() {
			_, err := c.Get(ctx, "/gone")
			So(err.Error(), ShouldEqual, "GET /gone: 404 Not Found")
		})

		Convey("When creating through an edit route", func() {
			route, _ := client.FindEditRoute("Add participant (POST)")
			_, err := c.Edit(ctx, route, ` {"name":"Ann","email":"a@x","team_id":7} `)
			So(err, ShouldBeNil)
			So(last.method, ShouldEqual, http.MethodPost)
			So(last.path, ShouldEqual, "/participants")
			So(last.body, ShouldEqual, `{"name":"Ann","email":"a@x","team_id":7}`)
			So(last.ctype, ShouldEqual, "application/json")
		})

		Convey("When the create body is not JSON", func() {
			route, _ := client.FindEditRoute("Add coach (POST)")
			_, err := c.Edit(ctx, route, `name=Ann`)
			So(err, ShouldNotBeNil)
		})

		Convey("When updating", func() {
			route, _ := client.FindEditRoute("Update coach (PUT)")

			Convey("Then the id moves into the path", func() {
				_, err := c.Edit(ctx, route, `{"name":"Bo","id":12,"email":"b@x","team_id":3}`)
				So(err, ShouldBeNil)
				So(last.method, ShouldEqual, http.MethodPut)
				So(last.path, ShouldEqual, "/coaches/12")
				So(last.body, ShouldEqual, `{"name":"Bo","email":"b@x","team_id":3}`)
			})

			Convey("Then a string id works too", func() {
				_, err := c.Edit(ctx, route, `{"id":"5","name":"Bo"}`)
				So(err, ShouldBeNil)
				So(last.path, ShouldEqual, "/coaches/5")
			})

			Convey("Then a missing id is refused locally", func() {
				last = recorded{}
				_, err := c.Edit(ctx, route, `{"name":"Bo"}`)
				So(err, ShouldEqual, client.ErrIDRequired)
				So(last.method, ShouldEqual, "")
			})
		})

		Convey("When deleting", func() {
			route, _ := client.FindEditRoute("Delete participant (DELETE)")
			resp, err := c.Edit(ctx, route, " 9 ")
			So(err, ShouldBeNil)
			So(resp.StatusCode, ShouldEqual, http.StatusNoContent)
			So(last.path, ShouldEqual, "/participants/9")

			v, err := resp.Decode()
			So(err, ShouldBeNil)
			So(v, ShouldBeNil)
		})

		Convey("When the edit input is empty", func() {
			_, err := c.Edit(ctx, client.EditRoutes[0], "   ")
			So(err, ShouldEqual, client.ErrInputRequired)
		})
	})
}

func TestClientAgainstAPI(t *testing.T) {
	Convey("Given the real API on a temporary database", t, func() {
		g := testutil.SetupTestDB(t)
		inst := testutil.CreateTestInstitution(t, g, "KPI")
		team := testutil.CreateTestTeam(t, g, "Alpha", inst, "bachelor")

		mux := router.NewRouter(g, testutil.GetTestConfig(), metrics.NewManager())
		srv := httptest.NewServer(middleware.WithRequestID(mux))
		defer srv.Close()

		c := client.New(srv.URL)
		ctx := context.Background()

		Convey("When a participant is created and listed by team", func() {
			body, _ := json.Marshal(map[string]any{"name": "Ann", "email": "ann@kpi.ua", "team_id": team})
			route, _ := client.FindEditRoute("Add participant (POST)")
			_, err := c.Edit(ctx, route, string(body))
			So(err, ShouldBeNil)

			routes, err := c.Routes(ctx)
			So(err, ShouldBeNil)

			var template string
			for _, r := range routes {
				if r.Label == "Team participants" {
					template = r.Value
				}
			}
			So(template, ShouldEqual, "/participants/:team_id")

			path, err := client.BuildPath(template, strconv.FormatInt(team, 10), "")
			So(err, ShouldBeNil)
			resp, err := c.Get(ctx, path)
			So(err, ShouldBeNil)
			So(resp.RequestID, ShouldNotBeEmpty)

			v, err := resp.Decode()
			So(err, ShouldBeNil)
			view := client.Tabulate(v)

			Convey("Then the table lists the new participant", func() {
				So(view.Headers, ShouldResemble, []string{"participant_id", "name", "email", "team_id"})
				So(len(view.Rows), ShouldEqual, 1)
				So(view.Rows[0][1], ShouldEqual, "Ann")
			})
		})

		Convey("When a malformed id reaches the API", func() {
			_, err := c.Get(ctx, "/participants/abc")

			var se *client.StatusError
			So(errors.As(err, &se), ShouldBeTrue)
			So(se.StatusCode, ShouldEqual, http.StatusInternalServerError)
		})
	})
}
