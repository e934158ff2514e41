package catalog_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/autoxela/navigator/internal/catalog"
	"github.com/autoxela/navigator/internal/routes"
	"github.com/autoxela/navigator/internal/snapshots"
	"github.com/autoxela/navigator/pkg/navigation"
	"github.com/autoxela/navigator/pkg/pagination"
)

func newHandler(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	sys := catalog.New(snapshots.Current(), snapshots.CurrentVersion, logger, pagination.Config{DefaultPageSize: 50, MaxPageSize: 100})

	r := routes.New(logger)
	r.RegisterGroup(sys.Handler().Routes())
	h, err := r.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return h
}

func get(t *testing.T, h http.Handler, target string, out any) int {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	if out != nil {
		if err := json.NewDecoder(w.Body).Decode(out); err != nil {
			t.Fatalf("%s: decode body: %v", target, err)
		}
	}
	return w.Code
}

func TestList(t *testing.T) {
	h := newHandler(t)

	var page pagination.PageResult[catalog.Entry]
	if status := get(t, h, "/routes", &page); status != http.StatusOK {
		t.Fatalf("status = %d, want %d", status, http.StatusOK)
	}
	if page.Total != 19 || len(page.Data) != 19 {
		t.Errorf("Total = %d, len(Data) = %d, want 19", page.Total, len(page.Data))
	}
	if page.Data[0].Name != "home" || page.Data[0].Path != "/" {
		t.Errorf("Data[0] = %+v, want home", page.Data[0])
	}
}

func TestList_SearchAndPage(t *testing.T) {
	h := newHandler(t)

	var page pagination.PageResult[catalog.Entry]
	get(t, h, "/routes?search=vehicle&page_size=2&page=2", &page)

	if page.Total != 5 {
		t.Errorf("Total = %d, want 5", page.Total)
	}
	if len(page.Data) != 2 || page.TotalPages != 3 {
		t.Errorf("Data = %+v, TotalPages = %d", page.Data, page.TotalPages)
	}
}

func TestFind(t *testing.T) {
	h := newHandler(t)

	var entry catalog.Entry
	if status := get(t, h, "/routes/viewVehicleDetails", &entry); status != http.StatusOK {
		t.Fatalf("status = %d, want %d", status, http.StatusOK)
	}
	if entry.View != "DetailsVehicle" || !entry.Props {
		t.Errorf("entry = %+v", entry)
	}
	if len(entry.Params) != 1 || entry.Params[0] != "vehicleId" {
		t.Errorf("Params = %v, want [vehicleId]", entry.Params)
	}

	if status := get(t, h, "/routes/missing", nil); status != http.StatusNotFound {
		t.Errorf("missing route status = %d, want %d", status, http.StatusNotFound)
	}
}

func TestResolve(t *testing.T) {
	h := newHandler(t)

	var m navigation.Match
	if status := get(t, h, "/resolve?path=/vehicle/details/42", &m); status != http.StatusOK {
		t.Fatalf("status = %d, want %d", status, http.StatusOK)
	}
	if m.Route.Name != "viewVehicleDetails" || m.Params["vehicleId"] != "42" {
		t.Errorf("match = %+v", m)
	}

	tests := []struct {
		target string
		status int
	}{
		{"/resolve", http.StatusBadRequest},
		{"/resolve?path=/nowhere", http.StatusNotFound},
	}
	for _, tt := range tests {
		if status := get(t, h, tt.target, nil); status != tt.status {
			t.Errorf("%s: status = %d, want %d", tt.target, status, tt.status)
		}
	}
}

func TestURL(t *testing.T) {
	h := newHandler(t)

	var body map[string]string
	if status := get(t, h, "/url/workordersAddProgress?workOrderId=77", &body); status != http.StatusOK {
		t.Fatalf("status = %d, want %d", status, http.StatusOK)
	}
	if body["url"] != "/works/add/progress/77" {
		t.Errorf("url = %q, want %q", body["url"], "/works/add/progress/77")
	}

	if status := get(t, h, "/url/workordersAddProgress", nil); status != http.StatusBadRequest {
		t.Errorf("missing param status = %d, want %d", status, http.StatusBadRequest)
	}
	if status := get(t, h, "/url/missing", nil); status != http.StatusNotFound {
		t.Errorf("unknown route status = %d, want %d", status, http.StatusNotFound)
	}
}

func TestSnapshots(t *testing.T) {
	h := newHandler(t)

	var list []catalog.Snapshot
	get(t, h, "/snapshots", &list)
	if len(list) != 3 || !list[2].Current || list[0].Routes != 7 {
		t.Errorf("snapshots = %+v", list)
	}

	var entries []catalog.Entry
	if status := get(t, h, "/snapshots/2", &entries); status != http.StatusOK {
		t.Fatalf("status = %d, want %d", status, http.StatusOK)
	}
	if len(entries) != 8 {
		t.Errorf("len(entries) = %d, want 8", len(entries))
	}

	tests := []struct {
		target string
		status int
	}{
		{"/snapshots/9", http.StatusNotFound},
		{"/snapshots/latest", http.StatusBadRequest},
	}
	for _, tt := range tests {
		if status := get(t, h, tt.target, nil); status != tt.status {
			t.Errorf("%s: status = %d, want %d", tt.target, status, tt.status)
		}
	}
}

func TestDiff(t *testing.T) {
	h := newHandler(t)

	var changes navigation.Changes
	if status := get(t, h, "/snapshots/diff?from=1&to=2", &changes); status != http.StatusOK {
		t.Fatalf("status = %d, want %d", status, http.StatusOK)
	}
	if len(changes.Added) != 1 || changes.Added[0].Name != "users" {
		t.Errorf("Added = %+v", changes.Added)
	}

	if status := get(t, h, "/snapshots/diff?from=1", nil); status != http.StatusBadRequest {
		t.Errorf("missing to status = %d, want %d", status, http.StatusBadRequest)
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{catalog.ErrNotFound, http.StatusNotFound},
		{navigation.ErrUnknownRoute, http.StatusNotFound},
		{snapshots.ErrUnknownVersion, http.StatusNotFound},
		{catalog.ErrInvalidRequest, http.StatusBadRequest},
		{navigation.ErrMissingParam, http.StatusBadRequest},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		if got := catalog.MapHTTPStatus(tt.err); got != tt.want {
			t.Errorf("MapHTTPStatus(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}
