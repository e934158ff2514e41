// Package snapshots holds the successive versions of the application route
// table. Version 3 is the table served by default.
package snapshots

import (
	"errors"
	"fmt"
	"slices"

	"github.com/autoxela/navigator/pkg/navigation"
)

// ErrUnknownVersion is returned for a version with no recorded table.
var ErrUnknownVersion = errors.New("unknown snapshot version")

// CurrentVersion is the canonical table version.
const CurrentVersion = 3

var base = []navigation.Route{
	{Path: "/", Name: "home", View: "HomeView"},
	{Path: "/login", Name: "login", View: "LoginView"},
	{Path: "/create-user", Name: "create-user", View: "CreateUserView"},
}

var accounts = []navigation.Route{
	{Path: "/users", Name: "users", View: "UserView"},
}

var fleet = []navigation.Route{
	{Path: "/my-vehicles", Name: "my-vehicles", View: "MyVehiclesView"},
	{Path: "/inventory", Name: "inventory", View: "InventoryView"},
	{Path: "/vehicle-registration", Name: "vehicle-registration", View: "VehicleRegistrationView"},
	{Path: "/restore", Name: "restore", View: "RestoreView"},
}

var workshop = []navigation.Route{
	{Path: "/works/create", Name: "createWorks", View: "CreateWork"},
	{Path: "/works/list", Name: "worksList", View: "ViewWorks"},
	{Path: "/vehicle/create", Name: "createVehicle", View: "CreateVehicle"},
	{Path: "/vehicle/addWork/:vehicleId", Name: "addWork", View: "CreateWork", Props: true},
	{Path: "/vehicle/details/:vehicleId", Name: "viewVehicleDetails", View: "DetailsVehicle", Props: true},
	{Path: "/works/add/progress/:workOrderId", Name: "workordersAddProgress", View: "TrackWork", Props: true},
}

var commerce = []navigation.Route{
	{Path: "/assignment", Name: "assignment", View: "AssignmentView"},
	{Path: "/buy", Name: "buy", View: "BuyView"},
	{Path: "/factura", Name: "factura", View: "FacturaView"},
	{Path: "/reports", Name: "reports", View: "ReportsView"},
	{Path: "/mov", Name: "mov", View: "MovimientosView"},
}

var tables = map[int]*navigation.Table{
	1: navigation.MustTable(slices.Concat(base, fleet)...),
	2: navigation.MustTable(slices.Concat(base, accounts, fleet)...),
	3: navigation.MustTable(slices.Concat(base, accounts, fleet, workshop, commerce)...),
}

// Versions returns the recorded versions in ascending order.
func Versions() []int {
	versions := make([]int, 0, len(tables))
	for v := range tables {
		versions = append(versions, v)
	}
	slices.Sort(versions)
	return versions
}

// Get returns the table recorded for version.
func Get(version int) (*navigation.Table, error) {
	t, ok := tables[version]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVersion, version)
	}
	return t, nil
}

// Current returns the canonical table.
func Current() *navigation.Table {
	return tables[CurrentVersion]
}

// Views returns the distinct view names of table in first-use order.
func Views(table *navigation.Table) []string {
	var views []string
	for _, r := range table.Routes() {
		if !slices.Contains(views, r.View) {
			views = append(views, r.View)
		}
	}
	return views
}
