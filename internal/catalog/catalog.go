// Package catalog assembles every dashboard page into one registry.
package catalog

import (
	"fmt"
	"slices"

	"hris/internal/dashboard"
	"hris/internal/domain/admin"
	"hris/internal/domain/attendance"
	"hris/internal/domain/core"
	"hris/internal/domain/leave"
	"hris/internal/domain/payroll"
	"hris/internal/domain/setup"
	"hris/internal/platform/source"
)

func Pages() []*dashboard.Definition {
	var pages []*dashboard.Definition
	pages = append(pages, attendance.Pages()...)
	pages = append(pages, leave.RequestsPage())
	pages = append(pages, payroll.Pages()...)
	pages = append(pages, core.Pages()...)
	pages = append(pages, setup.Pages()...)
	pages = append(pages, admin.Pages()...)
	return pages
}

// Default builds the registry of every page and checks that each fixture a
// page loads is embedded.
func Default() (*dashboard.Registry, error) {
	reg, err := dashboard.NewRegistry(Pages()...)
	if err != nil {
		return nil, err
	}
	available, err := source.NewSimulated(0).Names()
	if err != nil {
		return nil, fmt.Errorf("list fixtures: %w", err)
	}
	if err := checkFixtures(reg, available); err != nil {
		return nil, err
	}
	return reg, nil
}

func checkFixtures(reg *dashboard.Registry, available []string) error {
	for _, name := range reg.Fixtures() {
		if !slices.Contains(available, name) {
			return fmt.Errorf("%w: %s", source.ErrFixtureNotFound, name)
		}
	}
	return nil
}
