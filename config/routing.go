package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"civicdispatch-be/dispatch"
	"civicdispatch-be/models"
)

// routingFile is the on-disk shape of a category routing table. Authorities
// are referenced by display name and must exist in the directory.
//
//	routes:
//	  - category: Pothole
//	    authority: Rajesh (Roads)
//	default: Vikram (Municipal)
type routingFile struct {
	Routes []struct {
		Category  string `yaml:"category"`
		Authority string `yaml:"authority"`
	} `yaml:"routes"`
	Default string `yaml:"default"`
}

// LoadRoutingTable builds the category-routing policy. With no ROUTING_FILE
// set it returns the built-in table.
func LoadRoutingTable() (*dispatch.CategoryRouting, error) {
	path := os.Getenv("ROUTING_FILE")
	if path == "" {
		return dispatch.DefaultRouting(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading routing table %s: %w", path, err)
	}
	var rf routingFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parsing routing table %s: %w", path, err)
	}

	def, ok := models.AuthorityByName(rf.Default)
	if !ok {
		return nil, fmt.Errorf("routing table %s: unknown default authority %q", path, rf.Default)
	}
	routes := make(map[models.IssueCategory]models.Authority, len(rf.Routes))
	for _, r := range rf.Routes {
		a, ok := models.AuthorityByName(r.Authority)
		if !ok {
			return nil, fmt.Errorf("routing table %s: unknown authority %q for category %q", path, r.Authority, r.Category)
		}
		routes[models.IssueCategory(r.Category)] = a
	}
	return dispatch.NewCategoryRouting(routes, def), nil
}

// DispatchPolicy selects the active dispatch policy. Category routing is the
// default; DISPATCH_POLICY=workload switches to least-workload assignment.
func DispatchPolicy() (dispatch.Policy, error) {
	switch os.Getenv("DISPATCH_POLICY") {
	case "", "category":
		return LoadRoutingTable()
	case "workload":
		return dispatch.NewLeastWorkload(nil), nil
	default:
		return nil, fmt.Errorf("unknown DISPATCH_POLICY %q (want category or workload)", os.Getenv("DISPATCH_POLICY"))
	}
}
