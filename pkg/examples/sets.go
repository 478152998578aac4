package examples

import "github.com/pluqqy/shuttle/pkg/models"

func peopleExample() ExampleSet {
	person := func(id, name, role, team, city string) models.Record {
		return models.Record{
			"id":   id,
			"name": name,
			"role": role,
			"team": map[string]any{"name": team},
			"location": map[string]any{
				"city": city,
			},
		}
	}

	return ExampleSet{
		Name:        "Team Roster",
		Description: "Pick people for a project by name, role, team or city",
		Identity:    models.IdentitySettings{Accessor: "id"},
		Columns: []models.Column{
			{Header: "Name", Accessor: "name"},
			{Header: "Role", Accessor: "role"},
			{Header: "Team", Accessor: "team.name"},
			{Header: "City", Accessor: "location.city"},
		},
		UI: models.UISettings{
			LeftTitle:   "People",
			RightTitle:  "Project",
			ShowCounts:  true,
			ActionHints: true,
		},
		Items: []models.Record{
			person("p1", "Ada Lovelace", "Engineer", "Core", "London"),
			person("p2", "Grace Hopper", "Engineer", "Compilers", "Arlington"),
			person("p3", "Margaret Hamilton", "Lead", "Flight", "Boston"),
			person("p4", "Katherine Johnson", "Analyst", "Flight", "Hampton"),
			person("p5", "Alan Turing", "Researcher", "Core", "Manchester"),
			person("p6", "Edsger Dijkstra", "Researcher", "Algorithms", "Eindhoven"),
			person("p7", "Barbara Liskov", "Lead", "Languages", "Cambridge"),
			person("p8", "Ken Thompson", "Engineer", "Systems", "Murray Hill"),
		},
	}
}

func packagesExample() ExampleSet {
	pkg := func(path, summary, license string, stars int) models.Record {
		return models.Record{
			"module":  path,
			"summary": summary,
			"meta": map[string]any{
				"license": license,
				"stars":   stars,
			},
		}
	}

	return ExampleSet{
		Name:        "Dependency Picker",
		Description: "Choose modules for a new service, keyed by module path",
		Identity:    models.IdentitySettings{Accessor: "module"},
		Columns: []models.Column{
			{Header: "Module", Accessor: "module"},
			{Header: "Summary", Accessor: "summary"},
			{Header: "License", Accessor: "meta.license"},
		},
		UI: models.UISettings{
			LeftTitle:   "Modules",
			RightTitle:  "go.mod",
			ShowCounts:  true,
			ActionHints: true,
		},
		Items: []models.Record{
			pkg("github.com/spf13/cobra", "CLI commands and flags", "Apache-2.0", 38000),
			pkg("github.com/spf13/viper", "Configuration from files and environment", "MIT", 27000),
			pkg("go.uber.org/zap", "Structured logging", "MIT", 21000),
			pkg("github.com/stretchr/testify", "Test assertions", "MIT", 23000),
			pkg("github.com/charmbracelet/bubbletea", "Terminal UI framework", "MIT", 27000),
			pkg("github.com/tidwall/gjson", "Fast JSON path reads", "MIT", 14000),
			pkg("gopkg.in/yaml.v3", "YAML encoding", "MIT", 3000),
			pkg("github.com/oklog/ulid/v2", "Sortable unique identifiers", "Apache-2.0", 4000),
		},
	}
}
