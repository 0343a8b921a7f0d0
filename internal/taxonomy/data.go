package taxonomy

// defaultCategories is the built-in skill reference data. Terms are
// lower-cased and kept disjoint across categories; Resolve treats the first
// entry as authoritative if an override ever introduces a duplicate.
var defaultCategories = []Category{
	{
		Name: "programming",
		Subcategories: []Subcategory{
			{
				Name: "languages",
				Skills: []string{
					"python", "java", "javascript", "typescript", "go", "c++", "c#",
					"ruby", "php", "swift", "kotlin", "rust", "scala", "r",
				},
			},
			{
				Name:   "query languages",
				Skills: []string{"sql", "nosql", "graphql"},
			},
		},
	},
	{
		Name: "frameworks",
		Subcategories: []Subcategory{
			{
				Name: "web",
				Skills: []string{
					"react", "angular", "vue", "django", "flask", "spring",
					"express", "rails", "laravel", "next.js", "node.js",
				},
			},
			{
				Name:   "mobile",
				Skills: []string{"react native", "flutter", "swiftui"},
			},
		},
	},
	{
		Name: "databases",
		Subcategories: []Subcategory{
			{
				Name:   "relational",
				Skills: []string{"postgresql", "mysql", "oracle", "sql server", "sqlite"},
			},
			{
				Name:   "non-relational",
				Skills: []string{"mongodb", "redis", "cassandra", "elasticsearch", "dynamodb"},
			},
		},
	},
	{
		Name: "cloud",
		Subcategories: []Subcategory{
			{
				Name:   "platforms",
				Skills: []string{"aws", "azure", "gcp", "google cloud", "heroku"},
			},
			{
				Name: "infrastructure",
				Skills: []string{
					"docker", "kubernetes", "terraform", "ansible", "jenkins", "ci/cd",
				},
			},
		},
	},
	{
		Name: "data",
		Subcategories: []Subcategory{
			{
				Name: "analysis",
				Skills: []string{
					"data analysis", "data visualization", "machine learning",
					"deep learning", "statistics", "etl",
				},
			},
			{
				Name: "tooling",
				Skills: []string{
					"pandas", "numpy", "tensorflow", "pytorch", "spark", "hadoop",
					"tableau", "power bi",
				},
			},
		},
	},
	{
		Name: "soft skills",
		Subcategories: []Subcategory{
			{
				Name:   "collaboration",
				Skills: []string{"communication", "teamwork", "collaboration", "mentoring"},
			},
			{
				Name: "management",
				Skills: []string{
					"leadership", "project management", "agile", "scrum", "kanban",
					"stakeholder management",
				},
			},
		},
	},
	{
		Name: "tools",
		Subcategories: []Subcategory{
			{
				Name: "development",
				Skills: []string{
					"git", "github", "gitlab", "jira", "confluence", "linux", "bash",
				},
			},
		},
	},
}
