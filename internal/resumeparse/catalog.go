package resumeparse

import (
	"regexp"
	"strings"
)

const categoryOther = "Other"

// catalogEntry is a known skill. Entries with scan=false are too ambiguous to
// be found by keyword scanning free text and are only recognised in lists.
type catalogEntry struct {
	name     string
	category string
	aliases  []string
	scan     bool
}

var skillCatalog = []catalogEntry{
	{"JavaScript", "Languages", []string{"js", "javascript es6", "es6"}, true},
	{"TypeScript", "Languages", []string{"ts"}, true},
	{"Python", "Languages", []string{"python3"}, true},
	{"Java", "Languages", nil, true},
	{"Go", "Languages", []string{"golang"}, false},
	{"C++", "Languages", []string{"cpp"}, true},
	{"C#", "Languages", []string{"csharp", "c sharp"}, true},
	{"C", "Languages", nil, false},
	{"Ruby", "Languages", nil, true},
	{"PHP", "Languages", nil, true},
	{"Kotlin", "Languages", nil, true},
	{"Swift", "Languages", nil, true},
	{"Rust", "Languages", nil, true},
	{"Dart", "Languages", nil, true},
	{"Scala", "Languages", nil, true},
	{"R", "Languages", nil, false},
	{"SQL", "Languages", nil, true},
	{"HTML", "Languages", []string{"html5"}, true},
	{"CSS", "Languages", []string{"css3"}, true},

	{"React", "Frontend", []string{"react.js", "reactjs", "react js"}, true},
	{"Next.js", "Frontend", []string{"nextjs", "next js"}, true},
	{"Vue", "Frontend", []string{"vue.js", "vuejs"}, true},
	{"Angular", "Frontend", []string{"angularjs", "angular.js"}, true},
	{"Redux", "Frontend", []string{"redux toolkit"}, true},
	{"Tailwind CSS", "Frontend", []string{"tailwind", "tailwindcss"}, true},
	{"Sass", "Frontend", []string{"scss"}, true},
	{"Webpack", "Frontend", nil, true},
	{"Vite", "Frontend", nil, true},
	{"jQuery", "Frontend", nil, true},
	{"Svelte", "Frontend", nil, true},

	{"Node.js", "Backend", []string{"nodejs", "node js"}, true},
	{"Express", "Backend", []string{"express.js", "expressjs"}, false},
	{"Django", "Backend", nil, true},
	{"Flask", "Backend", nil, true},
	{"FastAPI", "Backend", nil, true},
	{"Spring Boot", "Backend", []string{"springboot", "spring"}, true},
	{"Ruby on Rails", "Backend", []string{"rails", "ror"}, true},
	{"Laravel", "Backend", nil, true},
	{".NET", "Backend", []string{"dotnet", "asp.net", ".net core"}, true},
	{"GraphQL", "Backend", nil, true},
	{"REST APIs", "Backend", []string{"rest", "rest api", "restful", "restful apis", "restful api"}, true},
	{"Microservices", "Backend", []string{"microservice"}, true},
	{"gRPC", "Backend", nil, true},

	{"PostgreSQL", "Databases", []string{"postgres", "postgresql db"}, true},
	{"MySQL", "Databases", nil, true},
	{"MongoDB", "Databases", []string{"mongo"}, true},
	{"Redis", "Databases", nil, true},
	{"SQLite", "Databases", nil, true},
	{"Oracle", "Databases", []string{"oracle db"}, true},
	{"DynamoDB", "Databases", nil, true},
	{"Elasticsearch", "Databases", []string{"elastic search"}, true},
	{"Firebase", "Databases", nil, true},
	{"Cassandra", "Databases", nil, true},

	{"AWS", "Cloud & DevOps", []string{"amazon web services"}, true},
	{"Azure", "Cloud & DevOps", []string{"microsoft azure"}, true},
	{"GCP", "Cloud & DevOps", []string{"google cloud", "google cloud platform"}, true},
	{"Docker", "Cloud & DevOps", nil, true},
	{"Kubernetes", "Cloud & DevOps", []string{"k8s"}, true},
	{"Terraform", "Cloud & DevOps", nil, true},
	{"Ansible", "Cloud & DevOps", nil, true},
	{"Jenkins", "Cloud & DevOps", nil, true},
	{"CI/CD", "Cloud & DevOps", []string{"cicd", "ci cd", "ci/cd pipelines"}, true},
	{"GitHub Actions", "Cloud & DevOps", nil, true},
	{"Linux", "Cloud & DevOps", nil, true},
	{"Nginx", "Cloud & DevOps", nil, true},
	{"Prometheus", "Cloud & DevOps", nil, true},
	{"Grafana", "Cloud & DevOps", nil, true},

	{"Machine Learning", "Data & ML", []string{"ml"}, true},
	{"Deep Learning", "Data & ML", nil, true},
	{"TensorFlow", "Data & ML", nil, true},
	{"PyTorch", "Data & ML", nil, true},
	{"scikit-learn", "Data & ML", []string{"sklearn", "scikit learn"}, true},
	{"Pandas", "Data & ML", nil, true},
	{"NumPy", "Data & ML", nil, true},
	{"Data Analysis", "Data & ML", []string{"data analytics"}, true},
	{"Statistics", "Data & ML", nil, true},
	{"NLP", "Data & ML", []string{"natural language processing"}, true},
	{"Computer Vision", "Data & ML", []string{"opencv"}, true},
	{"Power BI", "Data & ML", []string{"powerbi"}, true},
	{"Tableau", "Data & ML", nil, true},
	{"Spark", "Data & ML", []string{"apache spark", "pyspark"}, true},
	{"Excel", "Data & ML", []string{"ms excel", "microsoft excel"}, false},

	{"React Native", "Mobile", nil, true},
	{"Flutter", "Mobile", nil, true},
	{"Android", "Mobile", nil, true},
	{"iOS", "Mobile", nil, true},
	{"SwiftUI", "Mobile", nil, true},
	{"Jetpack Compose", "Mobile", nil, true},

	{"Jest", "Testing", nil, true},
	{"Cypress", "Testing", nil, true},
	{"Selenium", "Testing", nil, true},
	{"Playwright", "Testing", nil, true},
	{"JUnit", "Testing", nil, true},
	{"PyTest", "Testing", nil, true},
	{"Unit Testing", "Testing", nil, true},
	{"Postman", "Testing", nil, true},
	{"Test Automation", "Testing", []string{"automation testing"}, true},
	{"Appium", "Testing", nil, true},

	{"Figma", "Design", nil, true},
	{"Adobe XD", "Design", nil, true},
	{"Sketch", "Design", nil, false},
	{"Photoshop", "Design", []string{"adobe photoshop"}, true},
	{"Illustrator", "Design", []string{"adobe illustrator"}, true},
	{"Wireframing", "Design", []string{"wireframes"}, true},
	{"Prototyping", "Design", nil, true},
	{"User Research", "Design", nil, true},
	{"UI Design", "Design", nil, true},
	{"UX Design", "Design", nil, true},

	{"Git", "Tools", nil, true},
	{"GitHub", "Tools", nil, true},
	{"Jira", "Tools", nil, true},
	{"Agile", "Tools", nil, true},
	{"Scrum", "Tools", nil, true},
	{"Confluence", "Tools", nil, true},
	{"Product Roadmapping", "Tools", []string{"roadmapping", "product roadmap"}, true},
	{"A/B Testing", "Tools", []string{"ab testing"}, true},
	{"Analytics", "Tools", []string{"google analytics"}, true},
}

var (
	catalogIndex = buildCatalogIndex()
	catalogScans = buildCatalogScans()
)

// scanSkipAliases are list-only aliases that read as ordinary words in prose.
var scanSkipAliases = map[string]bool{"rest": true, "spring": true, "ror": true, "ts": true}

func buildCatalogIndex() map[string]catalogEntry {
	index := make(map[string]catalogEntry, len(skillCatalog)*2)
	for _, entry := range skillCatalog {
		index[strings.ToLower(entry.name)] = entry
		for _, alias := range entry.aliases {
			index[alias] = entry
		}
	}
	return index
}

type catalogScan struct {
	entry catalogEntry
	re    *regexp.Regexp
}

func buildCatalogScans() []catalogScan {
	scans := make([]catalogScan, 0, len(skillCatalog))
	for _, entry := range skillCatalog {
		if !entry.scan {
			continue
		}
		terms := []string{regexp.QuoteMeta(strings.ToLower(entry.name))}
		for _, alias := range entry.aliases {
			if !scanSkipAliases[alias] {
				terms = append(terms, regexp.QuoteMeta(alias))
			}
		}
		pattern := `(?i)(?:^|[^\p{L}\p{N}+#.])(?:` + strings.Join(terms, "|") + `)(?:$|[^\p{L}\p{N}+#])`
		scans = append(scans, catalogScan{entry: entry, re: regexp.MustCompile(pattern)})
	}
	return scans
}

// CanonicalSkill maps a known alias onto its catalog name. Unknown skills are
// returned unchanged.
func CanonicalSkill(name string) string {
	if entry, ok := catalogIndex[strings.ToLower(strings.TrimSpace(name))]; ok {
		return entry.name
	}
	return strings.TrimSpace(name)
}

// SkillCategory reports the catalog category of a skill, or "Other".
func SkillCategory(name string) string {
	if entry, ok := catalogIndex[strings.ToLower(strings.TrimSpace(name))]; ok {
		return entry.category
	}
	return categoryOther
}
