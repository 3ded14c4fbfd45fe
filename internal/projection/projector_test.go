package projection

import (
	"encoding/json"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-predictor/internal/resumeparse"
)

func fixedProjector() *Projector {
	return NewProjector(func() time.Time { return time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC) })
}

const scenarioText = "Skills: React, Node.js\nExperience: Software Engineer at Acme 2020-2022\nEducation: B.Tech CS XYZ 2016-2020"

func sampleRecords() map[string]resumeparse.Record {
	return map[string]resumeparse.Record{
		"empty":    resumeparse.Parse(""),
		"scenario": resumeparse.Parse(scenarioText),
		"rich": resumeparse.Parse(`Asha Rao
asha@rao.dev
Skills
Python, SQL, Pandas, Docker, Kubernetes, React, TypeScript, Go, AWS, Figma, Jira, Selenium
Experience
Data Engineer at Initech Jan 2015 - Present
Analyst | Globex | 2012 - 2015
Projects
Pipeline: streaming ETL
Dashboard: KPIs
Forecaster: demand model
Education
MSc Statistics, University of Leeds, 2012`),
	}
}

func roadmapKeys(p Prediction) []string {
	keys := make([]string, 0, len(p.Roadmap))
	for k := range p.Roadmap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func TestProjectEndToEndScenario(t *testing.T) {
	rec := resumeparse.Parse(scenarioText)
	pred := fixedProjector().Project(rec, RoleFullStack, Days60, Enrichment{})

	react, ok := pred.SkillProgression.Get("React")
	require.True(t, ok)
	assert.Greater(t, react.Current, 0)
	node, ok := pred.SkillProgression.Get("Node.js")
	require.True(t, ok)
	assert.Greater(t, node.Current, 0)

	assert.Len(t, pred.Projects, 3)
	assert.Equal(t, []string{"day30", "day60"}, roadmapKeys(pred))
	assert.Equal(t, "Full Stack Developer", pred.TargetRole)
	assert.Equal(t, 60, pred.TimeframeDays)
}

func TestProjectScenarioValues(t *testing.T) {
	pred := fixedProjector().Project(resumeparse.Parse(scenarioText), RoleFullStack, Days60, Enrichment{})

	assert.Equal(t, []string{"Node.js", "React", "JavaScript", "TypeScript", "Express", "PostgreSQL"}, pred.SkillProgression.Names())

	node, _ := pred.SkillProgression.Get("Node.js")
	assert.Equal(t, 60, node.Current)
	assert.Equal(t, 72, node.Future)
	assert.False(t, node.IsNew)

	react, _ := pred.SkillProgression.Get("React")
	assert.Equal(t, 59, react.Current)
	assert.Equal(t, 71, react.Future)

	js, _ := pred.SkillProgression.Get("JavaScript")
	assert.True(t, js.IsNew)
	assert.Zero(t, js.Current)
	assert.Equal(t, 10, js.MarketRelevance)
	assert.Equal(t, PriorityHigh, js.Priority)

	assert.InDelta(t, 10.49, pred.Salary.Current, 0.001)
	assert.Equal(t, "INR", pred.Salary.Currency)
	assert.True(t, strings.HasPrefix(pred.Salary.EstimateRangeText, "₹"))
	assert.True(t, strings.HasSuffix(pred.Salary.EstimateRangeText, " LPA"))

	assert.Equal(t, "Days 1-20", pred.Projects[0].Timeline)
	assert.Equal(t, "Days 21-40", pred.Projects[1].Timeline)
	assert.Equal(t, "Days 41-60", pred.Projects[2].Timeline)
	assert.Equal(t, []Difficulty{Beginner, Intermediate, Advanced},
		[]Difficulty{pred.Projects[0].Difficulty, pred.Projects[1].Difficulty, pred.Projects[2].Difficulty})

	// two skills, two years, no projects, one degree, 60-day bonus
	assert.Equal(t, 6+16+0+5+20, pred.JobRoleReadiness.ReadinessScore)
	assert.NoError(t, pred.Validate())
}

func TestProjectIsDeterministic(t *testing.T) {
	for name, rec := range sampleRecords() {
		for _, role := range Roles() {
			for _, tf := range []Timeframe{Days30, Days60, Days90} {
				a, err := json.Marshal(fixedProjector().Project(rec, role, tf, Enrichment{}))
				require.NoError(t, err)
				b, err := json.Marshal(fixedProjector().Project(rec, role, tf, Enrichment{}))
				require.NoError(t, err)
				assert.Equal(t, string(a), string(b), "%s/%s/%d", name, role, tf)
			}
		}
	}
}

func TestProjectInvariantsAcrossCatalog(t *testing.T) {
	wantProjects := map[Timeframe]int{Days30: 2, Days60: 3, Days90: 4}
	wantPhases := map[Timeframe][]string{
		Days30: {"day30"},
		Days60: {"day30", "day60"},
		Days90: {"day30", "day60", "day90"},
	}

	for name, rec := range sampleRecords() {
		for _, role := range Roles() {
			var prevFuture float64
			for _, tf := range []Timeframe{Days30, Days60, Days90} {
				pred := fixedProjector().Project(rec, role, tf, Enrichment{})
				label := name + "/" + role.String()

				require.NoError(t, pred.Validate(), label)
				for _, s := range pred.SkillProgression {
					assert.GreaterOrEqual(t, s.Future, s.Current, "%s %s", label, s.Name)
					assert.LessOrEqual(t, s.Future, 95, "%s %s", label, s.Name)
					if s.IsNew {
						assert.Zero(t, s.Current)
						assert.LessOrEqual(t, s.Future, tf.table().maxNew)
					}
					assert.GreaterOrEqual(t, s.MarketRelevance, 0)
					assert.LessOrEqual(t, s.MarketRelevance, 10)
				}

				assert.Len(t, pred.Projects, wantProjects[tf], label)
				for _, p := range pred.Projects {
					assert.NotEmpty(t, p.TechStack, label)
				}
				assert.Equal(t, wantPhases[tf], roadmapKeys(pred), label)
				assert.Len(t, pred.Achievements, 3, label)

				assert.Greater(t, pred.Salary.Range.Min, 0.0)
				assert.Less(t, pred.Salary.Range.Min, pred.Salary.Range.Max)
				assert.Greater(t, pred.Salary.Future, prevFuture, label)
				prevFuture = pred.Salary.Future

				score := pred.JobRoleReadiness.ReadinessScore
				assert.True(t, score >= 0 && score <= 100, label)
				conf := pred.JobRoleReadiness.Confidence
				assert.True(t, conf >= 0 && conf <= 1, label)

				for _, snap := range []Snapshot{pred.Comparison.Current, pred.Comparison.Future} {
					for _, metric := range []int{snap.TechnicalDepth, snap.PortfolioStrength, snap.MarketReadiness, snap.OverallScore} {
						assert.True(t, metric >= 0 && metric <= 100, label)
					}
				}
			}
		}
	}
}

func TestProjectSkillCaps(t *testing.T) {
	rec := sampleRecords()["rich"]
	pred := fixedProjector().Project(rec, RoleDevOps, Days30, Enrichment{})

	existing, fresh := 0, 0
	for _, s := range pred.SkillProgression {
		if s.IsNew {
			fresh++
		} else {
			existing++
		}
	}
	assert.Equal(t, 3, existing)
	assert.Equal(t, 2, fresh)

	pred = fixedProjector().Project(rec, RoleDevOps, Days90, Enrichment{})
	existing = 0
	for _, s := range pred.SkillProgression {
		if !s.IsNew {
			existing++
		}
	}
	assert.Equal(t, 9, existing)
}

func TestProjectInvalidProjectsDoNotCount(t *testing.T) {
	rec := resumeparse.Parse(scenarioText)
	rec.Projects = []string{"john@x.com: contact me", "Summary: about me"}

	pred := fixedProjector().Project(rec, RoleFullStack, Days60, Enrichment{})
	assert.Zero(t, pred.Comparison.Current.ProjectCount)
	assert.Equal(t, 3, pred.Comparison.Future.ProjectCount)
}

func TestProjectEnrichmentOnlyTouchesSalaryText(t *testing.T) {
	rec := resumeparse.Parse(scenarioText)
	plain := fixedProjector().Project(rec, RoleBackend, Days90, Enrichment{})
	enriched := fixedProjector().Project(rec, RoleBackend, Days90, Enrichment{
		InterviewScores: map[string]float64{"technical": 80, "behavioral": 70},
		Strengths:       []string{"system design"},
	})

	assert.Equal(t, plain.Salary.Range, enriched.Salary.Range)
	assert.Equal(t, plain.SkillProgression, enriched.SkillProgression)
	assert.Greater(t, len(enriched.Salary.Factors), len(plain.Salary.Factors))
	assert.Contains(t, enriched.Salary.Factors, "Interview performance averaging 75/100 across 2 sessions")
	assert.Contains(t, enriched.Salary.Reasoning, "75/100")
}

func TestProjectUnknownTimeframeFallsBack(t *testing.T) {
	pred := fixedProjector().Project(resumeparse.Parse(scenarioText), RoleQA, Timeframe(45), Enrichment{})
	assert.Equal(t, 90, pred.TimeframeDays)
	assert.Len(t, pred.Projects, 4)
}

func TestSkillProgressionJSONKeepsOrder(t *testing.T) {
	pred := fixedProjector().Project(resumeparse.Parse(scenarioText), RoleFullStack, Days60, Enrichment{})
	body, err := json.Marshal(pred)
	require.NoError(t, err)

	text := string(body)
	last := -1
	for _, name := range pred.SkillProgression.Names() {
		idx := strings.Index(text, `"`+name+`":{"current"`)
		require.Greater(t, idx, last, name)
		last = idx
	}

	var decoded Prediction
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Equal(t, pred.SkillProgression, decoded.SkillProgression)
	assert.Equal(t, pred.Comparison.Current.Skills, decoded.Comparison.Current.Skills)
}
