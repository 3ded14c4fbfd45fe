package projection

import (
	"errors"
	"fmt"
)

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"

	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

// Prediction is the projected trajectory for one resume, role and horizon.
type Prediction struct {
	TargetRole       string           `json:"targetRole"`
	TimeframeDays    int              `json:"timeframeDays"`
	SkillProgression SkillProgression `json:"skillProgression"`
	Projects         []Project        `json:"projects"`
	Achievements     []Achievement    `json:"achievements"`
	Roadmap          map[string]Phase `json:"roadmap"`
	Salary           Salary           `json:"salary"`
	JobRoleReadiness JobRoleReadiness `json:"jobRoleReadiness"`
	Comparison       Comparison       `json:"comparison"`
}

// SkillProgress is one skill's current and projected level.
type SkillProgress struct {
	Name            string   `json:"-"`
	Current         int      `json:"current"`
	Future          int      `json:"future"`
	Improvement     int      `json:"improvement"`
	MarketRelevance int      `json:"marketRelevance"`
	Priority        Priority `json:"priority"`
	Reasoning       string   `json:"reasoning"`
	IsNew           bool     `json:"isNew"`
}

type Project struct {
	Title               string     `json:"title"`
	TechStack           []string   `json:"techStack"`
	Description         string     `json:"description"`
	Impact              string     `json:"impact"`
	Difficulty          Difficulty `json:"difficulty"`
	Timeline            string     `json:"timeline"`
	WhatYouWillBuild    []string   `json:"whatYouWillBuild"`
	WhyThisMatters      string     `json:"whyThisMatters"`
	WhatRecruiterLearns []string   `json:"whatRecruiterLearns"`
	ResumeImpact        string     `json:"resumeImpact"`
	AddressesSkillGaps  []string   `json:"addressesSkillGaps"`
	LearningOutcomes    []string   `json:"learningOutcomes"`
}

type Achievement struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Timeline    string     `json:"timeline"`
	Difficulty  Difficulty `json:"difficulty"`
	Category    string     `json:"category"`
}

type Phase struct {
	Goals             []string `json:"goals"`
	WeeklyMissions    []string `json:"weeklyMissions"`
	MonthlyMilestones []string `json:"monthlyMilestones"`
	FocusAreas        []string `json:"focusAreas"`
}

type Salary struct {
	EstimateRangeText string      `json:"estimateRangeText"`
	Range             SalaryRange `json:"range"`
	Current           float64     `json:"current"`
	Future            float64     `json:"future"`
	Currency          string      `json:"currency"`
	Factors           []string    `json:"factors"`
	Reasoning         string      `json:"reasoning"`
}

type SalaryRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type JobRoleReadiness struct {
	PredictedRole  string   `json:"predictedRole"`
	Confidence     float64  `json:"confidence"`
	Requirements   []string `json:"requirements"`
	ReadinessScore int      `json:"readinessScore"`
}

type Comparison struct {
	Current Snapshot `json:"current"`
	Future  Snapshot `json:"future"`
}

// Snapshot scores are in [0,100]; SkillCount and ProjectCount are counts.
type Snapshot struct {
	SkillCount        int         `json:"skillCount"`
	ProjectCount      int         `json:"projectCount"`
	TechnicalDepth    int         `json:"technicalDepth"`
	PortfolioStrength int         `json:"portfolioStrength"`
	MarketReadiness   int         `json:"marketReadiness"`
	OverallScore      int         `json:"overallScore"`
	Skills            SkillLevels `json:"skills"`
}

// SkillLevel is a named level in a snapshot.
type SkillLevel struct {
	Name  string
	Level int
}

var errInvalidPrediction = errors.New("invalid prediction")

// Validate checks the invariants every projection must satisfy.
func (p Prediction) Validate() error {
	for _, s := range p.SkillProgression {
		if s.Future < s.Current {
			return fmt.Errorf("%w: %s future %d below current %d", errInvalidPrediction, s.Name, s.Future, s.Current)
		}
		if s.Future > 95 {
			return fmt.Errorf("%w: %s future %d above 95", errInvalidPrediction, s.Name, s.Future)
		}
	}
	if r := p.Salary.Range; r.Min <= 0 || r.Min >= r.Max {
		return fmt.Errorf("%w: salary range %.2f-%.2f", errInvalidPrediction, r.Min, r.Max)
	}
	if score := p.JobRoleReadiness.ReadinessScore; score < 0 || score > 100 {
		return fmt.Errorf("%w: readiness %d", errInvalidPrediction, score)
	}
	if len(p.Projects) == 0 {
		return fmt.Errorf("%w: no projects", errInvalidPrediction)
	}
	return nil
}
