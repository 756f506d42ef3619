// Package atsserver exposes the resume analysis engine as MCP tools:
// resume_analyze, resume_compare, industry_detect, keyword_suggest,
// ats_report, analysis_history_list.
package atsserver

import (
	"github.com/anatolykoptev/go_ats/internal/engine"
	"github.com/anatolykoptev/go_ats/internal/engine/ats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers all analysis tools on the given MCP server.
func RegisterTools(server *mcp.Server) {
	registerResumeAnalyze(server)
	registerResumeCompare(server)
	registerIndustryDetect(server)
	registerKeywordSuggest(server)
	registerATSReport(server)
	registerHistoryList(server)
}

// profileFromInput converts the tool-level profile to the engine type.
// Nil sections stay nil so the engine can flag an incomplete profile.
func profileFromInput(in *engine.ProfileInput) *ats.ResumeProfile {
	if in == nil {
		return nil
	}
	p := &ats.ResumeProfile{
		Name:           in.Name,
		Email:          in.Email,
		Phone:          in.Phone,
		Certifications: in.Certifications,
	}
	if in.Skills != nil {
		p.Skills = make([]ats.Skill, 0, len(in.Skills))
		for _, s := range in.Skills {
			cat := s.Category
			if cat == "" {
				cat = ats.Default().Taxonomy.Category(s.Name)
			}
			p.Skills = append(p.Skills, ats.Skill{Name: s.Name, Category: cat})
		}
	}
	if in.Experience != nil {
		p.Experience = make([]ats.ExperienceEntry, 0, len(in.Experience))
		for _, e := range in.Experience {
			p.Experience = append(p.Experience, ats.ExperienceEntry{
				Title:       e.Title,
				Company:     e.Company,
				StartDate:   e.StartDate,
				EndDate:     e.EndDate,
				Description: e.Description,
			})
		}
	}
	if in.Education != nil {
		p.Education = make([]ats.EducationEntry, 0, len(in.Education))
		for _, e := range in.Education {
			p.Education = append(p.Education, ats.EducationEntry{
				Degree:      e.Degree,
				Institution: e.Institution,
				Field:       e.Field,
				Date:        e.Date,
			})
		}
	}
	return p
}
