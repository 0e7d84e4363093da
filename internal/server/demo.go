package server

import (
	"github.com/gabrielsuarezz/Voxtant/internal/interview"
	"github.com/gabrielsuarezz/Voxtant/internal/plan"
)

// Stable sample data served behind ?demo=true so the product can be shown
// offline without an API key.

func demoProfile() *interview.JobProfile {
	return &interview.JobProfile{
		Role: "Senior Full-Stack Engineer",
		SkillsCore: []string{
			"React",
			"TypeScript",
			"Node.js",
			"Python",
			"PostgreSQL",
			"REST APIs",
		},
		SkillsNice: []string{
			"GraphQL",
			"Docker",
			"AWS",
			"CI/CD",
			"Agile/Scrum",
		},
		Values: []string{
			"Collaboration",
			"Innovation",
			"User-centric design",
			"Continuous learning",
		},
		Requirements: []interview.Requirement{
			{Text: "5+ years of experience in full-stack development"},
			{Text: "Strong understanding of frontend and backend architecture"},
			{Text: "Experience with database design and optimization"},
			{Text: "Excellent communication and teamwork skills"},
			{Text: "Passion for building scalable, maintainable systems"},
		},
	}
}

func demoPlan() *plan.Plan {
	return &plan.Plan{
		Questions: []plan.Question{
			{
				ID:      "q1",
				Type:    plan.QuestionTypeBehavioral,
				Text:    "Tell me about a time when you had to architect a complex full-stack feature from scratch. Walk me through your technical decisions and how you ensured code quality.",
				Targets: []string{"React", "Node.js", "System Design", "Code Quality"},
			},
			{
				ID:      "q2",
				Type:    plan.QuestionTypeTechnical,
				Text:    "How would you design a REST API for a high-traffic application? What considerations would you make for scalability, security, and performance?",
				Targets: []string{"REST APIs", "PostgreSQL", "Scalability", "Security"},
			},
			{
				ID:      "q3",
				Type:    plan.QuestionTypeBehavioral,
				Text:    "Describe a situation where you had to balance competing priorities between product requirements and technical debt. How did you approach this challenge?",
				Targets: []string{"Problem-solving", "Communication", "Technical Leadership"},
			},
			{
				ID:      "q4",
				Type:    plan.QuestionTypeTechnical,
				Text:    "Explain your experience with TypeScript. How do you leverage its type system to write safer, more maintainable code?",
				Targets: []string{"TypeScript", "Code Quality", "Best Practices"},
			},
		},
		Rubric: map[string][]string{
			"q1": {
				"Provides clear context (Situation/Task)",
				"Explains architectural decisions and trade-offs",
				"Describes specific technologies and patterns used",
				"Demonstrates consideration for maintainability and testing",
				"Shows measurable results or positive outcomes",
			},
			"q2": {
				"Discusses RESTful principles and best practices",
				"Addresses authentication and authorization",
				"Mentions caching, rate limiting, and optimization strategies",
				"Considers database indexing and query optimization",
				"Demonstrates understanding of horizontal scaling",
			},
			"q3": {
				"Clearly defines the competing priorities",
				"Explains their decision-making process",
				"Describes how they communicated with stakeholders",
				"Shows balance between short-term and long-term thinking",
				"Reflects on lessons learned",
			},
			"q4": {
				"Discusses advanced TypeScript features (generics, utility types, etc.)",
				"Explains benefits of static typing",
				"Provides concrete examples from past projects",
				"Mentions integration with tooling (linters, IDE support)",
				"Demonstrates understanding of gradual typing strategies",
			},
		},
	}
}
