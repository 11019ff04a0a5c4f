package catalog

import "jobfit/internal/types"

// DefaultJobKey is the profile used when a caller does not pick one.
const DefaultJobKey = "software-engineer"

// Builtin returns the built-in job profile catalog.
func Builtin() *Static {
	s, _, err := NewStatic(builtinProfiles())
	if err != nil {
		// The built-in set is validated by tests; a failure here is a
		// programming error.
		panic(err)
	}
	return s
}

func builtinProfiles() []types.JobProfile {
	return []types.JobProfile{
		{
			Key:      "software-engineer",
			Label:    "Software Engineer",
			Category: "Engineering",
			RequiredSkills: types.RequiredSkills{
				Programming: []string{"JavaScript", "Python", "Java", "TypeScript"},
				Frameworks:  []string{"React", "Node.js", "Express", "Spring"},
				Databases:   []string{"SQL", "PostgreSQL", "MongoDB"},
				Tools:       []string{"Git", "Docker", "CI/CD"},
				Concepts:    []string{"Data Structures", "Algorithms", "REST API", "Testing"},
			},
			ExperienceKeywords: []string{"developed", "built", "implemented", "designed", "optimized", "deployed", "maintained", "debugged"},
			MinExperience:      1,
			Weights:            types.Weights{Technical: 0.40, Experience: 0.30, Projects: 0.20, Education: 0.10},
		},
		{
			Key:      "frontend-developer",
			Label:    "Frontend Developer",
			Category: "Engineering",
			RequiredSkills: types.RequiredSkills{
				Programming: []string{"JavaScript", "TypeScript", "HTML", "CSS"},
				Frameworks:  []string{"React", "Vue", "Angular", "Next.js", "Tailwind"},
				Databases:   []string{"GraphQL", "REST"},
				Tools:       []string{"Git", "Webpack", "Vite", "Figma"},
				Concepts:    []string{"Responsive Design", "Accessibility", "State Management", "Performance"},
			},
			ExperienceKeywords: []string{"built", "designed", "implemented", "improved", "launched", "redesigned", "optimized", "collaborated"},
			MinExperience:      1,
			Weights:            types.Weights{Technical: 0.40, Experience: 0.25, Projects: 0.25, Education: 0.10},
		},
		{
			Key:      "backend-developer",
			Label:    "Backend Developer",
			Category: "Engineering",
			RequiredSkills: types.RequiredSkills{
				Programming: []string{"Python", "Java", "Go", "Node.js"},
				Frameworks:  []string{"Django", "Spring", "Express", "FastAPI"},
				Databases:   []string{"PostgreSQL", "MySQL", "MongoDB", "Redis"},
				Tools:       []string{"Git", "Docker", "Kubernetes", "Linux"},
				Concepts:    []string{"REST API", "Microservices", "Authentication", "Caching", "Message Queues"},
			},
			ExperienceKeywords: []string{"developed", "architected", "scaled", "implemented", "integrated", "optimized", "deployed", "migrated"},
			MinExperience:      1,
			Weights:            types.Weights{Technical: 0.45, Experience: 0.30, Projects: 0.15, Education: 0.10},
		},
		{
			Key:      "fullstack-developer",
			Label:    "Full Stack Developer",
			Category: "Engineering",
			RequiredSkills: types.RequiredSkills{
				Programming: []string{"JavaScript", "TypeScript", "Python", "HTML", "CSS"},
				Frameworks:  []string{"React", "Node.js", "Express", "Next.js"},
				Databases:   []string{"PostgreSQL", "MongoDB", "Redis"},
				Tools:       []string{"Git", "Docker", "AWS", "CI/CD"},
				Concepts:    []string{"REST API", "Authentication", "Responsive Design", "Testing"},
			},
			ExperienceKeywords: []string{"developed", "built", "designed", "implemented", "launched", "deployed", "maintained", "shipped"},
			MinExperience:      1,
			Weights:            types.Weights{Technical: 0.40, Experience: 0.30, Projects: 0.20, Education: 0.10},
		},
		{
			Key:      "mobile-developer",
			Label:    "Mobile Developer",
			Category: "Engineering",
			RequiredSkills: types.RequiredSkills{
				Programming: []string{"Swift", "Kotlin", "Dart", "JavaScript"},
				Frameworks:  []string{"React Native", "Flutter", "SwiftUI", "Jetpack Compose"},
				Databases:   []string{"SQLite", "Realm", "Firebase"},
				Tools:       []string{"Git", "Xcode", "Android Studio", "Fastlane"},
				Concepts:    []string{"Mobile UI", "Offline Storage", "Push Notifications", "App Store"},
			},
			ExperienceKeywords: []string{"developed", "published", "built", "designed", "released", "optimized", "integrated", "maintained"},
			MinExperience:      1,
			Weights:            types.Weights{Technical: 0.40, Experience: 0.25, Projects: 0.25, Education: 0.10},
		},
		{
			Key:      "data-scientist",
			Label:    "Data Scientist",
			Category: "Data",
			RequiredSkills: types.RequiredSkills{
				Programming: []string{"Python", "R", "SQL"},
				Frameworks:  []string{"Pandas", "NumPy", "Scikit-learn", "TensorFlow", "PyTorch"},
				Databases:   []string{"PostgreSQL", "BigQuery", "Spark"},
				Tools:       []string{"Jupyter", "Git", "Tableau"},
				Concepts:    []string{"Machine Learning", "Statistics", "Data Visualization", "A/B Testing", "Feature Engineering"},
			},
			ExperienceKeywords: []string{"analyzed", "modeled", "predicted", "visualized", "trained", "evaluated", "presented", "automated"},
			MinExperience:      1,
			Weights:            types.Weights{Technical: 0.40, Experience: 0.25, Projects: 0.20, Education: 0.15},
		},
		{
			Key:      "data-engineer",
			Label:    "Data Engineer",
			Category: "Data",
			RequiredSkills: types.RequiredSkills{
				Programming: []string{"Python", "SQL", "Scala", "Java"},
				Frameworks:  []string{"Spark", "Airflow", "Kafka", "dbt"},
				Databases:   []string{"PostgreSQL", "Snowflake", "BigQuery", "Redshift"},
				Tools:       []string{"Git", "Docker", "Terraform", "AWS"},
				Concepts:    []string{"ETL", "Data Pipelines", "Data Warehousing", "Data Modeling", "Streaming"},
			},
			ExperienceKeywords: []string{"built", "designed", "automated", "migrated", "orchestrated", "optimized", "processed", "maintained"},
			MinExperience:      1,
			Weights:            types.Weights{Technical: 0.45, Experience: 0.30, Projects: 0.15, Education: 0.10},
		},
		{
			Key:      "ml-engineer",
			Label:    "Machine Learning Engineer",
			Category: "Data",
			RequiredSkills: types.RequiredSkills{
				Programming: []string{"Python", "C++", "SQL"},
				Frameworks:  []string{"TensorFlow", "PyTorch", "Scikit-learn", "MLflow"},
				Databases:   []string{"PostgreSQL", "Redis", "Vector Databases"},
				Tools:       []string{"Git", "Docker", "Kubernetes", "AWS"},
				Concepts:    []string{"Machine Learning", "Deep Learning", "Model Deployment", "MLOps", "Feature Engineering"},
			},
			ExperienceKeywords: []string{"trained", "deployed", "optimized", "built", "evaluated", "productionized", "benchmarked", "scaled"},
			MinExperience:      2,
			Weights:            types.Weights{Technical: 0.45, Experience: 0.30, Projects: 0.15, Education: 0.10},
		},
		{
			Key:      "devops-engineer",
			Label:    "DevOps Engineer",
			Category: "Operations",
			RequiredSkills: types.RequiredSkills{
				Programming: []string{"Python", "Bash", "Go"},
				Frameworks:  []string{"Terraform", "Ansible", "Helm"},
				Databases:   []string{"PostgreSQL", "Redis", "Prometheus"},
				Tools:       []string{"Docker", "Kubernetes", "Jenkins", "AWS", "Git"},
				Concepts:    []string{"CI/CD", "Infrastructure as Code", "Monitoring", "Networking", "Security"},
			},
			ExperienceKeywords: []string{"automated", "deployed", "configured", "monitored", "provisioned", "migrated", "reduced", "maintained"},
			MinExperience:      2,
			Weights:            types.Weights{Technical: 0.45, Experience: 0.35, Projects: 0.10, Education: 0.10},
		},
		{
			Key:      "qa-engineer",
			Label:    "QA Engineer",
			Category: "Operations",
			RequiredSkills: types.RequiredSkills{
				Programming: []string{"Python", "JavaScript", "Java"},
				Frameworks:  []string{"Selenium", "Cypress", "Playwright", "JUnit"},
				Databases:   []string{"SQL"},
				Tools:       []string{"Git", "Jira", "Postman", "CI/CD"},
				Concepts:    []string{"Test Automation", "Regression Testing", "API Testing", "Performance Testing", "Test Planning"},
			},
			ExperienceKeywords: []string{"tested", "automated", "verified", "documented", "identified", "reported", "improved", "designed"},
			MinExperience:      1,
			Weights:            types.Weights{Technical: 0.40, Experience: 0.35, Projects: 0.15, Education: 0.10},
		},
	}
}
