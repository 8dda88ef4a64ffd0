package mentor

import "career-mentor/internal/domain/profile"

// Deterministic fallback values substituted whenever the generative
// endpoint fails or its reply cannot be parsed. Downstream consumers always
// receive a well-typed value.

var fallbackProjectTable = map[string][]profile.ProjectIdea{
	"Data Scientist": {
		{
			Title:       "ML Pipeline for Customer Churn Prediction",
			Description: "Develop a machine learning pipeline using Python and scikit-learn to predict customer churn from real-world telecom datasets.",
			TechStack:   []string{"Python", "scikit-learn", "Pandas", "Flask", "Docker"},
			Difficulty:  "Intermediate",
		},
		{
			Title:       "Sentiment Analysis Dashboard",
			Description: "Create a live dashboard that visualizes sentiment analysis of Twitter data using NLP and Plotly Dash.",
			TechStack:   []string{"Python", "NLTK", "Plotly", "Dash", "API Integration"},
			Difficulty:  "Advanced",
		},
		{
			Title:       "AI-Powered Fraud Detection System",
			Description: "Build a fraud detection model using anomaly detection algorithms and deploy it as a real-time API service.",
			TechStack:   []string{"Python", "TensorFlow", "FastAPI", "MongoDB"},
			Difficulty:  "Advanced",
		},
	},
	"Full Stack Developer": {
		{
			Title:       "MERN Stack Project Management Tool",
			Description: "Develop a task tracking and collaboration app with authentication, Kanban boards, and analytics.",
			TechStack:   []string{"MongoDB", "Express.js", "React", "Node.js", "JWT"},
			Difficulty:  "Advanced",
		},
		{
			Title:       "AI Resume Builder Platform",
			Description: "Create a resume builder powered by GPT suggestions, with PDF export and user authentication.",
			TechStack:   []string{"React", "Flask", "OpenAI API", "MongoDB"},
			Difficulty:  "Intermediate",
		},
		{
			Title:       "E-Commerce Platform with ML Recommendations",
			Description: "Design a complete e-commerce platform with personalized product recommendations and Stripe payments.",
			TechStack:   []string{"Next.js", "Node.js", "MongoDB", "Machine Learning"},
			Difficulty:  "Advanced",
		},
	},
}

var fallbackGenericProjects = []profile.ProjectIdea{
	{
		Title:       "AI Innovation Hub",
		Description: "Create a web-based AI experimentation platform for deploying and testing AI models.",
		TechStack:   []string{"Python", "FastAPI", "React", "TensorFlow"},
		Difficulty:  "Advanced",
	},
}

func fallbackProjects(role string) []profile.ProjectIdea {
	if projects, ok := fallbackProjectTable[role]; ok {
		out := make([]profile.ProjectIdea, len(projects))
		copy(out, projects)
		return out
	}
	out := make([]profile.ProjectIdea, len(fallbackGenericProjects))
	copy(out, fallbackGenericProjects)
	return out
}

// fallbackRoadmapUnparseable is the template used when the call succeeded
// but the reply was not valid JSON. timelineWeeks comes from the [12,24]
// range.
func fallbackRoadmapUnparseable(targetRole string, timelineWeeks int) profile.RoadmapPlan {
	return profile.RoadmapPlan{
		TargetRole:    targetRole,
		TimelineWeeks: timelineWeeks,
		Phases: []profile.Phase{
			{
				Phase:         "Phase 1: Foundations",
				Objective:     "Learn core concepts and tools for the role.",
				Focus:         []string{"Core Programming", "Version Control", "Linux Basics"},
				Projects:      []string{"CLI-based utility project"},
				DurationWeeks: 3,
			},
			{
				Phase:         "Phase 2: Intermediate Practice",
				Objective:     "Work on key role-specific tools and frameworks.",
				Focus:         []string{"Cloud Basics", "Automation", "APIs"},
				Projects:      []string{"Deploy a small app on AWS"},
				DurationWeeks: 4,
			},
			{
				Phase:         "Phase 3: Advanced Topics",
				Objective:     "Focus on scalability and performance.",
				Focus:         []string{"CI/CD", "Monitoring", "Kubernetes"},
				Projects:      []string{"Implement a CI/CD pipeline"},
				DurationWeeks: 5,
			},
			{
				Phase:         "Phase 4: Capstone Project",
				Objective:     "Integrate all skills into a final project.",
				Focus:         []string{"Integration", "Testing", "Documentation"},
				Projects:      []string{"Full deployment automation project"},
				DurationWeeks: 4,
			},
		},
	}
}

// fallbackRoadmapCallFailed is the template used when the call itself
// failed. timelineWeeks comes from the [10,20] range.
func fallbackRoadmapCallFailed(targetRole string, timelineWeeks int) profile.RoadmapPlan {
	return profile.RoadmapPlan{
		TargetRole:    targetRole,
		TimelineWeeks: timelineWeeks,
		Phases: []profile.Phase{
			{
				Phase:         "Phase 1: Strengthen Fundamentals",
				Objective:     "Revisit key foundational skills.",
				Focus:         []string{"Python", "Git", "Networking Basics"},
				Projects:      []string{"Build CLI monitoring tool"},
				DurationWeeks: 3,
			},
			{
				Phase:         "Phase 2: Intermediate Concepts",
				Objective:     "Develop core technical and practical experience.",
				Focus:         []string{"Docker", "CI/CD", "APIs"},
				Projects:      []string{"Automate app deployment with Docker"},
				DurationWeeks: 4,
			},
			{
				Phase:         "Phase 3: Advanced Topics",
				Objective:     "Dive deep into cloud and scaling.",
				Focus:         []string{"AWS", "Kubernetes", "Security"},
				Projects:      []string{"Kubernetes deployment pipeline"},
				DurationWeeks: 4,
			},
			{
				Phase:         "Phase 4: Capstone Project",
				Objective:     "Combine all knowledge into a major final project.",
				Focus:         []string{"Integration", "Optimization"},
				Projects:      []string{"Full DevOps system automation"},
				DurationWeeks: 3,
			},
		},
	}
}

func fallbackQuestions() []profile.InterviewQuestion {
	return []profile.InterviewQuestion{
		{ID: 1, Question: "Tell me about yourself."},
		{ID: 2, Question: "What are your strengths and weaknesses?"},
		{ID: 3, Question: "Describe a project you're proud of."},
		{ID: 4, Question: "How do you handle challenging deadlines?"},
		{ID: 5, Question: "Why should we hire you for this position?"},
	}
}

func fallbackEvaluation() profile.Evaluation {
	return profile.Evaluation{
		Score: 78,
		Feedback: profile.EvaluationFeedback{
			Strengths:   []string{"Good clarity", "Relevant answers"},
			Weaknesses:  []string{"Needs deeper technical explanations"},
			Suggestions: "Give more practical examples next time.",
		},
	}
}
