package interview

// DefaultQuestionBank returns the learning-profile interview. The order
// is significant: it defines the conversation sequence. Each call returns
// a fresh slice so callers cannot mutate a shared bank.
func DefaultQuestionBank() QuestionBank {
	return QuestionBank{
		{
			Key:         "name",
			Prompt:      "What's your name?",
			InputType:   InputText,
			Placeholder: "Enter your name",
		},
		{
			Key:         "age",
			Prompt:      "How old are you?",
			InputType:   InputNumber,
			Placeholder: "Enter your age",
		},
		{
			Key:       "current_domain",
			Prompt:    "What's your current professional domain?",
			InputType: InputSelect,
			Options: []string{
				"Technology/IT",
				"Healthcare",
				"Finance/Banking",
				"Education",
				"Marketing/Communications",
				"Design/Creative",
				"Business/Management",
				"Manufacturing/Engineering",
				"Student",
				"Other",
			},
			Placeholder: "select your current domain",
		},
		{
			Key:         "current_role",
			Prompt:      "What's your current role or position?",
			InputType:   InputText,
			Placeholder: "E.g., Marketing Manager, Student, Software Developer",
		},
		{
			Key:       "tech_experience",
			Prompt:    "How would you describe your experience with technology?",
			InputType: InputSelect,
			Options: []string{
				"Complete beginner - I rarely use computers beyond basic tasks",
				"Novice - I use computers regularly but don't know how they work",
				"Intermediate - I've done some coding or technical work",
				"Advanced - I work in tech but want to expand my skills",
				"Expert - I'm proficient but looking to specialize or pivot",
			},
			Placeholder: "Select your experience level",
		},
		{
			Key:         "target_role",
			Prompt:      "What specific job or role are you hoping to prepare for?",
			InputType:   InputText,
			Placeholder: "E.g., Front-end Developer, Data Scientist, UX Designer",
		},
		{
			Key:       "target_skills",
			Prompt:    "What specific skills would you like to develop?",
			InputType: InputMultiSelect,
			Options: []string{
				"Programming languages",
				"Web development",
				"Mobile app development",
				"Database management",
				"Cloud computing",
				"DevOps",
				"Data analysis/science",
				"Machine learning/AI",
				"UI/UX design",
				"Cybersecurity",
				"Blockchain/cryptocurrency",
				"Game development",
				"Computer networking",
				"Project management",
				"Other",
			},
			Placeholder: "Select desired skills",
		},
		{
			Key:       "motivation",
			Prompt:    "What's your primary motivation for learning these skills?",
			InputType: InputSelect,
			Options: []string{
				"Career change into a new field",
				"Advancement in current career",
				"Starting a business or side project",
				"Academic requirement",
				"Personal interest and growth",
				"Keeping up with industry trends",
				"Other",
			},
			Placeholder: "Select your motivation",
		},
		{
			Key:       "learning_obstacles",
			Prompt:    "What's your biggest challenge when it comes to learning new skills?",
			InputType: InputSelect,
			Options: []string{
				"Finding time in my schedule",
				"Staying motivated and consistent",
				"Understanding complex concepts",
				"Applying theory to practical projects",
				"Information overload/knowing where to start",
				"Access to good learning resources",
				"Lack of guidance or mentorship",
				"Other",
			},
			Placeholder: "Select your biggest challenge",
		},
		{
			Key:       "time_limit",
			Prompt:    "What's your target timeframe for achieving your learning goals?",
			InputType: InputSelect,
			Options: []string{
				"Less than 3 months",
				"3-6 months",
				"6-12 months",
				"1-2 years",
				"More than 2 years",
				"No specific deadline",
			},
			Placeholder: "Select your timeframe",
		},
		{
			Key:       "daily_availability",
			Prompt:    "How much time can you realistically dedicate to learning each day?",
			InputType: InputSelect,
			Options: []string{
				"Less than 30 minutes",
				"30 minutes to 1 hour",
				"1-2 hours",
				"2-4 hours",
				"More than 4 hours",
				"Varies significantly day to day",
			},
			Placeholder: "Select your daily availability",
		},
		{
			Key:       "preferred_learning_style",
			Prompt:    "How do you learn best?",
			InputType: InputMultiSelect,
			Options: []string{
				"Video tutorials",
				"Reading books/documentation",
				"Interactive coding exercises",
				"Project-based learning",
				"Structured courses with deadlines",
				"Learning with others/group work",
				"One-on-one mentoring",
				"Trial and error/self-discovery",
			},
			Placeholder: "Select preferred learning styles",
		},
		{
			Key:         "background_strengths",
			Prompt:      "What skills or knowledge from your background might help in your learning journey?",
			InputType:   InputText,
			Placeholder: "E.g., analytical thinking, project management, creativity",
		},
		{
			Key:       "learning_resources",
			Prompt:    "Do you have access to any paid learning resources?",
			InputType: InputMultiSelect,
			Options: []string{
				"Paid online course platforms (Udemy, Coursera, etc.)",
				"Coding bootcamps",
				"College/university courses",
				"Technical books",
				"Professional mentorship",
				"None - prefer free resources only",
			},
			Placeholder: "Select available resources",
		},
	}
}
