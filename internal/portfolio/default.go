package portfolio

const placeholderImage = "/placeholder.svg?height=200&width=300"

// Default returns the built-in content.
func Default() *Profile {
	return &Profile{
		Owner: Owner{
			Name:       "Kawal Preet Kaur",
			Credential: "M.E. CSE",
			Badge:      "Engineering Student & Future Innovator",
			Intro: "M.E. CSE student exploring technology, building innovative projects, and learning something new " +
				"every day. Passionate about creating solutions that make a difference.",
			Avatar:    "/placeholder.svg?height=400&width=400",
			ResumeURL: "/resume.pdf",
		},
		Links: []Link{
			{Kind: "github", Label: "GitHub", URL: "https://github.com"},
			{Kind: "linkedin", Label: "LinkedIn", URL: "https://linkedin.com"},
			{Kind: "email", Label: "Email", URL: "mailto:kawal@email.com"},
		},
		About: About{
			Heading:    "About Me",
			Subheading: "Get to know me better",
			Paragraphs: []string{
				"I'm a passionate first-year Master of Engineering student in Computer Science and Engineering, " +
					"driven by curiosity and a love for technology. My journey in engineering began with a fascination " +
					"for how things work and a desire to create solutions that can make a positive impact.",
				"Currently, I'm diving deep into various programming languages and technologies, from Python and " +
					"JavaScript to web development frameworks. I believe in learning by doing, which is why I'm " +
					"constantly working on projects that challenge me and help me grow as a developer.",
				"My interests span across software development, artificial intelligence, and emerging technologies. " +
					"I'm particularly excited about the potential of technology to solve real-world problems and " +
					"improve people's lives. When I'm not coding, you can find me exploring new tech trends, " +
					"participating in hackathons, or collaborating with fellow students on innovative projects.",
			},
			Education: Education{
				Degree:      "M.E. Computer Science & Engineering",
				Institution: "University of Technology",
				Period:      "2024 - 2026 (Expected)",
				Highlight:   "Current GPA: 3.9/4.0",
			},
			Achievements: []string{
				"Dean's List - Fall 2024",
				"Merit Scholarship Recipient",
				"Hackathon Finalist",
			},
		},
		Skills: []SkillGroup{
			{
				Title: "Programming Languages",
				Icon:  "code",
				Skills: []Skill{
					{Name: "Python", Level: 85},
					{Name: "JavaScript", Level: 80},
					{Name: "Java", Level: 75},
					{Name: "C/C++", Level: 70},
				},
			},
			{
				Title:  "Web Technologies",
				Icon:   "globe",
				Skills: names("HTML/CSS", "React", "Node.js", "Next.js", "Tailwind CSS", "Express.js"),
			},
			{
				Title:  "Tools & Databases",
				Icon:   "database",
				Skills: names("Git", "VS Code", "MongoDB", "MySQL", "Figma", "Arduino"),
			},
			{
				Title:  "Soft Skills",
				Icon:   "user",
				Skills: names("Problem Solving", "Teamwork", "Communication", "Leadership", "Time Management", "Adaptability"),
			},
		},
		Projects: []Project{
			{
				Title:        "Smart Task Manager",
				Description:  "A full-stack web application for managing tasks with AI-powered prioritization and deadline tracking.",
				Image:        placeholderImage,
				Technologies: []string{"React", "Node.js", "MongoDB", "Express"},
				GitHub:       "https://github.com",
				Demo:         "https://demo.com",
				Featured:     true,
			},
			{
				Title:        "Weather Dashboard",
				Description:  "Real-time weather application with location-based forecasts and interactive charts.",
				Image:        placeholderImage,
				Technologies: []string{"JavaScript", "API Integration", "Chart.js"},
				GitHub:       "https://github.com",
				Demo:         "https://demo.com",
			},
			{
				Title:        "E-Commerce Platform",
				Description:  "Modern e-commerce website with shopping cart, payment integration, and admin dashboard.",
				Image:        placeholderImage,
				Technologies: []string{"Next.js", "Stripe", "Tailwind CSS"},
				GitHub:       "https://github.com",
				Demo:         "https://demo.com",
			},
			{
				Title:        "Arduino IoT System",
				Description:  "IoT-based home automation system with sensor monitoring and mobile app control.",
				Image:        placeholderImage,
				Technologies: []string{"Arduino", "C++", "IoT", "Mobile App"},
				GitHub:       "https://github.com",
			},
			{
				Title:        "Machine Learning Classifier",
				Description:  "Image classification model using deep learning for recognizing handwritten digits.",
				Image:        placeholderImage,
				Technologies: []string{"Python", "TensorFlow", "Jupyter"},
				GitHub:       "https://github.com",
			},
			{
				Title:        "Portfolio Website",
				Description:  "This responsive portfolio website built with modern web technologies and best practices.",
				Image:        placeholderImage,
				Technologies: []string{"Next.js", "Tailwind CSS", "TypeScript"},
				GitHub:       "https://github.com",
			},
		},
		Contact: Contact{
			Heading: "Get In Touch",
			Intro: "I'm always open to discussing new opportunities, collaborations, or just having a chat about " +
				"technology",
			Email:    "kawal.preet@email.com",
			Phone:    "+1 (555) 123-4567",
			Location: "San Francisco, CA",
		},
		Footer: Footer{
			Links: []Link{
				{Label: "Privacy Policy", URL: "#"},
				{Label: "Resume", URL: "/resume.pdf"},
			},
		},
	}
}

func names(ns ...string) []Skill {
	out := make([]Skill, len(ns))
	for i, n := range ns {
		out[i] = Skill{Name: n}
	}
	return out
}
