// Package portfolio holds the content rendered on the page: who the owner
// is, what they know, and what they have built.
package portfolio

import "strings"

// Profile is the complete page content.
type Profile struct {
	Owner    Owner        `yaml:"owner" json:"owner"`
	Links    []Link       `yaml:"links" json:"links"`
	About    About        `yaml:"about" json:"about"`
	Skills   []SkillGroup `yaml:"skills" json:"skills"`
	Projects []Project    `yaml:"projects" json:"projects"`
	Contact  Contact      `yaml:"contact" json:"contact"`
	Footer   Footer       `yaml:"footer" json:"footer"`
}

// Owner is the hero block.
type Owner struct {
	Name       string `yaml:"name" json:"name"`
	Credential string `yaml:"credential" json:"credential"`
	Badge      string `yaml:"badge" json:"badge"`
	Intro      string `yaml:"intro" json:"intro"`
	Avatar     string `yaml:"avatar" json:"avatar"`
	ResumeURL  string `yaml:"resume_url" json:"resume_url"`
}

// Link is an outbound profile link (GitHub, LinkedIn, mail).
type Link struct {
	Kind  string `yaml:"kind" json:"kind"`
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

// About is the biography section. Paragraphs are markdown.
type About struct {
	Heading      string    `yaml:"heading" json:"heading"`
	Subheading   string    `yaml:"subheading" json:"subheading"`
	Paragraphs   []string  `yaml:"paragraphs" json:"paragraphs"`
	Education    Education `yaml:"education" json:"education"`
	Achievements []string  `yaml:"achievements" json:"achievements"`
}

// Education is the degree card in the about section.
type Education struct {
	Degree      string `yaml:"degree" json:"degree"`
	Institution string `yaml:"institution" json:"institution"`
	Period      string `yaml:"period" json:"period"`
	Highlight   string `yaml:"highlight" json:"highlight"`
}

// SkillGroup is one card in the skills section. Groups with leveled skills
// render as progress bars, the rest as badges.
type SkillGroup struct {
	Title  string  `yaml:"title" json:"title"`
	Icon   string  `yaml:"icon" json:"icon"`
	Skills []Skill `yaml:"skills" json:"skills"`
}

// Skill is a named skill with an optional proficiency percentage.
type Skill struct {
	Name  string `yaml:"name" json:"name"`
	Level int    `yaml:"level,omitempty" json:"level,omitempty"`
}

// Leveled reports whether any skill in the group carries a level.
func (g SkillGroup) Leveled() bool {
	for _, s := range g.Skills {
		if s.Level > 0 {
			return true
		}
	}
	return false
}

// Project is one card in the project gallery.
type Project struct {
	Title        string   `yaml:"title" json:"title"`
	Description  string   `yaml:"description" json:"description"`
	Image        string   `yaml:"image" json:"image"`
	Technologies []string `yaml:"technologies" json:"technologies"`
	GitHub       string   `yaml:"github" json:"github"`
	Demo         string   `yaml:"demo,omitempty" json:"demo,omitempty"`
	Featured     bool     `yaml:"featured,omitempty" json:"featured,omitempty"`
}

// Uses reports whether the project lists tech, ignoring case.
func (p Project) Uses(tech string) bool {
	for _, t := range p.Technologies {
		if strings.EqualFold(t, tech) {
			return true
		}
	}
	return false
}

// Contact is the "Get In Touch" section.
type Contact struct {
	Heading  string `yaml:"heading" json:"heading"`
	Intro    string `yaml:"intro" json:"intro"`
	Email    string `yaml:"email" json:"email"`
	Phone    string `yaml:"phone" json:"phone"`
	Location string `yaml:"location" json:"location"`
}

// Footer is the bottom bar.
type Footer struct {
	Links []Link `yaml:"links" json:"links"`
}
