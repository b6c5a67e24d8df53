// Package nav decides which page section is active for navigation
// highlighting.
package nav

// SectionID names one navigable region of the page.
type SectionID string

// The page's sections. Each value is also the element id its anchor
// targets, so "#" + string(id) links to it.
const (
	Hero     SectionID = "hero"
	About    SectionID = "about"
	Skills   SectionID = "skills"
	Projects SectionID = "projects"
	Contact  SectionID = "contact"
)

// Sections lists every section in page order. Order matters: it is the
// tie-break when bounds overlap.
var Sections = []SectionID{Hero, About, Skills, Projects, Contact}

var labels = map[SectionID]string{
	Hero:     "Home",
	About:    "About",
	Skills:   "Skills",
	Projects: "Projects",
	Contact:  "Contact",
}

// Valid reports whether id is one of the fixed sections.
func (id SectionID) Valid() bool {
	_, ok := labels[id]
	return ok
}

// Label returns the navigation text for the section.
func (id SectionID) Label() string {
	return labels[id]
}

// Anchor returns the fragment link for the section, e.g. "#about".
func (id SectionID) Anchor() string {
	return "#" + string(id)
}

// Link is one entry of the navigation bar.
type Link struct {
	ID    SectionID
	Label string
	Href  string
}

// Links returns the navigation entries in page order.
func Links() []Link {
	links := make([]Link, 0, len(Sections))
	for _, id := range Sections {
		links = append(links, Link{ID: id, Label: id.Label(), Href: id.Anchor()})
	}
	return links
}

// Parse converts a raw section name into a SectionID.
func Parse(s string) (SectionID, bool) {
	id := SectionID(s)
	return id, id.Valid()
}
