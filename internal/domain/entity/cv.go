package entity

import "strings"

// PersonalInformation is the identity block of a CV
type PersonalInformation struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	LinkedIn  string `json:"linkedin"`
	GitHub    string `json:"github"`
	Website   string `json:"website"`
	PhotoURL  string `json:"photo"`
	// PhotoData is the raw image, embedded into rendered documents when present
	PhotoData []byte `json:"-"`
	PhotoMIME string `json:"-"`
}

// FullName joins first and last name
func (p PersonalInformation) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Profession is a job title the user identifies with
type Profession struct {
	Name string `json:"name"`
}

// Experience is one dated entry (job, education, volunteering...)
type Experience struct {
	Category    string `json:"category"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// ExperienceGroup is the experiences of one category
type ExperienceGroup struct {
	Category    string       `json:"category"`
	Experiences []Experience `json:"experiences"`
}

// Summary is a free-text profile paragraph
type Summary struct {
	Text string `json:"text"`
}

// Competence is a skill with an optional level
type Competence struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// Language is a spoken language with a level
type Language struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// Certification is a credential with issuer and date
type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
	URL    string `json:"url"`
}

// Hobby is an interest listed on the CV
type Hobby struct {
	Name string `json:"name"`
}

// CVData is everything the CV templates and the portfolio renderer consume
type CVData struct {
	UserID              uint64              `json:"user_id"`
	PersonalInformation PersonalInformation `json:"personal_information"`
	Professions         []Profession        `json:"professions"`
	Experiences         []Experience        `json:"experiences"`
	Summaries           []Summary           `json:"summaries"`
	Competences         []Competence        `json:"competences"`
	Languages           []Language          `json:"languages"`
	Certifications      []Certification     `json:"certifications"`
	Hobbies             []Hobby             `json:"hobbies"`
}

// defaultExperienceCategory is used for entries without a category
const defaultExperienceCategory = "Experience"

// ExperiencesByCategory groups experiences, keeping categories in first-seen order
func (c *CVData) ExperiencesByCategory() []ExperienceGroup {
	var groups []ExperienceGroup
	index := map[string]int{}
	for _, e := range c.Experiences {
		category := strings.TrimSpace(e.Category)
		if category == "" {
			category = defaultExperienceCategory
		}
		i, ok := index[category]
		if !ok {
			i = len(groups)
			index[category] = i
			groups = append(groups, ExperienceGroup{Category: category})
		}
		groups[i].Experiences = append(groups[i].Experiences, e)
	}
	return groups
}

// PrimaryProfession returns the first profession, if any
func (c *CVData) PrimaryProfession() string {
	if len(c.Professions) == 0 {
		return ""
	}
	return c.Professions[0].Name
}
