package store

import (
	"time"

	"github.com/kartiksharma/portfolio/models"
)

func strPtr(s string) *string { return &s }

// Seed fills the store with the example dataset so the public site is
// non-empty before any admin interaction. Certificates get staggered
// creation times so the newest-first listing matches the order below.
func (s *MemoryStore) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.createProject(models.ProjectInput{
		Title:        "HOPE-PAWS",
		Description:  "Developed an AI-powered platform focused on the safety of stray animals and road safety in Jaipur. Features include real-time emergency reporting, shelter locator, and community engagement tools to protect animals and improve urban safety.",
		Technologies: []string{"AI", "Web Design", "Emergency Response", "Community Platform"},
		Featured:     "true",
		Order:        "0",
	})

	certificates := []models.CertificateInput{
		{Title: "Practice Exam 1 for Azure AI Fundamentals (AI-900)", Issuer: "Microsoft Azure", IssueDate: "Oct 2025", Skills: []string{"Microsoft Azure", "Azure AI Studio", "Artificial Intelligence (AI)"}},
		{Title: "Practice Exam 1 for Microsoft Azure Administrator Associate (AZ-104)", Issuer: "LinkedIn", IssueDate: "Oct 2025", Skills: []string{"Cloud Administration"}},
		{Title: "Practice Exam 1 for Microsoft Power Platform Fundamentals (PL-900)", Issuer: "LinkedIn", IssueDate: "Oct 2025", Skills: []string{"Microsoft Power Platform"}},
		{Title: "Practice Exam 1 for Power BI Data Analyst Associate (PL-300)", Issuer: "LinkedIn", IssueDate: "Oct 2025", Skills: []string{"Microsoft Power BI", "Data Analysis"}},
		{Title: "Quality Management Foundations", Issuer: "LinkedIn", IssueDate: "Oct 2025", Skills: []string{"Quality Management"}},
		{Title: "Systems Thinking", Issuer: "LinkedIn", IssueDate: "Oct 2025", Skills: []string{"Systems Thinking"}},
		{Title: "Cloud Systems Software", Issuer: "Georgia Institute of Technology", IssueDate: "Sep 2025", CredentialID: strPtr("S1OWSCV00V0P"), Skills: []string{"Cloud Computing"}},
		{Title: "Network Function Virtualization", Issuer: "Georgia Institute of Technology", IssueDate: "Sep 2025", CredentialID: strPtr("QJODR3CNF2U1"), Skills: []string{"Networking"}},
		{Title: "Foundations: Data, Data, Everywhere", Issuer: "Google", IssueDate: "Apr 2025", CredentialID: strPtr("945B8TUNN4KN"), Skills: []string{"Data Analysis"}},
		{Title: "Innovating with the Business Model Canvas", Issuer: "University of Virginia", IssueDate: "Feb 2025", CredentialID: strPtr("6R2BRKVM442B"), Skills: []string{"Business Innovation"}},
	}

	base := time.Now()
	for i, certificate := range certificates {
		s.createCertificate(certificate, base.Add(-time.Duration(i)*time.Minute))
	}

	skills := []models.SkillInput{
		{Name: "Software Development", Category: "technical", Level: "advanced"},
		{Name: "Web Development", Category: "technical", Level: "advanced"},
		{Name: "Python", Category: "technical", Level: "intermediate"},
		{Name: "Java", Category: "technical", Level: "intermediate"},
		{Name: "C Programming", Category: "technical", Level: "intermediate"},
		{Name: "Cloud Computing", Category: "technical", Level: "intermediate"},
		{Name: "AI Prompting", Category: "technical", Level: "intermediate"},
		{Name: "Microsoft Office", Category: "tools", Level: "advanced"},
		{Name: "Project Management", Category: "soft", Level: "intermediate"},
		{Name: "Computer Science", Category: "technical", Level: "advanced"},
	}
	for _, skill := range skills {
		s.createSkill(skill)
	}

	services := []models.ServiceInput{
		{Title: "Web Design", Description: "Create beautiful, responsive websites with modern design principles and user-friendly interfaces.", Icon: "Globe"},
		{Title: "Logo Design", Description: "Design unique and memorable logos that capture your brand identity and make a lasting impression.", Icon: "Palette"},
		{Title: "Web Development", Description: "Build robust, scalable web applications using modern technologies and best practices.", Icon: "Code"},
		{Title: "Software Testing", Description: "Ensure software quality through comprehensive testing and quality assurance processes.", Icon: "CheckCircle"},
		{Title: "Blogging & Writing", Description: "Create engaging content and technical articles for blogs and publications.", Icon: "PenTool"},
		{Title: "Network Support", Description: "Provide technical support for network configuration, troubleshooting, and maintenance.", Icon: "Network"},
	}
	for _, service := range services {
		s.createService(service)
	}

	socialLinks := []models.SocialLinkInput{
		{Platform: "LinkedIn", URL: "https://linkedin.com/in/kartik-sharma06", Icon: "Linkedin", Handle: strPtr("@kartik-sharma06"), Order: "0"},
		{Platform: "GitHub", URL: "https://github.com/kartiksharma4448", Icon: "Github", Handle: strPtr("@kartiksharma4448"), Order: "1"},
		{Platform: "Instagram", URL: "https://instagram.com/kartik.verse6", Icon: "Instagram", Handle: strPtr("@kartik.verse6"), Order: "2"},
		{Platform: "Email", URL: "mailto:contact@example.com", Icon: "Mail", Handle: strPtr("Get in touch"), Order: "3"},
	}
	for _, link := range socialLinks {
		s.createSocialLink(link)
	}
}
