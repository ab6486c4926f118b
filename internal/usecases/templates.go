package usecases

import (
	"fmt"
	"strconv"
	"strings"

	"corpsite.backend/internal/domain/entities"
)

func applicationText(a *entities.Application, resumeURL string) string {
	return fmt.Sprintf("Career Application\n\n"+
		"Name: %s\n"+
		"Email: %s\n"+
		"Phone: %s\n"+
		"College: %s\n"+
		"CGPA: %s\n"+
		"Year: %d\n"+
		"Experience: %s\n"+
		"Skills: %s\n\n"+
		"Resume:\n%s",
		a.FullName, a.Email, a.Phone, a.College, formatCGPA(a.CGPA),
		a.YearOfPassing, a.Experience, a.Skills, resumeURL)
}

func contactText(m *entities.ContactMessage) string {
	return fmt.Sprintf("Contact Message\n\n"+
		"Name: %s\n"+
		"Email: %s\n"+
		"Phone: %s\n"+
		"Subject: %s\n"+
		"Message: %s",
		m.Name, m.Email, m.Phone, m.Subject, m.Message)
}

func inquiryText(q *entities.Inquiry) string {
	return fmt.Sprintf("CPU Inquiry\n\n"+
		"Name: %s\n"+
		"Email: %s\n"+
		"Phone: %s\n"+
		"CPU: %s\n"+
		"Quantity: %d\n"+
		"RAM: %s\n"+
		"Storage: %s\n"+
		"Message: %s",
		q.FullName, q.Email, q.Phone, q.CPUModel, q.Quantity, q.RAM, q.Storage, q.Message)
}

// hackathonText lists the first leader, if any, then every member numbered from 1.
func hackathonText(team *entities.HackathonTeam, leader *entities.HackathonParticipant, members []*entities.HackathonParticipant) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hackathon Registration\n\nTeam Name: %s\nTotal Participants: %d\n\n", team.TeamName, team.TotalParticipants)

	if leader != nil {
		b.WriteString("Leader:\n")
		writeParticipant(&b, leader)
	}
	for i, m := range members {
		fmt.Fprintf(&b, "\nMember %d:\n", i+1)
		writeParticipant(&b, m)
	}
	return b.String()
}

func writeParticipant(b *strings.Builder, p *entities.HackathonParticipant) {
	fmt.Fprintf(b, "Name: %s\nEmail: %s\nPhone: %s\nBranch: %s\nSection: %s\nYear: %s\n",
		p.FullName, p.Email, p.Phone, p.Branch, p.Section, p.Year)
}

// formatCGPA prints two decimals, the precision the score is stored with.
func formatCGPA(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
