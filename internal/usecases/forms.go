package usecases

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"

	"corpsite.backend/internal/domain/entities"
	domainerrors "corpsite.backend/internal/domain/errors"
)

const maxResumeSize = 5 << 20

var resumeExtensions = map[string]bool{".pdf": true, ".doc": true, ".docx": true}

// ApplicationForm accepts JSON or multipart; the resume is only read from multipart.
type ApplicationForm struct {
	FullName      string                `json:"full_name" form:"full_name" binding:"required,max=200"`
	Email         string                `json:"email" form:"email" binding:"required,email"`
	Phone         string                `json:"phone" form:"phone" binding:"required,max=20"`
	College       string                `json:"college" form:"college" binding:"required,max=200"`
	CGPA          NumberInput           `json:"cgpa" form:"cgpa" binding:"required"`
	YearOfPassing NumberInput           `json:"year_of_passing" form:"year_of_passing" binding:"required"`
	Experience    string                `json:"experience" form:"experience"`
	Skills        string                `json:"skills" form:"skills" binding:"required"`
	Resume        *multipart.FileHeader `json:"-" form:"resume"`
}

// NumberInput keeps a numeric field as submitted. JSON numbers, JSON strings
// and form values all land here, and the form's Validate parses them so a bad
// value is reported under its own field.
type NumberInput string

func (n *NumberInput) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*n = NumberInput(s)
		return nil
	}
	*n = NumberInput(b)
	return nil
}

// UnmarshalParam is used by gin's form and multipart binding.
func (n *NumberInput) UnmarshalParam(param string) error {
	*n = NumberInput(param)
	return nil
}

func (n NumberInput) Float() (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(string(n)), 64)
	if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
		err = strconv.ErrSyntax
	}
	return v, err
}

func (n NumberInput) Int() (int, error) {
	return strconv.Atoi(strings.TrimSpace(string(n)))
}

// checkFloat and checkInt skip empty input; the required rule reports it.
func checkFloat(verr *domainerrors.ValidationError, field string, n NumberInput, min, max float64) {
	if strings.TrimSpace(string(n)) == "" {
		return
	}
	v, err := n.Float()
	switch {
	case err != nil:
		verr.Add(field, "A valid number is required.")
	case v < min:
		verr.Add(field, "Ensure this value is greater than or equal to "+strconv.FormatFloat(min, 'f', -1, 64)+".")
	case v > max:
		verr.Add(field, "Ensure this value is less than or equal to "+strconv.FormatFloat(max, 'f', -1, 64)+".")
	}
}

func checkInt(verr *domainerrors.ValidationError, field string, n NumberInput, min, max int) {
	if strings.TrimSpace(string(n)) == "" {
		return
	}
	v, err := n.Int()
	switch {
	case err != nil:
		verr.Add(field, "A valid integer is required.")
	case v < min:
		verr.Add(field, fmt.Sprintf("Ensure this value is greater than or equal to %d.", min))
	case v > max:
		verr.Add(field, fmt.Sprintf("Ensure this value is less than or equal to %d.", max))
	}
}

func (f *ApplicationForm) Validate() *domainerrors.ValidationError {
	verr := domainerrors.NewValidationError()
	checkFloat(verr, "cgpa", f.CGPA, 0, 10)
	checkInt(verr, "year_of_passing", f.YearOfPassing, 1950, 2100)
	if f.Resume == nil {
		return verr
	}
	if !resumeExtensions[strings.ToLower(filepath.Ext(f.Resume.Filename))] {
		verr.Add("resume", "Upload a PDF or Word document.")
	}
	if f.Resume.Size > maxResumeSize {
		verr.Add("resume", "Resume must be 5 MB or smaller.")
	}
	return verr
}

// Entity assumes Validate passed.
func (f *ApplicationForm) Entity() *entities.Application {
	cgpa, _ := f.CGPA.Float()
	year, _ := f.YearOfPassing.Int()
	return &entities.Application{
		FullName:      strings.TrimSpace(f.FullName),
		Email:         strings.TrimSpace(f.Email),
		Phone:         strings.TrimSpace(f.Phone),
		College:       strings.TrimSpace(f.College),
		CGPA:          cgpa,
		YearOfPassing: year,
		Experience:    strings.TrimSpace(f.Experience),
		Skills:        strings.TrimSpace(f.Skills),
	}
}

type ContactForm struct {
	Name    string `json:"name" form:"name" binding:"required,max=200"`
	Email   string `json:"email" form:"email" binding:"required,email"`
	Phone   string `json:"phone" form:"phone" binding:"required,max=20"`
	Subject string `json:"subject" form:"subject" binding:"required,max=200"`
	Message string `json:"message" form:"message" binding:"required"`
}

func (f *ContactForm) Entity() *entities.ContactMessage {
	return &entities.ContactMessage{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Phone:   strings.TrimSpace(f.Phone),
		Subject: strings.TrimSpace(f.Subject),
		Message: strings.TrimSpace(f.Message),
	}
}

type InquiryForm struct {
	FullName string      `json:"full_name" form:"full_name" binding:"required,max=200"`
	Email    string      `json:"email" form:"email" binding:"required,email"`
	Phone    string      `json:"phone" form:"phone" binding:"required,max=20"`
	CPUModel string      `json:"cpu_model" form:"cpu_model" binding:"required,max=100"`
	Quantity NumberInput `json:"quantity" form:"quantity" binding:"required"`
	RAM      string      `json:"ram" form:"ram" binding:"max=50"`
	Storage  string      `json:"storage" form:"storage" binding:"max=50"`
	Message  string      `json:"message" form:"message"`
}

func (f *InquiryForm) Validate() *domainerrors.ValidationError {
	verr := domainerrors.NewValidationError()
	checkInt(verr, "quantity", f.Quantity, 1, math.MaxInt)
	return verr
}

func (f *InquiryForm) Entity() *entities.Inquiry {
	quantity, _ := f.Quantity.Int()
	return &entities.Inquiry{
		FullName: strings.TrimSpace(f.FullName),
		Email:    strings.TrimSpace(f.Email),
		Phone:    strings.TrimSpace(f.Phone),
		CPUModel: strings.TrimSpace(f.CPUModel),
		Quantity: quantity,
		RAM:      strings.TrimSpace(f.RAM),
		Storage:  strings.TrimSpace(f.Storage),
		Message:  strings.TrimSpace(f.Message),
	}
}

// HackathonForm is JSON only; participants arrive nested under the team.
type HackathonForm struct {
	TeamName          string            `json:"team_name" binding:"required,max=200"`
	TotalParticipants *int              `json:"total_participants" binding:"required,gte=1"`
	Participants      []ParticipantForm `json:"participants" binding:"required,min=1,dive"`
}

type ParticipantForm struct {
	FullName string `json:"full_name" binding:"required,max=200"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone" binding:"required,max=20"`
	Branch   string `json:"branch" binding:"required,max=100"`
	Section  string `json:"section" binding:"required,max=20"`
	Year     string `json:"year" binding:"required,max=20"`
	Role     string `json:"role" binding:"required,oneof=LEADER MEMBER"`
}

func (f *HackathonForm) Entity() *entities.HackathonTeam {
	team := &entities.HackathonTeam{
		TeamName:          strings.TrimSpace(f.TeamName),
		TotalParticipants: *f.TotalParticipants,
		Participants:      make([]entities.HackathonParticipant, 0, len(f.Participants)),
	}
	for i, p := range f.Participants {
		team.Participants = append(team.Participants, entities.HackathonParticipant{
			FullName: strings.TrimSpace(p.FullName),
			Email:    strings.TrimSpace(p.Email),
			Phone:    strings.TrimSpace(p.Phone),
			Branch:   strings.TrimSpace(p.Branch),
			Section:  strings.TrimSpace(p.Section),
			Year:     strings.TrimSpace(p.Year),
			Role:     entities.ParticipantRole(p.Role),
			Position: i,
		})
	}
	return team
}
