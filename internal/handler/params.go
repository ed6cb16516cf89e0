package handler

import (
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var postCategories = map[string]bool{
	"general":      true,
	"cleanup":      true,
	"issue":        true,
	"announcement": true,
}

var suggestionCategories = map[string]bool{
	"cleanup":   true,
	"safety":    true,
	"community": true,
	"other":     true,
}

type RegisterParams struct {
	Username        string `form:"username"`
	Email           string `form:"email"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirmPassword"`
	Neighborhood    string `form:"neighborhood"`
}

func (p *RegisterParams) Validate() []string {
	var errs []string
	p.Username = strings.TrimSpace(p.Username)
	p.Email = strings.TrimSpace(p.Email)
	if len(p.Username) < 3 || len(p.Username) > 20 {
		errs = append(errs, "Username must be between 3 and 20 characters")
	}
	if !emailRe.MatchString(p.Email) {
		errs = append(errs, "Please enter a valid email")
	}
	if len(p.Password) < 6 {
		errs = append(errs, "Password must be at least 6 characters")
	}
	if p.Password != p.ConfirmPassword {
		errs = append(errs, "Password confirmation does not match password")
	}
	return errs
}

type LoginParams struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (p *LoginParams) Validate() []string {
	var errs []string
	p.Email = strings.TrimSpace(p.Email)
	if !emailRe.MatchString(p.Email) {
		errs = append(errs, "Please enter a valid email")
	}
	if p.Password == "" {
		errs = append(errs, "Password is required")
	}
	return errs
}

type PostParams struct {
	Title    string `form:"title"`
	Content  string `form:"content"`
	Category string `form:"category"`
}

func (p *PostParams) Validate() []string {
	var errs []string
	p.Title = strings.TrimSpace(p.Title)
	p.Content = strings.TrimSpace(p.Content)
	if p.Title == "" {
		errs = append(errs, "Title is required")
	}
	if p.Content == "" {
		errs = append(errs, "Content is required")
	}
	if p.Category == "" {
		p.Category = "general"
	}
	if !postCategories[p.Category] {
		errs = append(errs, "Invalid category")
	}
	return errs
}

type SuggestionParams struct {
	Title       string `form:"title"`
	Description string `form:"description"`
	Category    string `form:"category"`
}

func (p *SuggestionParams) Validate() []string {
	var errs []string
	p.Title = strings.TrimSpace(p.Title)
	p.Description = strings.TrimSpace(p.Description)
	if p.Title == "" {
		errs = append(errs, "Title is required")
	}
	if p.Description == "" {
		errs = append(errs, "Description is required")
	}
	if p.Category == "" {
		p.Category = "other"
	}
	if !suggestionCategories[p.Category] {
		errs = append(errs, "Invalid category")
	}
	return errs
}

type ContactParams struct {
	Name    string `form:"name"`
	Email   string `form:"email"`
	Subject string `form:"subject"`
	Message string `form:"message"`
}

func (p *ContactParams) Validate() []string {
	var errs []string
	p.Name = strings.TrimSpace(p.Name)
	p.Email = strings.TrimSpace(p.Email)
	p.Subject = strings.TrimSpace(p.Subject)
	p.Message = strings.TrimSpace(p.Message)
	if p.Name == "" {
		errs = append(errs, "Name is required")
	}
	if !emailRe.MatchString(p.Email) {
		errs = append(errs, "Please enter a valid email")
	}
	if p.Subject == "" {
		errs = append(errs, "Subject is required")
	}
	if p.Message == "" {
		errs = append(errs, "Message is required")
	}
	return errs
}

type SubscribeParams struct {
	Email string `form:"email"`
}

func (p *SubscribeParams) Validate() []string {
	var errs []string
	p.Email = strings.TrimSpace(p.Email)
	if !emailRe.MatchString(p.Email) {
		errs = append(errs, "Please enter a valid email")
	}
	return errs
}
