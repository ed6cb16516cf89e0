// Package council holds the city council report-card dataset used on the
// report card page, in advocacy email templates and in the newsletter. The
// dataset is a read-only configuration file embedded at build time.
package council

import (
	_ "embed"
	"fmt"
	"net/url"
	"strings"

	"github.com/goccy/go-yaml"
)

//go:embed council.yaml
var councilYAML []byte

var validStatuses = map[string]bool{
	"waffling":  true,
	"shameful":  true,
	"victory":   true,
	"misguided": true,
}

type Member struct {
	District    int      `yaml:"district"`
	Name        string   `yaml:"name"`
	FullName    string   `yaml:"full_name"`
	Email       string   `yaml:"email"`
	Status      string   `yaml:"status"`
	StatusLabel string   `yaml:"status_label"`
	Votes       string   `yaml:"votes"`
	Issues      []string `yaml:"issues"`
	Quote       string   `yaml:"quote"`
	Analysis    string   `yaml:"analysis"`
}

// EmailTemplate is a ready-to-send advocacy email addressed to one council
// member.
type EmailTemplate struct {
	Email   string
	Subject string
	Body    string
}

type ReportCard struct {
	members []Member
}

func Load() (*ReportCard, error) {
	var data struct {
		Members []Member `yaml:"members"`
	}
	if err := yaml.Unmarshal(councilYAML, &data); err != nil {
		return nil, fmt.Errorf("err parsing council dataset: %w", err)
	}

	for _, m := range data.Members {
		if m.Name == "" || m.Email == "" || m.District == 0 {
			return nil, fmt.Errorf("incomplete council member record for district %d", m.District)
		}
		if !strings.HasSuffix(m.Email, "@dallas.gov") {
			return nil, fmt.Errorf("unexpected council email for %s: %s", m.Name, m.Email)
		}
		if !validStatuses[m.Status] {
			return nil, fmt.Errorf("unknown status for %s: %s", m.Name, m.Status)
		}
	}

	return &ReportCard{members: data.Members}, nil
}

func (rc *ReportCard) All() []Member {
	members := make([]Member, len(rc.members))
	copy(members, rc.members)
	return members
}

func (rc *ReportCard) ByDistrict(district int) (Member, bool) {
	for _, m := range rc.members {
		if m.District == district {
			return m, true
		}
	}
	return Member{}, false
}

func (rc *ReportCard) ByName(name string) (Member, bool) {
	name = strings.ToLower(name)
	for _, m := range rc.members {
		if strings.Contains(strings.ToLower(m.Name), name) ||
			strings.Contains(strings.ToLower(m.FullName), name) {
			return m, true
		}
	}
	return Member{}, false
}

const emailSubject = "Urgent: Opposition to Alley Collection Changes"

func (rc *ReportCard) EmailTemplate(district int, customMessage string) (*EmailTemplate, bool) {
	member, ok := rc.ByDistrict(district)
	if !ok {
		return nil, false
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Dear Council Member %s,\r\n\r\n", member.Name)
	fmt.Fprintf(&b,
		"I am writing to express my strong opposition to the City of Dallas's proposed changes to alley trash collection services. As a resident of District %d, I am deeply concerned about the impact these changes will have on our neighborhood and community.\r\n\r\n",
		district,
	)
	b.WriteString("Key Concerns:\r\n")
	b.WriteString("• The transition from alley to curbside collection will negatively impact neighborhood aesthetics and property values\r\n")
	b.WriteString("• Many residents, especially elderly and disabled individuals, will face significant challenges with curbside collection\r\n")
	b.WriteString("• Our neighborhood was specifically designed for alley collection service\r\n")
	b.WriteString("• The proposed changes will create safety hazards and reduce the walkability of our community\r\n\r\n")
	b.WriteString("I urge you to:\r\n")
	b.WriteString("1. Oppose the elimination of alley collection services\r\n")
	b.WriteString("2. Support maintaining the current alley collection system\r\n\r\n")
	b.WriteString("Please represent the interests of your constituents and oppose these changes that will harm our community's quality of life.\r\n\r\n")
	b.WriteString("Thank you for your attention to this urgent matter.\r\n\r\n")
	b.WriteString("Sincerely,\r\n[YOUR NAME]\r\n[YOUR ADDRESS]\r\n[YOUR PHONE NUMBER]")
	if customMessage != "" {
		b.WriteString("\r\n\r\n")
		b.WriteString(customMessage)
	}

	return &EmailTemplate{
		Email:   member.Email,
		Subject: emailSubject,
		Body:    b.String(),
	}, true
}

// MailtoURL renders the template as a mailto link for the report card page.
func (rc *ReportCard) MailtoURL(district int, customMessage string) (string, bool) {
	t, ok := rc.EmailTemplate(district, customMessage)
	if !ok {
		return "", false
	}
	return fmt.Sprintf(
		"mailto:%s?subject=%s&body=%s",
		t.Email,
		url.QueryEscape(t.Subject),
		url.QueryEscape(t.Body),
	), true
}
